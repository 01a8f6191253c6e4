package classify

import (
	"strings"
	"testing"
)

func TestSWOTNeverEmpty(t *testing.T) {
	for _, text := range []string{"", "Nothing relevant here at all today.", "Short."} {
		got := SWOT(text)
		for _, key := range []string{SWOTStrengths, SWOTWeaknesses, SWOTOpportunities, SWOTThreats} {
			if len(got[key]) == 0 {
				t.Fatalf("text %q: category %s is empty", text, key)
			}
		}
	}
}

func TestSWOTDefaultsForEmptyCategories(t *testing.T) {
	got := SWOT("The cafeteria menu changes on Tuesdays sometimes.")
	if got[SWOTStrengths][0] != "Stable operational foundation." {
		t.Fatalf("unexpected strengths default: %v", got[SWOTStrengths])
	}
	if got[SWOTThreats][0] != "Moderate external risks." {
		t.Fatalf("unexpected threats default: %v", got[SWOTThreats])
	}
}

func TestSWOTAssignsSentences(t *testing.T) {
	text := "our brand recognition is a strong asset. rising competition threatens margins."
	got := SWOT(text)

	if len(got[SWOTStrengths]) != 1 || !strings.HasPrefix(got[SWOTStrengths][0], "Our brand") {
		t.Fatalf("expected capitalized strength sentence, got %v", got[SWOTStrengths])
	}
	if len(got[SWOTThreats]) != 1 || !strings.Contains(got[SWOTThreats][0], "competition") {
		t.Fatalf("expected competition threat, got %v", got[SWOTThreats])
	}
}

func TestSWOTCapsAtFourPerCategory(t *testing.T) {
	var sb strings.Builder
	for i := 0; i < 8; i++ {
		sb.WriteString("The team delivered a strong result this cycle. ")
	}
	got := SWOT(sb.String())
	if len(got[SWOTStrengths]) != 4 {
		t.Fatalf("expected 4 strengths max, got %d", len(got[SWOTStrengths]))
	}
}

func TestSWOTLengthBounds(t *testing.T) {
	// Under 10 chars and over 150 chars are both rejected.
	long := "strong " + strings.Repeat("filler words here ", 10)
	got := SWOT("strong. " + long + ".")
	if got[SWOTStrengths][0] != "Stable operational foundation." {
		t.Fatalf("expected default after rejecting out-of-bounds sentences, got %v", got[SWOTStrengths])
	}
}
