package lexical

import "testing"

const similarityDoc = "Our revenue grew by twenty percent last year. The compliance team slowed down several launches. Customer churn remains the biggest operational problem."

func TestBestMatchingSentenceFindsOverlap(t *testing.T) {
	got := BestMatchingSentence("How much did revenue grow last year?", similarityDoc)
	if got != "Our revenue grew by twenty percent last year." {
		t.Fatalf("expected revenue sentence, got %q", got)
	}
}

func TestBestMatchingSentenceNoOverlap(t *testing.T) {
	got := BestMatchingSentence("What color is the logo?", similarityDoc)
	if got != MsgNoAnswer {
		t.Fatalf("expected no-answer fallback, got %q", got)
	}
}

func TestBestMatchingSentenceNoWordCharacters(t *testing.T) {
	for _, q := range []string{"???", "!!!", "...", "   ", ""} {
		if got := BestMatchingSentence(q, similarityDoc); got != MsgNoQuestion {
			t.Fatalf("question %q: expected prompt message, got %q", q, got)
		}
	}
}

func TestBestMatchingSentenceUnvectorizableDocument(t *testing.T) {
	got := BestMatchingSentence("What about revenue?", "And so it was. To be or not to be.")
	if got != MsgCannotAnalyze {
		t.Fatalf("expected cannot-analyze message, got %q", got)
	}
}
