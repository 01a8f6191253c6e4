package classify

import "strings"

// SWOT category keys.
const (
	SWOTStrengths     = "strengths"
	SWOTWeaknesses    = "weaknesses"
	SWOTOpportunities = "opportunities"
	SWOTThreats       = "threats"
)

const (
	maxSWOTItems       = 4
	minSWOTSentenceLen = 10
	maxSWOTSentenceLen = 150
)

type swotCategory struct {
	key      string
	keywords []string
	fallback string
}

var swotCategories = []swotCategory{
	{SWOTStrengths,
		[]string{"strong", "experienced", "brand", "leader", "advanced", "proven"},
		"Stable operational foundation."},
	{SWOTWeaknesses,
		[]string{"weak", "delay", "cost", "lack", "inefficient", "outdated"},
		"Minor internal inefficiencies."},
	{SWOTOpportunities,
		[]string{"opportunity", "growth", "expand", "market", "demand", "emerging"},
		"Potential growth opportunity."},
	{SWOTThreats,
		[]string{"risk", "competition", "regulation", "loss", "uncertain", "disruption"},
		"Moderate external risks."},
}

// SWOT assigns document sentences to the four SWOT buckets by keyword match.
// Each bucket holds at most four sentences between 10 and 150 characters;
// a bucket that stays empty receives its fixed default statement, so no
// category is ever empty.
func SWOT(text string) map[string][]string {
	out := make(map[string][]string, len(swotCategories))
	for _, cat := range swotCategories {
		out[cat.key] = []string{}
	}

	for _, sentence := range strings.Split(text, ".") {
		trimmed := strings.TrimSpace(sentence)
		if len(trimmed) <= minSWOTSentenceLen || len(trimmed) >= maxSWOTSentenceLen {
			continue
		}
		lower := strings.ToLower(trimmed)
		for _, cat := range swotCategories {
			if len(out[cat.key]) >= maxSWOTItems {
				continue
			}
			if containsAny(lower, cat.keywords) {
				out[cat.key] = append(out[cat.key], capitalize(trimmed))
			}
		}
	}

	for _, cat := range swotCategories {
		if len(out[cat.key]) == 0 {
			out[cat.key] = []string{cat.fallback}
		}
	}
	return out
}

func containsAny(haystack string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(haystack, n) {
			return true
		}
	}
	return false
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	if s[0] >= 'a' && s[0] <= 'z' {
		return string(s[0]-('a'-'A')) + s[1:]
	}
	return s
}
