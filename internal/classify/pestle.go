package classify

import (
	"fmt"
	"strings"
)

// PESTLE category keys.
const (
	PESTLEPolitical     = "political"
	PESTLEEconomic      = "economic"
	PESTLESocial        = "social"
	PESTLETechnological = "technological"
	PESTLELegal         = "legal"
	PESTLEEnvironmental = "environmental"
)

const pestleNoFactors = "No significant factors detected."

type pestleCategory struct {
	key      string
	keywords []string
}

// Keyword order matters: the first keyword found names the detected factor.
var pestleCategories = []pestleCategory{
	{PESTLEPolitical, []string{"government", "policy", "election", "tariff", "trade", "political"}},
	{PESTLEEconomic, []string{"inflation", "recession", "interest rate", "economy", "economic", "gdp"}},
	{PESTLESocial, []string{"consumer", "demographic", "culture", "community", "workforce", "social"}},
	{PESTLETechnological, []string{"technology", "digital", "innovation", "automation", "ai"}},
	{PESTLELegal, []string{"regulation", "compliance", "law", "legal", "licensing"}},
	{PESTLEEnvironmental, []string{"climate", "sustainability", "carbon", "environment", "renewable"}},
}

// PESTLE scans each category's ordered keyword list against the text and
// reports the first keyword found, or a fixed no-factors statement. Every key
// is always present in the result.
func PESTLE(text string) map[string]string {
	lower := strings.ToLower(text)
	out := make(map[string]string, len(pestleCategories))
	for _, cat := range pestleCategories {
		out[cat.key] = pestleNoFactors
		for _, kw := range cat.keywords {
			if strings.Contains(lower, kw) {
				out[cat.key] = fmt.Sprintf("Factors related to %s detected.", kw)
				break
			}
		}
	}
	return out
}
