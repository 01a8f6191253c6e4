package classify

import (
	"regexp"
	"sort"
)

// Intent category names, in declaration order. Declaration order breaks score
// ties.
const (
	IntentMarketExpansion       = "market_expansion"
	IntentCostReduction         = "cost_reduction"
	IntentRiskCompliance        = "risk_compliance"
	IntentDigitalTransformation = "digital_transformation"
)

const maxIntents = 2

type intentCategory struct {
	name    string
	pattern *regexp.Regexp
}

var intentCategories = []intentCategory{
	{IntentMarketExpansion, regexp.MustCompile(`(?i)\b(market|markets|expand|expansion|growth|grow|region|regional|global|international|scale|increase)\b`)},
	{IntentCostReduction, regexp.MustCompile(`(?i)\b(cost|costs|reduce|reduction|optimize|optimization|efficiency|savings|streamline)\b`)},
	{IntentRiskCompliance, regexp.MustCompile(`(?i)\b(risk|risks|compliance|regulation|regulatory|audit|uncertainty|governance)\b`)},
	{IntentDigitalTransformation, regexp.MustCompile(`(?i)\b(digital|automation|automate|technology|software|cloud|data|platform|ai)\b`)},
}

// Intents scores the four business-intent categories by keyword match count
// and returns the top two with a positive score, ranked by count descending.
func Intents(text string) []string {
	type scored struct {
		order int
		name  string
		count int
	}
	results := make([]scored, 0, len(intentCategories))
	for i, cat := range intentCategories {
		count := len(cat.pattern.FindAllString(text, -1))
		if count > 0 {
			results = append(results, scored{order: i, name: cat.name, count: count})
		}
	}
	sort.SliceStable(results, func(i, j int) bool {
		if results[i].count != results[j].count {
			return results[i].count > results[j].count
		}
		return results[i].order < results[j].order
	})
	if len(results) > maxIntents {
		results = results[:maxIntents]
	}
	out := make([]string, 0, len(results))
	for _, r := range results {
		out = append(out, r.name)
	}
	return out
}
