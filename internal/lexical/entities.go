package lexical

import (
	"regexp"
	"strings"
)

// Entity bucket names.
const (
	EntityMoney         = "money"
	EntityOrganizations = "organizations"
	EntityLocations     = "locations"
)

var (
	moneyRe = regexp.MustCompile(`\$\d+(?:,\d{3})*(?:\.\d+)?\s?[BMk]?`)

	// Capitalized chunk ending in a corporate suffix.
	organizationRe = regexp.MustCompile(`\b(?:[A-Z][A-Za-z&-]+\s+)*[A-Z][A-Za-z&-]+\s+(?:Inc|Corp|Corporation|Ltd|LLC|Group|Holdings|Company|Technologies|Systems|Partners|Ventures|Labs)\b`)
)

// locationGazetteer approximates geo-political entity chunking. Matching is
// exact on the capitalized name.
var locationGazetteer = []string{
	"United States", "United Kingdom", "European Union", "North America",
	"South America", "Latin America", "Middle East", "Southeast Asia",
	"Asia Pacific", "New York", "San Francisco", "Hong Kong", "Singapore",
	"London", "Berlin", "Paris", "Tokyo", "Shanghai", "Beijing", "Mumbai",
	"Dubai", "Sydney", "Toronto", "America", "Europe", "Asia", "Africa",
	"China", "India", "Japan", "Germany", "France", "Brazil", "Mexico",
	"Canada", "Australia", "Spain", "Italy", "Netherlands", "Switzerland",
	"Sweden", "Norway", "Poland", "Vietnam", "Indonesia", "Nigeria", "Egypt",
	"Kenya", "Argentina", "Chile", "Colombia", "Korea",
}

// Entities extracts monetary amounts, organizations and locations into
// deduplicated, insertion-ordered buckets.
func Entities(text string) map[string][]string {
	out := map[string][]string{
		EntityMoney:         dedupe(moneyRe.FindAllString(text, -1)),
		EntityOrganizations: dedupe(organizationRe.FindAllString(text, -1)),
		EntityLocations:     findLocations(text),
	}
	return out
}

func findLocations(text string) []string {
	var found []string
	for _, name := range locationGazetteer {
		if containsWord(text, name) {
			found = append(found, name)
		}
	}
	return dedupe(found)
}

// containsWord reports whether name occurs in text on word boundaries.
func containsWord(text, name string) bool {
	idx := 0
	for {
		pos := strings.Index(text[idx:], name)
		if pos < 0 {
			return false
		}
		pos += idx
		beforeOK := pos == 0 || !isWordChar(text[pos-1])
		end := pos + len(name)
		afterOK := end >= len(text) || !isWordChar(text[end])
		if beforeOK && afterOK {
			return true
		}
		idx = pos + 1
	}
}

func isWordChar(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9')
}

func dedupe(values []string) []string {
	out := make([]string, 0, len(values))
	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
