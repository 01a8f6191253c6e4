package lexical

import "sort"

// Keywords returns the topN single terms followed by topN/2 bigrams, each
// ranked by descending frequency over the cleaned token stream. With a single
// document as its own corpus the inverse-document-frequency factor is constant,
// so plain term frequency is the effective score.
func Keywords(text string, topN int) []string {
	if topN <= 0 {
		return []string{}
	}
	tokens := CleanTokens(text)
	if len(tokens) == 0 {
		return []string{}
	}

	singles := countTerms(tokens)

	bigrams := make(map[string]int, len(tokens))
	for i := 0; i+1 < len(tokens); i++ {
		bigrams[tokens[i]+" "+tokens[i+1]]++
	}

	out := topTerms(singles, topN)
	out = append(out, topTerms(bigrams, topN/2)...)
	return out
}

func countTerms(tokens []string) map[string]int {
	counts := make(map[string]int, len(tokens))
	for _, tok := range tokens {
		counts[tok]++
	}
	return counts
}

// topTerms ranks terms by descending count; ties break alphabetically so the
// ordering is deterministic.
func topTerms(counts map[string]int, n int) []string {
	if n <= 0 {
		return nil
	}
	terms := make([]string, 0, len(counts))
	for term := range counts {
		terms = append(terms, term)
	}
	sort.Slice(terms, func(i, j int) bool {
		if counts[terms[i]] != counts[terms[j]] {
			return counts[terms[i]] > counts[terms[j]]
		}
		return terms[i] < terms[j]
	})
	if len(terms) > n {
		terms = terms[:n]
	}
	return terms
}
