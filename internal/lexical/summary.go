package lexical

import (
	"sort"
	"strings"
)

const (
	// Sentences longer than this many words never make it into the summary.
	maxSummarySentenceWords = 30
	fallbackSummaryChars    = 500
	truncationMarker        = " ..."
)

// Summarize selects the maxSentences highest-scoring sentences, scored by the
// normalized frequency of their non-stop tokens. Selected sentences are
// emitted in score-rank order rather than document order. When nothing scores
// above zero the first 500 characters of the raw text are returned with a
// truncation marker.
func Summarize(text string, maxSentences int) string {
	if maxSentences <= 0 || strings.TrimSpace(text) == "" {
		return ""
	}

	freq := countTerms(CleanTokens(text))
	maxFreq := 0
	for _, n := range freq {
		if n > maxFreq {
			maxFreq = n
		}
	}

	sentences := SplitSentences(text)
	type scored struct {
		index int
		text  string
		score float64
	}
	candidates := make([]scored, 0, len(sentences))
	for i, sentence := range sentences {
		if WordCount(sentence) > maxSummarySentenceWords {
			continue
		}
		score := 0.0
		if maxFreq > 0 {
			for _, tok := range CleanTokens(sentence) {
				score += float64(freq[tok]) / float64(maxFreq)
			}
		}
		if score > 0 {
			candidates = append(candidates, scored{index: i, text: sentence, score: score})
		}
	}

	if len(candidates) == 0 {
		return truncate(text, fallbackSummaryChars)
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})
	if len(candidates) > maxSentences {
		candidates = candidates[:maxSentences]
	}

	parts := make([]string, 0, len(candidates))
	for _, c := range candidates {
		parts = append(parts, c.text)
	}
	return strings.Join(parts, " ")
}

func truncate(text string, limit int) string {
	trimmed := strings.TrimSpace(text)
	if len(trimmed) <= limit {
		return trimmed
	}
	return strings.TrimSpace(trimmed[:limit]) + truncationMarker
}
