package lexical

import "strings"

// CleanTokens lowercases the text, drops everything outside a-z, and returns
// the tokens longer than two characters that are not stop-words.
func CleanTokens(text string) []string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		switch {
		case r >= 'a' && r <= 'z':
			b.WriteRune(r)
		case r >= 'A' && r <= 'Z':
			b.WriteRune(r + ('a' - 'A'))
		default:
			b.WriteByte(' ')
		}
	}

	fields := strings.Fields(b.String())
	out := make([]string, 0, len(fields))
	for _, tok := range fields {
		if len(tok) <= 2 {
			continue
		}
		if IsStopWord(tok) {
			continue
		}
		out = append(out, tok)
	}
	return out
}

// WordCount counts whitespace-separated words in the raw text.
func WordCount(text string) int {
	return len(strings.Fields(text))
}
