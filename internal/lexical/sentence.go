package lexical

import "strings"

// abbreviations guards the sentence splitter against cutting after common
// abbreviated titles and suffixes.
var abbreviations = map[string]struct{}{
	"mr": {}, "mrs": {}, "ms": {}, "dr": {}, "prof": {}, "sr": {}, "jr": {},
	"inc": {}, "ltd": {}, "corp": {}, "co": {}, "vs": {}, "etc": {},
	"approx": {}, "dept": {}, "est": {}, "fig": {}, "no": {}, "vol": {},
}

// SplitSentences breaks text on '.', '?' or '!' followed by whitespace,
// skipping boundaries after known abbreviations and single initials.
// Fragments of five characters or fewer are discarded.
func SplitSentences(text string) []string {
	runes := []rune(text)
	var sentences []string
	start := 0

	flush := func(end int) {
		fragment := strings.TrimSpace(string(runes[start:end]))
		if len(fragment) > 5 {
			sentences = append(sentences, fragment)
		}
		start = end
	}

	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if r != '.' && r != '?' && r != '!' {
			continue
		}
		atEnd := i == len(runes)-1
		if !atEnd && !isSpace(runes[i+1]) {
			continue
		}
		if r == '.' && abbreviationBefore(runes, i) {
			continue
		}
		flush(i + 1)
	}
	if start < len(runes) {
		flush(len(runes))
	}
	return sentences
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r'
}

// abbreviationBefore reports whether the word ending at the period looks like
// an abbreviation or a single initial.
func abbreviationBefore(runes []rune, period int) bool {
	end := period
	begin := end
	for begin > 0 && !isSpace(runes[begin-1]) && runes[begin-1] != '.' {
		begin--
	}
	word := strings.ToLower(string(runes[begin:end]))
	if len(word) == 1 {
		return true
	}
	_, ok := abbreviations[word]
	return ok
}
