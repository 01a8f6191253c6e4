package lexical

import (
	"math"
	"regexp"
)

// Fixed responses for the similarity-based answer path.
const (
	MsgNoQuestion    = "Please ask a question about the document."
	MsgNoAnswer      = "I could not find an answer to that in the document."
	MsgCannotAnalyze = "I could not analyze the document well enough to answer that."
)

// Similarity below or at this threshold is treated as "no answer".
const minAnswerSimilarity = 0.1

var wordCharRe = regexp.MustCompile(`\w`)

// BestMatchingSentence builds TF-IDF vectors over the document sentences plus
// the question as one corpus and returns the sentence with the highest cosine
// similarity to the question, provided it clears the similarity threshold.
func BestMatchingSentence(question, text string) string {
	if !wordCharRe.MatchString(question) {
		return MsgNoQuestion
	}

	sentences := SplitSentences(text)
	docs := make([][]string, 0, len(sentences)+1)
	vectorizable := false
	for _, s := range sentences {
		tokens := CleanTokens(s)
		if len(tokens) > 0 {
			vectorizable = true
		}
		docs = append(docs, tokens)
	}
	if !vectorizable {
		return MsgCannotAnalyze
	}
	questionTokens := CleanTokens(question)
	docs = append(docs, questionTokens)

	vectors := tfidfVectors(docs)
	questionVec := vectors[len(vectors)-1]

	bestIdx := -1
	bestSim := 0.0
	for i := 0; i < len(sentences); i++ {
		sim := cosine(vectors[i], questionVec)
		if sim > bestSim {
			bestSim = sim
			bestIdx = i
		}
	}
	if bestIdx < 0 || bestSim <= minAnswerSimilarity {
		return MsgNoAnswer
	}
	return sentences[bestIdx]
}

// tfidfVectors computes smoothed TF-IDF vectors for the token documents.
func tfidfVectors(docs [][]string) [][]float64 {
	vocab := make(map[string]int)
	df := make([]int, 0)
	for _, doc := range docs {
		seen := make(map[string]struct{}, len(doc))
		for _, tok := range doc {
			if _, ok := vocab[tok]; !ok {
				vocab[tok] = len(vocab)
				df = append(df, 0)
			}
			if _, ok := seen[tok]; !ok {
				seen[tok] = struct{}{}
				df[vocab[tok]]++
			}
		}
	}

	n := float64(len(docs))
	idf := make([]float64, len(df))
	for i, d := range df {
		idf[i] = math.Log((1+n)/(1+float64(d))) + 1
	}

	vectors := make([][]float64, len(docs))
	for i, doc := range docs {
		vec := make([]float64, len(vocab))
		if len(doc) > 0 {
			for _, tok := range doc {
				vec[vocab[tok]]++
			}
			for j := range vec {
				vec[j] = (vec[j] / float64(len(doc))) * idf[j]
			}
		}
		vectors[i] = vec
	}
	return vectors
}

func cosine(a, b []float64) float64 {
	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
