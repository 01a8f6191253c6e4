package lexical

import "math"

// Sentiment labels returned by Sentiment.
const (
	SentimentOptimistic = "Optimistic"
	SentimentCautious   = "Cautious"
	SentimentNeutral    = "Neutral"
)

// compound score normalization constant, as used by lexicon analyzers.
const sentimentAlpha = 15.0

// sentimentLexicon maps tokens to valence. The vocabulary is tuned for
// business documents rather than general prose.
var sentimentLexicon = map[string]float64{
	"growth": 1.6, "profit": 1.8, "profitable": 1.8, "strong": 1.4,
	"success": 1.9, "successful": 1.9, "opportunity": 1.5, "opportunities": 1.5,
	"gain": 1.3, "gains": 1.3, "improve": 1.2, "improved": 1.2,
	"improvement": 1.2, "advantage": 1.3, "innovative": 1.4, "innovation": 1.2,
	"leading": 1.1, "leader": 1.2, "efficient": 1.2, "momentum": 1.1,
	"record": 1.0, "exceed": 1.4, "exceeded": 1.4, "expansion": 1.2,
	"win": 1.6, "winning": 1.6, "positive": 1.7, "upside": 1.2,
	"resilient": 1.1, "robust": 1.2, "confident": 1.3, "accelerate": 1.1,

	"loss": -1.8, "losses": -1.8, "decline": -1.5, "declining": -1.5,
	"risk": -1.0, "risks": -1.0, "weak": -1.4, "weakness": -1.4,
	"threat": -1.5, "threats": -1.5, "fail": -1.9, "failure": -1.9,
	"debt": -1.1, "lawsuit": -1.6, "layoff": -1.7, "layoffs": -1.7,
	"shortfall": -1.4, "uncertain": -1.2, "uncertainty": -1.2,
	"delay": -1.1, "delays": -1.1, "problem": -1.3, "problems": -1.3,
	"crisis": -2.0, "downturn": -1.6, "negative": -1.7, "concern": -1.1,
	"concerns": -1.1, "churn": -1.2, "penalty": -1.4, "breach": -1.7,
}

// Sentiment computes a lexicon-based compound polarity over the text and maps
// it to Optimistic (>= 0.05), Cautious (<= -0.05) or Neutral.
func Sentiment(text string) string {
	sum := 0.0
	for _, tok := range CleanTokens(text) {
		sum += sentimentLexicon[tok]
	}
	compound := sum / math.Sqrt(sum*sum+sentimentAlpha)
	switch {
	case compound >= 0.05:
		return SentimentOptimistic
	case compound <= -0.05:
		return SentimentCautious
	default:
		return SentimentNeutral
	}
}
