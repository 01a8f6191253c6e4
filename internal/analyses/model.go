package analyses

import (
	"time"

	"strategix-backend/internal/classify"
	"strategix-backend/internal/strategy"
)

// Analysis statuses.
const (
	StatusCompleted = "completed"
	StatusNoText    = "no_text"
)

// LexicalProfile is the deterministic text-level profile of one document.
type LexicalProfile struct {
	Keywords  []string            `json:"keywords"`
	Summary   string              `json:"summary"`
	Sentiment string              `json:"sentiment"`
	Entities  map[string][]string `json:"entities"`
	WordCount int                 `json:"wordCount"`
}

// Profile is the full structured result of one pipeline run. It is recomputed
// wholesale per upload and never patched in place.
type Profile struct {
	Lexical   LexicalProfile     `json:"lexical"`
	Framework classify.Framework `json:"framework"`
	Strategy  strategy.Set       `json:"strategy"`
	Scores    strategy.ScoreCard `json:"scores"`
}

// Analysis is one persisted pipeline run for one document.
type Analysis struct {
	ID         string    `json:"analysisId"`
	DocumentID string    `json:"documentId"`
	OwnerID    string    `json:"-"`
	Status     string    `json:"status"`
	Profile    Profile   `json:"profile"`
	CreatedAt  time.Time `json:"createdAt"`
}
