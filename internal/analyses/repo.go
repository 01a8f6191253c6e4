package analyses

import (
	"context"
	"encoding/json"
)

// AnalysesRepo defines persistence operations for analyses.
type AnalysesRepo interface {
	Create(ctx context.Context, analysis Analysis) error
	GetLatestByDocument(ctx context.Context, ownerId, documentID string) (Analysis, error)
	CountIntents(ctx context.Context) (map[string]int, error)
}

// ArtifactCache memoizes generative-API derived artifacts per document.
// Get returns ErrNotFound for an absent entry.
type ArtifactCache interface {
	Get(ctx context.Context, documentID, kind string) (json.RawMessage, error)
	Put(ctx context.Context, documentID, kind string, payload json.RawMessage) error
}
