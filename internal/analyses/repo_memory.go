package analyses

import (
	"context"
	"encoding/json"
	"sync"
)

// MemoryRepo is an in-memory AnalysesRepo used when no database is
// configured, and in tests.
type MemoryRepo struct {
	mu       sync.RWMutex
	byID     map[string]Analysis
	ordering []string
}

// NewMemoryRepo constructs an empty MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{byID: make(map[string]Analysis)}
}

// Create stores an analysis.
func (r *MemoryRepo) Create(ctx context.Context, analysis Analysis) error {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID[analysis.ID] = analysis
	r.ordering = append(r.ordering, analysis.ID)
	return nil
}

// GetLatestByDocument returns the most recent analysis for a document.
func (r *MemoryRepo) GetLatestByDocument(ctx context.Context, ownerId, documentID string) (Analysis, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := len(r.ordering) - 1; i >= 0; i-- {
		a := r.byID[r.ordering[i]]
		if a.DocumentID == documentID && a.OwnerID == ownerId {
			return a, nil
		}
	}
	return Analysis{}, ErrNotFound
}

// CountIntents aggregates intent occurrences across all stored analyses.
func (r *MemoryRepo) CountIntents(ctx context.Context) (map[string]int, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make(map[string]int)
	for _, a := range r.byID {
		for _, intent := range a.Profile.Framework.Intents {
			out[intent]++
		}
	}
	return out, nil
}

var _ AnalysesRepo = (*MemoryRepo)(nil)

// MemoryCache is an in-memory ArtifactCache.
type MemoryCache struct {
	mu      sync.RWMutex
	entries map[string]json.RawMessage
}

// NewMemoryCache constructs an empty MemoryCache.
func NewMemoryCache() *MemoryCache {
	return &MemoryCache{entries: make(map[string]json.RawMessage)}
}

func cacheKey(documentID, kind string) string {
	return documentID + "|" + kind
}

// Get returns a cached artifact, or ErrNotFound.
func (c *MemoryCache) Get(ctx context.Context, documentID, kind string) (json.RawMessage, error) {
	_ = ctx
	c.mu.RLock()
	defer c.mu.RUnlock()
	payload, ok := c.entries[cacheKey(documentID, kind)]
	if !ok {
		return nil, ErrNotFound
	}
	return payload, nil
}

// Put stores an artifact, overwriting any previous entry.
func (c *MemoryCache) Put(ctx context.Context, documentID, kind string, payload json.RawMessage) error {
	_ = ctx
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[cacheKey(documentID, kind)] = payload
	return nil
}

var _ ArtifactCache = (*MemoryCache)(nil)
