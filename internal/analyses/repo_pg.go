package analyses

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
)

// PGRepo implements AnalysesRepo using Postgres. The profile is stored as
// one JSONB column.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new analysis.
func (r *PGRepo) Create(ctx context.Context, analysis Analysis) error {
	const query = `
INSERT INTO analyses (
    id,
    document_id,
    owner_id,
    status,
    profile,
    created_at
) VALUES ($1, $2, $3, $4, $5, $6)`

	profileJSON, err := json.Marshal(analysis.Profile)
	if err != nil {
		return err
	}

	_, err = r.DB.ExecContext(
		ctx,
		query,
		analysis.ID,
		analysis.DocumentID,
		analysis.OwnerID,
		analysis.Status,
		profileJSON,
		analysis.CreatedAt,
	)
	return err
}

// GetLatestByDocument returns the most recent analysis for a document.
func (r *PGRepo) GetLatestByDocument(ctx context.Context, ownerId, documentID string) (Analysis, error) {
	const query = `
SELECT id, document_id, owner_id, status, profile, created_at
FROM analyses
WHERE owner_id = $1 AND document_id = $2
ORDER BY created_at DESC
LIMIT 1`

	var analysis Analysis
	var profileJSON []byte
	err := r.DB.QueryRowContext(ctx, query, ownerId, documentID).Scan(
		&analysis.ID,
		&analysis.DocumentID,
		&analysis.OwnerID,
		&analysis.Status,
		&profileJSON,
		&analysis.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Analysis{}, ErrNotFound
		}
		return Analysis{}, err
	}
	if len(profileJSON) > 0 {
		if err := json.Unmarshal(profileJSON, &analysis.Profile); err != nil {
			return Analysis{}, err
		}
	}
	return analysis, nil
}

// CountIntents aggregates intent occurrences across all stored analyses.
func (r *PGRepo) CountIntents(ctx context.Context) (map[string]int, error) {
	const query = `
SELECT intent, COUNT(*)
FROM analyses, jsonb_array_elements_text(profile->'framework'->'intents') AS intent
GROUP BY intent`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[string]int)
	for rows.Next() {
		var intent string
		var count int
		if err := rows.Scan(&intent, &count); err != nil {
			return nil, err
		}
		out[intent] = count
	}
	return out, rows.Err()
}

var _ AnalysesRepo = (*PGRepo)(nil)

// PGCache implements ArtifactCache using the genai_cache table.
type PGCache struct {
	DB *sql.DB
}

// Get returns a cached artifact payload, or ErrNotFound.
func (c *PGCache) Get(ctx context.Context, documentID, kind string) (json.RawMessage, error) {
	const query = `
SELECT payload
FROM genai_cache
WHERE document_id = $1 AND artifact_kind = $2`

	var payload []byte
	err := c.DB.QueryRowContext(ctx, query, documentID, kind).Scan(&payload)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return payload, nil
}

// Put stores an artifact payload, overwriting any previous entry.
func (c *PGCache) Put(ctx context.Context, documentID, kind string, payload json.RawMessage) error {
	const query = `
INSERT INTO genai_cache (document_id, artifact_kind, payload)
VALUES ($1, $2, $3)
ON CONFLICT (document_id, artifact_kind) DO UPDATE SET payload = EXCLUDED.payload`

	_, err := c.DB.ExecContext(ctx, query, documentID, kind, []byte(payload))
	return err
}

var _ ArtifactCache = (*PGCache)(nil)
