package documents

import "context"

// DocumentsRepo defines persistence operations for documents.
type DocumentsRepo interface {
	Create(ctx context.Context, doc Document) error
	GetByID(ctx context.Context, ownerId, documentID string) (Document, error)
	ListByOwner(ctx context.Context, ownerId string, limit, offset int) ([]Document, error)
}
