package documents

import (
	"bytes"
	"context"
	"io"
	"time"

	"github.com/google/uuid"

	"strategix-backend/internal/extract"
	"strategix-backend/internal/lexical"
	"strategix-backend/internal/shared/storage/object"
)

// Service contains business logic for documents.
type Service struct {
	Store object.ObjectStore
	Repo  DocumentsRepo
}

// Upload saves the file to object storage, extracts its text and records the
// document. The extracted text is returned so the caller can run analysis
// without a second read. Unreadable files still produce a document; the
// returned text is empty and analysis records it as no_text.
func (s *Service) Upload(ctx context.Context, ownerId, fileName string, r io.Reader) (Document, string, error) {
	if fileName == "" {
		return Document{}, "", ErrInvalidInput
	}

	raw, err := io.ReadAll(r)
	if err != nil {
		return Document{}, "", err
	}

	text := extract.FromBytes(raw, fileName)

	storageKey, size, mimeType, err := s.Store.Save(ctx, ownerId, fileName, bytes.NewReader(raw))
	if err != nil {
		return Document{}, "", err
	}

	doc := Document{
		ID:         uuid.NewString(),
		OwnerID:    ownerId,
		FileName:   fileName,
		MimeType:   mimeType,
		SizeBytes:  size,
		StorageKey: storageKey,
		WordCount:  int64(lexical.WordCount(text)),
		CreatedAt:  time.Now().UTC(),
	}

	if err := s.Repo.Create(ctx, doc); err != nil {
		return Document{}, "", err
	}

	return doc, text, nil
}

// Get returns one document owned by ownerId.
func (s *Service) Get(ctx context.Context, ownerId, documentID string) (Document, error) {
	if documentID == "" {
		return Document{}, ErrInvalidInput
	}
	return s.Repo.GetByID(ctx, ownerId, documentID)
}

// Text re-extracts the stored document's text from object storage.
func (s *Service) Text(ctx context.Context, doc Document) string {
	return extract.FromStore(ctx, s.Store, doc.StorageKey, doc.FileName)
}

// List returns the owner's documents, newest first.
func (s *Service) List(ctx context.Context, ownerId string, limit, offset int) ([]Document, error) {
	return s.Repo.ListByOwner(ctx, ownerId, limit, offset)
}
