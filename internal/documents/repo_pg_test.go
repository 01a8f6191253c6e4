package documents

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestPGRepoCreate(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	doc := Document{
		ID:         "doc-1",
		OwnerID:    "owner-1",
		FileName:   "plan.pdf",
		MimeType:   "application/pdf",
		SizeBytes:  2048,
		StorageKey: "ab/cd/doc.pdf",
		WordCount:  340,
		CreatedAt:  time.Now().UTC(),
	}

	mock.ExpectExec("INSERT INTO documents").
		WithArgs(
			doc.ID,
			doc.OwnerID,
			doc.FileName,
			doc.FileName, // original_filename defaults to file_name
			doc.MimeType,
			doc.SizeBytes,
			sqlmock.AnyArg(), // storage_key
			doc.WordCount,
			sqlmock.AnyArg(),
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.Create(context.Background(), doc); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoGetByIDNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	mock.ExpectQuery("FROM documents").
		WithArgs("owner-1", "missing").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "owner_id", "file_name", "original_filename", "mime_type",
			"size_bytes", "storage_key", "word_count", "created_at",
		}))

	if _, err := repo.GetByID(context.Background(), "owner-1", "missing"); err != ErrNotFound {
		t.Fatalf("GetByID err = %v, want ErrNotFound", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoListByOwner(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	now := time.Now().UTC()
	rows := sqlmock.NewRows([]string{
		"id", "owner_id", "file_name", "original_filename", "mime_type",
		"size_bytes", "storage_key", "word_count", "created_at",
	}).
		AddRow("doc-2", "owner-1", "b.docx", "b.docx", "application/vnd.openxmlformats-officedocument.wordprocessingml.document", int64(512), "k2", int64(90), now).
		AddRow("doc-1", "owner-1", "a.txt", "a.txt", "text/plain", int64(128), "k1", int64(40), now.Add(-time.Hour))

	mock.ExpectQuery("FROM documents").
		WithArgs("owner-1", 20, 0).
		WillReturnRows(rows)

	docs, err := repo.ListByOwner(context.Background(), "owner-1", 0, 0)
	if err != nil {
		t.Fatalf("ListByOwner: %v", err)
	}
	if len(docs) != 2 || docs[0].ID != "doc-2" || docs[1].WordCount != 40 {
		t.Fatalf("docs = %+v", docs)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}
