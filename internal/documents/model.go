package documents

import "time"

// Document represents an uploaded business document owned by a caller.
type Document struct {
	ID               string
	OwnerID          string
	FileName         string
	OriginalFilename string
	MimeType         string
	SizeBytes        int64
	StorageKey       string
	WordCount        int64
	CreatedAt        time.Time
}
