package entity

import "time"

// Document statuses as they progress through the server-side pipeline.
const (
	DocumentStatusUploaded   = "uploaded"
	DocumentStatusProcessing = "processing"
	DocumentStatusReady      = "ready"
	DocumentStatusFailed     = "failed"
)

// Document mirrors the `documents` PostgreSQL table schema. ContentHash is the
// client-computed SHA-256 of the file body and backs upload deduplication.
type Document struct {
	ID          string
	TenantID    string
	Filename    string
	ContentHash string
	SizeBytes   int64
	PageCount   int
	Status      string
	UploadedAt  time.Time
}
