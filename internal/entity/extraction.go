package entity

import "time"

// FieldResult is one AI-extracted field value. Confidence is nil when the
// model could not score the field. Stored as JSONB in PostgreSQL.
type FieldResult struct {
	Name       string   `json:"name"`
	Value      string   `json:"value"`
	Confidence *float64 `json:"confidence,omitempty"`
}

// Extraction mirrors the `extractions` PostgreSQL table schema: one run of a
// job against a document, with its per-field results.
type Extraction struct {
	ID          string
	JobID       string
	TenantID    string
	DocumentID  string
	Status      string        // reuses the job status values
	Fields      []FieldResult // stored as JSONB
	ExtractedAt time.Time
}
