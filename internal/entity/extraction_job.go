package entity

import "time"

// Extraction job statuses. Execution happens in the out-of-process runner;
// the console only records the lifecycle.
const (
	JobStatusPending   = "pending"
	JobStatusQueued    = "queued"
	JobStatusRunning   = "running"
	JobStatusCompleted = "completed"
	JobStatusFailed    = "failed"
)

// ExtractionJob mirrors the `extraction_jobs` PostgreSQL table schema.
// Schedule is an opaque cron expression evaluated by the runner.
type ExtractionJob struct {
	ID         string
	TenantID   string
	TemplateID string
	DocumentID string
	Name       string
	Schedule   string
	Status     string
	LastRunAt  *time.Time
	NextRunAt  *time.Time
	CreatedAt  time.Time
}
