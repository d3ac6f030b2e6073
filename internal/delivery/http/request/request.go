package request

import (
	"time"

	"github.com/user/extraction-console/internal/entity"
)

type RegisterDocumentRequest struct {
	Filename    string `json:"filename"`
	ContentHash string `json:"content_hash"`
	SizeBytes   int64  `json:"size_bytes"`
	PageCount   int    `json:"page_count"`
	Force       bool   `json:"force"`
}

type TemplateRequest struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	Fields      []entity.TemplateField `json:"fields"`
}

type JobRequest struct {
	Name       string `json:"name"`
	TemplateID string `json:"template_id"`
	DocumentID string `json:"document_id"`
	Schedule   string `json:"schedule"`
}

type TenantRequest struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
	Plan string `json:"plan"`
}

// IngestExtractionRequest is posted by the runner when a run finishes.
type IngestExtractionRequest struct {
	TenantID    string               `json:"tenant_id"`
	JobID       string               `json:"job_id"`
	DocumentID  string               `json:"document_id"`
	Status      string               `json:"status"`
	Fields      []entity.FieldResult `json:"fields"`
	ExtractedAt *time.Time           `json:"extracted_at,omitempty"`
}
