package response

import (
	"time"

	"github.com/user/extraction-console/internal/entity"
	"github.com/user/extraction-console/internal/table"
	"github.com/user/extraction-console/internal/usecase"
)

// TableResponse wraps a rendered table view for a list endpoint.
type TableResponse struct {
	Table table.View `json:"table"`
}

type DocumentResponse struct {
	ID          string    `json:"id"`
	TenantID    string    `json:"tenant_id"`
	Filename    string    `json:"filename"`
	ContentHash string    `json:"content_hash"`
	SizeBytes   int64     `json:"size_bytes"`
	PageCount   int       `json:"page_count"`
	Status      string    `json:"status"`
	UploadedAt  time.Time `json:"uploaded_at"`
}

func FromDocument(doc *entity.Document) DocumentResponse {
	return DocumentResponse{
		ID:          doc.ID,
		TenantID:    doc.TenantID,
		Filename:    doc.Filename,
		ContentHash: doc.ContentHash,
		SizeBytes:   doc.SizeBytes,
		PageCount:   doc.PageCount,
		Status:      doc.Status,
		UploadedAt:  doc.UploadedAt,
	}
}

type TemplateResponse struct {
	ID          string                 `json:"id"`
	TenantID    string                 `json:"tenant_id"`
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	Fields      []entity.TemplateField `json:"fields"`
	CreatedAt   time.Time              `json:"created_at"`
	UpdatedAt   time.Time              `json:"updated_at"`
}

func FromTemplate(tpl *entity.Template) TemplateResponse {
	return TemplateResponse{
		ID:          tpl.ID,
		TenantID:    tpl.TenantID,
		Name:        tpl.Name,
		Description: tpl.Description,
		Fields:      tpl.Fields,
		CreatedAt:   tpl.CreatedAt,
		UpdatedAt:   tpl.UpdatedAt,
	}
}

type JobResponse struct {
	ID         string     `json:"id"`
	TenantID   string     `json:"tenant_id"`
	TemplateID string     `json:"template_id"`
	DocumentID string     `json:"document_id"`
	Name       string     `json:"name"`
	Schedule   string     `json:"schedule,omitempty"`
	Status     string     `json:"status"`
	LastRunAt  *time.Time `json:"last_run_at,omitempty"`
	NextRunAt  *time.Time `json:"next_run_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}

func FromJob(job *entity.ExtractionJob) JobResponse {
	return JobResponse{
		ID:         job.ID,
		TenantID:   job.TenantID,
		TemplateID: job.TemplateID,
		DocumentID: job.DocumentID,
		Name:       job.Name,
		Schedule:   job.Schedule,
		Status:     job.Status,
		LastRunAt:  job.LastRunAt,
		NextRunAt:  job.NextRunAt,
		CreatedAt:  job.CreatedAt,
	}
}

type TenantResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	Plan      string    `json:"plan"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
}

func FromTenant(tenant *entity.Tenant) TenantResponse {
	return TenantResponse{
		ID:        tenant.ID,
		Name:      tenant.Name,
		Slug:      tenant.Slug,
		Plan:      tenant.Plan,
		Active:    tenant.Active,
		CreatedAt: tenant.CreatedAt,
	}
}

// ExtractionResponse carries the extraction metadata plus its field results
// rendered through a client-mode table.
type ExtractionResponse struct {
	ID          string     `json:"id"`
	TenantID    string     `json:"tenant_id"`
	JobID       string     `json:"job_id"`
	DocumentID  string     `json:"document_id"`
	Status      string     `json:"status"`
	ExtractedAt time.Time  `json:"extracted_at"`
	FieldsTable table.View `json:"fields_table"`
}

func FromExtraction(ex *entity.Extraction, fieldsTable table.View) ExtractionResponse {
	return ExtractionResponse{
		ID:          ex.ID,
		TenantID:    ex.TenantID,
		JobID:       ex.JobID,
		DocumentID:  ex.DocumentID,
		Status:      ex.Status,
		ExtractedAt: ex.ExtractedAt,
		FieldsTable: fieldsTable,
	}
}

type InspectDocumentResponse struct {
	PageCount int `json:"page_count"`
}

type DashboardResponse struct {
	Stats usecase.DashboardStats `json:"stats"`
}

type RunNowResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	JobID   string `json:"job_id"`
}
