package repository

import (
	"context"

	"github.com/user/extraction-console/internal/entity"
)

// ExtractionRepository defines the interface for extraction results produced
// by the runner and reviewed in the console.
type ExtractionRepository interface {
	// Create stores a finished extraction with its field results.
	Create(ctx context.Context, ex *entity.Extraction) error
	// FindByID retrieves an extraction by ID.
	FindByID(ctx context.Context, id string) (*entity.Extraction, error)
	// ListByJob retrieves one page of a job's extractions plus the total count.
	ListByJob(ctx context.Context, tenantID, jobID string, params ListParams) ([]*entity.Extraction, int, error)
	// CountByTenant returns the number of extractions stored for a tenant.
	CountByTenant(ctx context.Context, tenantID string) (int, error)
}
