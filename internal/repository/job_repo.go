package repository

import (
	"context"

	"github.com/user/extraction-console/internal/entity"
)

// JobRepository defines the interface for managing extraction jobs. Execution
// is owned by the out-of-process runner; the console only reads and updates
// job records.
type JobRepository interface {
	// Create stores a new job.
	Create(ctx context.Context, job *entity.ExtractionJob) error
	// FindByID retrieves a job by ID, scoped to a tenant.
	FindByID(ctx context.Context, tenantID, id string) (*entity.ExtractionJob, error)
	// List retrieves one page of a tenant's jobs plus the total count.
	List(ctx context.Context, tenantID string, params ListParams) ([]*entity.ExtractionJob, int, error)
	// CountByTenant returns the number of jobs a tenant owns.
	CountByTenant(ctx context.Context, tenantID string) (int, error)
	// UpdateStatus transitions a job to a new lifecycle status.
	UpdateStatus(ctx context.Context, tenantID, id, status string) error
	// Delete removes a job.
	Delete(ctx context.Context, tenantID, id string) error
}
