package repository

import (
	"context"

	"github.com/user/extraction-console/internal/entity"
)

// DocumentRepository defines the interface for storing and listing uploaded
// document records.
type DocumentRepository interface {
	// Create stores a new document record.
	Create(ctx context.Context, doc *entity.Document) error
	// FindByID retrieves a document by ID, scoped to a tenant.
	FindByID(ctx context.Context, tenantID, id string) (*entity.Document, error)
	// List retrieves one page of a tenant's documents plus the total count.
	List(ctx context.Context, tenantID string, params ListParams) ([]*entity.Document, int, error)
	// CountByTenant returns the number of documents a tenant owns.
	CountByTenant(ctx context.Context, tenantID string) (int, error)
	// Delete removes a document record.
	Delete(ctx context.Context, tenantID, id string) error
}
