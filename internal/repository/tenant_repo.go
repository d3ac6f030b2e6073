package repository

import (
	"context"

	"github.com/user/extraction-console/internal/entity"
)

// TenantRepository defines the interface for managing tenant records.
type TenantRepository interface {
	// Create stores a new tenant.
	Create(ctx context.Context, tenant *entity.Tenant) error
	// FindByID retrieves a tenant by its ID.
	FindByID(ctx context.Context, id string) (*entity.Tenant, error)
	// List retrieves one page of tenants plus the total tenant count.
	List(ctx context.Context, params ListParams) ([]*entity.Tenant, int, error)
	// Deactivate marks a tenant inactive without deleting its data.
	Deactivate(ctx context.Context, id string) error
}
