package repository

import (
	"context"

	"github.com/user/extraction-console/internal/entity"
)

// TemplateRepository defines the interface for managing extraction templates.
type TemplateRepository interface {
	// Create stores a new template.
	Create(ctx context.Context, tpl *entity.Template) error
	// FindByID retrieves a template by ID, scoped to a tenant.
	FindByID(ctx context.Context, tenantID, id string) (*entity.Template, error)
	// List retrieves one page of a tenant's templates plus the total count.
	List(ctx context.Context, tenantID string, params ListParams) ([]*entity.Template, int, error)
	// CountByTenant returns the number of templates a tenant owns.
	CountByTenant(ctx context.Context, tenantID string) (int, error)
	// Update replaces the mutable fields of a template.
	Update(ctx context.Context, tpl *entity.Template) error
	// Delete removes a template.
	Delete(ctx context.Context, tenantID, id string) error
}
