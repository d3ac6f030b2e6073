package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/user/extraction-console/internal/entity"
	"github.com/user/extraction-console/internal/repository"
)

var tenantSortColumns = map[string]string{
	"name":       "name",
	"slug":       "slug",
	"plan":       "plan",
	"created_at": "created_at",
}

// TenantRepoImpl provides a concrete implementation for the TenantRepository
// interface using PostgreSQL.
type TenantRepoImpl struct {
	db *pgxpool.Pool
}

// NewTenantRepo creates a new instance of TenantRepoImpl.
func NewTenantRepo(db *pgxpool.Pool) *TenantRepoImpl {
	return &TenantRepoImpl{db: db}
}

// Create stores a new tenant.
func (r *TenantRepoImpl) Create(ctx context.Context, tenant *entity.Tenant) error {
	query := `
		INSERT INTO tenants (id, name, slug, plan, active, created_at)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	_, err := r.db.Exec(ctx, query,
		tenant.ID,
		tenant.Name,
		tenant.Slug,
		tenant.Plan,
		tenant.Active,
		tenant.CreatedAt,
	)
	return err
}

// FindByID retrieves a tenant by its ID.
func (r *TenantRepoImpl) FindByID(ctx context.Context, id string) (*entity.Tenant, error) {
	query := `
		SELECT id, name, slug, plan, active, created_at
		FROM tenants
		WHERE id = $1;
	`
	row := r.db.QueryRow(ctx, query, id)

	var tenant entity.Tenant
	err := row.Scan(
		&tenant.ID,
		&tenant.Name,
		&tenant.Slug,
		&tenant.Plan,
		&tenant.Active,
		&tenant.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &tenant, nil
}

// List retrieves one page of tenants plus the total tenant count.
func (r *TenantRepoImpl) List(ctx context.Context, params repository.ListParams) ([]*entity.Tenant, int, error) {
	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM tenants;`).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := fmt.Sprintf(`
		SELECT id, name, slug, plan, active, created_at
		FROM tenants
		%s
		LIMIT $1 OFFSET $2;
	`, orderClause(params, tenantSortColumns, "created_at"))

	rows, err := r.db.Query(ctx, query, params.PerPage, params.Offset())
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var tenants []*entity.Tenant
	for rows.Next() {
		var tenant entity.Tenant
		if err := rows.Scan(
			&tenant.ID,
			&tenant.Name,
			&tenant.Slug,
			&tenant.Plan,
			&tenant.Active,
			&tenant.CreatedAt,
		); err != nil {
			return nil, 0, err
		}
		tenants = append(tenants, &tenant)
	}
	return tenants, total, rows.Err()
}

// Deactivate marks a tenant inactive without deleting its data.
func (r *TenantRepoImpl) Deactivate(ctx context.Context, id string) error {
	query := `UPDATE tenants SET active = false WHERE id = $1;`
	_, err := r.db.Exec(ctx, query, id)
	return err
}
