package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/user/extraction-console/internal/entity"
	"github.com/user/extraction-console/internal/repository"
)

var templateSortColumns = map[string]string{
	"name":       "name",
	"created_at": "created_at",
	"updated_at": "updated_at",
}

// TemplateRepoImpl provides a concrete implementation for the
// TemplateRepository interface using PostgreSQL. Template fields are stored
// as JSONB.
type TemplateRepoImpl struct {
	db *pgxpool.Pool
}

// NewTemplateRepo creates a new instance of TemplateRepoImpl.
func NewTemplateRepo(db *pgxpool.Pool) *TemplateRepoImpl {
	return &TemplateRepoImpl{db: db}
}

// Create stores a new template.
func (r *TemplateRepoImpl) Create(ctx context.Context, tpl *entity.Template) error {
	fieldsJSON, err := json.Marshal(tpl.Fields)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO templates (id, tenant_id, name, description, fields, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err = r.db.Exec(ctx, query,
		tpl.ID,
		tpl.TenantID,
		tpl.Name,
		tpl.Description,
		fieldsJSON,
		tpl.CreatedAt,
		tpl.UpdatedAt,
	)
	return err
}

// FindByID retrieves a template by ID, scoped to a tenant.
func (r *TemplateRepoImpl) FindByID(ctx context.Context, tenantID, id string) (*entity.Template, error) {
	query := `
		SELECT id, tenant_id, name, description, fields, created_at, updated_at
		FROM templates
		WHERE tenant_id = $1 AND id = $2;
	`
	return r.scanTemplate(r.db.QueryRow(ctx, query, tenantID, id))
}

// List retrieves one page of a tenant's templates plus the total count.
func (r *TemplateRepoImpl) List(ctx context.Context, tenantID string, params repository.ListParams) ([]*entity.Template, int, error) {
	total, err := r.CountByTenant(ctx, tenantID)
	if err != nil {
		return nil, 0, err
	}

	query := fmt.Sprintf(`
		SELECT id, tenant_id, name, description, fields, created_at, updated_at
		FROM templates
		WHERE tenant_id = $1
		%s
		LIMIT $2 OFFSET $3;
	`, orderClause(params, templateSortColumns, "created_at"))

	rows, err := r.db.Query(ctx, query, tenantID, params.PerPage, params.Offset())
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var templates []*entity.Template
	for rows.Next() {
		tpl, err := r.scanTemplate(rows)
		if err != nil {
			return nil, 0, err
		}
		templates = append(templates, tpl)
	}
	return templates, total, rows.Err()
}

// CountByTenant returns the number of templates a tenant owns.
func (r *TemplateRepoImpl) CountByTenant(ctx context.Context, tenantID string) (int, error) {
	var total int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM templates WHERE tenant_id = $1;`, tenantID).Scan(&total)
	return total, err
}

// Update replaces the mutable fields of a template.
func (r *TemplateRepoImpl) Update(ctx context.Context, tpl *entity.Template) error {
	fieldsJSON, err := json.Marshal(tpl.Fields)
	if err != nil {
		return err
	}

	query := `
		UPDATE templates
		SET name = $3, description = $4, fields = $5, updated_at = $6
		WHERE tenant_id = $1 AND id = $2;
	`
	_, err = r.db.Exec(ctx, query,
		tpl.TenantID,
		tpl.ID,
		tpl.Name,
		tpl.Description,
		fieldsJSON,
		tpl.UpdatedAt,
	)
	return err
}

// Delete removes a template.
func (r *TemplateRepoImpl) Delete(ctx context.Context, tenantID, id string) error {
	query := `DELETE FROM templates WHERE tenant_id = $1 AND id = $2;`
	_, err := r.db.Exec(ctx, query, tenantID, id)
	return err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *TemplateRepoImpl) scanTemplate(row rowScanner) (*entity.Template, error) {
	var tpl entity.Template
	var fieldsJSON []byte

	err := row.Scan(
		&tpl.ID,
		&tpl.TenantID,
		&tpl.Name,
		&tpl.Description,
		&fieldsJSON,
		&tpl.CreatedAt,
		&tpl.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(fieldsJSON, &tpl.Fields); err != nil {
		return nil, err
	}
	return &tpl, nil
}
