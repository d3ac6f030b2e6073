package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/user/extraction-console/internal/entity"
	"github.com/user/extraction-console/internal/repository"
)

var documentSortColumns = map[string]string{
	"filename":    "filename",
	"size_bytes":  "size_bytes",
	"page_count":  "page_count",
	"status":      "status",
	"uploaded_at": "uploaded_at",
}

// DocumentRepoImpl provides a concrete implementation for the
// DocumentRepository interface using PostgreSQL.
type DocumentRepoImpl struct {
	db *pgxpool.Pool
}

// NewDocumentRepo creates a new instance of DocumentRepoImpl.
func NewDocumentRepo(db *pgxpool.Pool) *DocumentRepoImpl {
	return &DocumentRepoImpl{db: db}
}

// Create stores a new document record.
func (r *DocumentRepoImpl) Create(ctx context.Context, doc *entity.Document) error {
	query := `
		INSERT INTO documents (id, tenant_id, filename, content_hash, size_bytes, page_count, status, uploaded_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := r.db.Exec(ctx, query,
		doc.ID,
		doc.TenantID,
		doc.Filename,
		doc.ContentHash,
		doc.SizeBytes,
		doc.PageCount,
		doc.Status,
		doc.UploadedAt,
	)
	return err
}

// FindByID retrieves a document by ID, scoped to a tenant.
func (r *DocumentRepoImpl) FindByID(ctx context.Context, tenantID, id string) (*entity.Document, error) {
	query := `
		SELECT id, tenant_id, filename, content_hash, size_bytes, page_count, status, uploaded_at
		FROM documents
		WHERE tenant_id = $1 AND id = $2;
	`
	row := r.db.QueryRow(ctx, query, tenantID, id)

	var doc entity.Document
	err := row.Scan(
		&doc.ID,
		&doc.TenantID,
		&doc.Filename,
		&doc.ContentHash,
		&doc.SizeBytes,
		&doc.PageCount,
		&doc.Status,
		&doc.UploadedAt,
	)
	if err != nil {
		return nil, err // pgx.ErrNoRows will be returned if not found
	}
	return &doc, nil
}

// List retrieves one page of a tenant's documents plus the total count.
func (r *DocumentRepoImpl) List(ctx context.Context, tenantID string, params repository.ListParams) ([]*entity.Document, int, error) {
	total, err := r.CountByTenant(ctx, tenantID)
	if err != nil {
		return nil, 0, err
	}

	query := fmt.Sprintf(`
		SELECT id, tenant_id, filename, content_hash, size_bytes, page_count, status, uploaded_at
		FROM documents
		WHERE tenant_id = $1
		%s
		LIMIT $2 OFFSET $3;
	`, orderClause(params, documentSortColumns, "uploaded_at"))

	rows, err := r.db.Query(ctx, query, tenantID, params.PerPage, params.Offset())
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var docs []*entity.Document
	for rows.Next() {
		var doc entity.Document
		if err := rows.Scan(
			&doc.ID,
			&doc.TenantID,
			&doc.Filename,
			&doc.ContentHash,
			&doc.SizeBytes,
			&doc.PageCount,
			&doc.Status,
			&doc.UploadedAt,
		); err != nil {
			return nil, 0, err
		}
		docs = append(docs, &doc)
	}
	return docs, total, rows.Err()
}

// CountByTenant returns the number of documents a tenant owns.
func (r *DocumentRepoImpl) CountByTenant(ctx context.Context, tenantID string) (int, error) {
	var total int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM documents WHERE tenant_id = $1;`, tenantID).Scan(&total)
	return total, err
}

// Delete removes a document record.
func (r *DocumentRepoImpl) Delete(ctx context.Context, tenantID, id string) error {
	query := `DELETE FROM documents WHERE tenant_id = $1 AND id = $2;`
	_, err := r.db.Exec(ctx, query, tenantID, id)
	return err
}
