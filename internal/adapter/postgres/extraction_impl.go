package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/user/extraction-console/internal/entity"
	"github.com/user/extraction-console/internal/repository"
)

var extractionSortColumns = map[string]string{
	"status":       "status",
	"extracted_at": "extracted_at",
}

// ExtractionRepoImpl provides a concrete implementation for the
// ExtractionRepository interface using PostgreSQL. Field results are stored
// as JSONB.
type ExtractionRepoImpl struct {
	db *pgxpool.Pool
}

// NewExtractionRepo creates a new instance of ExtractionRepoImpl.
func NewExtractionRepo(db *pgxpool.Pool) *ExtractionRepoImpl {
	return &ExtractionRepoImpl{db: db}
}

// Create stores a finished extraction with its field results.
func (r *ExtractionRepoImpl) Create(ctx context.Context, ex *entity.Extraction) error {
	fieldsJSON, err := json.Marshal(ex.Fields)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO extractions (id, job_id, tenant_id, document_id, status, fields, extracted_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err = r.db.Exec(ctx, query,
		ex.ID,
		ex.JobID,
		ex.TenantID,
		ex.DocumentID,
		ex.Status,
		fieldsJSON,
		ex.ExtractedAt,
	)
	return err
}

// FindByID retrieves an extraction by ID.
func (r *ExtractionRepoImpl) FindByID(ctx context.Context, id string) (*entity.Extraction, error) {
	query := `
		SELECT id, job_id, tenant_id, document_id, status, fields, extracted_at
		FROM extractions
		WHERE id = $1;
	`
	return r.scanExtraction(r.db.QueryRow(ctx, query, id))
}

// ListByJob retrieves one page of a job's extractions plus the total count.
func (r *ExtractionRepoImpl) ListByJob(ctx context.Context, tenantID, jobID string, params repository.ListParams) ([]*entity.Extraction, int, error) {
	var total int
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM extractions WHERE tenant_id = $1 AND job_id = $2;`,
		tenantID, jobID,
	).Scan(&total)
	if err != nil {
		return nil, 0, err
	}

	query := fmt.Sprintf(`
		SELECT id, job_id, tenant_id, document_id, status, fields, extracted_at
		FROM extractions
		WHERE tenant_id = $1 AND job_id = $2
		%s
		LIMIT $3 OFFSET $4;
	`, orderClause(params, extractionSortColumns, "extracted_at"))

	rows, err := r.db.Query(ctx, query, tenantID, jobID, params.PerPage, params.Offset())
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var extractions []*entity.Extraction
	for rows.Next() {
		ex, err := r.scanExtraction(rows)
		if err != nil {
			return nil, 0, err
		}
		extractions = append(extractions, ex)
	}
	return extractions, total, rows.Err()
}

// CountByTenant returns the number of extractions stored for a tenant.
func (r *ExtractionRepoImpl) CountByTenant(ctx context.Context, tenantID string) (int, error) {
	var total int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM extractions WHERE tenant_id = $1;`, tenantID).Scan(&total)
	return total, err
}

func (r *ExtractionRepoImpl) scanExtraction(row rowScanner) (*entity.Extraction, error) {
	var ex entity.Extraction
	var fieldsJSON []byte

	err := row.Scan(
		&ex.ID,
		&ex.JobID,
		&ex.TenantID,
		&ex.DocumentID,
		&ex.Status,
		&fieldsJSON,
		&ex.ExtractedAt,
	)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(fieldsJSON, &ex.Fields); err != nil {
		return nil, err
	}
	return &ex, nil
}
