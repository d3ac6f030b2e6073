package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/user/extraction-console/internal/entity"
	"github.com/user/extraction-console/internal/repository"
)

var jobSortColumns = map[string]string{
	"name":        "name",
	"status":      "status",
	"last_run_at": "last_run_at",
	"next_run_at": "next_run_at",
	"created_at":  "created_at",
}

// JobRepoImpl provides a concrete implementation for the JobRepository
// interface using PostgreSQL.
type JobRepoImpl struct {
	db *pgxpool.Pool
}

// NewJobRepo creates a new instance of JobRepoImpl.
func NewJobRepo(db *pgxpool.Pool) *JobRepoImpl {
	return &JobRepoImpl{db: db}
}

// Create stores a new job.
func (r *JobRepoImpl) Create(ctx context.Context, job *entity.ExtractionJob) error {
	query := `
		INSERT INTO extraction_jobs (id, tenant_id, template_id, document_id, name, schedule, status, last_run_at, next_run_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.db.Exec(ctx, query,
		job.ID,
		job.TenantID,
		job.TemplateID,
		job.DocumentID,
		job.Name,
		job.Schedule,
		job.Status,
		job.LastRunAt,
		job.NextRunAt,
		job.CreatedAt,
	)
	return err
}

// FindByID retrieves a job by ID, scoped to a tenant.
func (r *JobRepoImpl) FindByID(ctx context.Context, tenantID, id string) (*entity.ExtractionJob, error) {
	query := `
		SELECT id, tenant_id, template_id, document_id, name, schedule, status, last_run_at, next_run_at, created_at
		FROM extraction_jobs
		WHERE tenant_id = $1 AND id = $2;
	`
	row := r.db.QueryRow(ctx, query, tenantID, id)

	var job entity.ExtractionJob
	err := row.Scan(
		&job.ID,
		&job.TenantID,
		&job.TemplateID,
		&job.DocumentID,
		&job.Name,
		&job.Schedule,
		&job.Status,
		&job.LastRunAt,
		&job.NextRunAt,
		&job.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &job, nil
}

// List retrieves one page of a tenant's jobs plus the total count.
func (r *JobRepoImpl) List(ctx context.Context, tenantID string, params repository.ListParams) ([]*entity.ExtractionJob, int, error) {
	total, err := r.CountByTenant(ctx, tenantID)
	if err != nil {
		return nil, 0, err
	}

	query := fmt.Sprintf(`
		SELECT id, tenant_id, template_id, document_id, name, schedule, status, last_run_at, next_run_at, created_at
		FROM extraction_jobs
		WHERE tenant_id = $1
		%s
		LIMIT $2 OFFSET $3;
	`, orderClause(params, jobSortColumns, "created_at"))

	rows, err := r.db.Query(ctx, query, tenantID, params.PerPage, params.Offset())
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var jobs []*entity.ExtractionJob
	for rows.Next() {
		var job entity.ExtractionJob
		if err := rows.Scan(
			&job.ID,
			&job.TenantID,
			&job.TemplateID,
			&job.DocumentID,
			&job.Name,
			&job.Schedule,
			&job.Status,
			&job.LastRunAt,
			&job.NextRunAt,
			&job.CreatedAt,
		); err != nil {
			return nil, 0, err
		}
		jobs = append(jobs, &job)
	}
	return jobs, total, rows.Err()
}

// CountByTenant returns the number of jobs a tenant owns.
func (r *JobRepoImpl) CountByTenant(ctx context.Context, tenantID string) (int, error) {
	var total int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM extraction_jobs WHERE tenant_id = $1;`, tenantID).Scan(&total)
	return total, err
}

// UpdateStatus transitions a job to a new lifecycle status.
func (r *JobRepoImpl) UpdateStatus(ctx context.Context, tenantID, id, status string) error {
	query := `UPDATE extraction_jobs SET status = $3 WHERE tenant_id = $1 AND id = $2;`
	_, err := r.db.Exec(ctx, query, tenantID, id, status)
	return err
}

// Delete removes a job.
func (r *JobRepoImpl) Delete(ctx context.Context, tenantID, id string) error {
	query := `DELETE FROM extraction_jobs WHERE tenant_id = $1 AND id = $2;`
	_, err := r.db.Exec(ctx, query, tenantID, id)
	return err
}
