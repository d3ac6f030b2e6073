package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/user/extraction-console/internal/entity"
	"github.com/user/extraction-console/internal/repository"
)

var ErrExtractionNotFound = errors.New("extraction not found")

// ExtractionViewer defines the interface for reviewing extraction results and
// ingesting finished runs posted back by the runner.
type ExtractionViewer interface {
	Get(ctx context.Context, id string) (*entity.Extraction, error)
	ListByJob(ctx context.Context, tenantID, jobID string, params repository.ListParams) ([]*entity.Extraction, int, error)
	Ingest(ctx context.Context, ex *entity.Extraction) (*entity.Extraction, error)
}

type extractionViewerUseCase struct {
	extractionRepo repository.ExtractionRepository
	jobRepo        repository.JobRepository
}

// NewExtractionViewer creates a new ExtractionViewer use case.
func NewExtractionViewer(
	extractionRepo repository.ExtractionRepository,
	jobRepo repository.JobRepository,
) ExtractionViewer {
	return &extractionViewerUseCase{
		extractionRepo: extractionRepo,
		jobRepo:        jobRepo,
	}
}

func (uc *extractionViewerUseCase) Get(ctx context.Context, id string) (*entity.Extraction, error) {
	ex, err := uc.extractionRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrExtractionNotFound
		}
		return nil, err
	}
	return ex, nil
}

func (uc *extractionViewerUseCase) ListByJob(ctx context.Context, tenantID, jobID string, params repository.ListParams) ([]*entity.Extraction, int, error) {
	return uc.extractionRepo.ListByJob(ctx, tenantID, jobID, params)
}

// Ingest records a finished run. The referenced job must exist; its status is
// advanced to the extraction's terminal status.
func (uc *extractionViewerUseCase) Ingest(ctx context.Context, ex *entity.Extraction) (*entity.Extraction, error) {
	if _, err := uc.jobRepo.FindByID(ctx, ex.TenantID, ex.JobID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}

	if ex.ID == "" {
		ex.ID = uuid.NewString()
	}
	if ex.ExtractedAt.IsZero() {
		ex.ExtractedAt = time.Now().UTC()
	}
	if err := uc.extractionRepo.Create(ctx, ex); err != nil {
		return nil, err
	}
	if err := uc.jobRepo.UpdateStatus(ctx, ex.TenantID, ex.JobID, ex.Status); err != nil {
		return nil, err
	}
	return ex, nil
}
