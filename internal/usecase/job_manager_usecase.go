package usecase

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/user/extraction-console/internal/entity"
	"github.com/user/extraction-console/internal/repository"
	"github.com/user/extraction-console/pkg/metrics"
)

var ErrJobNotFound = errors.New("extraction job not found")

// JobInput is the caller-supplied definition of an extraction job. Schedule
// is an opaque cron expression; the runner owns its evaluation.
type JobInput struct {
	Name       string
	TemplateID string
	DocumentID string
	Schedule   string
}

// JobManager defines the interface for managing extraction jobs and handing
// runs to the out-of-process runner.
type JobManager interface {
	Create(ctx context.Context, tenantID string, input JobInput) (*entity.ExtractionJob, error)
	Get(ctx context.Context, tenantID, id string) (*entity.ExtractionJob, error)
	List(ctx context.Context, tenantID string, params repository.ListParams) ([]*entity.ExtractionJob, int, error)
	RunNow(ctx context.Context, tenantID, id string) error
	Delete(ctx context.Context, tenantID, id string) error
}

type jobManagerUseCase struct {
	jobRepo      repository.JobRepository
	templateRepo repository.TemplateRepository
	documentRepo repository.DocumentRepository
	runQueue     repository.RunQueueRepository
}

// NewJobManager creates a new JobManager use case.
func NewJobManager(
	jobRepo repository.JobRepository,
	templateRepo repository.TemplateRepository,
	documentRepo repository.DocumentRepository,
	runQueue repository.RunQueueRepository,
) JobManager {
	return &jobManagerUseCase{
		jobRepo:      jobRepo,
		templateRepo: templateRepo,
		documentRepo: documentRepo,
		runQueue:     runQueue,
	}
}

func (uc *jobManagerUseCase) Create(ctx context.Context, tenantID string, input JobInput) (*entity.ExtractionJob, error) {
	if _, err := uc.templateRepo.FindByID(ctx, tenantID, input.TemplateID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrTemplateNotFound
		}
		return nil, err
	}
	if _, err := uc.documentRepo.FindByID(ctx, tenantID, input.DocumentID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrDocumentNotFound
		}
		return nil, err
	}

	job := &entity.ExtractionJob{
		ID:         uuid.NewString(),
		TenantID:   tenantID,
		TemplateID: input.TemplateID,
		DocumentID: input.DocumentID,
		Name:       input.Name,
		Schedule:   input.Schedule,
		Status:     entity.JobStatusPending,
		CreatedAt:  time.Now().UTC(),
	}
	if err := uc.jobRepo.Create(ctx, job); err != nil {
		return nil, err
	}
	return job, nil
}

func (uc *jobManagerUseCase) Get(ctx context.Context, tenantID, id string) (*entity.ExtractionJob, error) {
	job, err := uc.jobRepo.FindByID(ctx, tenantID, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}
	return job, nil
}

func (uc *jobManagerUseCase) List(ctx context.Context, tenantID string, params repository.ListParams) ([]*entity.ExtractionJob, int, error) {
	return uc.jobRepo.List(ctx, tenantID, params)
}

// RunNow enqueues an immediate run for the job and marks it queued. The
// status write happens after the enqueue: a job visible as queued with no
// queue entry would never run.
func (uc *jobManagerUseCase) RunNow(ctx context.Context, tenantID, id string) error {
	job, err := uc.Get(ctx, tenantID, id)
	if err != nil {
		return err
	}

	if err := uc.runQueue.Push(ctx, job.ID); err != nil {
		return err
	}
	metrics.ExtractionRunsEnqueuedTotal.Inc()

	if err := uc.jobRepo.UpdateStatus(ctx, tenantID, id, entity.JobStatusQueued); err != nil {
		// The run is enqueued either way; the runner will correct the status
		// when it picks the job up.
		slog.Error("Failed to mark job queued after enqueue", "job_id", id, "error", err)
	}
	return nil
}

func (uc *jobManagerUseCase) Delete(ctx context.Context, tenantID, id string) error {
	if _, err := uc.Get(ctx, tenantID, id); err != nil {
		return err
	}
	return uc.jobRepo.Delete(ctx, tenantID, id)
}
