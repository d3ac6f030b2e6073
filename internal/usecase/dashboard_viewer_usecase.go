package usecase

import (
	"context"

	"github.com/user/extraction-console/internal/repository"
	"github.com/user/extraction-console/pkg/metrics"
	"golang.org/x/sync/errgroup"
)

// DashboardStats is the per-tenant summary shown on the console landing page.
type DashboardStats struct {
	Documents   int   `json:"documents"`
	Templates   int   `json:"templates"`
	Jobs        int   `json:"jobs"`
	Extractions int   `json:"extractions"`
	QueuedRuns  int64 `json:"queued_runs"`
}

// DashboardViewer defines the interface for the tenant dashboard summary.
type DashboardViewer interface {
	Stats(ctx context.Context, tenantID string) (*DashboardStats, error)
}

type dashboardViewerUseCase struct {
	documentRepo   repository.DocumentRepository
	templateRepo   repository.TemplateRepository
	jobRepo        repository.JobRepository
	extractionRepo repository.ExtractionRepository
	runQueue       repository.RunQueueRepository
}

// NewDashboardViewer creates a new DashboardViewer use case.
func NewDashboardViewer(
	documentRepo repository.DocumentRepository,
	templateRepo repository.TemplateRepository,
	jobRepo repository.JobRepository,
	extractionRepo repository.ExtractionRepository,
	runQueue repository.RunQueueRepository,
) DashboardViewer {
	return &dashboardViewerUseCase{
		documentRepo:   documentRepo,
		templateRepo:   templateRepo,
		jobRepo:        jobRepo,
		extractionRepo: extractionRepo,
		runQueue:       runQueue,
	}
}

// Stats fetches the counts concurrently; the dashboard is the hottest page in
// the console and the four counts are independent queries.
func (uc *dashboardViewerUseCase) Stats(ctx context.Context, tenantID string) (*DashboardStats, error) {
	var stats DashboardStats
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		n, err := uc.documentRepo.CountByTenant(gctx, tenantID)
		stats.Documents = n
		return err
	})
	g.Go(func() error {
		n, err := uc.templateRepo.CountByTenant(gctx, tenantID)
		stats.Templates = n
		return err
	})
	g.Go(func() error {
		n, err := uc.jobRepo.CountByTenant(gctx, tenantID)
		stats.Jobs = n
		return err
	})
	g.Go(func() error {
		n, err := uc.extractionRepo.CountByTenant(gctx, tenantID)
		stats.Extractions = n
		return err
	})
	g.Go(func() error {
		n, err := uc.runQueue.Length(gctx)
		stats.QueuedRuns = n
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	metrics.RunQueueDepth.Set(float64(stats.QueuedRuns))
	return &stats, nil
}
