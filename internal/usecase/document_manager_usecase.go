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

var (
	ErrDuplicateDocument = errors.New("document with this content hash was registered recently and force is false")
	ErrDocumentNotFound  = errors.New("document not found")
)

// RegisterDocumentInput is the metadata a caller supplies when registering an
// uploaded document. Upload transport is handled elsewhere; the console only
// records the result.
type RegisterDocumentInput struct {
	Filename    string
	ContentHash string
	SizeBytes   int64
	PageCount   int
	Force       bool
}

// DocumentManager defines the interface for registering and reviewing
// uploaded documents.
type DocumentManager interface {
	Register(ctx context.Context, tenantID string, input RegisterDocumentInput) (*entity.Document, error)
	Get(ctx context.Context, tenantID, id string) (*entity.Document, error)
	List(ctx context.Context, tenantID string, params repository.ListParams) ([]*entity.Document, int, error)
	Delete(ctx context.Context, tenantID, id string) error
}

type documentManagerUseCase struct {
	documentRepo repository.DocumentRepository
	dedupRepo    repository.DedupRepository
	dedupExpiry  time.Duration
}

// NewDocumentManager creates a new DocumentManager use case.
func NewDocumentManager(
	documentRepo repository.DocumentRepository,
	dedupRepo repository.DedupRepository,
	dedupExpiry time.Duration,
) DocumentManager {
	return &documentManagerUseCase{
		documentRepo: documentRepo,
		dedupRepo:    dedupRepo,
		dedupExpiry:  dedupExpiry,
	}
}

func (uc *documentManagerUseCase) Register(ctx context.Context, tenantID string, input RegisterDocumentInput) (*entity.Document, error) {
	if input.Force {
		if err := uc.dedupRepo.Remove(ctx, tenantID, input.ContentHash); err != nil {
			slog.Warn("Failed to remove dedup key for forced registration", "tenant_id", tenantID, "error", err)
			// Continue anyway, as this is not a critical failure
		}
	} else {
		seen, err := uc.dedupRepo.IsSeen(ctx, tenantID, input.ContentHash)
		if err != nil {
			return nil, err
		}
		if seen {
			return nil, ErrDuplicateDocument
		}
	}

	doc := &entity.Document{
		ID:          uuid.NewString(),
		TenantID:    tenantID,
		Filename:    input.Filename,
		ContentHash: input.ContentHash,
		SizeBytes:   input.SizeBytes,
		PageCount:   input.PageCount,
		Status:      entity.DocumentStatusUploaded,
		UploadedAt:  time.Now().UTC(),
	}
	if err := uc.documentRepo.Create(ctx, doc); err != nil {
		return nil, err
	}

	if err := uc.dedupRepo.MarkSeen(ctx, tenantID, input.ContentHash, uc.dedupExpiry); err != nil {
		// Non-critical: the record exists, only repeat-registration protection
		// is weakened until the key lands.
		slog.Error("Failed to mark content hash after registration", "tenant_id", tenantID, "error", err)
	}

	metrics.DocumentsRegisteredTotal.Inc()
	return doc, nil
}

func (uc *documentManagerUseCase) Get(ctx context.Context, tenantID, id string) (*entity.Document, error) {
	doc, err := uc.documentRepo.FindByID(ctx, tenantID, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrDocumentNotFound
		}
		return nil, err
	}
	return doc, nil
}

func (uc *documentManagerUseCase) List(ctx context.Context, tenantID string, params repository.ListParams) ([]*entity.Document, int, error) {
	return uc.documentRepo.List(ctx, tenantID, params)
}

func (uc *documentManagerUseCase) Delete(ctx context.Context, tenantID, id string) error {
	if _, err := uc.Get(ctx, tenantID, id); err != nil {
		return err
	}
	return uc.documentRepo.Delete(ctx, tenantID, id)
}
