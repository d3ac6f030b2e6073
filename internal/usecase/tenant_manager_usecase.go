package usecase

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/user/extraction-console/internal/entity"
	"github.com/user/extraction-console/internal/repository"
)

var (
	ErrTenantNotFound = errors.New("tenant not found")
	ErrInvalidTenant  = errors.New("invalid tenant definition")
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// TenantInput is the caller-supplied definition of a tenant.
type TenantInput struct {
	Name string
	Slug string
	Plan string
}

// TenantManager defines the interface for administering tenants.
type TenantManager interface {
	Create(ctx context.Context, input TenantInput) (*entity.Tenant, error)
	Get(ctx context.Context, id string) (*entity.Tenant, error)
	List(ctx context.Context, params repository.ListParams) ([]*entity.Tenant, int, error)
	Deactivate(ctx context.Context, id string) error
}

type tenantManagerUseCase struct {
	tenantRepo repository.TenantRepository
}

// NewTenantManager creates a new TenantManager use case.
func NewTenantManager(tenantRepo repository.TenantRepository) TenantManager {
	return &tenantManagerUseCase{tenantRepo: tenantRepo}
}

func (uc *tenantManagerUseCase) Create(ctx context.Context, input TenantInput) (*entity.Tenant, error) {
	if input.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidTenant)
	}
	if !slugPattern.MatchString(input.Slug) {
		return nil, fmt.Errorf("%w: slug must be lowercase kebab-case", ErrInvalidTenant)
	}
	plan := input.Plan
	if plan == "" {
		plan = "free"
	}

	tenant := &entity.Tenant{
		ID:        uuid.NewString(),
		Name:      input.Name,
		Slug:      input.Slug,
		Plan:      plan,
		Active:    true,
		CreatedAt: time.Now().UTC(),
	}
	if err := uc.tenantRepo.Create(ctx, tenant); err != nil {
		return nil, err
	}
	return tenant, nil
}

func (uc *tenantManagerUseCase) Get(ctx context.Context, id string) (*entity.Tenant, error) {
	tenant, err := uc.tenantRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrTenantNotFound
		}
		return nil, err
	}
	return tenant, nil
}

func (uc *tenantManagerUseCase) List(ctx context.Context, params repository.ListParams) ([]*entity.Tenant, int, error) {
	return uc.tenantRepo.List(ctx, params)
}

func (uc *tenantManagerUseCase) Deactivate(ctx context.Context, id string) error {
	if _, err := uc.Get(ctx, id); err != nil {
		return err
	}
	return uc.tenantRepo.Deactivate(ctx, id)
}
