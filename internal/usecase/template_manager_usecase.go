package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/user/extraction-console/internal/entity"
	"github.com/user/extraction-console/internal/repository"
)

var (
	ErrTemplateNotFound = errors.New("template not found")
	ErrInvalidTemplate  = errors.New("invalid template definition")
)

var templateFieldTypes = map[string]bool{
	"text":     true,
	"number":   true,
	"date":     true,
	"currency": true,
	"boolean":  true,
}

// TemplateInput is the caller-supplied definition of an extraction template.
type TemplateInput struct {
	Name        string
	Description string
	Fields      []entity.TemplateField
}

// TemplateManager defines the interface for managing extraction templates.
type TemplateManager interface {
	Create(ctx context.Context, tenantID string, input TemplateInput) (*entity.Template, error)
	Get(ctx context.Context, tenantID, id string) (*entity.Template, error)
	List(ctx context.Context, tenantID string, params repository.ListParams) ([]*entity.Template, int, error)
	Update(ctx context.Context, tenantID, id string, input TemplateInput) (*entity.Template, error)
	Delete(ctx context.Context, tenantID, id string) error
}

type templateManagerUseCase struct {
	templateRepo repository.TemplateRepository
}

// NewTemplateManager creates a new TemplateManager use case.
func NewTemplateManager(templateRepo repository.TemplateRepository) TemplateManager {
	return &templateManagerUseCase{templateRepo: templateRepo}
}

func (uc *templateManagerUseCase) Create(ctx context.Context, tenantID string, input TemplateInput) (*entity.Template, error) {
	if err := validateTemplateInput(input); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	tpl := &entity.Template{
		ID:          uuid.NewString(),
		TenantID:    tenantID,
		Name:        input.Name,
		Description: input.Description,
		Fields:      input.Fields,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.templateRepo.Create(ctx, tpl); err != nil {
		return nil, err
	}
	return tpl, nil
}

func (uc *templateManagerUseCase) Get(ctx context.Context, tenantID, id string) (*entity.Template, error) {
	tpl, err := uc.templateRepo.FindByID(ctx, tenantID, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrTemplateNotFound
		}
		return nil, err
	}
	return tpl, nil
}

func (uc *templateManagerUseCase) List(ctx context.Context, tenantID string, params repository.ListParams) ([]*entity.Template, int, error) {
	return uc.templateRepo.List(ctx, tenantID, params)
}

func (uc *templateManagerUseCase) Update(ctx context.Context, tenantID, id string, input TemplateInput) (*entity.Template, error) {
	if err := validateTemplateInput(input); err != nil {
		return nil, err
	}

	tpl, err := uc.Get(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	tpl.Name = input.Name
	tpl.Description = input.Description
	tpl.Fields = input.Fields
	tpl.UpdatedAt = time.Now().UTC()

	if err := uc.templateRepo.Update(ctx, tpl); err != nil {
		return nil, err
	}
	return tpl, nil
}

func (uc *templateManagerUseCase) Delete(ctx context.Context, tenantID, id string) error {
	if _, err := uc.Get(ctx, tenantID, id); err != nil {
		return err
	}
	return uc.templateRepo.Delete(ctx, tenantID, id)
}

func validateTemplateInput(input TemplateInput) error {
	if input.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidTemplate)
	}
	if len(input.Fields) == 0 {
		return fmt.Errorf("%w: at least one field is required", ErrInvalidTemplate)
	}
	seen := make(map[string]bool, len(input.Fields))
	for _, f := range input.Fields {
		if f.Name == "" {
			return fmt.Errorf("%w: field name is required", ErrInvalidTemplate)
		}
		if seen[f.Name] {
			return fmt.Errorf("%w: duplicate field %q", ErrInvalidTemplate, f.Name)
		}
		seen[f.Name] = true
		if !templateFieldTypes[f.Type] {
			return fmt.Errorf("%w: unknown field type %q", ErrInvalidTemplate, f.Type)
		}
	}
	return nil
}
