package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateTenant(t *testing.T) {
	uc := NewTenantManager(newFakeTenantRepo())

	tenant, err := uc.Create(context.Background(), TenantInput{Name: "Acme Corp", Slug: "acme-corp"})
	require.NoError(t, err)

	assert.NotEmpty(t, tenant.ID)
	assert.Equal(t, "free", tenant.Plan, "plan defaults to free")
	assert.True(t, tenant.Active)
}

func TestCreateTenantValidation(t *testing.T) {
	uc := NewTenantManager(newFakeTenantRepo())
	ctx := context.Background()

	_, err := uc.Create(ctx, TenantInput{Slug: "acme"})
	assert.ErrorIs(t, err, ErrInvalidTenant)

	for _, slug := range []string{"", "Acme", "acme_corp", "-acme", "acme-", "a b"} {
		_, err := uc.Create(ctx, TenantInput{Name: "Acme", Slug: slug})
		assert.ErrorIs(t, err, ErrInvalidTenant, "slug %q", slug)
	}
}

func TestCreateTenantKeepsExplicitPlan(t *testing.T) {
	uc := NewTenantManager(newFakeTenantRepo())

	tenant, err := uc.Create(context.Background(), TenantInput{Name: "Acme", Slug: "acme", Plan: "enterprise"})
	require.NoError(t, err)
	assert.Equal(t, "enterprise", tenant.Plan)
}

func TestDeactivateTenant(t *testing.T) {
	repo := newFakeTenantRepo()
	uc := NewTenantManager(repo)
	ctx := context.Background()

	tenant, err := uc.Create(ctx, TenantInput{Name: "Acme", Slug: "acme"})
	require.NoError(t, err)

	require.NoError(t, uc.Deactivate(ctx, tenant.ID))
	assert.False(t, repo.tenants[tenant.ID].Active)

	assert.ErrorIs(t, uc.Deactivate(ctx, "missing"), ErrTenantNotFound)
}

func TestGetTenantNotFound(t *testing.T) {
	uc := NewTenantManager(newFakeTenantRepo())

	_, err := uc.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrTenantNotFound)
}
