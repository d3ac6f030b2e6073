package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/user/extraction-console/internal/entity"
	"github.com/user/extraction-console/internal/repository"
)

const testTenant = "tenant-1"

func newDocumentManagerFixture() (DocumentManager, *fakeDocumentRepo, *fakeDedupRepo) {
	docRepo := newFakeDocumentRepo()
	dedupRepo := newFakeDedupRepo()
	uc := NewDocumentManager(docRepo, dedupRepo, 48*time.Hour)
	return uc, docRepo, dedupRepo
}

func registerInput() RegisterDocumentInput {
	return RegisterDocumentInput{
		Filename:    "invoice-2026-08.pdf",
		ContentHash: "abc123",
		SizeBytes:   52 * 1024,
		PageCount:   3,
	}
}

func TestRegisterDocument(t *testing.T) {
	uc, docRepo, dedupRepo := newDocumentManagerFixture()

	doc, err := uc.Register(context.Background(), testTenant, registerInput())
	require.NoError(t, err)

	assert.NotEmpty(t, doc.ID)
	assert.Equal(t, testTenant, doc.TenantID)
	assert.Equal(t, entity.DocumentStatusUploaded, doc.Status)
	assert.False(t, doc.UploadedAt.IsZero())

	assert.Contains(t, docRepo.docs, doc.ID)
	seen, _ := dedupRepo.IsSeen(context.Background(), testTenant, "abc123")
	assert.True(t, seen, "registration must mark the content hash seen")
}

func TestRegisterDocumentRejectsRecentDuplicate(t *testing.T) {
	uc, docRepo, _ := newDocumentManagerFixture()
	ctx := context.Background()

	_, err := uc.Register(ctx, testTenant, registerInput())
	require.NoError(t, err)

	_, err = uc.Register(ctx, testTenant, registerInput())
	assert.ErrorIs(t, err, ErrDuplicateDocument)
	assert.Len(t, docRepo.docs, 1)
}

func TestRegisterDocumentForceBypassesDedup(t *testing.T) {
	uc, docRepo, dedupRepo := newDocumentManagerFixture()
	ctx := context.Background()

	_, err := uc.Register(ctx, testTenant, registerInput())
	require.NoError(t, err)

	input := registerInput()
	input.Force = true
	_, err = uc.Register(ctx, testTenant, input)
	require.NoError(t, err)

	assert.Len(t, docRepo.docs, 2)
	assert.Equal(t, []string{testTenant + "/abc123"}, dedupRepo.removed)
}

func TestRegisterDocumentDedupIsPerTenant(t *testing.T) {
	uc, docRepo, _ := newDocumentManagerFixture()
	ctx := context.Background()

	_, err := uc.Register(ctx, "tenant-a", registerInput())
	require.NoError(t, err)
	_, err = uc.Register(ctx, "tenant-b", registerInput())
	require.NoError(t, err)

	assert.Len(t, docRepo.docs, 2)
}

func TestRegisterDocumentDedupLookupFailure(t *testing.T) {
	uc, docRepo, dedupRepo := newDocumentManagerFixture()
	dedupRepo.seenErr = errors.New("redis down")

	_, err := uc.Register(context.Background(), testTenant, registerInput())
	assert.EqualError(t, err, "redis down")
	assert.Empty(t, docRepo.docs)
}

func TestRegisterDocumentMarkFailureIsNonCritical(t *testing.T) {
	uc, docRepo, dedupRepo := newDocumentManagerFixture()
	dedupRepo.markErr = errors.New("redis down")

	doc, err := uc.Register(context.Background(), testTenant, registerInput())
	require.NoError(t, err, "a failed dedup mark must not fail the registration")
	assert.Contains(t, docRepo.docs, doc.ID)
}

func TestGetDocumentNotFound(t *testing.T) {
	uc, _, _ := newDocumentManagerFixture()

	_, err := uc.Get(context.Background(), testTenant, "missing")
	assert.ErrorIs(t, err, ErrDocumentNotFound)
}

func TestGetDocumentScopedToTenant(t *testing.T) {
	uc, _, _ := newDocumentManagerFixture()
	ctx := context.Background()

	doc, err := uc.Register(ctx, testTenant, registerInput())
	require.NoError(t, err)

	_, err = uc.Get(ctx, "other-tenant", doc.ID)
	assert.ErrorIs(t, err, ErrDocumentNotFound)
}

func TestDeleteDocument(t *testing.T) {
	uc, docRepo, _ := newDocumentManagerFixture()
	ctx := context.Background()

	doc, err := uc.Register(ctx, testTenant, registerInput())
	require.NoError(t, err)

	require.NoError(t, uc.Delete(ctx, testTenant, doc.ID))
	assert.Empty(t, docRepo.docs)

	assert.ErrorIs(t, uc.Delete(ctx, testTenant, doc.ID), ErrDocumentNotFound)
}

func TestListDocuments(t *testing.T) {
	uc, _, _ := newDocumentManagerFixture()
	ctx := context.Background()

	for _, hash := range []string{"h1", "h2", "h3"} {
		input := registerInput()
		input.ContentHash = hash
		_, err := uc.Register(ctx, testTenant, input)
		require.NoError(t, err)
	}

	docs, total, err := uc.List(ctx, testTenant, repository.ListParams{Page: 1, PerPage: 10})
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	assert.Len(t, docs, 3)
}
