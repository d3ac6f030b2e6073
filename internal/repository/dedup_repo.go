package repository

import (
	"context"
	"time"
)

// DedupRepository defines the interface for the short-lived registry of
// recently registered document content hashes, used to block accidental
// duplicate uploads.
type DedupRepository interface {
	// MarkSeen records a content hash for a tenant with an expiry.
	MarkSeen(ctx context.Context, tenantID, contentHash string, expiry time.Duration) error
	// IsSeen reports whether the content hash was registered recently.
	IsSeen(ctx context.Context, tenantID, contentHash string) (bool, error)
	// Remove forgets a content hash, used for forced re-registration.
	Remove(ctx context.Context, tenantID, contentHash string) error
}
