package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/user/extraction-console/pkg/utils"
)

const dedupKeyPrefix = "doc:"

// DedupRepoImpl provides a concrete implementation for the DedupRepository
// interface using Redis.
type DedupRepoImpl struct {
	client *redis.Client
}

// NewDedupRepo creates a new instance of DedupRepoImpl.
func NewDedupRepo(client *redis.Client) *DedupRepoImpl {
	return &DedupRepoImpl{client: client}
}

// generateKey creates a consistent Redis key for a tenant's content hash.
// Client-supplied hashes are re-hashed so arbitrary input never becomes a raw
// key segment.
func (r *DedupRepoImpl) generateKey(tenantID, contentHash string) string {
	return fmt.Sprintf("%s%s:%s", dedupKeyPrefix, tenantID, utils.SHA256Hex(contentHash))
}

// MarkSeen records a content hash for a tenant by setting a key with a
// specific expiry time.
func (r *DedupRepoImpl) MarkSeen(ctx context.Context, tenantID, contentHash string, expiry time.Duration) error {
	key := r.generateKey(tenantID, contentHash)
	// SETEX is atomic and sets the key with an expiry.
	return r.client.SetEx(ctx, key, "1", expiry).Err()
}

// IsSeen checks whether the content hash was registered recently by checking
// for the existence of its key.
func (r *DedupRepoImpl) IsSeen(ctx context.Context, tenantID, contentHash string) (bool, error) {
	key := r.generateKey(tenantID, contentHash)
	val, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return false, err
	}
	return val == 1, nil
}

// Remove forgets a content hash, used when a caller forces re-registration.
func (r *DedupRepoImpl) Remove(ctx context.Context, tenantID, contentHash string) error {
	key := r.generateKey(tenantID, contentHash)
	return r.client.Del(ctx, key).Err()
}
