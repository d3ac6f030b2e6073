package redis

import (
	"context"

	"github.com/redis/go-redis/v9"
)

const runQueueKey = "extraction_runs:queue"

// RunQueueRepoImpl provides a concrete implementation for the
// RunQueueRepository interface using Redis Lists. The console pushes job IDs;
// the out-of-process runner pops them.
type RunQueueRepoImpl struct {
	client *redis.Client
}

// NewRunQueueRepo creates a new instance of RunQueueRepoImpl.
func NewRunQueueRepo(client *redis.Client) *RunQueueRepoImpl {
	return &RunQueueRepoImpl{client: client}
}

// Push adds a job ID to the left side of the Redis list (acting as a queue).
func (r *RunQueueRepoImpl) Push(ctx context.Context, jobID string) error {
	return r.client.LPush(ctx, runQueueKey, jobID).Err()
}

// Pop removes and returns a job ID from the right side of the Redis list.
// It returns redis.Nil as the error when the queue is empty.
func (r *RunQueueRepoImpl) Pop(ctx context.Context) (string, error) {
	return r.client.RPop(ctx, runQueueKey).Result()
}

// Length returns the current number of queued runs.
func (r *RunQueueRepoImpl) Length(ctx context.Context) (int64, error) {
	return r.client.LLen(ctx, runQueueKey).Result()
}
