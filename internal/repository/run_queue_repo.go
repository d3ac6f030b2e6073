package repository

import "context"

// RunQueueRepository defines the interface for the queue of extraction runs
// handed to the out-of-process runner.
type RunQueueRepository interface {
	// Push enqueues a job ID for execution.
	Push(ctx context.Context, jobID string) error
	// Pop dequeues the next job ID, blocking up to the repository's timeout.
	Pop(ctx context.Context) (string, error)
	// Length returns the current queue depth.
	Length(ctx context.Context) (int64, error)
}
