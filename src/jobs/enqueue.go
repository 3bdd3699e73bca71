package jobs

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

// ErrQueueUnavailable means no asynq client was configured.
var ErrQueueUnavailable = errors.New("background import queue is not available")

// Enqueuer puts import tasks on the asynq queue.
type Enqueuer struct {
	client *asynq.Client
}

func NewEnqueuer(client *asynq.Client) *Enqueuer {
	return &Enqueuer{client: client}
}

// EnqueueImport queues one upload and returns its task id.
func (e *Enqueuer) EnqueueImport(ctx context.Context, p ImportPayload) (string, error) {
	if e == nil || e.client == nil {
		return "", ErrQueueUnavailable
	}
	task, err := NewImportTask(p)
	if err != nil {
		return "", err
	}

	taskID := "import-" + uuid.NewString()
	if _, err := e.client.EnqueueContext(ctx, task, asynq.TaskID(taskID), asynq.MaxRetry(0)); err != nil {
		return "", fmt.Errorf("enqueue import: %w", err)
	}
	return taskID, nil
}
