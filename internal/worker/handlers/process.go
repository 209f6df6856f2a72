package worker_handler

import (
	"context"
	"fmt"

	"github.com/hibiken/asynq"
	worker_task "github.com/markwayne24/todo-app/internal/worker/tasks"
	"github.com/rs/zerolog/log"
)

// ProcessTask is the single consumption entrypoint: it dispatches on the job
// type and logs the job lifecycle. An unknown type fails the job immediately
// (wrapping asynq.SkipRetry) instead of being silently dropped.
func (wh *WorkerHandler) ProcessTask(ctx context.Context, t *asynq.Task) error {
	jobID, _ := asynq.GetTaskID(ctx)
	log.Info().Str("job_id", jobID).Str("job_type", t.Type()).Msg("Worker: processing job")

	var err error
	switch t.Type() {
	case worker_task.TaskSendWelcomeEmail:
		err = wh.handleSendWelcomeEmail(ctx, t)
	case worker_task.TaskSendLoginAttemptEmail:
		err = wh.handleSendLoginAttemptEmail(ctx, t)
	case worker_task.TaskSendTaskStatusUpdateEmail:
		err = wh.handleSendTaskStatusUpdateEmail(ctx, t)
	case worker_task.TaskSendTaskReminder:
		err = wh.handleSendTaskReminder(ctx, t)
	case worker_task.TaskSendTaskOverdue:
		err = wh.handleSendTaskOverdue(ctx, t)
	case worker_task.TaskUpdateOverdueStatus:
		err = wh.handleUpdateOverdueStatus(ctx, t)
	case worker_task.TaskScanDueTomorrow:
		err = wh.handleReminderScan(ctx, t)
	case worker_task.TaskScanOverdue:
		err = wh.handleOverdueScan(ctx, t)
	default:
		err = fmt.Errorf("unknown job type %q: %w", t.Type(), asynq.SkipRetry)
	}

	if err != nil {
		log.Error().Err(err).Str("job_id", jobID).Str("job_type", t.Type()).Msg("Worker: job failed")
		return err
	}

	log.Info().Str("job_id", jobID).Str("job_type", t.Type()).Msg("Worker: job completed")
	return nil
}
