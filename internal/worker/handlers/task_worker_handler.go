package worker_handler

import (
	"context"
	"sync"

	"github.com/goccy/go-json"
	"github.com/hibiken/asynq"
	"github.com/markwayne24/todo-app/internal/entity"
	worker_task "github.com/markwayne24/todo-app/internal/worker/tasks"
	"github.com/rs/zerolog/log"
)

func (wh *WorkerHandler) handleSendTaskStatusUpdateEmail(ctx context.Context, t *asynq.Task) error {
	var p worker_task.SendTaskStatusUpdateEmailPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		log.Error().Err(err).Msg("Worker handler: failed to unmarshal status-update payload")
		return err
	}

	// The status mutation already happened synchronously in the API; this
	// job only notifies.
	if err := wh.mailer.SendTaskStatusUpdateEmail(p.Email, p.Name, p.TaskTitle, p.Status); err != nil {
		return err
	}

	log.Info().Str("email", p.Email).Str("task_id", p.ID).Msg("Worker handler: status-update email sent")
	return nil
}

func (wh *WorkerHandler) handleSendTaskReminder(ctx context.Context, t *asynq.Task) error {
	var p worker_task.SendTaskReminderPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		log.Error().Err(err).Msg("Worker handler: failed to unmarshal reminder payload")
		return err
	}

	// One email per batch, listing every task.
	if err := wh.mailer.SendTaskReminder(p.Email, p.Name, p.Tasks); err != nil {
		return err
	}

	log.Info().Str("email", p.Email).Int("tasks", len(p.Tasks)).Msg("Worker handler: reminder email sent")
	return nil
}

func (wh *WorkerHandler) handleSendTaskOverdue(ctx context.Context, t *asynq.Task) error {
	var p worker_task.SendTaskOverduePayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		log.Error().Err(err).Msg("Worker handler: failed to unmarshal overdue payload")
		return err
	}

	if err := wh.mailer.SendTaskOverdue(p.Email, p.Name, p.Tasks); err != nil {
		return err
	}

	log.Info().Str("email", p.Email).Int("tasks", len(p.Tasks)).Msg("Worker handler: overdue email sent")
	return nil
}

// handleUpdateOverdueStatus applies the bulk mutation of the overdue scan.
// Every task update is attempted regardless of sibling failures, and the job
// completes even when a subset failed; failed updates are only logged and
// picked up again by the next overdue scan.
func (wh *WorkerHandler) handleUpdateOverdueStatus(ctx context.Context, t *asynq.Task) error {
	var p worker_task.UpdateOverdueStatusPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		log.Error().Err(err).Msg("Worker handler: failed to unmarshal overdue-status payload")
		return err
	}

	failed := make([]bool, len(p.Tasks))

	var wg sync.WaitGroup
	for i, task := range p.Tasks {
		wg.Add(1)
		go func(i int, task entity.TaskBatchItem) {
			defer wg.Done()
			if err := wh.tasks.MarkTaskOverdue(ctx, task.ID); err != nil {
				failed[i] = true
				log.Error().Err(err.Err).Str("task_id", task.ID.Hex()).Msg("Worker handler: failed to mark task overdue")
				return
			}
			log.Info().Str("task_id", task.ID.Hex()).Msg("Worker handler: task marked overdue")
		}(i, task)
	}
	wg.Wait()

	updated := 0
	for i := range p.Tasks {
		if !failed[i] {
			updated++
		}
	}

	log.Info().Int("updated", updated).Int("failed", len(p.Tasks)-updated).Msg("Worker handler: overdue statuses updated")
	return nil
}
