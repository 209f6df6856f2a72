package scanner

import (
	"sync"

	"github.com/markwayne24/todo-app/internal/entity"
	"github.com/markwayne24/todo-app/internal/queue"
	worker_task "github.com/markwayne24/todo-app/internal/worker/tasks"
	"github.com/rs/zerolog/log"
)

// Dispatcher turns scan batches into queued jobs. Per-batch enqueues run as a
// settle-all fan-out: every batch is attempted, individual failures are
// logged and do not block sibling batches.
type Dispatcher struct {
	queue queue.TaskQueueClient
}

func NewDispatcher(q queue.TaskQueueClient) *Dispatcher {
	return &Dispatcher{queue: q}
}

// DispatchReminders enqueues one send-task-reminder job per batch.
// It returns the number of batches whose enqueue failed.
func (d *Dispatcher) DispatchReminders(batches []entity.TaskBatch) int {
	errs := make([]error, len(batches))

	var wg sync.WaitGroup
	for i, batch := range batches {
		wg.Add(1)
		go func(i int, b entity.TaskBatch) {
			defer wg.Done()
			errs[i] = d.queue.EnqueueSendTaskReminder(&worker_task.SendTaskReminderPayload{
				UserID: b.UserID.Hex(),
				Name:   b.Name,
				Email:  b.Email,
				Tasks:  b.Tasks,
			})
		}(i, batch)
	}
	wg.Wait()

	return d.settle(batches, errs, "reminder")
}

// DispatchOverdue enqueues one send-task-overdue job per batch, then exactly
// one update-overdue-status job carrying the union of all tasks across every
// batch of this scan. The bulk job is skipped when the union is empty.
func (d *Dispatcher) DispatchOverdue(batches []entity.TaskBatch) int {
	var union []entity.TaskBatchItem
	for _, b := range batches {
		union = append(union, b.Tasks...)
	}

	errs := make([]error, len(batches))

	var wg sync.WaitGroup
	for i, batch := range batches {
		wg.Add(1)
		go func(i int, b entity.TaskBatch) {
			defer wg.Done()
			errs[i] = d.queue.EnqueueSendTaskOverdue(&worker_task.SendTaskOverduePayload{
				UserID: b.UserID.Hex(),
				Name:   b.Name,
				Email:  b.Email,
				Tasks:  b.Tasks,
			})
		}(i, batch)
	}
	wg.Wait()

	failed := d.settle(batches, errs, "overdue")

	if len(union) > 0 {
		if err := d.queue.EnqueueUpdateOverdueStatus(&worker_task.UpdateOverdueStatusPayload{Tasks: union}); err != nil {
			log.Error().Err(err).Int("tasks", len(union)).Msg("Dispatcher: failed to enqueue bulk overdue-status update")
			failed++
		}
	}

	return failed
}

func (d *Dispatcher) settle(batches []entity.TaskBatch, errs []error, kind string) int {
	failed := 0
	for i, err := range errs {
		if err != nil {
			failed++
			log.Error().
				Err(err).
				Str("user_id", batches[i].UserID.Hex()).
				Str("email", batches[i].Email).
				Msgf("Dispatcher: failed to enqueue %s job", kind)
		}
	}
	return failed
}
