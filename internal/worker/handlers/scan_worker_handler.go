package worker_handler

import (
	"context"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"
)

// The two scan handlers run inside the worker, triggered by the scheduler's
// cron entries. Enqueue failures inside the dispatch fan-out are settled and
// logged; they never fail the scan job itself.

func (wh *WorkerHandler) handleReminderScan(ctx context.Context, t *asynq.Task) error {
	batches, err := wh.scanner.ScanReminder(ctx)
	if err != nil {
		return err
	}

	if failed := wh.dispatcher.DispatchReminders(batches); failed > 0 {
		log.Warn().Int("failed", failed).Msg("Worker handler: some reminder batches could not be enqueued")
	}

	return nil
}

func (wh *WorkerHandler) handleOverdueScan(ctx context.Context, t *asynq.Task) error {
	batches, err := wh.scanner.ScanOverdue(ctx)
	if err != nil {
		return err
	}

	if failed := wh.dispatcher.DispatchOverdue(batches); failed > 0 {
		log.Warn().Int("failed", failed).Msg("Worker handler: some overdue batches could not be enqueued")
	}

	return nil
}
