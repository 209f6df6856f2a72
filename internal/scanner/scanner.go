package scanner

import (
	"context"
	"time"

	"github.com/markwayne24/todo-app/internal/entity"
	app_errors "github.com/markwayne24/todo-app/internal/errors"
	task_repo "github.com/markwayne24/todo-app/internal/repo/task-repo"
	"github.com/rs/zerolog/log"
)

// Scanner finds tasks crossing a time threshold and groups them per user.
// A store error aborts the whole scan; the next scheduled run starts over,
// there is no mid-scan checkpointing.
type Scanner struct {
	tasks task_repo.TaskRepoContract
	now   func() time.Time
}

func NewScanner(tasks task_repo.TaskRepoContract) *Scanner {
	return &Scanner{
		tasks: tasks,
		now:   time.Now,
	}
}

// ScanReminder collects one batch per user for tasks due tomorrow that are
// still pending or in progress.
func (s *Scanner) ScanReminder(ctx context.Context) ([]entity.TaskBatch, *app_errors.AppError) {
	log.Info().Msg("Scanner: starting daily task reminder scan")

	window := ReminderWindow(s.now())
	batches, err := s.tasks.FindDueBatches(ctx, window, entity.DueStatuses())
	if err != nil {
		log.Error().Err(err.Err).Msg("Scanner: reminder scan aborted")
		return nil, err
	}

	log.Info().Int("users", len(batches)).Msg("Scanner: found users with tasks due tomorrow")
	return batches, nil
}

// ScanOverdue collects one batch per user for tasks whose due date lies
// before the start of today.
func (s *Scanner) ScanOverdue(ctx context.Context) ([]entity.TaskBatch, *app_errors.AppError) {
	log.Info().Msg("Scanner: checking for overdue tasks")

	window := OverdueWindow(s.now())
	batches, err := s.tasks.FindDueBatches(ctx, window, entity.DueStatuses())
	if err != nil {
		log.Error().Err(err.Err).Msg("Scanner: overdue scan aborted")
		return nil, err
	}

	log.Info().Int("users", len(batches)).Msg("Scanner: found users with overdue tasks")
	return batches, nil
}
