package worker_handler

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/markwayne24/todo-app/internal/entity"
	app_errors "github.com/markwayne24/todo-app/internal/errors"
	worker_task "github.com/markwayne24/todo-app/internal/worker/tasks"
)

func batchItems(n int) []entity.TaskBatchItem {
	items := make([]entity.TaskBatchItem, n)
	for i := range items {
		items[i] = entity.TaskBatchItem{
			ID:        primitive.NewObjectID(),
			TaskTitle: "task",
			Status:    entity.TaskPending,
		}
	}
	return items
}

// One reminder job produces exactly one email carrying every task of the
// batch.
func TestProcessTask_ReminderSendsOneEmailPerBatch(t *testing.T) {
	wh, m := newTestWorkerHandler()

	tasks := batchItems(3)
	m.mailer.On("SendTaskReminder", "alice@example.com", "Alice", mock.MatchedBy(func(got []entity.TaskBatchItem) bool {
		return len(got) == 3
	})).Return(nil).Once()

	job := newJob(t, worker_task.TaskSendTaskReminder, &worker_task.SendTaskReminderPayload{
		UserID: primitive.NewObjectID().Hex(),
		Name:   "Alice",
		Email:  "alice@example.com",
		Tasks:  tasks,
	})

	err := wh.ProcessTask(context.Background(), job)

	assert.NoError(t, err)
	m.mailer.AssertExpectations(t)
	m.mailer.AssertNumberOfCalls(t, "SendTaskReminder", 1)
}

func TestProcessTask_OverdueEmail(t *testing.T) {
	wh, m := newTestWorkerHandler()

	m.mailer.On("SendTaskOverdue", "bob@example.com", "Bob", mock.Anything).Return(nil).Once()

	job := newJob(t, worker_task.TaskSendTaskOverdue, &worker_task.SendTaskOverduePayload{
		UserID: primitive.NewObjectID().Hex(),
		Name:   "Bob",
		Email:  "bob@example.com",
		Tasks:  batchItems(2),
	})

	err := wh.ProcessTask(context.Background(), job)

	assert.NoError(t, err)
	m.mailer.AssertExpectations(t)
}

func TestProcessTask_StatusUpdateEmail(t *testing.T) {
	wh, m := newTestWorkerHandler()

	m.mailer.On("SendTaskStatusUpdateEmail", "alice@example.com", "Alice", "Write report", "completed").
		Return(nil).Once()

	job := newJob(t, worker_task.TaskSendTaskStatusUpdateEmail, &worker_task.SendTaskStatusUpdateEmailPayload{
		ID:        primitive.NewObjectID().Hex(),
		Email:     "alice@example.com",
		Name:      "Alice",
		TaskTitle: "Write report",
		Status:    "completed",
	})

	err := wh.ProcessTask(context.Background(), job)

	assert.NoError(t, err)
	m.mailer.AssertExpectations(t)
}

func TestProcessTask_UpdateOverdueStatus_AllTasksUpdated(t *testing.T) {
	wh, m := newTestWorkerHandler()

	tasks := batchItems(4)
	for _, task := range tasks {
		m.tasks.On("MarkTaskOverdue", mock.Anything, task.ID).Return((*app_errors.AppError)(nil)).Once()
	}

	job := newJob(t, worker_task.TaskUpdateOverdueStatus, &worker_task.UpdateOverdueStatusPayload{Tasks: tasks})

	err := wh.ProcessTask(context.Background(), job)

	assert.NoError(t, err)
	m.tasks.AssertExpectations(t)
}

// A single failing update must not stop the sibling updates, and the job
// still completes so it is not retried as a whole.
func TestProcessTask_UpdateOverdueStatus_PartialFailureStillCompletes(t *testing.T) {
	wh, m := newTestWorkerHandler()

	tasks := batchItems(5)
	storeErr := app_errors.NewAppError(http.StatusInternalServerError, app_errors.ErrInternal, "internal_error", nil)

	for i, task := range tasks {
		if i == 2 {
			m.tasks.On("MarkTaskOverdue", mock.Anything, task.ID).Return(storeErr).Once()
			continue
		}
		m.tasks.On("MarkTaskOverdue", mock.Anything, task.ID).Return((*app_errors.AppError)(nil)).Once()
	}

	job := newJob(t, worker_task.TaskUpdateOverdueStatus, &worker_task.UpdateOverdueStatusPayload{Tasks: tasks})

	err := wh.ProcessTask(context.Background(), job)

	assert.NoError(t, err)
	m.tasks.AssertExpectations(t)
	m.tasks.AssertNumberOfCalls(t, "MarkTaskOverdue", 5)
}

// Re-delivering the same payload is safe: the repo-level status guard makes
// the second pass a no-op, the handler itself never errors on it.
func TestProcessTask_UpdateOverdueStatus_Idempotent(t *testing.T) {
	wh, m := newTestWorkerHandler()

	tasks := batchItems(2)
	for _, task := range tasks {
		m.tasks.On("MarkTaskOverdue", mock.Anything, task.ID).Return((*app_errors.AppError)(nil)).Twice()
	}

	job := newJob(t, worker_task.TaskUpdateOverdueStatus, &worker_task.UpdateOverdueStatusPayload{Tasks: tasks})

	assert.NoError(t, wh.ProcessTask(context.Background(), job))
	assert.NoError(t, wh.ProcessTask(context.Background(), job))

	m.tasks.AssertExpectations(t)
}
