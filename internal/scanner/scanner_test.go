package scanner

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/markwayne24/todo-app/internal/entity"
	app_errors "github.com/markwayne24/todo-app/internal/errors"
	task_repo "github.com/markwayne24/todo-app/internal/repo/task-repo"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestScanReminder_QueriesTomorrowWindow(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 3, 15, 3, 0, 0, 0, time.UTC)

	repo := new(task_repo.MockTaskRepo)
	s := &Scanner{tasks: repo, now: fixedClock(now)}

	userID := primitive.NewObjectID()
	batches := []entity.TaskBatch{
		{
			UserID: userID,
			Name:   "Alice",
			Email:  "alice@example.com",
			Tasks: []entity.TaskBatchItem{
				{ID: primitive.NewObjectID(), TaskTitle: "Write report", Status: entity.TaskPending},
			},
		},
	}

	repo.On("FindDueBatches", ctx, ReminderWindow(now), entity.DueStatuses()).
		Return(batches, (*app_errors.AppError)(nil))

	got, err := s.ScanReminder(ctx)

	assert.Nil(t, err)
	assert.Len(t, got, 1)
	assert.Equal(t, userID, got[0].UserID)

	repo.AssertExpectations(t)
}

func TestScanReminder_StoreErrorAbortsScan(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 3, 15, 3, 0, 0, 0, time.UTC)

	repo := new(task_repo.MockTaskRepo)
	s := &Scanner{tasks: repo, now: fixedClock(now)}

	storeErr := app_errors.NewAppError(http.StatusInternalServerError, app_errors.ErrInternal, "internal_error", nil)
	repo.On("FindDueBatches", ctx, ReminderWindow(now), entity.DueStatuses()).
		Return(([]entity.TaskBatch)(nil), storeErr)

	got, err := s.ScanReminder(ctx)

	assert.Nil(t, got)
	assert.NotNil(t, err)
	assert.Equal(t, http.StatusInternalServerError, err.Code)

	repo.AssertExpectations(t)
}

func TestScanOverdue_QueriesEverythingBeforeToday(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 3, 15, 3, 0, 0, 0, time.UTC)

	repo := new(task_repo.MockTaskRepo)
	s := &Scanner{tasks: repo, now: fixedClock(now)}

	repo.On("FindDueBatches", ctx, OverdueWindow(now), entity.DueStatuses()).
		Return([]entity.TaskBatch{}, (*app_errors.AppError)(nil))

	got, err := s.ScanOverdue(ctx)

	assert.Nil(t, err)
	assert.Empty(t, got)

	repo.AssertExpectations(t)
}
