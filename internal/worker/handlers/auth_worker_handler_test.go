package worker_handler

import (
	"context"
	"errors"
	"testing"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/markwayne24/todo-app/internal/entity"
	app_errors "github.com/markwayne24/todo-app/internal/errors"
	worker_task "github.com/markwayne24/todo-app/internal/worker/tasks"
)

func TestProcessTask_LoginAttemptEmail(t *testing.T) {
	wh, m := newTestWorkerHandler()

	userID := primitive.NewObjectID()
	user := &entity.UserEntity{ID: userID, Email: "alice@example.com", Name: "Alice"}

	m.users.On("FindUserByID", mock.Anything, userID).Return(user, (*app_errors.AppError)(nil)).Once()
	m.mailer.On("SendLoginAttemptEmail", "alice@example.com", mock.Anything).Return(nil).Once()

	job := newJob(t, worker_task.TaskSendLoginAttemptEmail, &worker_task.SendLoginAttemptEmailPayload{
		UserID: userID.Hex(),
	})

	err := wh.ProcessTask(context.Background(), job)

	assert.NoError(t, err)
	m.users.AssertExpectations(t)
	m.mailer.AssertExpectations(t)
}

// A user deleted between enqueue and processing is a benign no-op, not a
// retryable failure.
func TestProcessTask_LoginAttemptEmail_UserGone(t *testing.T) {
	wh, m := newTestWorkerHandler()

	userID := primitive.NewObjectID()
	m.users.On("FindUserByID", mock.Anything, userID).
		Return((*entity.UserEntity)(nil), (*app_errors.AppError)(nil)).Once()

	job := newJob(t, worker_task.TaskSendLoginAttemptEmail, &worker_task.SendLoginAttemptEmailPayload{
		UserID: userID.Hex(),
	})

	err := wh.ProcessTask(context.Background(), job)

	assert.NoError(t, err)
	m.users.AssertExpectations(t)
	m.mailer.AssertNotCalled(t, "SendLoginAttemptEmail", mock.Anything, mock.Anything)
}

// A malformed user id can never become valid, so the job must fail once
// instead of burning through its retry budget.
func TestProcessTask_LoginAttemptEmail_MalformedUserIDFailsWithoutRetry(t *testing.T) {
	wh, m := newTestWorkerHandler()

	job := newJob(t, worker_task.TaskSendLoginAttemptEmail, &worker_task.SendLoginAttemptEmailPayload{
		UserID: "not-a-hex-id",
	})

	err := wh.ProcessTask(context.Background(), job)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, asynq.SkipRetry))
	m.users.AssertNotCalled(t, "FindUserByID", mock.Anything, mock.Anything)
}
