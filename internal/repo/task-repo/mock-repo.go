package task_repo

import (
	"context"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/markwayne24/todo-app/internal/entity"
	app_errors "github.com/markwayne24/todo-app/internal/errors"
)

type MockTaskRepo struct {
	mock.Mock
}

func (m *MockTaskRepo) InsertTask(ctx context.Context, task *entity.TaskEntity) (primitive.ObjectID, *app_errors.AppError) {
	args := m.Called(ctx, task)
	return args.Get(0).(primitive.ObjectID), args.Get(1).(*app_errors.AppError)
}

func (m *MockTaskRepo) FindTaskByID(ctx context.Context, id, userID primitive.ObjectID) (*entity.TaskEntity, *app_errors.AppError) {
	args := m.Called(ctx, id, userID)
	return args.Get(0).(*entity.TaskEntity), args.Get(1).(*app_errors.AppError)
}

func (m *MockTaskRepo) ListTasks(ctx context.Context, userID primitive.ObjectID, filter TaskListFilter) ([]entity.TaskEntity, int64, *app_errors.AppError) {
	args := m.Called(ctx, userID, filter)
	return args.Get(0).([]entity.TaskEntity), args.Get(1).(int64), args.Get(2).(*app_errors.AppError)
}

func (m *MockTaskRepo) UpdateTask(ctx context.Context, id, userID primitive.ObjectID, partial bson.M) *app_errors.AppError {
	args := m.Called(ctx, id, userID, partial)
	return args.Get(0).(*app_errors.AppError)
}

func (m *MockTaskRepo) DeleteTask(ctx context.Context, id, userID primitive.ObjectID) *app_errors.AppError {
	args := m.Called(ctx, id, userID)
	return args.Get(0).(*app_errors.AppError)
}

func (m *MockTaskRepo) FindDueBatches(ctx context.Context, window entity.DateRange, statuses []entity.TaskStatus) ([]entity.TaskBatch, *app_errors.AppError) {
	args := m.Called(ctx, window, statuses)
	return args.Get(0).([]entity.TaskBatch), args.Get(1).(*app_errors.AppError)
}

func (m *MockTaskRepo) MarkTaskOverdue(ctx context.Context, id primitive.ObjectID) *app_errors.AppError {
	args := m.Called(ctx, id)
	return args.Get(0).(*app_errors.AppError)
}
