package task_repo

import (
	"context"

	"github.com/markwayne24/todo-app/internal/entity"
	app_errors "github.com/markwayne24/todo-app/internal/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TaskListFilter narrows ListTasks. Nil fields are not applied.
type TaskListFilter struct {
	Status   *entity.TaskStatus
	Priority *entity.TaskPriority
	Title    *string
	Category *string
	Sort     string // "asc" | "desc" on createdAt, default desc
	Limit    int64
	Skip     int64
}

type TaskRepoContract interface {
	InsertTask(ctx context.Context, task *entity.TaskEntity) (primitive.ObjectID, *app_errors.AppError)

	// FindTaskByID is owner-scoped and returns (nil, nil) when no task of
	// that user matches; callers decide how to surface the miss.
	FindTaskByID(ctx context.Context, id, userID primitive.ObjectID) (*entity.TaskEntity, *app_errors.AppError)
	ListTasks(ctx context.Context, userID primitive.ObjectID, filter TaskListFilter) ([]entity.TaskEntity, int64, *app_errors.AppError)
	UpdateTask(ctx context.Context, id, userID primitive.ObjectID, partial bson.M) *app_errors.AppError
	DeleteTask(ctx context.Context, id, userID primitive.ObjectID) *app_errors.AppError

	// FindDueBatches joins each matching task to its owner and groups them
	// into one batch per user. Tasks whose owner no longer exists are dropped
	// by the join.
	FindDueBatches(ctx context.Context, window entity.DateRange, statuses []entity.TaskStatus) ([]entity.TaskBatch, *app_errors.AppError)

	// MarkTaskOverdue flips a task to overdue. The filter only matches tasks
	// still in a due-eligible status, so re-running it is a no-op.
	MarkTaskOverdue(ctx context.Context, id primitive.ObjectID) *app_errors.AppError
}
