package task_case

import (
	"context"

	task_dto "github.com/markwayne24/todo-app/internal/dtos/task-dto"
	app_errors "github.com/markwayne24/todo-app/internal/errors"
)

type TaskServiceContract interface {
	CreateTask(ctx context.Context, userID string, req *task_dto.CreateTaskRequest) (*task_dto.TaskResponse, *app_errors.AppError)
	GetTasks(ctx context.Context, userID string, query *task_dto.TaskListQuery) (*task_dto.TaskListResponse, *app_errors.AppError)
	GetTaskByID(ctx context.Context, userID, taskID string) (*task_dto.TaskResponse, *app_errors.AppError)
	UpdateTask(ctx context.Context, userID, taskID string, req *task_dto.UpdateTaskRequest) (*task_dto.TaskResponse, *app_errors.AppError)
	UpdateTaskStatus(ctx context.Context, userID, taskID string, req *task_dto.UpdateTaskStatusRequest) (*task_dto.TaskResponse, *app_errors.AppError)
	DeleteTask(ctx context.Context, userID, taskID string) *app_errors.AppError
}
