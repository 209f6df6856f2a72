package task_case

import (
	"context"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	task_dto "github.com/markwayne24/todo-app/internal/dtos/task-dto"
	"github.com/markwayne24/todo-app/internal/entity"
	app_errors "github.com/markwayne24/todo-app/internal/errors"
	"github.com/markwayne24/todo-app/internal/queue"
	task_repo "github.com/markwayne24/todo-app/internal/repo/task-repo"
	user_repo "github.com/markwayne24/todo-app/internal/repo/user-repo"
	worker_task "github.com/markwayne24/todo-app/internal/worker/tasks"
)

type TaskService struct {
	tasks task_repo.TaskRepoContract
	users user_repo.UserRepoContract
	queue queue.TaskQueueClient
}

func NewTaskService(database *mongo.Database, q queue.TaskQueueClient) *TaskService {
	return &TaskService{
		tasks: task_repo.NewTaskRepo(database),
		users: user_repo.NewUserRepo(database),
		queue: q,
	}
}

func (s *TaskService) CreateTask(ctx context.Context, userID string, req *task_dto.CreateTaskRequest) (*task_dto.TaskResponse, *app_errors.AppError) {
	uid, appErr := parseObjectID(userID, app_errors.ErrUnauthorized)
	if appErr != nil {
		return nil, appErr
	}

	priority := entity.PriorityMedium
	if req.Priority != nil {
		priority = entity.TaskPriority(*req.Priority)
	}

	now := time.Now()
	task := &entity.TaskEntity{
		UserID:      uid,
		Title:       req.Title,
		Description: req.Description,
		Status:      entity.TaskPending,
		DueDate:     req.DueDate,
		Priority:    priority,
		Category:    req.Category,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	id, appErr := s.tasks.InsertTask(ctx, task)
	if appErr != nil {
		return nil, appErr
	}
	task.ID = id

	return toTaskResponse(task), nil
}

func (s *TaskService) GetTasks(ctx context.Context, userID string, query *task_dto.TaskListQuery) (*task_dto.TaskListResponse, *app_errors.AppError) {
	uid, appErr := parseObjectID(userID, app_errors.ErrUnauthorized)
	if appErr != nil {
		return nil, appErr
	}

	limit := query.Limit
	if limit == 0 {
		limit = 20
	}

	filter := task_repo.TaskListFilter{
		Title:    query.Title,
		Category: query.Category,
		Sort:     query.Sort,
		Limit:    limit,
		Skip:     query.Skip,
	}
	if query.Status != nil {
		status := entity.TaskStatus(*query.Status)
		filter.Status = &status
	}
	if query.Priority != nil {
		priority := entity.TaskPriority(*query.Priority)
		filter.Priority = &priority
	}

	tasks, total, appErr := s.tasks.ListTasks(ctx, uid, filter)
	if appErr != nil {
		return nil, appErr
	}

	out := make([]task_dto.TaskResponse, 0, len(tasks))
	for i := range tasks {
		out = append(out, *toTaskResponse(&tasks[i]))
	}

	return &task_dto.TaskListResponse{Tasks: out, Total: total}, nil
}

func (s *TaskService) GetTaskByID(ctx context.Context, userID, taskID string) (*task_dto.TaskResponse, *app_errors.AppError) {
	uid, tid, appErr := parseIDPair(userID, taskID)
	if appErr != nil {
		return nil, appErr
	}

	task, appErr := s.tasks.FindTaskByID(ctx, tid, uid)
	if appErr != nil {
		return nil, appErr
	}
	if task == nil {
		return nil, app_errors.NewAppError(http.StatusNotFound, app_errors.ErrNotFound, "error.task_not_found", nil)
	}

	return toTaskResponse(task), nil
}

func (s *TaskService) UpdateTask(ctx context.Context, userID, taskID string, req *task_dto.UpdateTaskRequest) (*task_dto.TaskResponse, *app_errors.AppError) {
	uid, tid, appErr := parseIDPair(userID, taskID)
	if appErr != nil {
		return nil, appErr
	}

	partial := bson.M{}
	if req.Title != nil {
		partial["title"] = *req.Title
	}
	if req.Description != nil {
		partial["description"] = *req.Description
	}
	if req.DueDate != nil {
		partial["dueDate"] = *req.DueDate
	}
	if req.Priority != nil {
		partial["priority"] = entity.TaskPriority(*req.Priority)
	}
	if req.Category != nil {
		partial["category"] = *req.Category
	}
	if len(partial) == 0 {
		return nil, app_errors.NewAppError(http.StatusBadRequest, app_errors.ErrInvalidBody, "error.empty_update", nil)
	}

	if appErr := s.tasks.UpdateTask(ctx, tid, uid, partial); appErr != nil {
		return nil, appErr
	}

	task, appErr := s.tasks.FindTaskByID(ctx, tid, uid)
	if appErr != nil {
		return nil, appErr
	}
	if task == nil {
		return nil, app_errors.NewAppError(http.StatusNotFound, app_errors.ErrNotFound, "error.task_not_found", nil)
	}

	return toTaskResponse(task), nil
}

func (s *TaskService) UpdateTaskStatus(ctx context.Context, userID, taskID string, req *task_dto.UpdateTaskStatusRequest) (*task_dto.TaskResponse, *app_errors.AppError) {
	uid, tid, appErr := parseIDPair(userID, taskID)
	if appErr != nil {
		return nil, appErr
	}

	task, appErr := s.tasks.FindTaskByID(ctx, tid, uid)
	if appErr != nil {
		return nil, appErr
	}
	if task == nil {
		return nil, app_errors.NewAppError(http.StatusNotFound, app_errors.ErrNotFound, "error.task_not_found", nil)
	}

	status := entity.TaskStatus(req.Status)
	if appErr := s.tasks.UpdateTask(ctx, tid, uid, bson.M{"status": status}); appErr != nil {
		return nil, appErr
	}
	task.Status = status

	// The owner gets a one-off email about the manual status change. Like
	// all notifications this is best effort.
	user, appErr := s.users.FindUserByID(ctx, uid)
	if appErr != nil {
		log.Error().Err(appErr).Str("user_id", userID).Msg("TaskService: owner lookup for status email failed")
	} else if user != nil {
		if err := s.queue.EnqueueSendTaskStatusUpdateEmail(&worker_task.SendTaskStatusUpdateEmailPayload{
			ID:        task.ID.Hex(),
			Email:     user.Email,
			Name:      user.Name,
			TaskTitle: task.Title,
			Status:    string(status),
		}); err != nil {
			log.Error().Err(err).Str("task_id", taskID).Msg("TaskService: failed to enqueue status update email")
		}
	}

	return toTaskResponse(task), nil
}

func (s *TaskService) DeleteTask(ctx context.Context, userID, taskID string) *app_errors.AppError {
	uid, tid, appErr := parseIDPair(userID, taskID)
	if appErr != nil {
		return appErr
	}
	return s.tasks.DeleteTask(ctx, tid, uid)
}

func parseIDPair(userID, taskID string) (uid, tid primitive.ObjectID, appErr *app_errors.AppError) {
	uid, appErr = parseObjectID(userID, app_errors.ErrUnauthorized)
	if appErr != nil {
		return
	}
	tid, appErr = parseObjectID(taskID, app_errors.ErrInvalidParam)
	return
}

func parseObjectID(hex, errType string) (primitive.ObjectID, *app_errors.AppError) {
	id, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		code := http.StatusBadRequest
		if errType == app_errors.ErrUnauthorized {
			code = http.StatusUnauthorized
		}
		return primitive.NilObjectID, app_errors.NewAppError(code, errType, "validation.object_id", err)
	}
	return id, nil
}

func toTaskResponse(task *entity.TaskEntity) *task_dto.TaskResponse {
	return &task_dto.TaskResponse{
		ID:          task.ID.Hex(),
		UserID:      task.UserID.Hex(),
		Title:       task.Title,
		Description: task.Description,
		Status:      string(task.Status),
		DueDate:     task.DueDate,
		Priority:    string(task.Priority),
		Category:    task.Category,
		CreatedAt:   task.CreatedAt,
		UpdatedAt:   task.UpdatedAt,
	}
}
