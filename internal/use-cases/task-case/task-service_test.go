package task_case

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	task_dto "github.com/markwayne24/todo-app/internal/dtos/task-dto"
	"github.com/markwayne24/todo-app/internal/entity"
	app_errors "github.com/markwayne24/todo-app/internal/errors"
	"github.com/markwayne24/todo-app/internal/queue"
	task_repo "github.com/markwayne24/todo-app/internal/repo/task-repo"
	user_repo "github.com/markwayne24/todo-app/internal/repo/user-repo"
	worker_task "github.com/markwayne24/todo-app/internal/worker/tasks"
)

func newTestTaskService() (*TaskService, *task_repo.MockTaskRepo, *user_repo.MockUserRepo, *queue.MockTaskQueue) {
	tasks := new(task_repo.MockTaskRepo)
	users := new(user_repo.MockUserRepo)
	q := new(queue.MockTaskQueue)
	return &TaskService{tasks: tasks, users: users, queue: q}, tasks, users, q
}

func TestCreateTask_DefaultsToPendingMediumPriority(t *testing.T) {
	ctx := context.Background()
	service, tasks, _, _ := newTestTaskService()

	userID := primitive.NewObjectID()
	taskID := primitive.NewObjectID()
	due := time.Now().AddDate(0, 0, 3)

	tasks.On("InsertTask", ctx, mock.MatchedBy(func(task *entity.TaskEntity) bool {
		return task.UserID == userID &&
			task.Status == entity.TaskPending &&
			task.Priority == entity.PriorityMedium
	})).Return(taskID, (*app_errors.AppError)(nil))

	resp, err := service.CreateTask(ctx, userID.Hex(), &task_dto.CreateTaskRequest{
		Title:   "Write report",
		DueDate: due,
	})

	assert.Nil(t, err)
	assert.Equal(t, taskID.Hex(), resp.ID)
	assert.Equal(t, string(entity.TaskPending), resp.Status)

	tasks.AssertExpectations(t)
}

func TestGetTasks_PassesFilterThrough(t *testing.T) {
	ctx := context.Background()
	service, tasks, _, _ := newTestTaskService()

	userID := primitive.NewObjectID()
	status := string(entity.TaskPending)

	tasks.On("ListTasks", ctx, userID, mock.MatchedBy(func(f task_repo.TaskListFilter) bool {
		return f.Status != nil && *f.Status == entity.TaskPending && f.Limit == 20
	})).Return([]entity.TaskEntity{}, int64(0), (*app_errors.AppError)(nil))

	resp, err := service.GetTasks(ctx, userID.Hex(), &task_dto.TaskListQuery{Status: &status})

	assert.Nil(t, err)
	assert.Empty(t, resp.Tasks)

	tasks.AssertExpectations(t)
}

func TestUpdateTask_NoFieldsRejected(t *testing.T) {
	ctx := context.Background()
	service, tasks, _, _ := newTestTaskService()

	userID := primitive.NewObjectID()
	taskID := primitive.NewObjectID()

	resp, err := service.UpdateTask(ctx, userID.Hex(), taskID.Hex(), &task_dto.UpdateTaskRequest{})

	assert.Nil(t, resp)
	assert.NotNil(t, err)
	assert.Equal(t, fiber.StatusBadRequest, err.Code)

	tasks.AssertNotCalled(t, "UpdateTask", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateTaskStatus_EnqueuesNotification(t *testing.T) {
	ctx := context.Background()
	service, tasks, users, q := newTestTaskService()

	userID := primitive.NewObjectID()
	taskID := primitive.NewObjectID()

	task := &entity.TaskEntity{
		ID:     taskID,
		UserID: userID,
		Title:  "Write report",
		Status: entity.TaskInProgress,
	}
	user := &entity.UserEntity{ID: userID, Email: "alice@example.com", Name: "Alice"}

	tasks.On("FindTaskByID", ctx, taskID, userID).Return(task, (*app_errors.AppError)(nil))
	tasks.On("UpdateTask", ctx, taskID, userID, bson.M{"status": entity.TaskCompleted}).
		Return((*app_errors.AppError)(nil))
	users.On("FindUserByID", ctx, userID).Return(user, (*app_errors.AppError)(nil))
	q.On("EnqueueSendTaskStatusUpdateEmail", mock.MatchedBy(func(p *worker_task.SendTaskStatusUpdateEmailPayload) bool {
		return p.ID == taskID.Hex() &&
			p.Email == "alice@example.com" &&
			p.TaskTitle == "Write report" &&
			p.Status == string(entity.TaskCompleted)
	})).Return(nil).Once()

	resp, err := service.UpdateTaskStatus(ctx, userID.Hex(), taskID.Hex(), &task_dto.UpdateTaskStatusRequest{
		Status: string(entity.TaskCompleted),
	})

	assert.Nil(t, err)
	assert.Equal(t, string(entity.TaskCompleted), resp.Status)

	tasks.AssertExpectations(t)
	users.AssertExpectations(t)
	q.AssertExpectations(t)
}

// The status change is already persisted; a dead queue only costs the
// notification, never the mutation.
func TestUpdateTaskStatus_EnqueueFailureDoesNotFailRequest(t *testing.T) {
	ctx := context.Background()
	service, tasks, users, q := newTestTaskService()

	userID := primitive.NewObjectID()
	taskID := primitive.NewObjectID()

	task := &entity.TaskEntity{ID: taskID, UserID: userID, Title: "Write report", Status: entity.TaskPending}
	user := &entity.UserEntity{ID: userID, Email: "alice@example.com", Name: "Alice"}

	tasks.On("FindTaskByID", ctx, taskID, userID).Return(task, (*app_errors.AppError)(nil))
	tasks.On("UpdateTask", ctx, taskID, userID, mock.Anything).Return((*app_errors.AppError)(nil))
	users.On("FindUserByID", ctx, userID).Return(user, (*app_errors.AppError)(nil))
	q.On("EnqueueSendTaskStatusUpdateEmail", mock.Anything).Return(errors.New("redis down")).Once()

	resp, err := service.UpdateTaskStatus(ctx, userID.Hex(), taskID.Hex(), &task_dto.UpdateTaskStatusRequest{
		Status: string(entity.TaskCompleted),
	})

	assert.Nil(t, err)
	assert.NotNil(t, resp)

	q.AssertExpectations(t)
}

func TestUpdateTaskStatus_TaskNotOwned(t *testing.T) {
	ctx := context.Background()
	service, tasks, _, q := newTestTaskService()

	userID := primitive.NewObjectID()
	taskID := primitive.NewObjectID()

	tasks.On("FindTaskByID", ctx, taskID, userID).
		Return((*entity.TaskEntity)(nil), (*app_errors.AppError)(nil))

	resp, err := service.UpdateTaskStatus(ctx, userID.Hex(), taskID.Hex(), &task_dto.UpdateTaskStatusRequest{
		Status: string(entity.TaskCompleted),
	})

	assert.Nil(t, resp)
	assert.NotNil(t, err)
	assert.Equal(t, fiber.StatusNotFound, err.Code)

	q.AssertNotCalled(t, "EnqueueSendTaskStatusUpdateEmail", mock.Anything)
}

func TestDeleteTask_DelegatesOwnerScopedDelete(t *testing.T) {
	ctx := context.Background()
	service, tasks, _, _ := newTestTaskService()

	userID := primitive.NewObjectID()
	taskID := primitive.NewObjectID()

	tasks.On("DeleteTask", ctx, taskID, userID).Return((*app_errors.AppError)(nil))

	err := service.DeleteTask(ctx, userID.Hex(), taskID.Hex())

	assert.Nil(t, err)
	tasks.AssertExpectations(t)
}
