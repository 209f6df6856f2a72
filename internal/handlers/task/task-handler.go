package task_handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/mongo"

	task_dto "github.com/markwayne24/todo-app/internal/dtos/task-dto"
	app_errors "github.com/markwayne24/todo-app/internal/errors"
	"github.com/markwayne24/todo-app/internal/handlers"
	internal_i18n "github.com/markwayne24/todo-app/internal/i18n"
	"github.com/markwayne24/todo-app/internal/queue"
	task_case "github.com/markwayne24/todo-app/internal/use-cases/task-case"
)

type TaskHandler struct {
	validator *validator.Validate
	service   task_case.TaskServiceContract
	i18n      internal_i18n.Service
}

func NewTaskHandler(database *mongo.Database, q queue.TaskQueueClient, i18n *internal_i18n.I18nService) *TaskHandler {
	validate := validator.New()
	if err := task_dto.RegisterTaskValidations(validate); err != nil {
		log.Fatal().Err(err).Msg("TaskHandler: failed to register custom validations")
	}

	return &TaskHandler{
		validator: validate,
		i18n:      i18n,
		service:   task_case.NewTaskService(database, q),
	}
}

func (h *TaskHandler) CreateTask(c *fiber.Ctx) error {
	userID, appErr := handlers.GetUserID(c)
	if appErr != nil {
		return appErr
	}

	var req task_dto.CreateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		return app_errors.NewAppError(fiber.StatusBadRequest, app_errors.ErrInvalidBody, "request.invalid_body", err)
	}

	if err := h.validator.Struct(req); err != nil {
		return app_errors.NewValidationError(app_errors.ParseValidationError(err))
	}

	resp, appErr := h.service.CreateTask(c.Context(), userID, &req)
	if appErr != nil {
		return appErr
	}

	reqID := handlers.GetRequestID(c)
	lang := handlers.GetLang(c)

	webResp := handlers.CreateResponse(h.i18n.T(lang, "response.success_create_task", nil), resp, reqID)
	if err := c.Status(fiber.StatusCreated).JSON(webResp); err != nil {
		return app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "response.write_failed", err)
	}
	return nil
}

func (h *TaskHandler) GetTasks(c *fiber.Ctx) error {
	userID, appErr := handlers.GetUserID(c)
	if appErr != nil {
		return appErr
	}

	var query task_dto.TaskListQuery
	if err := c.QueryParser(&query); err != nil {
		return app_errors.NewAppError(fiber.StatusBadRequest, app_errors.ErrInvalidQuery, "request.invalid_query", err)
	}

	if err := h.validator.Struct(query); err != nil {
		return app_errors.NewValidationError(app_errors.ParseValidationError(err))
	}

	resp, appErr := h.service.GetTasks(c.Context(), userID, &query)
	if appErr != nil {
		return appErr
	}

	reqID := handlers.GetRequestID(c)
	lang := handlers.GetLang(c)

	webResp := handlers.CreateResponse(h.i18n.T(lang, "response.success_list_tasks", nil), resp, reqID)
	if err := c.Status(fiber.StatusOK).JSON(webResp); err != nil {
		return app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "response.write_failed", err)
	}
	return nil
}

func (h *TaskHandler) GetTaskByID(c *fiber.Ctx) error {
	userID, appErr := handlers.GetUserID(c)
	if appErr != nil {
		return appErr
	}

	taskID, appErr := handlers.GetParamTaskID(c, h.validator)
	if appErr != nil {
		return appErr
	}

	resp, appErr := h.service.GetTaskByID(c.Context(), userID, taskID)
	if appErr != nil {
		return appErr
	}

	reqID := handlers.GetRequestID(c)
	lang := handlers.GetLang(c)

	webResp := handlers.CreateResponse(h.i18n.T(lang, "response.success_get_task", nil), resp, reqID)
	if err := c.Status(fiber.StatusOK).JSON(webResp); err != nil {
		return app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "response.write_failed", err)
	}
	return nil
}

func (h *TaskHandler) UpdateTask(c *fiber.Ctx) error {
	userID, appErr := handlers.GetUserID(c)
	if appErr != nil {
		return appErr
	}

	taskID, appErr := handlers.GetParamTaskID(c, h.validator)
	if appErr != nil {
		return appErr
	}

	var req task_dto.UpdateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		return app_errors.NewAppError(fiber.StatusBadRequest, app_errors.ErrInvalidBody, "request.invalid_body", err)
	}

	if err := h.validator.Struct(req); err != nil {
		return app_errors.NewValidationError(app_errors.ParseValidationError(err))
	}

	resp, appErr := h.service.UpdateTask(c.Context(), userID, taskID, &req)
	if appErr != nil {
		return appErr
	}

	reqID := handlers.GetRequestID(c)
	lang := handlers.GetLang(c)

	webResp := handlers.CreateResponse(h.i18n.T(lang, "response.success_update_task", nil), resp, reqID)
	if err := c.Status(fiber.StatusOK).JSON(webResp); err != nil {
		return app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "response.write_failed", err)
	}
	return nil
}

// UpdateTaskStatus changes the status only. This is the mutation that
// enqueues a one-off notification email to the owner.
func (h *TaskHandler) UpdateTaskStatus(c *fiber.Ctx) error {
	userID, appErr := handlers.GetUserID(c)
	if appErr != nil {
		return appErr
	}

	taskID, appErr := handlers.GetParamTaskID(c, h.validator)
	if appErr != nil {
		return appErr
	}

	var req task_dto.UpdateTaskStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return app_errors.NewAppError(fiber.StatusBadRequest, app_errors.ErrInvalidBody, "request.invalid_body", err)
	}

	if err := h.validator.Struct(req); err != nil {
		return app_errors.NewValidationError(app_errors.ParseValidationError(err))
	}

	resp, appErr := h.service.UpdateTaskStatus(c.Context(), userID, taskID, &req)
	if appErr != nil {
		return appErr
	}

	reqID := handlers.GetRequestID(c)
	lang := handlers.GetLang(c)

	webResp := handlers.CreateResponse(h.i18n.T(lang, "response.success_update_status", nil), resp, reqID)
	if err := c.Status(fiber.StatusOK).JSON(webResp); err != nil {
		return app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "response.write_failed", err)
	}
	return nil
}

func (h *TaskHandler) DeleteTask(c *fiber.Ctx) error {
	userID, appErr := handlers.GetUserID(c)
	if appErr != nil {
		return appErr
	}

	taskID, appErr := handlers.GetParamTaskID(c, h.validator)
	if appErr != nil {
		return appErr
	}

	if appErr := h.service.DeleteTask(c.Context(), userID, taskID); appErr != nil {
		return appErr
	}

	reqID := handlers.GetRequestID(c)
	lang := handlers.GetLang(c)

	webResp := handlers.CreateResponse(h.i18n.T(lang, "response.success_delete_task", nil), "OK", reqID)
	if err := c.Status(fiber.StatusOK).JSON(webResp); err != nil {
		return app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "response.write_failed", err)
	}
	return nil
}
