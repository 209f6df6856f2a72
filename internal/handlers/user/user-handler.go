package user_handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"

	user_dto "github.com/markwayne24/todo-app/internal/dtos/user-dto"
	app_errors "github.com/markwayne24/todo-app/internal/errors"
	"github.com/markwayne24/todo-app/internal/handlers"
	internal_i18n "github.com/markwayne24/todo-app/internal/i18n"
	user_case "github.com/markwayne24/todo-app/internal/use-cases/user-case"
)

type UserHandler struct {
	validator *validator.Validate
	service   user_case.UserServiceContract
	i18n      internal_i18n.Service
}

func NewUserHandler(database *mongo.Database, redis *redis.Client, i18n *internal_i18n.I18nService) *UserHandler {
	return &UserHandler{
		validator: validator.New(),
		i18n:      i18n,
		service:   user_case.NewUserService(database, redis),
	}
}

func (h *UserHandler) SelfProfile(c *fiber.Ctx) error {
	userID, appErr := handlers.GetUserID(c)
	if appErr != nil {
		return appErr
	}

	resp, appErr := h.service.UserSelfProfile(c.Context(), userID)
	if appErr != nil {
		return appErr
	}

	reqID := handlers.GetRequestID(c)
	lang := handlers.GetLang(c)

	webResp := handlers.CreateResponse(h.i18n.T(lang, "response.success_profile", nil), resp, reqID)
	if err := c.Status(fiber.StatusOK).JSON(webResp); err != nil {
		return app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "response.write_failed", err)
	}
	return nil
}

func (h *UserHandler) ListUsers(c *fiber.Ctx) error {
	var query user_dto.ListUsersQuery
	if err := c.QueryParser(&query); err != nil {
		return app_errors.NewAppError(fiber.StatusBadRequest, app_errors.ErrInvalidQuery, "request.invalid_query", err)
	}

	if err := h.validator.Struct(query); err != nil {
		return app_errors.NewValidationError(app_errors.ParseValidationError(err))
	}

	resp, appErr := h.service.ListUsers(c.Context(), &query)
	if appErr != nil {
		return appErr
	}

	reqID := handlers.GetRequestID(c)
	lang := handlers.GetLang(c)

	webResp := handlers.CreateResponse(h.i18n.T(lang, "response.success_list_users", nil), resp, reqID)
	if err := c.Status(fiber.StatusOK).JSON(webResp); err != nil {
		return app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "response.write_failed", err)
	}
	return nil
}
