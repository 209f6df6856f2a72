package auth_handlers

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/mongo"

	auth_dto "github.com/markwayne24/todo-app/internal/dtos/auth-dto"
	app_errors "github.com/markwayne24/todo-app/internal/errors"
	"github.com/markwayne24/todo-app/internal/handlers"
	internal_i18n "github.com/markwayne24/todo-app/internal/i18n"
	"github.com/markwayne24/todo-app/internal/queue"
	auth_case "github.com/markwayne24/todo-app/internal/use-cases/auth-case"
	"github.com/markwayne24/todo-app/internal/utils"
)

type AuthHandler struct {
	validator *validator.Validate
	service   auth_case.AuthServiceContract
	i18n      internal_i18n.Service
}

func NewAuthHandler(database *mongo.Database, q queue.TaskQueueClient, i18n *internal_i18n.I18nService, jwt *utils.JWTMaker, accessTTL, refreshTTL time.Duration) *AuthHandler {
	return &AuthHandler{
		validator: validator.New(),
		i18n:      i18n,
		service:   auth_case.NewAuthService(database, q, jwt, accessTTL, refreshTTL),
	}
}

// RegisterUser creates the account and issues the first token pair. The
// welcome email goes out through the queue, not inline.
func (h *AuthHandler) RegisterUser(c *fiber.Ctx) error {
	var req auth_dto.RegisterUserRequest
	if err := c.BodyParser(&req); err != nil {
		return app_errors.NewAppError(fiber.StatusBadRequest, app_errors.ErrInvalidBody, "request.invalid_body", err)
	}

	if err := h.validator.Struct(req); err != nil {
		return app_errors.NewValidationError(app_errors.ParseValidationError(err))
	}

	resp, err := h.service.RegisterUser(c.Context(), &req)
	if err != nil {
		return err
	}

	reqID := handlers.GetRequestID(c)
	lang := handlers.GetLang(c)

	webResp := handlers.CreateResponse(h.i18n.T(lang, "response.success_register", nil), resp, reqID)
	if err := c.Status(fiber.StatusCreated).JSON(webResp); err != nil {
		return app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "response.write_failed", err)
	}
	return nil
}

func (h *AuthHandler) LoginUser(c *fiber.Ctx) error {
	var req auth_dto.LoginUserRequest
	if err := c.BodyParser(&req); err != nil {
		return app_errors.NewAppError(fiber.StatusBadRequest, app_errors.ErrInvalidBody, "request.invalid_body", err)
	}

	if err := h.validator.Struct(req); err != nil {
		return app_errors.NewValidationError(app_errors.ParseValidationError(err))
	}

	resp, err := h.service.LoginUser(c.Context(), &req)
	if err != nil {
		return err
	}

	reqID := handlers.GetRequestID(c)
	lang := handlers.GetLang(c)

	webResp := handlers.CreateResponse(h.i18n.T(lang, "response.success_login", nil), resp, reqID)
	if err := c.Status(fiber.StatusOK).JSON(webResp); err != nil {
		return app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "response.write_failed", err)
	}
	return nil
}

func (h *AuthHandler) RefreshToken(c *fiber.Ctx) error {
	var req auth_dto.RefreshTokenRequest
	if err := c.BodyParser(&req); err != nil {
		return app_errors.NewAppError(fiber.StatusBadRequest, app_errors.ErrInvalidBody, "request.invalid_body", err)
	}

	if err := h.validator.Struct(req); err != nil {
		return app_errors.NewValidationError(app_errors.ParseValidationError(err))
	}

	resp, err := h.service.RefreshToken(c.Context(), &req)
	if err != nil {
		return err
	}

	reqID := handlers.GetRequestID(c)
	lang := handlers.GetLang(c)

	webResp := handlers.CreateResponse(h.i18n.T(lang, "response.success_refresh", nil), resp, reqID)
	if err := c.Status(fiber.StatusOK).JSON(webResp); err != nil {
		return app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "response.write_failed", err)
	}
	return nil
}
