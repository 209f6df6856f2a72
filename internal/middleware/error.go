package middleware

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/markwayne24/todo-app/internal/dtos"
	app_errors "github.com/markwayne24/todo-app/internal/errors"
	"github.com/markwayne24/todo-app/internal/i18n"
)

// NewErrorHandler turns AppError values into the standard error envelope,
// localizing messages with the language negotiated by AcceptLanguage.
func NewErrorHandler(i18nSvc i18n.Service) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		lang, _ := c.Locals(LangKey).(string)
		if lang == "" {
			lang = "en"
		}
		requestID, _ := c.Locals(RequestIDKey).(string)

		var appErr *app_errors.AppError
		if !errors.As(err, &appErr) {
			var fiberErr *fiber.Error
			if errors.As(err, &fiberErr) {
				appErr = app_errors.NewAppError(fiberErr.Code, app_errors.ErrInternal, "error.internal", err)
			} else {
				appErr = app_errors.NewAppError(http.StatusInternalServerError, app_errors.ErrInternal, "error.internal", err)
			}
		}

		if appErr.Code >= 500 {
			log.Error().Err(appErr.Err).
				Str("request_id", requestID).
				Str("path", c.Path()).
				Msg("Request failed")
		}

		details := make([]any, 0, len(appErr.Details))
		for _, d := range appErr.Details {
			details = append(details, dtos.ErrorResponse{
				Code:    appErr.Code,
				Message: i18nSvc.T(lang, d.MessageKey, d.Params),
				Field:   d.Field,
			})
		}

		return c.Status(appErr.Code).JSON(dtos.WebResponse[any]{
			Message:   i18nSvc.T(lang, appErr.MessageKey, nil),
			RequestID: requestID,
			Details:   details,
			Errors: &dtos.ErrorResponse{
				Code:    appErr.Code,
				Message: appErr.Type,
			},
		})
	}
}
