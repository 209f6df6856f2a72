package middleware

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	app_errors "github.com/markwayne24/todo-app/internal/errors"
	"github.com/markwayne24/todo-app/internal/utils"
)

const (
	UserIDKey    = "user_id"
	UserNameKey  = "user_name"
	UserEmailKey = "user_email"
)

// Authentication verifies the bearer token and stashes the caller identity
// in the request locals.
func Authentication(jwt *utils.JWTMaker) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get("Authorization")
		if header == "" {
			return app_errors.NewAppError(http.StatusUnauthorized, app_errors.ErrUnauthorized, "error.missing_token", nil)
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return app_errors.NewAppError(http.StatusUnauthorized, app_errors.ErrUnauthorized, "error.invalid_token", nil)
		}

		payload, err := jwt.VerifyToken(parts[1])
		if err != nil {
			key := "error.invalid_token"
			if err == utils.ErrExpiredToken {
				key = "error.expired_token"
			}
			return app_errors.NewAppError(http.StatusUnauthorized, app_errors.ErrUnauthorized, key, err)
		}

		c.Locals(UserIDKey, payload.UserID)
		c.Locals(UserNameKey, payload.Name)
		c.Locals(UserEmailKey, payload.Email)
		return c.Next()
	}
}
