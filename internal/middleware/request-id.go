package middleware

import (
	"github.com/gofiber/fiber/v2"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

const RequestIDKey = "request_id"

// RequestID tags every request with a short id for log correlation. An id
// supplied by the caller via X-Request-Id is kept.
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get("X-Request-Id")
		if id == "" {
			generated, err := gonanoid.New(12)
			if err != nil {
				return err
			}
			id = "TD-" + generated
		}

		c.Locals(RequestIDKey, id)
		c.Set("X-Request-Id", id)
		return c.Next()
	}
}
