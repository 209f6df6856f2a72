package routers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	redis_fiber "github.com/gofiber/storage/redis/v3"

	auth_handlers "github.com/markwayne24/todo-app/internal/handlers/auth"
)

// AuthRouter mounts registration, login and token refresh. Login is rate
// limited per client IP with counters kept in redis.
func AuthRouter(api fiber.Router, deps RouterDeps) {
	r := api.Group("/auth")
	authHandler := auth_handlers.NewAuthHandler(deps.DB, deps.Queue, deps.I18n, deps.JWT, deps.AccessTTL, deps.RefreshTTL)

	redisStore := redis_fiber.New(redis_fiber.Config{
		Host:     deps.Storage.Host,
		Password: deps.Storage.Password,
		Port:     6379,
		Database: 1,
	})

	loginLimiter := limiter.New(limiter.Config{
		Max:        10,
		Expiration: time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return "login:ip:" + c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"status": "error",
				"error":  "too_many_request",
			})
		},
		Storage: redisStore,
	})

	r.Post("/register", authHandler.RegisterUser)
	r.Post("/login", loginLimiter, authHandler.LoginUser)
	r.Post("/refresh", authHandler.RefreshToken)
}
