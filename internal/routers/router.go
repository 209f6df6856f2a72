package routers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/markwayne24/todo-app/internal/i18n"
	"github.com/markwayne24/todo-app/internal/queue"
	"github.com/markwayne24/todo-app/internal/utils"
)

type CfgRedisStorage struct {
	Host     string
	Password string
}

type RouterDeps struct {
	DB         *mongo.Database
	Redis      *redis.Client
	I18n       *i18n.I18nService
	JWT        *utils.JWTMaker
	Queue      queue.TaskQueueClient
	AccessTTL  time.Duration
	RefreshTTL time.Duration
	Storage    CfgRedisStorage
}

// SetupRoutes mounts the versioned API.
func SetupRoutes(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api/v1")

	AuthRouter(api, deps)
	UserRouter(api, deps)
	TaskRouter(api, deps)
	HealthRouter(api, deps.DB, deps.Redis)
}
