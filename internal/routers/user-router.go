package routers

import (
	"github.com/gofiber/fiber/v2"

	user_handlers "github.com/markwayne24/todo-app/internal/handlers/user"
	"github.com/markwayne24/todo-app/internal/middleware"
)

func UserRouter(api fiber.Router, deps RouterDeps) {
	r := api.Group("/users", middleware.Authentication(deps.JWT))
	userHandler := user_handlers.NewUserHandler(deps.DB, deps.Redis, deps.I18n)

	r.Get("/me", userHandler.SelfProfile)
	r.Get("/", userHandler.ListUsers)
}
