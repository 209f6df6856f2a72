package routers

import (
	"github.com/gofiber/fiber/v2"

	task_handlers "github.com/markwayne24/todo-app/internal/handlers/task"
	"github.com/markwayne24/todo-app/internal/middleware"
)

func TaskRouter(api fiber.Router, deps RouterDeps) {
	r := api.Group("/tasks", middleware.Authentication(deps.JWT))
	taskHandler := task_handlers.NewTaskHandler(deps.DB, deps.Queue, deps.I18n)

	r.Post("/", taskHandler.CreateTask)
	r.Get("/", taskHandler.GetTasks)
	r.Get("/:id", taskHandler.GetTaskByID)
	r.Patch("/:id", taskHandler.UpdateTask)
	r.Patch("/:id/status", taskHandler.UpdateTaskStatus)
	r.Delete("/:id", taskHandler.DeleteTask)
}
