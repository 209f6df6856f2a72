package worker_handler

import (
	"github.com/markwayne24/todo-app/internal/mail"
	"github.com/markwayne24/todo-app/internal/queue"
	task_repo "github.com/markwayne24/todo-app/internal/repo/task-repo"
	user_repo "github.com/markwayne24/todo-app/internal/repo/user-repo"
	"github.com/markwayne24/todo-app/internal/scanner"
	"go.mongodb.org/mongo-driver/mongo"
)

type WorkerHandler struct {
	tasks      task_repo.TaskRepoContract
	users      user_repo.UserRepoContract
	mailer     mail.Mailer
	scanner    *scanner.Scanner
	dispatcher *scanner.Dispatcher
}

func NewWorkerHandler(database *mongo.Database, q queue.TaskQueueClient, mailer mail.Mailer) *WorkerHandler {
	tasks := task_repo.NewTaskRepo(database)

	return &WorkerHandler{
		tasks:      tasks,
		users:      user_repo.NewUserRepo(database),
		mailer:     mailer,
		scanner:    scanner.NewScanner(tasks),
		dispatcher: scanner.NewDispatcher(q),
	}
}
