package worker

import (
	"fmt"
	"time"

	"github.com/hibiken/asynq"
	worker_handler "github.com/markwayne24/todo-app/internal/worker/handlers"
	worker_task "github.com/markwayne24/todo-app/internal/worker/tasks"
	"github.com/rs/zerolog/log"
)

// RegisterWorkerHandlers routes every known job type through the handler's
// single ProcessTask entrypoint, which owns the type switch and the
// unknown-type failure path.
func RegisterWorkerHandlers(mux *asynq.ServeMux, h *worker_handler.WorkerHandler) {
	jobTypes := []string{
		worker_task.TaskSendWelcomeEmail,
		worker_task.TaskSendLoginAttemptEmail,
		worker_task.TaskSendTaskStatusUpdateEmail,
		worker_task.TaskSendTaskReminder,
		worker_task.TaskSendTaskOverdue,
		worker_task.TaskUpdateOverdueStatus,
		worker_task.TaskScanDueTomorrow,
		worker_task.TaskScanOverdue,
	}

	for _, jobType := range jobTypes {
		mux.HandleFunc(jobType, h.ProcessTask)
	}
}

// RegisterCronJobs wires the two daily scans. asynq.Unique keeps a scan
// singleton: a second trigger is rejected while one is still in flight.
func RegisterCronJobs(s *asynq.Scheduler) error {
	jobs := []struct {
		spec string
		task *asynq.Task
		desc string
	}{
		{
			spec: "0 0 * * *",
			task: asynq.NewTask(worker_task.TaskScanDueTomorrow, nil),
			desc: "scan tasks due tomorrow",
		},
		{
			spec: "0 0 * * *",
			task: asynq.NewTask(worker_task.TaskScanOverdue, nil),
			desc: "scan overdue tasks",
		},
	}

	for _, job := range jobs {
		if _, err := s.Register(job.spec, job.task, asynq.Queue("low"), asynq.Unique(time.Hour)); err != nil {
			return fmt.Errorf("register %s failed: %w", job.desc, err)
		}
		log.Info().Msgf("scheduled: %s", job.desc)
	}

	return nil
}
