package queue

import (
	"github.com/goccy/go-json"
	"github.com/hibiken/asynq"
	worker_task "github.com/markwayne24/todo-app/internal/worker/tasks"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// TaskQueueClient is the enqueue side of the notification pipeline. One
// method per job type keeps payload construction next to its schema.
type TaskQueueClient interface {
	EnqueueSendWelcomeEmail(payload *worker_task.SendWelcomeEmailPayload) error
	EnqueueSendLoginAttemptEmail(payload *worker_task.SendLoginAttemptEmailPayload) error
	EnqueueSendTaskStatusUpdateEmail(payload *worker_task.SendTaskStatusUpdateEmailPayload) error
	EnqueueSendTaskReminder(payload *worker_task.SendTaskReminderPayload) error
	EnqueueSendTaskOverdue(payload *worker_task.SendTaskOverduePayload) error
	EnqueueUpdateOverdueStatus(payload *worker_task.UpdateOverdueStatusPayload) error
}

type TaskQueue struct {
	client *asynq.Client
}

func NewTaskQueue(redis *redis.Client) *TaskQueue {
	return &TaskQueue{
		client: asynq.NewClientFromRedisClient(redis),
	}
}

func (q *TaskQueue) enqueue(jobType string, payload any, opts ...asynq.Option) error {
	p, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	info, err := q.client.Enqueue(asynq.NewTask(jobType, p, opts...))
	if err != nil {
		return err
	}

	log.Info().Str("job_id", info.ID).Str("job_type", jobType).Msg("Queue: job enqueued")
	return nil
}

func (q *TaskQueue) EnqueueSendWelcomeEmail(payload *worker_task.SendWelcomeEmailPayload) error {
	return q.enqueue(worker_task.TaskSendWelcomeEmail, payload, asynq.Queue("email"), asynq.MaxRetry(5))
}

func (q *TaskQueue) EnqueueSendLoginAttemptEmail(payload *worker_task.SendLoginAttemptEmailPayload) error {
	return q.enqueue(worker_task.TaskSendLoginAttemptEmail, payload, asynq.Queue("email"), asynq.MaxRetry(5))
}

func (q *TaskQueue) EnqueueSendTaskStatusUpdateEmail(payload *worker_task.SendTaskStatusUpdateEmailPayload) error {
	return q.enqueue(worker_task.TaskSendTaskStatusUpdateEmail, payload, asynq.Queue("email"), asynq.MaxRetry(5))
}

func (q *TaskQueue) EnqueueSendTaskReminder(payload *worker_task.SendTaskReminderPayload) error {
	return q.enqueue(worker_task.TaskSendTaskReminder, payload, asynq.Queue("email"), asynq.MaxRetry(5))
}

func (q *TaskQueue) EnqueueSendTaskOverdue(payload *worker_task.SendTaskOverduePayload) error {
	return q.enqueue(worker_task.TaskSendTaskOverdue, payload, asynq.Queue("email"), asynq.MaxRetry(5))
}

func (q *TaskQueue) EnqueueUpdateOverdueStatus(payload *worker_task.UpdateOverdueStatusPayload) error {
	return q.enqueue(worker_task.TaskUpdateOverdueStatus, payload, asynq.Queue("default"), asynq.MaxRetry(5))
}
