package worker_handler

import (
	"context"

	"github.com/goccy/go-json"
	"github.com/hibiken/asynq"
	worker_task "github.com/markwayne24/todo-app/internal/worker/tasks"
	"github.com/rs/zerolog/log"
)

func (wh *WorkerHandler) handleSendWelcomeEmail(ctx context.Context, t *asynq.Task) error {
	var p worker_task.SendWelcomeEmailPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		log.Error().Err(err).Msg("Worker handler: failed to unmarshal welcome-email payload")
		return err
	}

	if err := wh.mailer.SendWelcomeEmail(p.Email, p.Name); err != nil {
		return err
	}

	log.Info().Str("email", p.Email).Msg("Worker handler: welcome email sent")
	return nil
}
