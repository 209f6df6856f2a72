package worker_handler

import (
	"context"
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"github.com/hibiken/asynq"
	worker_task "github.com/markwayne24/todo-app/internal/worker/tasks"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func (wh *WorkerHandler) handleSendLoginAttemptEmail(ctx context.Context, t *asynq.Task) error {
	var p worker_task.SendLoginAttemptEmailPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		log.Error().Err(err).Msg("Worker handler: failed to unmarshal login-attempt payload")
		return err
	}

	// A malformed id is a data error that no retry can repair.
	userID, err := primitive.ObjectIDFromHex(p.UserID)
	if err != nil {
		log.Error().Err(err).Str("user_id", p.UserID).Msg("Worker handler: login-attempt payload carries a malformed user id")
		return fmt.Errorf("malformed user id %q: %w", p.UserID, asynq.SkipRetry)
	}

	user, repoErr := wh.users.FindUserByID(ctx, userID)
	if repoErr != nil {
		return repoErr
	}

	// The user may have been deleted between enqueue and processing. That is
	// a benign no-op, the job still completes.
	if user == nil {
		log.Warn().Str("user_id", p.UserID).Msg("Worker handler: user not found, skipping login-attempt email")
		return nil
	}

	if err := wh.mailer.SendLoginAttemptEmail(user.Email, time.Now()); err != nil {
		return err
	}

	log.Info().Str("email", user.Email).Msg("Worker handler: login-attempt email sent")
	return nil
}
