package main

// Worker entrypoint. Runs the asynq job server and the cron scheduler that
// drives the daily due-date scans.

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/markwayne24/todo-app/internal/config"
	"github.com/markwayne24/todo-app/internal/db"
	"github.com/markwayne24/todo-app/internal/mail"
	"github.com/markwayne24/todo-app/internal/queue"
	"github.com/markwayne24/todo-app/internal/worker"
	worker_handler "github.com/markwayne24/todo-app/internal/worker/handlers"
)

func main() {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	cfg := config.LoadConfig()
	if cfg == nil {
		log.Fatal().Msg("invalid configuration")
	}

	mongoClient, err := db.ConnectMongo(cfg.DATABASE.Mongo.URI)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to mongo")
	}
	database := mongoClient.Database(cfg.DATABASE.Mongo.Database)

	redisPool, err := db.RedisPool(cfg.DATABASE.Redis.Addr, cfg.DATABASE.Redis.Password, 0)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}

	mailer := mail.NewMailer(cfg)
	taskQueue := queue.NewTaskQueue(redisPool)
	handler := worker_handler.NewWorkerHandler(database, taskQueue, mailer)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log.Info().Msg("starting worker...")
	if err := worker.RunWorker(ctx, redisPool, handler); err != nil {
		log.Fatal().Err(err).Msg("worker exited with error")
	}

	if redisPool != nil {
		redisPool.Close()
		log.Info().Msg("redis pool closed")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := mongoClient.Disconnect(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("error during mongo disconnect")
	} else {
		log.Info().Msg("mongo client disconnected")
	}

	log.Info().Msg("worker shut down cleanly")
}
