package main

// API entrypoint. Loads configuration, connects mongo and redis, builds the
// fiber app with its middleware chain and serves until SIGINT/SIGTERM.

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/markwayne24/todo-app/internal/config"
	"github.com/markwayne24/todo-app/internal/db"
	"github.com/markwayne24/todo-app/internal/i18n"
	"github.com/markwayne24/todo-app/internal/middleware"
	"github.com/markwayne24/todo-app/internal/queue"
	"github.com/markwayne24/todo-app/internal/routers"
	"github.com/markwayne24/todo-app/internal/utils"
)

func main() {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	i18nSvc := i18n.NewI18nService("./internal/i18n")

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

	jwtMaker, err := utils.NewJWTMaker(cfg.APP_SECRET.JWT.Secret)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize token maker")
	}

	taskQueue := queue.NewTaskQueue(redisPool)

	app := fiber.New(fiber.Config{
		ErrorHandler: middleware.NewErrorHandler(i18nSvc),
	})
	app.Use(middleware.RequestID())
	app.Use(middleware.AcceptLanguage())
	app.Use(middleware.Logger())

	routers.SetupRoutes(app, routers.RouterDeps{
		DB:         database,
		Redis:      redisPool,
		I18n:       i18nSvc,
		JWT:        jwtMaker,
		Queue:      taskQueue,
		AccessTTL:  time.Duration(cfg.APP_SECRET.JWT.AccessTTLMinutes) * time.Minute,
		RefreshTTL: time.Duration(cfg.APP_SECRET.JWT.RefreshTTLMinutes) * time.Minute,
		Storage: routers.CfgRedisStorage{
			Host:     cfg.DATABASE.Redis.Addr,
			Password: cfg.DATABASE.Redis.Password,
		},
	})

	go func() {
		log.Info().Msgf("starting %s on port %s", cfg.APP.Name, cfg.APP.Port)
		if err := app.Listen(fmt.Sprintf(":%s", cfg.APP.Port)); err != nil {
			if err == http.ErrServerClosed {
				log.Info().Msg("server closed")
			} else {
				log.Fatal().Err(err).Msg("server failed to start")
			}
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	<-ctx.Done()
	stop()
	log.Warn().Msg("shutdown signal received, draining...")

	if err := app.Shutdown(); err != nil {
		log.Error().Err(err).Msg("error during fiber shutdown")
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

	log.Info().Msg("server shut down cleanly")
}
