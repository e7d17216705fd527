package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"opatija/backend/internal/cache"
	"opatija/backend/internal/config"
	"opatija/backend/internal/database"
	"opatija/backend/internal/log"
	"opatija/backend/internal/mail"
	"opatija/backend/internal/queue"
	"opatija/backend/internal/repository"
	"opatija/backend/internal/worker"
)

const claimInterval = 30 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger := log.New(cfg.Environment, "worker")

	ctx := context.Background()

	dbPool, err := database.NewPostgresPool(ctx, cfg.Postgres)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect postgres")
	}
	defer dbPool.Close()

	redisClient, err := cache.NewRedisClient(ctx, cfg.Redis)
	if err != nil {
		logger.Fatal().Err(err).Msg("redis connection failed")
	}
	defer redisClient.Close()

	processor := worker.NewProcessor(
		repository.NewContactRepository(dbPool),
		repository.NewFlightRepository(dbPool),
		cache.NewStore(redisClient, 0),
		mail.NewClient(cfg.Mail, logger),
		cfg.Mail.OperatorAddress,
		logger,
	)

	consumer := queue.NewConsumer(
		redisClient,
		cfg.Redis.Stream,
		cfg.Redis.Group,
		cfg.Redis.Consumer,
		claimInterval,
		logger,
		processor,
	)

	runCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := consumer.Start(runCtx); err != nil && err != context.Canceled {
			logger.Fatal().Err(err).Msg("consumer stopped unexpectedly")
		}
	}()

	<-runCtx.Done()
	logger.Info().Msg("shutdown signal received")
	time.Sleep(500 * time.Millisecond)
}
