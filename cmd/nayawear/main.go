package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"nayawear-bot/internal/bot"
	"nayawear-bot/internal/config"
	"nayawear-bot/internal/session"
	"nayawear-bot/pkg/logger"
	"nayawear-bot/pkg/redis"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"
)

// ENTRY POINT

func main() {
	zapLogger, err := logger.New()
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	defer zapLogger.Sync()

	cfg, err := config.Load()
	if err != nil {
		zapLogger.Fatal("Failed to load config", zap.Error(err))
	}

	ctx, cancel := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer cancel()

	// Sessions live in memory unless a Redis address is configured.
	var sessions session.Store = session.NewMemoryStore()
	if cfg.RedisAddr != "" {
		redisClient, err := connectRedis(ctx, cfg, zapLogger)
		if err != nil {
			zapLogger.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		defer redisClient.Close()
		sessions = session.NewRedisStore(redisClient, cfg.SessionTTL)
	}

	tgBot, err := bot.New(cfg, sessions, zapLogger)
	if err != nil {
		zapLogger.Fatal("Failed to create bot", zap.Error(err))
	}

	if err := tgBot.Start(ctx); err != nil {
		zapLogger.Fatal("Bot stopped with error", zap.Error(err))
	}

	zapLogger.Info("Bot shutdown gracefully")
}

func connectRedis(ctx context.Context, cfg *config.Config, zapLogger *zap.Logger) (*redis.Client, error) {
	client := redis.New(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)

	retryPolicy := backoff.NewExponentialBackOff()
	retryPolicy.MaxElapsedTime = 2 * time.Minute
	retryPolicy.MaxInterval = 15 * time.Second

	zapLogger.Info("Connecting to Redis...", zap.String("addr", cfg.RedisAddr))

	err := backoff.RetryNotify(
		func() error {
			return client.Ping(ctx)
		},
		backoff.WithContext(retryPolicy, ctx),
		func(err error, duration time.Duration) {
			zapLogger.Warn("Redis connection failed, retrying...",
				zap.Error(err),
				zap.Duration("next_attempt_in", duration))
		},
	)
	if err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect after retries: %w", err)
	}

	zapLogger.Info("Successfully connected to Redis")
	return client, nil
}
