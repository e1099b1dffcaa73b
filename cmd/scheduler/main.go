package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gym_backoffice_backend/internal/scheduler"
	"gym_backoffice_backend/platform/config"
	"gym_backoffice_backend/platform/db"
	"gym_backoffice_backend/platform/logger"
	"gym_backoffice_backend/platform/timeutil"

	"github.com/jackc/pgx/v5/pgxpool"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	log := logger.New(cfg.Env)
	log.Info("starting scheduler", "env", cfg.Env)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var pool *pgxpool.Pool
	if err := withRetry(ctx, log, "database connection", 5, 2*time.Second, func() error {
		p, err := db.NewPool(ctx, cfg)
		if err != nil {
			return err
		}
		pool = p
		return nil
	}); err != nil {
		log.Error("failed to connect to database", "error", err)
		panic("failed to connect to database: " + err.Error())
	}
	defer pool.Close()

	loc := timeutil.LoadLocation(cfg.GetTimezone())
	sweep := scheduler.NewRenewalSweep(pool, timeutil.NewSystemClock(loc), cfg.GetRenewalWindowDays(), log)

	periodic, err := scheduler.NewPeriodic(cfg, cfg.GetRenewalSweepCron(), loc)
	if err != nil {
		log.Error("failed to initialize periodic scheduler", "error", err)
		panic("failed to initialize periodic scheduler: " + err.Error())
	}
	if err := periodic.Start(); err != nil {
		log.Error("failed to start periodic scheduler", "error", err)
		panic("failed to start periodic scheduler: " + err.Error())
	}
	defer periodic.Shutdown()
	log.Info("renewal sweep registered", "cron", cfg.GetRenewalSweepCron(), "timezone", loc.String())

	worker, err := scheduler.NewWorker(cfg, sweep, log)
	if err != nil {
		log.Error("failed to initialize scheduler worker", "error", err)
		panic("failed to initialize scheduler worker: " + err.Error())
	}

	worker.Run(ctx)
}

func withRetry(ctx context.Context, log *logger.Logger, name string, attempts int, baseDelay time.Duration, fn func() error) error {
	if attempts < 1 {
		return errors.New(name + ": invalid retry attempts")
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err := fn(); err == nil {
			return nil
		} else {
			lastErr = err
			log.Warn("retryable operation failed", "operation", name, "attempt", attempt, "error", err)
		}

		if attempt < attempts {
			delay := time.Duration(attempt*attempt) * baseDelay
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
			}
		}
	}

	return errors.New(name + ": " + lastErr.Error())
}
