package scheduler

import (
	"context"
	"fmt"

	"gym_backoffice_backend/platform/config"
	"gym_backoffice_backend/platform/logger"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

// Sweeper runs one renewal sweep.
type Sweeper interface {
	Run(ctx context.Context, organizationID *uuid.UUID) (int64, error)
}

type Worker struct {
	server *asynq.Server
	mux    *asynq.ServeMux
	log    *logger.Logger
}

func NewWorker(cfg config.SchedulerConfig, sweeper Sweeper, log *logger.Logger) (*Worker, error) {
	opt, queue, err := connection(cfg)
	if err != nil {
		return nil, err
	}

	concurrency := cfg.GetAsynqConcurrency()
	if concurrency < 1 {
		concurrency = 10
	}

	server := asynq.NewServer(opt, asynq.Config{
		Concurrency: concurrency,
		Queues: map[string]int{
			queue: 1,
		},
	})

	w := &Worker{
		server: server,
		mux:    newServeMux(sweeper, log),
		log:    log,
	}
	return w, nil
}

func newServeMux(sweeper Sweeper, log *logger.Logger) *asynq.ServeMux {
	mux := asynq.NewServeMux()
	mux.HandleFunc(TaskRenewalSweep, handleRenewalSweep(sweeper, log))
	return mux
}

func (w *Worker) Run(ctx context.Context) {
	if w == nil || w.server == nil {
		return
	}

	go func() {
		<-ctx.Done()
		w.server.Shutdown()
	}()

	if err := w.server.Run(w.mux); err != nil {
		w.log.Error("scheduler worker stopped", "error", err)
	}
}

func handleRenewalSweep(sweeper Sweeper, log *logger.Logger) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		payload, err := ParseRenewalSweepPayload(task)
		if err != nil {
			return fmt.Errorf("%v: %w", err, asynq.SkipRetry)
		}

		var organizationID *uuid.UUID
		if payload.OrganizationID != "" {
			id, err := uuid.Parse(payload.OrganizationID)
			if err != nil {
				return fmt.Errorf("invalid organization id: %w", asynq.SkipRetry)
			}
			organizationID = &id
		}

		if _, err := sweeper.Run(ctx, organizationID); err != nil {
			log.DatabaseError("renewal_sweep", err)
			return err
		}
		return nil
	}
}
