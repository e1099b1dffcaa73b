// Package cli defines the cobra command tree for taskboardctl.
package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"gym_backoffice_backend/internal/cache"
	"gym_backoffice_backend/internal/scheduler"
	"gym_backoffice_backend/internal/taskboard"
	"gym_backoffice_backend/internal/taskboard/domain"
	"gym_backoffice_backend/platform/config"
	"gym_backoffice_backend/platform/db"
	"gym_backoffice_backend/platform/logger"
	"gym_backoffice_backend/platform/metrics"
	"gym_backoffice_backend/platform/validator"
)

// Board is the part of the taskboard service the commands use.
type Board interface {
	Stats(ctx context.Context, organizationID uuid.UUID, params domain.FilterParams) (domain.Stats, error)
	Export(ctx context.Context, organizationID uuid.UUID, params domain.FilterParams) ([]domain.UnifiedTask, error)
	Now() time.Time
}

// runtime holds the collaborators opened for one command invocation.
type runtime struct {
	board  Board
	sweeps scheduler.SweepEnqueuer
	close  func()
}

type opener func(ctx context.Context) (*runtime, error)

var (
	flagOrg        string
	flagFrom       string
	flagTo         string
	flagDateFilter string
	flagStaff      string
	flagCallType   string
	flagCallStatus string
)

// NewRootCmd creates the root cobra command with global flags.
func NewRootCmd() *cobra.Command {
	return newRootCmd(openRuntime)
}

func newRootCmd(open opener) *cobra.Command {
	root := &cobra.Command{
		Use:           "taskboardctl",
		Short:         "Operate the call-task board",
		Long:          "Export and summarize an organization's call tasks, and trigger follow-up automation.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&flagOrg, "org", "", "organization id (required)")
	root.PersistentFlags().StringVar(&flagFrom, "from", "", "range start date (YYYY-MM-DD)")
	root.PersistentFlags().StringVar(&flagTo, "to", "", "range end date (YYYY-MM-DD)")
	root.PersistentFlags().StringVar(&flagDateFilter, "date-filter", "", "preset range (today|last-7-days|last-30-days)")
	root.PersistentFlags().StringVar(&flagStaff, "staff", "all", "staff id or all")
	root.PersistentFlags().StringVar(&flagCallType, "call-type", "all", "call type or all")
	root.PersistentFlags().StringVar(&flagCallStatus, "call-status", "all", "call status or all")

	root.AddCommand(
		newExportCmd(open),
		newStatsCmd(open),
		newSweepCmd(open),
	)

	return root
}

func filterParams() domain.FilterParams {
	return domain.FilterParams{
		FromDate:   flagFrom,
		ToDate:     flagTo,
		DateFilter: flagDateFilter,
		StaffID:    flagStaff,
		CallType:   flagCallType,
		CallStatus: flagCallStatus,
	}
}

func organizationID() (uuid.UUID, error) {
	if flagOrg == "" {
		return uuid.UUID{}, fmt.Errorf("--org is required")
	}
	id, err := uuid.Parse(flagOrg)
	if err != nil {
		return uuid.UUID{}, fmt.Errorf("invalid --org: %w", err)
	}
	return id, nil
}

// openRuntime wires the board the same way the API does. Logs go to stderr
// so stdout stays clean for exported data.
func openRuntime(ctx context.Context) (*runtime, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	log := logger.NewWithWriter(cfg.Env, os.Stderr)

	pool, err := db.NewPool(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	redisClient, err := cache.NewRedisClient(ctx, cfg)
	if err != nil {
		log.Warn("redis unavailable; reading staff names from the database", "error", err)
		redisClient = nil
	}

	rt := &runtime{
		board: taskboard.NewModule(pool, redisClient, cfg, validator.New(), metrics.New(nil), log).Service(),
	}

	var sweeps *scheduler.Client
	if cfg.GetRedisURL() != "" {
		sweeps, err = scheduler.NewClient(cfg)
		if err != nil {
			log.Warn("asynq client unavailable", "error", err)
			sweeps = nil
		}
	}
	if sweeps != nil {
		rt.sweeps = sweeps
	}

	rt.close = func() {
		if sweeps != nil {
			_ = sweeps.Close()
		}
		if redisClient != nil {
			_ = redisClient.Close()
		}
		pool.Close()
	}
	return rt, nil
}
