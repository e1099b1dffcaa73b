// Package taskboard provides the unified call-task board: follow-ups and
// enquiries merged into one ordered worklist with stats and export.
package taskboard

import (
	"time"

	"gym_backoffice_backend/internal/cache"
	apphttp "gym_backoffice_backend/internal/http"
	"gym_backoffice_backend/internal/taskboard/handler"
	"gym_backoffice_backend/internal/taskboard/repository"
	"gym_backoffice_backend/internal/taskboard/service"
	"gym_backoffice_backend/platform/config"
	"gym_backoffice_backend/platform/httpkit"
	"gym_backoffice_backend/platform/logger"
	"gym_backoffice_backend/platform/metrics"
	"gym_backoffice_backend/platform/phone"
	"gym_backoffice_backend/platform/timeutil"
	"gym_backoffice_backend/platform/validator"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

// ModuleConfig is the configuration the board reads.
type ModuleConfig interface {
	config.TaskboardConfig
	GetStaffNameCacheTTL() time.Duration
}

// Module represents the taskboard domain module
type Module struct {
	handler  *handler.Handler
	service  *service.Service
	exportRL int
	log      *logger.Logger
}

// NewModule creates a new taskboard module with all dependencies wired.
// redisClient may be nil, in which case staff names are read straight from
// the database.
func NewModule(pool *pgxpool.Pool, redisClient *redis.Client, cfg ModuleConfig, val *validator.Validator, m *metrics.Metrics, log *logger.Logger) *Module {
	repo := repository.New(pool)
	loc := timeutil.LoadLocation(cfg.GetTimezone())

	svc := service.New(service.Deps{
		Source:   repo,
		Contacts: repo,
		Staff:    cache.NewStaffNames(redisClient, repo, cfg.GetStaffNameCacheTTL(), log),
		Phones:   phone.NewNormalizer(cfg.GetPhoneDefaultRegion()),
		Clock:    timeutil.NewSystemClock(loc),
		Location: loc,
		Metrics:  m,
		Log:      log,
	})

	return &Module{
		handler:  handler.New(svc, val),
		service:  svc,
		exportRL: cfg.GetExportRateLimitPerMinute(),
		log:      log,
	}
}

// Service exposes the board service for the operator CLI.
func (m *Module) Service() *service.Service {
	return m.service
}

// Name returns the module name for logging
func (m *Module) Name() string {
	return "taskboard"
}

// RegisterRoutes registers the module's routes under /api/v1/taskboard
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	exportLimiter := httpkit.NewPerMinuteLimiter(m.exportRL, m.log)
	m.handler.RegisterRoutes(ctx.Protected.Group("/taskboard"), exportLimiter.RateLimit())
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
