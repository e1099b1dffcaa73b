// Package followups provides follow-up task records and their call-status
// transitions.
package followups

import (
	"gym_backoffice_backend/internal/followups/handler"
	"gym_backoffice_backend/internal/followups/repository"
	"gym_backoffice_backend/internal/followups/service"
	apphttp "gym_backoffice_backend/internal/http"
	"gym_backoffice_backend/platform/logger"
	"gym_backoffice_backend/platform/timeutil"
	"gym_backoffice_backend/platform/validator"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Module represents the follow-ups domain module
type Module struct {
	handler *handler.Handler
}

// NewModule creates a new follow-ups module with all dependencies wired
func NewModule(pool *pgxpool.Pool, clock timeutil.Clock, val *validator.Validator, log *logger.Logger) *Module {
	svc := service.New(repository.New(pool), clock, log)
	return &Module{handler: handler.New(svc, val)}
}

// Name returns the module name for logging
func (m *Module) Name() string {
	return "followups"
}

// RegisterRoutes registers the module's routes under /api/v1/followups
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	m.handler.RegisterRoutes(ctx.Protected.Group("/followups"))
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
