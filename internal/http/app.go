package http

import (
	"context"
	"net/http"

	"gym_backoffice_backend/platform/config"
	"gym_backoffice_backend/platform/logger"
	"gym_backoffice_backend/platform/metrics"
)

// RouterConfig combines the config interfaces needed by the HTTP router.
type RouterConfig interface {
	config.HTTPConfig
	config.JWTConfig
}

// HealthChecker exposes minimal functionality for readiness checks.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

// App holds the fully initialized application dependencies.
// This is populated by main.go (the composition root) and passed to the router.
type App struct {
	// Config holds the router configuration (HTTP and JWT settings only).
	Config RouterConfig
	// Logger is the structured logger.
	Logger *logger.Logger
	// Health is used for readiness/health checks (e.g., DB ping).
	Health HealthChecker
	// Metrics records HTTP request metrics. May be nil.
	Metrics *metrics.Metrics
	// MetricsHandler serves /metrics. Nil disables the endpoint.
	MetricsHandler http.Handler
	// Modules contains all HTTP-facing domain modules.
	Modules []Module
}
