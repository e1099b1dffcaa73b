package router

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	apphttp "gym_backoffice_backend/internal/http"
	"gym_backoffice_backend/platform/config"
	"gym_backoffice_backend/platform/logger"
	"gym_backoffice_backend/platform/metrics"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type pingFunc func(ctx context.Context) error

func (f pingFunc) Ping(ctx context.Context) error { return f(ctx) }

type echoModule struct{}

func (echoModule) Name() string { return "echo" }

func (echoModule) RegisterRoutes(ctx *apphttp.RouterContext) {
	ctx.Protected.GET("/echo", func(c *gin.Context) { c.Status(http.StatusNoContent) })
}

func newTestApp(health apphttp.HealthChecker) *apphttp.App {
	gin.SetMode(gin.TestMode)
	reg := prometheus.NewRegistry()
	return &apphttp.App{
		Config: &config.Config{
			JWTAccessSecret: "secret",
			CORSOrigins:     []string{"http://localhost:4200"},
			CORSAllowCreds:  true,
		},
		Logger:         logger.Nop(),
		Health:         health,
		Metrics:        metrics.New(reg),
		MetricsHandler: promhttp.HandlerFor(reg, promhttp.HandlerOpts{}),
		Modules:        []apphttp.Module{echoModule{}},
	}
}

func TestHealthReflectsDatabase(t *testing.T) {
	engine := New(newTestApp(pingFunc(func(context.Context) error { return errors.New("down") })))

	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/health", nil))
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", rec.Code)
	}
	if rec.Header().Get("X-Request-ID") == "" {
		t.Fatal("expected a request id header")
	}
}

func TestModuleRoutesRequireAuth(t *testing.T) {
	engine := New(newTestApp(nil))

	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/echo", nil))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestMetricsEndpointExposesHTTPCounters(t *testing.T) {
	engine := New(newTestApp(nil))

	engine.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/health", nil))

	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `http_requests_total{method="GET",route="/api/health",status="200"} 1`) {
		t.Fatalf("expected health request to be counted, got:\n%s", rec.Body.String())
	}
}
