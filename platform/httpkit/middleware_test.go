package httpkit

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"gym_backoffice_backend/platform/apperr"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type jwtConfig string

func (s jwtConfig) GetJWTAccessSecret() string { return string(s) }

func init() {
	gin.SetMode(gin.TestMode)
}

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func TestAuthRequiredSetsTenant(t *testing.T) {
	userID := uuid.New()
	tenantID := uuid.New()
	token := signToken(t, "secret", jwt.MapClaims{
		"sub":       userID.String(),
		"tenant_id": tenantID.String(),
		"type":      "access",
		"exp":       time.Now().Add(time.Hour).Unix(),
	})

	r := gin.New()
	r.GET("/me", AuthRequired(jwtConfig("secret")), func(c *gin.Context) {
		org, ok := MustGetTenant(c)
		if !ok {
			return
		}
		if got := GetIdentity(c).UserID(); got != userID {
			c.String(http.StatusInternalServerError, "user "+got.String())
			return
		}
		c.String(http.StatusOK, org.String())
	})

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if rec.Body.String() != tenantID.String() {
		t.Fatalf("expected tenant %s, got %s", tenantID, rec.Body.String())
	}
}

func TestAuthRequiredRejectsMissingAndRefreshTokens(t *testing.T) {
	r := gin.New()
	r.GET("/me", AuthRequired(jwtConfig("secret")), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/me", nil))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", rec.Code)
	}

	refresh := signToken(t, "secret", jwt.MapClaims{
		"sub":  uuid.NewString(),
		"type": "refresh",
		"exp":  time.Now().Add(time.Hour).Unix(),
	})
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+refresh)
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for refresh token, got %d", rec.Code)
	}
}

func TestMustGetTenantWithoutTenantIsForbidden(t *testing.T) {
	token := signToken(t, "secret", jwt.MapClaims{
		"sub":  uuid.NewString(),
		"type": "access",
		"exp":  time.Now().Add(time.Hour).Unix(),
	})

	r := gin.New()
	r.GET("/me", AuthRequired(jwtConfig("secret")), func(c *gin.Context) {
		if _, ok := MustGetTenant(c); !ok {
			return
		}
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}

func TestPerMinuteLimiterBlocksAfterBurst(t *testing.T) {
	limiter := NewPerMinuteLimiter(2, nil)
	r := gin.New()
	r.GET("/export", limiter.RateLimit(), func(c *gin.Context) { c.Status(http.StatusOK) })

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/export", nil))
		codes = append(codes, rec.Code)
	}

	if codes[0] != http.StatusOK || codes[1] != http.StatusOK || codes[2] != http.StatusTooManyRequests {
		t.Fatalf("unexpected status sequence %v", codes)
	}
}

func TestHandleErrorHidesUntypedErrors(t *testing.T) {
	r := gin.New()
	r.GET("/missing", func(c *gin.Context) { HandleError(c, apperr.NotFound("task not found")) })
	r.GET("/boom", func(c *gin.Context) { HandleError(c, http.ErrBodyNotAllowed) })

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/missing", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if rec.Body.String() != `{"error":"internal error"}` {
		t.Fatalf("unexpected body %s", rec.Body.String())
	}
}
