package config

import (
	"testing"
	"time"
)

func TestLoadRequiresDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")

	if _, err := Load(); err == nil {
		t.Fatal("expected error when DATABASE_URL is empty")
	}
}

func TestLoadAPIRequiresAccessSecret(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/gym")
	t.Setenv("JWT_ACCESS_SECRET", "")

	if _, err := LoadAPI(); err == nil {
		t.Fatal("expected error when JWT_ACCESS_SECRET is empty")
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/gym")
	t.Setenv("CORS_ORIGINS", "http://localhost:4200")
	t.Setenv("STAFF_NAME_CACHE_TTL", "not-a-duration")
	t.Setenv("RENEWAL_WINDOW_DAYS", "-3")
	t.Setenv("PHONE_DEFAULT_REGION", "in")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.GetStaffNameCacheTTL() != 10*time.Minute {
		t.Fatalf("expected fallback cache TTL, got %s", cfg.GetStaffNameCacheTTL())
	}
	if cfg.GetRenewalWindowDays() != 7 {
		t.Fatalf("expected fallback renewal window, got %d", cfg.GetRenewalWindowDays())
	}
	if cfg.GetPhoneDefaultRegion() != "IN" {
		t.Fatalf("expected upper-cased region, got %q", cfg.GetPhoneDefaultRegion())
	}
}

func TestWildcardOriginWithCredentialsIsRejected(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/gym")
	t.Setenv("CORS_ORIGINS", "*")
	t.Setenv("CORS_ALLOW_CREDENTIALS", "true")

	if _, err := Load(); err == nil {
		t.Fatal("expected wildcard origin with credentials to be rejected")
	}
}
