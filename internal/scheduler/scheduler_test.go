package scheduler

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"gym_backoffice_backend/platform/logger"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

type recordingSweeper struct {
	calls []*uuid.UUID
	err   error
}

func (s *recordingSweeper) Run(_ context.Context, organizationID *uuid.UUID) (int64, error) {
	s.calls = append(s.calls, organizationID)
	return 1, s.err
}

func TestRenewalWindowStartsAtStartOfToday(t *testing.T) {
	now := time.Date(2024, 3, 10, 15, 45, 0, 0, time.UTC)

	due, from, until := renewalWindow(now, 7)

	today := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	if !due.Equal(today) || !from.Equal(today) {
		t.Fatalf("expected due and from at %s, got %s and %s", today, due, from)
	}
	if want := time.Date(2024, 3, 18, 0, 0, 0, 0, time.UTC); !until.Equal(want) {
		t.Fatalf("expected window to end at %s, got %s", want, until)
	}
}

func TestRenewalInsertIsIdempotent(t *testing.T) {
	query := strings.ToLower(insertRenewalFollowUpsQuery)
	for _, fragment := range []string{
		"not exists",
		"f.related_entity_id = m.id",
		"f.related_entity_type = $9::text",
		"f.call_type = $7::text",
		"f.status = $10::text",
		"f.organization_id = m.organization_id",
	} {
		if !strings.Contains(query, fragment) {
			t.Fatalf("expected renewal insert to contain %q", fragment)
		}
	}
}

func TestRenewalSweepHandlerScopesOrganization(t *testing.T) {
	sweeper := &recordingSweeper{}
	mux := newServeMux(sweeper, logger.Nop())
	org := uuid.New()

	task, err := NewRenewalSweepTask(RenewalSweepPayload{OrganizationID: org.String()})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mux.ProcessTask(context.Background(), task); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	all, _ := NewRenewalSweepTask(RenewalSweepPayload{})
	if err := mux.ProcessTask(context.Background(), all); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(sweeper.calls) != 2 {
		t.Fatalf("expected two sweeps, got %d", len(sweeper.calls))
	}
	if sweeper.calls[0] == nil || *sweeper.calls[0] != org {
		t.Fatalf("expected first sweep scoped to %s, got %v", org, sweeper.calls[0])
	}
	if sweeper.calls[1] != nil {
		t.Fatalf("expected unscoped sweep, got %v", sweeper.calls[1])
	}
}

func TestRenewalSweepHandlerSkipsRetryOnBadPayload(t *testing.T) {
	sweeper := &recordingSweeper{}
	mux := newServeMux(sweeper, logger.Nop())

	err := mux.ProcessTask(context.Background(), asynq.NewTask(TaskRenewalSweep, []byte(`{"organizationId":"nope"}`)))

	if !errors.Is(err, asynq.SkipRetry) {
		t.Fatalf("expected SkipRetry, got %v", err)
	}
	if len(sweeper.calls) != 0 {
		t.Fatal("expected no sweep for an invalid payload")
	}
}

func TestRenewalSweepHandlerReturnsStoreError(t *testing.T) {
	sweeper := &recordingSweeper{err: errors.New("connection refused")}
	mux := newServeMux(sweeper, logger.Nop())
	task, _ := NewRenewalSweepTask(RenewalSweepPayload{})

	if err := mux.ProcessTask(context.Background(), task); err == nil {
		t.Fatal("expected store error to be returned for retry")
	}
}
