package service

import (
	"context"
	"testing"
	"time"

	"gym_backoffice_backend/internal/followups/repository"
	"gym_backoffice_backend/internal/followups/transport"
	"gym_backoffice_backend/internal/taskboard/domain"
	"gym_backoffice_backend/platform/apperr"
	"gym_backoffice_backend/platform/timeutil"

	"github.com/google/uuid"
)

type fakeRepo struct {
	rows  map[uuid.UUID]repository.FollowUp
	saves int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{rows: map[uuid.UUID]repository.FollowUp{}}
}

func (r *fakeRepo) Create(_ context.Context, f *repository.FollowUp) error {
	r.rows[f.ID] = *f
	return nil
}

func (r *fakeRepo) GetByID(_ context.Context, id, organizationID uuid.UUID) (*repository.FollowUp, error) {
	f, ok := r.rows[id]
	if !ok || f.OrganizationID != organizationID {
		return nil, apperr.NotFound("follow-up task not found")
	}
	return &f, nil
}

func (r *fakeRepo) UpdateSchedule(ctx context.Context, id, organizationID uuid.UUID, scheduledTime *time.Time, dueDate, updatedAt time.Time) (*repository.FollowUp, error) {
	f, err := r.GetByID(ctx, id, organizationID)
	if err != nil {
		return nil, err
	}
	f.ScheduledTime = scheduledTime
	f.DueDate = dueDate
	f.UpdatedAt = updatedAt
	r.rows[id] = *f
	return f, nil
}

func (r *fakeRepo) SaveCallStatus(ctx context.Context, f *repository.FollowUp) error {
	stored, err := r.GetByID(ctx, f.ID, f.OrganizationID)
	if err != nil {
		return err
	}
	stored.CallStatus = f.CallStatus
	stored.AttemptedAt = f.AttemptedAt
	stored.ContactedAt = f.ContactedAt
	stored.Status = f.Status
	stored.UpdatedAt = f.UpdatedAt
	r.rows[f.ID] = *stored
	r.saves++
	return nil
}

type steppingClock struct {
	now time.Time
}

func (c *steppingClock) Now() time.Time { return c.now }

var transitionNow = time.Date(2024, 3, 10, 9, 15, 0, 0, time.UTC)

func seed(t *testing.T, repo *fakeRepo, org uuid.UUID) uuid.UUID {
	t.Helper()
	id := uuid.New()
	status := string(domain.CallStatusScheduled)
	repo.rows[id] = repository.FollowUp{
		ID:             id,
		OrganizationID: org,
		Type:           string(domain.FollowUpTypeFollowUp),
		CallType:       string(domain.CallTypeFollowUp),
		CallStatus:     &status,
		DueDate:        time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
		Status:         string(domain.TaskStatusPending),
	}
	return id
}

func TestApplyCallStatusAttemptedStampsAttemptedAt(t *testing.T) {
	f := &repository.FollowUp{Status: string(domain.TaskStatusPending)}

	ApplyCallStatus(f, domain.CallStatusAttempted, transitionNow)

	if f.CallStatus == nil || *f.CallStatus != "attempted" {
		t.Fatalf("expected attempted call status, got %v", f.CallStatus)
	}
	if f.AttemptedAt == nil || !f.AttemptedAt.Equal(transitionNow) {
		t.Fatalf("expected attemptedAt to be now, got %v", f.AttemptedAt)
	}
	if f.ContactedAt != nil {
		t.Fatal("attempted must not set contactedAt")
	}
	if f.Status != "pending" {
		t.Fatalf("attempted must not complete the task, got %q", f.Status)
	}
}

func TestApplyCallStatusContactedCompletesTask(t *testing.T) {
	f := &repository.FollowUp{Status: string(domain.TaskStatusPending)}

	ApplyCallStatus(f, domain.CallStatusContacted, transitionNow)

	if f.ContactedAt == nil || !f.ContactedAt.Equal(transitionNow) {
		t.Fatalf("expected contactedAt to be now, got %v", f.ContactedAt)
	}
	if f.Status != "completed" {
		t.Fatalf("expected completed status, got %q", f.Status)
	}
}

func TestApplyCallStatusOtherStatusesHaveNoSideEffects(t *testing.T) {
	for _, status := range []domain.CallStatus{domain.CallStatusScheduled, domain.CallStatusNotContacted, domain.CallStatusMissed} {
		f := &repository.FollowUp{Status: string(domain.TaskStatusPending)}

		ApplyCallStatus(f, status, transitionNow)

		if *f.CallStatus != string(status) {
			t.Fatalf("expected %s, got %s", status, *f.CallStatus)
		}
		if f.AttemptedAt != nil || f.ContactedAt != nil || f.Status != "pending" {
			t.Fatalf("%s must not derive timestamps or complete the task", status)
		}
	}
}

func TestUpdateCallStatusTwiceRefreshesTimestamp(t *testing.T) {
	repo := newFakeRepo()
	org := uuid.New()
	id := seed(t, repo, org)
	clock := &steppingClock{now: transitionNow}
	svc := New(repo, clock, nil)

	if _, err := svc.UpdateCallStatus(context.Background(), org, id, "attempted"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	clock.now = transitionNow.Add(30 * time.Minute)
	resp, err := svc.UpdateCallStatus(context.Background(), org, id, "attempted")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if resp.CallStatus != "attempted" {
		t.Fatalf("expected attempted, got %q", resp.CallStatus)
	}
	if resp.AttemptedAt == nil || !resp.AttemptedAt.Equal(clock.now) {
		t.Fatalf("expected attemptedAt refreshed to %s, got %v", clock.now, resp.AttemptedAt)
	}
	stored := repo.rows[id]
	if !stored.AttemptedAt.Equal(clock.now) {
		t.Fatalf("expected stored attemptedAt refreshed, got %v", stored.AttemptedAt)
	}
	if repo.saves != 2 {
		t.Fatalf("expected two writes, got %d", repo.saves)
	}
}

func TestUpdateCallStatusOtherOrganizationIsNotFound(t *testing.T) {
	repo := newFakeRepo()
	id := seed(t, repo, uuid.New())
	svc := New(repo, timeutil.ClockFunc(func() time.Time { return transitionNow }), nil)

	_, err := svc.UpdateCallStatus(context.Background(), uuid.New(), id, "contacted")
	if !apperr.Is(err, apperr.KindNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if repo.saves != 0 {
		t.Fatal("expected no write for a foreign task")
	}
}

func TestUpdateCallStatusRejectsUnknownStatus(t *testing.T) {
	repo := newFakeRepo()
	org := uuid.New()
	id := seed(t, repo, org)
	svc := New(repo, nil, nil)

	_, err := svc.UpdateCallStatus(context.Background(), org, id, "busy")
	if !apperr.Is(err, apperr.KindValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestCreateStartsScheduledAndPending(t *testing.T) {
	repo := newFakeRepo()
	org := uuid.New()
	member := uuid.New()
	svc := New(repo, timeutil.ClockFunc(func() time.Time { return transitionNow }), nil)

	resp, err := svc.Create(context.Background(), org, transport.CreateFollowUpRequest{
		Type:      "service-expiry",
		CallType:  "renewal-call",
		DueDate:   transitionNow,
		RelatedTo: &transport.RelatedTo{EntityType: "member", EntityID: member},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if resp.CallStatus != "scheduled" || resp.Status != "pending" {
		t.Fatalf("expected scheduled/pending, got %s/%s", resp.CallStatus, resp.Status)
	}
	if resp.RelatedTo == nil || resp.RelatedTo.EntityID != member {
		t.Fatalf("expected related member, got %+v", resp.RelatedTo)
	}
	if stored := repo.rows[resp.ID]; stored.OrganizationID != org {
		t.Fatalf("expected task stored under caller organization")
	}
}

func TestCreateRejectsUnknownTypes(t *testing.T) {
	tests := []struct {
		name     string
		typ      string
		callType string
	}{
		{name: "follow-up type", typ: "newsletter", callType: "renewal-call"},
		{name: "call type", typ: "service-expiry", callType: "sales-call"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeRepo()
			svc := New(repo, nil, nil)

			_, err := svc.Create(context.Background(), uuid.New(), transport.CreateFollowUpRequest{
				Type:     tt.typ,
				CallType: tt.callType,
				DueDate:  transitionNow,
			})
			if !apperr.Is(err, apperr.KindValidation) {
				t.Fatalf("expected validation error, got %v", err)
			}
			if len(repo.rows) != 0 {
				t.Fatalf("expected nothing stored, got %d rows", len(repo.rows))
			}
		})
	}
}

func TestCreateTrimsTypes(t *testing.T) {
	repo := newFakeRepo()
	svc := New(repo, nil, nil)

	resp, err := svc.Create(context.Background(), uuid.New(), transport.CreateFollowUpRequest{
		Type:     " upgrade ",
		CallType: "follow-up-call ",
		DueDate:  transitionNow,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Type != "upgrade" || resp.CallType != "follow-up-call" {
		t.Fatalf("expected trimmed types, got %q/%q", resp.Type, resp.CallType)
	}
}

func TestRescheduleClearsScheduledTime(t *testing.T) {
	repo := newFakeRepo()
	org := uuid.New()
	id := seed(t, repo, org)
	scheduled := transitionNow
	row := repo.rows[id]
	row.ScheduledTime = &scheduled
	repo.rows[id] = row
	svc := New(repo, nil, nil)

	due := time.Date(2024, 3, 12, 0, 0, 0, 0, time.UTC)
	resp, err := svc.Reschedule(context.Background(), org, id, transport.RescheduleRequest{DueDate: due})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if resp.ScheduledTime != nil {
		t.Fatalf("expected scheduled time cleared, got %v", resp.ScheduledTime)
	}
	if !resp.DueDate.Equal(due) {
		t.Fatalf("expected due date %s, got %s", due, resp.DueDate)
	}
}

func TestToResponseDefaultsMissingCallStatus(t *testing.T) {
	resp := ToResponse(&repository.FollowUp{Status: "pending"})

	if resp.CallStatus != "scheduled" {
		t.Fatalf("expected scheduled, got %q", resp.CallStatus)
	}
	if resp.RelatedTo != nil {
		t.Fatal("expected no related reference")
	}
}
