package scheduler

import (
	"context"
	"fmt"
	"time"

	"gym_backoffice_backend/internal/taskboard/domain"
	"gym_backoffice_backend/platform/logger"
	"gym_backoffice_backend/platform/timeutil"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

const defaultRenewalWindowDays = 7

// One renewal-call per member with a membership ending inside the window,
// skipped while a pending renewal-call for that member already exists.
const insertRenewalFollowUpsQuery = `
	INSERT INTO follow_ups (
		id, organization_id, branch_id, type, call_type, call_status, due_date,
		related_entity_type, related_entity_id, status, notes, created_at, updated_at
	)
	SELECT
		gen_random_uuid(), m.organization_id, m.branch_id, $6::text, $7::text, $8::text, $1::timestamptz,
		$9::text, m.id, $10::text, '', $4::timestamptz, $4::timestamptz
	FROM members m
	WHERE m.membership_end_date >= $2
		AND m.membership_end_date < $3
		AND ($5::uuid IS NULL OR m.organization_id = $5)
		AND NOT EXISTS (
			SELECT 1 FROM follow_ups f
			WHERE f.organization_id = m.organization_id
				AND f.related_entity_type = $9::text
				AND f.related_entity_id = m.id
				AND f.call_type = $7::text
				AND f.status = $10::text
		)`

// RenewalSweep creates renewal-call follow-ups for memberships that are about
// to end.
type RenewalSweep struct {
	pool       *pgxpool.Pool
	clock      timeutil.Clock
	windowDays int
	log        *logger.Logger
}

func NewRenewalSweep(pool *pgxpool.Pool, clock timeutil.Clock, windowDays int, log *logger.Logger) *RenewalSweep {
	if windowDays <= 0 {
		windowDays = defaultRenewalWindowDays
	}
	return &RenewalSweep{pool: pool, clock: clock, windowDays: windowDays, log: log}
}

// renewalWindow returns the due date for new tasks and the half-open range of
// membership end dates that qualify.
func renewalWindow(now time.Time, windowDays int) (dueDate, from, until time.Time) {
	today := timeutil.StartOfDay(now)
	return today, today, today.AddDate(0, 0, windowDays+1)
}

// Run inserts the missing renewal follow-ups and returns how many were
// created. organizationID nil sweeps all organizations.
func (s *RenewalSweep) Run(ctx context.Context, organizationID *uuid.UUID) (int64, error) {
	now := s.clock.Now()
	dueDate, from, until := renewalWindow(now, s.windowDays)

	tag, err := s.pool.Exec(ctx, insertRenewalFollowUpsQuery,
		dueDate, from, until, now, organizationID,
		string(domain.FollowUpTypeServiceExpiry),
		string(domain.CallTypeRenewal),
		string(domain.CallStatusScheduled),
		string(domain.EntityMember),
		string(domain.TaskStatusPending),
	)
	if err != nil {
		return 0, fmt.Errorf("renewal sweep: %w", err)
	}

	created := tag.RowsAffected()
	if created > 0 {
		s.log.Info("renewal sweep created follow-ups", "created", created)
	}
	return created, nil
}
