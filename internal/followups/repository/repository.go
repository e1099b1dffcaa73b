package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gym_backoffice_backend/platform/apperr"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// FollowUp represents the follow-up task database model
type FollowUp struct {
	ID                uuid.UUID  `db:"id"`
	OrganizationID    uuid.UUID  `db:"organization_id"`
	BranchID          *uuid.UUID `db:"branch_id"`
	Type              string     `db:"type"`
	CallType          string     `db:"call_type"`
	CallStatus        *string    `db:"call_status"`
	ScheduledTime     *time.Time `db:"scheduled_time"`
	DueDate           time.Time  `db:"due_date"`
	RelatedEntityType *string    `db:"related_entity_type"`
	RelatedEntityID   *uuid.UUID `db:"related_entity_id"`
	AssignedTo        *uuid.UUID `db:"assigned_to"`
	AttemptedAt       *time.Time `db:"attempted_at"`
	ContactedAt       *time.Time `db:"contacted_at"`
	Status            string     `db:"status"`
	Notes             string     `db:"notes"`
	CreatedAt         time.Time  `db:"created_at"`
	UpdatedAt         time.Time  `db:"updated_at"`
}

const followUpNotFoundMsg = "follow-up task not found"

const followUpColumns = `
	id, organization_id, branch_id, type, call_type, call_status, scheduled_time, due_date,
	related_entity_type, related_entity_id, assigned_to, attempted_at, contacted_at,
	status, notes, created_at, updated_at`

const getFollowUpQuery = `SELECT ` + followUpColumns + `
	FROM follow_ups
	WHERE id = $1 AND organization_id = $2`

const updateScheduleQuery = `
	UPDATE follow_ups
	SET scheduled_time = $3, due_date = $4, updated_at = $5
	WHERE id = $1 AND organization_id = $2
	RETURNING ` + followUpColumns

// Only the fields a call-status transition derives are written back.
const saveCallStatusQuery = `
	UPDATE follow_ups
	SET call_status = $3, attempted_at = $4, contacted_at = $5, status = $6, updated_at = $7
	WHERE id = $1 AND organization_id = $2`

// Repository provides database operations for follow-up tasks
type Repository struct {
	pool *pgxpool.Pool
}

// New creates a new follow-ups repository
func New(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// Create inserts a new follow-up task
func (r *Repository) Create(ctx context.Context, f *FollowUp) error {
	query := `
		INSERT INTO follow_ups (` + followUpColumns + `
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17
		)`

	_, err := r.pool.Exec(ctx, query,
		f.ID, f.OrganizationID, f.BranchID, f.Type, f.CallType, f.CallStatus, f.ScheduledTime, f.DueDate,
		f.RelatedEntityType, f.RelatedEntityID, f.AssignedTo, f.AttemptedAt, f.ContactedAt,
		f.Status, f.Notes, f.CreatedAt, f.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create follow-up: %w", err)
	}
	return nil
}

// GetByID returns a follow-up scoped to the organization.
func (r *Repository) GetByID(ctx context.Context, id, organizationID uuid.UUID) (*FollowUp, error) {
	f, err := scanFollowUp(r.pool.QueryRow(ctx, getFollowUpQuery, id, organizationID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperr.NotFound(followUpNotFoundMsg)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get follow-up: %w", err)
	}
	return f, nil
}

// UpdateSchedule replaces the scheduling fields and returns the updated task.
func (r *Repository) UpdateSchedule(ctx context.Context, id, organizationID uuid.UUID, scheduledTime *time.Time, dueDate, updatedAt time.Time) (*FollowUp, error) {
	f, err := scanFollowUp(r.pool.QueryRow(ctx, updateScheduleQuery, id, organizationID, scheduledTime, dueDate, updatedAt))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperr.NotFound(followUpNotFoundMsg)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update follow-up schedule: %w", err)
	}
	return f, nil
}

// SaveCallStatus writes the call status and its derived fields. Concurrent
// writers to the same task overwrite each other.
func (r *Repository) SaveCallStatus(ctx context.Context, f *FollowUp) error {
	tag, err := r.pool.Exec(ctx, saveCallStatusQuery,
		f.ID, f.OrganizationID, f.CallStatus, f.AttemptedAt, f.ContactedAt, f.Status, f.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save follow-up call status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound(followUpNotFoundMsg)
	}
	return nil
}

func scanFollowUp(row pgx.Row) (*FollowUp, error) {
	var f FollowUp
	err := row.Scan(
		&f.ID, &f.OrganizationID, &f.BranchID, &f.Type, &f.CallType, &f.CallStatus, &f.ScheduledTime, &f.DueDate,
		&f.RelatedEntityType, &f.RelatedEntityID, &f.AssignedTo, &f.AttemptedAt, &f.ContactedAt,
		&f.Status, &f.Notes, &f.CreatedAt, &f.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &f, nil
}
