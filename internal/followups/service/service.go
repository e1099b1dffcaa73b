package service

import (
	"context"
	"time"

	"gym_backoffice_backend/internal/followups/repository"
	"gym_backoffice_backend/internal/followups/transport"
	"gym_backoffice_backend/internal/taskboard/domain"
	"gym_backoffice_backend/platform/apperr"
	"gym_backoffice_backend/platform/logger"
	"gym_backoffice_backend/platform/sanitize"
	"gym_backoffice_backend/platform/timeutil"

	"github.com/google/uuid"
)

// Repository is the storage the follow-up service needs.
type Repository interface {
	Create(ctx context.Context, f *repository.FollowUp) error
	GetByID(ctx context.Context, id, organizationID uuid.UUID) (*repository.FollowUp, error)
	UpdateSchedule(ctx context.Context, id, organizationID uuid.UUID, scheduledTime *time.Time, dueDate, updatedAt time.Time) (*repository.FollowUp, error)
	SaveCallStatus(ctx context.Context, f *repository.FollowUp) error
}

// Service provides business logic for follow-up tasks
type Service struct {
	repo  Repository
	clock timeutil.Clock
	log   *logger.Logger
}

// New creates a new follow-ups service
func New(repo Repository, clock timeutil.Clock, log *logger.Logger) *Service {
	if clock == nil {
		clock = timeutil.NewSystemClock(time.UTC)
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Service{repo: repo, clock: clock, log: log}
}

// Create stores a new follow-up. Every task starts scheduled and pending.
func (s *Service) Create(ctx context.Context, tenantID uuid.UUID, req transport.CreateFollowUpRequest) (*transport.FollowUpResponse, error) {
	followUpType, ok := domain.ParseFollowUpType(req.Type)
	if !ok {
		return nil, apperr.Validation("unknown follow-up type: " + req.Type)
	}
	callType, ok := domain.ParseCallType(req.CallType)
	if !ok {
		return nil, apperr.Validation("unknown call type: " + req.CallType)
	}

	now := s.clock.Now()
	callStatus := string(domain.CallStatusScheduled)

	f := &repository.FollowUp{
		ID:             uuid.New(),
		OrganizationID: tenantID,
		BranchID:       req.BranchID,
		Type:           string(followUpType),
		CallType:       string(callType),
		CallStatus:     &callStatus,
		ScheduledTime:  req.ScheduledTime,
		DueDate:        req.DueDate,
		AssignedTo:     req.AssignedTo,
		Status:         string(domain.TaskStatusPending),
		Notes:          sanitize.Text(req.Notes),
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if req.RelatedTo != nil {
		entityType := req.RelatedTo.EntityType
		entityID := req.RelatedTo.EntityID
		f.RelatedEntityType = &entityType
		f.RelatedEntityID = &entityID
	}

	if err := s.repo.Create(ctx, f); err != nil {
		s.log.DatabaseError("create_follow_up", err)
		return nil, err
	}

	resp := ToResponse(f)
	return &resp, nil
}

// GetByID returns one follow-up of the organization.
func (s *Service) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*transport.FollowUpResponse, error) {
	f, err := s.repo.GetByID(ctx, id, tenantID)
	if err != nil {
		return nil, err
	}
	resp := ToResponse(f)
	return &resp, nil
}

// Reschedule edits the scheduling fields directly.
func (s *Service) Reschedule(ctx context.Context, tenantID, id uuid.UUID, req transport.RescheduleRequest) (*transport.FollowUpResponse, error) {
	if req.DueDate.IsZero() {
		return nil, apperr.Validation("dueDate is required")
	}

	f, err := s.repo.UpdateSchedule(ctx, id, tenantID, req.ScheduledTime, req.DueDate, s.clock.Now())
	if err != nil {
		return nil, err
	}
	resp := ToResponse(f)
	return &resp, nil
}

// UpdateCallStatus transitions a follow-up's call status. Concurrent
// transitions of the same task are last-write-wins.
func (s *Service) UpdateCallStatus(ctx context.Context, tenantID, id uuid.UUID, value string) (*transport.FollowUpResponse, error) {
	status, ok := domain.ParseCallStatus(value)
	if !ok {
		return nil, apperr.Validation("invalid call status")
	}

	f, err := s.repo.GetByID(ctx, id, tenantID)
	if err != nil {
		return nil, err
	}

	ApplyCallStatus(f, status, s.clock.Now())

	if err := s.repo.SaveCallStatus(ctx, f); err != nil {
		return nil, err
	}

	resp := ToResponse(f)
	return &resp, nil
}

// ToResponse maps a stored follow-up to its API form. A missing call
// status reads as scheduled.
func ToResponse(f *repository.FollowUp) transport.FollowUpResponse {
	resp := transport.FollowUpResponse{
		ID:            f.ID,
		BranchID:      f.BranchID,
		Type:          f.Type,
		CallType:      f.CallType,
		CallStatus:    string(domain.NormalizeFollowUpStatus(f.CallStatus)),
		ScheduledTime: f.ScheduledTime,
		DueDate:       f.DueDate,
		AssignedTo:    f.AssignedTo,
		AttemptedAt:   f.AttemptedAt,
		ContactedAt:   f.ContactedAt,
		Status:        f.Status,
		Notes:         f.Notes,
		CreatedAt:     f.CreatedAt,
		UpdatedAt:     f.UpdatedAt,
	}
	if f.RelatedEntityType != nil && f.RelatedEntityID != nil {
		resp.RelatedTo = &transport.RelatedTo{EntityType: *f.RelatedEntityType, EntityID: *f.RelatedEntityID}
	}
	return resp
}
