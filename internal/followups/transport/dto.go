package transport

import (
	"time"

	"github.com/google/uuid"
)

// RelatedTo references the member, enquiry or staff member a call is about.
type RelatedTo struct {
	EntityType string    `json:"entityType" validate:"required,oneof=member enquiry staff"`
	EntityID   uuid.UUID `json:"entityId" validate:"required"`
}

// CreateFollowUpRequest is the request body for creating a follow-up task
type CreateFollowUpRequest struct {
	BranchID      *uuid.UUID `json:"branchId,omitempty"`
	Type          string     `json:"type" validate:"required,oneof=follow-up appointment service-expiry upgrade client-birthday staff-birthday"`
	CallType      string     `json:"callType" validate:"required,oneof=renewal-call assessment-call follow-up-call enquiry-call other"`
	ScheduledTime *time.Time `json:"scheduledTime,omitempty"`
	DueDate       time.Time  `json:"dueDate" validate:"required"`
	RelatedTo     *RelatedTo `json:"relatedTo,omitempty"`
	AssignedTo    *uuid.UUID `json:"assignedTo,omitempty"`
	Notes         string     `json:"notes,omitempty" validate:"max=2000"`
}

// RescheduleRequest replaces a follow-up's scheduling fields. A null or
// missing scheduledTime clears it.
type RescheduleRequest struct {
	ScheduledTime *time.Time `json:"scheduledTime"`
	DueDate       time.Time  `json:"dueDate" validate:"required"`
}

// UpdateCallStatusRequest is the request body for a call status transition
type UpdateCallStatusRequest struct {
	CallStatus string `json:"callStatus" validate:"required,oneof=scheduled attempted contacted not-contacted missed"`
}

// FollowUpResponse is the API representation of a follow-up task
type FollowUpResponse struct {
	ID            uuid.UUID  `json:"id"`
	BranchID      *uuid.UUID `json:"branchId,omitempty"`
	Type          string     `json:"type"`
	CallType      string     `json:"callType"`
	CallStatus    string     `json:"callStatus"`
	ScheduledTime *time.Time `json:"scheduledTime,omitempty"`
	DueDate       time.Time  `json:"dueDate"`
	RelatedTo     *RelatedTo `json:"relatedTo,omitempty"`
	AssignedTo    *uuid.UUID `json:"assignedTo,omitempty"`
	AttemptedAt   *time.Time `json:"attemptedAt,omitempty"`
	ContactedAt   *time.Time `json:"contactedAt,omitempty"`
	Status        string     `json:"status"`
	Notes         string     `json:"notes"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}
