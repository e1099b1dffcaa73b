package service

import (
	"time"

	"gym_backoffice_backend/internal/followups/repository"
	"gym_backoffice_backend/internal/taskboard/domain"
)

// ApplyCallStatus sets the call status on f and derives its side effects.
// Repeating the same status refreshes the timestamp to now.
func ApplyCallStatus(f *repository.FollowUp, status domain.CallStatus, now time.Time) {
	value := string(status)
	f.CallStatus = &value

	switch status {
	case domain.CallStatusAttempted:
		f.AttemptedAt = &now
	case domain.CallStatusContacted:
		f.ContactedAt = &now
		f.Status = string(domain.TaskStatusCompleted)
	}

	f.UpdatedAt = now
}
