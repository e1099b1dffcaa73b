package domain

import "strings"

// CallType classifies what a call is about.
type CallType string

const (
	CallTypeRenewal    CallType = "renewal-call"
	CallTypeAssessment CallType = "assessment-call"
	CallTypeFollowUp   CallType = "follow-up-call"
	CallTypeEnquiry    CallType = "enquiry-call"
	CallTypeOther      CallType = "other"
)

// CallTypes lists the accepted call types.
var CallTypes = []CallType{CallTypeRenewal, CallTypeAssessment, CallTypeFollowUp, CallTypeEnquiry, CallTypeOther}

// ParseCallType reports whether value is a known call type.
func ParseCallType(value string) (CallType, bool) {
	callType := CallType(strings.TrimSpace(value))
	for _, candidate := range CallTypes {
		if candidate == callType {
			return callType, true
		}
	}
	return "", false
}

// FollowUpType is the trigger that produced a follow-up task.
type FollowUpType string

const (
	FollowUpTypeFollowUp       FollowUpType = "follow-up"
	FollowUpTypeAppointment    FollowUpType = "appointment"
	FollowUpTypeServiceExpiry  FollowUpType = "service-expiry"
	FollowUpTypeUpgrade        FollowUpType = "upgrade"
	FollowUpTypeClientBirthday FollowUpType = "client-birthday"
	FollowUpTypeStaffBirthday  FollowUpType = "staff-birthday"
)

// FollowUpTypes lists the accepted follow-up types.
var FollowUpTypes = []FollowUpType{
	FollowUpTypeFollowUp, FollowUpTypeAppointment, FollowUpTypeServiceExpiry,
	FollowUpTypeUpgrade, FollowUpTypeClientBirthday, FollowUpTypeStaffBirthday,
}

// ParseFollowUpType reports whether value is a known follow-up type.
func ParseFollowUpType(value string) (FollowUpType, bool) {
	followUpType := FollowUpType(strings.TrimSpace(value))
	for _, candidate := range FollowUpTypes {
		if candidate == followUpType {
			return followUpType, true
		}
	}
	return "", false
}

// TaskStatus is a follow-up's lifecycle status, independent of its call status.
type TaskStatus string

const (
	TaskStatusPending   TaskStatus = "pending"
	TaskStatusCompleted TaskStatus = "completed"
	TaskStatusCancelled TaskStatus = "cancelled"
)

// EntityType names what a follow-up is about.
type EntityType string

const (
	EntityMember  EntityType = "member"
	EntityEnquiry EntityType = "enquiry"
	EntityStaff   EntityType = "staff"
)

// NotAvailable is rendered for any value that could not be resolved.
const NotAvailable = "N/A"

// Unassigned is the staff name shown for tasks without an assignee.
const Unassigned = "Unassigned"

// Display returns value, or NotAvailable when it is blank.
func Display(value string) string {
	if strings.TrimSpace(value) == "" {
		return NotAvailable
	}
	return value
}

// FullName joins first and last name, skipping blanks.
func FullName(first, last string) string {
	return strings.TrimSpace(strings.TrimSpace(first) + " " + strings.TrimSpace(last))
}
