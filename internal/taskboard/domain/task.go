package domain

import (
	"time"

	"github.com/google/uuid"
)

// Source identifies which collection a board task was projected from.
type Source string

const (
	SourceFollowUp Source = "follow-up"
	SourceEnquiry  Source = "enquiry"
)

// TaskRef identifies a board task. Follow-ups and enquiries may share
// native ids, so the source is part of the identity.
type TaskRef struct {
	Source   Source    `json:"source"`
	NativeID uuid.UUID `json:"nativeId"`
}

func (r TaskRef) String() string {
	return string(r.Source) + ":" + r.NativeID.String()
}

// Display layouts for board labels.
const (
	DateLabelLayout = "02/01/2006"
	TimeLabelLayout = "03:04 PM"
)

// FollowUpRecord is the part of a stored follow-up the board reads.
type FollowUpRecord struct {
	ID                uuid.UUID
	CallType          CallType
	CallStatus        *string
	ScheduledTime     *time.Time
	DueDate           time.Time
	RelatedEntityType *string
	RelatedEntityID   *uuid.UUID
	AssignedTo        *uuid.UUID
}

// EnquiryRecord is the part of an enquiry the board reads.
type EnquiryRecord struct {
	ID              uuid.UUID
	Name            string
	Phone           string
	AssignedStaffID *uuid.UUID
	FollowUpDate    *time.Time
	LastCallStatus  *string
	IsArchived      bool
}

// Contact is the resolved person a call is about.
type Contact struct {
	Name  string
	Phone string
}

// UnifiedTask is the read-time projection shown on the board.
type UnifiedTask struct {
	ID                     TaskRef
	Sequence               int
	IsEnquiry              bool
	CallType               CallType
	MemberName             string
	MemberMobile           string
	CallStatus             CallStatus
	StaffName              string
	ScheduledTime          *time.Time
	DueDate                *time.Time
	EffectiveScheduledTime *time.Time
	DateLabel              string
	TimeLabel              string
	EntityType             EntityType
	EntityID               *uuid.UUID
}

// FollowUpEffectiveTime prefers the scheduled time and falls back to the
// due date.
func FollowUpEffectiveTime(rec FollowUpRecord, loc *time.Location) (time.Time, bool) {
	if t, ok := ParseInstant(rec.ScheduledTime, loc); ok {
		return t, true
	}
	return ParseInstant(rec.DueDate, loc)
}

// EnquiryEffectiveTime is the enquiry's next-contact date, if any.
func EnquiryEffectiveTime(rec EnquiryRecord, loc *time.Location) (time.Time, bool) {
	return ParseInstant(rec.FollowUpDate, loc)
}

// FromFollowUp projects a follow-up onto the board.
func FromFollowUp(rec FollowUpRecord, contact Contact, staffName string, loc *time.Location) UnifiedTask {
	task := UnifiedTask{
		ID:            TaskRef{Source: SourceFollowUp, NativeID: rec.ID},
		CallType:      rec.CallType,
		MemberName:    contact.Name,
		MemberMobile:  contact.Phone,
		CallStatus:    NormalizeFollowUpStatus(rec.CallStatus),
		StaffName:     staffName,
		ScheduledTime: rec.ScheduledTime,
		EntityID:      rec.RelatedEntityID,
	}
	if !rec.DueDate.IsZero() {
		due := rec.DueDate
		task.DueDate = &due
	}
	if rec.RelatedEntityType != nil {
		task.EntityType = EntityType(*rec.RelatedEntityType)
	}
	at, _ := FollowUpEffectiveTime(rec, loc)
	task.setEffectiveTime(at, loc)
	return task
}

// FromEnquiry projects an enquiry onto the board. Enquiry tasks are always
// enquiry calls and carry their own name and phone.
func FromEnquiry(rec EnquiryRecord, staffName string, loc *time.Location) UnifiedTask {
	id := rec.ID
	task := UnifiedTask{
		ID:           TaskRef{Source: SourceEnquiry, NativeID: rec.ID},
		IsEnquiry:    true,
		CallType:     CallTypeEnquiry,
		MemberName:   rec.Name,
		MemberMobile: rec.Phone,
		CallStatus:   NormalizeEnquiryStatus(rec.LastCallStatus),
		StaffName:    staffName,
		EntityType:   EntityEnquiry,
		EntityID:     &id,
	}
	at, _ := EnquiryEffectiveTime(rec, loc)
	task.setEffectiveTime(at, loc)
	return task
}

func (t *UnifiedTask) setEffectiveTime(at time.Time, loc *time.Location) {
	if at.IsZero() {
		t.EffectiveScheduledTime = nil
		t.DateLabel = NotAvailable
		t.TimeLabel = NotAvailable
		return
	}
	if loc == nil {
		loc = time.UTC
	}
	local := at.In(loc)
	t.EffectiveScheduledTime = &local
	t.DateLabel = local.Format(DateLabelLayout)
	t.TimeLabel = local.Format(TimeLabelLayout)
}
