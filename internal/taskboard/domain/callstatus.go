// Package domain holds the pure call-task model: canonical statuses, the
// adapters that project follow-ups and enquiries into one task shape, and
// the ordering, stats and export rules applied to the merged board.
package domain

import "strings"

// CallStatus is the canonical call status shared by every task on the board.
type CallStatus string

const (
	CallStatusScheduled    CallStatus = "scheduled"
	CallStatusAttempted    CallStatus = "attempted"
	CallStatusContacted    CallStatus = "contacted"
	CallStatusNotContacted CallStatus = "not-contacted"
	CallStatusMissed       CallStatus = "missed"
)

// CanonicalStatuses lists every canonical status in display order.
var CanonicalStatuses = []CallStatus{
	CallStatusScheduled,
	CallStatusAttempted,
	CallStatusContacted,
	CallStatusNotContacted,
	CallStatusMissed,
}

// ParseCallStatus reports whether value is one of the canonical statuses.
func ParseCallStatus(value string) (CallStatus, bool) {
	status := CallStatus(strings.TrimSpace(value))
	for _, candidate := range CanonicalStatuses {
		if candidate == status {
			return status, true
		}
	}
	return "", false
}

// NormalizeFollowUpStatus passes a follow-up's stored status through,
// defaulting to scheduled when it is absent or not canonical.
func NormalizeFollowUpStatus(native *string) CallStatus {
	if native == nil {
		return CallStatusScheduled
	}
	if status, ok := ParseCallStatus(*native); ok {
		return status
	}
	return CallStatusScheduled
}

// EnquiryStatusTable maps the enquiry subsystem's call outcomes onto the
// canonical set. Anything missing from the table is scheduled.
var EnquiryStatusTable = map[string]CallStatus{
	"answered":        CallStatusContacted,
	"not-called":      CallStatusScheduled,
	"missed":          CallStatusMissed,
	"no-answer":       CallStatusMissed,
	"busy":            CallStatusAttempted,
	"enquiry":         CallStatusNotContacted,
	"future-prospect": CallStatusNotContacted,
	"not-interested":  CallStatusNotContacted,
}

// NormalizeEnquiryStatus translates an enquiry's last call status.
func NormalizeEnquiryStatus(native *string) CallStatus {
	if native == nil {
		return CallStatusScheduled
	}
	if status, ok := EnquiryStatusTable[strings.TrimSpace(*native)]; ok {
		return status
	}
	return CallStatusScheduled
}
