package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Tab is the coarse status grouping used by the list view.
type Tab string

const (
	TabUpcoming  Tab = "upcoming"
	TabAttempted Tab = "attempted"
)

var tabStatuses = map[Tab][]CallStatus{
	TabUpcoming:  {CallStatusScheduled, CallStatusMissed, CallStatusNotContacted},
	TabAttempted: {CallStatusAttempted, CallStatusContacted},
}

// FilterParams are the raw filter values a caller supplied.
type FilterParams struct {
	FromDate   string
	ToDate     string
	DateFilter string
	StaffID    string
	CallType   string
	CallStatus string
	Tab        string
}

// Filter is a resolved board query. Empty CallType and CallStatus mean "all".
type Filter struct {
	OrganizationID uuid.UUID
	Range          DateRange
	StaffID        *uuid.UUID
	CallType       CallType
	CallStatus     CallStatus
	Tab            Tab
}

// ResolveFilter turns raw parameters into a Filter. Values that do not
// parse fall back to their defaults instead of failing the request.
func ResolveFilter(organizationID uuid.UUID, params FilterParams, now time.Time) Filter {
	filter := Filter{
		OrganizationID: organizationID,
		Range:          ResolveDateRange(params.FromDate, params.ToDate, params.DateFilter, now),
		Tab:            TabUpcoming,
	}

	if staff := strings.TrimSpace(params.StaffID); staff != "" && !strings.EqualFold(staff, "all") {
		if id, err := uuid.Parse(staff); err == nil {
			filter.StaffID = &id
		}
	}
	if callType, ok := ParseCallType(params.CallType); ok {
		filter.CallType = callType
	}
	if status, ok := ParseCallStatus(params.CallStatus); ok {
		filter.CallStatus = status
	}
	if tab := Tab(strings.ToLower(strings.TrimSpace(params.Tab))); tab == TabAttempted {
		filter.Tab = tab
	}

	return filter
}

// IncludesEnquiries reports whether enquiry-derived tasks can match the
// call type filter. Enquiry tasks are always enquiry calls.
func (f Filter) IncludesEnquiries() bool {
	return f.CallType == "" || f.CallType == CallTypeEnquiry
}

// ListStatuses is the status set for the list view: the explicit status
// when given, otherwise the tab's group.
func (f Filter) ListStatuses() []CallStatus {
	if f.CallStatus != "" {
		return []CallStatus{f.CallStatus}
	}
	if statuses, ok := tabStatuses[f.Tab]; ok {
		return statuses
	}
	return tabStatuses[TabUpcoming]
}

// ExportStatuses is the status set for exports. The tab is ignored; nil
// means every status.
func (f Filter) ExportStatuses() []CallStatus {
	if f.CallStatus != "" {
		return []CallStatus{f.CallStatus}
	}
	return nil
}

// FilterByStatus keeps tasks whose status is in statuses. A nil set keeps
// everything.
func FilterByStatus(tasks []UnifiedTask, statuses []CallStatus) []UnifiedTask {
	if statuses == nil {
		return tasks
	}
	allowed := make(map[CallStatus]struct{}, len(statuses))
	for _, s := range statuses {
		allowed[s] = struct{}{}
	}
	out := make([]UnifiedTask, 0, len(tasks))
	for _, task := range tasks {
		if _, ok := allowed[task.CallStatus]; ok {
			out = append(out, task)
		}
	}
	return out
}
