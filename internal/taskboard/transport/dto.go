package transport

import (
	"time"

	"gym_backoffice_backend/internal/taskboard/domain"

	"github.com/google/uuid"
)

// ListCallsRequest is the query parameters for the call-task board.
// Filter values that do not parse fall back to their defaults.
type ListCallsRequest struct {
	FromDate   string `form:"fromDate"`
	ToDate     string `form:"toDate"`
	DateFilter string `form:"dateFilter"`
	StaffID    string `form:"staffId"`
	CallType   string `form:"callType"`
	CallStatus string `form:"callStatus"`
	Tab        string `form:"tab"`
	Page       int    `form:"page" validate:"omitempty,min=1"`
	PageSize   int    `form:"pageSize" validate:"omitempty,min=1,max=500"`
}

// Params returns the raw filter values.
func (r ListCallsRequest) Params() domain.FilterParams {
	return domain.FilterParams{
		FromDate:   r.FromDate,
		ToDate:     r.ToDate,
		DateFilter: r.DateFilter,
		StaffID:    r.StaffID,
		CallType:   r.CallType,
		CallStatus: r.CallStatus,
		Tab:        r.Tab,
	}
}

// CallTaskResponse is one row of the board.
type CallTaskResponse struct {
	ID                     domain.TaskRef `json:"id"`
	Sequence               int            `json:"sequence"`
	IsEnquiry              bool           `json:"isEnquiry"`
	CallType               string         `json:"callType"`
	MemberName             string         `json:"memberName"`
	MemberMobile           string         `json:"memberMobile"`
	CallStatus             string         `json:"callStatus"`
	StaffName              string         `json:"staffName"`
	ScheduledTime          *time.Time     `json:"scheduledTime,omitempty"`
	DueDate                *time.Time     `json:"dueDate,omitempty"`
	EffectiveScheduledTime *time.Time     `json:"effectiveScheduledTime,omitempty"`
	DateLabel              string         `json:"dateLabel"`
	TimeLabel              string         `json:"timeLabel"`
	EntityType             string         `json:"entityType,omitempty"`
	EntityID               *uuid.UUID     `json:"entityId,omitempty"`
}

// ListCallsResponse is the list endpoint payload. Total counts the whole
// filtered board, not just the returned page.
type ListCallsResponse struct {
	FollowUps []CallTaskResponse `json:"followUps"`
	Total     int                `json:"total"`
}

// StatusCountResponse is one status's share.
type StatusCountResponse struct {
	Count   int `json:"count"`
	Percent int `json:"percent"`
}

// StatsBody holds every canonical status, including empty ones.
type StatsBody struct {
	Scheduled    StatusCountResponse `json:"scheduled"`
	Attempted    StatusCountResponse `json:"attempted"`
	Contacted    StatusCountResponse `json:"contacted"`
	NotContacted StatusCountResponse `json:"notContacted"`
	Missed       StatusCountResponse `json:"missed"`
	Total        int                 `json:"total"`
}

// StatsResponse is the stats endpoint payload.
type StatsResponse struct {
	Stats StatsBody `json:"stats"`
}

// ToCallTaskResponse renders a board task. Unresolved names and phones are
// shown as N/A, matching the export.
func ToCallTaskResponse(task domain.UnifiedTask) CallTaskResponse {
	return CallTaskResponse{
		ID:                     task.ID,
		Sequence:               task.Sequence,
		IsEnquiry:              task.IsEnquiry,
		CallType:               string(task.CallType),
		MemberName:             domain.Display(task.MemberName),
		MemberMobile:           domain.Display(task.MemberMobile),
		CallStatus:             string(task.CallStatus),
		StaffName:              domain.Display(task.StaffName),
		ScheduledTime:          task.ScheduledTime,
		DueDate:                task.DueDate,
		EffectiveScheduledTime: task.EffectiveScheduledTime,
		DateLabel:              task.DateLabel,
		TimeLabel:              task.TimeLabel,
		EntityType:             string(task.EntityType),
		EntityID:               task.EntityID,
	}
}

// ToListCallsResponse renders a page of the board.
func ToListCallsResponse(tasks []domain.UnifiedTask, total int) ListCallsResponse {
	items := make([]CallTaskResponse, 0, len(tasks))
	for _, task := range tasks {
		items = append(items, ToCallTaskResponse(task))
	}
	return ListCallsResponse{FollowUps: items, Total: total}
}

// ToStatsResponse renders board stats.
func ToStatsResponse(stats domain.Stats) StatsResponse {
	count := func(c domain.StatusCount) StatusCountResponse {
		return StatusCountResponse{Count: c.Count, Percent: c.Percent}
	}
	return StatsResponse{Stats: StatsBody{
		Scheduled:    count(stats.Scheduled),
		Attempted:    count(stats.Attempted),
		Contacted:    count(stats.Contacted),
		NotContacted: count(stats.NotContacted),
		Missed:       count(stats.Missed),
		Total:        stats.Total,
	}}
}
