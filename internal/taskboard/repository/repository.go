package repository

import (
	"context"
	"fmt"

	"gym_backoffice_backend/internal/taskboard/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// MemberInfo is the member data needed to label a call.
type MemberInfo struct {
	ID        uuid.UUID `db:"id"`
	FirstName string    `db:"first_name"`
	LastName  string    `db:"last_name"`
	Phone     string    `db:"phone"`
}

// EnquiryInfo is the enquiry data needed to label a follow-up about an enquiry.
type EnquiryInfo struct {
	ID    uuid.UUID `db:"id"`
	Name  string    `db:"name"`
	Phone string    `db:"phone"`
}

// StaffInfo is a staff member's display name.
type StaffInfo struct {
	ID        uuid.UUID `db:"id"`
	FirstName string    `db:"first_name"`
	LastName  string    `db:"last_name"`
}

// Repository reads the two task sources and their related records. It never
// writes.
type Repository struct {
	pool *pgxpool.Pool
}

// New creates a new taskboard repository
func New(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// Follow-ups match on scheduled_time, or on due_date when nothing is scheduled.
const listFollowUpsBaseQuery = `
	SELECT id, call_type, call_status, scheduled_time, due_date,
		related_entity_type, related_entity_id, assigned_to
	FROM follow_ups
	WHERE organization_id = $1
		AND (
			scheduled_time BETWEEN $2 AND $3
			OR (scheduled_time IS NULL AND due_date BETWEEN $2 AND $3)
		)`

const listEnquiriesBaseQuery = `
	SELECT id, name, phone, assigned_staff_id, follow_up_date, last_call_status, is_archived
	FROM enquiries
	WHERE organization_id = $1
		AND NOT is_archived
		AND follow_up_date IS NOT NULL
		AND follow_up_date BETWEEN $2 AND $3`

const membersByIDsQuery = `
	SELECT id, first_name, last_name, phone
	FROM members
	WHERE organization_id = $1 AND id = ANY($2::uuid[])`

const enquiriesByIDsQuery = `
	SELECT id, name, phone
	FROM enquiries
	WHERE organization_id = $1 AND id = ANY($2::uuid[])`

const staffByIDsQuery = `
	SELECT id, first_name, last_name
	FROM staff
	WHERE organization_id = $1 AND id = ANY($2::uuid[])`

// ListFollowUps returns the organization's follow-ups inside the filter's
// date range, optionally narrowed by assignee and call type.
func (r *Repository) ListFollowUps(ctx context.Context, f domain.Filter) ([]domain.FollowUpRecord, error) {
	baseQuery := listFollowUpsBaseQuery
	args := []interface{}{f.OrganizationID, f.Range.Start, f.Range.End}
	argIndex := 4

	addFilter(&baseQuery, &args, &argIndex, f.StaffID != nil, " AND assigned_to = $%d", derefUUID(f.StaffID))
	addFilter(&baseQuery, &args, &argIndex, f.CallType != "", " AND call_type = $%d", string(f.CallType))
	baseQuery += " ORDER BY created_at, id"

	rows, err := r.pool.Query(ctx, baseQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list follow-ups: %w", err)
	}
	defer rows.Close()

	records := make([]domain.FollowUpRecord, 0)
	for rows.Next() {
		var rec domain.FollowUpRecord
		var callType string
		if err := rows.Scan(
			&rec.ID, &callType, &rec.CallStatus, &rec.ScheduledTime, &rec.DueDate,
			&rec.RelatedEntityType, &rec.RelatedEntityID, &rec.AssignedTo,
		); err != nil {
			return nil, fmt.Errorf("failed to scan follow-up: %w", err)
		}
		rec.CallType = domain.CallType(callType)
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate follow-ups: %w", err)
	}

	return records, nil
}

// ListEnquiries returns the organization's open enquiries with a next-contact
// date inside the filter's range, optionally narrowed by assignee.
func (r *Repository) ListEnquiries(ctx context.Context, f domain.Filter) ([]domain.EnquiryRecord, error) {
	baseQuery := listEnquiriesBaseQuery
	args := []interface{}{f.OrganizationID, f.Range.Start, f.Range.End}
	argIndex := 4

	addFilter(&baseQuery, &args, &argIndex, f.StaffID != nil, " AND assigned_staff_id = $%d", derefUUID(f.StaffID))
	baseQuery += " ORDER BY created_at, id"

	rows, err := r.pool.Query(ctx, baseQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list enquiries: %w", err)
	}
	defer rows.Close()

	records := make([]domain.EnquiryRecord, 0)
	for rows.Next() {
		var rec domain.EnquiryRecord
		if err := rows.Scan(
			&rec.ID, &rec.Name, &rec.Phone, &rec.AssignedStaffID, &rec.FollowUpDate,
			&rec.LastCallStatus, &rec.IsArchived,
		); err != nil {
			return nil, fmt.Errorf("failed to scan enquiry: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate enquiries: %w", err)
	}

	return records, nil
}

// GetMembersByIDs returns members keyed by id. Missing ids are simply absent.
func (r *Repository) GetMembersByIDs(ctx context.Context, organizationID uuid.UUID, ids []uuid.UUID) (map[uuid.UUID]MemberInfo, error) {
	result := make(map[uuid.UUID]MemberInfo, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	rows, err := r.pool.Query(ctx, membersByIDsQuery, organizationID, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to load members: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var info MemberInfo
		if err := rows.Scan(&info.ID, &info.FirstName, &info.LastName, &info.Phone); err != nil {
			return nil, fmt.Errorf("failed to scan member: %w", err)
		}
		result[info.ID] = info
	}
	return result, rows.Err()
}

// GetEnquiriesByIDs returns enquiry contacts keyed by id.
func (r *Repository) GetEnquiriesByIDs(ctx context.Context, organizationID uuid.UUID, ids []uuid.UUID) (map[uuid.UUID]EnquiryInfo, error) {
	result := make(map[uuid.UUID]EnquiryInfo, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	rows, err := r.pool.Query(ctx, enquiriesByIDsQuery, organizationID, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to load enquiries: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var info EnquiryInfo
		if err := rows.Scan(&info.ID, &info.Name, &info.Phone); err != nil {
			return nil, fmt.Errorf("failed to scan enquiry contact: %w", err)
		}
		result[info.ID] = info
	}
	return result, rows.Err()
}

// GetStaffByIDs returns staff names keyed by id.
func (r *Repository) GetStaffByIDs(ctx context.Context, organizationID uuid.UUID, ids []uuid.UUID) (map[uuid.UUID]StaffInfo, error) {
	result := make(map[uuid.UUID]StaffInfo, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	rows, err := r.pool.Query(ctx, staffByIDsQuery, organizationID, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to load staff: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var info StaffInfo
		if err := rows.Scan(&info.ID, &info.FirstName, &info.LastName); err != nil {
			return nil, fmt.Errorf("failed to scan staff: %w", err)
		}
		result[info.ID] = info
	}
	return result, rows.Err()
}

func addFilter(baseQuery *string, args *[]interface{}, argIndex *int, apply bool, clause string, value interface{}) {
	if !apply {
		return
	}
	*baseQuery += fmt.Sprintf(clause, *argIndex)
	*args = append(*args, value)
	*argIndex++
}

func derefUUID(value *uuid.UUID) uuid.UUID {
	if value == nil {
		return uuid.UUID{}
	}
	return *value
}

// LoadStaffNames returns "first last" display names keyed by staff id.
func (r *Repository) LoadStaffNames(ctx context.Context, organizationID uuid.UUID, ids []uuid.UUID) (map[uuid.UUID]string, error) {
	staff, err := r.GetStaffByIDs(ctx, organizationID, ids)
	if err != nil {
		return nil, err
	}
	names := make(map[uuid.UUID]string, len(staff))
	for id, info := range staff {
		names[id] = domain.FullName(info.FirstName, info.LastName)
	}
	return names, nil
}
