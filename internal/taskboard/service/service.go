// Package service builds the merged call-task board from follow-ups and
// enquiries.
package service

import (
	"context"
	"time"

	"gym_backoffice_backend/internal/taskboard/domain"
	"gym_backoffice_backend/internal/taskboard/repository"
	"gym_backoffice_backend/platform/logger"
	"gym_backoffice_backend/platform/metrics"
	"gym_backoffice_backend/platform/timeutil"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// TaskSource reads the two task collections for a resolved filter.
type TaskSource interface {
	ListFollowUps(ctx context.Context, f domain.Filter) ([]domain.FollowUpRecord, error)
	ListEnquiries(ctx context.Context, f domain.Filter) ([]domain.EnquiryRecord, error)
}

// ContactDirectory resolves the people follow-ups are about.
type ContactDirectory interface {
	GetMembersByIDs(ctx context.Context, organizationID uuid.UUID, ids []uuid.UUID) (map[uuid.UUID]repository.MemberInfo, error)
	GetEnquiriesByIDs(ctx context.Context, organizationID uuid.UUID, ids []uuid.UUID) (map[uuid.UUID]repository.EnquiryInfo, error)
}

// StaffDirectory resolves staff display names. On error it may still return
// the names it did resolve.
type StaffDirectory interface {
	LoadStaffNames(ctx context.Context, organizationID uuid.UUID, ids []uuid.UUID) (map[uuid.UUID]string, error)
}

// PhoneFormatter normalizes phone numbers for display.
type PhoneFormatter interface {
	E164(input string) string
}

// Deps are the collaborators of the taskboard service.
type Deps struct {
	Source   TaskSource
	Contacts ContactDirectory
	Staff    StaffDirectory
	Phones   PhoneFormatter
	Clock    timeutil.Clock
	Location *time.Location
	Metrics  *metrics.Metrics
	Log      *logger.Logger
}

// Service provides the taskboard read operations.
type Service struct {
	source   TaskSource
	contacts ContactDirectory
	staff    StaffDirectory
	phones   PhoneFormatter
	clock    timeutil.Clock
	loc      *time.Location
	metrics  *metrics.Metrics
	log      *logger.Logger
}

// New creates a new taskboard service
func New(deps Deps) *Service {
	loc := deps.Location
	if loc == nil {
		loc = time.UTC
	}
	clock := deps.Clock
	if clock == nil {
		clock = timeutil.NewSystemClock(loc)
	}
	log := deps.Log
	if log == nil {
		log = logger.Nop()
	}
	return &Service{
		source:   deps.Source,
		contacts: deps.Contacts,
		staff:    deps.Staff,
		phones:   deps.Phones,
		clock:    clock,
		loc:      loc,
		metrics:  deps.Metrics,
		log:      log,
	}
}

// ListResult is one page of the board.
type ListResult struct {
	Tasks []domain.UnifiedTask
	Total int
}

// ResolveFilter resolves raw filter values against the current day.
func (s *Service) ResolveFilter(organizationID uuid.UUID, params domain.FilterParams) domain.Filter {
	return domain.ResolveFilter(organizationID, params, s.clock.Now().In(s.loc))
}

// List returns the board for the list view. The tab or explicit status
// narrows the set; sequence numbers are positions in the full sorted set,
// so they stay absolute across pages.
func (s *Service) List(ctx context.Context, organizationID uuid.UUID, params domain.FilterParams, page, pageSize int) (ListResult, error) {
	filter := s.ResolveFilter(organizationID, params)

	board, err := s.board(ctx, filter, filter.ListStatuses(), true)
	s.metrics.ObserveOperation("list", err)
	if err != nil {
		return ListResult{}, err
	}

	return ListResult{
		Tasks: domain.Paginate(board, page, pageSize),
		Total: len(board),
	}, nil
}

// Stats counts the date-scoped board by status. Tab and status filters do
// not apply and names are not resolved.
func (s *Service) Stats(ctx context.Context, organizationID uuid.UUID, params domain.FilterParams) (domain.Stats, error) {
	filter := s.ResolveFilter(organizationID, params)

	board, err := s.board(ctx, filter, nil, false)
	s.metrics.ObserveOperation("stats", err)
	if err != nil {
		return domain.Stats{}, err
	}

	return domain.ComputeStats(board), nil
}

// Export returns the sorted board for export. The tab is ignored; an
// explicit status still narrows the set.
func (s *Service) Export(ctx context.Context, organizationID uuid.UUID, params domain.FilterParams) ([]domain.UnifiedTask, error) {
	filter := s.ResolveFilter(organizationID, params)

	board, err := s.board(ctx, filter, filter.ExportStatuses(), true)
	s.metrics.ObserveOperation("export", err)
	if err != nil {
		return nil, err
	}

	s.metrics.AddExportRows(len(board))
	return board, nil
}

// Now returns the service clock's current time in the reference zone.
func (s *Service) Now() time.Time {
	return s.clock.Now().In(s.loc)
}

func (s *Service) board(ctx context.Context, filter domain.Filter, statuses []domain.CallStatus, resolveNames bool) ([]domain.UnifiedTask, error) {
	followUpRecords, enquiryRecords, err := s.loadSources(ctx, filter)
	if err != nil {
		return nil, err
	}

	s.metrics.ObserveMerged(string(domain.SourceFollowUp), len(followUpRecords))
	s.metrics.ObserveMerged(string(domain.SourceEnquiry), len(enquiryRecords))

	names := emptyNames()
	if resolveNames {
		names = s.resolveNames(ctx, filter.OrganizationID, followUpRecords, enquiryRecords)
	}

	followUps := domain.FilterByStatus(s.adaptFollowUps(followUpRecords, names), statuses)
	enquiries := domain.FilterByStatus(s.adaptEnquiries(enquiryRecords, names), statuses)

	return domain.Merge(followUps, enquiries), nil
}

func (s *Service) loadSources(ctx context.Context, filter domain.Filter) ([]domain.FollowUpRecord, []domain.EnquiryRecord, error) {
	var followUps []domain.FollowUpRecord
	var enquiries []domain.EnquiryRecord

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		records, err := s.source.ListFollowUps(gctx, filter)
		followUps = records
		return err
	})
	if filter.IncludesEnquiries() {
		g.Go(func() error {
			records, err := s.source.ListEnquiries(gctx, filter)
			enquiries = records
			return err
		})
	}
	if err := g.Wait(); err != nil {
		s.log.WithContext(ctx).DatabaseError("taskboard.load", err)
		return nil, nil, err
	}

	return followUps, enquiries, nil
}

// adaptFollowUps is the follow-up adapter: it joins each record with its
// resolved contact and assignee.
func (s *Service) adaptFollowUps(records []domain.FollowUpRecord, names nameIndex) []domain.UnifiedTask {
	tasks := make([]domain.UnifiedTask, 0, len(records))
	for _, rec := range records {
		contact := names.contactFor(rec)
		contact.Phone = s.formatPhone(contact.Phone)
		tasks = append(tasks, domain.FromFollowUp(rec, contact, names.staffFor(rec.AssignedTo), s.loc))
	}
	return tasks
}

// adaptEnquiries is the enquiry adapter. Name and phone come from the
// enquiry itself.
func (s *Service) adaptEnquiries(records []domain.EnquiryRecord, names nameIndex) []domain.UnifiedTask {
	tasks := make([]domain.UnifiedTask, 0, len(records))
	for _, rec := range records {
		rec.Phone = s.formatPhone(rec.Phone)
		tasks = append(tasks, domain.FromEnquiry(rec, names.staffFor(rec.AssignedStaffID), s.loc))
	}
	return tasks
}

func (s *Service) formatPhone(raw string) string {
	if s.phones == nil {
		return raw
	}
	return s.phones.E164(raw)
}
