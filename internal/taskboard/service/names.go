package service

import (
	"context"

	"gym_backoffice_backend/internal/taskboard/domain"
	"gym_backoffice_backend/platform/apperr"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

const (
	entityMember  = "member"
	entityEnquiry = "enquiry"
	entityStaff   = "staff"
)

type nameIndex struct {
	members  map[uuid.UUID]domain.Contact
	contacts map[uuid.UUID]domain.Contact
	staff    map[uuid.UUID]string
}

func emptyNames() nameIndex {
	return nameIndex{
		members:  map[uuid.UUID]domain.Contact{},
		contacts: map[uuid.UUID]domain.Contact{},
		staff:    map[uuid.UUID]string{},
	}
}

// contactFor follows a follow-up's related reference. Unknown references
// yield an empty contact.
func (n nameIndex) contactFor(rec domain.FollowUpRecord) domain.Contact {
	if rec.RelatedEntityType == nil || rec.RelatedEntityID == nil {
		return domain.Contact{}
	}
	id := *rec.RelatedEntityID
	switch domain.EntityType(*rec.RelatedEntityType) {
	case domain.EntityMember:
		return n.members[id]
	case domain.EntityEnquiry:
		return n.contacts[id]
	case domain.EntityStaff:
		return domain.Contact{Name: n.staff[id]}
	default:
		return domain.Contact{}
	}
}

// staffFor returns the assignee's name, Unassigned when there is none, or
// an empty string when names were not resolved or the lookup missed.
func (n nameIndex) staffFor(assignee *uuid.UUID) string {
	if assignee == nil {
		return domain.Unassigned
	}
	return n.staff[*assignee]
}

// resolveNames batches one lookup per entity kind and runs them in
// parallel. A failed lookup is logged and leaves its fields empty.
func (s *Service) resolveNames(ctx context.Context, organizationID uuid.UUID, followUps []domain.FollowUpRecord, enquiries []domain.EnquiryRecord) nameIndex {
	memberIDs := newIDSet()
	enquiryIDs := newIDSet()
	staffIDs := newIDSet()

	for _, rec := range followUps {
		staffIDs.add(rec.AssignedTo)
		if rec.RelatedEntityType == nil {
			continue
		}
		switch domain.EntityType(*rec.RelatedEntityType) {
		case domain.EntityMember:
			memberIDs.add(rec.RelatedEntityID)
		case domain.EntityEnquiry:
			enquiryIDs.add(rec.RelatedEntityID)
		case domain.EntityStaff:
			staffIDs.add(rec.RelatedEntityID)
		}
	}
	for _, rec := range enquiries {
		staffIDs.add(rec.AssignedStaffID)
	}

	names := emptyNames()

	var g errgroup.Group
	if len(memberIDs.ids) > 0 {
		g.Go(func() error {
			members, err := s.contacts.GetMembersByIDs(ctx, organizationID, memberIDs.ids)
			if err != nil {
				s.lookupFailed(ctx, entityMember, err)
				return nil
			}
			for id, m := range members {
				names.members[id] = domain.Contact{Name: domain.FullName(m.FirstName, m.LastName), Phone: m.Phone}
			}
			return nil
		})
	}
	if len(enquiryIDs.ids) > 0 {
		g.Go(func() error {
			contacts, err := s.contacts.GetEnquiriesByIDs(ctx, organizationID, enquiryIDs.ids)
			if err != nil {
				s.lookupFailed(ctx, entityEnquiry, err)
				return nil
			}
			for id, e := range contacts {
				names.contacts[id] = domain.Contact{Name: e.Name, Phone: e.Phone}
			}
			return nil
		})
	}
	if len(staffIDs.ids) > 0 {
		g.Go(func() error {
			staff, err := s.staff.LoadStaffNames(ctx, organizationID, staffIDs.ids)
			if err != nil {
				s.lookupFailed(ctx, entityStaff, err)
			}
			for id, name := range staff {
				names.staff[id] = name
			}
			return nil
		})
	}
	_ = g.Wait()

	return names
}

func (s *Service) lookupFailed(ctx context.Context, entity string, err error) {
	s.log.WithContext(ctx).LookupDegraded(entity, apperr.Upstream(entity, err))
	s.metrics.LookupFailed(entity)
}

type idSet struct {
	seen map[uuid.UUID]struct{}
	ids  []uuid.UUID
}

func newIDSet() *idSet {
	return &idSet{seen: make(map[uuid.UUID]struct{})}
}

func (s *idSet) add(id *uuid.UUID) {
	if id == nil {
		return
	}
	if _, ok := s.seen[*id]; ok {
		return
	}
	s.seen[*id] = struct{}{}
	s.ids = append(s.ids, *id)
}
