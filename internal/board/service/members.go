package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/aussiebroadwan/taskboard/internal/board/domain"
	"github.com/aussiebroadwan/taskboard/internal/board/store"
	"github.com/aussiebroadwan/taskboard/pkg/idx"
)

// UnassignedName is the display fallback when a task's assignee reference
// no longer resolves to a roster member.
const UnassignedName = "Unassigned"

var (
	ErrInvalidRole         = errors.New("invalid_role")
	ErrInvalidMemberStatus = errors.New("invalid_member_status")
)

// TeamService owns the team roster.
type TeamService struct {
	Store store.Store
}

// AddMemberParams are the caller-supplied fields for a new roster entry.
type AddMemberParams struct {
	Name   string
	Email  string
	Role   domain.Role
	Status domain.MemberStatus
}

// Add creates a roster entry. New members default to Pending until they
// accept their invite.
func (s *TeamService) Add(ctx context.Context, p AddMemberParams) (domain.TeamMember, error) {
	if strings.TrimSpace(p.Name) == "" {
		return domain.TeamMember{}, ErrNameRequired
	}
	if !p.Role.Valid() {
		return domain.TeamMember{}, ErrInvalidRole
	}
	if p.Status == "" {
		p.Status = domain.MemberPending
	}
	if !p.Status.Valid() {
		return domain.TeamMember{}, ErrInvalidMemberStatus
	}

	m := domain.TeamMember{
		ID:       idx.New().String(),
		Name:     strings.TrimSpace(p.Name),
		Email:    strings.TrimSpace(p.Email),
		Role:     p.Role,
		Status:   p.Status,
		JoinedAt: time.Now().UTC(),
	}

	if err := s.Store.Members().CreateMember(ctx, m); err != nil {
		return domain.TeamMember{}, err
	}
	return m, nil
}

// MemberUpdate is a partial field set; nil fields are left alone.
type MemberUpdate struct {
	Name   *string
	Email  *string
	Role   *domain.Role
	Status *domain.MemberStatus
}

// Update merges the partial field set into the roster entry.
func (s *TeamService) Update(ctx context.Context, id string, u MemberUpdate) (domain.TeamMember, error) {
	m, err := s.Store.Members().GetMemberByID(ctx, id)
	if err != nil {
		return domain.TeamMember{}, err
	}

	if u.Name != nil {
		m.Name = *u.Name
	}
	if u.Email != nil {
		m.Email = *u.Email
	}
	if u.Role != nil {
		if !u.Role.Valid() {
			return domain.TeamMember{}, ErrInvalidRole
		}
		m.Role = *u.Role
	}
	if u.Status != nil {
		if !u.Status.Valid() {
			return domain.TeamMember{}, ErrInvalidMemberStatus
		}
		m.Status = *u.Status
	}

	if err := s.Store.Members().UpdateMember(ctx, m); err != nil {
		return domain.TeamMember{}, err
	}
	return m, nil
}

// Remove deletes a roster entry. Tasks assigned to the member keep their
// assignee reference; ResolveName starts answering "Unassigned" for it.
func (s *TeamService) Remove(ctx context.Context, id string) error {
	return s.Store.Members().DeleteMember(ctx, id)
}

// List returns the roster in join order.
func (s *TeamService) List(ctx context.Context) ([]domain.TeamMember, error) {
	return s.Store.Members().ListMembers(ctx)
}

// Search filters the roster with a case-insensitive substring match on name
// or email. An empty query returns everyone.
func (s *TeamService) Search(ctx context.Context, query string) ([]domain.TeamMember, error) {
	members, err := s.Store.Members().ListMembers(ctx)
	if err != nil {
		return nil, err
	}

	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return members, nil
	}

	var out []domain.TeamMember
	for _, m := range members {
		if strings.Contains(strings.ToLower(m.Name), query) ||
			strings.Contains(strings.ToLower(m.Email), query) {
			out = append(out, m)
		}
	}
	return out, nil
}

// ResolveName maps an assignee reference to a display name, falling back to
// "Unassigned" when the reference is empty or dangling.
func (s *TeamService) ResolveName(ctx context.Context, memberID string) string {
	if memberID == "" {
		return UnassignedName
	}
	m, err := s.Store.Members().GetMemberByID(ctx, memberID)
	if err != nil {
		return UnassignedName
	}
	return m.Name
}
