package service

import (
	"context"
	"errors"
	"strings"

	"github.com/aussiebroadwan/taskboard/internal/board/domain"
	"github.com/aussiebroadwan/taskboard/internal/board/store"
	"github.com/aussiebroadwan/taskboard/pkg/idx"
)

var ErrNameRequired = errors.New("name_required")

// WorkspaceService owns the workspace collection and the current-workspace
// pointer.
type WorkspaceService struct {
	Store store.Store
}

// AddWorkspaceParams are the caller-supplied fields for a new workspace.
type AddWorkspaceParams struct {
	Name        string
	Description string
	MemberIDs   []string
}

// Add creates a workspace and switches the current-workspace pointer to it.
func (s *WorkspaceService) Add(ctx context.Context, p AddWorkspaceParams) (domain.Workspace, error) {
	if strings.TrimSpace(p.Name) == "" {
		return domain.Workspace{}, ErrNameRequired
	}

	w := domain.Workspace{
		ID:          idx.New().String(),
		Name:        strings.TrimSpace(p.Name),
		Description: p.Description,
		Active:      true,
		MemberIDs:   p.MemberIDs,
	}

	if err := s.Store.Workspaces().CreateWorkspace(ctx, w); err != nil {
		return domain.Workspace{}, err
	}
	if err := s.Store.Workspaces().SetCurrent(ctx, w.ID); err != nil {
		return domain.Workspace{}, err
	}
	return w, nil
}

// List returns all workspaces in creation order.
func (s *WorkspaceService) List(ctx context.Context) ([]domain.Workspace, error) {
	return s.Store.Workspaces().ListWorkspaces(ctx)
}

// Select moves the current-workspace pointer.
func (s *WorkspaceService) Select(ctx context.Context, id string) error {
	return s.Store.Workspaces().SetCurrent(ctx, id)
}

// Current returns the workspace the pointer refers to.
func (s *WorkspaceService) Current(ctx context.Context) (domain.Workspace, error) {
	id, err := s.Store.Workspaces().Current(ctx)
	if err != nil {
		return domain.Workspace{}, err
	}
	return s.Store.Workspaces().GetWorkspaceByID(ctx, id)
}
