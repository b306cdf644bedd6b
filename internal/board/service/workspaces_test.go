package service

import (
	"context"
	"testing"

	"github.com/aussiebroadwan/taskboard/internal/board/store"
	"github.com/aussiebroadwan/taskboard/internal/board/store/drivers/memory"
	"github.com/stretchr/testify/require"
)

func TestWorkspaceAdd(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("new workspace becomes current", func(t *testing.T) {
		svc := &WorkspaceService{Store: memory.NewSeededStore()}

		w, err := svc.Add(ctx, AddWorkspaceParams{
			Name:      "  API Gateway  ",
			MemberIDs: []string{"member-1"},
		})
		require.NoError(t, err)
		require.Equal(t, "API Gateway", w.Name)
		require.True(t, w.Active)

		current, err := svc.Current(ctx)
		require.NoError(t, err)
		require.Equal(t, w.ID, current.ID)
	})

	t.Run("name is required", func(t *testing.T) {
		svc := &WorkspaceService{Store: memory.NewSeededStore()}

		_, err := svc.Add(ctx, AddWorkspaceParams{Name: "   "})
		require.ErrorIs(t, err, ErrNameRequired)
	})
}

func TestWorkspaceSelect(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("switches the current pointer", func(t *testing.T) {
		svc := &WorkspaceService{Store: memory.NewSeededStore()}

		require.NoError(t, svc.Select(ctx, "workspace-2"))

		current, err := svc.Current(ctx)
		require.NoError(t, err)
		require.Equal(t, "workspace-2", current.ID)
	})

	t.Run("unknown id is rejected and the pointer keeps its value", func(t *testing.T) {
		svc := &WorkspaceService{Store: memory.NewSeededStore()}

		err := svc.Select(ctx, "workspace-999")
		require.ErrorIs(t, err, store.ErrNotFound)

		current, err := svc.Current(ctx)
		require.NoError(t, err)
		require.Equal(t, "workspace-1", current.ID)
	})
}

func TestWorkspaceList(t *testing.T) {
	t.Parallel()

	svc := &WorkspaceService{Store: memory.NewSeededStore()}

	list, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.Equal(t, "workspace-1", list[0].ID)
	require.Equal(t, "workspace-2", list[1].ID)
}
