package service

import (
	"context"
	"testing"

	"github.com/aussiebroadwan/taskboard/internal/board/domain"
	"github.com/aussiebroadwan/taskboard/internal/board/store/drivers/memory"
	"github.com/stretchr/testify/require"
)

func TestMetricsCompute(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	st := memory.NewSeededStore()
	svc := &MetricsService{Store: st}

	m, err := svc.Compute(ctx)
	require.NoError(t, err)
	require.Equal(t, 2, m.ActiveWorkspaces)
	require.Equal(t, 2, m.TotalWorkspaces)
	require.Equal(t, 1, m.CompletedTasks)
	require.Equal(t, 1, m.InProgressTasks)
	require.Equal(t, 4, m.TeamMembers)

	// Nothing is cached: finishing a task shows up on the next call.
	tasks := &TaskService{Store: st}
	_, err = tasks.Move(ctx, "task-2", domain.StatusDone, "Mike Developer")
	require.NoError(t, err)

	m, err = svc.Compute(ctx)
	require.NoError(t, err)
	require.Equal(t, 2, m.CompletedTasks)
}

func TestMetricsFollowCurrentWorkspace(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	st := memory.NewSeededStore()
	svc := &MetricsService{Store: st}

	require.NoError(t, st.Workspaces().SetCurrent(ctx, "workspace-2"))

	m, err := svc.Compute(ctx)
	require.NoError(t, err)
	require.Equal(t, 0, m.CompletedTasks)
	require.Equal(t, 0, m.InProgressTasks)

	// Global counts are unaffected by the pointer.
	require.Equal(t, 2, m.TotalWorkspaces)
	require.Equal(t, 4, m.TeamMembers)
}
