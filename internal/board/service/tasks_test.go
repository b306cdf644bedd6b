package service

import (
	"context"
	"testing"

	"github.com/aussiebroadwan/taskboard/internal/board/domain"
	"github.com/aussiebroadwan/taskboard/internal/board/store"
	"github.com/aussiebroadwan/taskboard/internal/board/store/drivers/memory"
	"github.com/stretchr/testify/require"
)

func TestTaskCreate(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("defaults status, priority and workspace", func(t *testing.T) {
		svc := &TaskService{Store: memory.NewSeededStore()}

		task, err := svc.Create(ctx, CreateTaskParams{Title: "  New thing  "})
		require.NoError(t, err)
		require.Equal(t, "New thing", task.Title)
		require.Equal(t, domain.StatusTodo, task.Status)
		require.Equal(t, domain.PriorityMedium, task.Priority)
		require.Equal(t, "workspace-1", task.WorkspaceID)
		require.NotEmpty(t, task.ID)
	})

	t.Run("subtask titles become checklist items", func(t *testing.T) {
		svc := &TaskService{Store: memory.NewSeededStore()}

		task, err := svc.Create(ctx, CreateTaskParams{
			Title:    "With checklist",
			Subtasks: []string{"one", "two"},
		})
		require.NoError(t, err)
		require.Len(t, task.Subtasks, 2)
		require.Equal(t, "one", task.Subtasks[0].Title)
		require.False(t, task.Subtasks[0].Completed)
		require.Equal(t, task.ID+"-1", task.Subtasks[0].ID)
		require.Equal(t, task.ID+"-2", task.Subtasks[1].ID)
	})

	t.Run("rejects empty title", func(t *testing.T) {
		svc := &TaskService{Store: memory.NewSeededStore()}

		_, err := svc.Create(ctx, CreateTaskParams{Title: "   "})
		require.ErrorIs(t, err, ErrTitleRequired)
	})

	t.Run("rejects unknown workspace", func(t *testing.T) {
		svc := &TaskService{Store: memory.NewSeededStore()}

		_, err := svc.Create(ctx, CreateTaskParams{Title: "x", WorkspaceID: "workspace-404"})
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("assignee is not validated", func(t *testing.T) {
		svc := &TaskService{Store: memory.NewSeededStore()}

		task, err := svc.Create(ctx, CreateTaskParams{Title: "x", AssigneeID: "member-999"})
		require.NoError(t, err)
		require.Equal(t, "member-999", task.AssigneeID)
	})
}

func TestTaskUpdate(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("nil fields are left alone", func(t *testing.T) {
		svc := &TaskService{Store: memory.NewSeededStore()}

		desc := "reworded"
		task, err := svc.Update(ctx, "task-1", TaskUpdate{Description: &desc})
		require.NoError(t, err)
		require.Equal(t, "reworded", task.Description)
		require.Equal(t, "Design user authentication flow", task.Title)
		require.Equal(t, domain.StatusInProgress, task.Status)
	})

	t.Run("any column transition is allowed", func(t *testing.T) {
		svc := &TaskService{Store: memory.NewSeededStore()}

		// Done back to To Do is legal; the graph is unconstrained.
		status := domain.StatusTodo
		task, err := svc.Update(ctx, "task-3", TaskUpdate{Status: &status})
		require.NoError(t, err)
		require.Equal(t, domain.StatusTodo, task.Status)
	})

	t.Run("rejects values outside the enums", func(t *testing.T) {
		svc := &TaskService{Store: memory.NewSeededStore()}

		bad := domain.Status("Parked")
		_, err := svc.Update(ctx, "task-1", TaskUpdate{Status: &bad})
		require.ErrorIs(t, err, ErrInvalidStatus)

		badP := domain.Priority("Critical")
		_, err = svc.Update(ctx, "task-1", TaskUpdate{Priority: &badP})
		require.ErrorIs(t, err, ErrInvalidPriority)
	})

	t.Run("unknown task", func(t *testing.T) {
		svc := &TaskService{Store: memory.NewSeededStore()}

		_, err := svc.Update(ctx, "task-404", TaskUpdate{})
		require.ErrorIs(t, err, store.ErrNotFound)
	})
}

func TestTaskMove(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("stamps last activity with the actor", func(t *testing.T) {
		svc := &TaskService{Store: memory.NewSeededStore()}

		task, err := svc.Move(ctx, "task-2", domain.StatusQA, "Sarah Scrum")
		require.NoError(t, err)
		require.Equal(t, domain.StatusQA, task.Status)
		require.NotNil(t, task.LastActivity)
		require.Equal(t, "Sarah Scrum", task.LastActivity.User)
		require.Equal(t, "moved from To Do to QA", task.LastActivity.Action)
	})

	t.Run("missing actor falls back to Unknown User", func(t *testing.T) {
		svc := &TaskService{Store: memory.NewSeededStore()}

		task, err := svc.Move(ctx, "task-2", domain.StatusDone, "")
		require.NoError(t, err)
		require.Equal(t, "Unknown User", task.LastActivity.User)
	})

	t.Run("moving onto the same column is a no-op", func(t *testing.T) {
		svc := &TaskService{Store: memory.NewSeededStore()}

		task, err := svc.Move(ctx, "task-1", domain.StatusInProgress, "Sarah Scrum")
		require.NoError(t, err)
		require.Nil(t, task.LastActivity)
	})

	t.Run("rejects made-up columns", func(t *testing.T) {
		svc := &TaskService{Store: memory.NewSeededStore()}

		_, err := svc.Move(ctx, "task-1", domain.Status("Archived"), "x")
		require.ErrorIs(t, err, ErrInvalidStatus)
	})
}

func TestTaskSearch(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("empty query returns the whole workspace", func(t *testing.T) {
		svc := &TaskService{Store: memory.NewSeededStore()}

		tasks, err := svc.Search(ctx, "   ")
		require.NoError(t, err)
		require.Len(t, tasks, 3)
	})

	t.Run("matches title and description case-insensitively", func(t *testing.T) {
		svc := &TaskService{Store: memory.NewSeededStore()}

		tasks, err := svc.Search(ctx, "AUTHENTICATION")
		require.NoError(t, err)
		require.Len(t, tasks, 2)
	})

	t.Run("matches resolved assignee name", func(t *testing.T) {
		svc := &TaskService{Store: memory.NewSeededStore()}

		tasks, err := svc.Search(ctx, "mike")
		require.NoError(t, err)
		require.Len(t, tasks, 2)
		for _, task := range tasks {
			require.Equal(t, "member-3", task.AssigneeID)
		}
	})

	t.Run("removed assignee no longer matches by name", func(t *testing.T) {
		st := memory.NewSeededStore()
		svc := &TaskService{Store: st}

		require.NoError(t, st.Members().DeleteMember(ctx, "member-3"))

		tasks, err := svc.Search(ctx, "mike")
		require.NoError(t, err)
		require.Empty(t, tasks)

		// The dangling reference itself is preserved.
		task, err := svc.Get(ctx, "task-2")
		require.NoError(t, err)
		require.Equal(t, "member-3", task.AssigneeID)
	})

	t.Run("scoped to the current workspace", func(t *testing.T) {
		st := memory.NewSeededStore()
		svc := &TaskService{Store: st}

		require.NoError(t, st.Workspaces().SetCurrent(ctx, "workspace-2"))

		tasks, err := svc.Search(ctx, "")
		require.NoError(t, err)
		require.Empty(t, tasks)
	})
}

func TestTaskDelete(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	st := memory.NewSeededStore()
	svc := &TaskService{Store: st}

	require.NoError(t, svc.Delete(ctx, "task-1"))

	_, err := svc.Get(ctx, "task-1")
	require.ErrorIs(t, err, store.ErrNotFound)

	// The notification that referenced the task keeps its reference.
	notifications, err := st.Notifications().ListNotifications(ctx)
	require.NoError(t, err)
	require.Equal(t, "task-1", notifications[0].TaskID)
}
