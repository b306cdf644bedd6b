package memory

import (
	"context"
	"testing"
	"time"

	"github.com/aussiebroadwan/taskboard/internal/board/domain"
	"github.com/aussiebroadwan/taskboard/internal/board/store"
	"github.com/stretchr/testify/require"
)

func TestSeededStore(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	st := NewSeededStore()

	admin, err := st.Users().GetUserByEmail(ctx, "admin@example.com")
	require.NoError(t, err)
	require.Equal(t, "member-1", admin.ID)
	require.Equal(t, domain.RoleAdmin, admin.Role)

	workspaces, err := st.Workspaces().ListWorkspaces(ctx)
	require.NoError(t, err)
	require.Len(t, workspaces, 2)

	current, err := st.Workspaces().Current(ctx)
	require.NoError(t, err)
	require.Equal(t, "workspace-1", current)

	tasks, err := st.Tasks().ListTasks(ctx)
	require.NoError(t, err)
	require.Len(t, tasks, 3)

	members, err := st.Members().ListMembers(ctx)
	require.NoError(t, err)
	require.Len(t, members, 4)

	// Seeded assignee and workspace references resolve.
	for _, task := range tasks {
		_, err := st.Members().GetMemberByID(ctx, task.AssigneeID)
		require.NoError(t, err, "task %s assignee", task.ID)
		_, err = st.Workspaces().GetWorkspaceByID(ctx, task.WorkspaceID)
		require.NoError(t, err, "task %s workspace", task.ID)
	}
}

func TestTasksCRUD(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	st := NewStore()
	task := domain.Task{
		ID:          "t1",
		Title:       "Write docs",
		Status:      domain.StatusTodo,
		Priority:    domain.PriorityLow,
		WorkspaceID: "w1",
	}

	require.NoError(t, st.Tasks().CreateTask(ctx, task))
	require.ErrorIs(t, st.Tasks().CreateTask(ctx, task), store.ErrAlreadyExists)

	got, err := st.Tasks().GetTaskByID(ctx, "t1")
	require.NoError(t, err)
	require.Equal(t, "Write docs", got.Title)

	got.Status = domain.StatusInProgress
	require.NoError(t, st.Tasks().UpdateTask(ctx, got))

	got, err = st.Tasks().GetTaskByID(ctx, "t1")
	require.NoError(t, err)
	require.Equal(t, domain.StatusInProgress, got.Status)

	require.NoError(t, st.Tasks().DeleteTask(ctx, "t1"))
	require.ErrorIs(t, st.Tasks().DeleteTask(ctx, "t1"), store.ErrNotFound)

	_, err = st.Tasks().GetTaskByID(ctx, "t1")
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestReturnedRecordsDoNotAliasStoreMemory(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	st := NewSeededStore()

	got, err := st.Tasks().GetTaskByID(ctx, "task-1")
	require.NoError(t, err)
	require.NotEmpty(t, got.Subtasks)

	// Mutating the returned copy must not leak into the store.
	got.Subtasks[0].Completed = !got.Subtasks[0].Completed
	got.Title = "mutated"

	fresh, err := st.Tasks().GetTaskByID(ctx, "task-1")
	require.NoError(t, err)
	require.Equal(t, "Design user authentication flow", fresh.Title)
	require.True(t, fresh.Subtasks[0].Completed)
}

func TestMutationsPublishEvents(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	st := NewSeededStore()

	var events []store.Event
	cancel := st.Events().Subscribe(func(e store.Event) { events = append(events, e) })
	defer cancel()

	require.NoError(t, st.Tasks().CreateTask(ctx, domain.Task{ID: "t9", Title: "X", WorkspaceID: "workspace-1"}))
	require.NoError(t, st.Tasks().DeleteTask(ctx, "t9"))
	require.NoError(t, st.Meetings().CreateMeeting(ctx, domain.Meeting{ID: "m9", Title: "Sync"}))

	require.Len(t, events, 3)
	require.Equal(t, store.EventCreated, events[0].Kind)
	require.Equal(t, store.CollectionTasks, events[0].Collection)
	require.Equal(t, "t9", events[0].ID)
	require.Equal(t, store.EventDeleted, events[1].Kind)
	require.Equal(t, store.CollectionMeetings, events[2].Collection)
}

func TestEventSubscriberCanReadTheStore(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	st := NewStore()

	var seen string
	cancel := st.Events().Subscribe(func(e store.Event) {
		// Subscribers run after the mutation lands, so the record is
		// already visible.
		task, err := st.Tasks().GetTaskByID(ctx, e.ID)
		require.NoError(t, err)
		seen = task.Title
	})
	defer cancel()

	require.NoError(t, st.Tasks().CreateTask(ctx, domain.Task{ID: "t1", Title: "Visible"}))
	require.Equal(t, "Visible", seen)
}

func TestSessionSlot(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	st := NewStore()
	sessions := st.Sessions()

	_, err := sessions.Load(ctx)
	require.ErrorIs(t, err, store.ErrNotFound)

	sess := domain.Session{
		ID:               "session-1",
		UserID:           "member-1",
		Email:            "admin@example.com",
		Name:             "John Admin",
		Role:             domain.RoleAdmin,
		WorkspaceIDs:     []string{"workspace-1"},
		TokenFingerprint: "abc123",
		CreatedAt:        time.Now().UTC(),
		UpdatedAt:        time.Now().UTC(),
	}
	require.NoError(t, sessions.Save(ctx, sess))

	got, err := sessions.Load(ctx)
	require.NoError(t, err)
	require.Equal(t, sess.UserID, got.UserID)
	require.Equal(t, sess.TokenFingerprint, got.TokenFingerprint)

	// Clearing is idempotent.
	require.NoError(t, sessions.Clear(ctx))
	require.NoError(t, sessions.Clear(ctx))

	_, err = sessions.Load(ctx)
	require.ErrorIs(t, err, store.ErrNotFound)
}
