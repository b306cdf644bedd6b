package board_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/aussiebroadwan/taskboard/pkg/boardsdk"
	"github.com/stretchr/testify/require"
)

func TestTaskLifecycle(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	client := newTestServer(t)
	session := login(t, client, scrumEmail)

	created, err := session.CreateTask(ctx, boardsdk.CreateTaskRequest{
		Title:       "Ship the release",
		Description: "Cut a tag and publish release notes",
		Priority:    "High",
		AssigneeID:  "member-3",
		DueDate:     "2024-02-01",
	})
	require.NoError(t, err)
	require.Equal(t, "To Do", created.Status)
	require.Equal(t, "Mike Developer", created.AssigneeName)

	fetched, err := session.GetTask(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, created.ID, fetched.ID)

	newTitle := "Ship the 1.4 release"
	updated, err := session.UpdateTask(ctx, created.ID, boardsdk.UpdateTaskRequest{Title: &newTitle})
	require.NoError(t, err)
	require.Equal(t, "Ship the 1.4 release", updated.Title)
	require.Equal(t, "High", updated.Priority)

	moved, err := session.MoveTask(ctx, created.ID, "In Progress")
	require.NoError(t, err)
	require.Equal(t, "In Progress", moved.Status)
	require.NotNil(t, moved.LastActivity)
	require.Equal(t, "Sarah Scrum", moved.LastActivity.User)

	require.NoError(t, session.DeleteTask(ctx, created.ID))

	_, err = session.GetTask(ctx, created.ID)
	requireAPIError(t, err, http.StatusNotFound, boardsdk.ErrorCodeNotFound)
}

func TestTaskListAndSearch(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	client := newTestServer(t)
	session := login(t, client, adminEmail)

	all, err := session.ListTasks(ctx, "")
	require.NoError(t, err)
	require.Len(t, all, 3)

	// Search matches title, description and assignee name.
	byTitle, err := session.ListTasks(ctx, "authentication")
	require.NoError(t, err)
	require.Len(t, byTitle, 2)

	byAssignee, err := session.ListTasks(ctx, "mike")
	require.NoError(t, err)
	require.Len(t, byAssignee, 2)
}

func TestTaskValidation(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	client := newTestServer(t)
	session := login(t, client, adminEmail)

	_, err := session.CreateTask(ctx, boardsdk.CreateTaskRequest{Title: "   "})
	requireAPIError(t, err, http.StatusBadRequest, boardsdk.ErrorCodeInvalidRequest)

	_, err = session.MoveTask(ctx, "task-1", "Limbo")
	requireAPIError(t, err, http.StatusBadRequest, boardsdk.ErrorCodeInvalidRequest)

	_, err = session.MoveTask(ctx, "task-999", "Done")
	requireAPIError(t, err, http.StatusNotFound, boardsdk.ErrorCodeNotFound)
}

func TestTasksFollowCurrentWorkspace(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	client := newTestServer(t)
	session := login(t, client, adminEmail)

	require.NoError(t, session.SelectWorkspace(ctx, "workspace-2"))

	tasks, err := session.ListTasks(ctx, "")
	require.NoError(t, err)
	require.Empty(t, tasks)

	current, err := session.CurrentWorkspace(ctx)
	require.NoError(t, err)
	require.Equal(t, "workspace-2", current.ID)
	require.True(t, current.Current)
}

func TestCreateWorkspaceSwitchesToIt(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	client := newTestServer(t)
	session := login(t, client, adminEmail)

	created, err := session.CreateWorkspace(ctx, boardsdk.CreateWorkspaceRequest{
		Name:      "Data Platform",
		MemberIDs: []string{"member-1"},
	})
	require.NoError(t, err)
	require.True(t, created.Current)

	list, err := session.ListWorkspaces(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)

	for _, w := range list {
		require.Equal(t, w.ID == created.ID, w.Current)
	}
}
