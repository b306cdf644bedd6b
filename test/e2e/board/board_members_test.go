package board_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/aussiebroadwan/taskboard/pkg/boardsdk"
	"github.com/stretchr/testify/require"
)

func TestMemberAdministration(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	client := newTestServer(t)
	admin := login(t, client, adminEmail)

	created, err := admin.CreateMember(ctx, boardsdk.CreateMemberRequest{
		Name:  "Nina Newhire",
		Email: "nina@example.com",
		Role:  "Developer",
	})
	require.NoError(t, err)
	require.Equal(t, "Pending", created.Status)

	status := "Active"
	updated, err := admin.UpdateMember(ctx, created.ID, boardsdk.UpdateMemberRequest{Status: &status})
	require.NoError(t, err)
	require.Equal(t, "Active", updated.Status)

	require.NoError(t, admin.DeleteMember(ctx, created.ID))

	roster, err := admin.ListMembers(ctx, "")
	require.NoError(t, err)
	require.Len(t, roster, 4)
}

func TestMemberWritesAreAdminOnly(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	client := newTestServer(t)
	dev := login(t, client, devEmail)

	// Reads are open to any authenticated user.
	roster, err := dev.ListMembers(ctx, "lisa")
	require.NoError(t, err)
	require.Len(t, roster, 1)

	_, err = dev.CreateMember(ctx, boardsdk.CreateMemberRequest{
		Name: "Should Fail",
		Role: "Developer",
	})
	var apiErr *boardsdk.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusForbidden, apiErr.StatusCode)

	err = dev.DeleteMember(ctx, "member-4")
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusForbidden, apiErr.StatusCode)
}

func TestDeletedMemberLeavesTasksDangling(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	client := newTestServer(t)
	admin := login(t, client, adminEmail)

	require.NoError(t, admin.DeleteMember(ctx, "member-3"))

	// task-2 keeps its assignee reference; the display name falls back.
	task, err := admin.GetTask(ctx, "task-2")
	require.NoError(t, err)
	require.Equal(t, "member-3", task.AssigneeID)
	require.Equal(t, "Unassigned", task.AssigneeName)
}
