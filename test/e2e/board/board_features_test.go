package board_test

import (
	"context"
	"testing"

	"github.com/aussiebroadwan/taskboard/pkg/boardsdk"
	"github.com/stretchr/testify/require"
)

func TestNotificationFlow(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	client := newTestServer(t)
	session := login(t, client, adminEmail)

	unread, err := session.UnreadCount(ctx)
	require.NoError(t, err)
	require.Equal(t, 2, unread)

	require.NoError(t, session.MarkNotificationRead(ctx, "notification-1"))

	unread, err = session.UnreadCount(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, unread)

	marked, err := session.MarkAllNotificationsRead(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, marked)

	require.NoError(t, session.DeleteNotification(ctx, "notification-2"))

	list, err := session.ListNotifications(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
}

func TestActivityFeed(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	client := newTestServer(t)
	session := login(t, client, scrumEmail)

	recorded, err := session.RecordActivity(ctx, "Kicked off sprint 12")
	require.NoError(t, err)
	// The author comes from the bearer token, not the request body.
	require.Equal(t, "Sarah Scrum", recorded.User)

	feed, err := session.ListActivity(ctx)
	require.NoError(t, err)
	require.Len(t, feed, 3)
	require.Equal(t, recorded.ID, feed[0].ID)
}

func TestMeetingsAndCalendar(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	client := newTestServer(t)
	session := login(t, client, adminEmail)

	_, err := session.CreateMeeting(ctx, boardsdk.CreateMeetingRequest{
		Title: "Release Review",
		Date:  "2024-01-15",
		Time:  "16:00",
	})
	require.NoError(t, err)

	onDay, err := session.ListMeetings(ctx, "2024-01-15")
	require.NoError(t, err)
	require.Len(t, onDay, 2)

	month, err := session.Month(ctx, 2024, 1)
	require.NoError(t, err)
	require.Len(t, month.Days, 42)

	day, err := session.Day(ctx, "2024-01-15")
	require.NoError(t, err)
	require.Equal(t, "2024-01-15", day.Date)
	require.Len(t, day.Tasks, 1)
	require.Len(t, day.Meetings, 2)
}

func TestMetricsEndpoint(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	client := newTestServer(t)
	session := login(t, client, adminEmail)

	metrics, err := session.Metrics(ctx)
	require.NoError(t, err)
	require.Equal(t, 2, metrics.ActiveWorkspaces)
	require.Equal(t, 1, metrics.CompletedTasks)
	require.Equal(t, 1, metrics.InProgressTasks)
	require.Equal(t, 4, metrics.TeamMembers)
}

func TestAssistantFlow(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	client := newTestServer(t)
	session := login(t, client, scrumEmail)

	resp, err := session.AskAssistant(ctx, "generate", "Create a retrospective board task")
	require.NoError(t, err)
	require.NotNil(t, resp.Suggestion)
	require.Equal(t, "a retrospective board", resp.Suggestion.Title)

	task, err := session.ApplySuggestion(ctx, *resp.Suggestion)
	require.NoError(t, err)
	require.Equal(t, "To Do", task.Status)
	require.Equal(t, "a retrospective board", task.Title)

	summary, err := session.AskAssistant(ctx, "summarize", "stand-up please")
	require.NoError(t, err)
	require.Contains(t, summary.Message, "Stand-up Summary")
}

func TestHealthEndpoints(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	client := newTestServer(t)

	live, err := client.GetLiveness(ctx)
	require.NoError(t, err)
	require.Equal(t, "ok", live.Status)

	ready, err := client.GetReadiness(ctx)
	require.NoError(t, err)
	require.Equal(t, "ok", ready.Status)
}
