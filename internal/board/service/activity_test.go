package service

import (
	"context"
	"testing"

	"github.com/aussiebroadwan/taskboard/internal/board/store/drivers/memory"
	"github.com/stretchr/testify/require"
)

func TestActivityRecord(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("prepends the entry to the feed", func(t *testing.T) {
		svc := &ActivityService{Store: memory.NewSeededStore()}

		a, err := svc.Record(ctx, "  Deployed release 1.4  ", "Sarah Scrum")
		require.NoError(t, err)
		require.Equal(t, "Deployed release 1.4", a.Message)
		require.Equal(t, "Sarah Scrum", a.Author)
		require.False(t, a.Timestamp.IsZero())

		feed, err := svc.List(ctx)
		require.NoError(t, err)
		require.Len(t, feed, 3)
		require.Equal(t, a.ID, feed[0].ID)
	})

	t.Run("missing author falls back to the placeholder", func(t *testing.T) {
		svc := &ActivityService{Store: memory.NewSeededStore()}

		a, err := svc.Record(ctx, "Closed the sprint", "")
		require.NoError(t, err)
		require.Equal(t, "Current User", a.Author)
	})

	t.Run("message is required", func(t *testing.T) {
		svc := &ActivityService{Store: memory.NewSeededStore()}

		_, err := svc.Record(ctx, "   ", "Sarah Scrum")
		require.ErrorIs(t, err, ErrMessageRequired)
	})
}

func TestActivityList(t *testing.T) {
	t.Parallel()

	svc := &ActivityService{Store: memory.NewSeededStore()}

	feed, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, feed, 2)

	// Seeded feed is newest first.
	require.Equal(t, "activity-2", feed[0].ID)
	require.Equal(t, "activity-1", feed[1].ID)
}
