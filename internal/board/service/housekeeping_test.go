package service

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/aussiebroadwan/taskboard/internal/board/domain"
	"github.com/aussiebroadwan/taskboard/internal/board/store/drivers/memory"
	"github.com/stretchr/testify/require"
)

func newHousekeeping(st *memory.Store, now time.Time) *HousekeepingService {
	svc := NewHousekeepingService(st, slog.New(slog.DiscardHandler), time.Hour, 48*time.Hour)
	svc.Now = func() time.Time { return now }
	return svc
}

func dueSoonCount(t *testing.T, st *memory.Store) int {
	t.Helper()

	list, err := st.Notifications().ListNotifications(context.Background())
	require.NoError(t, err)

	count := 0
	for _, n := range list {
		if n.Type == domain.NotificationDueSoon && n.Title == "Task due soon" {
			count++
		}
	}
	return count
}

func TestHousekeepingScan(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("warns about tasks inside the window", func(t *testing.T) {
		st := memory.NewSeededStore()

		// task-1 (due 2024-01-15) and task-2 (due 2024-01-20) are open.
		// With the clock at the 14th only task-1 falls inside 48 hours.
		svc := newHousekeeping(st, time.Date(2024, 1, 14, 9, 0, 0, 0, time.UTC))
		before := dueSoonCount(t, st)

		svc.Scan(ctx)

		require.Equal(t, before+1, dueSoonCount(t, st))

		list, err := st.Notifications().ListNotifications(ctx)
		require.NoError(t, err)
		require.Equal(t, "task-1", list[0].TaskID)
		require.Contains(t, list[0].Message, "Design user authentication flow")
		require.Contains(t, list[0].Message, "2024-01-15")
	})

	t.Run("each task is warned about once", func(t *testing.T) {
		st := memory.NewSeededStore()

		svc := newHousekeeping(st, time.Date(2024, 1, 14, 9, 0, 0, 0, time.UTC))
		before := dueSoonCount(t, st)

		svc.Scan(ctx)
		svc.Scan(ctx)
		svc.Scan(ctx)

		require.Equal(t, before+1, dueSoonCount(t, st))
	})

	t.Run("done and overdue tasks are skipped", func(t *testing.T) {
		st := memory.NewSeededStore()

		// Well past every seeded due date: task-3 is Done, the rest are
		// overdue rather than due soon.
		svc := newHousekeeping(st, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC))
		before := dueSoonCount(t, st)

		svc.Scan(ctx)

		require.Equal(t, before, dueSoonCount(t, st))
	})

	t.Run("window boundary is inclusive", func(t *testing.T) {
		st := memory.NewSeededStore()

		// Exactly 48 hours before task-2's due date midnight.
		svc := newHousekeeping(st, time.Date(2024, 1, 18, 0, 0, 0, 0, time.UTC))
		before := dueSoonCount(t, st)

		svc.Scan(ctx)

		require.Equal(t, before+1, dueSoonCount(t, st))
	})
}

func TestHousekeepingStartStop(t *testing.T) {
	t.Parallel()

	st := memory.NewSeededStore()
	svc := newHousekeeping(st, time.Date(2024, 1, 14, 9, 0, 0, 0, time.UTC))

	svc.Start()
	svc.Stop()

	// The startup scan ran before Stop returned.
	require.Equal(t, 2, dueSoonCount(t, st))
}
