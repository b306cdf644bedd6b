package service

import (
	"context"
	"testing"

	"github.com/aussiebroadwan/taskboard/internal/board/store/drivers/memory"
	"github.com/stretchr/testify/require"
)

func TestMeetingAdd(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("appends with a generated id", func(t *testing.T) {
		st := memory.NewSeededStore()
		svc := &MeetingService{Store: st}

		m, err := svc.Add(ctx, AddMeetingParams{
			Title: "  Retro  ",
			Date:  "2024-01-19",
			Time:  "15:00",
			Link:  "https://meet.example.com/retro",
		})
		require.NoError(t, err)
		require.NotEmpty(t, m.ID)
		require.Equal(t, "Retro", m.Title)

		list, err := svc.List(ctx)
		require.NoError(t, err)
		require.Len(t, list, 3)
		require.Equal(t, m.ID, list[2].ID)
	})

	t.Run("title is required", func(t *testing.T) {
		svc := &MeetingService{Store: memory.NewSeededStore()}

		_, err := svc.Add(ctx, AddMeetingParams{Date: "2024-01-19"})
		require.ErrorIs(t, err, ErrTitleRequired)
	})
}

func TestMeetingsOn(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	svc := &MeetingService{Store: memory.NewSeededStore()}

	meetings, err := svc.On(ctx, "2024-01-16")
	require.NoError(t, err)
	require.Len(t, meetings, 1)
	require.Equal(t, "Sprint Planning", meetings[0].Title)

	meetings, err = svc.On(ctx, "2024-01-17")
	require.NoError(t, err)
	require.Empty(t, meetings)
}
