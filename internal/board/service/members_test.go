package service

import (
	"context"
	"testing"

	"github.com/aussiebroadwan/taskboard/internal/board/domain"
	"github.com/aussiebroadwan/taskboard/internal/board/store"
	"github.com/aussiebroadwan/taskboard/internal/board/store/drivers/memory"
	"github.com/stretchr/testify/require"
)

func TestTeamAdd(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("new member defaults to pending", func(t *testing.T) {
		svc := &TeamService{Store: memory.NewSeededStore()}

		m, err := svc.Add(ctx, AddMemberParams{
			Name:  "  Nina Newhire  ",
			Email: "nina@example.com",
			Role:  domain.RoleDeveloper,
		})
		require.NoError(t, err)
		require.Equal(t, "Nina Newhire", m.Name)
		require.Equal(t, domain.MemberPending, m.Status)
		require.NotEmpty(t, m.ID)
		require.False(t, m.JoinedAt.IsZero())
	})

	t.Run("explicit status is kept", func(t *testing.T) {
		svc := &TeamService{Store: memory.NewSeededStore()}

		m, err := svc.Add(ctx, AddMemberParams{
			Name:   "Owen Ops",
			Role:   domain.RoleTester,
			Status: domain.MemberActive,
		})
		require.NoError(t, err)
		require.Equal(t, domain.MemberActive, m.Status)
	})

	t.Run("invalid fields are rejected", func(t *testing.T) {
		svc := &TeamService{Store: memory.NewSeededStore()}

		_, err := svc.Add(ctx, AddMemberParams{Role: domain.RoleDeveloper})
		require.ErrorIs(t, err, ErrNameRequired)

		_, err = svc.Add(ctx, AddMemberParams{Name: "X", Role: "Wizard"})
		require.ErrorIs(t, err, ErrInvalidRole)

		_, err = svc.Add(ctx, AddMemberParams{Name: "X", Role: domain.RoleDeveloper, Status: "Hibernating"})
		require.ErrorIs(t, err, ErrInvalidMemberStatus)
	})
}

func TestTeamUpdate(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("partial update leaves nil fields alone", func(t *testing.T) {
		svc := &TeamService{Store: memory.NewSeededStore()}

		status := domain.MemberActive
		m, err := svc.Update(ctx, "member-4", MemberUpdate{Status: &status})
		require.NoError(t, err)
		require.Equal(t, domain.MemberActive, m.Status)
		require.Equal(t, "Lisa Tester", m.Name)
		require.Equal(t, domain.RoleTester, m.Role)
	})

	t.Run("invalid role is rejected before the store sees it", func(t *testing.T) {
		st := memory.NewSeededStore()
		svc := &TeamService{Store: st}

		role := domain.Role("Wizard")
		_, err := svc.Update(ctx, "member-3", MemberUpdate{Role: &role})
		require.ErrorIs(t, err, ErrInvalidRole)

		m, err := st.Members().GetMemberByID(ctx, "member-3")
		require.NoError(t, err)
		require.Equal(t, domain.RoleDeveloper, m.Role)
	})

	t.Run("unknown member", func(t *testing.T) {
		svc := &TeamService{Store: memory.NewSeededStore()}

		name := "Ghost"
		_, err := svc.Update(ctx, "member-999", MemberUpdate{Name: &name})
		require.ErrorIs(t, err, store.ErrNotFound)
	})
}

func TestTeamRemove(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	st := memory.NewSeededStore()
	svc := &TeamService{Store: st}

	require.NoError(t, svc.Remove(ctx, "member-3"))

	_, err := st.Members().GetMemberByID(ctx, "member-3")
	require.ErrorIs(t, err, store.ErrNotFound)

	// The tasks assigned to the removed member keep their reference.
	task, err := st.Tasks().GetTaskByID(ctx, "task-2")
	require.NoError(t, err)
	require.Equal(t, "member-3", task.AssigneeID)
}

func TestTeamSearch(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	svc := &TeamService{Store: memory.NewSeededStore()}

	t.Run("empty query returns the whole roster", func(t *testing.T) {
		members, err := svc.Search(ctx, "   ")
		require.NoError(t, err)
		require.Len(t, members, 4)
	})

	t.Run("matches name case-insensitively", func(t *testing.T) {
		members, err := svc.Search(ctx, "SARAH")
		require.NoError(t, err)
		require.Len(t, members, 1)
		require.Equal(t, "member-2", members[0].ID)
	})

	t.Run("matches email", func(t *testing.T) {
		members, err := svc.Search(ctx, "tester@")
		require.NoError(t, err)
		require.Len(t, members, 1)
		require.Equal(t, "member-4", members[0].ID)
	})
}

func TestTeamResolveName(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	st := memory.NewSeededStore()
	svc := &TeamService{Store: st}

	require.Equal(t, "Mike Developer", svc.ResolveName(ctx, "member-3"))
	require.Equal(t, UnassignedName, svc.ResolveName(ctx, ""))

	// A dangling reference resolves to the fallback too.
	require.NoError(t, svc.Remove(ctx, "member-3"))
	require.Equal(t, UnassignedName, svc.ResolveName(ctx, "member-3"))
}
