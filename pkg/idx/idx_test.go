package idx_test

import (
	"sort"
	"testing"
	"time"

	"github.com/aussiebroadwan/taskboard/pkg/idx"
	"github.com/stretchr/testify/require"
)

func TestNewIsSortableByCreation(t *testing.T) {
	ids := make([]string, 0, 100)
	for range 100 {
		ids = append(ids, idx.New().String())
	}

	sorted := append([]string(nil), ids...)
	sort.Strings(sorted)
	require.Equal(t, sorted, ids, "ids generated in sequence should already be sorted")
}

func TestNewAt(t *testing.T) {
	at := time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC)
	id := idx.NewAt(at)

	require.False(t, id.IsZero())
	require.Equal(t, at.UnixMilli(), id.Time().UnixMilli())
}

func TestParse(t *testing.T) {
	t.Run("round-trips a generated id", func(t *testing.T) {
		id := idx.New()
		parsed, err := idx.Parse(id.String())
		require.NoError(t, err)
		require.Equal(t, id, parsed)
	})

	t.Run("rejects garbage", func(t *testing.T) {
		for _, s := range []string{"", "   ", "not-a-ulid", "0000"} {
			_, err := idx.Parse(s)
			require.ErrorIs(t, err, idx.ErrInvalid, "input %q", s)
		}
	})

	t.Run("trims whitespace", func(t *testing.T) {
		id := idx.New()
		parsed, err := idx.Parse("  " + id.String() + "  ")
		require.NoError(t, err)
		require.Equal(t, id, parsed)
	})
}

func TestMustParsePanicsOnInvalid(t *testing.T) {
	require.Panics(t, func() { idx.MustParse("nope") })
}
