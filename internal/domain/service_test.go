package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestUrgencyScore(t *testing.T) {
	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	t.Run("completed todos score zero", func(t *testing.T) {
		todo := testTodo(t, true, PriorityHigh, now.AddDate(0, 0, -30))
		require.Zero(t, UrgencyScore(todo, now))
	})

	t.Run("fresh todo scores its priority weight", func(t *testing.T) {
		todo := testTodo(t, false, PriorityHigh, now)
		require.InDelta(t, 3.0, UrgencyScore(todo, now), 1e-9)
	})

	t.Run("one week of age doubles the score", func(t *testing.T) {
		todo := testTodo(t, false, PriorityMedium, now.AddDate(0, 0, -7))
		require.InDelta(t, 4.0, UrgencyScore(todo, now), 1e-9)
	})

	t.Run("age multiplier caps at three weeks-equivalent", func(t *testing.T) {
		todo := testTodo(t, false, PriorityLow, now.AddDate(0, 0, -365))
		require.InDelta(t, 4.0, UrgencyScore(todo, now), 1e-9)
	})
}

func TestIsOverdueMatchesSpecification(t *testing.T) {
	created := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	todo := testTodo(t, false, PriorityMedium, created)

	for _, days := range []int{0, 7, 8, 30} {
		ref := created.AddDate(0, 0, days)
		require.Equal(t,
			OverdueSpec{Reference: ref}.IsSatisfiedBy(todo),
			IsOverdue(todo, ref),
			"days=%d", days)
	}
}

func TestCanComplete(t *testing.T) {
	now := time.Now()

	check := CanComplete(testTodo(t, false, PriorityLow, now))
	require.True(t, check.CanComplete)
	require.Empty(t, check.Reason)

	check = CanComplete(testTodo(t, true, PriorityLow, now))
	require.False(t, check.CanComplete)
	require.NotEmpty(t, check.Reason)
}

func TestSortByPriority(t *testing.T) {
	now := time.Now()

	doneHigh := testTodo(t, true, PriorityHigh, now)
	activeLow := testTodo(t, false, PriorityLow, now)
	activeHigh := testTodo(t, false, PriorityHigh, now)
	doneHigh.ID, activeLow.ID, activeHigh.ID = 1, 2, 3

	in := []Todo{doneHigh, activeLow, activeHigh}
	out := SortByPriority(in, now)

	require.Equal(t, activeHigh.ID, out[0].ID)
	require.Equal(t, activeLow.ID, out[1].ID)
	require.Equal(t, doneHigh.ID, out[2].ID)

	// Input order is preserved.
	require.Equal(t, doneHigh.ID, in[0].ID)
	require.Equal(t, activeLow.ID, in[1].ID)
	require.Equal(t, activeHigh.ID, in[2].ID)
}

func TestSortByPriorityIsStable(t *testing.T) {
	now := time.Now()
	a := testTodo(t, false, PriorityMedium, now)
	b := testTodo(t, false, PriorityMedium, now)
	a.ID, b.ID = 10, 20

	out := SortByPriority([]Todo{a, b}, now)
	require.Equal(t, a.ID, out[0].ID)
	require.Equal(t, b.ID, out[1].ID)
}

func TestComputeStats(t *testing.T) {
	now := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)

	activeHigh := testTodo(t, false, PriorityHigh, now)
	doneMedium := testTodo(t, true, PriorityMedium, now)
	overdueLow := testTodo(t, false, PriorityLow, now.AddDate(0, 0, -10))

	s := ComputeStats([]Todo{activeHigh, doneMedium, overdueLow}, now)
	require.Equal(t, Stats{
		Total:        3,
		Active:       2,
		Completed:    1,
		Overdue:      1,
		HighPriority: 1,
	}, s)

	require.Equal(t, Stats{}, ComputeStats(nil, now))
}
