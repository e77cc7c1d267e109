package stats

import (
	"testing"
	"time"

	"github.com/pedrobarros/ironlog/internal/domain"
	"github.com/pedrobarros/ironlog/internal/testutil"
	"github.com/stretchr/testify/assert"
)

func daysOf(dates ...string) map[string]bool {
	days := make(map[string]bool)
	for _, d := range dates {
		days[d] = true
	}
	return days
}

func TestCurrentStreak_ThreeConsecutiveDays(t *testing.T) {
	days := daysOf("2025-05-19", "2025-05-20", "2025-05-21")
	today := testutil.Date(2025, time.May, 21)

	assert.Equal(t, 3, CurrentStreak(days, today))
}

func TestCurrentStreak_GraceDay(t *testing.T) {
	// Nothing logged today yet; the streak anchors at yesterday.
	days := daysOf("2025-05-19", "2025-05-20")
	today := testutil.Date(2025, time.May, 21)

	assert.Equal(t, 2, CurrentStreak(days, today))
}

func TestCurrentStreak_BrokenBeyondGrace(t *testing.T) {
	days := daysOf("2025-05-18", "2025-05-19")
	today := testutil.Date(2025, time.May, 21)

	assert.Equal(t, 0, CurrentStreak(days, today))
}

func TestCurrentStreak_StopsAtFirstGap(t *testing.T) {
	days := daysOf("2025-05-15", "2025-05-16", "2025-05-18", "2025-05-19", "2025-05-20", "2025-05-21")
	today := testutil.Date(2025, time.May, 21)

	assert.Equal(t, 4, CurrentStreak(days, today))
}

func TestCurrentStreak_Empty(t *testing.T) {
	assert.Equal(t, 0, CurrentStreak(map[string]bool{}, testutil.Date(2025, time.May, 21)))
}

func TestLongestStreak(t *testing.T) {
	cases := []struct {
		name string
		days map[string]bool
		want int
	}{
		{"empty", map[string]bool{}, 0},
		{"single day", daysOf("2025-05-01"), 1},
		{"one run", daysOf("2025-05-01", "2025-05-02", "2025-05-03"), 3},
		{"longest of two runs", daysOf(
			"2025-05-01", "2025-05-02",
			"2025-05-10", "2025-05-11", "2025-05-12", "2025-05-13",
		), 4},
		{"month boundary", daysOf("2025-04-30", "2025-05-01"), 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, LongestStreak(tc.days))
		})
	}
}

func TestLongestStreak_NeverBelowCurrent(t *testing.T) {
	days := daysOf("2025-05-19", "2025-05-20", "2025-05-21")
	today := testutil.Date(2025, time.May, 21)

	assert.GreaterOrEqual(t, LongestStreak(days), CurrentStreak(days, today))
}

func TestCompletedDays_DistinctAndResolvable(t *testing.T) {
	a := testutil.NewTestWorkout("a", testutil.WithCompletedAt(testutil.Date(2025, time.May, 19)))
	b := testutil.NewTestWorkout("b", testutil.WithCompletedAt(testutil.Date(2025, time.May, 19).Add(6*time.Hour)))
	c := testutil.NewTestWorkout("c", testutil.WithScheduledDate(testutil.Date(2025, time.May, 20)))
	undated := testutil.NewTestWorkout("undated")
	notCompleted := testutil.NewTestWorkout("x", testutil.WithCompletedAt(testutil.Date(2025, time.May, 1)))
	workouts := []domain.Workout{a, b, c, undated, notCompleted}

	days := CompletedDays(workouts, completedSetOf(a, b, c, undated))
	assert.Equal(t, daysOf("2025-05-19", "2025-05-20"), days)
}
