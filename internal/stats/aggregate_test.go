package stats

import (
	"testing"
	"time"

	"github.com/pedrobarros/ironlog/internal/domain"
	"github.com/pedrobarros/ironlog/internal/testutil"
	"github.com/stretchr/testify/assert"
)

var statsNow = time.Date(2025, 5, 21, 12, 0, 0, 0, time.UTC)

func completedSetOf(workouts ...domain.Workout) map[string]bool {
	set := make(map[string]bool)
	for _, w := range workouts {
		set[w.ID] = true
	}
	return set
}

func TestGeneral_WeekWindowBoundary(t *testing.T) {
	inside := testutil.NewTestWorkout("in", testutil.WithCompletedAt(statsNow.AddDate(0, 0, -7)))
	outside := testutil.NewTestWorkout("out", testutil.WithCompletedAt(statsNow.AddDate(0, 0, -8)))
	workouts := []domain.Workout{inside, outside}

	s := General(workouts, completedSetOf(inside, outside), domain.PeriodWeek, statsNow)
	assert.Equal(t, 1, s.TotalWorkouts, "exactly 7 days ago is in, 8 days ago is out")
}

func TestGeneral_OnlyCompletedCount(t *testing.T) {
	done := testutil.NewTestWorkout("done", testutil.WithCompletedAt(statsNow))
	pending := testutil.NewTestWorkout("pending", testutil.WithScheduledDate(statsNow))
	workouts := []domain.Workout{done, pending}

	s := General(workouts, completedSetOf(done), domain.PeriodAll, statsNow)
	assert.Equal(t, 1, s.TotalWorkouts)
}

func TestGeneral_DurationFallback(t *testing.T) {
	explicit := testutil.NewTestWorkout("explicit",
		testutil.WithCompletedAt(statsNow),
		testutil.WithDuration(45),
	)
	estimated := testutil.NewTestWorkout("estimated",
		testutil.WithCompletedAt(statsNow),
		testutil.WithExercises(4),
	)
	workouts := []domain.Workout{explicit, estimated}

	s := General(workouts, completedSetOf(explicit, estimated), domain.PeriodAll, statsNow)
	assert.Equal(t, 2, s.TotalWorkouts)
	assert.Equal(t, 45+4*domain.DefaultMinutesPerExercise, s.TotalMinutes)
	assert.Equal(t, 43, s.AverageMinutes) // round(85/2)
}

func TestGeneral_EmptyIsZero(t *testing.T) {
	s := General(nil, nil, domain.PeriodWeek, statsNow)
	assert.Zero(t, s.TotalWorkouts)
	assert.Zero(t, s.AverageMinutes, "average is defined as 0 with no workouts")
}

func TestGeneral_SkippedNoDateDiagnostic(t *testing.T) {
	dated := testutil.NewTestWorkout("dated", testutil.WithCompletedAt(statsNow))
	undated := testutil.NewTestWorkout("undated")
	undated.ScheduledDate = nil
	workouts := []domain.Workout{dated, undated}

	s := General(workouts, completedSetOf(dated, undated), domain.PeriodAll, statsNow)
	assert.Equal(t, 1, s.TotalWorkouts)
	assert.Equal(t, 1, s.SkippedNoDate, "undated workouts are excluded but counted")
}

func TestGeneral_ScheduledDateFallsBackForAggregation(t *testing.T) {
	w := testutil.NewTestWorkout("sched-only", testutil.WithScheduledDate(statsNow.AddDate(0, 0, -2)))
	s := General([]domain.Workout{w}, completedSetOf(w), domain.PeriodWeek, statsNow)
	assert.Equal(t, 1, s.TotalWorkouts)
}

func TestGeneral_UnknownPeriodActsAsAllTime(t *testing.T) {
	old := testutil.NewTestWorkout("old", testutil.WithCompletedAt(statsNow.AddDate(-2, 0, 0)))
	s := General([]domain.Workout{old}, completedSetOf(old), domain.ParsePeriod("everything"), statsNow)
	assert.Equal(t, 1, s.TotalWorkouts)
}

func TestMuscleGroups_MergesDuplicates(t *testing.T) {
	a := testutil.NewTestWorkout("Treino - Peito", testutil.WithCompletedAt(statsNow))
	b := testutil.NewTestWorkout("b", testutil.WithCategory("Peito"), testutil.WithCompletedAt(statsNow))
	c := testutil.NewTestWorkout("Treino - Costas", testutil.WithCompletedAt(statsNow))
	workouts := []domain.Workout{a, b, c}

	groups := MuscleGroups(workouts, completedSetOf(a, b, c), domain.PeriodAll, statsNow)
	assert.ElementsMatch(t, []MuscleGroupCount{
		{Name: "Peito", Value: 2},
		{Name: "Costas", Value: 1},
	}, groups)
}

func TestMuscleGroups_RespectsPeriod(t *testing.T) {
	recent := testutil.NewTestWorkout("Treino - Peito", testutil.WithCompletedAt(statsNow.AddDate(0, 0, -1)))
	old := testutil.NewTestWorkout("Treino - Costas", testutil.WithCompletedAt(statsNow.AddDate(0, 0, -20)))
	workouts := []domain.Workout{recent, old}

	groups := MuscleGroups(workouts, completedSetOf(recent, old), domain.PeriodWeek, statsNow)
	assert.Equal(t, []MuscleGroupCount{{Name: "Peito", Value: 1}}, groups)
}

func TestDailySeries(t *testing.T) {
	d3 := testutil.NewTestWorkout("a",
		testutil.WithCompletedAt(testutil.Date(2025, time.May, 3)),
		testutil.WithDuration(30),
	)
	d3b := testutil.NewTestWorkout("b",
		testutil.WithCompletedAt(testutil.Date(2025, time.May, 3)),
		testutil.WithDuration(20),
	)
	d17 := testutil.NewTestWorkout("c",
		testutil.WithCompletedAt(testutil.Date(2025, time.May, 17)),
		testutil.WithDuration(40),
	)
	otherMonth := testutil.NewTestWorkout("d",
		testutil.WithCompletedAt(testutil.Date(2025, time.April, 3)),
	)
	workouts := []domain.Workout{d3, d3b, d17, otherMonth}

	series := DailySeries(workouts, completedSetOf(d3, d3b, d17, otherMonth), time.May, 2025)
	assert.Len(t, series, 31)

	assert.Equal(t, DayBucket{Day: 3, Workouts: 2, Minutes: 50}, series[2])
	assert.Equal(t, DayBucket{Day: 17, Workouts: 1, Minutes: 40}, series[16])
	assert.Equal(t, DayBucket{Day: 1}, series[0])
}

func TestDailySeries_EmptyMonthStaysEmpty(t *testing.T) {
	series := DailySeries(nil, nil, time.February, 2025)
	assert.Len(t, series, 28)
	for _, b := range series {
		assert.Zero(t, b.Workouts, "empty data must not be replaced by placeholders")
		assert.Zero(t, b.Minutes)
	}
}

func TestDailySeries_LeapFebruary(t *testing.T) {
	series := DailySeries(nil, nil, time.February, 2024)
	assert.Len(t, series, 29)
}
