package formatter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/pedrobarros/ironlog/internal/domain"
	"github.com/pedrobarros/ironlog/internal/testutil"
)

func TestFormatWorkoutList(t *testing.T) {
	workouts := []domain.Workout{
		testutil.NewTestWorkout("Push day", testutil.WithID("w-1"), testutil.WithCategory("chest")),
		testutil.NewTestWorkout("Leg day", testutil.WithID("w-2")),
	}
	completed := map[string]bool{"w-1": true}

	out := FormatWorkoutList(workouts, completed)
	assert.Contains(t, out, "Push day")
	assert.Contains(t, out, "Leg day")
	assert.Contains(t, out, "Chest")
	assert.Contains(t, out, "Done")
	assert.Contains(t, out, "Pending")
}

func TestFormatWorkoutDetail(t *testing.T) {
	w := testutil.NewTestWorkout("Pull day",
		testutil.WithCompletedAt(testutil.Date(2025, time.May, 10)),
		testutil.WithExercises(2),
	)
	rec := domain.NewProgressRecord(w.ID)
	rec.ExerciseCompletion[0] = true
	rec.OverallProgress = 50

	out := FormatWorkoutDetail(&w, rec, true)
	assert.Contains(t, out, "Pull day")
	assert.Contains(t, out, "50%")
	assert.Contains(t, out, "✔")
	assert.Contains(t, out, "○")
}

func TestFormatWorkoutDetail_NoDate(t *testing.T) {
	w := testutil.NewTestWorkout("Unscheduled")
	out := FormatWorkoutDetail(&w, domain.NewProgressRecord(w.ID), false)
	assert.NotContains(t, out, "DATE")
}
