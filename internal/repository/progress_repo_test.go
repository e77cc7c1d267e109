package repository

import (
	"context"
	"testing"

	"github.com/pedrobarros/ironlog/internal/domain"
	"github.com/pedrobarros/ironlog/internal/store"
	"github.com/pedrobarros/ironlog/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func progressRepoSetup(t *testing.T) (*ProgressRepo, *WorkoutRepo, string) {
	t.Helper()
	s := store.NewMemoryStore()
	ctx := context.Background()
	workouts, err := NewWorkoutRepo(ctx, s, testutil.TestOwner)
	require.NoError(t, err)

	w, err := workouts.Add(ctx, domain.Workout{
		Name: "Treino - Peito",
		Exercises: []domain.ExerciseRef{
			{Name: "Supino", Sets: 4, Reps: 8},
			{Name: "Crucifixo", Sets: 3, Reps: 12},
			{Name: "Paralelas", Sets: 3, Reps: 10},
			{Name: "Crossover", Sets: 3, Reps: 15},
		},
	})
	require.NoError(t, err)

	return NewProgressRepo(s, workouts), workouts, w.ID
}

func TestProgressRepo_GetProgress_ZeroedDefault(t *testing.T) {
	progress, _, workoutID := progressRepoSetup(t)

	rec, err := progress.GetProgress(context.Background(), workoutID)
	require.NoError(t, err)
	assert.Equal(t, 0, rec.OverallProgress)
	assert.Empty(t, rec.ExerciseCompletion)
	assert.NotNil(t, rec.ExerciseCompletion, "callers can index without nil checks")
}

func TestProgressRepo_IsExerciseCompleted_NoRecord(t *testing.T) {
	progress, _, workoutID := progressRepoSetup(t)

	done, err := progress.IsExerciseCompleted(context.Background(), workoutID, 0)
	require.NoError(t, err)
	assert.False(t, done)
}

func TestProgressRepo_ToggleExercise_Percentage(t *testing.T) {
	progress, _, workoutID := progressRepoSetup(t)
	ctx := context.Background()

	rec, err := progress.ToggleExercise(ctx, workoutID, 0, true)
	require.NoError(t, err)
	assert.Equal(t, 25, rec.OverallProgress)

	rec, err = progress.ToggleExercise(ctx, workoutID, 1, true)
	require.NoError(t, err)
	assert.Equal(t, 50, rec.OverallProgress)

	rec, err = progress.ToggleExercise(ctx, workoutID, 1, false)
	require.NoError(t, err)
	assert.Equal(t, 25, rec.OverallProgress)
	assert.False(t, rec.LastUpdated.IsZero())
}

func TestProgressRepo_ToggleExercise_Idempotent(t *testing.T) {
	progress, _, workoutID := progressRepoSetup(t)
	ctx := context.Background()

	first, err := progress.ToggleExercise(ctx, workoutID, 2, true)
	require.NoError(t, err)
	second, err := progress.ToggleExercise(ctx, workoutID, 2, true)
	require.NoError(t, err)

	assert.Equal(t, first.OverallProgress, second.OverallProgress)
}

func TestProgressRepo_ToggleExercise_UnknownWorkout(t *testing.T) {
	progress, _, _ := progressRepoSetup(t)

	_, err := progress.ToggleExercise(context.Background(), "nope", 0, true)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestProgressRepo_ToggleExercise_IndexOutOfRange(t *testing.T) {
	progress, _, workoutID := progressRepoSetup(t)
	ctx := context.Background()

	_, err := progress.ToggleExercise(ctx, workoutID, 4, true)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)

	_, err = progress.ToggleExercise(ctx, workoutID, -1, true)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestProgressRepo_DenominatorFollowsWorkoutEdits(t *testing.T) {
	progress, workouts, workoutID := progressRepoSetup(t)
	ctx := context.Background()

	_, err := progress.ToggleExercise(ctx, workoutID, 3, true)
	require.NoError(t, err)

	// The workout shrinks to two exercises after progress began: the stale
	// index 3 no longer counts, but stays recorded.
	exercises := []domain.ExerciseRef{
		{Name: "Supino"},
		{Name: "Crucifixo"},
	}
	_, err = workouts.Update(ctx, workoutID, WorkoutPatch{Exercises: &exercises})
	require.NoError(t, err)

	rec, err := progress.ToggleExercise(ctx, workoutID, 0, true)
	require.NoError(t, err)
	assert.Equal(t, 50, rec.OverallProgress)
	assert.True(t, rec.ExerciseCompletion[3], "stale index retained for audit")
}

func TestProgressRepo_GetProgress_RecomputesAfterWorkoutEdit(t *testing.T) {
	progress, workouts, workoutID := progressRepoSetup(t)
	ctx := context.Background()

	rec, err := progress.ToggleExercise(ctx, workoutID, 0, true)
	require.NoError(t, err)
	require.Equal(t, 25, rec.OverallProgress)

	// Shrinking to two exercises must be visible on the next read, without
	// waiting for another toggle to refresh the cached percentage.
	exercises := []domain.ExerciseRef{
		{Name: "Supino"},
		{Name: "Crucifixo"},
	}
	_, err = workouts.Update(ctx, workoutID, WorkoutPatch{Exercises: &exercises})
	require.NoError(t, err)

	rec2, err := progress.GetProgress(ctx, workoutID)
	require.NoError(t, err)
	assert.Equal(t, 50, rec2.OverallProgress)
}

func TestProgressRepo_ToggleWorkoutCompletion(t *testing.T) {
	progress, _, workoutID := progressRepoSetup(t)
	ctx := context.Background()

	require.NoError(t, progress.ToggleWorkoutCompletion(ctx, workoutID, true))
	set, err := progress.CompletedSet(ctx)
	require.NoError(t, err)
	assert.True(t, set[workoutID])

	require.NoError(t, progress.ToggleWorkoutCompletion(ctx, workoutID, false))
	set, err = progress.CompletedSet(ctx)
	require.NoError(t, err)
	_, present := set[workoutID]
	assert.False(t, present, "absence means not completed")
}

func TestProgressRepo_ToggleWorkoutCompletion_UnknownWorkout(t *testing.T) {
	progress, _, _ := progressRepoSetup(t)

	err := progress.ToggleWorkoutCompletion(context.Background(), "nope", true)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestProgressRepo_CompletionIndependentOfExerciseTicks(t *testing.T) {
	progress, _, workoutID := progressRepoSetup(t)
	ctx := context.Background()

	// Fully completed workout without a single exercise ticked.
	require.NoError(t, progress.ToggleWorkoutCompletion(ctx, workoutID, true))

	rec, err := progress.GetProgress(ctx, workoutID)
	require.NoError(t, err)
	assert.Equal(t, 0, rec.OverallProgress)

	// And all exercises ticked does not mark the workout completed.
	require.NoError(t, progress.ToggleWorkoutCompletion(ctx, workoutID, false))
	for i := 0; i < 4; i++ {
		_, err := progress.ToggleExercise(ctx, workoutID, i, true)
		require.NoError(t, err)
	}
	set, err := progress.CompletedSet(ctx)
	require.NoError(t, err)
	assert.False(t, set[workoutID])
}

func TestRecordRepo_LogAndCount(t *testing.T) {
	s := store.NewMemoryStore()
	ctx := context.Background()
	records := NewRecordRepo(s, testutil.TestOwner)

	improved, err := records.Log(ctx, "Supino", 60)
	require.NoError(t, err)
	assert.True(t, improved)

	improved, err = records.Log(ctx, "Supino", 55)
	require.NoError(t, err)
	assert.False(t, improved, "lower weight never lowers the best")

	improved, err = records.Log(ctx, "Agachamento", 100)
	require.NoError(t, err)
	assert.True(t, improved)

	count, err := records.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	all, err := records.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, 60.0, all["Supino"])
}

func TestRecordRepo_Validation(t *testing.T) {
	records := NewRecordRepo(store.NewMemoryStore(), testutil.TestOwner)
	ctx := context.Background()

	_, err := records.Log(ctx, "", 50)
	assert.ErrorIs(t, err, ErrValidation)

	_, err = records.Log(ctx, "Supino", 0)
	assert.ErrorIs(t, err, ErrValidation)
}
