package store

import (
	"context"
	"testing"
	"time"

	"github.com/pedrobarros/ironlog/internal/domain"
	"github.com/pedrobarros/ironlog/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// storeUnderTest runs the same contract checks against every Store
// implementation.
func storeUnderTest(t *testing.T, name string, s Store) {
	ctx := context.Background()

	t.Run(name+"/workouts roundtrip", func(t *testing.T) {
		got, err := s.GetWorkouts(ctx, "owner-a")
		require.NoError(t, err)
		assert.Empty(t, got)

		scheduled := testutil.Date(2025, time.May, 19)
		w := testutil.NewTestWorkout("Treino - Peito",
			testutil.WithOwner("owner-a"),
			testutil.WithScheduledDate(scheduled),
		)
		require.NoError(t, s.SaveWorkouts(ctx, "owner-a", []domain.Workout{w}))

		got, err = s.GetWorkouts(ctx, "owner-a")
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, w.ID, got[0].ID)
		assert.Equal(t, "Treino - Peito", got[0].Name)
		require.NotNil(t, got[0].ScheduledDate)
		assert.True(t, scheduled.Equal(*got[0].ScheduledDate))
		assert.Len(t, got[0].Exercises, 3)
	})

	t.Run(name+"/owner namespaces are isolated", func(t *testing.T) {
		w := testutil.NewTestWorkout("Mine", testutil.WithOwner("owner-b"))
		require.NoError(t, s.SaveWorkouts(ctx, "owner-b", []domain.Workout{w}))

		got, err := s.GetWorkouts(ctx, "owner-c")
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run(name+"/progress lifecycle", func(t *testing.T) {
		rec, err := s.GetProgress(ctx, "owner-a", "w1")
		require.NoError(t, err)
		assert.Nil(t, rec, "absent progress is nil, not an error")

		p := domain.NewProgressRecord("w1")
		p.ExerciseCompletion[0] = true
		p.Recompute(2)
		p.LastUpdated = time.Now().UTC()
		require.NoError(t, s.SaveProgress(ctx, "owner-a", "w1", p))

		rec, err = s.GetProgress(ctx, "owner-a", "w1")
		require.NoError(t, err)
		require.NotNil(t, rec)
		assert.Equal(t, 50, rec.OverallProgress)
		assert.True(t, rec.ExerciseCompletion[0])

		require.NoError(t, s.DeleteProgress(ctx, "owner-a", "w1"))
		rec, err = s.GetProgress(ctx, "owner-a", "w1")
		require.NoError(t, err)
		assert.Nil(t, rec)
	})

	t.Run(name+"/completed set roundtrip", func(t *testing.T) {
		set, err := s.GetCompletedSet(ctx, "owner-a")
		require.NoError(t, err)
		assert.Empty(t, set)

		set["w1"] = true
		require.NoError(t, s.SaveCompletedSet(ctx, "owner-a", set))

		got, err := s.GetCompletedSet(ctx, "owner-a")
		require.NoError(t, err)
		assert.True(t, got["w1"])
	})

	t.Run(name+"/personal records roundtrip", func(t *testing.T) {
		records, err := s.GetPersonalRecords(ctx, "owner-a")
		require.NoError(t, err)
		assert.Empty(t, records)

		records.Improve("Supino", 60)
		require.NoError(t, s.SavePersonalRecords(ctx, "owner-a", records))

		got, err := s.GetPersonalRecords(ctx, "owner-a")
		require.NoError(t, err)
		assert.Equal(t, 60.0, got["Supino"])
	})

	t.Run(name+"/achievements roundtrip", func(t *testing.T) {
		set, err := s.GetAchievements(ctx, "owner-a")
		require.NoError(t, err)
		assert.Empty(t, set)

		set["workouts_1"] = true
		require.NoError(t, s.SaveAchievements(ctx, "owner-a", set))

		got, err := s.GetAchievements(ctx, "owner-a")
		require.NoError(t, err)
		assert.True(t, got["workouts_1"])
	})
}

func TestSQLiteStore(t *testing.T) {
	database := testutil.NewTestDB(t)
	storeUnderTest(t, "sqlite", NewSQLiteStore(database))
}

func TestMemoryStore(t *testing.T) {
	storeUnderTest(t, "memory", NewMemoryStore())
}

func TestSQLiteStore_LegacyNumericIDs(t *testing.T) {
	database := testutil.NewTestDB(t)
	ctx := context.Background()

	// A legacy partition written by an older client with numeric ids.
	_, err := database.ExecContext(ctx,
		`INSERT INTO partitions (owner_id, key, value, updated_at) VALUES (?, ?, ?, ?)`,
		"owner-legacy", "workouts",
		`[{"id": 101, "ownerId": 7, "name": "Treino - Costas", "exercises": []}]`,
		time.Now().UTC().Format(time.RFC3339))
	require.NoError(t, err)

	s := NewSQLiteStore(database)
	got, err := s.GetWorkouts(ctx, "owner-legacy")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "101", got[0].ID)
	assert.Equal(t, "7", got[0].OwnerID)
}

func TestMemoryStore_FailWrites(t *testing.T) {
	s := NewMemoryStore()
	s.FailWrites = true

	err := s.SaveWorkouts(context.Background(), "owner-a", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrStore)
}
