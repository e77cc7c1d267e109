package service

import (
	"context"
	"time"

	"github.com/pedrobarros/ironlog/internal/domain"
	"github.com/pedrobarros/ironlog/internal/repository"
	"github.com/pedrobarros/ironlog/internal/stats"
)

type WorkoutService interface {
	List(ctx context.Context) ([]domain.Workout, error)
	Get(ctx context.Context, id string) (*domain.Workout, error)
	Create(ctx context.Context, draft domain.Workout) (*domain.Workout, error)
	Update(ctx context.Context, id string, patch repository.WorkoutPatch) (*domain.Workout, error)
	Delete(ctx context.Context, id string) error
}

type ProgressService interface {
	Progress(ctx context.Context, workoutID string) (domain.ProgressRecord, error)
	IsExerciseCompleted(ctx context.Context, workoutID string, exerciseIndex int) (bool, error)
	ToggleExercise(ctx context.Context, workoutID string, exerciseIndex int, completed bool) (*domain.ProgressRecord, error)
	SetWorkoutCompleted(ctx context.Context, workoutID string, completed bool) error
	CompletedSet(ctx context.Context) (map[string]bool, error)
}

// StreakSummary pairs the two streak figures computed from the same history.
type StreakSummary struct {
	Current int
	Longest int
}

type StatsService interface {
	General(ctx context.Context, period domain.Period) (stats.GeneralStats, error)
	MuscleGroups(ctx context.Context, period domain.Period) ([]stats.MuscleGroupCount, error)
	Daily(ctx context.Context, month time.Month, year int) ([]stats.DayBucket, error)
	Streaks(ctx context.Context) (StreakSummary, error)
}

type RecordService interface {
	// Log stores a lifted weight and reports whether it set a new best.
	Log(ctx context.Context, exercise string, weightKg float64) (bool, error)
	List(ctx context.Context) (domain.PersonalRecords, error)
}

// AchievementView is one achievement with its unlocked state for display.
type AchievementView struct {
	Key      string
	Label    string
	Unlocked bool
}

type AchievementService interface {
	// Evaluate re-derives the achievement set from current history and
	// returns the keys newly unlocked by this call.
	Evaluate(ctx context.Context) ([]string, error)
	All(ctx context.Context) ([]AchievementView, error)
}
