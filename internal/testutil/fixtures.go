package testutil

import (
	"time"

	"github.com/google/uuid"
	"github.com/pedrobarros/ironlog/internal/domain"
)

// TestOwner is the default owner for fixture workouts.
const TestOwner = "user-1"

type WorkoutOption func(*domain.Workout)

func WithID(id string) WorkoutOption {
	return func(w *domain.Workout) {
		w.ID = id
	}
}

func WithOwner(ownerID string) WorkoutOption {
	return func(w *domain.Workout) {
		w.OwnerID = ownerID
	}
}

func WithCategory(category string) WorkoutOption {
	return func(w *domain.Workout) {
		w.Category = category
	}
}

func WithScheduledDate(d time.Time) WorkoutOption {
	return func(w *domain.Workout) {
		w.ScheduledDate = &d
	}
}

func WithCompletedAt(d time.Time) WorkoutOption {
	return func(w *domain.Workout) {
		w.CompletedAt = &d
	}
}

func WithDuration(minutes int) WorkoutOption {
	return func(w *domain.Workout) {
		w.DurationMin = &minutes
	}
}

// WithExercises replaces the exercise list with n generic exercises.
func WithExercises(n int) WorkoutOption {
	return func(w *domain.Workout) {
		w.Exercises = make([]domain.ExerciseRef, n)
		for i := range w.Exercises {
			w.Exercises[i] = domain.ExerciseRef{Index: i, Name: "Exercise", Sets: 3, Reps: 10}
		}
	}
}

// NewTestWorkout builds a workout owned by TestOwner with three exercises.
func NewTestWorkout(name string, opts ...WorkoutOption) domain.Workout {
	now := time.Now().UTC()
	w := domain.Workout{
		ID:        uuid.New().String(),
		OwnerID:   TestOwner,
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
	WithExercises(3)(&w)
	for _, opt := range opts {
		opt(&w)
	}
	return w
}

// Date is shorthand for a UTC midnight timestamp.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
