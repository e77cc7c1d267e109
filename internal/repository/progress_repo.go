package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/pedrobarros/ironlog/internal/domain"
	"github.com/pedrobarros/ironlog/internal/store"
)

// ProgressRepo tracks per-exercise completion and the authoritative
// completed-workout set. Unlike WorkoutRepo it holds no snapshot: progress
// records and the completed set are read through the adapter on every call,
// so a cascade performed by WorkoutRepo can never leave a stale cache behind.
type ProgressRepo struct {
	store    store.Store
	ownerID  string
	workouts *WorkoutRepo
}

// NewProgressRepo creates a ProgressRepo sharing the WorkoutRepo's owner scope.
func NewProgressRepo(s store.Store, workouts *WorkoutRepo) *ProgressRepo {
	return &ProgressRepo{store: s, ownerID: workouts.OwnerID(), workouts: workouts}
}

// GetProgress returns the progress record for a workout, or a zeroed record
// when none exists yet. Absence is not an error.
func (r *ProgressRepo) GetProgress(ctx context.Context, workoutID string) (domain.ProgressRecord, error) {
	stored, err := r.store.GetProgress(ctx, r.ownerID, workoutID)
	if err != nil {
		return domain.ProgressRecord{}, fmt.Errorf("loading progress: %w", err)
	}

	rec := domain.NewProgressRecord(workoutID)
	if stored != nil {
		rec = *stored
		if rec.ExerciseCompletion == nil {
			rec.ExerciseCompletion = make(map[int]bool)
		}
	}

	// The stored percentage is only a display cache; the workout's exercise
	// list may have changed since the last toggle.
	if total := r.workouts.ExerciseCount(workoutID); total >= 0 {
		rec.Recompute(total)
	}
	return rec, nil
}

// IsExerciseCompleted reports the completion flag for one exercise index.
// False when no record exists.
func (r *ProgressRepo) IsExerciseCompleted(ctx context.Context, workoutID string, exerciseIndex int) (bool, error) {
	rec, err := r.GetProgress(ctx, workoutID)
	if err != nil {
		return false, err
	}
	return rec.ExerciseCompletion[exerciseIndex], nil
}

// ToggleExercise sets one exercise's completion flag, creating the record
// lazily, and recomputes the overall percentage against the workout's current
// exercise count.
func (r *ProgressRepo) ToggleExercise(ctx context.Context, workoutID string, exerciseIndex int, completed bool) (*domain.ProgressRecord, error) {
	total := r.workouts.ExerciseCount(workoutID)
	if total < 0 {
		return nil, fmt.Errorf("workout %s: %w", workoutID, ErrNotFound)
	}
	if exerciseIndex < 0 || exerciseIndex >= total {
		return nil, fmt.Errorf("%w: exercise index %d out of range [0,%d)", ErrValidation, exerciseIndex, total)
	}

	rec, err := r.GetProgress(ctx, workoutID)
	if err != nil {
		return nil, err
	}
	rec.ExerciseCompletion[exerciseIndex] = completed
	rec.Recompute(total)
	rec.LastUpdated = time.Now().UTC()

	if err := r.store.SaveProgress(ctx, r.ownerID, domain.CanonicalID(workoutID), rec); err != nil {
		return nil, fmt.Errorf("persisting progress: %w", err)
	}
	return &rec, nil
}

// ToggleWorkoutCompletion sets or clears the workout's membership in the
// completed set. This is the authoritative completion signal read by the
// aggregation engine and the achievement evaluator; it is deliberately
// independent of per-exercise ticks.
func (r *ProgressRepo) ToggleWorkoutCompletion(ctx context.Context, workoutID string, completed bool) error {
	canonical := domain.CanonicalID(workoutID)
	if r.workouts.GetByID(canonical) == nil {
		return fmt.Errorf("workout %s: %w", workoutID, ErrNotFound)
	}

	set, err := r.store.GetCompletedSet(ctx, r.ownerID)
	if err != nil {
		return fmt.Errorf("loading completed set: %w", err)
	}
	if completed {
		set[canonical] = true
	} else {
		delete(set, canonical)
	}
	if err := r.store.SaveCompletedSet(ctx, r.ownerID, set); err != nil {
		return fmt.Errorf("persisting completed set: %w", err)
	}
	return nil
}

// CompletedSet returns the owner's completed-workout id set.
func (r *ProgressRepo) CompletedSet(ctx context.Context) (map[string]bool, error) {
	set, err := r.store.GetCompletedSet(ctx, r.ownerID)
	if err != nil {
		return nil, fmt.Errorf("loading completed set: %w", err)
	}
	return set, nil
}
