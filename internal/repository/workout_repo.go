package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/pedrobarros/ironlog/internal/domain"
	"github.com/pedrobarros/ironlog/internal/store"
)

// WorkoutRepo owns the in-memory workout collection for one owner. The
// snapshot is loaded once at construction and is the source of truth for the
// session; every mutation computes the next state, persists it through the
// adapter, and only then commits in memory. A persistence failure leaves the
// snapshot untouched.
type WorkoutRepo struct {
	store    store.Store
	ownerID  string
	workouts []domain.Workout
}

// NewWorkoutRepo loads the owner's workouts from the adapter.
func NewWorkoutRepo(ctx context.Context, s store.Store, ownerID string) (*WorkoutRepo, error) {
	owner := domain.CanonicalID(ownerID)
	workouts, err := s.GetWorkouts(ctx, owner)
	if err != nil {
		return nil, fmt.Errorf("loading workouts: %w", err)
	}
	return &WorkoutRepo{store: s, ownerID: owner, workouts: workouts}, nil
}

// OwnerID returns the owner this repository is scoped to.
func (r *WorkoutRepo) OwnerID() string {
	return r.ownerID
}

// cloneWorkout detaches the exercise slice so callers holding a returned
// workout can never reach the committed snapshot through it.
func cloneWorkout(w domain.Workout) domain.Workout {
	if w.Exercises != nil {
		w.Exercises = append([]domain.ExerciseRef(nil), w.Exercises...)
	}
	return w
}

// List returns a copy of all workouts. Order is unspecified; callers sort.
func (r *WorkoutRepo) List() []domain.Workout {
	out := make([]domain.Workout, len(r.workouts))
	for i, w := range r.workouts {
		out[i] = cloneWorkout(w)
	}
	return out
}

// GetByID returns a copy of the workout, or nil when the id is unknown.
// Lookups never fail; absence is an ordinary outcome.
func (r *WorkoutRepo) GetByID(id string) *domain.Workout {
	if i := r.indexOf(id); i >= 0 {
		w := cloneWorkout(r.workouts[i])
		return &w
	}
	return nil
}

// ExerciseCount returns the current exercise count for a workout, or -1 when
// the id is unknown.
func (r *WorkoutRepo) ExerciseCount(id string) int {
	if w := r.GetByID(id); w != nil {
		return len(w.Exercises)
	}
	return -1
}

// Add stores a new workout. The id, owner, exercise indices and timestamps
// are assigned here; whatever the draft carried for them is ignored.
func (r *WorkoutRepo) Add(ctx context.Context, draft domain.Workout) (*domain.Workout, error) {
	if draft.Name == "" {
		return nil, fmt.Errorf("%w: workout name is required", ErrValidation)
	}
	if draft.OwnerID != "" && domain.CanonicalID(draft.OwnerID) != r.ownerID {
		return nil, fmt.Errorf("%w: draft owner %q does not match session owner", ErrPermissionDenied, draft.OwnerID)
	}

	now := time.Now().UTC()
	w := draft
	w.ID = uuid.New().String()
	w.OwnerID = r.ownerID
	w.CreatedAt = now
	w.UpdatedAt = now
	w.ReindexExercises()

	next := append(r.List(), w)
	if err := r.store.SaveWorkouts(ctx, r.ownerID, next); err != nil {
		return nil, fmt.Errorf("persisting new workout: %w", err)
	}
	r.workouts = next
	return &w, nil
}

// WorkoutPatch is a partial update. Nil fields are left unchanged; id and
// owner can never change. ClearCompletedAt resets the completion timestamp.
type WorkoutPatch struct {
	OwnerID          *string
	Name             *string
	Category         *string
	ScheduledDate    *time.Time
	CompletedAt      *time.Time
	ClearCompletedAt bool
	DurationMin      *int
	Exercises        *[]domain.ExerciseRef
}

// Update merges the patch into the workout.
func (r *WorkoutRepo) Update(ctx context.Context, id string, patch WorkoutPatch) (*domain.Workout, error) {
	i := r.indexOf(id)
	if i < 0 {
		return nil, fmt.Errorf("workout %s: %w", id, ErrNotFound)
	}
	if patch.OwnerID != nil && domain.CanonicalID(*patch.OwnerID) != r.ownerID {
		return nil, fmt.Errorf("%w: patch owner %q does not match session owner", ErrPermissionDenied, *patch.OwnerID)
	}
	if err := r.checkOwnership(&r.workouts[i]); err != nil {
		return nil, err
	}
	if patch.Name != nil && *patch.Name == "" {
		return nil, fmt.Errorf("%w: workout name cannot be empty", ErrValidation)
	}

	next := r.List()
	w := &next[i]
	if patch.Name != nil {
		w.Name = *patch.Name
	}
	if patch.Category != nil {
		w.Category = *patch.Category
	}
	if patch.ScheduledDate != nil {
		d := *patch.ScheduledDate
		w.ScheduledDate = &d
	}
	if patch.ClearCompletedAt {
		w.CompletedAt = nil
	} else if patch.CompletedAt != nil {
		d := *patch.CompletedAt
		w.CompletedAt = &d
	}
	if patch.DurationMin != nil {
		d := *patch.DurationMin
		w.DurationMin = &d
	}
	if patch.Exercises != nil {
		w.Exercises = append([]domain.ExerciseRef(nil), (*patch.Exercises)...)
		w.ReindexExercises()
	}
	w.UpdatedAt = time.Now().UTC()

	if err := r.store.SaveWorkouts(ctx, r.ownerID, next); err != nil {
		return nil, fmt.Errorf("persisting workout update: %w", err)
	}
	r.workouts = next
	updated := next[i]
	return &updated, nil
}

// Remove deletes the workout and cascades its derived state: the progress
// record and the completed-set membership. Repeated removal reports
// ErrNotFound rather than succeeding silently.
func (r *WorkoutRepo) Remove(ctx context.Context, id string) error {
	i := r.indexOf(id)
	if i < 0 {
		return fmt.Errorf("workout %s: %w", id, ErrNotFound)
	}
	if err := r.checkOwnership(&r.workouts[i]); err != nil {
		return err
	}

	next := make([]domain.Workout, 0, len(r.workouts)-1)
	next = append(next, r.workouts[:i]...)
	next = append(next, r.workouts[i+1:]...)

	if err := r.store.SaveWorkouts(ctx, r.ownerID, next); err != nil {
		return fmt.Errorf("persisting workout removal: %w", err)
	}
	r.workouts = next

	canonical := domain.CanonicalID(id)
	if err := r.store.DeleteProgress(ctx, r.ownerID, canonical); err != nil {
		return fmt.Errorf("cascading progress removal: %w", err)
	}

	set, err := r.store.GetCompletedSet(ctx, r.ownerID)
	if err != nil {
		return fmt.Errorf("cascading completed-set removal: %w", err)
	}
	if set[canonical] {
		delete(set, canonical)
		if err := r.store.SaveCompletedSet(ctx, r.ownerID, set); err != nil {
			return fmt.Errorf("cascading completed-set removal: %w", err)
		}
	}
	return nil
}

func (r *WorkoutRepo) indexOf(id string) int {
	canonical := domain.CanonicalID(id)
	for i := range r.workouts {
		if domain.CanonicalID(r.workouts[i].ID) == canonical {
			return i
		}
	}
	return -1
}

// checkOwnership guards against foreign rows that leaked into the partition
// from legacy data sources.
func (r *WorkoutRepo) checkOwnership(w *domain.Workout) error {
	if w.OwnerID != "" && domain.CanonicalID(w.OwnerID) != r.ownerID {
		return fmt.Errorf("%w: workout %s belongs to %q", ErrPermissionDenied, w.ID, w.OwnerID)
	}
	return nil
}
