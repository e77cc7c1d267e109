// Package store is the persistence adapter boundary of the engine. Every
// record is a JSON-serializable value stored under a (owner, key) pair; the
// substrate behind the contract is irrelevant to the layers above.
package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/pedrobarros/ironlog/internal/domain"
)

// ErrStore marks any adapter failure. Callers assert with errors.Is and must
// not treat in-memory state as saved when they see it.
var ErrStore = errors.New("store operation failed")

// Partition keys within an owner's namespace.
const (
	keyWorkouts     = "workouts"
	keyCompletedSet = "completed"
	keyRecords      = "records"
	keyAchievements = "achievements"
)

// progressKey derives the per-workout progress key.
func progressKey(workoutID string) string {
	return fmt.Sprintf("progress:%s", domain.CanonicalID(workoutID))
}

// Store is the key-value persistence contract consumed by the repositories.
// Implementations must scope all reads and writes to the given owner.
type Store interface {
	GetWorkouts(ctx context.Context, ownerID string) ([]domain.Workout, error)
	SaveWorkouts(ctx context.Context, ownerID string, workouts []domain.Workout) error

	// GetProgress returns nil with no error when no record exists.
	GetProgress(ctx context.Context, ownerID, workoutID string) (*domain.ProgressRecord, error)
	SaveProgress(ctx context.Context, ownerID, workoutID string, rec domain.ProgressRecord) error
	DeleteProgress(ctx context.Context, ownerID, workoutID string) error

	GetCompletedSet(ctx context.Context, ownerID string) (map[string]bool, error)
	SaveCompletedSet(ctx context.Context, ownerID string, set map[string]bool) error

	GetPersonalRecords(ctx context.Context, ownerID string) (domain.PersonalRecords, error)
	SavePersonalRecords(ctx context.Context, ownerID string, records domain.PersonalRecords) error

	GetAchievements(ctx context.Context, ownerID string) (domain.AchievementSet, error)
	SaveAchievements(ctx context.Context, ownerID string, set domain.AchievementSet) error
}
