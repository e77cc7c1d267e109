package repository

import (
	"context"
	"fmt"

	"github.com/pedrobarros/ironlog/internal/domain"
	"github.com/pedrobarros/ironlog/internal/store"
)

// RecordRepo persists the owner's personal records (best weight per exercise).
type RecordRepo struct {
	store   store.Store
	ownerID string
}

// NewRecordRepo creates a RecordRepo scoped to one owner.
func NewRecordRepo(s store.Store, ownerID string) *RecordRepo {
	return &RecordRepo{store: s, ownerID: domain.CanonicalID(ownerID)}
}

// List returns all personal records.
func (r *RecordRepo) List(ctx context.Context) (domain.PersonalRecords, error) {
	records, err := r.store.GetPersonalRecords(ctx, r.ownerID)
	if err != nil {
		return nil, fmt.Errorf("loading personal records: %w", err)
	}
	return records, nil
}

// Log records a lifted weight for an exercise. The stored best only moves on
// a strict improvement; equal or lower weights leave it unchanged. Reports
// whether a new best was set.
func (r *RecordRepo) Log(ctx context.Context, exercise string, weightKg float64) (bool, error) {
	if exercise == "" {
		return false, fmt.Errorf("%w: exercise name is required", ErrValidation)
	}
	if weightKg <= 0 {
		return false, fmt.Errorf("%w: weight must be positive", ErrValidation)
	}

	records, err := r.List(ctx)
	if err != nil {
		return false, err
	}
	if !records.Improve(exercise, weightKg) {
		return false, nil
	}
	if err := r.store.SavePersonalRecords(ctx, r.ownerID, records); err != nil {
		return false, fmt.Errorf("persisting personal records: %w", err)
	}
	return true, nil
}

// Count returns how many exercises have a recorded best.
func (r *RecordRepo) Count(ctx context.Context) (int, error) {
	records, err := r.List(ctx)
	if err != nil {
		return 0, err
	}
	return len(records), nil
}
