package repository

import (
	"context"
	"fmt"

	"github.com/pedrobarros/ironlog/internal/domain"
	"github.com/pedrobarros/ironlog/internal/store"
)

// AchievementRepo persists the owner's unlocked achievement flags.
type AchievementRepo struct {
	store   store.Store
	ownerID string
}

// NewAchievementRepo creates an AchievementRepo scoped to one owner.
func NewAchievementRepo(s store.Store, ownerID string) *AchievementRepo {
	return &AchievementRepo{store: s, ownerID: domain.CanonicalID(ownerID)}
}

// Get returns the stored achievement set, empty when none exists.
func (r *AchievementRepo) Get(ctx context.Context) (domain.AchievementSet, error) {
	set, err := r.store.GetAchievements(ctx, r.ownerID)
	if err != nil {
		return nil, fmt.Errorf("loading achievements: %w", err)
	}
	return set, nil
}

// Save replaces the stored achievement set.
func (r *AchievementRepo) Save(ctx context.Context, set domain.AchievementSet) error {
	if err := r.store.SaveAchievements(ctx, r.ownerID, set); err != nil {
		return fmt.Errorf("persisting achievements: %w", err)
	}
	return nil
}
