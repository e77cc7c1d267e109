package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/pedrobarros/ironlog/internal/domain"
)

// MemoryStore implements Store with an in-process map. Values round-trip
// through JSON so tests exercise the same serialization path as SQLiteStore
// and callers never share memory with stored records.
type MemoryStore struct {
	partitions map[string]map[string][]byte

	// FailWrites makes every save return ErrStore. Used by tests that verify
	// in-memory state is not committed when persistence fails.
	FailWrites bool
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{partitions: make(map[string]map[string][]byte)}
}

func (s *MemoryStore) get(ownerID, key string) ([]byte, bool) {
	owner, ok := s.partitions[ownerID]
	if !ok {
		return nil, false
	}
	raw, ok := owner[key]
	return raw, ok
}

func (s *MemoryStore) set(ownerID, key string, v any) error {
	if s.FailWrites {
		return fmt.Errorf("%w: writes disabled", ErrStore)
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("%w: encoding %s: %v", ErrStore, key, err)
	}
	owner, ok := s.partitions[ownerID]
	if !ok {
		owner = make(map[string][]byte)
		s.partitions[ownerID] = owner
	}
	owner[key] = raw
	return nil
}

func (s *MemoryStore) GetWorkouts(_ context.Context, ownerID string) ([]domain.Workout, error) {
	raw, found := s.get(ownerID, keyWorkouts)
	if !found {
		return nil, nil
	}
	var workouts []domain.Workout
	if err := json.Unmarshal(raw, &workouts); err != nil {
		return nil, fmt.Errorf("%w: decoding workouts: %v", ErrStore, err)
	}
	return workouts, nil
}

func (s *MemoryStore) SaveWorkouts(_ context.Context, ownerID string, workouts []domain.Workout) error {
	return s.set(ownerID, keyWorkouts, workouts)
}

func (s *MemoryStore) GetProgress(_ context.Context, ownerID, workoutID string) (*domain.ProgressRecord, error) {
	raw, found := s.get(ownerID, progressKey(workoutID))
	if !found {
		return nil, nil
	}
	var rec domain.ProgressRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil, fmt.Errorf("%w: decoding progress: %v", ErrStore, err)
	}
	return &rec, nil
}

func (s *MemoryStore) SaveProgress(_ context.Context, ownerID, workoutID string, rec domain.ProgressRecord) error {
	return s.set(ownerID, progressKey(workoutID), rec)
}

func (s *MemoryStore) DeleteProgress(_ context.Context, ownerID, workoutID string) error {
	if s.FailWrites {
		return fmt.Errorf("%w: writes disabled", ErrStore)
	}
	if owner, ok := s.partitions[ownerID]; ok {
		delete(owner, progressKey(workoutID))
	}
	return nil
}

func (s *MemoryStore) GetCompletedSet(_ context.Context, ownerID string) (map[string]bool, error) {
	set := make(map[string]bool)
	raw, found := s.get(ownerID, keyCompletedSet)
	if !found {
		return set, nil
	}
	if err := json.Unmarshal(raw, &set); err != nil {
		return nil, fmt.Errorf("%w: decoding completed set: %v", ErrStore, err)
	}
	return set, nil
}

func (s *MemoryStore) SaveCompletedSet(_ context.Context, ownerID string, set map[string]bool) error {
	return s.set(ownerID, keyCompletedSet, set)
}

func (s *MemoryStore) GetPersonalRecords(_ context.Context, ownerID string) (domain.PersonalRecords, error) {
	records := make(domain.PersonalRecords)
	raw, found := s.get(ownerID, keyRecords)
	if !found {
		return records, nil
	}
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("%w: decoding personal records: %v", ErrStore, err)
	}
	return records, nil
}

func (s *MemoryStore) SavePersonalRecords(_ context.Context, ownerID string, records domain.PersonalRecords) error {
	return s.set(ownerID, keyRecords, records)
}

func (s *MemoryStore) GetAchievements(_ context.Context, ownerID string) (domain.AchievementSet, error) {
	set := make(domain.AchievementSet)
	raw, found := s.get(ownerID, keyAchievements)
	if !found {
		return set, nil
	}
	if err := json.Unmarshal(raw, &set); err != nil {
		return nil, fmt.Errorf("%w: decoding achievements: %v", ErrStore, err)
	}
	return set, nil
}

func (s *MemoryStore) SaveAchievements(_ context.Context, ownerID string, set domain.AchievementSet) error {
	return s.set(ownerID, keyAchievements, set)
}
