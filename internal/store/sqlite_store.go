package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/pedrobarros/ironlog/internal/domain"
)

// SQLiteStore implements Store on top of the partitions key-value table.
// Each value is a JSON document; one row per (owner, key).
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore creates a new SQLiteStore.
func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// getValue loads the raw JSON for a key. found is false when the row is absent.
func (s *SQLiteStore) getValue(ctx context.Context, ownerID, key string) ([]byte, bool, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT value FROM partitions WHERE owner_id = ? AND key = ?`, ownerID, key)
	var raw string
	if err := row.Scan(&raw); err != nil {
		if err == sql.ErrNoRows {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("%w: reading %s: %v", ErrStore, key, err)
	}
	return []byte(raw), true, nil
}

// setValue upserts the JSON for a key in a single statement.
func (s *SQLiteStore) setValue(ctx context.Context, ownerID, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("%w: encoding %s: %v", ErrStore, key, err)
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO partitions (owner_id, key, value, updated_at) VALUES (?, ?, ?, ?)
		 ON CONFLICT(owner_id, key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		ownerID, key, string(raw), time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("%w: writing %s: %v", ErrStore, key, err)
	}
	return nil
}

func (s *SQLiteStore) GetWorkouts(ctx context.Context, ownerID string) ([]domain.Workout, error) {
	raw, found, err := s.getValue(ctx, ownerID, keyWorkouts)
	if err != nil || !found {
		return nil, err
	}
	var workouts []domain.Workout
	if err := json.Unmarshal(raw, &workouts); err != nil {
		return nil, fmt.Errorf("%w: decoding workouts: %v", ErrStore, err)
	}
	return workouts, nil
}

func (s *SQLiteStore) SaveWorkouts(ctx context.Context, ownerID string, workouts []domain.Workout) error {
	return s.setValue(ctx, ownerID, keyWorkouts, workouts)
}

func (s *SQLiteStore) GetProgress(ctx context.Context, ownerID, workoutID string) (*domain.ProgressRecord, error) {
	raw, found, err := s.getValue(ctx, ownerID, progressKey(workoutID))
	if err != nil || !found {
		return nil, err
	}
	var rec domain.ProgressRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil, fmt.Errorf("%w: decoding progress: %v", ErrStore, err)
	}
	return &rec, nil
}

func (s *SQLiteStore) SaveProgress(ctx context.Context, ownerID, workoutID string, rec domain.ProgressRecord) error {
	return s.setValue(ctx, ownerID, progressKey(workoutID), rec)
}

func (s *SQLiteStore) DeleteProgress(ctx context.Context, ownerID, workoutID string) error {
	_, err := s.db.ExecContext(ctx,
		`DELETE FROM partitions WHERE owner_id = ? AND key = ?`, ownerID, progressKey(workoutID))
	if err != nil {
		return fmt.Errorf("%w: deleting progress: %v", ErrStore, err)
	}
	return nil
}

func (s *SQLiteStore) GetCompletedSet(ctx context.Context, ownerID string) (map[string]bool, error) {
	raw, found, err := s.getValue(ctx, ownerID, keyCompletedSet)
	if err != nil {
		return nil, err
	}
	set := make(map[string]bool)
	if !found {
		return set, nil
	}
	if err := json.Unmarshal(raw, &set); err != nil {
		return nil, fmt.Errorf("%w: decoding completed set: %v", ErrStore, err)
	}
	return set, nil
}

func (s *SQLiteStore) SaveCompletedSet(ctx context.Context, ownerID string, set map[string]bool) error {
	return s.setValue(ctx, ownerID, keyCompletedSet, set)
}

func (s *SQLiteStore) GetPersonalRecords(ctx context.Context, ownerID string) (domain.PersonalRecords, error) {
	raw, found, err := s.getValue(ctx, ownerID, keyRecords)
	if err != nil {
		return nil, err
	}
	records := make(domain.PersonalRecords)
	if !found {
		return records, nil
	}
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("%w: decoding personal records: %v", ErrStore, err)
	}
	return records, nil
}

func (s *SQLiteStore) SavePersonalRecords(ctx context.Context, ownerID string, records domain.PersonalRecords) error {
	return s.setValue(ctx, ownerID, keyRecords, records)
}

func (s *SQLiteStore) GetAchievements(ctx context.Context, ownerID string) (domain.AchievementSet, error) {
	raw, found, err := s.getValue(ctx, ownerID, keyAchievements)
	if err != nil {
		return nil, err
	}
	set := make(domain.AchievementSet)
	if !found {
		return set, nil
	}
	if err := json.Unmarshal(raw, &set); err != nil {
		return nil, fmt.Errorf("%w: decoding achievements: %v", ErrStore, err)
	}
	return set, nil
}

func (s *SQLiteStore) SaveAchievements(ctx context.Context, ownerID string, set domain.AchievementSet) error {
	return s.setValue(ctx, ownerID, keyAchievements, set)
}
