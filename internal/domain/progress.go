package domain

import (
	"math"
	"time"
)

// ProgressRecord tracks which exercises of one workout are marked done.
// Exercise indices are the keys; OverallProgress is always derived from the
// booleans and the current exercise count, never stored independently.
type ProgressRecord struct {
	WorkoutID          string       `json:"workoutId"`
	ExerciseCompletion map[int]bool `json:"exerciseCompletion"`
	OverallProgress    int          `json:"overallProgress"`
	LastUpdated        time.Time    `json:"lastUpdated"`
}

// NewProgressRecord returns a zeroed record for the given workout.
func NewProgressRecord(workoutID string) ProgressRecord {
	return ProgressRecord{
		WorkoutID:          CanonicalID(workoutID),
		ExerciseCompletion: make(map[int]bool),
	}
}

// CompletedCount counts completed exercises with index < totalExercises.
// Stale indices beyond the current exercise count are retained for audit but
// excluded from the percentage.
func (p *ProgressRecord) CompletedCount(totalExercises int) int {
	count := 0
	for idx, done := range p.ExerciseCompletion {
		if done && idx >= 0 && idx < totalExercises {
			count++
		}
	}
	return count
}

// Recompute refreshes OverallProgress against the current exercise count of
// the parent workout.
func (p *ProgressRecord) Recompute(totalExercises int) {
	if totalExercises <= 0 {
		p.OverallProgress = 0
		return
	}
	done := p.CompletedCount(totalExercises)
	p.OverallProgress = int(math.Round(float64(done) / float64(totalExercises) * 100))
}
