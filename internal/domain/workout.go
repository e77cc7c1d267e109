package domain

import (
	"encoding/json"
	"strings"
	"time"
)

// DefaultMinutesPerExercise is the per-exercise duration estimate used when a
// workout has no explicit duration. The estimate is derived on read and never
// written back to the stored record.
const DefaultMinutesPerExercise = 10

// ExerciseRef is an exercise embedded in a workout. It has no lifecycle of its
// own; the (workout, index) pair is its identity for progress tracking.
type ExerciseRef struct {
	Index       int    `json:"index"`
	Name        string `json:"name"`
	Sets        int    `json:"sets"`
	Reps        int    `json:"reps"`
	RestSeconds *int   `json:"restSeconds,omitempty"`
	Notes       string `json:"notes,omitempty"`
}

// Workout is a user-owned training session record.
type Workout struct {
	ID            string        `json:"id"`
	OwnerID       string        `json:"ownerId"`
	Name          string        `json:"name"`
	Category      string        `json:"category,omitempty"`
	ScheduledDate *time.Time    `json:"scheduledDate,omitempty"`
	CompletedAt   *time.Time    `json:"completedAt,omitempty"`
	DurationMin   *int          `json:"durationMinutes,omitempty"`
	Exercises     []ExerciseRef `json:"exercises"`
	CreatedAt     time.Time     `json:"createdAt"`
	UpdatedAt     time.Time     `json:"updatedAt"`
}

// CanonicalID normalizes an identifier for comparison. Legacy data sources mix
// numeric and string ids; every id comparison in the engine goes through this.
func CanonicalID(id string) string {
	return strings.TrimSpace(id)
}

// flexibleID decodes a JSON string or number into a canonical string id.
type flexibleID string

func (f *flexibleID) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = flexibleID(CanonicalID(s))
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*f = flexibleID(n.String())
	return nil
}

// workoutAlias avoids recursing into Workout.UnmarshalJSON.
type workoutAlias Workout

type workoutJSON struct {
	workoutAlias
	ID      flexibleID `json:"id"`
	OwnerID flexibleID `json:"ownerId"`
}

// UnmarshalJSON accepts legacy records whose id or ownerId is a JSON number
// and canonicalizes both to strings.
func (w *Workout) UnmarshalJSON(b []byte) error {
	var aux workoutJSON
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	*w = Workout(aux.workoutAlias)
	w.ID = string(aux.ID)
	w.OwnerID = string(aux.OwnerID)
	return nil
}

// ResolvedDate returns the workout's effective date for aggregation:
// CompletedAt when present, otherwise ScheduledDate, otherwise nil.
// Callers must treat nil as "contributes to no bucket", never as "today".
func (w *Workout) ResolvedDate() *time.Time {
	if w.CompletedAt != nil {
		return w.CompletedAt
	}
	return w.ScheduledDate
}

// EffectiveDurationMin returns the explicit duration when set, otherwise an
// estimate from the exercise count.
func (w *Workout) EffectiveDurationMin() int {
	if w.DurationMin != nil {
		return *w.DurationMin
	}
	return len(w.Exercises) * DefaultMinutesPerExercise
}

// placeholderWords are generic label words that carry no muscle-group
// information when splitting a workout name.
var placeholderWords = map[string]bool{
	"treino":  true,
	"workout": true,
}

// MuscleGroup classifies the workout for aggregation. The explicit category
// wins; otherwise the name is split on a separator and the first
// non-placeholder part is used. Unclassifiable workouts land in "general".
func (w *Workout) MuscleGroup() string {
	if c := strings.TrimSpace(w.Category); c != "" {
		return c
	}
	for _, part := range strings.FieldsFunc(w.Name, func(r rune) bool {
		return r == '-' || r == ':' || r == '|'
	}) {
		part = strings.TrimSpace(part)
		if part == "" || placeholderWords[strings.ToLower(part)] {
			continue
		}
		return part
	}
	return "general"
}

// ReindexExercises reassigns the stable 0..n-1 indices after the exercise
// list changes.
func (w *Workout) ReindexExercises() {
	for i := range w.Exercises {
		w.Exercises[i].Index = i
	}
}
