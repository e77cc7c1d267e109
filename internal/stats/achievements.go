package stats

import (
	"fmt"

	"github.com/pedrobarros/ironlog/internal/domain"
)

// Achievement threshold families. Keys are stable storage identifiers.
var (
	workoutThresholds = []int{1, 10, 25, 50, 100}
	recordThresholds  = []int{1, 5, 10}
	streakThresholds  = []int{3, 7, 14, 30}
)

// Counters are the inputs to achievement evaluation.
type Counters struct {
	CompletedWorkouts int
	PersonalRecords   int
	CurrentStreak     int
}

// AchievementDef describes one achievement for display.
type AchievementDef struct {
	Key       string
	Label     string
	Threshold int
}

// Definitions lists every achievement in a stable order.
func Definitions() []AchievementDef {
	var defs []AchievementDef
	for _, n := range workoutThresholds {
		defs = append(defs, AchievementDef{
			Key:       workoutKey(n),
			Label:     fmt.Sprintf("Complete %d workouts", n),
			Threshold: n,
		})
	}
	for _, n := range recordThresholds {
		defs = append(defs, AchievementDef{
			Key:       recordKey(n),
			Label:     fmt.Sprintf("Set %d personal records", n),
			Threshold: n,
		})
	}
	for _, n := range streakThresholds {
		defs = append(defs, AchievementDef{
			Key:       streakKey(n),
			Label:     fmt.Sprintf("Train %d days in a row", n),
			Threshold: n,
		})
	}
	return defs
}

func workoutKey(n int) string { return fmt.Sprintf("workouts_%d", n) }
func recordKey(n int) string  { return fmt.Sprintf("records_%d", n) }
func streakKey(n int) string  { return fmt.Sprintf("streak_%d", n) }

// Evaluate derives the next achievement set from the counters and the
// previous set. Flags already true are never cleared, regardless of the
// counters. The second return value lists keys newly unlocked by this
// evaluation, in definition order, so the caller can notify exactly once.
func Evaluate(c Counters, previous domain.AchievementSet) (domain.AchievementSet, []string) {
	next := previous.Clone()
	var unlocked []string

	unlock := func(key string, counter, threshold int) {
		if counter >= threshold && !next[key] {
			next[key] = true
			unlocked = append(unlocked, key)
		}
	}

	for _, n := range workoutThresholds {
		unlock(workoutKey(n), c.CompletedWorkouts, n)
	}
	for _, n := range recordThresholds {
		unlock(recordKey(n), c.PersonalRecords, n)
	}
	for _, n := range streakThresholds {
		unlock(streakKey(n), c.CurrentStreak, n)
	}
	return next, unlocked
}
