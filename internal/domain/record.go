package domain

import "strings"

// PersonalRecords maps an exercise name to the best weight (kg) ever logged
// for it. Values are monotonically non-decreasing per exercise.
type PersonalRecords map[string]float64

// Improve records weightKg for the exercise if it strictly exceeds the stored
// best. Reports whether a new best was set.
func (r PersonalRecords) Improve(exercise string, weightKg float64) bool {
	key := strings.TrimSpace(exercise)
	if key == "" || weightKg <= 0 {
		return false
	}
	if best, ok := r[key]; ok && weightKg <= best {
		return false
	}
	r[key] = weightKg
	return true
}
