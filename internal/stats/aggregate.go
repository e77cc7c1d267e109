// Package stats holds the pure aggregation, streak and achievement functions
// of the engine. Nothing here performs I/O; callers pass the current workout
// list, the completed-workout set and an explicit "now".
package stats

import (
	"math"
	"time"

	"github.com/pedrobarros/ironlog/internal/domain"
)

// GeneralStats summarizes completed workouts within a period window.
// SkippedNoDate counts completed workouts excluded because neither
// completedAt nor scheduledDate resolves; it exists for diagnostics.
type GeneralStats struct {
	TotalWorkouts  int
	TotalMinutes   int
	AverageMinutes int
	SkippedNoDate  int
}

// MuscleGroupCount is one muscle-group histogram bucket.
type MuscleGroupCount struct {
	Name  string
	Value int
}

// DayBucket is one calendar day of a monthly series.
type DayBucket struct {
	Day      int
	Workouts int
	Minutes  int
}

// completedWorkouts filters to workouts whose id is in the completed set.
func completedWorkouts(workouts []domain.Workout, completed map[string]bool) []domain.Workout {
	var out []domain.Workout
	for _, w := range workouts {
		if completed[domain.CanonicalID(w.ID)] {
			out = append(out, w)
		}
	}
	return out
}

// inWindow reports whether date falls within [now - period, now]. The lower
// bound is inclusive: a workout dated exactly seven days before now counts
// for the week window. An unbounded period accepts everything.
func inWindow(date time.Time, period domain.Period, now time.Time) bool {
	days := period.Days()
	if days == 0 {
		return true
	}
	cutoff := now.AddDate(0, 0, -days)
	return !date.Before(cutoff) && !date.After(now)
}

// General computes workout count, total and average minutes for the period.
func General(workouts []domain.Workout, completed map[string]bool, period domain.Period, now time.Time) GeneralStats {
	var s GeneralStats
	for _, w := range completedWorkouts(workouts, completed) {
		date := w.ResolvedDate()
		if date == nil {
			s.SkippedNoDate++
			continue
		}
		if !inWindow(*date, period, now) {
			continue
		}
		s.TotalWorkouts++
		s.TotalMinutes += w.EffectiveDurationMin()
	}
	if s.TotalWorkouts > 0 {
		s.AverageMinutes = int(math.Round(float64(s.TotalMinutes) / float64(s.TotalWorkouts)))
	}
	return s
}

// MuscleGroups counts completed workouts per muscle group over the period.
// Duplicate names merge by summation; order is first-seen.
func MuscleGroups(workouts []domain.Workout, completed map[string]bool, period domain.Period, now time.Time) []MuscleGroupCount {
	var out []MuscleGroupCount
	index := make(map[string]int)
	for _, w := range completedWorkouts(workouts, completed) {
		date := w.ResolvedDate()
		if date == nil || !inWindow(*date, period, now) {
			continue
		}
		group := w.MuscleGroup()
		if i, ok := index[group]; ok {
			out[i].Value++
			continue
		}
		index[group] = len(out)
		out = append(out, MuscleGroupCount{Name: group, Value: 1})
	}
	return out
}

// DailySeries buckets completed workouts into the calendar days of one
// month. Every day of the month gets an entry; days with no workouts stay
// zero. An all-zero series is a valid result — the series is never seeded
// with placeholder data.
func DailySeries(workouts []domain.Workout, completed map[string]bool, month time.Month, year int) []DayBucket {
	daysInMonth := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
	series := make([]DayBucket, daysInMonth)
	for i := range series {
		series[i].Day = i + 1
	}
	for _, w := range completedWorkouts(workouts, completed) {
		date := w.ResolvedDate()
		if date == nil {
			continue
		}
		if date.Year() != year || date.Month() != month {
			continue
		}
		b := &series[date.Day()-1]
		b.Workouts++
		b.Minutes += w.EffectiveDurationMin()
	}
	return series
}
