package stats

import (
	"sort"
	"time"

	"github.com/pedrobarros/ironlog/internal/domain"
)

// dayLayout is the timezone-naive calendar-day key used for streaks.
const dayLayout = "2006-01-02"

// CompletedDays collects the distinct calendar dates on which at least one
// workout in the completed set has a resolvable date.
func CompletedDays(workouts []domain.Workout, completed map[string]bool) map[string]bool {
	days := make(map[string]bool)
	for _, w := range completedWorkouts(workouts, completed) {
		if date := w.ResolvedDate(); date != nil {
			days[date.Format(dayLayout)] = true
		}
	}
	return days
}

// CurrentStreak counts consecutive completed days ending at today. When
// today itself has no workout yet, the streak is anchored at yesterday
// instead of dropping to zero (the grace-day policy); with neither day
// present the streak is 0.
func CurrentStreak(days map[string]bool, today time.Time) int {
	day := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	if !days[day.Format(dayLayout)] {
		day = day.AddDate(0, 0, -1)
		if !days[day.Format(dayLayout)] {
			return 0
		}
	}
	streak := 0
	for days[day.Format(dayLayout)] {
		streak++
		day = day.AddDate(0, 0, -1)
	}
	return streak
}

// LongestStreak finds the longest run of consecutive calendar days in the
// set, independent of today.
func LongestStreak(days map[string]bool) int {
	if len(days) == 0 {
		return 0
	}
	dates := make([]time.Time, 0, len(days))
	for key := range days {
		d, err := time.Parse(dayLayout, key)
		if err != nil {
			continue
		}
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })

	longest, run := 0, 0
	for i, d := range dates {
		if i > 0 && dates[i-1].AddDate(0, 0, 1).Equal(d) {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
	}
	return longest
}
