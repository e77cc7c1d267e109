package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/pedrobarros/ironlog/internal/domain"
	"github.com/pedrobarros/ironlog/internal/stats"
)

func periodLabel(p domain.Period) string {
	switch p {
	case domain.PeriodWeek:
		return "Last 7 days"
	case domain.PeriodMonth:
		return "Last 30 days"
	default:
		return "All time"
	}
}

// FormatGeneralStats renders the headline numbers for a period.
func FormatGeneralStats(g stats.GeneralStats, period domain.Period) string {
	var b strings.Builder

	b.WriteString(Dim(periodLabel(period)) + "\n\n")
	b.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render("WORKOUTS"), Bold(fmt.Sprintf("%d", g.TotalWorkouts))))
	b.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render("TOTAL   "), Bold(FormatMinutes(g.TotalMinutes))))
	b.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render("AVERAGE "), Bold(FormatMinutes(g.AverageMinutes))))
	if g.SkippedNoDate > 0 {
		b.WriteString("\n" + StyleYellow.Render(fmt.Sprintf("%d completed workout(s) without a resolvable date were excluded", g.SkippedNoDate)) + "\n")
	}

	return RenderBox("Stats", b.String())
}

// FormatMuscleGroups renders a bar per muscle group, widest bar for the
// largest count.
func FormatMuscleGroups(groups []stats.MuscleGroupCount) string {
	if len(groups) == 0 {
		return RenderBox("Muscle Groups", Dim("No completed workouts yet."))
	}

	max := 0
	for _, g := range groups {
		if g.Value > max {
			max = g.Value
		}
	}

	const barWidth = 20
	var b strings.Builder
	for i, g := range groups {
		width := 0
		if max > 0 {
			width = g.Value * barWidth / max
		}
		bar := StyleBlue.Render(strings.Repeat(filledBlock, width))
		b.WriteString(fmt.Sprintf("%-14s %s %d", MuscleBadge(g.Name), bar, g.Value))
		if i < len(groups)-1 {
			b.WriteString("\n")
		}
	}

	return RenderBox("Muscle Groups", b.String())
}

// FormatCalendar renders one line per day that has activity in the month.
func FormatCalendar(days []stats.DayBucket, month time.Month, year int) string {
	title := fmt.Sprintf("%s %d", month, year)
	if len(days) == 0 {
		return RenderBox(title, Dim("No workouts this month."))
	}

	headers := []string{"DAY", "WORKOUTS", "MINUTES"}
	rows := make([][]string, 0, len(days))
	for _, d := range days {
		rows = append(rows, []string{
			StyleFg.Render(fmt.Sprintf("%2d", d.Day)),
			fmt.Sprintf("%d", d.Workouts),
			FormatMinutes(d.Minutes),
		})
	}

	return RenderBox(title, RenderTable(headers, rows))
}

// FormatStreaks renders the current and longest streak figures.
func FormatStreaks(current, longest int) string {
	var b strings.Builder

	flame := StyleYellow.Render("🔥")
	b.WriteString(fmt.Sprintf("%s  %s %s\n", StyleDim.Render("CURRENT"), Bold(fmt.Sprintf("%d day(s)", current)), flame))
	b.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render("LONGEST"), Bold(fmt.Sprintf("%d day(s)", longest))))

	return RenderBox("Streak", b.String())
}
