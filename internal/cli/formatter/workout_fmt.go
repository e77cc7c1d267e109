package formatter

import (
	"fmt"
	"strings"

	"github.com/pedrobarros/ironlog/internal/domain"
)

// FormatWorkoutList renders a styled workout list inside a bordered box.
// completed holds the ids of workouts marked done.
func FormatWorkoutList(workouts []domain.Workout, completed map[string]bool) string {
	headers := []string{"ID", "NAME", "MUSCLE", "EXERCISES", "DATE", "STATUS"}
	rows := make([][]string, 0, len(workouts))

	for _, w := range workouts {
		dateStr := Dim("--")
		if d := w.ResolvedDate(); d != nil {
			dateStr = StyleFg.Render(HumanDate(*d))
		}

		rows = append(rows, []string{
			TruncID(w.ID),
			Bold(w.Name),
			MuscleBadge(w.MuscleGroup()),
			fmt.Sprintf("%d", len(w.Exercises)),
			dateStr,
			CompletionPill(completed[domain.CanonicalID(w.ID)]),
		})
	}

	table := RenderTable(headers, rows)
	return RenderBox("Workouts", table)
}

// FormatWorkoutDetail renders a workout card with its exercise checklist.
func FormatWorkoutDetail(w *domain.Workout, rec domain.ProgressRecord, completed bool) string {
	var b strings.Builder

	b.WriteString(StyleBold.Render(w.Name) + "\n")
	b.WriteString(MuscleBadge(w.MuscleGroup()) + "\n\n")

	b.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render("STATUS  "), CompletionPill(completed)))
	b.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render("ID      "), TruncID(w.ID)))
	b.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render("DURATION"), StyleFg.Render(FormatMinutes(w.EffectiveDurationMin()))))
	if d := w.ResolvedDate(); d != nil {
		b.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render("DATE    "), StyleFg.Render(HumanDate(*d))))
	}
	b.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render("PROGRESS"), RenderProgress(float64(rec.OverallProgress)/100, 20)))

	if len(w.Exercises) > 0 {
		b.WriteString("\n" + Header("Exercises") + "\n")
		for _, ex := range w.Exercises {
			mark := StyleDim.Render("○")
			name := StyleFg.Render(ex.Name)
			if rec.ExerciseCompletion[ex.Index] {
				mark = StyleGreen.Render("✔")
				name = StyleDim.Render(ex.Name)
			}
			detail := fmt.Sprintf("%dx%d", ex.Sets, ex.Reps)
			if ex.RestSeconds != nil {
				detail += fmt.Sprintf(" · %ds rest", *ex.RestSeconds)
			}
			b.WriteString(fmt.Sprintf("%s %s  %s\n", mark, name, Dim(detail)))
		}
	}

	return RenderBox("", b.String())
}
