package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/pedrobarros/ironlog/internal/cli/formatter"
	"github.com/pedrobarros/ironlog/internal/domain"
	"github.com/pedrobarros/ironlog/internal/repository"
)

// parseExerciseSpec parses "Name:SETSxREPS" or "Name:SETSxREPS:REST" where
// REST is seconds between sets.
func parseExerciseSpec(spec string, index int) (domain.ExerciseRef, error) {
	parts := strings.Split(spec, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return domain.ExerciseRef{}, fmt.Errorf("invalid exercise %q: use NAME:SETSxREPS[:REST]", spec)
	}

	name := strings.TrimSpace(parts[0])
	if name == "" {
		return domain.ExerciseRef{}, fmt.Errorf("invalid exercise %q: name is empty", spec)
	}

	sr := strings.SplitN(strings.ToLower(parts[1]), "x", 2)
	if len(sr) != 2 {
		return domain.ExerciseRef{}, fmt.Errorf("invalid exercise %q: use NAME:SETSxREPS[:REST]", spec)
	}
	sets, err := strconv.Atoi(strings.TrimSpace(sr[0]))
	if err != nil || sets <= 0 {
		return domain.ExerciseRef{}, fmt.Errorf("invalid sets in %q", spec)
	}
	reps, err := strconv.Atoi(strings.TrimSpace(sr[1]))
	if err != nil || reps <= 0 {
		return domain.ExerciseRef{}, fmt.Errorf("invalid reps in %q", spec)
	}

	ref := domain.ExerciseRef{Index: index, Name: name, Sets: sets, Reps: reps}
	if len(parts) == 3 {
		rest, err := strconv.Atoi(strings.TrimSpace(parts[2]))
		if err != nil || rest < 0 {
			return domain.ExerciseRef{}, fmt.Errorf("invalid rest seconds in %q", spec)
		}
		ref.RestSeconds = &rest
	}
	return ref, nil
}

func newWorkoutCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "workout",
		Short: "Manage workouts",
	}

	cmd.AddCommand(
		newWorkoutAddCmd(app),
		newWorkoutListCmd(app),
		newWorkoutShowCmd(app),
		newWorkoutEditCmd(app),
		newWorkoutRemoveCmd(app),
		newWorkoutDoneCmd(app),
		newWorkoutUndoneCmd(app),
	)

	return cmd
}

func newWorkoutAddCmd(app *App) *cobra.Command {
	var name, category, date, duration string
	var exercises []string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a new workout",
		RunE: func(cmd *cobra.Command, args []string) error {
			values := workoutFormValues{Name: name, Category: category, Date: date, Duration: duration}

			if values.Name == "" {
				if !isatty.IsTerminal(os.Stdin.Fd()) {
					return fmt.Errorf("--name is required in non-interactive mode")
				}
				if err := addWorkoutForm(&values).Run(); err != nil {
					return err
				}
			}

			draft := domain.Workout{
				Name:     values.Name,
				Category: values.Category,
			}
			if values.Date != "" {
				d, err := time.Parse("2006-01-02", values.Date)
				if err != nil {
					return fmt.Errorf("invalid date %q: %w", values.Date, err)
				}
				draft.ScheduledDate = &d
			}
			if values.Duration != "" {
				min, err := strconv.Atoi(values.Duration)
				if err != nil || min <= 0 {
					return fmt.Errorf("invalid duration %q", values.Duration)
				}
				draft.DurationMin = &min
			}
			for i, spec := range exercises {
				ref, err := parseExerciseSpec(spec, i)
				if err != nil {
					return err
				}
				draft.Exercises = append(draft.Exercises, ref)
			}

			w, err := app.Workouts.Create(context.Background(), draft)
			if err != nil {
				return err
			}

			fmt.Printf("Created workout %s (%s)\n", w.Name, w.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Workout name")
	cmd.Flags().StringVar(&category, "category", "", "Muscle group (derived from name when empty)")
	cmd.Flags().StringVar(&date, "date", "", "Scheduled date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&duration, "duration", "", "Duration in minutes")
	cmd.Flags().StringArrayVar(&exercises, "exercise", nil, "Exercise as NAME:SETSxREPS[:REST], repeatable")

	return cmd
}

func newWorkoutListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List workouts",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			workouts, err := app.Workouts.List(ctx)
			if err != nil {
				return err
			}
			if len(workouts) == 0 {
				fmt.Println("No workouts yet. Add one with: ironlog workout add")
				return nil
			}

			completed, err := app.Progress.CompletedSet(ctx)
			if err != nil {
				return err
			}

			fmt.Println(formatter.FormatWorkoutList(workouts, completed))
			return nil
		},
	}
}

func newWorkoutShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <workout>",
		Short: "Show a workout with its exercise checklist",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			id, err := resolveWorkoutID(ctx, app, args[0])
			if err != nil {
				return err
			}
			w, err := app.Workouts.Get(ctx, id)
			if err != nil {
				return err
			}
			if w == nil {
				return fmt.Errorf("workout not found: %q", args[0])
			}

			rec, err := app.Progress.Progress(ctx, id)
			if err != nil {
				return err
			}
			completed, err := app.Progress.CompletedSet(ctx)
			if err != nil {
				return err
			}

			fmt.Println(formatter.FormatWorkoutDetail(w, rec, completed[domain.CanonicalID(id)]))
			return nil
		},
	}
}

func newWorkoutEditCmd(app *App) *cobra.Command {
	var name, category, date, duration string
	var exercises []string
	var clearDate bool

	cmd := &cobra.Command{
		Use:   "edit <workout>",
		Short: "Edit a workout",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			id, err := resolveWorkoutID(ctx, app, args[0])
			if err != nil {
				return err
			}

			patch := repository.WorkoutPatch{}
			if cmd.Flags().Changed("name") {
				patch.Name = &name
			}
			if cmd.Flags().Changed("category") {
				patch.Category = &category
			}
			if cmd.Flags().Changed("date") {
				d, err := time.Parse("2006-01-02", date)
				if err != nil {
					return fmt.Errorf("invalid date %q: %w", date, err)
				}
				patch.ScheduledDate = &d
			}
			if cmd.Flags().Changed("duration") {
				min, err := strconv.Atoi(duration)
				if err != nil || min <= 0 {
					return fmt.Errorf("invalid duration %q", duration)
				}
				patch.DurationMin = &min
			}
			if cmd.Flags().Changed("exercise") {
				refs := make([]domain.ExerciseRef, 0, len(exercises))
				for i, spec := range exercises {
					ref, err := parseExerciseSpec(spec, i)
					if err != nil {
						return err
					}
					refs = append(refs, ref)
				}
				patch.Exercises = &refs
			}
			patch.ClearCompletedAt = clearDate

			w, err := app.Workouts.Update(ctx, id, patch)
			if err != nil {
				return err
			}

			fmt.Printf("Updated workout %s\n", w.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Workout name")
	cmd.Flags().StringVar(&category, "category", "", "Muscle group")
	cmd.Flags().StringVar(&date, "date", "", "Scheduled date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&duration, "duration", "", "Duration in minutes")
	cmd.Flags().StringArrayVar(&exercises, "exercise", nil, "Replace exercises, NAME:SETSxREPS[:REST]")
	cmd.Flags().BoolVar(&clearDate, "clear-completed", false, "Clear the completion timestamp")

	return cmd
}

func newWorkoutRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "rm <workout>",
		Aliases: []string{"remove"},
		Short:   "Remove a workout and its progress",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			id, err := resolveWorkoutID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Workouts.Delete(ctx, id); err != nil {
				return err
			}

			fmt.Println("Removed workout.")
			return nil
		},
	}
}

func newWorkoutDoneCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "done <workout>",
		Short: "Mark a workout as completed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return setWorkoutCompleted(app, args[0], true)
		},
	}
}

func newWorkoutUndoneCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "undone <workout>",
		Short: "Unmark a completed workout",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return setWorkoutCompleted(app, args[0], false)
		},
	}
}

func setWorkoutCompleted(app *App, input string, completed bool) error {
	ctx := context.Background()

	id, err := resolveWorkoutID(ctx, app, input)
	if err != nil {
		return err
	}
	if err := app.Progress.SetWorkoutCompleted(ctx, id, completed); err != nil {
		return err
	}

	if completed {
		fmt.Println(formatter.StyleGreen.Render("✔") + " Workout completed.")
	} else {
		fmt.Println("Workout unmarked.")
	}
	return nil
}
