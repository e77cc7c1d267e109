package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/pedrobarros/ironlog/internal/cli/formatter"
)

func newExerciseCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "exercise",
		Short: "Track individual exercises within a workout",
	}

	cmd.AddCommand(newExerciseToggleCmd(app))

	return cmd
}

func newExerciseToggleCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle <workout> <index>",
		Short: "Flip an exercise between done and not done",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			id, err := resolveWorkoutID(ctx, app, args[0])
			if err != nil {
				return err
			}
			index, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid exercise index %q", args[1])
			}

			current, err := app.Progress.IsExerciseCompleted(ctx, id, index)
			if err != nil {
				return err
			}
			rec, err := app.Progress.ToggleExercise(ctx, id, index, !current)
			if err != nil {
				return err
			}

			state := "done"
			if current {
				state = "not done"
			}
			fmt.Printf("Exercise %d marked %s  %s\n", index, state,
				formatter.RenderProgress(float64(rec.OverallProgress)/100, 20))
			return nil
		},
	}
}
