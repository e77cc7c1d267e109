package cli

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/pedrobarros/ironlog/internal/tui"
)

func newSessionCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "session <workout>",
		Short: "Work through a workout interactively",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !isatty.IsTerminal(os.Stdout.Fd()) {
				return fmt.Errorf("session requires an interactive terminal")
			}

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

			model, err := tui.NewSessionModel(ctx, app.Progress, *w)
			if err != nil {
				return err
			}

			_, err = tea.NewProgram(model).Run()
			return err
		},
	}
}
