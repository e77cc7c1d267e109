package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/pedrobarros/ironlog/internal/cli/formatter"
	"github.com/pedrobarros/ironlog/internal/service"
	"github.com/pedrobarros/ironlog/internal/stats"
)

func newAchievementsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "achievements",
		Short: "Show the achievement board",
		RunE: func(cmd *cobra.Command, args []string) error {
			views, err := app.Achievements.All(context.Background())
			if err != nil {
				return err
			}

			entries := make([]formatter.AchievementEntry, 0, len(views))
			for _, v := range views {
				entries = append(entries, formatter.AchievementEntry{Label: v.Label, Unlocked: v.Unlocked})
			}

			fmt.Println(formatter.FormatAchievements(entries))
			return nil
		},
	}
}

type unlockPrinter struct {
	w io.Writer
}

// NewUnlockPrinter returns a listener that announces each newly unlocked
// achievement on w.
func NewUnlockPrinter(w io.Writer) service.UnlockListener {
	return &unlockPrinter{w: w}
}

func (p *unlockPrinter) AchievementUnlocked(_ context.Context, def stats.AchievementDef) {
	fmt.Fprintf(p.w, "%s Achievement unlocked: %s\n",
		formatter.StyleYellow.Render("★"), formatter.Bold(def.Label))
}
