package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/pedrobarros/ironlog/internal/cli/formatter"
	"github.com/pedrobarros/ironlog/internal/domain"
)

func newStatsCmd(app *App) *cobra.Command {
	var period string

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show workout statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			p := domain.ParsePeriod(period)

			general, err := app.Stats.General(ctx, p)
			if err != nil {
				return err
			}
			groups, err := app.Stats.MuscleGroups(ctx, p)
			if err != nil {
				return err
			}

			fmt.Println(formatter.FormatGeneralStats(general, p))
			fmt.Println(formatter.FormatMuscleGroups(groups))
			return nil
		},
	}

	cmd.Flags().StringVar(&period, "period", "all", "Period: week, month or all")

	cmd.AddCommand(newStatsCalendarCmd(app))

	return cmd
}

func newStatsCalendarCmd(app *App) *cobra.Command {
	var month, year int

	cmd := &cobra.Command{
		Use:   "calendar",
		Short: "Show per-day workout activity for a month",
		RunE: func(cmd *cobra.Command, args []string) error {
			now := time.Now()
			if month == 0 {
				month = int(now.Month())
			}
			if month < 1 || month > 12 {
				return fmt.Errorf("invalid month %d", month)
			}
			if year == 0 {
				year = now.Year()
			}

			days, err := app.Stats.Daily(context.Background(), time.Month(month), year)
			if err != nil {
				return err
			}

			fmt.Println(formatter.FormatCalendar(days, time.Month(month), year))
			return nil
		},
	}

	cmd.Flags().IntVar(&month, "month", 0, "Month 1-12 (default: current)")
	cmd.Flags().IntVar(&year, "year", 0, "Year (default: current)")

	return cmd
}

func newStreakCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "streak",
		Short: "Show current and longest workout streak",
		RunE: func(cmd *cobra.Command, args []string) error {
			summary, err := app.Stats.Streaks(context.Background())
			if err != nil {
				return err
			}

			fmt.Println(formatter.FormatStreaks(summary.Current, summary.Longest))
			return nil
		},
	}
}
