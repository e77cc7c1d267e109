package cli

import (
	"github.com/pedrobarros/ironlog/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Workouts     service.WorkoutService
	Progress     service.ProgressService
	Stats        service.StatsService
	Records      service.RecordService
	Achievements service.AchievementService
}

// NewRootCmd creates the top-level "ironlog" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "ironlog",
		Short: "Workout tracker with progress, streaks and achievements",
	}

	root.AddCommand(
		newWorkoutCmd(app),
		newExerciseCmd(app),
		newSessionCmd(app),
		newStatsCmd(app),
		newStreakCmd(app),
		newAchievementsCmd(app),
		newRecordCmd(app),
	)

	return root
}
