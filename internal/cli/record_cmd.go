package cli

import (
	"context"
	"fmt"
	"sort"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/pedrobarros/ironlog/internal/cli/formatter"
)

func newRecordCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "record",
		Short: "Track personal records",
	}

	cmd.AddCommand(
		newRecordLogCmd(app),
		newRecordListCmd(app),
	)

	return cmd
}

func newRecordLogCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "log <exercise> <weight-kg>",
		Short: "Log a lifted weight for an exercise",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			weight, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("invalid weight %q", args[1])
			}

			improved, err := app.Records.Log(context.Background(), args[0], weight)
			if err != nil {
				return err
			}

			if improved {
				fmt.Printf("%s New personal record for %s: %s\n",
					formatter.StyleGreen.Render("▲"), formatter.Bold(args[0]), formatter.FormatWeight(weight))
			} else {
				fmt.Printf("Logged %s for %s, current best stands.\n", formatter.FormatWeight(weight), args[0])
			}
			return nil
		},
	}
}

func newRecordListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List personal records",
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := app.Records.List(context.Background())
			if err != nil {
				return err
			}
			if len(records) == 0 {
				fmt.Println("No personal records yet. Log one with: ironlog record log")
				return nil
			}

			names := make([]string, 0, len(records))
			for name := range records {
				names = append(names, name)
			}
			sort.Strings(names)

			rows := make([][]string, 0, len(names))
			for _, name := range names {
				rows = append(rows, []string{
					formatter.Bold(name),
					formatter.FormatWeight(records[name]),
				})
			}

			fmt.Println(formatter.RenderBox("Personal Records",
				formatter.RenderTable([]string{"EXERCISE", "BEST"}, rows)))
			return nil
		},
	}
}
