package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/balkashynov/clockwork/internal/daterange"
	"github.com/balkashynov/clockwork/internal/db"
	"github.com/balkashynov/clockwork/internal/export"
	"github.com/balkashynov/clockwork/internal/report"
)

var logCmd = &cobra.Command{
	Use:     "log [d|w|m|y | start-date end-date]",
	Aliases: []string{"clocklog"},
	Short:   "Show a weekday-by-category grid of tracked time",
	Long: `Show tracked time as one calendar grid per week: a row per category,
a column per weekday. Accepts a range code or two explicit YYYY-MM-DD
dates. Defaults to the current month.`,
	Args: cobra.MaximumNArgs(2),
	Run: withDB(func(cmd *cobra.Command, args []string) {
		var start, end time.Time
		var err error
		code := "m"

		switch len(args) {
		case 2:
			code = "custom"
			if start, err = daterange.ParseDate(args[0]); err == nil {
				end, err = daterange.ParseDate(args[1])
			}
			if err == nil && end.Before(start) {
				err = fmt.Errorf("end date must be after start date")
			}
		case 1:
			code = args[0]
			start, end, err = daterange.Resolve(code)
		default:
			start, end, err = daterange.Resolve(code)
		}
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		sessions, err := db.SessionsInRange(start, end, "")
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		grids, total := report.BuildGrids(sessions)
		if len(grids) == 0 {
			fmt.Println("No activities found in the specified date range.")
			return
		}

		for _, grid := range grids {
			fmt.Printf("\nWeek %d:\n", grid.Week)
			fmt.Println(renderGrid(grid))
		}

		period := daterange.Names[code]
		if period == "" {
			period = "range"
		}
		fmt.Printf("\nTotal time for %s (%s to %s): %s\n",
			period,
			daterange.Format(start),
			daterange.Format(end),
			export.FormatClock(total))
	}),
}
