package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/balkashynov/clockwork/internal/config"
	"github.com/balkashynov/clockwork/internal/daterange"
	"github.com/balkashynov/clockwork/internal/db"
	"github.com/balkashynov/clockwork/internal/export"
	"github.com/balkashynov/clockwork/internal/report"
)

var sumCmd = &cobra.Command{
	Use:     "sum [d|w|m|y]",
	Aliases: []string{"clocksum"},
	Short:   "Show a nested category/activity/task summary",
	Long: `Show a nested summary with subtotals at every level: each category
row carries the sum of its activities, each activity row the sum of its
tasks. Defaults to the configured default range (weekly out of the box).`,
	Args: cobra.MaximumNArgs(1),
	Run: withDB(func(cmd *cobra.Command, args []string) {
		code := config.Load().DefaultRange
		if len(args) > 0 {
			code = args[0]
		}

		start, end, err := daterange.Resolve(code)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		sessions, err := db.SessionsInRange(start, end, "")
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		rows, total := report.BuildSummary(sessions)
		if len(rows) == 0 {
			fmt.Println("No activities found in the specified date range.")
			return
		}

		fmt.Printf("\nNested summary report for %s (%s to %s):\n",
			daterange.Names[code],
			daterange.Format(start),
			daterange.Format(end))
		fmt.Println(renderSummary(rows))
		fmt.Printf("\nTotal duration: %s\n", export.FormatClock(total))
	}),
}
