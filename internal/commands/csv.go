package commands

import (
	"fmt"

	"github.com/pkg/browser"
	"github.com/spf13/cobra"

	"github.com/balkashynov/clockwork/internal/daterange"
	"github.com/balkashynov/clockwork/internal/db"
	"github.com/balkashynov/clockwork/internal/export"
	"github.com/balkashynov/clockwork/internal/validate"
)

var csvCmd = &cobra.Command{
	Use:     "csv [start-date] [end-date]",
	Aliases: []string{"clockcsv"},
	Short:   "Export sessions to a CSV file",
	Long: `Export closed sessions between two YYYY-MM-DD dates (inclusive) to a
CSV file in the temp directory and open it.

Examples:
  clockwork csv 2026-08-01 2026-08-31
  clockwork csv 2026-08-01 2026-08-31 --category Study`,
	Args: cobra.ExactArgs(2),
	Run: withDB(func(cmd *cobra.Command, args []string) {
		start, err := daterange.ParseDate(args[0])
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		end, err := daterange.ParseDate(args[1])
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		if end.Before(start) {
			fmt.Println("Error: end date must be after start date")
			return
		}

		category, _ := cmd.Flags().GetString("category")
		category, err = validate.Optional(category)
		if err != nil {
			fmt.Printf("Invalid input: %v\n", err)
			return
		}

		sessions, err := db.ExportSessions(start, end, category)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		if len(sessions) == 0 {
			fmt.Println("No activities found in the specified date range.")
			return
		}

		path, err := export.WriteCSV(sessions, start, end, category)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		fmt.Printf("CSV file generated: %s\n", path)
		if err := browser.OpenFile(path); err != nil {
			fmt.Printf("Error opening CSV file: %v\n", err)
			fmt.Printf("File saved at: %s\n", path)
		}
	}),
}

func init() {
	csvCmd.Flags().String("category", "", "Optional category filter")
}
