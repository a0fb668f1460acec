package commands

import (
	"fmt"

	"github.com/pkg/browser"
	"github.com/spf13/cobra"

	"github.com/balkashynov/clockwork/internal/config"
	"github.com/balkashynov/clockwork/internal/daterange"
	"github.com/balkashynov/clockwork/internal/db"
	"github.com/balkashynov/clockwork/internal/export"
	"github.com/balkashynov/clockwork/internal/report"
	"github.com/balkashynov/clockwork/internal/validate"
)

var visCmd = &cobra.Command{
	Use:     "vis [d|w|m|y] [category]",
	Aliases: []string{"clockvis"},
	Short:   "Visualize the time distribution as a pie chart",
	Long: `Render the proportional time breakdown as a pie chart and open it in
the default viewer. Without a category the chart breaks time down by
category; with one, by activity within that category.`,
	Args: cobra.MaximumNArgs(2),
	Run: withDB(func(cmd *cobra.Command, args []string) {
		cfg := config.Load()

		code := cfg.DefaultRange
		if len(args) > 0 {
			code = args[0]
		}

		category := ""
		if len(args) > 1 {
			sanitized, err := validate.Label(args[1])
			if err != nil {
				fmt.Printf("Invalid input: %v\n", err)
				return
			}
			category = sanitized
		}

		start, end, err := daterange.Resolve(code)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		sessions, err := db.SessionsInRange(start, end, category)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		slices, total := report.BuildBreakdown(sessions, category != "")
		if len(slices) == 0 {
			fmt.Println("No data available for visualization in the specified date range and/or category.")
			return
		}

		subject := "Category"
		if category != "" {
			subject = "Activity"
		}
		title := fmt.Sprintf("%s Breakdown (%s)", subject, daterange.Names[code])

		path, err := export.WriteChart(slices, total, cfg, title, start, end, category)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		if err := cfg.Save(); err != nil {
			fmt.Printf("Warning: failed to save color map: %v\n", err)
		}

		fmt.Printf("Chart generated: %s\n", path)
		if err := browser.OpenFile(path); err != nil {
			fmt.Printf("Error opening visualization: %v\n", err)
			fmt.Printf("File saved at: %s\n", path)
		}
	}),
}
