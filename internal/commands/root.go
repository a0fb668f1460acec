package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/balkashynov/clockwork/internal/db"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "clockwork",
	Short: "A simple CLI tool for tracking time spent on different activities",
	Long: `clockwork records sessions of work under a category/activity/task label
hierarchy and turns them into calendar-grid reports, nested summaries,
pie-chart breakdowns and CSV exports.`,
}

// initDB initializes the database and panics on error
func initDB() {
	if err := db.Initialize(); err != nil {
		panic(err) // For now, panic on DB init failure
	}
}

// withDB wraps a command function with one database connection per
// invocation, closed before the process exits.
func withDB(fn func(*cobra.Command, []string)) func(*cobra.Command, []string) {
	return func(cmd *cobra.Command, args []string) {
		initDB()
		defer db.Close()
		fn(cmd, args)
	}
}

// SetVersion sets the version information
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("clockwork %s (commit %s, built %s)\n", version, commit, date)
	},
}

func init() {
	// Add subcommands here
	rootCmd.AddCommand(inCmd)
	rootCmd.AddCommand(outCmd)
	rootCmd.AddCommand(logCmd)
	rootCmd.AddCommand(sumCmd)
	rootCmd.AddCommand(visCmd)
	rootCmd.AddCommand(csvCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(versionCmd)
}
