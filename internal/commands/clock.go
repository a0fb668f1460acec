package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/balkashynov/clockwork/internal/db"
	"github.com/balkashynov/clockwork/internal/export"
)

var inCmd = &cobra.Command{
	Use:     "in [category] [activity] [task]",
	Aliases: []string{"clockin"},
	Short:   "Clock in for an activity",
	Long: `Clock in for the given activity. Labels are sanitized to letters,
digits, spaces, underscores and hyphens.

Examples:
  clockwork in Study physics ch5
  clockwork in Work backend code-review --notes "PR 1842"`,
	Args: cobra.ExactArgs(3),
	Run: withDB(func(cmd *cobra.Command, args []string) {
		notes, _ := cmd.Flags().GetString("notes")

		session, err := db.ClockIn(args[0], args[1], args[2], notes)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		fmt.Printf("Clocked in for %s (%s) at %s\n",
			session.Activity, session.Task, session.StartTime.Format("15:04:05"))
	}),
}

var outCmd = &cobra.Command{
	Use:     "out [activity]",
	Aliases: []string{"clockout"},
	Short:   "Clock out from an activity",
	Long: `Clock out from the given activity. When several clock-ins are open
under the same activity name the most recently opened one is closed.`,
	Args: cobra.ExactArgs(1),
	Run: withDB(func(cmd *cobra.Command, args []string) {
		notes, _ := cmd.Flags().GetString("notes")

		session, err := db.ClockOut(args[0], notes)
		var notFound *db.NotFoundError
		if errors.As(err, &notFound) {
			// Not fatal: just report and end cleanly.
			fmt.Println(notFound.Error())
			return
		}
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		fmt.Printf("Clocked out from %s at %s | Duration: %s\n",
			session.Activity,
			session.EndTime.Format("15:04:05"),
			export.FormatClock(*session.DurationSeconds))
	}),
}

func init() {
	inCmd.Flags().String("notes", "", "Additional notes for the activity")
	outCmd.Flags().String("notes", "", "Additional notes, merged into any existing ones")
}
