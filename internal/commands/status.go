package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/balkashynov/clockwork/internal/db"
	"github.com/balkashynov/clockwork/internal/export"
	"github.com/balkashynov/clockwork/internal/tui"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the currently running session",
	Long: `Show the most recently opened session still running. Opens a live
elapsed-time view by default, use --no-ui for a one-line status.`,
	Run: withDB(func(cmd *cobra.Command, args []string) {
		session, err := db.ActiveSession()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		if session == nil {
			fmt.Println("No active time tracking session")
			return
		}

		noUI, _ := cmd.Flags().GetBool("no-ui")
		if noUI {
			elapsed := int64(time.Since(session.StartTime).Seconds())
			fmt.Printf("Currently tracking: %s / %s / %s\n",
				session.Category, session.Activity, session.Task)
			fmt.Printf("Started at: %s\n", session.StartTime.Format("15:04:05"))
			fmt.Printf("Elapsed time: %s\n", export.FormatClock(elapsed))
			return
		}

		if err := tui.RunStatusTUI(session); err != nil {
			fmt.Printf("Error: %v\n", err)
		}
	}),
}

func init() {
	statusCmd.Flags().Bool("no-ui", false, "Print status without the live view")
}
