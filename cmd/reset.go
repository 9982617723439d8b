package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset household data",
	RunE: func(cmd *cobra.Command, args []string) error {
		stale, _ := cmd.Flags().GetDuration("stale")
		if stale > 0 {
			return abandonStale(cmd, stale)
		}

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		if err := os.Remove(dbPath); err != nil {
			if os.IsNotExist(err) {
				fmt.Println("Nothing to reset.")
				return nil
			}
			return fmt.Errorf("remove database: %w", err)
		}
		fmt.Println("Removed", dbPath)
		return nil
	},
}

// abandonStale marks in-progress check-ins untouched for the given duration
// as abandoned, without touching completed history.
func abandonStale(cmd *cobra.Command, age time.Duration) error {
	st, household, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	n, err := st.AssessmentRepo().AbandonStale(cmd.Context(), household, time.Now().Add(-age))
	if err != nil {
		return err
	}
	fmt.Printf("Abandoned %d stale check-in(s).\n", n)
	return nil
}

func init() {
	resetCmd.Flags().Duration("stale", 0, "Instead of wiping, abandon in-progress check-ins older than this (e.g. 720h)")
}
