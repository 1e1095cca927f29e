package commands

import (
	"fmt"

	"electiontracker/lib/serviceutil"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(dedupeCmd)
}

var dedupeCmd = &cobra.Command{
	Use:   "dedupe",
	Short: "Remove duplicate records from the store.",
	Run: func(cmd *cobra.Command, args []string) {
		svc, err := newService()
		if err != nil {
			serviceutil.Fatal("failed to read config", err)
		}

		removed, err := svc.RemoveDuplicates(cmd.Context())
		if err != nil {
			serviceutil.Fatal("failed to deduplicate record store", err)
		}
		fmt.Printf("removed %d duplicate records\n", removed)
	},
}
