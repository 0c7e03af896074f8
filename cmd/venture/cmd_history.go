package main

import (
	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show the in-process analysis history",
	Long: `Shows the analysis history of the current process. History is in-memory
only and starts empty on every invocation; it is useful inside interactive
mode, where several analyses accumulate in one session.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, _, err := newService()
		if err != nil {
			return err
		}
		printHistory(svc)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(historyCmd)
}
