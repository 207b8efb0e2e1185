package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"kailash/internal/diag"
)

var formatCmd = &cobra.Command{
	Use:   "format SUBJECT DETAIL",
	Short: "Print a subject/detail pair as an aligned diagnostic line",
	Args:  cobra.ExactArgs(2),
	// pure formatting; a broken config must not get in the way
	PersistentPreRunE: skipReporter,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), diag.Format(args[0], args[1]))
		return err
	},
}
