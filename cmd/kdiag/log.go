package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"kailash/internal/diag"
)

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Emit a diagnostic line through the reporter",
}

var logErrorCmd = &cobra.Command{
	Use:   "error NAME MESSAGE",
	Short: "Emit an error line (never filtered)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		diag.FromContext(cmd.Context()).LogError(args[0], args[1])
		return nil
	},
}

var logInfoCmd = &cobra.Command{
	Use:   "info LEVEL NAME MESSAGE",
	Short: "Emit an informational line if LEVEL passes the verbosity threshold",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		level, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid level %q: %w", args[0], err)
		}
		diag.FromContext(cmd.Context()).LogInfo(level, args[1], args[2])
		return nil
	},
}

func init() {
	logCmd.AddCommand(logErrorCmd)
	logCmd.AddCommand(logInfoCmd)
}
