package main

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	"kailash/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "kdiag",
	Short: "Kailash engine diagnostics tool",
	Long:  `kdiag drives the engine's diagnostics reporter: aligned log lines, verbosity gating and graphics backend error polling`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setupReporter(cmd)
	},
	SilenceUsage: true,
}

// skipReporter replaces the root pre-run for commands that never log.
func skipReporter(cmd *cobra.Command, args []string) error { return nil }

func init() {
	rootCmd.Version = buildString()
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	rootCmd.AddCommand(formatCmd)
	rootCmd.AddCommand(logCmd)
	rootCmd.AddCommand(pollCmd)
	rootCmd.AddCommand(frameCmd)
	rootCmd.AddCommand(settingsCmd)

	rootCmd.PersistentFlags().String("config", "", "path to kdiag.toml (default: ./kdiag.toml if present)")
	rootCmd.PersistentFlags().String("env-file", ".env", "load KAILASH_* variables from this file")
	rootCmd.PersistentFlags().String("verbosity", "", "informational threshold (integer or error|phase|detail|default|debug|trace)")
	rootCmd.PersistentFlags().String("color", "", "colorize labels (auto|on|off)")
	rootCmd.PersistentFlags().String("backend-errors", "", "backend error handling (emit|mute)")
}

// buildString renders the --version line from the ldflags-provided metadata.
func buildString() string {
	var sb strings.Builder
	sb.WriteString("kdiag ")
	sb.WriteString(version.Colored(strings.TrimSpace(version.Version)))
	var meta []string
	if c := strings.TrimSpace(version.GitCommit); c != "" {
		meta = append(meta, "commit "+c)
	}
	if d := strings.TrimSpace(version.BuildDate); d != "" {
		meta = append(meta, "built "+d)
	}
	if len(meta) > 0 {
		sb.WriteString(" (" + strings.Join(meta, ", ") + ")")
	}
	return sb.String()
}

// main executes the root command; any error exits with status 1.
func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
