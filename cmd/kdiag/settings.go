package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"kailash/internal/diag"
)

// reporterSettings describes what the resolved reporter will do with each
// class of diagnostic.
type reporterSettings struct {
	Verbosity     int    `json:"verbosity"`
	Colorized     bool   `json:"colorized"`
	Align         string `json:"align"`
	BackendErrors string `json:"backend_errors"`
}

func describeReporter(r *diag.Reporter) reporterSettings {
	return reporterSettings{
		Verbosity:     r.Verbosity(),
		Colorized:     r.Colorized(),
		Align:         r.Alignment().String(),
		BackendErrors: r.BackendMode().String(),
	}
}

var settingsFormat string

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show the resolved reporter settings (config file, environment and flags applied)",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s := describeReporter(diag.FromContext(cmd.Context()))
		switch strings.ToLower(settingsFormat) {
		case "pretty":
			return renderSettingsPretty(cmd.OutOrStdout(), s)
		case "json":
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(s)
		default:
			return fmt.Errorf("unsupported format %q (must be pretty or json)", settingsFormat)
		}
	},
}

func init() {
	settingsCmd.Flags().StringVar(&settingsFormat, "format", "pretty", "output format (pretty|json)")
}

// renderSettingsPretty prints one aligned line per severity class, followed by
// the presentation settings.
func renderSettingsPretty(out io.Writer, s reporterSettings) error {
	backend := "written"
	if s.BackendErrors == diag.BackendMute.String() {
		backend = "read and dropped"
	}
	lines := []string{
		diag.Format(diag.SevError.String(), "always"),
		diag.Format(diag.SevInfo.String(), fmt.Sprintf("level <= %d", s.Verbosity)),
		diag.Format(diag.SevBackend.String(), fmt.Sprintf("%s (%s)", s.BackendErrors, backend)),
		diag.Format("color", fmt.Sprintf("%t", s.Colorized)),
		diag.Format("align", s.Align),
	}
	_, err := fmt.Fprintln(out, strings.Join(lines, "\n"))
	return err
}
