package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"kailash/internal/config"
	"kailash/internal/diag"
)

// flagOverrides holds the persistent flag values that were set explicitly.
type flagOverrides struct {
	verbosity     string
	color         string
	backendErrors string
}

// setupReporter resolves settings from the env file, the config file, the
// environment and the flags (in that order of increasing precedence), then
// attaches the reporter to the command context.
func setupReporter(cmd *cobra.Command) error {
	flags := cmd.Root().PersistentFlags()

	configPath, err := flags.GetString("config")
	if err != nil {
		return fmt.Errorf("failed to get config flag: %w", err)
	}
	envFile, err := flags.GetString("env-file")
	if err != nil {
		return fmt.Errorf("failed to get env-file flag: %w", err)
	}
	if err := config.LoadEnvFile(envFile, flags.Changed("env-file")); err != nil {
		return err
	}

	var over flagOverrides
	for _, f := range []struct {
		name string
		dst  *string
	}{
		{"verbosity", &over.verbosity},
		{"color", &over.color},
		{"backend-errors", &over.backendErrors},
	} {
		if !flags.Changed(f.name) {
			continue
		}
		if *f.dst, err = flags.GetString(f.name); err != nil {
			return fmt.Errorf("failed to get %s flag: %w", f.name, err)
		}
	}

	settings, err := resolveSettings(configPath, over)
	if err != nil {
		return err
	}

	r := settings.Reporter(cmd.ErrOrStderr())
	ctx := diag.WithReporter(cmd.Context(), r)
	cmd.SetContext(ctx)
	cmd.Root().SetContext(ctx)
	return nil
}

func resolveSettings(configPath string, over flagOverrides) (config.Settings, error) {
	settings, err := config.Load(configPath)
	if err != nil {
		return settings, err
	}
	if settings, err = config.ApplyEnv(settings); err != nil {
		return settings, err
	}
	if over.verbosity != "" {
		if settings.Verbosity, err = diag.ParseVerbosity(over.verbosity); err != nil {
			return settings, fmt.Errorf("invalid --verbosity: %w", err)
		}
	}
	if over.color != "" {
		if settings.Color, err = diag.ParseColorMode(over.color); err != nil {
			return settings, fmt.Errorf("invalid --color: %w", err)
		}
	}
	if over.backendErrors != "" {
		if settings.Backend, err = diag.ParseBackendErrorMode(over.backendErrors); err != nil {
			return settings, fmt.Errorf("invalid --backend-errors: %w", err)
		}
	}
	return settings, nil
}
