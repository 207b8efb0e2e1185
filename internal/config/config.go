// Package config loads reporter settings from a TOML file and the environment.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"kailash/internal/diag"
)

// DefaultFile is the config file looked up in the working directory.
const DefaultFile = "kdiag.toml"

// Environment variables consulted by ApplyEnv.
const (
	EnvVerbosity     = "KAILASH_VERBOSITY"
	EnvColor         = "KAILASH_COLOR"
	EnvBackendErrors = "KAILASH_BACKEND_ERRORS"
)

// Settings is the resolved reporter configuration.
type Settings struct {
	Verbosity int
	Color     diag.ColorMode
	Backend   diag.BackendErrorMode
	Align     diag.AlignMode
}

// Defaults returns the settings used when nothing is configured.
func Defaults() Settings {
	return Settings{
		Verbosity: diag.DefaultVerbosity,
		Color:     diag.ColorAuto,
		Backend:   diag.BackendEmit,
		Align:     diag.AlignRunes,
	}
}

// Reporter builds a reporter writing to w.
func (s Settings) Reporter(w io.Writer) *diag.Reporter {
	return diag.New(diag.Config{
		Verbosity: s.Verbosity,
		Output:    w,
		Color:     s.Color,
		Backend:   s.Backend,
		Align:     s.Align,
	})
}

type fileConfig struct {
	Diagnostics diagnosticsConfig `toml:"diagnostics"`
}

type diagnosticsConfig struct {
	Verbosity     any    `toml:"verbosity"` // integer or level name
	Color         string `toml:"color"`
	BackendErrors string `toml:"backend_errors"`
	Align         string `toml:"align"`
}

func parseVerbosityValue(v any) (int, error) {
	switch x := v.(type) {
	case int64:
		if x < 0 {
			return 0, fmt.Errorf("verbosity must be >= 0, got %d", x)
		}
		return int(x), nil
	case string:
		return diag.ParseVerbosity(x)
	default:
		return 0, fmt.Errorf("verbosity must be an integer or a level name, got %T", v)
	}
}

// Load reads settings from path on top of Defaults. An empty path, or a
// missing DefaultFile, yields the defaults. An explicitly named file that
// does not exist is an error.
func Load(path string) (Settings, error) {
	s := Defaults()
	explicit := path != ""
	if !explicit {
		path = DefaultFile
	}
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) && !explicit {
			return s, nil
		}
		return s, fmt.Errorf("failed to stat %q: %w", path, err)
	}

	var cfg fileConfig
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return s, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		sort.Strings(keys)
		return s, fmt.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}

	d := cfg.Diagnostics
	if meta.IsDefined("diagnostics", "verbosity") {
		if s.Verbosity, err = parseVerbosityValue(d.Verbosity); err != nil {
			return s, fmt.Errorf("%s: [diagnostics].verbosity: %w", path, err)
		}
	}
	if meta.IsDefined("diagnostics", "color") {
		if s.Color, err = diag.ParseColorMode(d.Color); err != nil {
			return s, fmt.Errorf("%s: [diagnostics].color: %w", path, err)
		}
	}
	if meta.IsDefined("diagnostics", "backend_errors") {
		if s.Backend, err = diag.ParseBackendErrorMode(d.BackendErrors); err != nil {
			return s, fmt.Errorf("%s: [diagnostics].backend_errors: %w", path, err)
		}
	}
	if meta.IsDefined("diagnostics", "align") {
		if s.Align, err = diag.ParseAlignMode(d.Align); err != nil {
			return s, fmt.Errorf("%s: [diagnostics].align: %w", path, err)
		}
	}
	return s, nil
}

// LoadEnvFile loads variables from a .env file. Variables that are already
// set in the process environment keep their values. A missing file is
// ignored unless it was named explicitly.
func LoadEnvFile(path string, explicit bool) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to load env file %q: %w", path, err)
	}
	return nil
}

// ApplyEnv overrides s with the KAILASH_* environment variables.
func ApplyEnv(s Settings) (Settings, error) {
	var err error
	if v, ok := os.LookupEnv(EnvVerbosity); ok {
		if s.Verbosity, err = diag.ParseVerbosity(v); err != nil {
			return s, fmt.Errorf("%s: %w", EnvVerbosity, err)
		}
	}
	if v, ok := os.LookupEnv(EnvColor); ok {
		if s.Color, err = diag.ParseColorMode(v); err != nil {
			return s, fmt.Errorf("%s: %w", EnvColor, err)
		}
	}
	if v, ok := os.LookupEnv(EnvBackendErrors); ok {
		if s.Backend, err = diag.ParseBackendErrorMode(v); err != nil {
			return s, fmt.Errorf("%s: %w", EnvBackendErrors, err)
		}
	}
	return s, nil
}
