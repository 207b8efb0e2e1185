package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"kailash/internal/diag"
)

func writeFile(t *testing.T, dir, name, data string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestLoadDefaultsWhenNoFile(t *testing.T) {
	chdir(t, t.TempDir())
	s, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s != Defaults() {
		t.Fatalf("Load() = %+v, want %+v", s, Defaults())
	}
}

func TestLoadExplicitMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.toml")); err == nil {
		t.Fatalf("expected error for missing explicit config")
	}
}

func TestLoadFile(t *testing.T) {
	cases := []struct {
		name string
		data string
		want Settings
	}{
		{
			name: "integer verbosity",
			data: "[diagnostics]\nverbosity = 5\ncolor = \"off\"\nbackend_errors = \"mute\"\nalign = \"cells\"\n",
			want: Settings{Verbosity: 5, Color: diag.ColorOff, Backend: diag.BackendMute, Align: diag.AlignCells},
		},
		{
			name: "named verbosity",
			data: "[diagnostics]\nverbosity = \"phase\"\n",
			want: Settings{Verbosity: diag.VerbosityPhase, Color: diag.ColorAuto, Backend: diag.BackendEmit},
		},
		{
			name: "empty file",
			data: "# nothing here\n",
			want: Defaults(),
		},
	}
	for _, tc := range cases {
		path := writeFile(t, t.TempDir(), "kdiag.toml", tc.data)
		got, err := Load(path)
		if err != nil {
			t.Fatalf("%s: Load: %v", tc.name, err)
		}
		if got != tc.want {
			t.Fatalf("%s: got %+v, want %+v", tc.name, got, tc.want)
		}
	}
}

func TestLoadPicksUpDefaultFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, DefaultFile, "[diagnostics]\nverbosity = 1\n")
	chdir(t, dir)
	s, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.Verbosity != 1 {
		t.Fatalf("Verbosity = %d, want 1", s.Verbosity)
	}
}

func TestLoadRejectsBadInput(t *testing.T) {
	cases := map[string]string{
		"unknown key":       "[diagnostics]\nverbose = true\n",
		"negative":          "[diagnostics]\nverbosity = -2\n",
		"bad type":          "[diagnostics]\nverbosity = 1.5\n",
		"bad color":         "[diagnostics]\ncolor = \"rainbow\"\n",
		"bad backend":       "[diagnostics]\nbackend_errors = \"panic\"\n",
		"bad align":         "[diagnostics]\nalign = \"bytes\"\n",
		"malformed":         "[diagnostics\n",
		"unknown table key": "[window]\nwidth = 800\n",
	}
	for name, data := range cases {
		path := writeFile(t, t.TempDir(), "kdiag.toml", data)
		_, err := Load(path)
		if err == nil {
			t.Fatalf("%s: expected error", name)
		}
		if !strings.Contains(err.Error(), path) {
			t.Fatalf("%s: error %q does not name the file", name, err)
		}
	}
}

func TestApplyEnvOverrides(t *testing.T) {
	t.Setenv(EnvVerbosity, "debug")
	t.Setenv(EnvColor, "on")
	t.Setenv(EnvBackendErrors, "mute")
	s, err := ApplyEnv(Defaults())
	if err != nil {
		t.Fatalf("ApplyEnv: %v", err)
	}
	want := Settings{Verbosity: diag.VerbosityDebug, Color: diag.ColorOn, Backend: diag.BackendMute}
	if s != want {
		t.Fatalf("ApplyEnv = %+v, want %+v", s, want)
	}

	t.Setenv(EnvVerbosity, "loud")
	if _, err := ApplyEnv(Defaults()); err == nil || !strings.Contains(err.Error(), EnvVerbosity) {
		t.Fatalf("expected error naming %s, got %v", EnvVerbosity, err)
	}
}

func TestLoadEnvFileKeepsProcessValues(t *testing.T) {
	t.Setenv(EnvColor, "off")
	t.Cleanup(func() { os.Unsetenv(EnvVerbosity) })
	os.Unsetenv(EnvVerbosity)

	path := writeFile(t, t.TempDir(), ".env", EnvVerbosity+"=4\n"+EnvColor+"=on\n")
	if err := LoadEnvFile(path, true); err != nil {
		t.Fatalf("LoadEnvFile: %v", err)
	}
	s, err := ApplyEnv(Defaults())
	if err != nil {
		t.Fatalf("ApplyEnv: %v", err)
	}
	if s.Verbosity != 4 || s.Color != diag.ColorOff {
		t.Fatalf("settings = %+v, want verbosity 4 and color off", s)
	}
}

func TestLoadEnvFileMissing(t *testing.T) {
	missing := filepath.Join(t.TempDir(), ".env")
	if err := LoadEnvFile(missing, false); err != nil {
		t.Fatalf("implicit missing env file should be ignored: %v", err)
	}
	if err := LoadEnvFile(missing, true); err == nil {
		t.Fatalf("explicit missing env file should fail")
	}
}

func TestSettingsReporter(t *testing.T) {
	var buf bytes.Buffer
	r := Settings{Verbosity: 1, Color: diag.ColorOff, Backend: diag.BackendEmit}.Reporter(&buf)
	r.LogInfo(2, "Skipped", "x")
	r.LogInfo(1, "Kept", "y")
	if got, want := buf.String(), diag.Format("Kept", "y")+"\n"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

// chdir changes the working directory for the duration of the test and
// restores it on cleanup (equivalent to testing.T.Chdir, which needs Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir %s: %v", dir, err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatalf("restore working directory: %v", err)
		}
	})
}
