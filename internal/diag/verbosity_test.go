package diag

import "testing"

func TestParseVerbosity(t *testing.T) {
	cases := []struct {
		input string
		want  int
	}{
		{"0", 0},
		{"3", 3},
		{" 12 ", 12},
		{"error", VerbosityError},
		{"DEBUG", VerbosityDebug},
		{"default", DefaultVerbosity},
		{"trace", VerbosityTrace},
	}
	for _, tc := range cases {
		got, err := ParseVerbosity(tc.input)
		if err != nil {
			t.Fatalf("ParseVerbosity(%q) error: %v", tc.input, err)
		}
		if got != tc.want {
			t.Fatalf("ParseVerbosity(%q) = %d, want %d", tc.input, got, tc.want)
		}
	}
	for _, bad := range []string{"", "-1", "loud", "3.5"} {
		if _, err := ParseVerbosity(bad); err == nil {
			t.Fatalf("ParseVerbosity(%q) expected error", bad)
		}
	}
}

func TestParseColorMode(t *testing.T) {
	cases := map[string]ColorMode{
		"":       ColorAuto,
		"auto":   ColorAuto,
		"ON":     ColorOn,
		"always": ColorOn,
		"off":    ColorOff,
		"never":  ColorOff,
	}
	for input, want := range cases {
		got, err := ParseColorMode(input)
		if err != nil {
			t.Fatalf("ParseColorMode(%q) error: %v", input, err)
		}
		if got != want {
			t.Fatalf("ParseColorMode(%q) = %v, want %v", input, got, want)
		}
	}
	if _, err := ParseColorMode("rainbow"); err == nil {
		t.Fatalf("expected error for unknown color mode")
	}
}

func TestParseBackendErrorMode(t *testing.T) {
	if m, err := ParseBackendErrorMode("mute"); err != nil || m != BackendMute {
		t.Fatalf("ParseBackendErrorMode(mute) = %v, %v", m, err)
	}
	if m, err := ParseBackendErrorMode("Emit"); err != nil || m != BackendEmit {
		t.Fatalf("ParseBackendErrorMode(Emit) = %v, %v", m, err)
	}
	if _, err := ParseBackendErrorMode("panic"); err == nil {
		t.Fatalf("expected error for unknown backend mode")
	}
}

func TestParseAlignMode(t *testing.T) {
	if m, err := ParseAlignMode(""); err != nil || m != AlignRunes {
		t.Fatalf("ParseAlignMode(\"\") = %v, %v", m, err)
	}
	if m, err := ParseAlignMode("Cells"); err != nil || m != AlignCells {
		t.Fatalf("ParseAlignMode(Cells) = %v, %v", m, err)
	}
	if _, err := ParseAlignMode("bytes"); err == nil {
		t.Fatalf("expected error for unknown align mode")
	}
}
