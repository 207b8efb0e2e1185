package diag

import (
	"fmt"
	"strconv"
	"strings"
)

// DefaultVerbosity is the threshold used when none is configured.
const DefaultVerbosity = 3

// Named verbosity levels. Lower values are more important.
const (
	VerbosityError   = 0 // always shown unless the threshold is negative
	VerbosityPhase   = 1 // engine start-up and shutdown milestones
	VerbosityDetail  = 2 // per-subsystem events
	VerbosityDefault = DefaultVerbosity
	VerbosityDebug   = 4 // per-frame chatter
	VerbosityTrace   = 5 // everything
)

var verbosityNames = map[string]int{
	"error":   VerbosityError,
	"phase":   VerbosityPhase,
	"detail":  VerbosityDetail,
	"default": VerbosityDefault,
	"debug":   VerbosityDebug,
	"trace":   VerbosityTrace,
}

// ParseVerbosity converts a level name or a non-negative integer to a threshold.
func ParseVerbosity(s string) (int, error) {
	s = strings.TrimSpace(s)
	if v, ok := verbosityNames[strings.ToLower(s)]; ok {
		return v, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("invalid verbosity: %q (expected: error|phase|detail|default|debug|trace or an integer >= 0)", s)
	}
	return n, nil
}

// ColorMode controls whether labels are colorized.
type ColorMode uint8

const (
	ColorAuto ColorMode = iota // colorize only when the sink is a terminal
	ColorOn
	ColorOff
)

// String returns the string representation of ColorMode.
func (m ColorMode) String() string {
	switch m {
	case ColorAuto:
		return "auto"
	case ColorOn:
		return "on"
	case ColorOff:
		return "off"
	default:
		return "unknown"
	}
}

// ParseColorMode converts a string to ColorMode.
func ParseColorMode(s string) (ColorMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return ColorAuto, nil
	case "on", "always", "true":
		return ColorOn, nil
	case "off", "never", "false":
		return ColorOff, nil
	default:
		return ColorAuto, fmt.Errorf("invalid color mode: %q (expected: auto|on|off)", s)
	}
}

// BackendErrorMode decides what ReportBackendError does with a non-zero code.
type BackendErrorMode uint8

const (
	// BackendEmit writes a line for every error read from the backend.
	BackendEmit BackendErrorMode = iota
	// BackendMute reads and clears the register without writing anything.
	BackendMute
)

// String returns the string representation of BackendErrorMode.
func (m BackendErrorMode) String() string {
	switch m {
	case BackendEmit:
		return "emit"
	case BackendMute:
		return "mute"
	default:
		return "unknown"
	}
}

// ParseBackendErrorMode converts a string to BackendErrorMode.
func ParseBackendErrorMode(s string) (BackendErrorMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "emit":
		return BackendEmit, nil
	case "mute":
		return BackendMute, nil
	default:
		return BackendEmit, fmt.Errorf("invalid backend error mode: %q (expected: emit|mute)", s)
	}
}

// AlignMode selects how the subject column is measured.
type AlignMode uint8

const (
	// AlignRunes counts characters (runes), as Format does.
	AlignRunes AlignMode = iota
	// AlignCells counts terminal display cells, as FormatCells does.
	AlignCells
)

// String returns the string representation of AlignMode.
func (m AlignMode) String() string {
	switch m {
	case AlignRunes:
		return "runes"
	case AlignCells:
		return "cells"
	default:
		return "unknown"
	}
}

// ParseAlignMode converts a string to AlignMode.
func ParseAlignMode(s string) (AlignMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "runes":
		return AlignRunes, nil
	case "cells":
		return AlignCells, nil
	default:
		return AlignRunes, fmt.Errorf("invalid align mode: %q (expected: runes|cells)", s)
	}
}
