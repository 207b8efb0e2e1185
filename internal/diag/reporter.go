package diag

import (
	"io"
	"os"
	"sync"

	"github.com/fatih/color"
	"golang.org/x/term"

	"kailash/internal/gfx"
)

// backendLabel is the subject of lines produced by ReportBackendError.
const backendLabel = "OpenGL Error: "

// Config holds reporter configuration.
type Config struct {
	Verbosity int              // informational threshold (inclusive)
	Output    io.Writer        // sink; nil means os.Stderr
	Color     ColorMode        // label colorization
	Backend   BackendErrorMode // what to do with backend error codes
	Align     AlignMode        // how the subject column is measured
}

// DefaultConfig returns the configuration used by NewWriter.
func DefaultConfig() Config {
	return Config{Verbosity: DefaultVerbosity, Color: ColorAuto, Backend: BackendEmit}
}

// sink serializes writes so every line reaches the writer in one piece.
// It is shared between a reporter and the reporters derived from it.
type sink struct {
	mu sync.Mutex
	w  io.Writer
}

func (s *sink) writeLine(line string) {
	buf := make([]byte, 0, len(line)+1)
	buf = append(buf, line...)
	buf = append(buf, '\n')

	s.mu.Lock()
	defer s.mu.Unlock()
	// Best-effort write - a failing sink must not disturb the caller
	_, _ = s.w.Write(buf) //nolint:errcheck
}

// Reporter formats diagnostic lines and writes them to a sink.
// A Reporter is immutable once built; its methods are safe for concurrent use.
type Reporter struct {
	out       *sink
	verbosity int
	backend   BackendErrorMode
	align     AlignMode
	colorize  bool
}

// New creates a Reporter based on Config.
func New(cfg Config) *Reporter {
	w := cfg.Output
	if w == nil {
		w = os.Stderr
	}
	return &Reporter{
		out:       &sink{w: w},
		verbosity: cfg.Verbosity,
		backend:   cfg.Backend,
		align:     cfg.Align,
		colorize:  shouldColorize(cfg.Color, w),
	}
}

// NewWriter returns a Reporter with the default threshold writing to w.
func NewWriter(w io.Writer) *Reporter {
	cfg := DefaultConfig()
	cfg.Output = w
	return New(cfg)
}

// Nop discards everything. ReportBackendError still clears the register.
var Nop = New(Config{Verbosity: DefaultVerbosity, Output: io.Discard, Color: ColorOff, Backend: BackendMute})

func shouldColorize(mode ColorMode, w io.Writer) bool {
	switch mode {
	case ColorOn:
		return true
	case ColorOff:
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// Verbosity returns the informational threshold.
func (r *Reporter) Verbosity() int {
	return r.verbosity
}

// BackendMode returns how backend error codes are handled.
func (r *Reporter) BackendMode() BackendErrorMode {
	return r.backend
}

// Colorized reports whether labels are written with ANSI colors.
func (r *Reporter) Colorized() bool {
	return r.colorize
}

// Alignment returns how the subject column is measured.
func (r *Reporter) Alignment() AlignMode {
	return r.align
}

// WithVerbosity returns a reporter with a different threshold that shares
// the sink, color and backend settings of r.
func (r *Reporter) WithVerbosity(level int) *Reporter {
	derived := *r
	derived.verbosity = level
	return &derived
}

// Enabled reports whether LogInfo at level would write anything.
func (r *Reporter) Enabled(level int) bool {
	return level <= r.verbosity
}

// LogError writes an error line. Errors are never filtered.
func (r *Reporter) LogError(name, message string) {
	r.emit(SevError, name, message)
}

// LogInfo writes an informational line if level <= Verbosity().
// Lower levels are more important; level 0 passes any non-negative threshold.
func (r *Reporter) LogInfo(level int, name, message string) {
	if !r.Enabled(level) {
		return
	}
	r.emit(SevInfo, name, message)
}

// ReportBackendError reads the backend's error register once. A non-zero code
// is written as an error-class line unless the reporter runs in BackendMute.
// The code read is returned so callers can poll until NoError; the reporter
// never loops by itself. Call it only from the goroutine owning the context.
func (r *Reporter) ReportBackendError(b gfx.Backend) gfx.ErrorCode {
	if b == nil {
		return gfx.NoError
	}
	code := b.Error()
	if code == gfx.NoError || r.backend == BackendMute {
		return code
	}
	r.emit(SevBackend, backendLabel, code.String())
	return code
}

func (r *Reporter) emit(sev Severity, subject, detail string) {
	pad := runePadding(subject)
	if r.align == AlignCells {
		pad = cellPadding(subject)
	}
	if r.colorize {
		// padding is computed on the plain subject so escapes don't shift columns
		subject = labelColor(sev).Sprint(subject)
	}
	r.out.writeLine(join(subject, pad, detail))
}

var (
	errorLabelColor   = forceColor(color.New(color.FgRed, color.Bold))
	backendLabelColor = forceColor(color.New(color.FgMagenta, color.Bold))
	infoLabelColor    = forceColor(color.New(color.FgCyan))
)

// forceColor detaches c from color.NoColor; the reporter decides on its own.
func forceColor(c *color.Color) *color.Color {
	c.EnableColor()
	return c
}

func labelColor(sev Severity) *color.Color {
	switch sev {
	case SevError:
		return errorLabelColor
	case SevBackend:
		return backendLabelColor
	default:
		return infoLabelColor
	}
}
