// Package diag is the engine's diagnostics reporter.
//
// # Purpose
//
// Every subsystem reports through a *Reporter: error lines are always written,
// informational lines are gated by a verbosity threshold, and graphics backend
// faults are read from the backend's error register and translated into text.
//
// # Line format
//
// Each diagnostic is one line: the subject left-justified in a column of at
// least FieldWidth characters, immediately followed by the detail.
//
//	Shader Compile                          success
//	OpenGL Error:                           InvalidEnum
//
// Subjects that do not fit are not truncated; the detail follows them directly.
// Reporters built with AlignCells measure the column in terminal display cells
// instead (see FormatCells), which keeps CJK subjects visually aligned.
//
// # Verbosity
//
// Lower levels are more important. LogInfo(level, ...) writes iff
// level <= Verbosity(). The threshold is fixed when the reporter is built;
// subsystems that need their own threshold derive one with WithVerbosity,
// which keeps writing to the same sink.
//
// # Backend errors
//
// ReportBackendError reads one flag from a gfx.Backend per call. NoError
// produces no output, so polling every frame is cheap and quiet. In
// BackendMute mode the register is read and cleared but nothing is written.
//
// # Sinks
//
// The sink is an injected io.Writer. A reporter and the reporters derived
// from it serialize their writes, so concurrent callers never interleave
// partial lines. Write errors are ignored.
//
// # Context propagation
//
//	ctx = diag.WithReporter(ctx, r)
//	diag.FromContext(ctx).LogInfo(2, "Renderer", "ready")
package diag
