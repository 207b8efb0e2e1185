package diag

// Severity defines the class of a diagnostic line.
type Severity uint8

const (
	// SevInfo lines are gated by the reporter's verbosity threshold.
	SevInfo Severity = iota
	// SevError lines are always emitted.
	SevError
	// SevBackend lines are derived from the graphics backend's error register.
	SevBackend
)

func (s Severity) String() string {
	switch s {
	case SevInfo:
		return "INFO"
	case SevError:
		return "ERROR"
	case SevBackend:
		return "BACKEND"
	}
	return "UNKNOWN"
}
