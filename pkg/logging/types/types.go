package types

import "strconv"

// Severity represents the verbosity rank of a log message. Higher ranks are
// more verbose; a message renders iff the active threshold is at least as
// verbose as the message.
type Severity int

const (
	Off Severity = iota
	ErrorLevel
	WarnLevel
	InfoLevel
	DebugLevel
	VerboseLevel
)

// String returns the string representation of the severity
func (s Severity) String() string {
	switch s {
	case Off:
		return "off"
	case ErrorLevel:
		return "error"
	case WarnLevel:
		return "warning"
	case InfoLevel:
		return "info"
	case DebugLevel:
		return "debug"
	case VerboseLevel:
		return "verbose"
	default:
		return "info"
	}
}

// ParseSeverity parses an integer rank (0-5) into a Severity. Absent,
// non-integer, and out-of-range values all resolve to InfoLevel.
func ParseSeverity(raw string) Severity {
	rank, err := strconv.Atoi(raw)
	if err != nil || rank < int(Off) || rank > int(VerboseLevel) {
		return InfoLevel
	}
	return Severity(rank)
}

// Renderer defines the interface for console rendering backends. Each method
// writes exactly one line for the already-stringified message; rendering is
// side-effect only and cannot fail.
type Renderer interface {
	Verbose(message string)
	Debug(message string)
	Info(message string)
	Warn(message string)
	Error(message string)
}
