package logging

// Re-export types so hosts only need to import this package
import "conlog/pkg/logging/types"

type Severity = types.Severity
type Renderer = types.Renderer

// Re-export constants
const (
	Off          = types.Off
	ErrorLevel   = types.ErrorLevel
	WarnLevel    = types.WarnLevel
	InfoLevel    = types.InfoLevel
	DebugLevel   = types.DebugLevel
	VerboseLevel = types.VerboseLevel
)
