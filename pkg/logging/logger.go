package logging

import (
	"fmt"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"time"

	"conlog/pkg/logging/types"
)

// ConsoleLogger is the main implementation of the logging facade. It holds
// the active threshold and renderer; messages below the threshold are dropped
// before any formatting work happens.
type ConsoleLogger struct {
	threshold types.Severity
	renderer  types.Renderer
	mu        sync.RWMutex
}

// NewConsoleLogger creates a new ConsoleLogger with the given threshold and
// renderer
func NewConsoleLogger(threshold types.Severity, renderer types.Renderer) *ConsoleLogger {
	return &ConsoleLogger{
		threshold: threshold,
		renderer:  renderer,
	}
}

// Verbose logs a verbose message with the caller's source location and a
// wall-clock timestamp
func (l *ConsoleLogger) Verbose(items ...any) {
	l.verboseAt(2, items...)
}

// Debug logs a debug message
func (l *ConsoleLogger) Debug(items ...any) {
	l.Log(types.DebugLevel, items...)
}

// Info logs an info message
func (l *ConsoleLogger) Info(items ...any) {
	l.Log(types.InfoLevel, items...)
}

// Warn logs a warning message
func (l *ConsoleLogger) Warn(items ...any) {
	l.Log(types.WarnLevel, items...)
}

// Error logs an error message
func (l *ConsoleLogger) Error(items ...any) {
	l.Log(types.ErrorLevel, items...)
}

// Log logs a message at the specified severity. Off never renders; verbose
// messages routed through here carry no call-site metadata, use Verbose for
// that.
func (l *ConsoleLogger) Log(severity types.Severity, items ...any) {
	threshold, renderer := l.snapshot()
	if severity == types.Off || threshold < severity {
		return
	}
	l.render(renderer, severity, stringify(items))
}

// SetLevel sets the rendering threshold
func (l *ConsoleLogger) SetLevel(threshold types.Severity) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.threshold = threshold
}

// GetLevel returns the current rendering threshold
func (l *ConsoleLogger) GetLevel() types.Severity {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.threshold
}

// SetRenderer swaps the active renderer
func (l *ConsoleLogger) SetRenderer(renderer types.Renderer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.renderer = renderer
}

// verboseAt logs a verbose message with call-site metadata captured calldepth
// frames above this function, in the manner of log.Output.
func (l *ConsoleLogger) verboseAt(calldepth int, items ...any) {
	threshold, renderer := l.snapshot()
	if threshold < types.VerboseLevel {
		return
	}
	timestamp := time.Now().Format("15:04:05.000")
	l.render(renderer, types.VerboseLevel, timestamp+" "+callSite(calldepth+1)+" - "+stringify(items))
}

func (l *ConsoleLogger) snapshot() (types.Severity, types.Renderer) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.threshold, l.renderer
}

func (l *ConsoleLogger) render(renderer types.Renderer, severity types.Severity, message string) {
	switch severity {
	case types.VerboseLevel:
		renderer.Verbose(message)
	case types.DebugLevel:
		renderer.Debug(message)
	case types.InfoLevel:
		renderer.Info(message)
	case types.WarnLevel:
		renderer.Warn(message)
	case types.ErrorLevel:
		renderer.Error(message)
	}
}

// callSite formats the caller's location skip frames up the stack as
// fileBase.function:line, with the file extension and the function's package
// qualifier stripped.
func callSite(skip int) string {
	pc, file, line, ok := runtime.Caller(skip)
	if !ok {
		return "unknown.unknown:0"
	}

	base := filepath.Base(file)
	base = strings.TrimSuffix(base, filepath.Ext(base))

	function := "unknown"
	if f := runtime.FuncForPC(pc); f != nil {
		function = f.Name()
		if i := strings.LastIndex(function, "."); i >= 0 {
			function = function[i+1:]
		}
	}

	return fmt.Sprintf("%s.%s:%d", base, function, line)
}
