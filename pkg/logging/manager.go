package logging

import (
	"os"
	"sync"

	"conlog/internal/config"
	"conlog/pkg/logging/renderers"
	"conlog/pkg/logging/types"
)

// Global logger instance. Resolved from the environment on first use unless a
// host installs one explicitly via InitializeLogging.
var (
	globalMu     sync.RWMutex
	globalLogger *ConsoleLogger
	resolveOnce  sync.Once
)

// InitializeLogging installs the process-wide logger from the given
// configuration
func InitializeLogging(cfg *config.Config) {
	logger := NewConsoleLogger(cfg.Logging.Threshold, newRenderer(cfg.Logging.Renderer))

	globalMu.Lock()
	globalLogger = logger
	globalMu.Unlock()
}

// GetGlobalLogger returns the process-wide logger. Without an explicit
// InitializeLogging call, the first use resolves the configuration from the
// environment exactly once and caches it for the process lifetime; later
// environment changes have no effect.
func GetGlobalLogger() *ConsoleLogger {
	globalMu.RLock()
	logger := globalLogger
	globalMu.RUnlock()
	if logger != nil {
		return logger
	}

	resolveOnce.Do(func() {
		cfg := config.Load()

		globalMu.Lock()
		if globalLogger == nil {
			globalLogger = NewConsoleLogger(cfg.Logging.Threshold, newRenderer(cfg.Logging.Renderer))
		}
		globalMu.Unlock()
	})

	globalMu.RLock()
	defer globalMu.RUnlock()
	return globalLogger
}

// newRenderer creates the renderer variant named by the configuration,
// falling back to the emoji default
func newRenderer(variant string) types.Renderer {
	switch variant {
	case config.RendererPlain:
		return renderers.NewPlainRenderer(os.Stdout)
	default:
		return renderers.NewEmojiRenderer(os.Stdout)
	}
}

// SetLevel overrides the process-wide rendering threshold
func SetLevel(threshold types.Severity) {
	GetGlobalLogger().SetLevel(threshold)
}

// SetRenderer swaps the process-wide renderer
func SetRenderer(renderer types.Renderer) {
	GetGlobalLogger().SetRenderer(renderer)
}

// Verbose logs a verbose message through the process-wide logger, with the
// caller's source location and a wall-clock timestamp
func Verbose(items ...any) {
	GetGlobalLogger().verboseAt(2, items...)
}

// Debug logs a debug message through the process-wide logger
func Debug(items ...any) {
	GetGlobalLogger().Debug(items...)
}

// Info logs an info message through the process-wide logger
func Info(items ...any) {
	GetGlobalLogger().Info(items...)
}

// Warn logs a warning message through the process-wide logger
func Warn(items ...any) {
	GetGlobalLogger().Warn(items...)
}

// Error logs an error message through the process-wide logger
func Error(items ...any) {
	GetGlobalLogger().Error(items...)
}
