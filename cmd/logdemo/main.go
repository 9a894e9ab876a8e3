package main

import (
	"conlog/internal/config"
	"conlog/pkg/logging"
)

type demoPayload struct {
	Attempts int
}

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize logger
	logging.InitializeLogging(cfg)

	logging.Info("logdemo starting with threshold", cfg.Logging.Threshold)
	logging.Verbose("verbose output enabled")
	logging.Debug("resolved renderer variant:", cfg.Logging.Renderer)
	logging.Warn("sample warning with mixed arguments:", 42, true, nil)
	logging.Error("sample error with a pointer argument:", &demoPayload{Attempts: 3})
}
