package renderers_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"conlog/pkg/logging/renderers"
	"conlog/pkg/logging/types"
)

func TestEmojiRenderer(t *testing.T) {
	tests := []struct {
		name     string
		render   func(r types.Renderer)
		expected string
	}{
		{"verbose", func(r types.Renderer) { r.Verbose("spinning up") }, "⚙️ spinning up\n"},
		{"debug", func(r types.Renderer) { r.Debug("spinning up") }, "💬 spinning up\n"},
		{"info", func(r types.Renderer) { r.Info("spinning up") }, "ℹ️ spinning up\n"},
		{"warn", func(r types.Renderer) { r.Warn("spinning up") }, "⚠️ spinning up\n"},
		{"error", func(r types.Renderer) { r.Error("spinning up") }, "⛔ spinning up\n"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			var buf bytes.Buffer
			test.render(renderers.NewEmojiRenderer(&buf))
			assert.Equal(t, test.expected, buf.String())
		})
	}
}

func TestPlainRenderer(t *testing.T) {
	tests := []struct {
		name     string
		render   func(r types.Renderer)
		expected string
	}{
		{"verbose", func(r types.Renderer) { r.Verbose("low disk") }, "[VERBOSE] low disk\n"},
		{"debug", func(r types.Renderer) { r.Debug("low disk") }, "[DEBUG] low disk\n"},
		{"info", func(r types.Renderer) { r.Info("low disk") }, "[INFO] low disk\n"},
		{"warn", func(r types.Renderer) { r.Warn("low disk") }, "[WARNING] low disk\n"},
		{"error", func(r types.Renderer) { r.Error("low disk") }, "[ERROR] low disk\n"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			var buf bytes.Buffer
			test.render(renderers.NewPlainRenderer(&buf))
			assert.Equal(t, test.expected, buf.String())
		})
	}
}

func TestRendererOneLinePerCall(t *testing.T) {
	var buf bytes.Buffer
	r := renderers.NewPlainRenderer(&buf)

	r.Info("first")
	r.Error("second")

	assert.Equal(t, "[INFO] first\n[ERROR] second\n", buf.String())
}
