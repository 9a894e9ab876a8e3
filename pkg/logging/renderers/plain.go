package renderers

import (
	"fmt"
	"io"
	"sync"

	"conlog/pkg/logging/types"
)

// Bracketed uppercase tags per severity.
const (
	verboseTag = "[VERBOSE]"
	debugTag   = "[DEBUG]"
	infoTag    = "[INFO]"
	warnTag    = "[WARNING]"
	errorTag   = "[ERROR]"
)

// PlainRenderer implements the Renderer interface with a bracketed uppercase
// severity tag per line, for terminals where emoji output is unwanted
type PlainRenderer struct {
	out io.Writer
	mu  sync.Mutex
}

var _ types.Renderer = (*PlainRenderer)(nil)

// NewPlainRenderer creates a new plain-text renderer writing to out
func NewPlainRenderer(out io.Writer) *PlainRenderer {
	return &PlainRenderer{out: out}
}

// Verbose renders a verbose message
func (r *PlainRenderer) Verbose(message string) {
	r.write(verboseTag, message)
}

// Debug renders a debug message
func (r *PlainRenderer) Debug(message string) {
	r.write(debugTag, message)
}

// Info renders an info message
func (r *PlainRenderer) Info(message string) {
	r.write(infoTag, message)
}

// Warn renders a warning message
func (r *PlainRenderer) Warn(message string) {
	r.write(warnTag, message)
}

// Error renders an error message
func (r *PlainRenderer) Error(message string) {
	r.write(errorTag, message)
}

func (r *PlainRenderer) write(tag, message string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	fmt.Fprintln(r.out, tag+" "+message)
}
