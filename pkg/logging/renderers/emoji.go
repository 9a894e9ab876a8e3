package renderers

import (
	"fmt"
	"io"
	"sync"

	"conlog/pkg/logging/types"
)

// Emoji prefixes per severity.
const (
	verboseEmoji = "⚙️"
	debugEmoji   = "💬"
	infoEmoji    = "ℹ️"
	warnEmoji    = "⚠️"
	errorEmoji   = "⛔"
)

// EmojiRenderer implements the Renderer interface with an emoji prefix per
// severity. It is the default renderer.
type EmojiRenderer struct {
	out io.Writer
	mu  sync.Mutex
}

var _ types.Renderer = (*EmojiRenderer)(nil)

// NewEmojiRenderer creates a new emoji renderer writing to out
func NewEmojiRenderer(out io.Writer) *EmojiRenderer {
	return &EmojiRenderer{out: out}
}

// Verbose renders a verbose message
func (r *EmojiRenderer) Verbose(message string) {
	r.write(verboseEmoji, message)
}

// Debug renders a debug message
func (r *EmojiRenderer) Debug(message string) {
	r.write(debugEmoji, message)
}

// Info renders an info message
func (r *EmojiRenderer) Info(message string) {
	r.write(infoEmoji, message)
}

// Warn renders a warning message
func (r *EmojiRenderer) Warn(message string) {
	r.write(warnEmoji, message)
}

// Error renders an error message
func (r *EmojiRenderer) Error(message string) {
	r.write(errorEmoji, message)
}

func (r *EmojiRenderer) write(prefix, message string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	fmt.Fprintln(r.out, prefix+" "+message)
}
