package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

type pointee struct {
	ID int
}

func (p *pointee) String() string {
	return "custom description"
}

type valueStringer struct{}

func (valueStringer) String() string {
	return "custom value"
}

func TestStringifyJoinsInOrder(t *testing.T) {
	assert.Equal(t, "a b c", stringify([]any{"a", "b", "c"}))
	assert.Equal(t, "start 42", stringify([]any{"start", 42}))
	assert.Equal(t, "", stringify(nil))
}

func TestStringifyNil(t *testing.T) {
	assert.Equal(t, "nil", stringify([]any{nil}))

	var absent *pointee
	assert.Equal(t, "nil", stringifyItem(absent))

	assert.Equal(t, "a nil b", stringify([]any{"a", nil, "b"}))
}

func TestStringifyPointerRendersTypeName(t *testing.T) {
	// The String method on *pointee must be ignored.
	assert.Equal(t, "pointee", stringifyItem(&pointee{ID: 7}))
	assert.Equal(t, "Buffer", stringifyItem(&bytes.Buffer{}))
	assert.Equal(t, "struct { X int }", stringifyItem(&struct{ X int }{}))
}

func TestStringifyDefaultRepresentation(t *testing.T) {
	assert.Equal(t, "42", stringifyItem(42))
	assert.Equal(t, "true", stringifyItem(true))
	assert.Equal(t, "1.5", stringifyItem(1.5))
	assert.Equal(t, "payload", stringifyItem("payload"))

	// Value-typed arguments keep their default representation, which honors
	// a String method.
	assert.Equal(t, "custom value", stringifyItem(valueStringer{}))
}
