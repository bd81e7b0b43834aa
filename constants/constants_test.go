package constants

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDefaults(t *testing.T) {
	t.Setenv("CHORD_ADDR", "")
	t.Setenv("CHORD_IN_PORT", "")
	t.Setenv("CHORD_DEBOUNCE_MS", "")
	t.Setenv("LOG_LEVEL", "")

	assert := assert.New(t)
	assert.Equal(":8080", GetAddr())
	assert.Equal(0, GetInPort())
	assert.Equal(30*time.Millisecond, GetDebounce())
	assert.Equal("info", GetLogLevel())
}

func TestFromEnvironment(t *testing.T) {
	t.Setenv("CHORD_ADDR", "localhost:9000")
	t.Setenv("CHORD_IN_PORT", "-1")
	t.Setenv("CHORD_DEBOUNCE_MS", "100")
	t.Setenv("LOG_LEVEL", "debug")

	assert := assert.New(t)
	assert.Equal("localhost:9000", GetAddr())
	assert.Equal(-1, GetInPort())
	assert.Equal(100*time.Millisecond, GetDebounce())
	assert.Equal("debug", GetLogLevel())
}

func TestBadNumberFallsBack(t *testing.T) {
	t.Setenv("CHORD_DEBOUNCE_MS", "soon")
	assert.Equal(t, 30*time.Millisecond, GetDebounce())
}
