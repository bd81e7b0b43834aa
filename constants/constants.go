package constants

import (
	"os"
	"strconv"
	"time"
)

func GetAddr() string {
	addr := os.Getenv("CHORD_ADDR")
	if addr != "" {
		return addr
	}
	return ":8080"
}

// GetInPort is the index of the MIDI input to listen to. -1 means none.
func GetInPort() int {
	return getInt("CHORD_IN_PORT", 0)
}

func GetDebounce() time.Duration {
	return time.Duration(getInt("CHORD_DEBOUNCE_MS", DefaultDebounceMs)) * time.Millisecond
}

func GetLogLevel() string {
	level := os.Getenv("LOG_LEVEL")
	if level != "" {
		return level
	}
	return "info"
}

func getInt(name string, fallback int) int {
	val := os.Getenv(name)
	if val == "" {
		return fallback
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return fallback
	}
	return n
}

// long enough to gather the notes of one struck chord
const DefaultDebounceMs = 30
