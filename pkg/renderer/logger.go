package renderer

import (
	"fmt"

	"github.com/mvega/pathtracer/pkg/core"
)

// DefaultLogger implements core.Logger by writing to stdout.
type DefaultLogger struct{}

// NewDefaultLogger creates a logger that writes to stdout.
func NewDefaultLogger() core.Logger {
	return &DefaultLogger{}
}

// Printf writes a formatted line to stdout.
func (DefaultLogger) Printf(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}

// nopLogger discards everything; it's the Renderer's default when no
// Logger is configured, so tests and library callers never get
// unsolicited stdout output.
type nopLogger struct{}

func (nopLogger) Printf(string, ...interface{}) {}
