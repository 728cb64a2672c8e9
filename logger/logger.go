// Package logger implements the colored prefix logger used across the
// application. Each subsystem creates its own instance with a distinct
// prefix and color so interleaved output stays readable.
package logger

import (
	"errors"
	"fmt"
	"io"
	"sync"
)

const colorReset = "\033[0m"

// Logger writes level-tagged lines with a colored subsystem prefix.
type Logger struct {
	prefix string
	color  string
	out    io.Writer
	mu     sync.Mutex
}

// New creates a logger writing to out with the given prefix and ANSI color.
func New(prefix, color string, out io.Writer) (*Logger, error) {
	if prefix == "" {
		return nil, errors.New("logger prefix is required")
	}
	if out == nil {
		return nil, errors.New("logger output is required")
	}
	return &Logger{
		prefix: prefix,
		color:  color,
		out:    out,
	}, nil
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.write("INFO", msg)
}

// Warning logs a warning message.
func (l *Logger) Warning(msg string) {
	l.write("WARNING", msg)
}

// Error logs an error message.
func (l *Logger) Error(msg string) {
	l.write("ERROR", msg)
}

func (l *Logger) write(level, msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.out, "%s[%s] [%s]%s %s\n", l.color, l.prefix, level, colorReset, msg)
}
