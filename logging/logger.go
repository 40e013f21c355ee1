// Package logging provides the prefixed, colored console logger used across
// the service wiring.
package logging

import (
	"errors"
	"io"
	"log"
)

const colorReset = "\033[0m"

// Logger writes timestamped lines tagged with a component prefix and ANSI
// color. It satisfies the service logger interface.
type Logger struct {
	prefix string
	color  string
	out    *log.Logger
}

// New creates a Logger for one component. The color is an ANSI escape
// sequence; see the config color constants.
func New(prefix, color string, w io.Writer) (*Logger, error) {
	if prefix == "" {
		return nil, errors.New("logger prefix is required")
	}
	return &Logger{
		prefix: prefix,
		color:  color,
		out:    log.New(w, "", log.LstdFlags),
	}, nil
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.write("INFO", msg)
}

// Error logs an error message.
func (l *Logger) Error(msg string) {
	l.write("ERROR", msg)
}

func (l *Logger) write(level, msg string) {
	l.out.Printf("%s[%s] [%s]%s %s", l.color, l.prefix, level, colorReset, msg)
}
