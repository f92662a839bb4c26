// Package logging provides the leveled logger used by the cmsgraph CLI.
package logging

// Logger is the leveled logging contract. Arguments are alternating
// key/value pairs.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
	WithFields(fields map[string]any) Logger
}

// Provider hands out named loggers.
type Provider interface {
	GetLogger(name string) Logger
}

// NoOp returns a logger that discards everything.
func NoOp() Logger {
	return noop{}
}

type noop struct{}

func (noop) Debug(string, ...any)              {}
func (noop) Info(string, ...any)               {}
func (noop) Warn(string, ...any)               {}
func (noop) Error(string, ...any)              {}
func (n noop) WithFields(map[string]any) Logger { return n }
