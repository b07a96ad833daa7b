package app

import (
	"fmt"
	"io"
	"os"
)

// Logger interface for output control.
type Logger interface {
	Info(format string, args ...any)
	Debug(format string, args ...any)
	Warn(format string, args ...any)
	Error(format string, args ...any)
}

// StderrLogger writes diagnostics to stderr. Info and Error always print;
// Debug and Warn only in verbose mode.
type StderrLogger struct {
	Verbose bool
	Out     io.Writer
}

// NewLogger creates a logger writing to out, or to stderr when out is nil.
func NewLogger(verbose bool, out io.Writer) *StderrLogger {
	return &StderrLogger{Verbose: verbose, Out: out}
}

func (l *StderrLogger) Info(format string, args ...any) {
	fmt.Fprintf(l.out(), format+"\n", args...)
}

func (l *StderrLogger) Debug(format string, args ...any) {
	if l.Verbose {
		fmt.Fprintf(l.out(), "📡 "+format+"\n", args...)
	}
}

func (l *StderrLogger) Warn(format string, args ...any) {
	if l.Verbose {
		fmt.Fprintf(l.out(), "⚠️  "+format+"\n", args...)
	}
}

func (l *StderrLogger) Error(format string, args ...any) {
	fmt.Fprintf(l.out(), "❌ "+format+"\n", args...)
}

func (l *StderrLogger) out() io.Writer {
	if l.Out == nil {
		return os.Stderr
	}
	return l.Out
}
