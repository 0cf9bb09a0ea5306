package pipeflow

import "github.com/cpmech/gosl/io"

// Logger is the pluggable warning sink, gated the same way verbose
// diagnostic output is gated elsewhere in this codebase, and backed by
// gosl/io's colored-printf helpers.
type Logger interface {
	Warnf(format string, args ...interface{})
	Infof(format string, args ...interface{})
}

// StdLogger writes warnings in red and info lines in cyan using gosl/io.
type StdLogger struct {
	Verbose bool
}

// NewStdLogger returns a StdLogger with Verbose=true.
func NewStdLogger() *StdLogger { return &StdLogger{Verbose: true} }

func (o *StdLogger) Warnf(format string, args ...interface{}) {
	io.Pfred("pipeflow warning: "+format+"\n", args...)
}

func (o *StdLogger) Infof(format string, args ...interface{}) {
	if o.Verbose {
		io.Pfcyan("pipeflow: "+format+"\n", args...)
	}
}

// NullLogger discards everything; useful for tests and library embedders
// that want total silence without a nil-check at every call site.
type NullLogger struct{}

func (NullLogger) Warnf(string, ...interface{}) {}
func (NullLogger) Infof(string, ...interface{}) {}
