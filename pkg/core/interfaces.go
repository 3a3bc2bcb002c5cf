package core

// Logger interface for renderer and loader logging
type Logger interface {
	Printf(format string, args ...interface{})
}

// DiscardLogger drops every message. Used by tests and quiet renders.
type DiscardLogger struct{}

// Printf implements Logger
func (DiscardLogger) Printf(string, ...interface{}) {}
