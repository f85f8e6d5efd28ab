// Package audit records security-relevant vault events. Implementations
// receive operation outcomes only; secret material never reaches a logger.
package audit

import "time"

// Event describes one completed vault operation.
type Event struct {
	// Time is when the operation finished.
	Time time.Time
	// Operation names the operation: "seal", "open", "keygen", ...
	Operation string
	// Outcome is "ok" or "error".
	Outcome string
	// Detail carries non-sensitive context, such as a sentinel error message.
	Detail string
}

// Logger consumes audit events. Implementations must be safe for concurrent
// use.
type Logger interface {
	Log(Event)
}

// NoOp discards all events. It is the default for embedded library use.
type NoOp struct{}

// Log implements Logger.
func (NoOp) Log(Event) {}
