// Package core holds the shared value types exchanged between the query
// building and result sampling halves of logsift. Keeping them here avoids
// dependency cycles between the leaf packages and the orchestration layer.
package core

// LogRecord is a single projected log event as returned by a search backend.
// Only Message is interpreted by this module (for pattern-based sampling);
// every other field is carried through untouched for the caller.
type LogRecord struct {
	// Timestamp is epoch seconds of the event, zero when unknown.
	Timestamp int64 `json:"timestamp,omitempty"`
	// Message is the log line or event body.
	Message string `json:"message"`
	// Service is the emitting service, when the backend projects one.
	Service string `json:"service,omitempty"`
	// Attributes carries any additional projected fields verbatim.
	Attributes map[string]string `json:"attributes,omitempty"`
}
