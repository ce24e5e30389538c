// Package testutil provides builders for the synthetic log records used
// across package tests.
package testutil

import (
	"fmt"

	"github.com/hupe1980/logsift/core"
)

// templates are message classes that normalize to distinct patterns. The
// variable trace suffix appended by Records collapses to the same
// placeholder inside each class.
var templates = []string{
	"connection refused by upstream",
	"request completed",
	"slow query detected",
	"retry budget exhausted",
	"payload validation failed",
	"worker heartbeat missed",
}

// Records builds n records cycling over distinct message classes. distinct
// must be between 1 and len(templates). Timestamps ascend one second per
// record from a fixed base so ordering assertions are stable.
func Records(n, distinct int) []core.LogRecord {
	if distinct < 1 || distinct > len(templates) {
		panic(fmt.Sprintf("testutil: distinct must be in [1,%d], got %d", len(templates), distinct))
	}
	records := make([]core.LogRecord, n)
	for i := range records {
		records[i] = core.LogRecord{
			Timestamp: int64(1715000000 + i),
			Message:   fmt.Sprintf("%s trace=%08x", templates[i%distinct], 0xabc00000+i),
			Service:   "web",
		}
	}
	return records
}

// Record builds a single record with the given message.
func Record(ts int64, message string) core.LogRecord {
	return core.LogRecord{Timestamp: ts, Message: message}
}
