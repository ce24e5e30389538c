// Package search orchestrates the full query lifecycle for an agent-driven
// log search: resolve loosely structured time inputs into a validated range,
// compose the backend query string, hand the spec to an injected Client and
// reduce the fetched records to a bounded sample.
//
// The package owns no network I/O. Client is the seam to the remote backend;
// implementations live with the caller. Everything in this package reads
// "now" through an injected clockwork.Clock, so a frozen clock makes every
// produced QuerySpec deterministic.
package search
