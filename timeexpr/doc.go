// Package timeexpr resolves the loosely structured time inputs produced by
// automated callers (typically LLM agents) into absolute epoch values.
//
// Three concerns live here:
//
//  1. Time expressions ("15m", "3d@11:45", "yesterday 08:00", RFC 3339
//     timestamps, bare epoch integers) parsed into epoch seconds
//  2. Duration strings ("500ms", "1.5s") parsed into nanoseconds
//  3. Range normalization guaranteeing a well-formed (from, to) pair
//
// Nothing in this package returns an error. Inputs that match no grammar
// resolve to a caller-supplied default; callers that need to observe the
// fallback use ParseDetailed. "Now" is always read through an injected
// clockwork.Clock so tests can freeze it.
package timeexpr
