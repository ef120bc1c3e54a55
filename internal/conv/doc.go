// Package conv provides checked integer conversions between the
// platform-native int and uint types and every supported width.
//
// These functions perform bounds checking so that narrowing never truncates
// silently. Callers decide whether a failure is recoverable: the index
// package turns every error into an index-too-large panic.
//
// For conversions that are provably safe by domain constraints (e.g., loop
// indices, bounded counters), use direct type casts instead to avoid overhead.
package conv
