// Package wmerrors defines the sentinel errors raised internally by the
// decision-graph engine, adapted from the teacher's internal/errorutil
// sentinel-string pattern.
package wmerrors

import "github.com/gofrack/webmachine/internal/errorutil"

const (
	// ErrTransitionLimitExceeded is returned (and logged at error level)
	// when a single request's decision-graph traversal exceeds its
	// configured transition limit — a misconfigured or cyclic transition
	// table, never reachable by the shipped table.
	ErrTransitionLimitExceeded errorutil.Error = "webmachine: transition limit exceeded"

	// ErrUnknownNode is returned when the walk lands on a non-terminal node
	// that has no registered predicate.
	ErrUnknownNode errorutil.Error = "webmachine: unknown decision node"

	// ErrInvalidResource identifies a resource description that fails
	// structural validation. The engine does not validate resources (every
	// Resource callback is optional) and does not return this error itself.
	ErrInvalidResource errorutil.Error = "webmachine: invalid resource"
)
