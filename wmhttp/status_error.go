// Package wmhttp holds the small HTTP-facing types shared between resource
// callbacks and the decision-graph engine.
package wmhttp

import "fmt"

// StatusError is returned by a resource's fallible decision callbacks
// (delete_resource, process_post, create_path, process_put in spec
// terms) to short-circuit the decision graph directly to a terminal
// status, per spec.md §4.3's "a predicate may additionally return
// StatusCode(u)".
type StatusError struct {
	Status int
	Reason string
}

// NewStatusError builds a StatusError for the given HTTP status code.
func NewStatusError(status int, reason string) *StatusError {
	return &StatusError{Status: status, Reason: reason}
}

func (e *StatusError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("webmachine: status %d", e.Status)
	}
	return fmt.Sprintf("webmachine: status %d: %s", e.Status, e.Reason)
}
