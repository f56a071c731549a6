// Package webmachine implements a webmachine-style HTTP decision graph: a
// fixed, acyclic transition table over named decision nodes that drives a
// resource description to a concrete HTTP response. See Dispatcher and
// Resource.
package webmachine
