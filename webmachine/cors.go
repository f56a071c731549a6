package webmachine

import "strings"

// HeaderPair is a single ordered header name/value, used for the
// OPTIONS/default CORS header set where insertion order matters (spec.md
// §3's WebmachineResponse invariant: header insertion order is preserved).
type HeaderPair struct {
	Name  string
	Value string
}

// defaultCORSHeaders builds the three default CORS headers in the fixed
// order the reference implementation emits them: Allow-Origin, then
// -Methods, then -Headers.
func defaultCORSHeaders(allowedMethods []string) []HeaderPair {
	return []HeaderPair{
		{Name: "Access-Control-Allow-Origin", Value: "*"},
		{Name: "Access-Control-Allow-Methods", Value: strings.Join(allowedMethods, ", ")},
		{Name: "Access-Control-Allow-Headers", Value: "Content-Type"},
	}
}
