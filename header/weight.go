package header

import "strconv"

// parseWeight parses a "q" parameter value in [0.0, 1.0]. Invalid input
// returns an error so callers can fall back to the 1.0 default; this
// mirrors a best-effort parse rather than validating the RFC 2616 qvalue
// grammar strictly.
func parseWeight(s string) (float64, error) {
	return strconv.ParseFloat(s, 64)
}
