package webmachine

import "strings"

// parseQuery splits a raw query string on '&', then each piece on the first
// '=', percent-decoding names and values and mapping '+' to space. Malformed
// "%HH" escapes are passed through literally rather than rejected (spec.md
// §6.5); a bare piece with no '=' yields an empty-string value entry.
func parseQuery(raw string) map[string][]string {
	if raw == "" {
		return nil
	}
	out := make(map[string][]string)
	for _, piece := range strings.Split(raw, "&") {
		if piece == "" {
			continue
		}
		name, value, _ := strings.Cut(piece, "=")
		key := decodeQueryComponent(name)
		out[key] = append(out[key], decodeQueryComponent(value))
	}
	return out
}

// decodeQueryComponent percent-decodes s and maps '+' to space. A malformed
// "%" escape (not followed by two hex digits) is copied through unchanged,
// matching original_source's leniency rather than erroring.
func decodeQueryComponent(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '+':
			sb.WriteByte(' ')
		case '%':
			if i+2 < len(s) && isHex(s[i+1]) && isHex(s[i+2]) {
				sb.WriteByte(unhex(s[i+1])<<4 | unhex(s[i+2]))
				i += 2
			} else {
				sb.WriteByte('%')
			}
		default:
			sb.WriteByte(s[i])
		}
	}
	return sb.String()
}

func isHex(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

func unhex(c byte) byte {
	switch {
	case c >= '0' && c <= '9':
		return c - '0'
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10
	}
	return 0
}
