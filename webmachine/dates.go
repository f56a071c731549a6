package webmachine

import "time"

// rfc2822 is the numeric-offset layout used to read date headers
// (If-Modified-Since, If-Unmodified-Since); formatRFC2822 writes
// Last-Modified and Expires in the same shape with a literal "GMT" zone.
// Parsing preserves the original offset; comparisons use absolute instants
// via time.Time.Equal/Before/After.
const rfc2822 = "Mon, 02 Jan 2006 15:04:05 -0700"

// parseRFC2822 parses an RFC 2822 date header value. Many real clients send
// "GMT" in place of a numeric offset, so that literal is accepted too.
func parseRFC2822(value string) (time.Time, bool) {
	if t, err := time.Parse(rfc2822, value); err == nil {
		return t, true
	}
	if t, err := time.Parse("Mon, 02 Jan 2006 15:04:05 MST", value); err == nil {
		return t, true
	}
	return time.Time{}, false
}

// formatRFC2822 renders t as an RFC 2822 date header value in GMT.
func formatRFC2822(t time.Time) string {
	return t.UTC().Format("Mon, 02 Jan 2006 15:04:05 GMT")
}
