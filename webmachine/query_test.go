package webmachine

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseQuery(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want map[string][]string
	}{
		{"empty", "", nil},
		{"single pair", "a=1", map[string][]string{"a": {"1"}}},
		{"multiple pairs", "a=1&b=2", map[string][]string{"a": {"1"}, "b": {"2"}}},
		{"repeated key", "a=1&a=2", map[string][]string{"a": {"1", "2"}}},
		{"bare name, no equals", "flag", map[string][]string{"flag": {""}}},
		{"plus maps to space", "q=a+b", map[string][]string{"q": {"a b"}}},
		{"percent decoding", "q=a%20b", map[string][]string{"q": {"a b"}}},
		{"malformed percent passthrough", "q=100%", map[string][]string{"q": {"100%"}}},
		{"empty piece skipped", "a=1&&b=2", map[string][]string{"a": {"1"}, "b": {"2"}}},
		{"decoded name", "a%20b=1", map[string][]string{"a b": {"1"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseQuery(tt.raw)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("parseQuery(%q) mismatch (-want +got):\n%s", tt.raw, diff)
			}
		})
	}
}
