package header

import "testing"

func TestParseMediaLanguage(t *testing.T) {
	cases := []struct {
		in       string
		wantMain string
		wantSub  string
	}{
		{"en", "en", ""},
		{"en-gb", "en", "gb"},
		{"", "*", ""},
	}
	for _, c := range cases {
		got := ParseMediaLanguage(c.in)
		if got.Main != c.wantMain || got.Sub != c.wantSub {
			t.Errorf("ParseMediaLanguage(%q) = %+v, want main=%q sub=%q", c.in, got, c.wantMain, c.wantSub)
		}
	}
}

func TestMediaLanguage_Matches(t *testing.T) {
	cases := []struct {
		produced   string
		acceptable string
		want       bool
	}{
		{"en", "en", true},
		{"en-gb", "en-gb", true},
		{"en", "en-gb", true},   // producer is a dash-bounded prefix of acceptable
		{"en", "enfoo", false},  // not dash-bounded, must not match
		{"en-gb", "en", false},  // acceptable more general than producer does not reverse-match
		{"fr", "*", true},
		{"fr", "en", false},
	}
	for _, c := range cases {
		got := ParseMediaLanguage(c.produced).matches(ParseMediaLanguage(c.acceptable))
		if got != c.want {
			t.Errorf("ParseMediaLanguage(%q).matches(%q) = %v, want %v", c.produced, c.acceptable, got, c.want)
		}
	}
}
