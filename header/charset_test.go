package header

import "testing"

func TestCharset_Matches(t *testing.T) {
	cases := []struct {
		provided   string
		acceptable string
		want       bool
	}{
		{"UTF-8", "utf-8", true},
		{"UTF-8", "*", true},
		{"UTF-8", "ISO-8859-1", false},
	}
	for _, c := range cases {
		got := (Charset{Name: c.provided}).matches(Charset{Name: c.acceptable})
		if got != c.want {
			t.Errorf("Charset(%q).matches(%q) = %v, want %v", c.provided, c.acceptable, got, c.want)
		}
	}
}

func TestCharsetFromValue_Weight(t *testing.T) {
	v := Parse("utf-8;q=0.5")
	cs := charsetFromValue(v)
	if cs.Name != "utf-8" || cs.Weight != 0.5 {
		t.Errorf("charsetFromValue = %+v, want Name=utf-8 Weight=0.5", cs)
	}
}
