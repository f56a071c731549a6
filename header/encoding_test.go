package header

import "testing"

func TestEncoding_Matches(t *testing.T) {
	cases := []struct {
		provided   string
		acceptable string
		want       bool
	}{
		{"gzip", "gzip", true},
		{"GZIP", "gzip", true},
		{"gzip", "*", true},
		{"gzip", "br", false},
	}
	for _, c := range cases {
		got := (Encoding{Name: c.provided}).matches(Encoding{Name: c.acceptable})
		if got != c.want {
			t.Errorf("Encoding(%q).matches(%q) = %v, want %v", c.provided, c.acceptable, got, c.want)
		}
	}
}

func TestEncodingFromValue_Weight(t *testing.T) {
	v := Parse("gzip;q=0")
	enc := encodingFromValue(v)
	if enc.Name != "gzip" || enc.Weight != 0 {
		t.Errorf("encodingFromValue = %+v, want Name=gzip Weight=0", enc)
	}
}
