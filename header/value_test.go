package header_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/gofrack/webmachine/header"
)

func TestParse(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		input string
		want  header.Value
	}{
		{"empty", "", header.Value{Value: ""}},
		{"bare", "A B", header.Value{Value: "A B"}},
		{"param without value", "A; B", header.Value{Value: "A", Params: map[string]string{"B": ""}}},
		{"semicolon only", ";", header.Value{Value: ""}},
		{
			"simple param",
			"text/html;charset=utf-8",
			header.Value{Value: "text/html", Params: map[string]string{"charset": "utf-8"}},
		},
		{
			"mixed case value kept",
			"text/html;charset=UTF-8",
			header.Value{Value: "text/html", Params: map[string]string{"charset": "UTF-8"}},
		},
		{
			"quoted param with leading space before quote",
			`Text/HTML;Charset= "utf-8"`,
			header.Value{Value: "Text/HTML", Params: map[string]string{"Charset": "utf-8"}},
		},
		{
			"quoted param preserves inner spaces",
			`text/html; charset = " utf-8 "`,
			header.Value{Value: "text/html", Params: map[string]string{"charset": " utf-8 "}},
		},
		{
			"equals sign survives in bare param value",
			"A;b=c=d",
			header.Value{Value: "A", Params: map[string]string{"b": "c=d"}},
		},
		{
			"semicolon inside quoted param value",
			`A;b="c;d"`,
			header.Value{Value: "A", Params: map[string]string{"b": "c;d"}},
		},
		{
			"escaped quote inside quoted param value",
			`A;b="c\"d"`,
			header.Value{Value: "A", Params: map[string]string{"b": `c"d`}},
		},
		{
			"duplicate parameter name, last wins",
			"A;b=1;b=2",
			header.Value{Value: "A", Params: map[string]string{"b": "2"}},
		},
		{
			"empty parameter between two valid ones is discarded",
			"A;;b=c",
			header.Value{Value: "A", Params: map[string]string{"b": "c"}},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := header.Parse(tc.input)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("Parse(%q) mismatch (-want +got):\n%s", tc.input, diff)
			}
			if !got.Equal(tc.want) {
				t.Errorf("Parse(%q).Equal(want) = false", tc.input)
			}
		})
	}
}

func TestValue_String_RoundTrip(t *testing.T) {
	t.Parallel()

	cases := []header.Value{
		header.Basic(""),
		header.Basic("text/plain"),
		{Value: "text/html", Params: map[string]string{"charset": "utf-8"}},
		{Value: "a", Params: map[string]string{"b": "c;d", "e": "f=g"}},
	}

	for _, v := range cases {
		rendered := v.String()
		got := header.Parse(rendered)
		if !got.Equal(v) {
			t.Errorf("round-trip mismatch: Parse(%q) = %+v, want %+v", rendered, got, v)
		}
	}
}

func TestValue_String_QuotingSurvivesSpecialChars(t *testing.T) {
	t.Parallel()

	v := header.Value{Value: "x", Params: map[string]string{"p": `a;b,c="d`}}
	rendered := v.String()
	got := header.Parse(rendered)
	if want := `a;b,c="d`; got.Params["p"] != want {
		t.Errorf("param p = %q, want %q (rendered=%q)", got.Params["p"], want, rendered)
	}
}

func TestValue_Strong(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name      string
		input     string
		wantInner string
		wantOK    bool
	}{
		{"weak etag", `W/"abc"`, "abc", true},
		{"strong etag", `"abc"`, "", false},
		{"not an etag", "abc", "", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			v := header.Parse(tc.input)
			inner, ok := v.Strong()
			if ok != tc.wantOK || inner != tc.wantInner {
				t.Errorf("Strong() = (%q, %v), want (%q, %v)", inner, ok, tc.wantInner, tc.wantOK)
			}
		})
	}
}

func TestSplitFields(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		input string
		want  []string
	}{
		{"single", "text/plain", []string{"text/plain"}},
		{"simple list", "a, b, c", []string{"a", "b", "c"}},
		{
			"comma inside quotes not split",
			`a;p="x,y", b`,
			[]string{`a;p="x,y"`, "b"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := header.SplitFields(tc.input)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("SplitFields(%q) mismatch (-want +got):\n%s", tc.input, diff)
			}
		})
	}
}
