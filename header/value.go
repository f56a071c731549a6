package header

import (
	"slices"
	"strings"

	"github.com/gofrack/webmachine/internal/util"
)

// valueSeparators are the characters that terminate a bare top-level value,
// before the first ';'. Note '=' is not a separator at top level, so values
// may contain '='.
const valueSeparators = "()<>@,;{}"

// paramNameSeparators additionally terminate a bare parameter name.
const paramNameSeparators = "()<>@,;={}"

// Value is a single parsed header token: a primary value string, an
// unordered set of parameters, and a quote flag indicating the serialized
// form must be double-quoted. Equality compares Value and Params only;
// parameter order is insignificant.
type Value struct {
	Value  string
	Params map[string]string
	Quote  bool
}

// Basic returns a Value with no parameters.
func Basic(value string) Value {
	return Value{Value: value}
}

// Parse tokenizes a single header entry of the form
// "value[; name[=value]]...". It never fails; malformed input yields a
// best-effort Value. Empty parameter names (e.g. from "A;;b=c" or a bare
// ";") are discarded. Duplicate parameter names: last occurrence wins.
func Parse(input string) Value {
	s := scanner{s: input}
	val := s.token(valueSeparators)

	v := Value{Value: val}
	if !s.peek(';') {
		return v
	}
	s.next()

	for {
		name := s.token(paramNameSeparators)
		var pval string
		if s.peek('=') {
			s.next()
			pval = s.paramValue()
		}
		if name != "" {
			if v.Params == nil {
				v.Params = make(map[string]string)
			}
			v.Params[name] = pval
		}
		if !s.peek(';') {
			break
		}
		s.next()
	}
	return v
}

// scanner is a minimal hand-rolled tokenizer over the input string; it
// mirrors the character-class scan used by the reference implementation's
// header parser rather than a full ABNF grammar, since the separator
// classes here are small and explicitly enumerated (spec-fixed, not a
// recursive grammar).
type scanner struct {
	s   string
	pos int
}

func (sc *scanner) peek(c byte) bool {
	return sc.pos < len(sc.s) && sc.s[sc.pos] == c
}

func (sc *scanner) next() byte {
	c := sc.s[sc.pos]
	sc.pos++
	return c
}

func (sc *scanner) skipWS() {
	for sc.pos < len(sc.s) && isSpace(sc.s[sc.pos]) {
		sc.pos++
	}
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

// token scans a value terminated by any character in seps, or a
// quoted-string if the next non-space character is a double quote.
func (sc *scanner) token(seps string) string {
	sc.skipWS()
	if sc.peek('"') {
		return sc.quoted()
	}

	start := sc.pos
	for sc.pos < len(sc.s) && !strings.ContainsRune(seps, rune(sc.s[sc.pos])) {
		sc.pos++
	}
	return strings.TrimSpace(sc.s[start:sc.pos])
}

// paramValue scans a bare token terminated only by ';', or a quoted-string.
func (sc *scanner) paramValue() string {
	sc.skipWS()
	if sc.peek('"') {
		return sc.quoted()
	}
	return sc.token(";")
}

// quoted scans a double-quoted string, honoring backslash escapes, and
// returns its unwrapped contents. The opening quote must be the current
// character.
func (sc *scanner) quoted() string {
	sc.next() // opening quote
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)

	for sc.pos < len(sc.s) && sc.s[sc.pos] != '"' {
		c := sc.next()
		if c == '\\' && sc.pos < len(sc.s) {
			c = sc.next()
		}
		sb.WriteByte(c)
	}
	if sc.pos < len(sc.s) {
		sc.next() // closing quote
	}
	return sb.String()
}

// SplitFields splits a raw, possibly comma-joined header line into
// individual entries, respecting double-quoted strings so that a comma
// inside a quoted parameter value does not split the entry. Most HTTP
// transports deliver a multi-valued header as one joined line; callers
// should split it with SplitFields and [Parse] each resulting field before
// building a request's header sequence.
func SplitFields(raw string) []string {
	var fields []string
	inQuotes := false
	start := 0
	for i := 0; i < len(raw); i++ {
		switch raw[i] {
		case '"':
			inQuotes = !inQuotes
		case '\\':
			if inQuotes && i+1 < len(raw) {
				i++
			}
		case ',':
			if !inQuotes {
				fields = append(fields, strings.TrimSpace(raw[start:i]))
				start = i + 1
			}
		}
	}
	fields = append(fields, strings.TrimSpace(raw[start:]))
	return fields
}

// ParseFields splits raw with [SplitFields] and parses each field with
// [Parse].
func ParseFields(raw string) []Value {
	fields := SplitFields(raw)
	vals := make([]Value, 0, len(fields))
	for _, f := range fields {
		vals = append(vals, Parse(f))
	}
	return vals
}

// String renders the value, optionally quoted, followed by "; k=v" for each
// parameter. Parameters are rendered in sorted key order for determinism.
// A parameter value containing ';', ',', '"' or '\', or with leading or
// trailing whitespace, is written as a quoted string with '"' and '\'
// backslash-escaped, so that [Parse] reads it back unchanged.
func (v Value) String() string {
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)

	if v.Quote {
		sb.WriteByte('"')
		sb.WriteString(v.Value)
		sb.WriteByte('"')
	} else {
		sb.WriteString(v.Value)
	}

	if len(v.Params) > 0 {
		keys := make([]string, 0, len(v.Params))
		for k := range v.Params {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		for _, k := range keys {
			sb.WriteString("; ")
			sb.WriteString(k)
			sb.WriteByte('=')
			pv := v.Params[k]
			if !strings.ContainsAny(pv, `;,"\`) && pv == strings.TrimSpace(pv) {
				sb.WriteString(pv)
				continue
			}
			sb.WriteByte('"')
			for i := 0; i < len(pv); i++ {
				if pv[i] == '"' || pv[i] == '\\' {
					sb.WriteByte('\\')
				}
				sb.WriteByte(pv[i])
			}
			sb.WriteByte('"')
		}
	}
	return sb.String()
}

// Quoted returns a copy of v with the Quote flag set.
func (v Value) Quoted() Value {
	v.Quote = true
	return v
}

// Equal reports whether v and other have the same Value and Params;
// parameter order and the Quote flag are not significant.
func (v Value) Equal(other Value) bool {
	if v.Value != other.Value {
		return false
	}
	if len(v.Params) != len(other.Params) {
		return false
	}
	for k, val := range v.Params {
		if ov, ok := other.Params[k]; !ok || ov != val {
			return false
		}
	}
	return true
}

// Param returns the named parameter and whether it was present.
func (v Value) Param(name string) (string, bool) {
	val, ok := v.Params[name]
	return val, ok
}

// Strong returns the inner entity-tag string of a weak ETag value (one
// whose Value begins with "W/"), re-parsed as a header value. It returns
// ("", false) if v is not a weak ETag.
func (v Value) Strong() (string, bool) {
	if !strings.HasPrefix(v.Value, "W/") {
		return "", false
	}
	inner := Parse(v.Value[2:])
	return inner.Value, true
}
