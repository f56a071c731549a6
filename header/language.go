package header

import "strings"

// MediaLanguage is a parsed language range, split on the first '-'.
// Wildcard "*" matches any.
type MediaLanguage struct {
	Main   string
	Sub    string
	Weight float64
}

// ParseMediaLanguage parses a language tag such as "en-gb" into a
// MediaLanguage with weight 1.0. An empty main tag yields "*".
func ParseMediaLanguage(s string) MediaLanguage {
	main, sub, found := strings.Cut(s, "-")
	if main == "" {
		return MediaLanguage{Main: "*", Weight: 1.0}
	}
	if !found {
		sub = ""
	}
	return MediaLanguage{Main: main, Sub: sub, Weight: 1.0}
}

func mediaLanguageFromValue(v Value) MediaLanguage {
	lang := ParseMediaLanguage(v.Value)
	lang.Weight = weightOf(v)
	return lang
}

// String renders the language tag as "main" or "main-sub".
func (ml MediaLanguage) String() string {
	if ml.Sub == "" {
		return ml.Main
	}
	return ml.Main + "-" + ml.Sub
}

// matches reports whether an acceptable language range matches this
// producer language: exact match, a wildcard acceptable, or a dash-bounded
// prefix match where the producer is a prefix of the acceptable tag (e.g.
// producer "en" matches acceptable "en-gb").
func (ml MediaLanguage) matches(acceptable MediaLanguage) bool {
	if acceptable.Main == "*" {
		return true
	}
	if ml.Main == acceptable.Main && ml.Sub == acceptable.Sub {
		return true
	}
	prefix := ml.String() + "-"
	return strings.HasPrefix(acceptable.String(), prefix)
}
