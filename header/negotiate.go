package header

import (
	"slices"
	"strings"
)

// SelectMediaType implements the media-type negotiation sub-engine
// (spec §4.2 "Media-type selection"). present indicates whether an Accept
// header was sent at all; acceptable holds its parsed entries; produced
// holds the resource's produced media type strings in order.
//
// With Accept present, the Cartesian product of produced x acceptable is
// ranked by match specificity alone (full < sub-wildcard < full-wildcard);
// ties keep the iteration order over produced then acceptable, which is
// why the sort below is stable. Note that weight does not gate which
// matches are considered here — only the other three dimensions exclude
// weight-0 alternatives outright; a weight-0 media range can still win a
// full match over a higher-weight wildcard, matching the reference
// implementation. Without Accept, the first produced entry wins.
func SelectMediaType(present bool, acceptable []Value, produced []string) (string, bool) {
	if !present {
		if len(produced) == 0 {
			return "", false
		}
		return produced[0], true
	}

	sorted := sortAcceptableMediaTypes(acceptable)

	type candidate struct {
		produced string
		rank     mediaMatch
	}
	var candidates []candidate
	for _, p := range produced {
		pmt := ParseMediaType(p)
		for _, a := range sorted {
			rank := pmt.matches(a)
			if rank != matchNone {
				candidates = append(candidates, candidate{p, rank})
			}
		}
	}
	slices.SortStableFunc(candidates, func(a, b candidate) int { return int(a.rank) - int(b.rank) })
	if len(candidates) == 0 {
		return "", false
	}
	return candidates[0].produced, true
}

// sortAcceptableMediaTypes orders acceptable entries by descending weight,
// breaking ties on ascending specificity. Unlike the other three
// dimensions, a zero weight is not excluded here — it only affects this
// ordering, since the final selection in [SelectMediaType] ranks strictly
// by match specificity and a weight-0 entry can still produce a full
// match that outranks a wildcard match elsewhere in the Accept header.
func sortAcceptableMediaTypes(acceptable []Value) []MediaType {
	mts := make([]MediaType, 0, len(acceptable))
	for _, v := range acceptable {
		mts = append(mts, mediaTypeFromValue(v))
	}
	slices.SortStableFunc(mts, func(a, b MediaType) int {
		switch {
		case a.Weight > b.Weight:
			return -1
		case a.Weight < b.Weight:
			return 1
		default:
			return a.Specificity() - b.Specificity()
		}
	})
	return mts
}

// SelectLanguage implements the language negotiation sub-engine
// (spec §4.2 "Language selection").
func SelectLanguage(present bool, acceptable []Value, produced []string) (string, bool) {
	if present && len(acceptable) > 0 {
		sorted := sortByWeightDesc(acceptable, mediaLanguageFromValue)
		if len(produced) == 0 {
			if len(sorted) == 0 {
				return "", false
			}
			return sorted[0].String(), true
		}
		for _, a := range sorted {
			for _, p := range produced {
				pl := ParseMediaLanguage(p)
				if pl.matches(a) {
					return p, true
				}
			}
		}
		return "", false
	}

	if len(produced) == 0 {
		return "*", true
	}
	return produced[0], true
}

// SelectCharset implements the charset negotiation sub-engine
// (spec §4.2 "Charset selection"). The ISO-8859-1 default is appended to
// the acceptable list only while that list is actually being consulted,
// matching the reference implementation.
func SelectCharset(present bool, acceptable []Value, produced []string) (string, bool) {
	if present && len(acceptable) > 0 {
		withDefault := appendDefaultIfAbsent(acceptable, "ISO-8859-1")
		sorted := sortByWeightDesc(withDefault, charsetFromValue)
		if len(produced) == 0 {
			if len(sorted) == 0 {
				return "", false
			}
			return sorted[0].String(), true
		}
		for _, a := range sorted {
			for _, p := range produced {
				if (Charset{Name: p}).matches(a) {
					return p, true
				}
			}
		}
		return "", false
	}

	if len(produced) == 0 {
		return "ISO-8859-1", true
	}
	return produced[0], true
}

// SelectEncoding implements the encoding negotiation sub-engine
// (spec §4.2 "Encoding selection"). The identity default is appended to
// the acceptable list whenever Accept-Encoding is present, even if empty.
func SelectEncoding(present bool, acceptable []Value, produced []string) (string, bool) {
	if present {
		withDefault := appendDefaultIfAbsent(acceptable, "identity")
		sorted := sortByWeightDesc(withDefault, encodingFromValue)
		if len(produced) == 0 {
			// The reference implementation checks for membership of the
			// exact default identity alternative (name "identity", weight
			// 1.0), not merely any surviving "identity" entry — an explicit
			// "identity;q=0.5" does not satisfy this check.
			for _, a := range sorted {
				if a.Name == "identity" && a.Weight == 1.0 {
					return "identity", true
				}
			}
			return "", false
		}
		for _, a := range sorted {
			for _, p := range produced {
				if (Encoding{Name: p}).matches(a) {
					return p, true
				}
			}
		}
		return "", false
	}

	if len(produced) == 0 {
		return "identity", true
	}
	return produced[0], true
}

// appendDefaultIfAbsent appends a synthetic weight-1 Value for name unless
// acceptable already contains it or a "*" wildcard.
func appendDefaultIfAbsent(acceptable []Value, name string) []Value {
	for _, v := range acceptable {
		if v.Value == "*" || strings.EqualFold(v.Value, name) {
			return acceptable
		}
	}
	out := make([]Value, len(acceptable), len(acceptable)+1)
	copy(out, acceptable)
	return append(out, Basic(name))
}

// sortByWeightDesc converts each acceptable Value with from, drops weight-0
// entries, and stable-sorts the remainder by descending weight.
func sortByWeightDesc[T any](acceptable []Value, from func(Value) T) []T {
	type weighted struct {
		val    T
		weight float64
	}
	ws := make([]weighted, 0, len(acceptable))
	for _, v := range acceptable {
		t := from(v)
		w := weightOf(v)
		if w > 0 {
			ws = append(ws, weighted{t, w})
		}
	}
	slices.SortStableFunc(ws, func(a, b weighted) int {
		switch {
		case a.weight > b.weight:
			return -1
		case a.weight < b.weight:
			return 1
		default:
			return 0
		}
	})
	out := make([]T, len(ws))
	for i, w := range ws {
		out[i] = w.val
	}
	return out
}
