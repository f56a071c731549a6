// Package header implements the header-value parser and the content
// negotiation engine: tokenizing "value; param=value; ..." header entries
// and selecting the best media type, language, charset and encoding
// alternative for a request against a resource's produced lists.
//
// # Parsing
//
// [Parse] tokenizes a single header entry into a [Value]. It never fails;
// malformed input yields a best-effort [Value]. Use [SplitFields] first to
// split a raw, possibly comma-joined header line (as delivered by most HTTP
// transports) into individual entries before parsing each with [Parse].
//
// # Negotiation
//
// [SelectMediaType], [SelectLanguage], [SelectCharset] and [SelectEncoding]
// each take the raw acceptable [Value] entries from a request header and the
// resource's produced alternatives, and return the selected alternative.
// They return ("", false) when nothing acceptable is available, which the
// decision graph uses to emit 406.
package header
