package webmachine

// Node identifies a vertex in the decision graph, named after the
// letter-number scheme of the webmachine diagram (spec.md §4.3).
type Node string

const (
	nodeStart Node = "Start"

	B13Available                   Node = "B13Available"
	B12KnownMethod                 Node = "B12KnownMethod"
	B11UriTooLong                  Node = "B11UriTooLong"
	B10MethodAllowed               Node = "B10MethodAllowed"
	B9MalformedRequest             Node = "B9MalformedRequest"
	B8Authorized                   Node = "B8Authorized"
	B7Forbidden                    Node = "B7Forbidden"
	B6UnsupportedContentHeader     Node = "B6UnsupportedContentHeader"
	B5UnknownContentType           Node = "B5UnknownContentType"
	B4RequestEntityTooLarge        Node = "B4RequestEntityTooLarge"
	B3Options                      Node = "B3Options"
	C3AcceptExists                 Node = "C3AcceptExists"
	C4AcceptableMediaTypeAvailable Node = "C4AcceptableMediaTypeAvailable"
	D4AcceptLanguageExists         Node = "D4AcceptLanguageExists"
	D5AcceptableLanguageAvailable  Node = "D5AcceptableLanguageAvailable"
	E5AcceptCharsetExists          Node = "E5AcceptCharsetExists"
	E6AcceptableCharsetAvailable   Node = "E6AcceptableCharsetAvailable"
	F6AcceptEncodingExists         Node = "F6AcceptEncodingExists"
	F7AcceptableEncodingAvailable  Node = "F7AcceptableEncodingAvailable"
	G7ResourceExists               Node = "G7ResourceExists"
	G8IfMatchExists                Node = "G8IfMatchExists"
	G9IfMatchStarExists            Node = "G9IfMatchStarExists"
	G11EtagInIfMatch               Node = "G11EtagInIfMatch"
	H7IfMatchStarExists            Node = "H7IfMatchStarExists"
	H10IfUnmodifiedSinceExists     Node = "H10IfUnmodifiedSinceExists"
	H11IfUnmodifiedSinceValid      Node = "H11IfUnmodifiedSinceValid"
	H12LastModifiedGreaterThanUMS  Node = "H12LastModifiedGreaterThanUMS"
	I4HasMovedPermanently          Node = "I4HasMovedPermanently"
	I7Put                          Node = "I7Put"
	I12IfNoneMatchExists           Node = "I12IfNoneMatchExists"
	I13IfNoneMatchStarExists       Node = "I13IfNoneMatchStarExists"
	J18GetHead                     Node = "J18GetHead"
	K5HasMovedPermanently          Node = "K5HasMovedPermanently"
	K7ResourcePreviouslyExisted    Node = "K7ResourcePreviouslyExisted"
	K13ETagInIfNoneMatch           Node = "K13ETagInIfNoneMatch"
	L5HasMovedTemporarily          Node = "L5HasMovedTemporarily"
	L7Post                         Node = "L7Post"
	L13IfModifiedSinceExists       Node = "L13IfModifiedSinceExists"
	L14IfModifiedSinceValid        Node = "L14IfModifiedSinceValid"

	L15IfModifiedSinceGreaterThanNow Node = "L15IfModifiedSinceGreaterThanNow"
	L17IfLastModifiedGreaterThanMS   Node = "L17IfLastModifiedGreaterThanMS"
	M5Post                           Node = "M5Post"
	M7PostToMissingResource          Node = "M7PostToMissingResource"
	M16Delete                        Node = "M16Delete"
	M20DeleteEnacted                 Node = "M20DeleteEnacted"
	N5PostToMissingResource          Node = "N5PostToMissingResource"
	N11Redirect                      Node = "N11Redirect"
	N16Post                          Node = "N16Post"
	O14Conflict                      Node = "O14Conflict"
	O16Put                           Node = "O16Put"
	O18MultipleRepresentations       Node = "O18MultipleRepresentations"
	O20ResponseHasBody               Node = "O20ResponseHasBody"
	P3Conflict                       Node = "P3Conflict"
	P11NewResource                   Node = "P11NewResource"

	// A3Options is a terminal node: 204 plus resource-provided OPTIONS
	// headers (default: CORS), handled specially rather than via endStatus
	// since it carries extra headers.
	A3Options Node = "A3Options"
)

// Terminal nodes, one per distinct status value appearing in the
// transition table (spec.md §4.3). Multiple source nodes legitimately
// transition into the same terminal node.
const (
	end503 Node = "End503"
	end501 Node = "End501"
	end414 Node = "End414"
	end405 Node = "End405"
	end400 Node = "End400"
	end401 Node = "End401"
	end403 Node = "End403"
	end415 Node = "End415"
	end413 Node = "End413"
	end406 Node = "End406"
	end412 Node = "End412"
	end301 Node = "End301"
	end307 Node = "End307"
	end304 Node = "End304"
	end404 Node = "End404"
	end410 Node = "End410"
	end202 Node = "End202"
	end303 Node = "End303"
	end409 Node = "End409"
	end300 Node = "End300"
	end200 Node = "End200"
	end204 Node = "End204"
	end201 Node = "End201"
)

// endStatus maps each terminal node to the HTTP status it emits.
var endStatus = map[Node]int{
	end503: 503,
	end501: 501,
	end414: 414,
	end405: 405,
	end400: 400,
	end401: 401,
	end403: 403,
	end415: 415,
	end413: 413,
	end406: 406,
	end412: 412,
	end301: 301,
	end307: 307,
	end304: 304,
	end404: 404,
	end410: 410,
	end202: 202,
	end303: 303,
	end409: 409,
	end300: 300,
	end200: 200,
	end204: 204,
	end201: 201,
}
