package webmachine

import (
	"path"
	"strings"

	"github.com/gofrack/webmachine/header"
)

// predicates dispatches each branch node to its implementation. It mirrors
// one-for-one the "Node predicate semantics" table in spec.md §4.3.
var predicates = map[Node]predicate{
	B13Available:                   predAvailable,
	B12KnownMethod:                 predKnownMethod,
	B11UriTooLong:                  predURITooLong,
	B10MethodAllowed:               predMethodAllowed,
	B9MalformedRequest:             predMalformedRequest,
	B8Authorized:                   predAuthorized,
	B7Forbidden:                    predForbidden,
	B6UnsupportedContentHeader:     predUnsupportedContentHeader,
	B5UnknownContentType:           predUnknownContentType,
	B4RequestEntityTooLarge:        predRequestEntityTooLarge,
	B3Options:                      predIsOptions,
	C3AcceptExists:                 predHeaderExists("Accept"),
	C4AcceptableMediaTypeAvailable: predAcceptableMediaType,
	D4AcceptLanguageExists:         predHeaderExists("Accept-Language"),
	D5AcceptableLanguageAvailable:  predAcceptableLanguage,
	E5AcceptCharsetExists:          predHeaderExists("Accept-Charset"),
	E6AcceptableCharsetAvailable:   predAcceptableCharset,
	F6AcceptEncodingExists:         predHeaderExists("Accept-Encoding"),
	F7AcceptableEncodingAvailable:  predAcceptableEncoding,
	G7ResourceExists:               predResourceExists,
	G8IfMatchExists:                predHeaderExists("If-Match"),
	G9IfMatchStarExists:            predHeaderIsStar("If-Match"),
	G11EtagInIfMatch:               predETagIn("If-Match"),
	H7IfMatchStarExists:            predHeaderIsStar("If-Match"),
	H10IfUnmodifiedSinceExists:     predHeaderExists("If-Unmodified-Since"),
	H11IfUnmodifiedSinceValid:      predIfUnmodifiedSinceValid,
	H12LastModifiedGreaterThanUMS:  predLastModifiedGreaterThanUMS,
	I4HasMovedPermanently:          predMovedPermanently,
	I7Put:                          predIsPut,
	I12IfNoneMatchExists:           predHeaderExists("If-None-Match"),
	I13IfNoneMatchStarExists:       predHeaderIsStar("If-None-Match"),
	J18GetHead:                     predGetHead,
	K5HasMovedPermanently:          predMovedPermanently,
	K7ResourcePreviouslyExisted:    predPreviouslyExisted,
	K13ETagInIfNoneMatch:           predETagIn("If-None-Match"),
	L5HasMovedTemporarily:          predMovedTemporarily,
	L7Post:                         predIsMethod("POST"),
	L13IfModifiedSinceExists:       predHeaderExists("If-Modified-Since"),
	L14IfModifiedSinceValid:        predIfModifiedSinceValid,

	L15IfModifiedSinceGreaterThanNow: predIfModifiedSinceGreaterThanNow,
	L17IfLastModifiedGreaterThanMS:   predLastModifiedGreaterThanMS,
	M5Post:                           predIsMethod("POST"),
	M7PostToMissingResource:          predAllowMissingPost,
	M16Delete:                        predIsMethod("DELETE"),
	M20DeleteEnacted:                 predDeleteEnacted,
	N5PostToMissingResource:          predAllowMissingPost,
	N11Redirect:                      predRedirect,
	N16Post:                          predIsMethod("POST"),
	O14Conflict:                      predIsConflict,
	O16Put:                           predIsMethod("PUT"),
	O18MultipleRepresentations:       predMultipleChoices,
	O20ResponseHasBody:               predResponseHasBody,
	P3Conflict:                       predIsConflict,
	P11NewResource:                   predNewResource,
}

func predAvailable(ctx *Context, res *Resource) (bool, error) {
	return res.available(ctx), nil
}

func predKnownMethod(ctx *Context, res *Resource) (bool, error) {
	return containsFold(res.knownMethods(), ctx.Request.Method), nil
}

func predURITooLong(ctx *Context, res *Resource) (bool, error) {
	return res.uriTooLong(ctx), nil
}

func predMethodAllowed(ctx *Context, res *Resource) (bool, error) {
	if containsFold(res.allowedMethods(), ctx.Request.Method) {
		return true, nil
	}
	ctx.Response.Headers.Set("Allow", header.Basic(strings.Join(res.allowedMethods(), ", ")))
	return false, nil
}

func predMalformedRequest(ctx *Context, res *Resource) (bool, error) {
	return res.malformedRequest(ctx), nil
}

func predAuthorized(ctx *Context, res *Resource) (bool, error) {
	challenge, unauthorized := res.notAuthorized(ctx)
	if unauthorized && challenge != "" {
		ctx.Response.Headers.Set("WWW-Authenticate", header.Basic(challenge))
	}
	return !unauthorized, nil
}

func predForbidden(ctx *Context, res *Resource) (bool, error) {
	return res.forbidden(ctx), nil
}

func predUnsupportedContentHeader(ctx *Context, res *Resource) (bool, error) {
	return res.unsupportedContentHeaders(ctx), nil
}

func predUnknownContentType(ctx *Context, res *Resource) (bool, error) {
	m := ctx.Request.Method
	if !strings.EqualFold(m, "PUT") && !strings.EqualFold(m, "POST") {
		return false, nil
	}
	ct, ok := ctx.Request.Headers.Get("Content-Type")
	if !ok {
		return false, nil
	}
	return !containsFold(res.acceptableContentTypes(), ct.Value), nil
}

func predRequestEntityTooLarge(ctx *Context, res *Resource) (bool, error) {
	return !res.validEntityLength(ctx), nil
}

func predIsOptions(ctx *Context, res *Resource) (bool, error) {
	return strings.EqualFold(ctx.Request.Method, "OPTIONS"), nil
}

func predHeaderExists(name string) predicate {
	return func(ctx *Context, res *Resource) (bool, error) {
		return ctx.Request.Headers.Has(name), nil
	}
}

func predHeaderIsStar(name string) predicate {
	return func(ctx *Context, res *Resource) (bool, error) {
		v, ok := ctx.Request.Headers.Get(name)
		return ok && v.Value == "*", nil
	}
}

func predIsMethod(method string) predicate {
	return func(ctx *Context, res *Resource) (bool, error) {
		return strings.EqualFold(ctx.Request.Method, method), nil
	}
}

func predAcceptableMediaType(ctx *Context, res *Resource) (bool, error) {
	acceptable := ctx.Request.Headers.Values("Accept")
	mt, ok := header.SelectMediaType(true, acceptable, res.produces())
	if ok {
		ctx.SelectedMediaType = mt
	}
	return ok, nil
}

func predAcceptableLanguage(ctx *Context, res *Resource) (bool, error) {
	acceptable := ctx.Request.Headers.Values("Accept-Language")
	lang, ok := header.SelectLanguage(true, acceptable, res.LanguagesProvided)
	if ok {
		ctx.SelectedLanguage = lang
		if lang != "*" {
			ctx.Response.Headers.Set("Content-Language", header.Basic(lang))
		}
	}
	return ok, nil
}

func predAcceptableCharset(ctx *Context, res *Resource) (bool, error) {
	acceptable := ctx.Request.Headers.Values("Accept-Charset")
	cs, ok := header.SelectCharset(true, acceptable, res.CharsetsProvided)
	if ok {
		ctx.SelectedCharset = cs
	}
	return ok, nil
}

func predAcceptableEncoding(ctx *Context, res *Resource) (bool, error) {
	acceptable := ctx.Request.Headers.Values("Accept-Encoding")
	enc, ok := header.SelectEncoding(true, acceptable, res.encodingsProvided())
	if ok {
		ctx.SelectedEncoding = enc
		if enc != "identity" {
			ctx.Response.Headers.Set("Content-Encoding", header.Basic(enc))
		}
	}
	return ok, nil
}

func predResourceExists(ctx *Context, res *Resource) (bool, error) {
	return res.resourceExists(ctx), nil
}

// predETagIn reports whether the resource's generated ETag appears among
// the comma-separated entries of the named conditional header, unwrapping
// weak ("W/"-prefixed) entries to their inner quoted string first.
func predETagIn(name string) predicate {
	return func(ctx *Context, res *Resource) (bool, error) {
		etag, ok := res.generateETag(ctx)
		if !ok {
			return false, nil
		}
		for _, v := range ctx.Request.Headers.Values(name) {
			candidate := v.Value
			if inner, weak := v.Strong(); weak {
				candidate = inner
			}
			if candidate == etag {
				return true, nil
			}
		}
		return false, nil
	}
}

func predIfUnmodifiedSinceValid(ctx *Context, res *Resource) (bool, error) {
	v, ok := ctx.Request.Headers.Get("If-Unmodified-Since")
	if !ok {
		return false, nil
	}
	t, ok := parseRFC2822(v.Value)
	if !ok {
		return false, nil
	}
	ctx.IfUnmodifiedSince = t
	return true, nil
}

func predLastModifiedGreaterThanUMS(ctx *Context, res *Resource) (bool, error) {
	lm, ok := res.lastModified(ctx)
	if !ok {
		return false, nil
	}
	return lm.After(ctx.IfUnmodifiedSince), nil
}

func predMovedPermanently(ctx *Context, res *Resource) (bool, error) {
	loc, ok := res.movedPermanently(ctx)
	if ok {
		ctx.Response.Headers.Set("Location", header.Basic(loc))
	}
	return ok, nil
}

func predIsPut(ctx *Context, res *Resource) (bool, error) {
	isPut := strings.EqualFold(ctx.Request.Method, "PUT")
	if isPut {
		ctx.NewResource = true
	}
	return isPut, nil
}

func predGetHead(ctx *Context, res *Resource) (bool, error) {
	return strings.EqualFold(ctx.Request.Method, "GET") || strings.EqualFold(ctx.Request.Method, "HEAD"), nil
}

func predPreviouslyExisted(ctx *Context, res *Resource) (bool, error) {
	return res.previouslyExisted(ctx), nil
}

func predMovedTemporarily(ctx *Context, res *Resource) (bool, error) {
	loc, ok := res.movedTemporarily(ctx)
	if ok {
		ctx.Response.Headers.Set("Location", header.Basic(loc))
	}
	return ok, nil
}

func predIfModifiedSinceValid(ctx *Context, res *Resource) (bool, error) {
	v, ok := ctx.Request.Headers.Get("If-Modified-Since")
	if !ok {
		return false, nil
	}
	t, ok := parseRFC2822(v.Value)
	if !ok {
		return false, nil
	}
	ctx.IfModifiedSince = t
	return true, nil
}

func predIfModifiedSinceGreaterThanNow(ctx *Context, res *Resource) (bool, error) {
	return ctx.IfModifiedSince.After(ctx.clock()()), nil
}

func predLastModifiedGreaterThanMS(ctx *Context, res *Resource) (bool, error) {
	lm, ok := res.lastModified(ctx)
	if !ok {
		return true, nil
	}
	return lm.After(ctx.IfModifiedSince), nil
}

func predAllowMissingPost(ctx *Context, res *Resource) (bool, error) {
	allow := res.allowMissingPost(ctx)
	if allow {
		ctx.NewResource = true
	}
	return allow, nil
}

func predDeleteEnacted(ctx *Context, res *Resource) (bool, error) {
	return res.deleteResource(ctx)
}

func predRedirect(ctx *Context, res *Resource) (bool, error) {
	if res.postIsCreate(ctx) {
		p, err := res.createPath(ctx)
		if err != nil {
			return false, err
		}
		joined := path.Join(ctx.Request.BasePath, p)
		ctx.Response.Headers.Set("Location", header.Basic(joined))
		ctx.Request.RequestPath = joined
		return ctx.Redirect, nil
	}
	if _, err := res.processPost(ctx); err != nil {
		return false, err
	}
	return ctx.Redirect, nil
}

func predIsConflict(ctx *Context, res *Resource) (bool, error) {
	return res.isConflict(ctx), nil
}

func predMultipleChoices(ctx *Context, res *Resource) (bool, error) {
	return res.multipleChoices(ctx), nil
}

func predResponseHasBody(ctx *Context, res *Resource) (bool, error) {
	return len(ctx.Response.Body) > 0, nil
}

func predNewResource(ctx *Context, res *Resource) (bool, error) {
	if strings.EqualFold(ctx.Request.Method, "PUT") {
		if _, err := res.processPut(ctx); err != nil {
			return false, err
		}
	}
	return ctx.NewResource, nil
}

func containsFold(list []string, s string) bool {
	for _, v := range list {
		if strings.EqualFold(v, s) {
			return true
		}
	}
	return false
}
