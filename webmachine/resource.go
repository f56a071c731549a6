package webmachine

import (
	"time"

	"github.com/gofrack/webmachine/header"
)

// Resource is a description, not a component: a fixed set of named
// capabilities a host supplies to describe one kind of HTTP resource. Every
// decision callback is optional; a nil field falls back to a permissive,
// common-case default supplied by the matching unexported accessor method
// below. The engine only ever calls
// into a Resource, never the reverse, so there is no cycle between resource
// and engine.
type Resource struct {
	// KnownMethods defaults to the nine methods the HTTP/1.1 core
	// registers: OPTIONS, GET, POST, PUT, DELETE, HEAD, TRACE, CONNECT,
	// PATCH.
	KnownMethods []string
	// AllowedMethods defaults to OPTIONS, GET, HEAD.
	AllowedMethods []string
	// AcceptableContentTypes defaults to application/json.
	AcceptableContentTypes []string
	// Produces defaults to application/json.
	Produces []string
	// LanguagesProvided defaults to empty, meaning "all languages".
	LanguagesProvided []string
	// CharsetsProvided defaults to empty; ISO-8859-1 is implied by the
	// negotiation engine in that case.
	CharsetsProvided []string
	// EncodingsProvided defaults to identity only.
	EncodingsProvided []string
	// Variances defaults to empty.
	Variances []string

	Available                 func(ctx *Context) bool
	URITooLong                func(ctx *Context) bool
	MalformedRequest          func(ctx *Context) bool
	NotAuthorized             func(ctx *Context) (challenge string, unauthorized bool)
	Forbidden                 func(ctx *Context) bool
	UnsupportedContentHeaders func(ctx *Context) bool
	ValidEntityLength         func(ctx *Context) bool
	ResourceExists            func(ctx *Context) bool
	PreviouslyExisted         func(ctx *Context) bool
	MovedPermanently          func(ctx *Context) (location string, ok bool)
	MovedTemporarily          func(ctx *Context) (location string, ok bool)
	IsConflict                func(ctx *Context) bool
	AllowMissingPost          func(ctx *Context) bool
	GenerateETag              func(ctx *Context) (etag string, ok bool)
	LastModified              func(ctx *Context) (t time.Time, ok bool)
	Expires                   func(ctx *Context) (t time.Time, ok bool)
	MultipleChoices           func(ctx *Context) bool
	PostIsCreate              func(ctx *Context) bool
	DeleteResource            func(ctx *Context) (bool, error)
	ProcessPost               func(ctx *Context) (bool, error)
	ProcessPut                func(ctx *Context) (bool, error)
	CreatePath                func(ctx *Context) (string, error)
	Options                   func(ctx *Context) []HeaderPair
	FinishRequest             func(ctx *Context)
	RenderResponse            func(ctx *Context) (body string, ok bool)
	FinaliseResponse          func(ctx *Context)
}

var defaultKnownMethods = []string{
	"OPTIONS", "GET", "POST", "PUT", "DELETE", "HEAD", "TRACE", "CONNECT", "PATCH",
}

var defaultAllowedMethods = []string{"OPTIONS", "GET", "HEAD"}

var defaultAcceptableContentTypes = []string{"application/json"}

var defaultProduces = []string{"application/json"}

var defaultEncodingsProvided = []string{"identity"}

func (r *Resource) knownMethods() []string {
	if len(r.KnownMethods) > 0 {
		return r.KnownMethods
	}
	return defaultKnownMethods
}

func (r *Resource) allowedMethods() []string {
	if len(r.AllowedMethods) > 0 {
		return r.AllowedMethods
	}
	return defaultAllowedMethods
}

func (r *Resource) acceptableContentTypes() []string {
	if len(r.AcceptableContentTypes) > 0 {
		return r.AcceptableContentTypes
	}
	return defaultAcceptableContentTypes
}

func (r *Resource) produces() []string {
	if len(r.Produces) > 0 {
		return r.Produces
	}
	return defaultProduces
}

func (r *Resource) encodingsProvided() []string {
	if len(r.EncodingsProvided) > 0 {
		return r.EncodingsProvided
	}
	return defaultEncodingsProvided
}

func (r *Resource) available(ctx *Context) bool {
	if r.Available == nil {
		return true
	}
	return r.Available(ctx)
}

func (r *Resource) uriTooLong(ctx *Context) bool {
	if r.URITooLong == nil {
		return false
	}
	return r.URITooLong(ctx)
}

func (r *Resource) malformedRequest(ctx *Context) bool {
	if r.MalformedRequest == nil {
		return false
	}
	return r.MalformedRequest(ctx)
}

func (r *Resource) notAuthorized(ctx *Context) (string, bool) {
	if r.NotAuthorized == nil {
		return "", false
	}
	return r.NotAuthorized(ctx)
}

func (r *Resource) forbidden(ctx *Context) bool {
	if r.Forbidden == nil {
		return false
	}
	return r.Forbidden(ctx)
}

func (r *Resource) unsupportedContentHeaders(ctx *Context) bool {
	if r.UnsupportedContentHeaders == nil {
		return false
	}
	return r.UnsupportedContentHeaders(ctx)
}

func (r *Resource) validEntityLength(ctx *Context) bool {
	if r.ValidEntityLength == nil {
		return true
	}
	return r.ValidEntityLength(ctx)
}

func (r *Resource) resourceExists(ctx *Context) bool {
	if r.ResourceExists == nil {
		return true
	}
	return r.ResourceExists(ctx)
}

func (r *Resource) previouslyExisted(ctx *Context) bool {
	if r.PreviouslyExisted == nil {
		return false
	}
	return r.PreviouslyExisted(ctx)
}

func (r *Resource) movedPermanently(ctx *Context) (string, bool) {
	if r.MovedPermanently == nil {
		return "", false
	}
	return r.MovedPermanently(ctx)
}

func (r *Resource) movedTemporarily(ctx *Context) (string, bool) {
	if r.MovedTemporarily == nil {
		return "", false
	}
	return r.MovedTemporarily(ctx)
}

func (r *Resource) isConflict(ctx *Context) bool {
	if r.IsConflict == nil {
		return false
	}
	return r.IsConflict(ctx)
}

func (r *Resource) allowMissingPost(ctx *Context) bool {
	if r.AllowMissingPost == nil {
		return false
	}
	return r.AllowMissingPost(ctx)
}

func (r *Resource) generateETag(ctx *Context) (string, bool) {
	if r.GenerateETag == nil {
		return "", false
	}
	return r.GenerateETag(ctx)
}

func (r *Resource) lastModified(ctx *Context) (time.Time, bool) {
	if r.LastModified == nil {
		return time.Time{}, false
	}
	return r.LastModified(ctx)
}

func (r *Resource) expires(ctx *Context) (time.Time, bool) {
	if r.Expires == nil {
		return time.Time{}, false
	}
	return r.Expires(ctx)
}

func (r *Resource) multipleChoices(ctx *Context) bool {
	if r.MultipleChoices == nil {
		return false
	}
	return r.MultipleChoices(ctx)
}

func (r *Resource) postIsCreate(ctx *Context) bool {
	if r.PostIsCreate == nil {
		return false
	}
	return r.PostIsCreate(ctx)
}

func (r *Resource) deleteResource(ctx *Context) (bool, error) {
	if r.DeleteResource == nil {
		return true, nil
	}
	return r.DeleteResource(ctx)
}

func (r *Resource) processPost(ctx *Context) (bool, error) {
	if r.ProcessPost == nil {
		return false, nil
	}
	return r.ProcessPost(ctx)
}

func (r *Resource) processPut(ctx *Context) (bool, error) {
	if r.ProcessPut == nil {
		return true, nil
	}
	return r.ProcessPut(ctx)
}

func (r *Resource) createPath(ctx *Context) (string, error) {
	if r.CreatePath == nil {
		return ctx.Request.RequestPath, nil
	}
	return r.CreatePath(ctx)
}

func (r *Resource) options(ctx *Context) []HeaderPair {
	if r.Options == nil {
		return defaultCORSHeaders(r.allowedMethods())
	}
	return r.Options(ctx)
}

func (r *Resource) finishRequest(ctx *Context) {
	if r.FinishRequest == nil {
		for _, pair := range defaultCORSHeaders(r.allowedMethods()) {
			ctx.Response.Headers.Set(pair.Name, header.Basic(pair.Value))
		}
		return
	}
	r.FinishRequest(ctx)
}

func (r *Resource) renderResponse(ctx *Context) (string, bool) {
	if r.RenderResponse == nil {
		return "", false
	}
	return r.RenderResponse(ctx)
}

func (r *Resource) finaliseResponse(ctx *Context) {
	if r.FinaliseResponse == nil {
		return
	}
	r.FinaliseResponse(ctx)
}
