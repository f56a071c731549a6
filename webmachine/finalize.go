package webmachine

import (
	"strings"

	"github.com/gofrack/webmachine/header"
)

// finalize applies the five finalization steps of spec.md §4.4,
// unconditionally, after the decision graph has settled on a status.
func finalize(ctx *Context, res *Resource) {
	synthesizeContentType(ctx)
	buildVary(ctx, res)
	attachConditionalHeaders(ctx, res)
	renderBody(ctx, res)
	res.finaliseResponse(ctx)
}

// synthesizeContentType implements step 1: if the response carries no
// Content-Type, synthesize one from the negotiated media type/charset,
// falling back to the engine-wide defaults.
func synthesizeContentType(ctx *Context) {
	if ctx.Response.Headers.Has("Content-Type") {
		return
	}
	mt := ctx.SelectedMediaType
	if mt == "" {
		mt = "application/json"
	}
	cs := ctx.SelectedCharset
	if cs == "" {
		cs = "ISO-8859-1"
	}
	ctx.Response.Headers.Set("Content-Type", header.Value{
		Value:  mt,
		Params: map[string]string{"charset": cs},
	})
}

// buildVary implements step 2.
func buildVary(ctx *Context, res *Resource) {
	vary := append([]string(nil), res.Variances...)
	if len(res.LanguagesProvided) >= 2 {
		vary = append(vary, "Accept-Language")
	}
	if len(res.CharsetsProvided) >= 2 {
		vary = append(vary, "Accept-Charset")
	}
	if len(res.encodingsProvided()) >= 2 {
		vary = append(vary, "Accept-Encoding")
	}
	if len(res.produces()) >= 2 {
		vary = append(vary, "Accept")
	}

	vary = dedupe(vary)
	if len(vary) < 2 {
		return
	}
	ctx.Response.Headers.Set("Vary", header.Basic(strings.Join(vary, ", ")))
}

func dedupe(in []string) []string {
	seen := make(map[string]bool, len(in))
	out := in[:0]
	for _, v := range in {
		if seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}

// attachConditionalHeaders implements step 3.
func attachConditionalHeaders(ctx *Context, res *Resource) {
	m := ctx.Request.Method
	if !strings.EqualFold(m, "GET") && !strings.EqualFold(m, "HEAD") {
		return
	}
	if etag, ok := res.generateETag(ctx); ok && etag != "" {
		ctx.Response.Headers.Set("ETag", header.Value{Value: etag, Quote: true})
	}
	if t, ok := res.expires(ctx); ok {
		ctx.Response.Headers.Set("Expires", header.Value{Value: formatRFC2822(t), Quote: true})
	}
	if t, ok := res.lastModified(ctx); ok {
		ctx.Response.Headers.Set("Last-Modified", header.Value{Value: formatRFC2822(t), Quote: true})
	}
}

// renderBody implements step 4.
func renderBody(ctx *Context, res *Resource) {
	if !strings.EqualFold(ctx.Request.Method, "GET") {
		return
	}
	if ctx.Response.Status != 200 {
		return
	}
	if len(ctx.Response.Body) > 0 {
		return
	}
	body, ok := res.renderResponse(ctx)
	if ok {
		ctx.Response.Body = []byte(body)
	}
}
