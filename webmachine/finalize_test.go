package webmachine

import (
	"testing"
	"time"

	"github.com/gofrack/webmachine/header"
)

func TestFinalizeSynthesizesContentType(t *testing.T) {
	ctx := NewContext(&Request{Method: "GET"})
	ctx.Response.Status = 200
	res := &Resource{}

	finalize(ctx, res)

	ct, ok := ctx.Response.Headers.Get("Content-Type")
	if !ok || ct.String() != "application/json; charset=ISO-8859-1" {
		t.Fatalf("Content-Type = %q, ok=%v", ct.String(), ok)
	}
}

func TestFinalizeRespectsExistingContentType(t *testing.T) {
	ctx := NewContext(&Request{Method: "GET"})
	ctx.Response.Status = 200
	ctx.Response.Headers.Set("Content-Type", header.Basic("text/plain"))
	res := &Resource{}

	finalize(ctx, res)

	ct, _ := ctx.Response.Headers.Get("Content-Type")
	if ct.Value != "text/plain" {
		t.Fatalf("Content-Type = %q, want unchanged text/plain", ct.Value)
	}
}

func TestFinalizeVaryRequiresAtLeastTwoEntries(t *testing.T) {
	ctx := NewContext(&Request{Method: "GET"})
	res := &Resource{Produces: []string{"application/json"}}
	finalize(ctx, res)
	if ctx.Response.Headers.Has("Vary") {
		t.Fatalf("unexpected Vary with a single produced type")
	}
}

func TestFinalizeVaryWithMultipleProduces(t *testing.T) {
	ctx := NewContext(&Request{Method: "GET"})
	res := &Resource{Produces: []string{"application/json", "application/xml"}, LanguagesProvided: []string{"en", "fr"}}
	finalize(ctx, res)
	v, ok := ctx.Response.Headers.Get("Vary")
	if !ok {
		t.Fatalf("expected Vary header")
	}
	want := "Accept-Language, Accept"
	if v.Value != want {
		t.Fatalf("Vary = %q, want %q", v.Value, want)
	}
}

func TestFinalizeAttachesConditionalHeadersOnGet(t *testing.T) {
	lm := time.Date(2026, time.July, 1, 0, 0, 0, 0, time.UTC)
	ctx := NewContext(&Request{Method: "GET"})
	res := &Resource{
		GenerateETag: func(ctx *Context) (string, bool) { return "abc", true },
		LastModified: func(ctx *Context) (time.Time, bool) { return lm, true },
	}
	finalize(ctx, res)

	etag, ok := ctx.Response.Headers.Get("ETag")
	if !ok || etag.Value != "abc" || !etag.Quote {
		t.Fatalf("ETag = %+v, ok=%v", etag, ok)
	}
	lastMod, ok := ctx.Response.Headers.Get("Last-Modified")
	if !ok || lastMod.Value != formatRFC2822(lm) {
		t.Fatalf("Last-Modified = %+v, ok=%v", lastMod, ok)
	}
}

func TestFinalizeSkipsConditionalHeadersForNonGet(t *testing.T) {
	ctx := NewContext(&Request{Method: "POST"})
	res := &Resource{
		GenerateETag: func(ctx *Context) (string, bool) { return "abc", true },
	}
	finalize(ctx, res)
	if ctx.Response.Headers.Has("ETag") {
		t.Fatalf("unexpected ETag on a POST response")
	}
}

func TestFinalizeRendersBodyOnSuccessfulGet(t *testing.T) {
	ctx := NewContext(&Request{Method: "GET"})
	ctx.Response.Status = 200
	res := &Resource{
		RenderResponse: func(ctx *Context) (string, bool) { return "hello", true },
	}
	finalize(ctx, res)
	if string(ctx.Response.Body) != "hello" {
		t.Fatalf("Body = %q, want %q", ctx.Response.Body, "hello")
	}
}

func TestFinalizeInvokesFinaliseResponse(t *testing.T) {
	ctx := NewContext(&Request{Method: "GET"})
	called := false
	res := &Resource{
		FinaliseResponse: func(ctx *Context) { called = true },
	}
	finalize(ctx, res)
	if !called {
		t.Fatalf("expected finalise_response to be invoked")
	}
}
