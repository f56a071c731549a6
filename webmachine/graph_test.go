package webmachine_test

import (
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/gofrack/webmachine/internal/mocks"
	"github.com/gofrack/webmachine/webmachine"
)

// The decision graph calls delete_resource exactly once per DELETE request
// that reaches M20DeleteEnacted, and never calls the other three fallible
// callbacks along that path.
func TestDispatch_DeleteCallsOnlyDeleteResource(t *testing.T) {
	ctrl := gomock.NewController(t)
	cb := mocks.NewMockDecisionCallbacks(ctrl)
	cb.EXPECT().DeleteResource(gomock.Any()).Return(true, nil).Times(1)

	res := &webmachine.Resource{
		AllowedMethods: []string{"DELETE"},
		DeleteResource: cb.DeleteResource,
		ProcessPost:    cb.ProcessPost,
		ProcessPut:     cb.ProcessPut,
		CreatePath:     cb.CreatePath,
	}
	d := webmachine.New()
	req := &webmachine.Request{Method: "DELETE", Path: "/", RequestPath: "/"}
	resp := d.Dispatch(req, res)

	if resp.Status != 204 {
		t.Fatalf("status = %d, want 204 (delete_resource=true, no body rendered)", resp.Status)
	}
}

// post_is_create=true calls create_path exactly once and never process_post.
func TestDispatch_PostIsCreateCallsOnlyCreatePath(t *testing.T) {
	ctrl := gomock.NewController(t)
	cb := mocks.NewMockDecisionCallbacks(ctrl)
	cb.EXPECT().CreatePath(gomock.Any()).Return("/new", nil).Times(1)

	res := &webmachine.Resource{
		AllowedMethods: []string{"OPTIONS", "GET", "HEAD", "POST"},
		PostIsCreate:   func(ctx *webmachine.Context) bool { return true },
		CreatePath: func(ctx *webmachine.Context) (string, error) {
			ctx.Redirect = true
			return cb.CreatePath(ctx)
		},
		DeleteResource: cb.DeleteResource,
		ProcessPost:    cb.ProcessPost,
		ProcessPut:     cb.ProcessPut,
	}
	d := webmachine.New()
	req := &webmachine.Request{Method: "POST", Path: "/", RequestPath: "/", BasePath: "/api"}
	resp := d.Dispatch(req, res)

	if resp.Status != 303 {
		t.Fatalf("status = %d, want 303", resp.Status)
	}
	if loc, ok := resp.Headers.Get("Location"); !ok || loc.Value != "/api/new" {
		t.Fatalf("Location = %q, ok=%v", loc.Value, ok)
	}
}

// Every request terminates within the configured transition limit: a
// resource that always reports itself unavailable terminates immediately
// at B13Available's false edge (End 503), not by exhausting the limit.
func TestDispatch_UnavailableTerminatesImmediately(t *testing.T) {
	d := webmachine.New(webmachine.WithTransitionLimit(2))
	res := &webmachine.Resource{
		Available: func(ctx *webmachine.Context) bool { return false },
	}
	req := &webmachine.Request{Method: "GET", Path: "/", RequestPath: "/"}
	resp := d.Dispatch(req, res)

	if resp.Status != 503 {
		t.Fatalf("status = %d, want 503", resp.Status)
	}
}

// A transition limit too small to reach any terminal node yields a 500,
// never a panic or hang.
func TestDispatch_TransitionLimitExceededYields500(t *testing.T) {
	d := webmachine.New(webmachine.WithTransitionLimit(0))
	res := &webmachine.Resource{}
	req := &webmachine.Request{Method: "GET", Path: "/", RequestPath: "/"}
	resp := d.Dispatch(req, res)

	if resp.Status != 500 {
		t.Fatalf("status = %d, want 500", resp.Status)
	}
}
