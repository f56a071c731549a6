package webmachine

import (
	"errors"
	"log/slog"

	"github.com/gofrack/webmachine/header"
	"github.com/gofrack/webmachine/wmerrors"
)

// Dispatcher walks the decision graph for a (Request, Resource) pair and
// produces a finalized Response. It holds no per-request state and is safe
// for concurrent use across many requests, per spec.md §5.
type Dispatcher struct {
	opts Options
}

// New builds a Dispatcher from the given options, applied over the
// defaults (TransitionLimit 100, wmlog.Console(), time.Now).
func New(opts ...Option) *Dispatcher {
	o := defaultOptions()
	for _, opt := range opts {
		opt.apply(&o)
	}
	return &Dispatcher{opts: o}
}

// Dispatch runs req against res: decision graph, then finalization. A
// resource callback that panics during finalization is recovered, logged at
// slog.LevelWarn, and the remaining finalization steps are skipped. Panics
// from decision callbacks, the options callback or finish_request are not
// recovered and propagate to the caller.
func (d *Dispatcher) Dispatch(req *Request, res *Resource) *Response {
	ctx := NewContext(req)
	ctx.SetClock(d.opts.Clock)

	status, isOptions, err := runGraph(ctx, res, d.opts.TransitionLimit, d.trace)
	if err != nil {
		d.opts.Logger.Error("decision graph aborted", "error", err,
			"is_transition_limit", errors.Is(err, wmerrors.ErrTransitionLimitExceeded))
		status = 500
	}
	ctx.Response.Status = status

	if isOptions {
		for _, hp := range res.options(ctx) {
			ctx.Response.Headers.Set(hp.Name, header.Basic(hp.Value))
		}
	}

	d.finalizeSafely(ctx, res)
	res.finishRequest(ctx)

	return ctx.Response
}

// trace logs one decision-graph transition at slog.LevelDebug; it is the
// "post-mortem log" from spec.md §4.3, never part of the response.
func (d *Dispatcher) trace(node Node, result bool, next Node) {
	d.opts.Logger.Debug("decision transition", "node", node, "result", result, "next", next)
}

// finalizeSafely runs finalize, recovering a panic from a resource's
// render_response/finalise_response callback per spec.md §3.1's logging
// rule instead of letting it crash the host transport.
func (d *Dispatcher) finalizeSafely(ctx *Context, res *Resource) {
	defer func() {
		if r := recover(); r != nil {
			d.opts.Logger.Warn("resource callback panicked during finalization", slog.Any("recovered", r))
		}
	}()
	finalize(ctx, res)
}
