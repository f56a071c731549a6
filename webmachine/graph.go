package webmachine

import (
	"context"
	"errors"

	"braces.dev/errtrace"
	"github.com/qmuntal/stateless"

	"github.com/gofrack/webmachine/wmerrors"
	"github.com/gofrack/webmachine/wmhttp"
)

// statusFromError reports whether err (or something it wraps) is a
// *wmhttp.StatusError, and if so, the status it carries.
func statusFromError(err error) (int, bool) {
	var se *wmhttp.StatusError
	if errors.As(err, &se) {
		return se.Status, true
	}
	return 0, false
}

type trigger string

const (
	triggerStart trigger = "start"
	triggerTrue  trigger = "true"
	triggerFalse trigger = "false"
)

// branch holds the two destinations a decision node may transition to.
type branch struct {
	onTrue  Node
	onFalse Node
}

// transitions is the exhaustive, static transition table from spec.md
// §4.3, reproduced exactly. It is the single source of truth for both the
// stateless.StateMachine wiring in newStateMachine and the predicate
// dispatch in predicates.go.
var transitions = map[Node]branch{
	B13Available:                   {B12KnownMethod, end503},
	B12KnownMethod:                 {B11UriTooLong, end501},
	B11UriTooLong:                  {end414, B10MethodAllowed},
	B10MethodAllowed:               {B9MalformedRequest, end405},
	B9MalformedRequest:             {end400, B8Authorized},
	B8Authorized:                   {B7Forbidden, end401},
	B7Forbidden:                    {end403, B6UnsupportedContentHeader},
	B6UnsupportedContentHeader:     {end501, B5UnknownContentType},
	B5UnknownContentType:           {end415, B4RequestEntityTooLarge},
	B4RequestEntityTooLarge:        {end413, B3Options},
	B3Options:                      {A3Options, C3AcceptExists},
	C3AcceptExists:                 {C4AcceptableMediaTypeAvailable, D4AcceptLanguageExists},
	C4AcceptableMediaTypeAvailable: {D4AcceptLanguageExists, end406},
	D4AcceptLanguageExists:         {D5AcceptableLanguageAvailable, E5AcceptCharsetExists},
	D5AcceptableLanguageAvailable:  {E5AcceptCharsetExists, end406},
	E5AcceptCharsetExists:          {E6AcceptableCharsetAvailable, F6AcceptEncodingExists},
	E6AcceptableCharsetAvailable:   {F6AcceptEncodingExists, end406},
	F6AcceptEncodingExists:         {F7AcceptableEncodingAvailable, G7ResourceExists},
	F7AcceptableEncodingAvailable:  {G7ResourceExists, end406},
	G7ResourceExists:               {G8IfMatchExists, H7IfMatchStarExists},
	G8IfMatchExists:                {G9IfMatchStarExists, H10IfUnmodifiedSinceExists},
	G9IfMatchStarExists:            {H10IfUnmodifiedSinceExists, G11EtagInIfMatch},
	G11EtagInIfMatch:               {H10IfUnmodifiedSinceExists, end412},
	H7IfMatchStarExists:            {end412, I7Put},
	H10IfUnmodifiedSinceExists:     {H11IfUnmodifiedSinceValid, I12IfNoneMatchExists},
	H11IfUnmodifiedSinceValid:      {H12LastModifiedGreaterThanUMS, I12IfNoneMatchExists},
	H12LastModifiedGreaterThanUMS:  {end412, I12IfNoneMatchExists},
	I4HasMovedPermanently:          {end301, P3Conflict},
	I7Put:                          {I4HasMovedPermanently, K7ResourcePreviouslyExisted},
	I12IfNoneMatchExists:           {I13IfNoneMatchStarExists, L13IfModifiedSinceExists},
	I13IfNoneMatchStarExists:       {J18GetHead, K13ETagInIfNoneMatch},
	J18GetHead:                     {end304, end412},
	K13ETagInIfNoneMatch:           {J18GetHead, L13IfModifiedSinceExists},
	K5HasMovedPermanently:          {end301, L5HasMovedTemporarily},
	K7ResourcePreviouslyExisted:    {K5HasMovedPermanently, L7Post},
	L5HasMovedTemporarily:          {end307, M5Post},
	L7Post:                         {M7PostToMissingResource, end404},
	L13IfModifiedSinceExists:       {L14IfModifiedSinceValid, M16Delete},

	L14IfModifiedSinceValid:          {L15IfModifiedSinceGreaterThanNow, M16Delete},
	L15IfModifiedSinceGreaterThanNow: {M16Delete, L17IfLastModifiedGreaterThanMS},
	L17IfLastModifiedGreaterThanMS:   {M16Delete, end304},
	M5Post:                           {N5PostToMissingResource, end410},
	M7PostToMissingResource:          {N11Redirect, end404},
	M16Delete:                        {M20DeleteEnacted, N16Post},
	M20DeleteEnacted:                 {O20ResponseHasBody, end202},
	N5PostToMissingResource:          {N11Redirect, end410},
	N11Redirect:                      {end303, P11NewResource},
	N16Post:                          {N11Redirect, O16Put},
	O14Conflict:                      {end409, P11NewResource},
	O16Put:                           {O14Conflict, O18MultipleRepresentations},
	O18MultipleRepresentations:       {end300, end200},
	O20ResponseHasBody:               {O18MultipleRepresentations, end204},
	P3Conflict:                       {end409, P11NewResource},
	P11NewResource:                   {end201, O20ResponseHasBody},
}

// newStateMachine builds a stateless.StateMachine over the decision graph:
// each branch node Permits a triggerTrue/triggerFalse pair to its two
// destinations, exactly mirroring the transitions table above. Terminal
// nodes (endStatus and A3Options) are left unconfigured sink states.
func newStateMachine() *stateless.StateMachine {
	sm := stateless.NewStateMachine(nodeStart)
	sm.Configure(nodeStart).Permit(triggerStart, B13Available)
	for node, b := range transitions {
		sm.Configure(node).
			Permit(triggerTrue, b.onTrue).
			Permit(triggerFalse, b.onFalse)
	}
	return sm
}

// predicate evaluates a branch node against the current request context and
// resource, returning the boolean outcome that selects onTrue/onFalse, or an
// error. A *wmhttp.StatusError short-circuits the walk directly to that
// status, per spec.md §4.3.
type predicate func(ctx *Context, res *Resource) (bool, error)

// runGraph walks the decision graph to completion, returning the final HTTP
// status. trace, if non-nil, is invoked after every transition with the
// node just evaluated, its outcome, and the node landed on — the
// post-mortem log described in spec.md §4.3 ("Logging"), never part of the
// response itself.
func runGraph(ctx *Context, res *Resource, limit int, trace func(node Node, result bool, next Node)) (status int, isOptions bool, err error) {
	sm := newStateMachine()
	background := context.Background()

	if err := sm.FireCtx(background, triggerStart); err != nil {
		return 0, false, errtrace.Wrap(err)
	}

	for i := 0; i < limit; i++ {
		state, err := sm.State(background)
		if err != nil {
			return 0, false, errtrace.Wrap(err)
		}
		current := state.(Node)

		if current == A3Options {
			return 204, true, nil
		}
		if status, ok := endStatus[current]; ok {
			return status, false, nil
		}

		pred, ok := predicates[current]
		if !ok {
			return 0, false, errtrace.Wrap(wmerrors.ErrUnknownNode)
		}

		result, err := pred(ctx, res)
		if err != nil {
			if status, ok := statusFromError(err); ok {
				return status, false, nil
			}
			return 0, false, errtrace.Wrap(err)
		}

		trig := triggerFalse
		if result {
			trig = triggerTrue
		}
		if err := sm.FireCtx(background, trig); err != nil {
			return 0, false, errtrace.Wrap(err)
		}

		if trace != nil {
			next, err := sm.State(background)
			if err == nil {
				trace(current, result, next.(Node))
			}
		}
	}

	// The node landed on by the limit-th transition is never evaluated
	// inside the loop above; check it once more before declaring the
	// walk a failure, so a terminal reached exactly on the last
	// permitted transition is still honored.
	state, err := sm.State(background)
	if err == nil {
		if current := state.(Node); current == A3Options {
			return 204, true, nil
		} else if status, ok := endStatus[current]; ok {
			return status, false, nil
		}
	}

	return 0, false, errtrace.Wrap(wmerrors.ErrTransitionLimitExceeded)
}
