// SPDX-License-Identifier: MIT
//
// options.go - functional options for Solve and SolveCore.

package domset

import (
	"context"
	"fmt"
)

// BoundAlgo selects the lower bound attached to every partial solution.
type BoundAlgo int

const (
	// BoundFractional is |S| + |uncovered| / maxW. Default.
	BoundFractional BoundAlgo = iota
	// BoundCeil rounds the fractional term up; still admissible and never weaker.
	BoundCeil
	// BoundNone uses |S| alone: uniform-cost search, for testing and comparison.
	BoundNone
)

// String returns the flag spelling of the policy.
func (b BoundAlgo) String() string {
	switch b {
	case BoundFractional:
		return "fractional"
	case BoundCeil:
		return "ceil"
	case BoundNone:
		return "none"
	default:
		return fmt.Sprintf("BoundAlgo(%d)", int(b))
	}
}

// ParseBound maps "fractional", "ceil" or "none" to a BoundAlgo.
func ParseBound(s string) (BoundAlgo, error) {
	for _, b := range []BoundAlgo{BoundFractional, BoundCeil, BoundNone} {
		if b.String() == s {
			return b, nil
		}
	}

	return 0, fmt.Errorf("%w: unknown bound %q", ErrOptionViolation, s)
}

// Option configures a search. An invalid Option is recorded and surfaced as
// ErrOptionViolation when the search starts.
type Option func(*Options)

// Options holds the search parameters and observation hooks.
type Options struct {
	// Ctx is checked between expansions; its error aborts the search.
	Ctx context.Context

	// MaxExpansions, if > 0, caps the number of expanded partial solutions.
	MaxExpansions int

	// Bound selects the lower bound policy.
	Bound BoundAlgo

	// SplitComponents makes SolveCore solve each connected component on its own.
	SplitComponents bool

	// OnPush is called for every partial solution entering the frontier.
	OnPush func(ps *PartialSolution)

	// OnExpand is called for every popped, undominated partial solution with
	// the node it is about to branch on.
	OnExpand func(ps *PartialSolution, branch NodeID)

	// OnSolved is called once with the dominated partial solution returned.
	OnSolved func(ps *PartialSolution)

	err error
}

// DefaultOptions returns:
//   - context.Background()
//   - no expansion limit
//   - BoundFractional
//   - no component splitting
//   - no-op hooks
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		Bound:    BoundFractional,
		OnPush:   func(*PartialSolution) {},
		OnExpand: func(*PartialSolution, NodeID) {},
		OnSolved: func(*PartialSolution) {},
	}
}

// WithContext sets a context for cancellation. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxExpansions stops the search with ErrExpansionLimit after k expansions.
//
//	k > 0: limit
//	k == 0: no limit
//	k < 0: ErrOptionViolation
func WithMaxExpansions(k int) Option {
	return func(o *Options) {
		if k < 0 {
			o.err = fmt.Errorf("%w: MaxExpansions cannot be negative (%d)", ErrOptionViolation, k)
			return
		}
		o.MaxExpansions = k
	}
}

// WithBound selects the lower bound policy; unknown values are violations.
func WithBound(b BoundAlgo) Option {
	return func(o *Options) {
		switch b {
		case BoundFractional, BoundCeil, BoundNone:
			o.Bound = b
		default:
			o.err = fmt.Errorf("%w: unknown bound %d", ErrOptionViolation, int(b))
		}
	}
}

// WithSplitComponents toggles per-component solving in SolveCore.
func WithSplitComponents(on bool) Option {
	return func(o *Options) { o.SplitComponents = on }
}

// WithOnPush registers a frontier insertion hook.
func WithOnPush(fn func(ps *PartialSolution)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnPush = fn
		}
	}
}

// WithOnExpand registers an expansion hook.
func WithOnExpand(fn func(ps *PartialSolution, branch NodeID)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// WithOnSolved registers a hook receiving the optimal partial solution.
func WithOnSolved(fn func(ps *PartialSolution)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnSolved = fn
		}
	}
}

// resolve applies opts over DefaultOptions and reports the first violation.
func resolve(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
		if o.err != nil {
			return o, o.err
		}
	}

	return o, nil
}
