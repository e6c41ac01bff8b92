// SPDX-License-Identifier: MIT
//
// solver.go - best-first branch-and-bound driver.
//
// States: OPEN (frontier non-empty) → SOLVED (a popped state is dominated)
// or EXHAUSTED (frontier empty, ErrFrontierExhausted).
//
//  1. Seed the frontier with (S=∅, T=∅).
//  2. Pop the entry with the smallest lower bound.
//  3. Dominated → SOLVED; its S is optimal because every bound is admissible
//     and nothing left in the frontier is bounded lower.
//  4. Otherwise branch on MaxWNode and push both children; children with an
//     infinite bound cannot be completed and are dropped as pruned.
//
// Cancellation and the expansion cap are checked once per iteration.

package domset

import (
	"fmt"
	"math"

	"github.com/bits-and-blooms/bitset"
)

// searchEngine holds one search's state.
type searchEngine struct {
	snap     *snapshot
	opts     Options
	frontier *Frontier
	res      Result
}

// Solve returns a minimum dominating set of g.
//
// Errors:
//   - ErrGraphNil and snapshot errors (ErrDuplicateNode, ErrNodeNotFound,
//     ErrAsymmetricGraph) for malformed graphs.
//   - ErrOptionViolation for invalid options.
//   - ctx.Err() wrapped, when the context ends mid-search.
//   - ErrExpansionLimit when WithMaxExpansions stops the search.
//   - ErrFrontierExhausted on a broken internal invariant.
//
// Complexity: exponential in the worst case; memory ≤ 2·expansions+1 states.
func Solve(g Graph, opts ...Option) (*Result, error) {
	o, err := resolve(opts)
	if err != nil {
		return nil, err
	}
	snap, err := newSnapshot(g)
	if err != nil {
		return nil, err
	}

	e := &searchEngine{snap: snap, opts: o, frontier: NewFrontier()}

	return e.run()
}

func (e *searchEngine) run() (*Result, error) {
	n := e.snap.size()
	root := newPartial(e.snap, bitset.New(n), bitset.New(n), e.opts.Bound)
	e.res.Generated = 1
	e.res.RootBound = root.LowerBound()
	e.push(root)

	for {
		if err := e.opts.Ctx.Err(); err != nil {
			return nil, fmt.Errorf("domset: search cancelled after %d expansions: %w", e.res.Expanded, err)
		}

		current, ok := e.frontier.Pop()
		if !ok {
			return nil, fmt.Errorf("domset: after %d expansions: %w", e.res.Expanded, ErrFrontierExhausted)
		}

		if current.IsDominated() {
			e.opts.OnSolved(current)
			e.res.Set = current.S()
			e.res.Size = len(e.res.Set)
			out := e.res
			return &out, nil
		}

		if e.opts.MaxExpansions > 0 && e.res.Expanded >= e.opts.MaxExpansions {
			return nil, fmt.Errorf("domset: %d expansions, best bound %.3f: %w",
				e.res.Expanded, current.LowerBound(), ErrExpansionLimit)
		}

		node, ok := current.MaxWNode()
		if !ok {
			// Undominated with nothing left to decide; infeasible states never
			// enter the frontier, so this is a broken invariant.
			return nil, fmt.Errorf("domset: undominated state %v has no undecided node: %w",
				current, ErrFrontierExhausted)
		}
		e.opts.OnExpand(current, node)
		e.res.Expanded++

		with, without, err := Branch(current, node)
		if err != nil {
			return nil, err
		}
		e.res.Generated += 2
		e.push(with)
		e.push(without)
	}
}

// push enqueues ps unless it cannot be completed.
func (e *searchEngine) push(ps *PartialSolution) {
	if math.IsInf(ps.LowerBound(), 1) {
		e.res.Pruned++
		return
	}
	e.opts.OnPush(ps)
	e.frontier.Push(ps)
	if l := e.frontier.Len(); l > e.res.MaxFrontier {
		e.res.MaxFrontier = l
	}
}
