// SPDX-License-Identifier: MIT
//
// types.go - NodeID, sentinel errors and the search Result.

package domset

import "errors"

// NodeID identifies a node of a Graph. IDs need not be contiguous; the solver
// orders them ascending and that order decides every tie.
type NodeID int

// Sentinel errors. Callers branch with errors.Is; the solver wraps them with
// the offending node or parameter.
var (
	// ErrGraphNil is returned when a nil graph is passed.
	ErrGraphNil = errors.New("domset: graph is nil")

	// ErrDirectedGraph is returned when adapting a directed core.Graph.
	ErrDirectedGraph = errors.New("domset: graph must be undirected")

	// ErrNodeNotFound is returned for a node outside the graph's node set.
	ErrNodeNotFound = errors.New("domset: node not found")

	// ErrDuplicateNode is returned when Graph.Nodes lists a node twice.
	ErrDuplicateNode = errors.New("domset: duplicate node")

	// ErrAsymmetricGraph is returned when u ∈ N[v] but v ∉ N[u].
	ErrAsymmetricGraph = errors.New("domset: neighborhood relation is not symmetric")

	// ErrOverlap is returned when a node is both committed and excluded.
	ErrOverlap = errors.New("domset: S and T overlap")

	// ErrNodeDecided is returned when branching on a node already in S or T.
	ErrNodeDecided = errors.New("domset: node already decided")

	// ErrNilSolution is returned when branching on a nil partial solution.
	ErrNilSolution = errors.New("domset: partial solution is nil")

	// ErrFrontierExhausted reports an empty frontier without a dominated
	// candidate. Unreachable for well-formed graphs; it signals a broken invariant.
	ErrFrontierExhausted = errors.New("domset: frontier exhausted without solution")

	// ErrExpansionLimit is returned when WithMaxExpansions stops the search.
	ErrExpansionLimit = errors.New("domset: expansion limit reached")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("domset: invalid option supplied")
)

// Result is the outcome of a successful search.
type Result struct {
	// Set is a minimum dominating set, sorted ascending.
	Set []NodeID
	// Size is len(Set), the optimal objective value.
	Size int

	// Expanded counts popped, branched partial solutions.
	Expanded int
	// Generated counts every partial solution built, root included.
	Generated int
	// Pruned counts infeasible children discarded before entering the frontier.
	Pruned int
	// MaxFrontier is the largest frontier length observed.
	MaxFrontier int
	// RootBound is the lower bound of the empty partial solution.
	RootBound float64
}
