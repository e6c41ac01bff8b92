// SPDX-License-Identifier: MIT
// Package: domset/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   - Only package-level sentinels are exposed; callers branch with errors.Is.
//   - Constructors attach context with %w ("<Method>: <detail>: <sentinel>").
//   - Constructors never panic; invalid option values are ignored by the
//     option constructors and resolved to deterministic defaults.
//
// Priority when several validations fail:
//   ErrTooFewVertices → ErrInvalidProbability → ErrNeedRandSource →
//   ErrUnsupportedGraphMode → ErrUnknownEndpoint → ErrConstructFailed.

package builder

import "errors"

// ErrTooFewVertices indicates that a numeric parameter (n, rows, cols, degree)
// is smaller than the allowed minimum for the requested constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside the closed interval [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor ran without a
// *rand.Rand in the resolved configuration (set WithSeed or WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrUnsupportedGraphMode indicates the constructor cannot honor the core.Graph
// mode flags (e.g. RandomRegular on a directed graph).
var ErrUnsupportedGraphMode = errors.New("builder: unsupported graph mode")

// ErrUnknownEndpoint indicates that a Literal edge names a vertex that was not
// declared and implicit vertices were not requested.
var ErrUnknownEndpoint = errors.New("builder: edge endpoint not declared")

// ErrConstructFailed indicates the builder exhausted its strategies or received
// a nil constructor and could not produce a valid topology.
var ErrConstructFailed = errors.New("builder: construction failed")
