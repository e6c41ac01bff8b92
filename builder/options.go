// SPDX-License-Identifier: MIT
//
// options.go - functional options for BuildGraph.
//
// Options never panic: a nil argument leaves the previous setting in place,
// so composing user-supplied option lists cannot crash a build.

package builder

import "math/rand"

// BuilderOption customizes a builderConfig before any constructor runs.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the vertex ID generator used by index-based constructors.
// A nil fn is ignored.
func WithIDScheme(fn IDFn) BuilderOption {
	return func(c *builderConfig) {
		if fn != nil {
			c.idFn = fn
		}
	}
}

// WithRand attaches an explicit RNG for RandomSparse/RandomRegular.
// A nil r is ignored.
func WithRand(r *rand.Rand) BuilderOption {
	return func(c *builderConfig) {
		if r != nil {
			c.rng = r
		}
	}
}

// WithSeed attaches a fresh RNG seeded with seed; equal seeds give equal graphs.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithPartitionPrefix sets the CompleteBipartite side labels.
// Empty values fall back to "L" / "R".
func WithPartitionPrefix(left, right string) BuilderOption {
	return func(c *builderConfig) {
		c.leftPrefix, c.rightPrefix = left, right
	}
}
