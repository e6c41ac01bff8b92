// SPDX-License-Identifier: MIT
//
// impl_random_sparse.go - RandomSparse(n, p): Erdős–Rényi G(n, p).
//
// Trial order is fixed (i asc, j asc with j>i; all ordered pairs when the
// graph is directed), so a fixed seed yields the same graph every time.
// p ∈ {0, 1} needs no RNG.
// Complexity: O(n²) Bernoulli trials.

package builder

import (
	"fmt"

	"github.com/katalvlaran/domset/core"
)

// RandomSparse returns a Constructor sampling each candidate edge with probability p.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(MethodRandomSparse, "n", n, MinRandomNodes); err != nil {
			return err
		}
		if err := validateProbability(MethodRandomSparse, p); err != nil {
			return err
		}
		if cfg.rng == nil && p > MinProbability && p < MaxProbability {
			return fmt.Errorf("%s: rng is required: %w", MethodRandomSparse, ErrNeedRandSource)
		}

		ids := sequentialIDs(cfg, 0, n)
		if err := addVertices(g, MethodRandomSparse, ids); err != nil {
			return err
		}

		keep := func() bool {
			switch p {
			case MinProbability:
				return false
			case MaxProbability:
				return true
			}
			return cfg.rng.Float64() < p
		}

		directed := g.Directed()
		var i, j int
		for i = 0; i < n; i++ {
			for j = 0; j < n; j++ {
				if i == j || (!directed && j < i) {
					continue
				}
				if !keep() {
					continue
				}
				if err := linkOne(g, MethodRandomSparse, ids[i], ids[j]); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
