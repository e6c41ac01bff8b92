// SPDX-License-Identifier: MIT
//
// impl_random_regular.go - RandomRegular(n, d): undirected d-regular simple
// graph by stub matching. Every vertex contributes d stubs; the stub list is
// shuffled and consecutive stubs are paired. A pairing with a self-pair or a
// repeated pair is rejected and reshuffled, up to maxStubMatchingAttempts.
// Complexity: O(n·d) per attempt.

package builder

import (
	"fmt"

	"github.com/katalvlaran/domset/core"
)

// RandomRegular returns a Constructor for a random d-regular graph on n vertices.
//
// Errors:
//   - ErrUnsupportedGraphMode on directed graphs.
//   - ErrTooFewVertices for n < 1, d ∉ [0, n) or odd n·d.
//   - ErrNeedRandSource without an RNG.
//   - ErrConstructFailed when every attempt produced an invalid pairing.
func RandomRegular(n, d int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if g.Directed() {
			return fmt.Errorf("%s: only undirected graphs are supported: %w",
				MethodRandomRegular, ErrUnsupportedGraphMode)
		}
		if err := validateMin(MethodRandomRegular, "n", n, MinRandomNodes); err != nil {
			return err
		}
		if d < 0 || d >= n {
			return fmt.Errorf("%s: degree must be in [0,%d), got %d: %w",
				MethodRandomRegular, n, d, ErrTooFewVertices)
		}
		if (n*d)%2 != 0 {
			return fmt.Errorf("%s: n*d must be even (n=%d, d=%d): %w",
				MethodRandomRegular, n, d, ErrTooFewVertices)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: rng is required: %w", MethodRandomRegular, ErrNeedRandSource)
		}

		ids := sequentialIDs(cfg, 0, n)
		if err := addVertices(g, MethodRandomRegular, ids); err != nil {
			return err
		}
		if d == 0 {
			return nil
		}

		stubs := make([]int, 0, n*d)
		for i := 0; i < n; i++ {
			for k := 0; k < d; k++ {
				stubs = append(stubs, i)
			}
		}

		for attempt := 0; attempt < maxStubMatchingAttempts; attempt++ {
			cfg.rng.Shuffle(len(stubs), func(i, j int) { stubs[i], stubs[j] = stubs[j], stubs[i] })
			if !simplePairing(stubs) {
				continue
			}
			for i := 0; i < len(stubs); i += 2 {
				if err := linkOne(g, MethodRandomRegular, ids[stubs[i]], ids[stubs[i+1]]); err != nil {
					return err
				}
			}

			return nil
		}

		return fmt.Errorf("%s: no simple pairing after %d attempts: %w",
			MethodRandomRegular, maxStubMatchingAttempts, ErrConstructFailed)
	}
}

// simplePairing reports whether pairing consecutive stubs yields no loop and
// no repeated unordered pair.
func simplePairing(stubs []int) bool {
	seen := make(map[[2]int]struct{}, len(stubs)/2)
	var u, v int
	for i := 0; i < len(stubs); i += 2 {
		u, v = stubs[i], stubs[i+1]
		if u == v {
			return false
		}
		if u > v {
			u, v = v, u
		}
		if _, dup := seen[[2]int{u, v}]; dup {
			return false
		}
		seen[[2]int{u, v}] = struct{}{}
	}

	return true
}
