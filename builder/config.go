// SPDX-License-Identifier: MIT
//
// config.go - resolved builder configuration and its deterministic defaults.
//
// Defaults:
//   - idFn       = DefaultIDFn ("0","1","2",...)
//   - rng        = nil (stochastic constructors fail with ErrNeedRandSource)
//   - left/right = "L" / "R" (CompleteBipartite side prefixes)

package builder

import "math/rand"

// builderConfig aggregates the knobs shared by constructors.
// It is passed by value so constructors cannot leak changes to each other.
type builderConfig struct {
	idFn IDFn
	rng  *rand.Rand

	leftPrefix  string
	rightPrefix string
}

const (
	defaultLeftPrefix  = "L"
	defaultRightPrefix = "R"
)

// newBuilderConfig applies opts in order over the defaults (last wins) and
// resolves empty bipartite prefixes back to the defaults.
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:        DefaultIDFn,
		leftPrefix:  defaultLeftPrefix,
		rightPrefix: defaultRightPrefix,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	if cfg.leftPrefix == "" {
		cfg.leftPrefix = defaultLeftPrefix
	}
	if cfg.rightPrefix == "" {
		cfg.rightPrefix = defaultRightPrefix
	}

	return cfg
}
