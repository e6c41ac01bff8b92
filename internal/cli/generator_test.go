package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/domset/builder"
)

func TestParseGenerator_Builds(t *testing.T) {
	tests := []struct {
		spec         string
		nodes, edges int
	}{
		{"path:4", 4, 3},
		{"cycle:6", 6, 6},
		{"star:5", 5, 4},
		{"wheel:5", 5, 8},
		{"complete:4", 4, 6},
		{"bipartite:2:3", 5, 6},
		{"grid:2x3", 6, 7},
		{"random:6:1:7", 6, 15},
		{"random:6:0:7", 6, 0},
		{"regular:4:1:3", 4, 2},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.spec, func(t *testing.T) {
			gen, err := parseGenerator(tc.spec)
			require.NoError(t, err)
			assert.Equal(t, tc.spec, gen.name)

			g, err := builder.BuildGraph(nil, gen.opts, gen.cons)
			require.NoError(t, err)
			assert.Equal(t, tc.nodes, g.VertexCount())
			assert.Equal(t, tc.edges, g.EdgeCount())
		})
	}
}

func TestParseGenerator_Errors(t *testing.T) {
	for _, spec := range []string{"", "path", "path:", "path:x", "cycle:3:4", "grid:3", "grid:ax2", "random:5:p:1", "random:5:0.5:s", "regular:4:1"} {
		_, err := parseGenerator(spec)
		assert.ErrorIs(t, err, errBadGenerator, spec)
	}
}

func TestGeneratorUsage_Sorted(t *testing.T) {
	assert.Equal(t, []string{
		"bipartite:A:B", "complete:N", "cycle:N", "grid:RxC", "path:N",
		"random:N:P:SEED", "regular:N:D:SEED", "star:N", "wheel:N",
	}, generatorUsage())
}
