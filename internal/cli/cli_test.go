package cli_test

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/domset/domset"
	"github.com/katalvlaran/domset/internal/cli"
)

func TestParse_Defaults(t *testing.T) {
	cfg, exit, err := cli.Parse([]string{"-gen", "cycle:5"}, &bytes.Buffer{})
	require.NoError(t, err)
	require.False(t, exit)

	assert.Equal(t, &cli.Config{
		Gen:       "cycle:5",
		Bound:     domset.BoundFractional,
		Output:    cli.OutputText,
		LogLevel:  "info",
		LogFormat: "text",
	}, cfg)
}

func TestParse_AllFlags(t *testing.T) {
	args := []string{
		"-g", "graph.hcl", "-bound", "CEIL", "-max-expansions", "50", "-timeout", "2s",
		"-trace", "-split", "-output", "yaml", "-log-level", "debug", "-log-format", "json",
	}
	cfg, exit, err := cli.Parse(args, &bytes.Buffer{})
	require.NoError(t, err)
	require.False(t, exit)

	assert.Equal(t, &cli.Config{
		GraphPath:     "graph.hcl",
		Bound:         domset.BoundCeil,
		MaxExpansions: 50,
		Timeout:       2 * time.Second,
		Trace:         true,
		Split:         true,
		Output:        cli.OutputYAML,
		LogLevel:      "debug",
		LogFormat:     "json",
	}, cfg)
}

func TestParse_PositionalPath(t *testing.T) {
	cfg, _, err := cli.Parse([]string{"-bound", "none", "ten.yaml"}, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, "ten.yaml", cfg.GraphPath)
	assert.Equal(t, domset.BoundNone, cfg.Bound)
}

func TestParse_UsageExits(t *testing.T) {
	for _, args := range [][]string{nil, {"-h"}} {
		out := &bytes.Buffer{}
		cfg, exit, err := cli.Parse(args, out)
		require.NoError(t, err)
		assert.True(t, exit)
		assert.Nil(t, cfg)
		assert.Contains(t, out.String(), "Usage:")
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		msg  string
	}{
		{"unknown flag", []string{"-nope"}, "flag provided but not defined"},
		{"path and gen", []string{"-gen", "path:3", "g.yaml"}, "mutually exclusive"},
		{"two paths", []string{"a.yaml", "b.yaml"}, "unexpected arguments"},
		{"bad bound", []string{"-bound", "exact", "g.yaml"}, "invalid bound"},
		{"negative limit", []string{"-max-expansions", "-1", "g.yaml"}, "invalid max-expansions"},
		{"negative timeout", []string{"-timeout", "-1s", "g.yaml"}, "invalid timeout"},
		{"bad output", []string{"-output", "xml", "g.yaml"}, "invalid output"},
		{"bad log format", []string{"-log-format", "xml", "g.yaml"}, "invalid log-format"},
		{"bad log level", []string{"-log-level", "loud", "g.yaml"}, "invalid log-level"},
		{"unknown generator", []string{"-gen", "hexagon:3"}, "unknown kind"},
		{"generator arity", []string{"-gen", "bipartite:3"}, "wants bipartite:A:B"},
		{"generator number", []string{"-gen", "grid:3xC"}, "not an integer"},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := cli.Parse(tc.args, &bytes.Buffer{})
			var exitErr *cli.ExitError
			require.True(t, errors.As(err, &exitErr), "got %v", err)
			assert.Equal(t, cli.ExitUsage, exitErr.Code)
			assert.Contains(t, exitErr.Message, tc.msg)
		})
	}
}
