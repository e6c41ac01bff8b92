package cli_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/domset/internal/cli"
)

func parseOK(t *testing.T, args ...string) *cli.Config {
	t.Helper()
	cfg, exit, err := cli.Parse(args, &bytes.Buffer{})
	require.NoError(t, err)
	require.False(t, exit)

	return cfg
}

func row(k, v string) string { return fmt.Sprintf("%-14s%s\n", k+":", v) }

func TestRun_Generated(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := cli.Run(context.Background(), parseOK(t, "-gen", "cycle:6"), &stdout, &stderr)
	require.NoError(t, err)

	assert.Contains(t, stdout.String(), row("graph", "cycle:6"))
	assert.Contains(t, stdout.String(), row("size", "2"))
	assert.Contains(t, stderr.String(), "msg=Solved.")
}

func TestRun_DocumentYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ten.hcl")
	src := `graph "ten" {
  nodes = ["a", "b", "c", "d", "e", "f", "g", "h", "i", "j"]
  edge {
    from = "a"
    to = "b"
  }
}
`
	require.NoError(t, os.WriteFile(path, []byte(src), 0o600))

	var stdout bytes.Buffer
	err := cli.Run(context.Background(), parseOK(t, "-output", "yaml", "-split", path), &stdout, &bytes.Buffer{})
	require.NoError(t, err)

	// One edge plus eight isolated nodes: nine components, nine dominators.
	assert.Contains(t, stdout.String(), "graph: ten\n")
	assert.Contains(t, stdout.String(), "components: 9\n")
	assert.Contains(t, stdout.String(), "size: 9\n")
}

func TestRun_Trace(t *testing.T) {
	var stderr bytes.Buffer
	cfg := parseOK(t, "-gen", "path:3", "-trace", "-log-level", "debug", "-log-format", "json")
	require.NoError(t, cli.Run(context.Background(), cfg, &bytes.Buffer{}, &stderr))

	assert.Contains(t, stderr.String(), `"msg":"Expand."`)
	assert.Contains(t, stderr.String(), `"branch":"1"`)
	assert.Contains(t, stderr.String(), `"msg":"Dominated."`)
}

func TestRun_Failures(t *testing.T) {
	tests := []struct {
		name string
		args []string
		code int
		msg  string
	}{
		{"generator too small", []string{"-gen", "path:1"}, cli.ExitUsage, "generate path:1"},
		{"missing file", []string{filepath.Join(t.TempDir(), "none.yaml")}, cli.ExitFailure, "none.yaml"},
		{"expansion limit", []string{"-gen", "grid:3x3", "-max-expansions", "1"}, cli.ExitFailure, "expansion limit"},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			err := cli.Run(context.Background(), parseOK(t, tc.args...), &bytes.Buffer{}, &bytes.Buffer{})
			var exitErr *cli.ExitError
			require.True(t, errors.As(err, &exitErr), "got %v", err)
			assert.Equal(t, tc.code, exitErr.Code)
			assert.Contains(t, exitErr.Message, tc.msg)
		})
	}
}

func TestRun_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := cli.Run(ctx, parseOK(t, "-gen", "cycle:5"), &bytes.Buffer{}, &bytes.Buffer{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), context.Canceled.Error())
}
