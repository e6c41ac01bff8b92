package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/domset/internal/cli"
)

func TestRun_ShouldExit(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	err := run(context.Background(), []string{"-h"}, out, &bytes.Buffer{})

	require.NoError(t, err)
	require.Contains(t, out.String(), "Usage:")
}

func TestRun_ParseError(t *testing.T) {
	t.Parallel()

	err := run(context.Background(), []string{"--this-is-not-a-valid-flag"}, &bytes.Buffer{}, &bytes.Buffer{})

	var exitErr *cli.ExitError
	require.True(t, errors.As(err, &exitErr))
	require.Equal(t, cli.ExitUsage, exitErr.Code)
	require.Contains(t, err.Error(), "flag provided but not defined: -this-is-not-a-valid-flag")
}

func TestRun_Document(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "p3.yaml")
	require.NoError(t, os.WriteFile(path, []byte("edges:\n  - [a, b]\n  - [b, c]\n"), 0o600))

	out := &bytes.Buffer{}
	err := run(context.Background(), []string{"-output", "yaml", path}, out, &bytes.Buffer{})

	require.NoError(t, err)
	require.Contains(t, out.String(), "graph: p3\n")
	require.Contains(t, out.String(), "size: 1\n")
}
