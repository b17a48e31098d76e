package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathgrid/astar"
	"github.com/katalvlaran/pathgrid/board"
	"github.com/katalvlaran/pathgrid/gridgraph"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), errOut.String(), err
}

func TestRoot_OpenGridDiagonal(t *testing.T) {
	out, _, err := execute(t, "--rows", "3", "--cols", "3", "--density", "none", "--seed", "1")
	require.NoError(t, err)
	assert.Equal(t, "Soo\no*o\nooE\nstatus: found\nlength: 2\nexpanded: 2\nseed: 1\n", out)
}

func TestRoot_OpenGridOrthogonal(t *testing.T) {
	out, _, err := execute(t,
		"--rows", "1", "--cols", "4", "--diagonal=false", "--density", "none", "--seed", "1",
		"--start", "0,3", "--end", "0,0",
	)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "E**S\nstatus: found\nlength: 3\n"), out)
}

func TestRoot_SameSeedSameMaze(t *testing.T) {
	args := []string{"--rows", "15", "--cols", "15", "--density", "high", "--seed", "99"}
	first, _, err := execute(t, args...)
	require.NoError(t, err)
	second, _, err := execute(t, args...)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Contains(t, first, "seed: 99\n")
}

func TestRoot_InvalidInput(t *testing.T) {
	cases := []struct {
		name string
		args []string
		want error
	}{
		{"zero rows", []string{"--rows", "0"}, gridgraph.ErrInvalidDimension},
		{"bad density", []string{"--density", "dense"}, board.ErrUnknownDensity},
		{"bad start", []string{"--start", "1;2"}, errBadPosition},
		{"start off grid", []string{"--rows", "3", "--cols", "3", "--start", "5,5"}, gridgraph.ErrOutOfBounds},
		{"same endpoints", []string{"--start", "1,1", "--end", "1,1"}, astar.ErrInvalidEndpoints},
		{"zero fps", []string{"--rows", "2", "--cols", "2", "--density", "none", "--animate", "--fps", "0"}, astar.ErrOptionViolation},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := execute(t, tc.args...)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestRoot_BadLogLevel(t *testing.T) {
	_, _, err := execute(t, "--log-level", "chatty")
	assert.Error(t, err)
}

func TestRoot_EnvOverridesDefault(t *testing.T) {
	t.Setenv("GRIDPATH_ROWS", "2")
	t.Setenv("GRIDPATH_COLS", "2")
	t.Setenv("GRIDPATH_DENSITY", "none")
	t.Setenv("GRIDPATH_LOG_LEVEL", "info")

	out, errOut, err := execute(t, "--seed", "5")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "So\noE\nstatus: found\nlength: 1\n"), out)
	assert.Contains(t, errOut, "msg=\"search finished\"")
	assert.Contains(t, errOut, "seed=5")
}

func TestRoot_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gridpath.yaml")
	require.NoError(t, os.WriteFile(path, []byte("rows: 2\ncols: 3\ndensity: none\ndiagonal: false\n"), 0o600))

	out, _, err := execute(t, "--config", path, "--seed", "3")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "Sxx\n**E\nstatus: found\nlength: 3\n"), out)
}

func TestRoot_FlagBeatsEnv(t *testing.T) {
	t.Setenv("GRIDPATH_ROWS", "9")
	out, _, err := execute(t, "--rows", "1", "--cols", "3", "--density", "none", "--seed", "1")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "S*E\n"), out)
}

func TestRoot_Animate(t *testing.T) {
	out, _, err := execute(t,
		"--rows", "1", "--cols", "3", "--density", "none", "--seed", "1",
		"--animate", "--fps", "1000",
	)
	require.NoError(t, err)
	// one frame per expansion (2) and per path step (2)
	assert.Equal(t, 4, strings.Count(out, "\033[H\033[2J"))
	assert.True(t, strings.HasSuffix(out, "S*E\nstatus: found\nlength: 2\nexpanded: 2\nseed: 1\n"), out)
}

func TestRoot_CancelledContext(t *testing.T) {
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs([]string{"--rows", "3", "--cols", "3", "--density", "none", "--seed", "1"})
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.NoError(t, cmd.ExecuteContext(ctx))
	assert.Contains(t, out.String(), "status: cancelled\n")
	assert.NotContains(t, out.String(), "length:")
}

func TestVersion(t *testing.T) {
	out, _, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "gridpath dev\n", out)
}

func TestParsePosition(t *testing.T) {
	p, err := parsePosition(" 3, 4 ", gridgraph.Pos(0, 0))
	require.NoError(t, err)
	assert.Equal(t, gridgraph.Pos(3, 4), p)

	p, err = parsePosition("", gridgraph.Pos(7, 7))
	require.NoError(t, err)
	assert.Equal(t, gridgraph.Pos(7, 7), p)

	for _, bad := range []string{"3", "a,1", "1,b"} {
		_, err = parsePosition(bad, gridgraph.Pos(0, 0))
		assert.ErrorIs(t, err, errBadPosition, bad)
	}
}
