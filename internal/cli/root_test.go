// SPDX-License-Identifier: MIT

package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/arenagraph/bfs"
	"github.com/katalvlaran/arenagraph/dfs"
	"github.com/katalvlaran/arenagraph/dijkstra"
	"github.com/katalvlaran/arenagraph/flow"
	"github.com/katalvlaran/arenagraph/prim_kruskal"
)

// execute runs the CLI on stdin and returns stdout, stderr and the error.
func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	root := NewRootCommand()
	var out, errb bytes.Buffer
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&out)
	root.SetErr(&errb)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())

	return out.String(), errb.String(), err
}

func TestSetVersion(t *testing.T) {
	SetVersion("1.0.0", "abc123", "2024-01-01")
	assert.Equal(t, "1.0.0", version)
	assert.Equal(t, "abc123", commit)
	assert.Equal(t, "2024-01-01", date)
	SetVersion("", "", "")
}

func TestBFSCommand(t *testing.T) {
	out, stderr, err := execute(t, germanInput(), "bfs", "--start", "Frankfurt", "--to", "Stuttgart")
	require.NoError(t, err)

	assert.Contains(t, out, "BFS from Frankfurt")
	assert.Contains(t, out, "Kassel Würzburg Mannheim")
	assert.Contains(t, out, "Frankfurt -> Würzburg -> Nürnberg -> Stuttgart")
	assert.Contains(t, stderr, "Loaded 10 vertices and 11 edges")
}

func TestBFSCommandErrors(t *testing.T) {
	_, _, err := execute(t, germanInput(), "bfs", "--start", "Berlin")
	assert.ErrorIs(t, err, ErrUnknownVertex)

	_, _, err = execute(t, "a b\nc d\n", "bfs", "--start", "a", "--to", "d")
	assert.ErrorIs(t, err, bfs.ErrUnreachable)

	_, _, err = execute(t, "a b\n", "bfs", "--max-depth", "-1")
	assert.ErrorIs(t, err, bfs.ErrOptionViolation)

	out, _, err := execute(t, "# nothing\n", "bfs")
	require.NoError(t, err)
	assert.Contains(t, out, "empty graph")
}

func TestDFSCommand(t *testing.T) {
	out, _, err := execute(t, "A B\nA C\nC D\nD F\nC E\n", "--directed", "dfs")
	require.NoError(t, err)
	assert.Contains(t, out, "DFS from A\n")
	// last registered child first; indentation follows depth
	assert.Contains(t, out, "  A\n    C\n      E\n      D\n        F\n    B\n")

	out, _, err = execute(t, "a b\nc d\n", "dfs", "--all")
	require.NoError(t, err)
	for _, name := range []string{"a", "b", "c", "d"} {
		assert.Contains(t, out, name+"\n")
	}
}

func TestComponentsCommand(t *testing.T) {
	out, _, err := execute(t, "a b\nc d\nd e\nlonely\n", "components")
	require.NoError(t, err)
	assert.Contains(t, out, "3 components")
	assert.Contains(t, out, "a b\n")
	assert.Contains(t, out, "c d e\n")
	assert.Contains(t, out, "lonely\n")
}

func TestTopoCommand(t *testing.T) {
	out, _, err := execute(t, "fetch compile\ncompile test\ntest package\n", "topo")
	require.NoError(t, err)
	assert.Contains(t, out, "fetch compile test package")

	_, _, err = execute(t, "a b\nb a\n", "topo")
	assert.ErrorIs(t, err, dfs.ErrCycleDetected)
}

func TestStatsCommandWithConfigFile(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(dir, "arenas.toml")
	require.NoError(t, os.WriteFile(cfg, []byte("[vertices]\ncapacity = 2\nload_factor = 1.0\n"), 0o600))
	input := filepath.Join(dir, "roads.txt")
	require.NoError(t, os.WriteFile(input, []byte(germanInput()), 0o600))

	out, stderr, err := execute(t, "", "stats", "-v", "--config", cfg, input)
	require.NoError(t, err)
	assert.Contains(t, out, "Graph (undirected)")
	assert.Contains(t, out, "vertices")
	assert.Contains(t, out, "vertex growths")
	assert.Contains(t, stderr, "grew vertex arena")
	assert.Contains(t, stderr, "graph loaded")

	_, _, err = execute(t, "", "stats", filepath.Join(dir, "missing.txt"))
	assert.Error(t, err)
}

func TestPathCommand(t *testing.T) {
	out, _, err := execute(t, germanInput(), "path", "--from", "Frankfurt", "--to", "München")
	require.NoError(t, err)
	assert.Contains(t, out, "Frankfurt -> Würzburg -> Nürnberg -> München")
	assert.Contains(t, out, "487")

	_, _, err = execute(t, germanInput(), "path", "--from", "Frankfurt", "--to", "München", "--max-distance", "300")
	assert.ErrorIs(t, err, dijkstra.ErrUnreachable)

	_, _, err = execute(t, germanInput(), "path", "--from", "Frankfurt")
	assert.Error(t, err)

	_, _, err = execute(t, "a b -1\n", "path", "--to", "b")
	assert.ErrorIs(t, err, dijkstra.ErrNegativeWeight)
}

func TestMSTCommand(t *testing.T) {
	for _, args := range [][]string{{"mst"}, {"mst", "--prim", "--root", "Erfurt"}} {
		out, _, err := execute(t, germanInput(), args...)
		require.NoError(t, err, args)
		assert.Contains(t, out, "Minimum spanning tree (9 edges)", args)
		assert.Contains(t, out, "1444", args)
		assert.NotContains(t, out, "502", args)
	}

	_, _, err := execute(t, "a b 1\nc d 1\n", "mst")
	assert.ErrorIs(t, err, prim_kruskal.ErrDisconnected)
}

func TestFlowCommand(t *testing.T) {
	out, _, err := execute(t, germanInput(), "flow", "--from", "Frankfurt", "--to", "München")
	require.NoError(t, err)
	assert.Contains(t, out, "Maximum flow Frankfurt -> München")
	assert.Contains(t, out, "356")
	assert.Contains(t, out, "Würzburg -> Nürnberg")

	pipes := "s v1 16\ns v2 13\nv1 v3 12\nv2 v1 4\nv2 v4 14\nv3 v2 9\nv3 t 20\nv4 v3 7\nv4 t 4\n"
	for _, m := range []string{"ford-fulkerson", "edmonds-karp", "dinic"} {
		out, _, err = execute(t, pipes, "flow", "-d", "--to", "t", "--method", m)
		require.NoError(t, err, m)
		assert.Contains(t, out, "23", m)
		assert.Contains(t, out, "v4 -> t", m)
	}

	_, _, err = execute(t, pipes, "flow", "--to", "t", "--method", "simplex")
	assert.ErrorIs(t, err, flow.ErrUnknownMethod)
	_, _, err = execute(t, pipes, "flow", "--from", "t", "--to", "t")
	assert.ErrorIs(t, err, flow.ErrSameEndpoints)
}
