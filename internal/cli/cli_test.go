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

	"github.com/katalvlaran/pathmx/config"
	"github.com/katalvlaran/pathmx/core"
	"github.com/katalvlaran/pathmx/graphio"
)

const scenario = "4 4\n0 1 1\n1 2 2\n0 2 5\n2 3 1\n"

// isolate blanks every PATHMX_* variable; run disables .env loading.
func isolate(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"CONFIG", "LOG_LEVEL", "WORKERS", "SEED", "DENSITY", "VERTICES", "ENGINE",
		"MIN_WEIGHT", "MAX_WEIGHT", "LOG_FILE", "MAX_LOG_SIZE", "MAX_LOG_AGE", "DISTINCT_PAIRS",
	} {
		t.Setenv(config.EnvPrefix+k, "")
	}
}

// run executes the CLI with args and stdin, returning stdout and the log.
func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var out, logs bytes.Buffer
	c := New(strings.NewReader(stdin), &out, &logs)
	c.envFiles = nil
	root := c.RootCommand()
	root.SetArgs(args)
	root.SetOut(&out)
	root.SetErr(&logs)
	err := root.ExecuteContext(context.Background())
	require.NoError(t, c.Close())

	return out.String(), logs.String(), err
}

func writeScenario(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "graph.txt")
	require.NoError(t, os.WriteFile(path, []byte(scenario), 0o644))

	return path
}

func TestPath_BothEngines(t *testing.T) {
	isolate(t)
	out, _, err := run(t, "", "path", writeScenario(t), "--from", "0", "--to", "3")
	require.NoError(t, err)

	assert.Contains(t, out, "matrix 0 → 3: 4")
	assert.Contains(t, out, "list 0 → 3: 4")
}

func TestPath_SingleEngineWithStats(t *testing.T) {
	isolate(t)
	out, _, err := run(t, "", "path", writeScenario(t), "--from", "0", "--to", "3", "--engine", "list", "--stats", "--all")
	require.NoError(t, err)

	assert.Contains(t, out, "list 0 → 3: 4")
	assert.NotContains(t, out, "matrix 0")
	assert.Contains(t, out, "Stats (list)")
	assert.Contains(t, out, "Distances from 0")
}

func TestPath_Errors(t *testing.T) {
	isolate(t)
	path := writeScenario(t)

	_, _, err := run(t, "", "path", path, "--from", "0", "--to", "4")
	require.ErrorIs(t, err, core.ErrVertexOutOfRange)

	_, _, err = run(t, "", "path", filepath.Join(t.TempDir(), "nope.txt"), "--to", "1")
	require.ErrorIs(t, err, graphio.ErrIO)

	_, _, err = run(t, "", "path", path, "--to", "1", "--engine", "floyd")
	require.ErrorIs(t, err, config.ErrInvalid)

	_, _, err = run(t, "", "path", path)
	require.Error(t, err, "--to is required")
}

func TestPath_Unreachable(t *testing.T) {
	isolate(t)
	out, _, err := run(t, "", "path", writeScenario(t), "--from", "3", "--to", "0")
	require.NoError(t, err)
	assert.Contains(t, out, "matrix 3 → 0: unreachable")
}

func TestGenerate_SavesAndReloads(t *testing.T) {
	isolate(t)
	file := filepath.Join(t.TempDir(), "gen.txt")
	out, _, err := run(t, "", "generate", "-n", "30", "-d", "20", "--seed", "7", "-o", file)
	require.NoError(t, err)
	assert.Contains(t, out, "vertices")
	assert.Contains(t, out, "generate took")

	g, err := graphio.LoadFile(file)
	require.NoError(t, err)
	assert.Equal(t, 30, g.VertexCount())
	assert.Equal(t, 87, g.EdgeCount())
}

func TestGenerate_InvalidDensity(t *testing.T) {
	isolate(t)
	_, _, err := run(t, "", "generate", "-n", "10", "-d", "150")
	require.Error(t, err)
}

func TestShow(t *testing.T) {
	isolate(t)
	path := writeScenario(t)

	out, _, err := run(t, "", "show", path)
	require.NoError(t, err)
	for _, section := range []string{"Graph", "Edges", "Matrix", "Adjacency"} {
		assert.Contains(t, out, section)
	}

	out, _, err = run(t, "", "show", "--summary", path)
	require.NoError(t, err)
	assert.NotContains(t, out, "Adjacency")
}

func TestVerboseLogsRunID(t *testing.T) {
	isolate(t)
	_, logs, err := run(t, "", "-v", "show", "-s", writeScenario(t))
	require.NoError(t, err)
	assert.Contains(t, logs, "run=")
	assert.Contains(t, logs, "graph loaded")
}

func TestLogFile(t *testing.T) {
	isolate(t)
	logPath := filepath.Join(t.TempDir(), "pathmx.log")
	t.Setenv(config.EnvPrefix+"LOG_FILE", logPath)

	_, logs, err := run(t, "", "-v", "show", "-s", writeScenario(t))
	require.NoError(t, err)

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "graph loaded")
	assert.Contains(t, logs, "graph loaded")
}

func TestMenu_FullSession(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	in := writeScenario(t)
	saved := filepath.Join(dir, "saved.txt")

	input := strings.Join([]string{
		"5", // no graph yet: logged, loop continues
		"1", in,
		"3",
		"5", "0", "3",
		"4", saved,
		"9", // invalid choice
		"6",
	}, "\n") + "\n"

	out, logs, err := run(t, input, "menu")
	require.NoError(t, err)

	assert.Contains(t, out, "MENU")
	assert.Contains(t, out, "Adjacency")
	assert.Contains(t, out, "matrix 0 → 3: 4")
	assert.Contains(t, out, "list 0 → 3: 4")
	assert.Contains(t, logs, "no graph loaded")
	assert.Contains(t, logs, "invalid choice")

	raw, err := os.ReadFile(saved)
	require.NoError(t, err)
	assert.Equal(t, scenario, string(raw))
}

// TestMenu_FailedLoadKeepsGraph: a bad file does not drop the current graph.
func TestMenu_FailedLoadKeepsGraph(t *testing.T) {
	isolate(t)
	bad := filepath.Join(t.TempDir(), "bad.txt")
	require.NoError(t, os.WriteFile(bad, []byte("2 2\n0 1"), 0o644))

	input := strings.Join([]string{
		"1", writeScenario(t),
		"1", bad,
		"5", "0", "3",
	}, "\n") + "\n"

	out, logs, err := run(t, input, "menu")
	require.NoError(t, err)
	assert.Contains(t, logs, "bad format")
	assert.Contains(t, out, "matrix 0 → 3: 4")
}

// TestMenu_OversizedGraphKeepsRunning: a header or request beyond the vertex
// limit is logged and the loop goes on with the previous graph.
func TestMenu_OversizedGraphKeepsRunning(t *testing.T) {
	isolate(t)
	huge := filepath.Join(t.TempDir(), "huge.txt")
	require.NoError(t, os.WriteFile(huge, []byte("0 4000000000\n"), 0o644))

	input := strings.Join([]string{
		"1", writeScenario(t),
		"1", huge,
		"2", "10", "4000000000",
		"5", "0", "3",
	}, "\n") + "\n"

	var out, logs string
	var err error
	require.NotPanics(t, func() { out, logs, err = run(t, input, "menu") })
	require.NoError(t, err)
	assert.Contains(t, logs, "bad format")
	assert.Contains(t, logs, "too many vertices")
	assert.Contains(t, out, "matrix 0 → 3: 4")
}

func TestGenerate_Distinct(t *testing.T) {
	isolate(t)
	file := filepath.Join(t.TempDir(), "gen.txt")
	_, _, err := run(t, "", "generate", "-n", "25", "-d", "100", "--seed", "2", "--distinct", "-o", file)
	require.NoError(t, err)

	g, err := graphio.LoadFile(file)
	require.NoError(t, err)
	assert.Equal(t, 300, g.EdgeCount())
	assert.Equal(t, g.EdgeCount(), g.Matrix().NonZero())

	// the same request through the environment
	t.Setenv(config.EnvPrefix+"DISTINCT_PAIRS", "true")
	_, _, err = run(t, "", "generate", "-n", "25", "-d", "100", "--seed", "2", "-o", file)
	require.NoError(t, err)
	g2, err := graphio.LoadFile(file)
	require.NoError(t, err)
	assert.True(t, g.Equal(g2))
}

func TestGenerate_TooManyVertices(t *testing.T) {
	isolate(t)
	_, _, err := run(t, "", "generate", "-n", "4000000000", "-d", "50")
	require.ErrorIs(t, err, core.ErrTooManyVertices)
}

func TestMenu_Generate(t *testing.T) {
	isolate(t)
	out, logs, err := run(t, "2\n50\n8\n2\nabc\n6\n", "--seed", "3", "menu")
	require.NoError(t, err)
	assert.Contains(t, out, "generate took")
	assert.Contains(t, logs, "not an integer")
}

func TestMenu_EOF(t *testing.T) {
	isolate(t)
	_, _, err := run(t, "", "menu")
	require.NoError(t, err)
}
