package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathmx/builder"
	"github.com/katalvlaran/pathmx/config"
	"github.com/katalvlaran/pathmx/core"
	"github.com/katalvlaran/pathmx/dijkstra"
)

var envKeys = []string{
	"CONFIG", "LOG_LEVEL", "WORKERS", "SEED", "DENSITY",
	"VERTICES", "ENGINE", "MIN_WEIGHT", "MAX_WEIGHT",
	"LOG_FILE", "MAX_LOG_SIZE", "MAX_LOG_AGE", "DISTINCT_PAIRS",
}

// clearEnv unsets every PATHMX_* variable for the duration of the test.
// t.Setenv registers the restore; the Unsetenv makes the key truly absent,
// which .env loading relies on.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range envKeys {
		t.Setenv(config.EnvPrefix+k, "")
		require.NoError(t, os.Unsetenv(config.EnvPrefix+k))
	}
}

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	return path
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := config.Load(config.Source{})
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
	assert.Equal(t, log.InfoLevel, cfg.Level())
}

func TestLoad_TOML(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, "pathmx.toml", `
log_level = "debug"
workers   = 2
seed      = 99
density   = 40
engine    = "list"
`)

	cfg, err := config.Load(config.Source{File: path})
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 2, cfg.Workers)
	assert.Equal(t, int64(99), cfg.Seed)
	assert.Equal(t, 40, cfg.Density)
	assert.Equal(t, "list", cfg.Engine)
	// untouched keys keep their defaults
	assert.Equal(t, config.Default().Vertices, cfg.Vertices)
}

func TestLoad_LogFile(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, "pathmx.toml", "log_file = \"pathmx.log\"\nmax_log_size = 5\n")
	t.Setenv("PATHMX_MAX_LOG_AGE", "3")

	cfg, err := config.Load(config.Source{File: path})
	require.NoError(t, err)
	assert.Equal(t, "pathmx.log", cfg.LogFile)
	assert.Equal(t, 5, cfg.MaxLogSize)
	assert.Equal(t, 3, cfg.MaxLogAge)
}

// TestLoad_DistinctPairs: the key reaches the generator options, from TOML
// and from the environment.
func TestLoad_DistinctPairs(t *testing.T) {
	clearEnv(t)
	cfg, err := config.Load(config.Source{File: writeFile(t, "pathmx.toml", "distinct_pairs = true\n")})
	require.NoError(t, err)
	assert.True(t, cfg.DistinctPairs)

	clearEnv(t)
	t.Setenv("PATHMX_DISTINCT_PAIRS", "1")
	cfg, err = config.Load(config.Source{})
	require.NoError(t, err)
	assert.True(t, cfg.DistinctPairs)
	assert.Len(t, cfg.BuilderOptions(), 3)

	cfg.Seed = 3
	g, err := builder.Generate(20, 100, cfg.BuilderOptions()...)
	require.NoError(t, err)
	assert.Equal(t, g.EdgeCount(), g.Matrix().NonZero())
}

func TestLoad_TOMLFromEnv(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, "pathmx.toml", "vertices = 7\n")
	t.Setenv("PATHMX_CONFIG", path)

	cfg, err := config.Load(config.Source{})
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.Vertices)
}

func TestLoad_TOMLErrors(t *testing.T) {
	clearEnv(t)

	_, err := config.Load(config.Source{File: writeFile(t, "bad.toml", "workers = \"many\"\n")})
	require.Error(t, err)

	_, err = config.Load(config.Source{File: writeFile(t, "extra.toml", "colour = \"red\"\n")})
	require.ErrorIs(t, err, config.ErrInvalid)
	assert.Contains(t, err.Error(), "colour")

	_, err = config.Load(config.Source{File: filepath.Join(t.TempDir(), "missing.toml")})
	require.Error(t, err)
}

// TestLoad_Precedence: environment beats TOML, TOML beats defaults.
func TestLoad_Precedence(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, "pathmx.toml", "density = 40\nvertices = 10\n")
	t.Setenv("PATHMX_DENSITY", "60")

	cfg, err := config.Load(config.Source{File: path})
	require.NoError(t, err)
	assert.Equal(t, 60, cfg.Density)
	assert.Equal(t, 10, cfg.Vertices)
}

// TestLoad_EnvFile: .env fills absent variables only; a missing .env is fine.
func TestLoad_EnvFile(t *testing.T) {
	clearEnv(t)
	env := writeFile(t, ".env", "PATHMX_SEED=1234\nPATHMX_ENGINE=matrix\n")
	t.Setenv("PATHMX_ENGINE", "list")

	cfg, err := config.Load(config.Source{EnvFiles: []string{env, filepath.Join(t.TempDir(), "none.env")}})
	require.NoError(t, err)
	assert.Equal(t, int64(1234), cfg.Seed)
	assert.Equal(t, "list", cfg.Engine)
}

func TestLoad_EnvErrors(t *testing.T) {
	tests := map[string]string{
		"WORKERS":        "four",
		"SEED":           "1.5",
		"LOG_LEVEL":      "loud",
		"ENGINE":         "bellman",
		"DENSITY":        "101",
		"VERTICES":       "-3",
		"MIN_WEIGHT":     "0",
		"MAX_LOG_AGE":    "-1",
		"DISTINCT_PAIRS": "maybe",
	}
	for key, value := range tests {
		t.Run(key, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(config.EnvPrefix+key, value)
			_, err := config.Load(config.Source{})
			require.ErrorIs(t, err, config.ErrInvalid)
		})
	}
}

func TestValidate(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())

	cfg.Workers = 9
	require.ErrorIs(t, cfg.Validate(), config.ErrInvalid)

	cfg = config.Default()
	cfg.MinWeight, cfg.MaxWeight = 5, 4
	require.ErrorIs(t, cfg.Validate(), config.ErrInvalid)

	cfg = config.Default()
	cfg.Vertices = core.MaxVertices + 1
	require.ErrorIs(t, cfg.Validate(), config.ErrInvalid)
}

func TestEngines(t *testing.T) {
	cfg := config.Default()
	got, err := cfg.Engines()
	require.NoError(t, err)
	assert.Equal(t, dijkstra.Engines(), got)

	cfg.Engine = "Matrix"
	got, err = cfg.Engines()
	require.NoError(t, err)
	assert.Equal(t, []dijkstra.Engine{dijkstra.MatrixEngine}, got)

	cfg.Engine = "nope"
	_, err = cfg.Engines()
	require.ErrorIs(t, err, config.ErrInvalid)
	assert.ErrorIs(t, err, dijkstra.ErrUnknownEngine)
}

func TestBuilderOptions(t *testing.T) {
	cfg := config.Default()
	assert.Len(t, cfg.BuilderOptions(), 2)

	cfg.Seed = 5
	assert.Len(t, cfg.BuilderOptions(), 3)
	assert.Len(t, cfg.EngineOptions(), 1)
}
