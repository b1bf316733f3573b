// Package config resolves the settings of the pathmx driver.
//
// Precedence, lowest first:
//
//  1. Default()
//  2. a TOML file (Source.File, or $PATHMX_CONFIG when File is empty)
//  3. .env files (Source.EnvFiles) and PATHMX_* environment variables
//  4. command-line flags, applied by the caller after Load
//
// .env files never override variables already present in the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"

	"github.com/katalvlaran/pathmx/builder"
	"github.com/katalvlaran/pathmx/core"
	"github.com/katalvlaran/pathmx/dijkstra"
	"github.com/katalvlaran/pathmx/internal/workers"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "PATHMX_"

// EngineBoth selects both shortest-path engines.
const EngineBoth = "both"

// ErrInvalid indicates a setting that cannot be parsed or is out of range.
var ErrInvalid = errors.New("config: invalid setting")

// Config holds every driver setting.
type Config struct {
	LogLevel  string `toml:"log_level"`  // debug, info, warn, error
	Workers   int    `toml:"workers"`    // engine and generator pool size; 0 = default
	Seed      int64  `toml:"seed"`       // generator seed; 0 = time based
	Density   int    `toml:"density"`    // generator density in percent
	Vertices  int    `toml:"vertices"`   // generator vertex count
	Engine    string `toml:"engine"`     // matrix, list or both
	MinWeight int64  `toml:"min_weight"` // inclusive
	MaxWeight int64  `toml:"max_weight"` // inclusive

	// DistinctPairs generates graphs without parallel edges or self-loops,
	// so both engines report the same distances.
	DistinctPairs bool `toml:"distinct_pairs"`

	// Optional rotating log file, written in addition to stderr.
	LogFile    string `toml:"log_file"`
	MaxLogSize int    `toml:"max_log_size"` // megabytes before rotation
	MaxLogAge  int    `toml:"max_log_age"`  // days to keep rotated files
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		LogLevel:  "info",
		Density:   25,
		Vertices:  100,
		Engine:    EngineBoth,
		MinWeight: builder.DefaultMinWeight,
		MaxWeight: builder.DefaultMaxWeight,

		MaxLogSize: 100,
		MaxLogAge:  28,
	}
}

// Source names the optional inputs of Load.
type Source struct {
	File     string   // TOML file; empty means $PATHMX_CONFIG or none
	EnvFiles []string // .env files; missing files are skipped
}

// Load resolves defaults, the TOML file and the environment, then validates
// the result.
func Load(src Source) (Config, error) {
	cfg := Default()

	// 1) .env first, so PATHMX_CONFIG may come from it.
	for _, f := range src.EnvFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("config: env file %s: %w", f, err)
		}
	}

	// 2) TOML.
	file := src.File
	if file == "" {
		file = os.Getenv(EnvPrefix + "CONFIG")
	}
	if file != "" {
		if err := cfg.decodeFile(file); err != nil {
			return Config{}, err
		}
	}

	// 3) Environment.
	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// decodeFile overlays the keys present in a TOML file; unknown keys fail.
func (c *Config) decodeFile(path string) error {
	md, err := toml.DecodeFile(path, c)
	if err != nil {
		return fmt.Errorf("config: decode %s: %w", path, err)
	}
	if extra := md.Undecoded(); len(extra) > 0 {
		keys := make([]string, len(extra))
		for i, k := range extra {
			keys[i] = k.String()
		}
		return fmt.Errorf("%w: %s: unknown keys %s", ErrInvalid, path, strings.Join(keys, ", "))
	}

	return nil
}

// applyEnv overlays every PATHMX_* variable that is set and non-empty.
func (c *Config) applyEnv() error {
	c.LogLevel = getEnv("LOG_LEVEL", c.LogLevel)
	c.Engine = getEnv("ENGINE", c.Engine)
	c.LogFile = getEnv("LOG_FILE", c.LogFile)

	var err error
	if c.DistinctPairs, err = getEnvAsBool("DISTINCT_PAIRS", c.DistinctPairs); err != nil {
		return err
	}
	if c.Workers, err = getEnvAsInt("WORKERS", c.Workers); err != nil {
		return err
	}
	if c.Density, err = getEnvAsInt("DENSITY", c.Density); err != nil {
		return err
	}
	if c.Vertices, err = getEnvAsInt("VERTICES", c.Vertices); err != nil {
		return err
	}
	if c.Seed, err = getEnvAsInt64("SEED", c.Seed); err != nil {
		return err
	}
	if c.MinWeight, err = getEnvAsInt64("MIN_WEIGHT", c.MinWeight); err != nil {
		return err
	}
	if c.MaxWeight, err = getEnvAsInt64("MAX_WEIGHT", c.MaxWeight); err != nil {
		return err
	}
	if c.MaxLogSize, err = getEnvAsInt("MAX_LOG_SIZE", c.MaxLogSize); err != nil {
		return err
	}
	if c.MaxLogAge, err = getEnvAsInt("MAX_LOG_AGE", c.MaxLogAge); err != nil {
		return err
	}

	return nil
}

// Validate checks ranges and names.
func (c Config) Validate() error {
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: log_level %q", ErrInvalid, c.LogLevel)
	}
	if c.Workers < 0 || c.Workers > workers.MaxWorkers {
		return fmt.Errorf("%w: workers=%d not in [0,%d]", ErrInvalid, c.Workers, workers.MaxWorkers)
	}
	if c.Density < 0 || c.Density > builder.MaxDensity {
		return fmt.Errorf("%w: density=%d not in [0,%d]", ErrInvalid, c.Density, builder.MaxDensity)
	}
	if c.Vertices < 0 || c.Vertices > core.MaxVertices {
		return fmt.Errorf("%w: vertices=%d not in [0,%d]", ErrInvalid, c.Vertices, core.MaxVertices)
	}
	if c.MinWeight < 1 || c.MaxWeight < c.MinWeight {
		return fmt.Errorf("%w: weight range [%d,%d] needs 1 <= min <= max", ErrInvalid, c.MinWeight, c.MaxWeight)
	}
	if c.MaxLogSize < 0 || c.MaxLogAge < 0 {
		return fmt.Errorf("%w: max_log_size=%d max_log_age=%d must be >= 0", ErrInvalid, c.MaxLogSize, c.MaxLogAge)
	}
	if _, err := c.Engines(); err != nil {
		return err
	}

	return nil
}

// Level returns the parsed log level.
func (c Config) Level() log.Level {
	lvl, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return log.InfoLevel
	}

	return lvl
}

// Engines maps Engine to the engines to run: "both" yields every engine.
func (c Config) Engines() ([]dijkstra.Engine, error) {
	if strings.EqualFold(strings.TrimSpace(c.Engine), EngineBoth) {
		return dijkstra.Engines(), nil
	}
	e, err := dijkstra.ParseEngine(c.Engine)
	if err != nil {
		return nil, fmt.Errorf("%w: engine: %w", ErrInvalid, err)
	}

	return []dijkstra.Engine{e}, nil
}

// BuilderOptions turns the generator settings into builder options.
func (c Config) BuilderOptions() []builder.Option {
	opts := []builder.Option{
		builder.WithWorkers(c.Workers),
		builder.WithWeightRange(c.MinWeight, c.MaxWeight),
	}
	if c.Seed != 0 {
		opts = append(opts, builder.WithSeed(c.Seed))
	}
	if c.DistinctPairs {
		opts = append(opts, builder.WithDistinctPairs())
	}

	return opts
}

// EngineOptions turns the engine settings into dijkstra options.
func (c Config) EngineOptions() []dijkstra.Option {
	return []dijkstra.Option{dijkstra.WithWorkers(c.Workers)}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(EnvPrefix + key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) (int, error) {
	s := os.Getenv(EnvPrefix + key)
	if s == "" {
		return defaultValue, nil
	}
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %s%s=%q is not an integer", ErrInvalid, EnvPrefix, key, s)
	}

	return v, nil
}

func getEnvAsInt64(key string, defaultValue int64) (int64, error) {
	s := os.Getenv(EnvPrefix + key)
	if s == "" {
		return defaultValue, nil
	}
	v, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s%s=%q is not an integer", ErrInvalid, EnvPrefix, key, s)
	}

	return v, nil
}

func getEnvAsBool(key string, defaultValue bool) (bool, error) {
	s := os.Getenv(EnvPrefix + key)
	if s == "" {
		return defaultValue, nil
	}
	v, err := strconv.ParseBool(strings.TrimSpace(s))
	if err != nil {
		return false, fmt.Errorf("%w: %s%s=%q is not a boolean", ErrInvalid, EnvPrefix, key, s)
	}

	return v, nil
}
