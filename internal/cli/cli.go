package cli

import (
	"context"
	"io"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/natefinch/lumberjack"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/pathmx/config"
	"github.com/katalvlaran/pathmx/report"
)

const appName = "pathmx"

// version is set by SetVersion, typically from ldflags.
var version = "dev"

// SetVersion sets the version displayed by --version.
func SetVersion(v string) { version = v }

// CLI holds the streams and the resolved settings shared by every command.
type CLI struct {
	Logger *log.Logger

	in   io.Reader
	out  io.Writer
	logw io.Writer

	// rotating log file, set when the config names one
	logFile *lumberjack.Logger

	cfg      config.Config
	cfgFile  string
	envFiles []string
	verbose  bool

	// flag overrides for config keys, applied when the flag was set
	workers int
	seed    int64
	engine  string
}

// New returns a CLI reading menu input from in, printing reports to out and
// logging to logw.
func New(in io.Reader, out, logw io.Writer) *CLI {
	return &CLI{
		Logger:   newLogger(logw, log.InfoLevel),
		in:       in,
		out:      out,
		logw:     logw,
		cfg:      config.Default(),
		envFiles: []string{".env"},
	}
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "pathmx compares a parallel matrix Dijkstra with a priority-queue Dijkstra",
		Long: `pathmx builds or loads weighted directed graphs and computes shortest
distances with two engines: a parallel Dijkstra over the adjacency matrix and
a priority-queue Dijkstra over the edge list. Every operation reports its
elapsed time.`,
		Version:           version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: c.setup,
	}

	pf := root.PersistentFlags()
	pf.BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")
	pf.StringVar(&c.cfgFile, "config", "", "TOML configuration file (default: $PATHMX_CONFIG)")
	pf.IntVarP(&c.workers, "workers", "w", 0, "worker pool size for generation and the matrix engine (0 = auto)")
	pf.Int64Var(&c.seed, "seed", 0, "generator seed (0 = time based)")
	pf.StringVarP(&c.engine, "engine", "e", config.EngineBoth, "shortest-path engine: matrix, list or both")

	root.AddCommand(c.generateCommand())
	root.AddCommand(c.showCommand())
	root.AddCommand(c.pathCommand())
	root.AddCommand(c.menuCommand())

	return root
}

// setup resolves the configuration, applies flag overrides and attaches a
// run-scoped logger to the command context.
func (c *CLI) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(config.Source{File: c.cfgFile, EnvFiles: c.envFiles})
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("workers") {
		cfg.Workers = c.workers
	}
	if flags.Changed("seed") {
		cfg.Seed = c.seed
	}
	if flags.Changed("engine") {
		cfg.Engine = c.engine
	}
	if c.verbose {
		cfg.LogLevel = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	c.cfg = cfg

	c.Logger.SetLevel(cfg.Level())
	if cfg.LogFile != "" {
		c.logFile = &lumberjack.Logger{
			Filename: cfg.LogFile,
			MaxSize:  cfg.MaxLogSize,
			MaxAge:   cfg.MaxLogAge,
		}
		c.Logger.SetOutput(io.MultiWriter(c.logw, c.logFile))
	}
	logger := c.Logger.With("run", uuid.NewString()[:8])
	logger.Debug("configuration", "workers", cfg.Workers, "seed", cfg.Seed, "engine", cfg.Engine)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(withLogger(ctx, logger))

	return nil
}

// newSession returns a session bound to the command's logger and output.
func (c *CLI) newSession(ctx context.Context) *session {
	return &session{
		cfg: c.cfg,
		log: loggerFromContext(ctx),
		out: report.New(c.out),
	}
}

// Close releases the log file, if one was opened.
func (c *CLI) Close() error {
	if c.logFile == nil {
		return nil
	}
	return c.logFile.Close()
}

// Execute runs the pathmx CLI on the process streams.
func Execute(ctx context.Context, in io.Reader, out, logw io.Writer, args []string) error {
	c := New(in, out, logw)
	defer c.Close()

	root := c.RootCommand()
	root.SetArgs(args)
	root.SetOut(out)
	root.SetErr(logw)

	return root.ExecuteContext(ctx)
}
