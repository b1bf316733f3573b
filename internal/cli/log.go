// Package cli implements the pathmx command-line interface.
//
// # Commands
//
//   - generate: build a random graph, print its summary, optionally save it
//   - show:     load a graph file and print every report section
//   - path:     load a graph file and run one or both shortest-path engines
//   - menu:     the interactive loop (load, generate, display, save, search)
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context and carry a short run ID, so the lines of
// one invocation can be told apart in shared logs. With log_file set in the
// configuration, lines are also appended to a rotating file.
package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/dustin/go-humanize"
)

// newLogger creates a logger writing to w at the given level, with
// timestamps formatted as "HH:MM:SS.ms".
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress measures one operation and logs its elapsed time on done.
// It is meant for sequential use by a single goroutine.
type progress struct {
	logger *log.Logger
	op     string
	start  time.Time
}

func newProgress(l *log.Logger, op string) *progress {
	return &progress{logger: l, op: op, start: time.Now()}
}

// elapsed returns the time since newProgress.
func (p *progress) elapsed() time.Duration { return time.Since(p.start) }

// done logs msg with the elapsed time in microseconds and returns that time.
func (p *progress) done(msg string, keyvals ...interface{}) time.Duration {
	d := p.elapsed()
	kv := append([]interface{}{"op", p.op, "elapsed_us", humanize.Comma(d.Microseconds())}, keyvals...)
	p.logger.Debug(msg, kv...)

	return d
}

type ctxKey int

const loggerKey ctxKey = 0

// withLogger returns a copy of ctx carrying l.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext returns the logger attached to ctx, or log.Default().
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
