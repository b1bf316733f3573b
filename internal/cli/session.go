package cli

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/pathmx/builder"
	"github.com/katalvlaran/pathmx/config"
	"github.com/katalvlaran/pathmx/core"
	"github.com/katalvlaran/pathmx/dijkstra"
	"github.com/katalvlaran/pathmx/graphio"
	"github.com/katalvlaran/pathmx/report"
)

// errNoGraph is returned by actions that need a graph before one was loaded
// or generated.
var errNoGraph = errors.New("no graph loaded: load or generate one first")

// session holds the current graph of one CLI invocation. A failed load or
// generate leaves the previous graph in place.
type session struct {
	cfg   config.Config
	log   *log.Logger
	out   *report.Printer
	graph *core.Graph
}

// load replaces the current graph with the one in path.
func (s *session) load(path string) error {
	p := newProgress(s.log, "load")
	g, err := graphio.LoadFile(path)
	if err != nil {
		return err
	}
	s.graph = g
	d := p.done("graph loaded", "path", path, "vertices", g.VertexCount(), "edges", g.EdgeCount())

	return s.out.Elapsed("load "+path, d)
}

// generate replaces the current graph with a random one.
func (s *session) generate(vertices, density int) error {
	p := newProgress(s.log, "generate")
	g, err := builder.Generate(vertices, density, s.cfg.BuilderOptions()...)
	if err != nil {
		return err
	}
	s.graph = g
	d := p.done("graph generated", "vertices", vertices, "density", density, "edges", g.EdgeCount())
	if err := s.out.Summary(g); err != nil {
		return err
	}

	return s.out.Elapsed("generate", d)
}

// save writes the current graph to path.
func (s *session) save(path string) error {
	if s.graph == nil {
		return errNoGraph
	}
	p := newProgress(s.log, "save")
	if err := graphio.SaveFile(path, s.graph); err != nil {
		return err
	}
	d := p.done("graph saved", "path", path)

	return s.out.Elapsed("save "+path, d)
}

// display prints the summary or, when full is set, every report section.
func (s *session) display(full bool) error {
	if s.graph == nil {
		return errNoGraph
	}
	p := newProgress(s.log, "display")
	var err error
	if full {
		err = s.out.Graph(s.graph)
	} else {
		err = s.out.Summary(s.graph)
	}
	if err != nil {
		return err
	}

	return s.out.Elapsed("display", p.done("graph displayed"))
}

// searchOptions selects what shortest prints besides the distance.
type searchOptions struct {
	all   bool // print the full distance vector
	stats bool // print engine counters
}

// shortest runs every configured engine from source to target and prints one
// result line per engine. It warns when the engines disagree.
func (s *session) shortest(source, target int, opt searchOptions) error {
	if s.graph == nil {
		return errNoGraph
	}
	engines, err := s.cfg.Engines()
	if err != nil {
		return err
	}
	if err := s.graph.CheckVertex(source); err != nil {
		return fmt.Errorf("source: %w", err)
	}
	if err := s.graph.CheckVertex(target); err != nil {
		return fmt.Errorf("target: %w", err)
	}

	results := make([]int64, 0, len(engines))
	for _, eng := range engines {
		var stats dijkstra.Stats
		opts := append(s.cfg.EngineOptions(), dijkstra.WithStats(&stats))

		p := newProgress(s.log, "dijkstra/"+eng.String())
		dist, err := dijkstra.Run(s.graph, source, eng, opts...)
		if err != nil {
			return fmt.Errorf("%s: %w", eng, err)
		}
		d := p.done("search finished", "source", source, "target", target, "settled", stats.Settled)

		results = append(results, dist[target])
		if err := s.out.Distance(report.Result{
			Engine: eng, Source: source, Target: target, Distance: dist[target], Elapsed: d,
		}); err != nil {
			return err
		}
		if opt.all {
			if err := s.out.Vector(source, dist); err != nil {
				return err
			}
		}
		if opt.stats {
			if err := s.out.Stats(stats); err != nil {
				return err
			}
		}
	}

	for _, r := range results[1:] {
		if r != results[0] {
			s.log.Warn("engines disagree; the graph has parallel edges with different weights",
				"matrix", results[0], "list", r)
			break
		}
	}

	return nil
}
