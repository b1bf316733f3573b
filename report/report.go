package report

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/dustin/go-humanize"

	"github.com/katalvlaran/pathmx/core"
	"github.com/katalvlaran/pathmx/dijkstra"
)

// ErrNilGraph indicates that a graph section was asked to render nil.
var ErrNilGraph = errors.New("report: graph is nil")

// Printer renders report sections to one writer.
type Printer struct {
	w  io.Writer
	st styles
}

// New returns a Printer for w. Colors are used only when w is a terminal.
func New(w io.Writer) *Printer {
	return &Printer{w: w, st: newStyles(lipgloss.NewRenderer(w))}
}

// Result is one shortest-path query answer.
type Result struct {
	Engine   dijkstra.Engine
	Source   int
	Target   int
	Distance int64
	Elapsed  time.Duration
}

func (p *Printer) write(s string) error {
	_, err := io.WriteString(p.w, s)
	return err
}

func (p *Printer) kv(b *strings.Builder, key, value string) {
	b.WriteString("  ")
	b.WriteString(p.st.label.Render(key))
	b.WriteString(" ")
	b.WriteString(value)
	b.WriteString("\n")
}

// Summary prints the vertex count, the density in percent and the edge count.
func (p *Printer) Summary(g *core.Graph) error {
	if g == nil {
		return ErrNilGraph
	}
	var b strings.Builder
	b.WriteString(p.st.title.Render("Graph") + "\n")
	p.kv(&b, "vertices", p.st.number.Render(humanize.Comma(int64(g.VertexCount()))))
	p.kv(&b, "density", p.st.number.Render(humanize.FtoaWithDigits(g.Density(), 2)+"%"))
	p.kv(&b, "edges", p.st.number.Render(humanize.Comma(int64(g.EdgeCount()))))

	return p.write(b.String())
}

// Edges prints the edge sequence as a table.
func (p *Printer) Edges(g *core.Graph) error {
	if g == nil {
		return ErrNilGraph
	}
	rows := make([][]string, g.EdgeCount())
	var e core.Edge
	for i := range rows {
		e = g.EdgeAt(i)
		rows[i] = []string{
			strconv.Itoa(i),
			strconv.Itoa(e.From),
			strconv.Itoa(e.To),
			strconv.FormatInt(e.Weight, 10),
		}
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(p.st.dim).
		Headers("#", "from", "to", "weight").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return p.st.header
			}
			return p.st.cell
		})

	return p.write(p.st.title.Render("Edges") + "\n" + t.Render() + "\n")
}

// Matrix prints every cell, right-aligned, with vertex IDs on both axes.
// Zero cells ("no edge") are dimmed.
func (p *Printer) Matrix(g *core.Graph) error {
	if g == nil {
		return ErrNilGraph
	}
	n := g.VertexCount()
	m := g.Matrix()
	if n == 0 {
		return p.write(p.st.title.Render("Matrix") + "\n  " + p.st.dim.Render("empty") + "\n")
	}

	// 1) Column width: widest of the IDs and the cell values.
	width := len(strconv.Itoa(n - 1))
	for i := 0; i < n; i++ {
		for _, w := range m.RowView(i) {
			if l := len(strconv.FormatInt(w, 10)); l > width {
				width = l
			}
		}
	}
	pad := func(s string) string { return strings.Repeat(" ", width-len(s)) + s }

	// 2) Header row, then one row per vertex.
	var b strings.Builder
	b.WriteString(p.st.title.Render("Matrix") + "\n")
	b.WriteString(strings.Repeat(" ", width))
	for j := 0; j < n; j++ {
		b.WriteString(" " + p.st.dim.Render(pad(strconv.Itoa(j))))
	}
	b.WriteString("\n")
	for i := 0; i < n; i++ {
		b.WriteString(p.st.dim.Render(pad(strconv.Itoa(i))))
		for _, w := range m.RowView(i) {
			s := pad(strconv.FormatInt(w, 10))
			if w == core.NoEdge {
				s = p.st.dim.Render(s)
			} else {
				s = p.st.value.Render(s)
			}
			b.WriteString(" " + s)
		}
		b.WriteString("\n")
	}

	return p.write(b.String())
}

// Adjacency prints, per vertex, its outgoing edges as (to, weight) pairs.
func (p *Printer) Adjacency(g *core.Graph) error {
	if g == nil {
		return ErrNilGraph
	}
	var b strings.Builder
	b.WriteString(p.st.title.Render("Adjacency") + "\n")
	for v := 0; v < g.VertexCount(); v++ {
		out, err := g.Outgoing(v)
		if err != nil {
			return err
		}
		b.WriteString("  " + p.st.label.Render("vertex "+strconv.Itoa(v)))
		if len(out) == 0 {
			b.WriteString(" " + p.st.dim.Render("none") + "\n")
			continue
		}
		for _, e := range out {
			fmt.Fprintf(&b, " (%d, %d)", e.To, e.Weight)
		}
		b.WriteString("\n")
	}

	return p.write(b.String())
}

// Graph prints Summary, Edges, Matrix and Adjacency separated by blank lines.
func (p *Printer) Graph(g *core.Graph) error {
	sections := []func(*core.Graph) error{p.Summary, p.Edges, p.Matrix, p.Adjacency}
	for i, section := range sections {
		if i > 0 {
			if err := p.write("\n"); err != nil {
				return err
			}
		}
		if err := section(g); err != nil {
			return err
		}
	}

	return nil
}

// Distance prints one query result.
func (p *Printer) Distance(r Result) error {
	d := p.st.warn.Render("unreachable")
	if !dijkstra.IsInfinite(r.Distance) {
		d = p.st.number.Render(humanize.Comma(r.Distance))
	}
	line := fmt.Sprintf("%s %s %d %s %d: %s",
		p.st.success.Render(iconSuccess),
		p.st.value.Render(r.Engine.String()),
		r.Source, p.st.dim.Render(iconArrow), r.Target, d)
	if r.Elapsed > 0 {
		line += " " + p.st.dim.Render("("+micros(r.Elapsed)+")")
	}

	return p.write(line + "\n")
}

// Vector prints one line per vertex of a distance vector.
func (p *Printer) Vector(source int, dist []int64) error {
	var b strings.Builder
	b.WriteString(p.st.title.Render("Distances from "+strconv.Itoa(source)) + "\n")
	for v, d := range dist {
		s := p.st.warn.Render("unreachable")
		if !dijkstra.IsInfinite(d) {
			s = p.st.number.Render(humanize.Comma(d))
		}
		p.kv(&b, strconv.Itoa(v), s)
	}

	return p.write(b.String())
}

// Stats prints the counters of one engine run.
func (p *Printer) Stats(s dijkstra.Stats) error {
	var b strings.Builder
	b.WriteString(p.st.title.Render("Stats ("+s.Engine.String()+")") + "\n")
	p.kv(&b, "workers", p.st.number.Render(strconv.Itoa(s.Workers)))
	if s.Engine == dijkstra.MatrixEngine {
		p.kv(&b, "rounds", p.st.number.Render(humanize.Comma(int64(s.Rounds))))
	}
	p.kv(&b, "settled", p.st.number.Render(humanize.Comma(int64(s.Settled))))
	p.kv(&b, "relaxations", p.st.number.Render(humanize.Comma(s.Relaxations)))
	if s.Engine == dijkstra.ListEngine {
		p.kv(&b, "pushes", p.st.number.Render(humanize.Comma(int64(s.Pushes))))
		p.kv(&b, "pops", p.st.number.Render(humanize.Comma(int64(s.Pops))))
		p.kv(&b, "stale", p.st.number.Render(humanize.Comma(int64(s.Stale))))
	}

	return p.write(b.String())
}

// Elapsed prints how long op took.
func (p *Printer) Elapsed(op string, d time.Duration) error {
	return p.write(fmt.Sprintf("%s %s %s\n",
		p.st.success.Render(iconSuccess), op, p.st.dim.Render("took "+micros(d))))
}

// micros formats d as grouped microseconds, e.g. "12,345 µs".
func micros(d time.Duration) string {
	return humanize.Comma(d.Microseconds()) + " µs"
}
