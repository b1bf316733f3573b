package report

import "github.com/charmbracelet/lipgloss"

var (
	colorCyan   = lipgloss.Color("36")  // titles, numbers
	colorGreen  = lipgloss.Color("35")  // success
	colorYellow = lipgloss.Color("220") // unreachable
	colorWhite  = lipgloss.Color("255") // values
	colorGray   = lipgloss.Color("245") // labels
	colorDim    = lipgloss.Color("240") // borders, zero cells
)

const (
	iconSuccess = "✓"
	iconArrow   = "→"
	labelWidth  = 12
)

// styles holds every style bound to one renderer.
type styles struct {
	title   lipgloss.Style
	label   lipgloss.Style
	value   lipgloss.Style
	number  lipgloss.Style
	dim     lipgloss.Style
	warn    lipgloss.Style
	success lipgloss.Style
	header  lipgloss.Style
	cell    lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		title:   r.NewStyle().Bold(true).Foreground(colorCyan),
		label:   r.NewStyle().Foreground(colorGray).Width(labelWidth),
		value:   r.NewStyle().Foreground(colorWhite),
		number:  r.NewStyle().Foreground(colorCyan),
		dim:     r.NewStyle().Foreground(colorDim),
		warn:    r.NewStyle().Foreground(colorYellow),
		success: r.NewStyle().Foreground(colorGreen),
		header:  r.NewStyle().Foreground(colorGray).Bold(true).Padding(0, 1),
		cell:    r.NewStyle().Padding(0, 1),
	}
}
