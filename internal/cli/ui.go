package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	colorCyan = lipgloss.Color("36")  // Teal - titles, keys
	colorGray = lipgloss.Color("245") // Gray - secondary text
	colorDim  = lipgloss.Color("240") // Dim gray - rules
)

// ui renders the interactive menu on one writer.
type ui struct {
	w      io.Writer
	title  lipgloss.Style
	key    lipgloss.Style
	dim    lipgloss.Style
	prompt lipgloss.Style
}

func newUI(w io.Writer) *ui {
	r := lipgloss.NewRenderer(w)
	return &ui{
		w:      w,
		title:  r.NewStyle().Bold(true).Foreground(colorCyan),
		key:    r.NewStyle().Foreground(colorCyan),
		dim:    r.NewStyle().Foreground(colorDim),
		prompt: r.NewStyle().Foreground(colorGray),
	}
}

// menuItems are the interactive actions, in key order.
var menuItems = []string{
	"Load graph from text file",
	"Generate random graph",
	"Display graph",
	"Save graph to text file",
	"Run Dijkstra (matrix and list engines)",
	"Exit",
}

const menuWidth = 34

func (u *ui) menu() {
	rule := u.dim.Render(strings.Repeat("=", menuWidth))
	fmt.Fprintln(u.w, rule)
	fmt.Fprintln(u.w, u.title.Render(lipgloss.PlaceHorizontal(menuWidth, lipgloss.Center, "MENU")))
	fmt.Fprintln(u.w, rule)
	for i, item := range menuItems {
		fmt.Fprintf(u.w, "%s %s\n", u.key.Render(fmt.Sprintf("%d.", i+1)), item)
	}
}

func (u *ui) ask(label string) {
	fmt.Fprint(u.w, u.prompt.Render(label+": "))
}
