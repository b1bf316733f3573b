package cli

import (
	"bufio"
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

// menuCommand creates the interactive menu command.
func (c *CLI) menuCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "menu",
		Short: "Interactive loop: load, generate, display, save and search",
		Long: `Start the interactive menu. The current graph is kept between actions;
a failed action is logged and leaves it unchanged. End of input exits.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runMenu(cmd.Context())
		},
	}
}

// menuReader reads answers line by line.
type menuReader struct {
	sc *bufio.Scanner
	ui *ui
}

// line prompts with label and returns the trimmed answer; ok is false at end
// of input.
func (r *menuReader) line(label string) (answer string, ok bool) {
	r.ui.ask(label)
	if !r.sc.Scan() {
		fmt.Fprintln(r.ui.w)
		return "", false
	}

	return strings.TrimSpace(r.sc.Text()), true
}

// number prompts for an integer.
func (r *menuReader) number(label string) (int, bool, error) {
	s, ok := r.line(label)
	if !ok {
		return 0, false, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, true, fmt.Errorf("%s: %q is not an integer", label, s)
	}

	return n, true, nil
}

// runMenu loops until "6" or end of input.
func (c *CLI) runMenu(ctx context.Context) error {
	logger := loggerFromContext(ctx)
	s := c.newSession(ctx)
	u := newUI(c.out)
	r := &menuReader{sc: bufio.NewScanner(c.in), ui: u}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		u.menu()
		choice, ok := r.line("Choice")
		if !ok {
			return nil
		}

		var err error
		switch choice {
		case "1":
			path, ok := r.line("File name")
			if !ok {
				return nil
			}
			err = s.load(path)
		case "2":
			err = c.menuGenerate(r, s)
		case "3":
			err = s.display(true)
		case "4":
			path, ok := r.line("File name")
			if !ok {
				return nil
			}
			err = s.save(path)
		case "5":
			err = c.menuSearch(r, s)
		case "6":
			return nil
		case "":
			continue
		default:
			logger.Warn("invalid choice, try again", "choice", choice)
			continue
		}
		if err != nil {
			logger.Error("action failed", "choice", choice, "err", err)
		}
	}
}

func (c *CLI) menuGenerate(r *menuReader, s *session) error {
	density, ok, err := r.number("Density (%)")
	if !ok || err != nil {
		return err
	}
	vertices, ok, err := r.number("Vertices")
	if !ok || err != nil {
		return err
	}

	return s.generate(vertices, density)
}

func (c *CLI) menuSearch(r *menuReader, s *session) error {
	if s.graph == nil {
		return errNoGraph
	}
	source, ok, err := r.number("Source vertex")
	if !ok || err != nil {
		return err
	}
	target, ok, err := r.number("Target vertex")
	if !ok || err != nil {
		return err
	}

	return s.shortest(source, target, searchOptions{})
}
