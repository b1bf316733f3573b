package cli

import (
	"github.com/spf13/cobra"
)

// pathCommand creates the path command.
func (c *CLI) pathCommand() *cobra.Command {
	var (
		from, to int
		opt      searchOptions
	)

	cmd := &cobra.Command{
		Use:   "path FILE",
		Short: "Compute the shortest distance between two vertices",
		Long: `Load a graph file and compute the shortest distance from --from to --to
with the engines selected by --engine (matrix, list or both). Unreachable
targets are reported as such.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := c.newSession(cmd.Context())
			if err := s.load(args[0]); err != nil {
				return err
			}
			return s.shortest(from, to, opt)
		},
	}

	cmd.Flags().IntVar(&from, "from", 0, "source vertex")
	cmd.Flags().IntVar(&to, "to", 0, "target vertex")
	cmd.Flags().BoolVar(&opt.all, "all", false, "print the distance to every vertex")
	cmd.Flags().BoolVar(&opt.stats, "stats", false, "print engine counters")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}
