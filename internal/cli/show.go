package cli

import (
	"github.com/spf13/cobra"
)

// showCommand creates the show command.
func (c *CLI) showCommand() *cobra.Command {
	var summary bool

	cmd := &cobra.Command{
		Use:   "show FILE",
		Short: "Print a graph file: summary, edges, matrix and adjacency lists",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := c.newSession(cmd.Context())
			if err := s.load(args[0]); err != nil {
				return err
			}
			return s.display(!summary)
		},
	}

	cmd.Flags().BoolVarP(&summary, "summary", "s", false, "print the summary only")

	return cmd
}
