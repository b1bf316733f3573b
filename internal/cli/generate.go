package cli

import (
	"github.com/spf13/cobra"
)

// generateCommand creates the generate command.
func (c *CLI) generateCommand() *cobra.Command {
	var (
		vertices int
		density  int
		output   string
		distinct bool
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a random weighted directed graph",
		Long: `Generate a random weighted directed graph with the given vertex count and
density. The edge count is vertices*(vertices-1)*density/200; weights are
drawn from [min_weight, max_weight]. Use --seed for reproducible output and
--distinct (or distinct_pairs in the config) to avoid parallel edges.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("vertices") {
				vertices = c.cfg.Vertices
			}
			if !cmd.Flags().Changed("density") {
				density = c.cfg.Density
			}
			if cmd.Flags().Changed("distinct") {
				c.cfg.DistinctPairs = distinct
			}

			s := c.newSession(cmd.Context())
			if err := s.generate(vertices, density); err != nil {
				return err
			}
			if output != "" {
				return s.save(output)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&vertices, "vertices", "n", 0, "vertex count (default from config)")
	cmd.Flags().IntVarP(&density, "density", "d", 0, "density in percent, 0-100 (default from config)")
	cmd.Flags().StringVarP(&output, "out", "o", "", "save the graph to this file")
	cmd.Flags().BoolVar(&distinct, "distinct", false, "no parallel edges or self-loops (default from config)")

	return cmd
}
