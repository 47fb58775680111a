package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/depflow/depflow/pkg/manifest"
)

// sortCommand prints a topological order for a graph manifest.
func (c *CLI) sortCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "sort <manifest>",
		Short: "Print a topological order for a graph manifest",
		Long:  `Sort loads a TOML graph manifest, builds the graph with cycle checking, and prints one valid topological order: every node appears after all of its predecessors.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			p := newProgress(logger)

			m, err := manifest.Load(args[0])
			if err != nil {
				return err
			}
			logger.Debug("manifest loaded", "graph", m.Name(), "edges", len(m.Edges))

			d, err := m.Build()
			if err != nil {
				return err
			}
			order := d.TopoSort()
			p.done(fmt.Sprintf("Sorted %d nodes", len(order)))

			out := cmd.OutOrStdout()
			printTitle(out, m.Name())
			if len(order) == 0 {
				printEmpty(out, "(empty graph)")
				return nil
			}
			printOrdered(out, order)
			return nil
		},
	}
}
