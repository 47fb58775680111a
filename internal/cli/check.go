package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/depflow/depflow/pkg/dag"
	"github.com/depflow/depflow/pkg/manifest"
)

// checkCommand verifies that a manifest builds an acyclic graph.
func (c *CLI) checkCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check <manifest>",
		Short: "Verify that a manifest builds without closing a cycle",
		Long:  `Check loads a TOML graph manifest and applies its edges in order with cycle checking. The first edge that would close a cycle is reported; otherwise the graph's node and edge counts are printed.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			out := cmd.OutOrStdout()

			m, err := manifest.Load(args[0])
			if err != nil {
				return err
			}

			d, err := m.Build()
			if err != nil {
				var cycleErr *dag.CycleError[string]
				if errors.As(err, &cycleErr) {
					fmt.Fprintf(out, "%s %s\n",
						styleError.Render("cycle:"),
						styleValue.Render(fmt.Sprintf("edge %s -> %s closes a cycle", cycleErr.From, cycleErr.To)))
				}
				return err
			}

			logger.Debug("manifest ok", "graph", m.Name())
			fmt.Fprintf(out, "%s %s\n",
				styleSuccess.Render("ok:"),
				styleValue.Render(fmt.Sprintf("%s is acyclic (%d nodes, %d edges)", m.Name(), d.NodeCount(), d.EdgeCount())))
			return nil
		},
	}
}
