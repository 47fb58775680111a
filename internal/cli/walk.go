package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/depflow/depflow/pkg/digraph"
	"github.com/depflow/depflow/pkg/manifest"
)

// walkCommand traverses a manifest graph from a start node.
func (c *CLI) walkCommand() *cobra.Command {
	var (
		from    string
		breadth bool
	)

	cmd := &cobra.Command{
		Use:   "walk --from <node> <manifest>",
		Short: "Traverse a graph from a start node",
		Long:  `Walk loads a TOML graph manifest and prints the nodes reachable from the start node in depth-first order, or breadth-first order with --bfs. A breadth-first walk starts with the node's neighbors; the start node itself is not printed.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			m, err := manifest.Load(args[0])
			if err != nil {
				return err
			}
			d, err := m.Build()
			if err != nil {
				return err
			}

			var w *digraph.Walker[string]
			mode := "dfs"
			if breadth {
				w = d.BFS(from)
				mode = "bfs"
			} else {
				w = d.DFS(from)
			}
			logger.Debug("walking", "graph", m.Name(), "from", from, "mode", mode)

			out := cmd.OutOrStdout()
			printTitle(out, fmt.Sprintf("%s: %s from %s", m.Name(), mode, from))
			count := 0
			for {
				n, ok := w.Next()
				if !ok {
					break
				}
				count++
				fmt.Fprintf(out, "%s %s\n", styleNumber.Render(fmt.Sprintf("%3d.", count)), styleValue.Render(n))
			}
			if count == 0 {
				printEmpty(out, "(nothing reachable)")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "start node for the traversal")
	cmd.Flags().BoolVar(&breadth, "bfs", false, "walk breadth-first instead of depth-first")
	_ = cmd.MarkFlagRequired("from")

	return cmd
}
