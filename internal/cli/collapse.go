package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MasoudKargar/HAG/pkg/hag"
)

// collapseCommand creates the collapse command for folding hyper-vertices.
func (c *CLI) collapseCommand() *cobra.Command {
	var (
		names  []string
		output string
	)

	cmd := &cobra.Command{
		Use:   "collapse [file]",
		Short: "Collapse hyper-vertices into single nodes",
		Long: `Collapse hyper-vertices into single nodes.

Every edge touching a member is rewritten to touch the hyper-vertex
instead, members are removed, and duplicate edges merge. The resulting
graph is written as a JSON snapshot (stdout by default). Names that are
not defined as hyper-vertices are skipped with a warning.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(names) == 0 {
				return fmt.Errorf("at least one --name is required")
			}

			g, err := loadGraph(args[0])
			if err != nil {
				return err
			}

			prog := newProgress(c.Logger)
			for _, name := range names {
				id := hag.ID(name)
				if _, ok := g.HyperVertex(id); !ok {
					printWarning("hyper-vertex %q is not defined, skipping", name)
					continue
				}
				g.CollapseHyperVertex(id)
			}
			prog.done(fmt.Sprintf("Collapsed to %d vertices, %d edges", g.VertexCount(), g.EdgeCount()))

			return writeGraph(g, output, c.Logger)
		},
	}

	cmd.Flags().StringSliceVarP(&names, "name", "n", nil, "hyper-vertex to collapse (repeatable)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")

	return cmd
}
