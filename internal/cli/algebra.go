package cli

import (
	"github.com/spf13/cobra"

	"github.com/MasoudKargar/HAG/pkg/hag"
)

// algebraCommands creates the union, intersect, and subtract commands.
// All three load two graphs, combine them, and write a JSON snapshot.
func (c *CLI) algebraCommands() []*cobra.Command {
	union := c.binaryCommand(
		"union [a] [b]",
		"Combine two graphs, keeping everything from both",
		`Combine two graphs, keeping everything from both.

Vertices and edges merge by identity. When both graphs define the same
hyper-vertex name, the second graph's definition wins. Constraints are
deduplicated.`,
		func(a, b *hag.Graph) *hag.Graph { return a.Union(b) },
	)

	intersect := c.binaryCommand(
		"intersect [a] [b]",
		"Keep only what both graphs share",
		`Keep only what both graphs share.

A hyper-vertex survives only when both graphs define it with exactly
the same member set.`,
		func(a, b *hag.Graph) *hag.Graph { return a.Intersection(b) },
	)

	subtract := c.binaryCommand(
		"subtract [a] [b]",
		"Remove the second graph's contents from the first",
		`Remove the second graph's contents from the first.

Edges are matched on the full (from, to, label) triple, so an edge in
the second graph with a different label does not remove the first
graph's edge. A hyper-vertex is removed when the second graph defines
the same name, regardless of its members.`,
		func(a, b *hag.Graph) *hag.Graph { return a.Subtract(b) },
	)

	return []*cobra.Command{union, intersect, subtract}
}

// binaryCommand builds a command that loads two graphs and applies op.
func (c *CLI) binaryCommand(use, short, long string, op func(a, b *hag.Graph) *hag.Graph) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Long:  long,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadGraph(args[0])
			if err != nil {
				return err
			}
			b, err := loadGraph(args[1])
			if err != nil {
				return err
			}

			result := op(a, b)
			c.Logger.Info("combined graphs",
				"vertices", result.VertexCount(),
				"edges", result.EdgeCount(),
				"hyper", result.HyperVertexCount())

			return writeGraph(result, output, c.Logger)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")

	return cmd
}
