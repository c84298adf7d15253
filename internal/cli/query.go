package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MasoudKargar/HAG/pkg/hag"
)

// queryCommand creates the query command group.
func (c *CLI) queryCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "query",
		Short: "Query a graph",
	}

	cmd.AddCommand(c.queryNeighborsCommand())
	cmd.AddCommand(c.queryPathCommand())

	return cmd
}

// queryNeighborsCommand creates the "query neighbors" subcommand.
func (c *CLI) queryNeighborsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "neighbors [file] [vertex]",
		Short: "List the direct successors of a vertex",
		Long: `List the direct successors of a vertex.

A successor appears once per edge, so parallel edges with different
labels produce repeated entries.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := loadGraph(args[0])
			if err != nil {
				return err
			}

			v := hag.ID(args[1])
			if !g.HasVertex(v) {
				printWarning("vertex %q is not in the graph", v)
				return nil
			}

			neighbors := g.Neighbors(v)
			if len(neighbors) == 0 {
				printInfo("%s has no successors", v)
				return nil
			}
			printInfo("%s %s", v, StyleDim.Render(fmt.Sprintf("(%d successors)", len(neighbors))))
			for _, n := range neighbors {
				printDetail("%s", n)
			}
			return nil
		},
	}
}

// queryPathCommand creates the "query path" subcommand.
func (c *CLI) queryPathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path [file] [start] [end]",
		Short: "Check whether a directed path exists between two vertices",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := loadGraph(args[0])
			if err != nil {
				return err
			}

			start, end := hag.ID(args[1]), hag.ID(args[2])
			if g.PathExists(start, end) {
				printSuccess("path exists: %s %s %s", start, iconArrow, end)
			} else {
				printError("no path: %s %s %s", start, iconArrow, end)
			}
			return nil
		},
	}
}
