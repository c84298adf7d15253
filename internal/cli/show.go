package cli

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/MasoudKargar/HAG/pkg/hag"
)

// showCommand creates the show command for printing a graph summary.
func (c *CLI) showCommand() *cobra.Command {
	var (
		detailed bool
		raw      bool
	)

	cmd := &cobra.Command{
		Use:   "show [file]",
		Short: "Print a summary of a graph",
		Long: `Print a summary of a graph loaded from a TOML manifest or JSON snapshot.

By default only counts are shown. Use --detailed to list every vertex,
edge, hyper-vertex definition, and constraint, or --raw for the plain
deterministic dump (stable across runs, suitable for diffing).`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := loadGraph(args[0])
			if err != nil {
				return err
			}
			if raw {
				fmt.Println(g)
				return nil
			}
			showGraph(g, args[0], detailed)
			return nil
		},
	}

	cmd.Flags().BoolVar(&detailed, "detailed", false, "list all vertices, edges, hyper-vertices, and constraints")
	cmd.Flags().BoolVar(&raw, "raw", false, "print the plain deterministic dump")

	return cmd
}

// showGraph prints the summary or the full listing of g.
func showGraph(g *hag.Graph, input string, detailed bool) {
	fmt.Println(StyleTitle.Render(input))
	printKeyValue("vertices", fmt.Sprintf("%d", g.VertexCount()))
	printKeyValue("edges", fmt.Sprintf("%d", g.EdgeCount()))
	printKeyValue("hyper", fmt.Sprintf("%d", g.HyperVertexCount()))
	printKeyValue("constraints", fmt.Sprintf("%d", len(g.Constraints())))

	if !detailed {
		return
	}

	printNewline()
	printInfo("Vertices")
	for _, v := range g.Vertices() {
		printDetail("%s", v)
	}

	printInfo("Edges")
	for _, e := range g.Edges() {
		printDetail("%s", e)
	}

	if g.HyperVertexCount() > 0 {
		printInfo("Hyper-Vertices")
		hyper := g.HyperVertices()
		for _, name := range slices.Sorted(maps.Keys(hyper)) {
			ms := make([]string, len(hyper[name]))
			for i, m := range hyper[name] {
				ms[i] = string(m)
			}
			printDetail("%s: [%s]", name, strings.Join(ms, " "))
		}
	}

	if len(g.Constraints()) > 0 {
		printInfo("Constraints")
		for _, con := range g.Constraints() {
			printDetail("%s", con)
		}
	}
}
