// Package interactive renders hierarchical abstraction graphs as
// self-contained HTML pages.
//
// The page embeds the graph data as JSON and draws it with vis-network
// (loaded from a CDN), giving a pannable, zoomable scene with draggable
// nodes - the browser-based counterpart to the static Graphviz output of
// package nodelink.
package interactive

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"

	"github.com/MasoudKargar/HAG/pkg/hag"
)

// Options configures the interactive page.
type Options struct {
	// Title is the page and heading title. Defaults to "HAG".
	Title string
	// Physics enables the force-directed layout simulation.
	Physics bool
}

// node is the vis-network node representation.
type node struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Shape string `json:"shape"`
	Color string `json:"color,omitempty"`
	Title string `json:"title,omitempty"` // hover tooltip
}

// edge is the vis-network edge representation.
type edge struct {
	From   string `json:"from"`
	To     string `json:"to"`
	Label  string `json:"label,omitempty"`
	Arrows string `json:"arrows"`
}

// Render produces a standalone HTML page for the graph.
// Hyper-vertices are drawn as boxes with their member list in the hover
// tooltip; ordinary vertices are dots. Constraints are listed below the
// scene since they are annotations, not drawable structure.
func Render(g *hag.Graph, opts Options) ([]byte, error) {
	if opts.Title == "" {
		opts.Title = "HAG"
	}

	hyper := g.HyperVertices()

	nodes := make([]node, 0, g.VertexCount())
	for _, v := range g.Vertices() {
		n := node{ID: string(v), Label: string(v), Shape: "dot"}
		if members, ok := hyper[v]; ok {
			n.Shape = "box"
			n.Color = "#f6d860"
			n.Title = fmt.Sprintf("members: %v", members)
		}
		nodes = append(nodes, n)
	}

	edges := make([]edge, 0, g.EdgeCount())
	for _, e := range g.Edges() {
		edges = append(edges, edge{
			From:   string(e.From),
			To:     string(e.To),
			Label:  e.Label,
			Arrows: "to",
		})
	}

	nodeJSON, err := json.Marshal(nodes)
	if err != nil {
		return nil, fmt.Errorf("encode nodes: %w", err)
	}
	edgeJSON, err := json.Marshal(edges)
	if err != nil {
		return nil, fmt.Errorf("encode edges: %w", err)
	}

	data := pageData{
		Title:       opts.Title,
		Nodes:       template.JS(nodeJSON),
		Edges:       template.JS(edgeJSON),
		Physics:     opts.Physics,
		Constraints: g.Constraints(),
	}

	var buf bytes.Buffer
	if err := page.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("render page: %w", err)
	}
	return buf.Bytes(), nil
}

type pageData struct {
	Title       string
	Nodes       template.JS
	Edges       template.JS
	Physics     bool
	Constraints []string
}

var page = template.Must(template.New("hag").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<script src="https://unpkg.com/vis-network@9.1.9/standalone/umd/vis-network.min.js"></script>
<style>
  body { margin: 0; font-family: sans-serif; }
  h1 { margin: 0.5em 1em; font-size: 1.2em; }
  #scene { width: 100vw; height: 82vh; border-top: 1px solid #ddd; }
  #constraints { margin: 0.5em 1em; color: #555; font-size: 0.9em; }
</style>
</head>
<body>
<h1>{{.Title}}</h1>
<div id="scene"></div>
{{if .Constraints}}<div id="constraints">
<strong>Constraints</strong>
<ul>{{range .Constraints}}<li>{{.}}</li>{{end}}</ul>
</div>{{end}}
<script>
  const nodes = new vis.DataSet({{.Nodes}});
  const edges = new vis.DataSet({{.Edges}});
  const container = document.getElementById("scene");
  const options = {
    physics: { enabled: {{if .Physics}}true{{else}}false{{end}} },
    layout: { improvedLayout: true },
    edges: { font: { align: "middle" }, color: "#848484" },
    nodes: { color: "#97c2fc" }
  };
  new vis.Network(container, { nodes, edges }, options);
</script>
</body>
</html>
`))
