// Package render provides format conversion helpers shared by the
// visualization backends.
//
// The renderers are strictly collaborators of the core graph: they read
// state through the read-only accessors of [github.com/MasoudKargar/HAG/pkg/hag.Graph]
// and never mutate it. Two backends exist:
//
//   - nodelink: Graphviz node-link diagrams (DOT, SVG, PNG, PDF)
//   - interactive: a self-contained HTML page with a pannable scene
package render
