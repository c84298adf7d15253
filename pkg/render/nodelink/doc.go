// Package nodelink renders hierarchical abstraction graphs as Graphviz
// node-link diagrams.
//
// [ToDOT] emits DOT source; [RenderSVG], [RenderPNG], and [RenderPDF] turn
// that source into image bytes. Hyper-vertex names are drawn with doubled
// outlines so abstract nodes stand out from ordinary vertices, and edge
// labels are rendered along the edges.
package nodelink
