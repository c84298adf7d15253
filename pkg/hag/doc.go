// Package hag implements the hierarchical abstraction graph (HAG):
// a directed, labeled, multi-level graph model.
//
// A HAG is built from four collections:
//
//   - Vertices: opaque string identifiers with no payload
//   - Edges: (from, to, label) triples with set semantics - the full triple
//     is the edge identity
//   - Hyper-vertices: named groups of vertices (or other hyper-vertices)
//     usable as single abstract nodes
//   - Constraints: opaque annotation strings, stored in order but never
//     evaluated
//
// The central operation is [Graph.CollapseHyperVertex], which rewrites every
// edge endpoint belonging to a group to the group's own name and removes the
// members from the vertex set. Two graphs can also be combined via
// [Graph.Union], [Graph.Intersection], and [Graph.Subtract], each producing a
// fresh graph without mutating the operands.
//
// # Error Model
//
// All operations are total functions: querying an unknown vertex yields an
// empty result, and collapsing an undefined hyper-vertex is a silent no-op.
// No operation returns an error.
//
// # Concurrency
//
// Graph is not safe for concurrent use. Callers must serialize mutations
// against each other and against readers. The algebra operations are pure
// functions of their inputs and may run concurrently as long as neither
// operand is concurrently mutated.
package hag
