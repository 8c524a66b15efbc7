// Package converters adapts core.Graph to other graph representations:
//   - gonum/graph (simple.DirectedGraph), for use with gonum's algorithms;
//   - Graphviz DOT, through gonum's DOT encoder, for inspecting dependency
//     graphs visually.
//
// Vertex identity is preserved: gonum node IDs are the Graph's dense
// indices and DOT node IDs are the vertex labels.
package converters
