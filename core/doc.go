// Package core provides a thread-safe in-memory Graph implementation with a
// minimal, composable API surface. It is the default target of the csvimport
// package.
//
// The Graph G = (V,E) supports a mix of behaviors:
//
//   - Directed vs. undirected edges (WithDirected)
//   - Per-edge orientation in “mixed” graphs (WithMixedEdges + WithEdgeDirected)
//   - Weighted vs. unweighted edges (WithWeighted), float64 weights
//   - Parallel edges / multi-graphs (WithMultiEdges)
//   - Self-loops (WithLoops)
//   - Constant-time edge operations via nested maps:
//     adjacencyList[from][to][edgeID] = struct{}{}
//   - Collision-free atomic Edge.ID generation (“e1”, “e2”, …)
//
// Configuration Options (GraphOption):
//
//	– WithDirected(defaultDirected bool)
//	    Directed graphs store only “from→to” pointers.
//	    Undirected graphs mirror edges in adjacencyList[to][from].
//
//	– WithWeighted()
//	    Permits non-zero weights; otherwise AddEdge/SetEdgeWeight(weight≠0) → ErrBadWeight.
//
//	– WithMultiEdges()
//	    Otherwise a second AddEdge(from,to) → ErrMultiEdgeNotAllowed.
//
//	– WithLoops()
//	    Otherwise AddEdge(v,v) → ErrLoopNotAllowed.
//
// EdgeOptions:
//
//	– WithEdgeDirected(directed bool)   per-edge override (mixed mode only)
//	– WithLabel(label string)           free-form label, e.g. "e_a_b" from importers
//
// Core Methods:
//
//	AddVertex(id string) error
//	HasVertex(id string) bool
//	GetVertex(id string) (*Vertex, error)
//	AddEdge(from, to string, weight float64, opts ...EdgeOption) (edgeID string, err error)
//	SetEdgeWeight(edgeID string, weight float64) error
//	HasEdge(from, to string) bool
//	GetEdge(edgeID string) (*Edge, error)
//	EdgesBetween(from, to string) []*Edge
//	Vertices() []string
//	Edges() []*Edge
//	VertexCount(), EdgeCount() int
//	Stats() *GraphStats
package core
