// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/SetEdgeWeight/HasEdge/GetEdge/Edges/EdgeCount,
//       plus nextEdgeID().
// Determinism:
//   - Edges() returns edges sorted by numeric sequence of Edge.ID ("e2" before "e10").
//   - nextEdgeID() is monotonic and stable ("e" + decimal).
// Concurrency:
//   - Mutations under muEdgeAdj write lock.
//   - Read queries under muEdgeAdj read lock.
// AI-HINT (file):
//   - Unweighted graphs MUST add edges with weight==0 (else ErrBadWeight).
//   - WithEdgeDirected requires WithMixedEdges(); otherwise ErrMixedEdgesNotAllowed.
//   - WithLabel is always allowed and never participates in identity.

package core

import (
	"math"
	"sort"
	"strconv"
	"sync/atomic"
)

// edgeIDPrefix is a private textual prefix for edge identifiers.
// Byte form allows append to a []byte buffer without fmt.
const edgeIDPrefix = 'e'

// AddEdge creates a new edge from→to with the given weight and returns its ID.
//
// Steps:
//  1. Validate IDs, weight, loops.
//  2. Apply opts; a direction override without allowMixed ⇒ ErrMixedEdgesNotAllowed.
//  3. Ensure endpoints via AddVertex.
//  4. Lock muEdgeAdj, check multi-edge constraint.
//  5. Generate eid atomically, store, link adjacency (mirror when undirected).
//
// Errors:
//   - ErrEmptyVertexID, ErrBadWeight, ErrLoopNotAllowed,
//     ErrMultiEdgeNotAllowed, ErrMixedEdgesNotAllowed.
//
// Complexity: O(1) amortized (hash-map + nested-map updates).
func (g *Graph) AddEdge(from, to string, weight float64, opts ...EdgeOption) (string, error) {
	// 1) Input validation
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if err := g.checkWeight(weight); err != nil {
		return "", err
	}
	if from == to && !g.allowLoops {
		return "", ErrLoopNotAllowed
	}

	// 2) Per-edge settings
	spec := edgeSpec{directed: g.directed}
	var opt EdgeOption
	for _, opt = range opts {
		opt(&spec)
	}
	if spec.directedSet && !g.allowMixed {
		return "", ErrMixedEdgesNotAllowed
	}

	// 3) Ensure vertices exist
	if err := g.AddVertex(from); err != nil {
		return "", err
	}
	if err := g.AddVertex(to); err != nil {
		return "", err
	}

	// 4) Insert edge under lock
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if !g.allowMulti {
		if inner := g.adjacencyList[from][to]; len(inner) > 0 {
			return "", ErrMultiEdgeNotAllowed
		}
	}

	// 5) Store and link adjacency
	eid := nextEdgeID(g)
	e := &Edge{ID: eid, From: from, To: to, Label: spec.label, Weight: weight, Directed: spec.directed}
	g.edges[eid] = e
	ensureAdjacency(g, from, to)
	g.adjacencyList[from][to][eid] = struct{}{}

	// Mirror undirected; loops skip the mirror.
	if !e.Directed && from != to {
		ensureAdjacency(g, to, from)
		g.adjacencyList[to][from][eid] = struct{}{}
	}

	return eid, nil
}

// SetEdgeWeight replaces the weight of an existing edge.
//
// Errors:
//   - ErrEdgeNotFound: no edge with that ID.
//   - ErrBadWeight: NaN, or non-zero on an unweighted graph.
//
// Complexity: O(1).
func (g *Graph) SetEdgeWeight(edgeID string, weight float64) error {
	if err := g.checkWeight(weight); err != nil {
		return err
	}
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()
	e, ok := g.edges[edgeID]
	if !ok {
		return ErrEdgeNotFound
	}
	e.Weight = weight

	return nil
}

// HasEdge reports whether at least one edge from→to exists.
// Works for undirected graphs as AddEdge mirrors adjacency automatically.
// Complexity: O(1).
func (g *Graph) HasEdge(from, to string) bool {
	if from == "" || to == "" {
		return false
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.adjacencyList[from][to]) > 0
}

// GetEdge returns the Edge with the given edgeID, or ErrEdgeNotFound.
// The returned *Edge must be treated as read-only by callers.
// Complexity: O(1).
func (g *Graph) GetEdge(edgeID string) (*Edge, error) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	e, ok := g.edges[edgeID]
	if !ok {
		return nil, ErrEdgeNotFound
	}

	return e, nil
}

// EdgesBetween returns every edge stored under from→to (mirrors included),
// in insertion order.
// Complexity: O(k log k) for k parallel edges.
func (g *Graph) EdgesBetween(from, to string) []*Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	bucket := g.adjacencyList[from][to]
	out := make([]*Edge, 0, len(bucket))
	for eid := range bucket {
		out = append(out, g.edges[eid])
	}
	sortEdges(out)

	return out
}

// Edges returns all edges in insertion order.
// Complexity: O(E log E) for sorting; O(E) to assemble the slice.
func (g *Graph) Edges() []*Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	out := make([]*Edge, 0, len(g.edges))
	var e *Edge
	for _, e = range g.edges {
		out = append(out, e)
	}
	sortEdges(out)

	return out
}

// EdgeCount returns total number of edges.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edges)
}

// checkWeight enforces the weight policy. Flags are immutable after
// construction, so no lock is needed.
func (g *Graph) checkWeight(weight float64) error {
	if math.IsNaN(weight) {
		return ErrBadWeight
	}
	if !g.weighted && weight != 0 {
		return ErrBadWeight
	}

	return nil
}

// ensureAdjacency creates the from→to bucket. Caller holds muEdgeAdj.
func ensureAdjacency(g *Graph, from, to string) {
	if g.adjacencyList[from] == nil {
		g.adjacencyList[from] = make(map[string]map[string]struct{})
	}
	if g.adjacencyList[from][to] == nil {
		g.adjacencyList[from][to] = make(map[string]struct{})
	}
}

// sortEdges orders edges by the numeric part of their generated ID.
func sortEdges(edges []*Edge) {
	sort.Slice(edges, func(i, j int) bool { return edgeSeq(edges[i].ID) < edgeSeq(edges[j].ID) })
}

// edgeSeq extracts the sequence number from "e<N>".
func edgeSeq(id string) uint64 {
	n, _ := strconv.ParseUint(id[1:], 10, 64)
	return n
}

// nextEdgeID returns a new unique textual edge ID.
//
// Determinism:
//   - Uses a monotonic uint64 counter (g.nextEdgeID) incremented atomically.
//   - Produces "e" + decimal digits (no locale/time/randomness).
func nextEdgeID(g *Graph) string {
	n := atomic.AddUint64(&g.nextEdgeID, 1)
	buf := make([]byte, 0, 1+20) // "e" + up to 20 digits for uint64
	buf = append(buf, edgeIDPrefix)
	buf = strconv.AppendUint(buf, n, 10)

	return string(buf)
}
