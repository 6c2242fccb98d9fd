package csvimport

import "fmt"

// edgeRequest is one edge to create, already resolved to vertices.
type edgeRequest[V any] struct {
	source, target V
	label          string
	attrs          map[string]string
	weight         float64
	hasWeight      bool
}

// newEdgeRequest builds an unweighted request labeled "e_<source>_<target>".
func newEdgeRequest[V any](source, target V) edgeRequest[V] {
	return edgeRequest[V]{
		source: source,
		target: target,
		label:  edgeLabel(source, target),
		attrs:  make(map[string]string),
	}
}

// withWeight returns a copy of req that carries w.
func (req edgeRequest[V]) withWeight(w float64) edgeRequest[V] {
	req.weight, req.hasWeight = w, true
	return req
}

// edgeLabel renders vertices with %v, so fmt.Stringer vertices label by name.
func edgeLabel[V any](source, target V) string {
	return fmt.Sprintf("e_%v_%v", source, target)
}

// materializer turns edge requests into graph mutations.
type materializer[V, E any] struct {
	graph    Graph[V, E]
	weighted WeightedGraph[V, E] // nil unless the graph stores weights
	build    EdgeBuilder[V, E]
	count    int
}

func newMaterializer[V, E any](g Graph[V, E], build EdgeBuilder[V, E]) *materializer[V, E] {
	m := &materializer[V, E]{graph: g, build: build}
	if wg, ok := g.(WeightedGraph[V, E]); ok && wg.Weighted() {
		m.weighted = wg
	}

	return m
}

// materialize builds the edge, adds it, and applies the weight when the graph
// is weighted. A weight requested on an unweighted graph is dropped.
func (m *materializer[V, E]) materialize(req edgeRequest[V]) (E, error) {
	e, err := m.build(req.source, req.target, req.label, req.attrs)
	if err != nil {
		var zero E
		return zero, graphViolation(err)
	}
	if err = m.graph.AddEdge(req.source, req.target, e); err != nil {
		var zero E
		return zero, graphViolation(err)
	}
	m.count++
	if req.hasWeight && m.weighted != nil {
		if err = m.weighted.SetEdgeWeight(e, req.weight); err != nil {
			var zero E
			return zero, graphViolation(err)
		}
	}

	return e, nil
}
