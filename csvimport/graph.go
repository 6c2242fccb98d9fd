package csvimport

// Graph is the mutable target of an import. Implementations decide which
// vertices and edges they accept; any returned error aborts the import as
// ErrGraphConstraint.
type Graph[V, E any] interface {
	AddVertex(v V) error
	AddEdge(source, target V, e E) error
}

// WeightedGraph is a Graph that can store edge weights. SetEdgeWeight is only
// called when Weighted reports true.
type WeightedGraph[V, E any] interface {
	Graph[V, E]
	Weighted() bool
	SetEdgeWeight(e E, weight float64) error
}

// VertexBuilder constructs the vertex for an input key. attrs is always a
// fresh, empty map the builder may keep.
type VertexBuilder[V any] func(key string, attrs map[string]string) (V, error)

// EdgeBuilder constructs the edge object for source→target. label has the form
// "e_<source>_<target>"; attrs is a fresh, empty map.
type EdgeBuilder[V, E any] func(source, target V, label string, attrs map[string]string) (E, error)
