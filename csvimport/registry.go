package csvimport

// registry maps input keys to constructed vertices for one import.
// A key is built and added to the graph at most once; later lookups reuse it.
type registry[V, E any] struct {
	graph    Graph[V, E]
	build    VertexBuilder[V]
	vertices map[string]V
}

func newRegistry[V, E any](g Graph[V, E], build VertexBuilder[V]) *registry[V, E] {
	return &registry[V, E]{graph: g, build: build, vertices: make(map[string]V)}
}

// resolve returns the vertex for key, building it from key on first use.
func (r *registry[V, E]) resolve(key string) (V, error) {
	return r.resolveNamed(key, key)
}

// resolveNamed returns the vertex stored under key. On first use the vertex is
// built from name instead of key; the matrix node-id header uses this to bind
// positional keys ("1","2",…) to named vertices.
func (r *registry[V, E]) resolveNamed(key, name string) (V, error) {
	if v, ok := r.vertices[key]; ok {
		return v, nil
	}
	v, err := r.build(name, make(map[string]string))
	if err != nil {
		var zero V
		return zero, graphViolation(err)
	}
	if err = r.graph.AddVertex(v); err != nil {
		var zero V
		return zero, graphViolation(err)
	}
	r.vertices[key] = v

	return v, nil
}

// lookup returns the vertex already stored under key without building one.
func (r *registry[V, E]) lookup(key string) (V, bool) {
	v, ok := r.vertices[key]
	return v, ok
}

// size is the number of registered keys.
func (r *registry[V, E]) size() int { return len(r.vertices) }
