package csvimport

// adjacencyHandler reads "source;target1;target2;..." rows. It serves both
// EdgeList and AdjacencyList.
type adjacencyHandler[V, E any] struct {
	reg *registry[V, E]
	mat *materializer[V, E]
}

// handleRow resolves the source, then creates one edge per target in field
// order. Duplicate targets produce duplicate edge requests; the graph decides
// whether it accepts parallel edges.
func (h *adjacencyHandler[V, E]) handleRow(row []string) error {
	if row[0] == "" {
		return semanticErrorf("source vertex cannot be empty")
	}
	source, err := h.reg.resolve(row[0])
	if err != nil {
		return err
	}

	var target V
	for _, key := range row[1:] {
		if key == "" {
			return semanticErrorf("target vertex cannot be empty")
		}
		if target, err = h.reg.resolve(key); err != nil {
			return err
		}
		if _, err = h.mat.materialize(newEdgeRequest(source, target)); err != nil {
			return err
		}
	}

	return nil
}
