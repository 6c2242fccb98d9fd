package csvimport

// handlerKind tags which row interpretation an import uses.
type handlerKind uint8

const (
	kindAdjacency handlerKind = iota
	kindMatrix
)

// kindFor maps a Format to its handler. EdgeList and AdjacencyList share one.
func kindFor(f Format) handlerKind {
	if f == Matrix {
		return kindMatrix
	}

	return kindAdjacency
}

// rowHandler is the per-import state selected once by format. Only the field
// matching kind is set.
type rowHandler[V, E any] struct {
	kind      handlerKind
	adjacency *adjacencyHandler[V, E]
	matrix    *matrixHandler[V, E]
	rows      int
}

func newRowHandler[V, E any](cfg Config, reg *registry[V, E], mat *materializer[V, E]) *rowHandler[V, E] {
	h := &rowHandler[V, E]{kind: kindFor(cfg.Format)}
	switch h.kind {
	case kindMatrix:
		h.matrix = newMatrixHandler(reg, mat, cfg.Parameters)
	default:
		h.adjacency = &adjacencyHandler[V, E]{reg: reg, mat: mat}
	}

	return h
}

// handle processes one complete record. The first record is the header.
// row is only valid for the duration of the call.
func (h *rowHandler[V, E]) handle(row []string) error {
	if len(row) == 0 {
		return semanticErrorf("empty record")
	}
	header := h.rows == 0
	h.rows++

	switch h.kind {
	case kindMatrix:
		return h.matrix.handleRow(row, header)
	default:
		return h.adjacency.handleRow(row)
	}
}
