package csvimport

import "strconv"

// matrixHandler reads a header row followed by one row of cells per source
// vertex. Vertices are registered under positional keys "1".."vertexCount".
//
// Without MatrixFormatNodeID the header row only fixes vertexCount and is
// then decoded as the first data row. With it, the header lists names after a
// corner cell and the first data row is the row after it; every row's first
// field is a label and is dropped.
type matrixHandler[V, E any] struct {
	reg *registry[V, E]
	mat *materializer[V, E]

	nodeIDs bool
	policy  matrixPolicy

	vertexCount int
	current     int // 1-based source index of the next data row
}

func newMatrixHandler[V, E any](reg *registry[V, E], mat *materializer[V, E], ps Parameters) *matrixHandler[V, E] {
	return &matrixHandler[V, E]{
		reg:     reg,
		mat:     mat,
		nodeIDs: ps.Has(MatrixFormatNodeID),
		policy: matrixPolicy{
			edgeWeights:    ps.Has(MatrixFormatEdgeWeights),
			zeroWhenNoEdge: ps.Has(MatrixFormatZeroWhenNoEdge),
		},
		current: 1,
	}
}

func (h *matrixHandler[V, E]) handleRow(row []string, header bool) error {
	if h.nodeIDs {
		row = row[1:]
	}

	if header {
		if h.nodeIDs {
			return h.createNamedVertices(row)
		}
		if err := h.createVertices(len(row)); err != nil {
			return err
		}
	}
	if err := h.createEdges(row); err != nil {
		return err
	}
	h.current++

	return nil
}

// createNamedVertices binds "1".."n" to the header names in order.
func (h *matrixHandler[V, E]) createNamedVertices(names []string) error {
	if len(names) < 1 {
		return semanticErrorf("failed to parse header with nodes")
	}
	h.vertexCount = len(names)
	for i, name := range names {
		if _, err := h.reg.resolveNamed(strconv.Itoa(i+1), name); err != nil {
			return err
		}
	}

	return nil
}

// createVertices synthesizes vertices "1".."n".
func (h *matrixHandler[V, E]) createVertices(n int) error {
	if n < 1 {
		return semanticErrorf("failed to parse header with nodes")
	}
	h.vertexCount = n
	for i := 1; i <= n; i++ {
		if _, err := h.reg.resolve(strconv.Itoa(i)); err != nil {
			return err
		}
	}

	return nil
}

// createEdges decodes one data row for source h.current. Row shape is checked
// before any edge is created.
func (h *matrixHandler[V, E]) createEdges(row []string) error {
	if len(row) != h.vertexCount {
		return semanticErrorf("row contains fewer than %d entries", h.vertexCount)
	}
	source, ok := h.reg.lookup(strconv.Itoa(h.current))
	if !ok {
		return semanticErrorf("row %d exceeds vertex count %d", h.current, h.vertexCount)
	}

	for j, cell := range row {
		decoded, err := decodeCell(cell, h.policy)
		if err != nil {
			return err
		}
		if !decoded.create {
			continue
		}
		target, _ := h.reg.lookup(strconv.Itoa(j + 1))
		req := newEdgeRequest(source, target)
		if decoded.hasWeight {
			req = req.withWeight(decoded.weight)
		}
		if _, err = h.mat.materialize(req); err != nil {
			return err
		}
	}

	return nil
}
