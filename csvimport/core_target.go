package csvimport

import (
	"io"

	"github.com/katalvlaran/csvgraph/core"
)

// CoreTarget adapts *core.Graph to WeightedGraph[string, *core.Edge].
// Vertices are their input keys; edges are created by AddEdge and the
// builder's *core.Edge is filled with the stored edge's ID.
type CoreTarget struct {
	g *core.Graph
}

// NewCoreTarget wraps g.
func NewCoreTarget(g *core.Graph) *CoreTarget { return &CoreTarget{g: g} }

// AddVertex adds id to the graph (idempotent in core).
func (t *CoreTarget) AddVertex(id string) error { return t.g.AddVertex(id) }

// AddEdge stores e in the graph with weight 0 and records the assigned ID in e.ID.
func (t *CoreTarget) AddEdge(source, target string, e *core.Edge) error {
	id, err := t.g.AddEdge(source, target, 0, core.WithLabel(e.Label))
	if err != nil {
		return err
	}
	e.ID = id

	return nil
}

// Weighted reports the graph's weight policy.
func (t *CoreTarget) Weighted() bool { return t.g.Weighted() }

// SetEdgeWeight updates the stored edge and mirrors the value into e.
func (t *CoreTarget) SetEdgeWeight(e *core.Edge, weight float64) error {
	if err := t.g.SetEdgeWeight(e.ID, weight); err != nil {
		return err
	}
	e.Weight = weight

	return nil
}

// CoreVertex is the VertexBuilder for core graphs: the key is the vertex ID.
func CoreVertex(key string, _ map[string]string) (string, error) { return key, nil }

// CoreEdge is the EdgeBuilder for core graphs.
func CoreEdge(source, target string, label string, _ map[string]string) (*core.Edge, error) {
	return &core.Edge{From: source, To: target, Label: label}, nil
}

// NewCore returns an Importer wired to core graphs.
func NewCore(opts ...Option) *Importer[string, *core.Edge] {
	im, _ := New[string, *core.Edge](CoreVertex, CoreEdge, opts...) // builders are non-nil
	return im
}

// ReadCore imports r into g using the core builders.
func ReadCore(g *core.Graph, r io.Reader, opts ...Option) error {
	if g == nil {
		return ErrNilGraph
	}

	return NewCore(opts...).Read(NewCoreTarget(g), r)
}
