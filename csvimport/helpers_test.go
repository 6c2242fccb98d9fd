package csvimport_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/csvgraph/core"
	"github.com/katalvlaran/csvgraph/csvimport"
)

// recVertex is a pointer vertex so identity can be checked with require.Same.
type recVertex struct{ key string }

func (v *recVertex) String() string { return v.key }

type recEdge struct {
	source, target *recVertex
	label          string
}

// recGraph records every call made by the importer. It accepts parallel
// edges and loops, and can be told to reject one vertex key.
type recGraph struct {
	vertices     []*recVertex
	edges        []*recEdge
	weights      map[*recEdge]float64
	rejectVertex string
}

func newRecGraph() *recGraph { return &recGraph{weights: make(map[*recEdge]float64)} }

func (g *recGraph) AddVertex(v *recVertex) error {
	if v.key == g.rejectVertex {
		return errRejected
	}
	g.vertices = append(g.vertices, v)
	return nil
}

func (g *recGraph) AddEdge(_, _ *recVertex, e *recEdge) error {
	g.edges = append(g.edges, e)
	return nil
}

func (g *recGraph) keys() []string {
	out := make([]string, len(g.vertices))
	for i, v := range g.vertices {
		out[i] = v.key
	}
	return out
}

func (g *recGraph) edgeLabels() []string {
	out := make([]string, len(g.edges))
	for i, e := range g.edges {
		out[i] = e.label
	}
	return out
}

// weightedRecGraph adds the weight capability with a switchable flag.
type weightedRecGraph struct {
	*recGraph
	weighted bool
	setCalls int
}

func (g *weightedRecGraph) Weighted() bool { return g.weighted }

func (g *weightedRecGraph) SetEdgeWeight(e *recEdge, w float64) error {
	g.setCalls++
	g.weights[e] = w
	return nil
}

var errRejected = errors.New("rejected by test graph")

// countingBuilders returns builders for recGraph plus a per-key build counter.
func countingBuilders() (csvimport.VertexBuilder[*recVertex], csvimport.EdgeBuilder[*recVertex, *recEdge], map[string]int) {
	counts := make(map[string]int)
	vb := func(key string, attrs map[string]string) (*recVertex, error) {
		counts[key]++
		return &recVertex{key: key}, nil
	}
	eb := func(s, t *recVertex, label string, attrs map[string]string) (*recEdge, error) {
		return &recEdge{source: s, target: t, label: label}, nil
	}
	return vb, eb, counts
}

// newRecImporter builds an Importer for recGraph with the given options.
func newRecImporter(t *testing.T, opts ...csvimport.Option) (*csvimport.Importer[*recVertex, *recEdge], map[string]int) {
	t.Helper()
	vb, eb, counts := countingBuilders()
	im, err := csvimport.New(vb, eb, opts...)
	require.NoError(t, err)
	return im, counts
}

// edgeSet renders core edges as "from->to" strings for set comparison.
func edgeSet(g *core.Graph) []string {
	var out []string
	for _, e := range g.Edges() {
		out = append(out, e.From+"->"+e.To)
	}
	return out
}

// weightOf returns the weight of the single edge from→to.
func weightOf(t *testing.T, g *core.Graph, from, to string) float64 {
	t.Helper()
	edges := g.EdgesBetween(from, to)
	require.Len(t, edges, 1, "edges %s->%s", from, to)
	return edges[0].Weight
}

// requireImportError asserts err is an *ImportError of the given kind and returns it.
func requireImportError(t *testing.T, err error, kind error) *csvimport.ImportError {
	t.Helper()
	require.Error(t, err)
	require.ErrorIs(t, err, kind)
	var ie *csvimport.ImportError
	require.ErrorAs(t, err, &ie)
	return ie
}

func directedGraph(opts ...core.GraphOption) *core.Graph {
	return core.NewGraph(append([]core.GraphOption{core.WithDirected(true)}, opts...)...)
}

func input(lines ...string) *strings.Reader {
	return strings.NewReader(strings.Join(lines, "\n") + "\n")
}
