package csvimport_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/csvgraph/core"
	"github.com/katalvlaran/csvgraph/csvimport"
)

func matrixOpts(ps ...csvimport.Parameter) []csvimport.Option {
	return []csvimport.Option{
		csvimport.WithFormat(csvimport.Matrix),
		csvimport.WithParameters(ps...),
	}
}

func TestMatrix_UnweightedHeaderIsFirstRow(t *testing.T) {
	g := directedGraph(core.WithWeighted())
	require.NoError(t, csvimport.ReadCore(g, input("0;1", "1;0"), matrixOpts()...))

	require.Equal(t, []string{"1", "2"}, g.Vertices())
	require.ElementsMatch(t, []string{"1->2", "2->1"}, edgeSet(g))
	require.Zero(t, g.Stats().WeightedEdgeCount, "no weights without EDGE_WEIGHTS")
}

func TestMatrix_UnweightedNonZeroIsPresence(t *testing.T) {
	im, _ := newRecImporter(t, matrixOpts()...)
	g := &weightedRecGraph{recGraph: newRecGraph(), weighted: true}
	require.NoError(t, im.Read(g, input("0;7", "-3;0")))

	require.Equal(t, []string{"e_1_2", "e_2_1"}, g.edgeLabels())
	require.Zero(t, g.setCalls)
}

func TestMatrix_NodeIDsWithWeights(t *testing.T) {
	g := directedGraph(core.WithWeighted(), core.WithLoops())
	err := csvimport.ReadCore(g, input("x;n1;n2", "n1;0;5"),
		matrixOpts(csvimport.MatrixFormatNodeID, csvimport.MatrixFormatEdgeWeights)...)
	require.NoError(t, err)

	require.Equal(t, []string{"n1", "n2"}, g.Vertices())
	require.Equal(t, 2, g.EdgeCount())
	require.Equal(t, 0.0, weightOf(t, g, "n1", "n1"))
	require.Equal(t, 5.0, weightOf(t, g, "n1", "n2"))
	require.Equal(t, "e_n1_n2", g.EdgesBetween("n1", "n2")[0].Label)
}

func TestMatrix_ZeroWhenNoEdge(t *testing.T) {
	g := directedGraph(core.WithWeighted(), core.WithLoops())
	err := csvimport.ReadCore(g, input(";a;b", "a;0;2", "b;3;0"),
		matrixOpts(csvimport.MatrixFormatNodeID, csvimport.MatrixFormatEdgeWeights, csvimport.MatrixFormatZeroWhenNoEdge)...)
	require.NoError(t, err)

	require.ElementsMatch(t, []string{"a->b", "b->a"}, edgeSet(g))
	require.Equal(t, 2.0, weightOf(t, g, "a", "b"))
	require.Equal(t, 3.0, weightOf(t, g, "b", "a"))
}

func TestMatrix_FloatCells(t *testing.T) {
	g := directedGraph(core.WithWeighted(), core.WithLoops())
	err := csvimport.ReadCore(g, input("0;1.5", "2.25;0"), matrixOpts(csvimport.MatrixFormatEdgeWeights)...)
	require.NoError(t, err)
	require.Equal(t, 1.5, weightOf(t, g, "1", "2"))
	require.Equal(t, 2.25, weightOf(t, g, "2", "1"))

	g = directedGraph(core.WithWeighted())
	err = csvimport.ReadCore(g, input("0;1.5", "1;0"), matrixOpts()...)
	ie := requireImportError(t, err, csvimport.ErrSemantic)
	require.Equal(t, "double entry found when expecting no weights", ie.Msg)
	require.Equal(t, 1, ie.Line)
}

func TestMatrix_NonNumericCellsIgnored(t *testing.T) {
	g := directedGraph()
	require.NoError(t, csvimport.ReadCore(g, input("0;x", "1;"), matrixOpts()...))
	require.Equal(t, []string{"2->1"}, edgeSet(g))
}

func TestMatrix_RowWidthMismatchCreatesNoEdges(t *testing.T) {
	cases := map[string][]string{
		"short": {"0;1", "1"},
		"long":  {"0;1", "1;0;1"},
	}
	for name, lines := range cases {
		t.Run(name, func(t *testing.T) {
			g := directedGraph()
			err := csvimport.ReadCore(g, input(lines...), matrixOpts()...)
			ie := requireImportError(t, err, csvimport.ErrSemantic)
			require.Equal(t, "row contains fewer than 2 entries", ie.Msg)
			require.Equal(t, 2, ie.Line)
			require.Equal(t, []string{"1->2"}, edgeSet(g), "only the header row's edge exists")
		})
	}
}

func TestMatrix_NodeIDRowWidthMismatch(t *testing.T) {
	g := directedGraph()
	err := csvimport.ReadCore(g, input(";a;b", "a;1"), matrixOpts(csvimport.MatrixFormatNodeID)...)
	requireImportError(t, err, csvimport.ErrSemantic)
	require.Zero(t, g.EdgeCount())
}

func TestMatrix_MoreRowsThanVertices(t *testing.T) {
	g := directedGraph()
	err := csvimport.ReadCore(g, input("0;1", "1;0", "1;1"), matrixOpts()...)
	ie := requireImportError(t, err, csvimport.ErrSemantic)
	require.Equal(t, "row 3 exceeds vertex count 2", ie.Msg)
	require.Equal(t, 2, g.EdgeCount())
}

func TestMatrix_HeaderWithoutNames(t *testing.T) {
	g := directedGraph()
	err := csvimport.ReadCore(g, input("corner"), matrixOpts(csvimport.MatrixFormatNodeID)...)
	ie := requireImportError(t, err, csvimport.ErrSemantic)
	require.Equal(t, "failed to parse header with nodes", ie.Msg)
	require.Zero(t, g.VertexCount())
}

func TestMatrix_SelfLoopRejectedByGraph(t *testing.T) {
	g := directedGraph()
	err := csvimport.ReadCore(g, input("1;0", "0;0"), matrixOpts()...)
	requireImportError(t, err, csvimport.ErrGraphConstraint)
	require.ErrorIs(t, err, core.ErrLoopNotAllowed)
	require.Equal(t, []string{"1", "2"}, g.Vertices(), "header vertices exist before the failing cell")
}

func TestMatrix_WeightsDroppedOnUnweightedTargets(t *testing.T) {
	opts := matrixOpts(csvimport.MatrixFormatEdgeWeights, csvimport.MatrixFormatZeroWhenNoEdge)

	g := directedGraph()
	require.NoError(t, csvimport.ReadCore(g, input("0;4", "2;0"), opts...))
	require.Equal(t, 0.0, weightOf(t, g, "1", "2"))

	im, _ := newRecImporter(t, opts...)
	wg := &weightedRecGraph{recGraph: newRecGraph(), weighted: false}
	require.NoError(t, im.Read(wg, input("0;4", "2;0")))
	require.Len(t, wg.edges, 2)
	require.Zero(t, wg.setCalls, "Weighted()==false disables SetEdgeWeight")

	plain := newRecGraph()
	require.NoError(t, im.Read(plain, input("0;4", "2;0")))
	require.Len(t, plain.edges, 2)
	require.Empty(t, plain.weights)
}

func TestMatrix_WeightsAppliedOnWeightedTarget(t *testing.T) {
	im, _ := newRecImporter(t, matrixOpts(csvimport.MatrixFormatEdgeWeights)...)
	g := &weightedRecGraph{recGraph: newRecGraph(), weighted: true}
	require.NoError(t, im.Read(g, input("0;4", "2.5;0")))

	require.Equal(t, 4, g.setCalls, "zero cells are weight-0 edges")
	require.Equal(t, 4.0, g.weights[g.edges[1]])
	require.Equal(t, 2.5, g.weights[g.edges[2]])
}

func TestMatrix_NodeIDBindsPositionsToNames(t *testing.T) {
	im, counts := newRecImporter(t, matrixOpts(csvimport.MatrixFormatNodeID)...)
	g := newRecGraph()
	require.NoError(t, im.Read(g, input("id;p;q;r", "p;0;1;0", "q;0;0;1", "r;1;0;0")))

	require.Equal(t, []string{"p", "q", "r"}, g.keys())
	require.Equal(t, map[string]int{"p": 1, "q": 1, "r": 1}, counts)
	require.Equal(t, []string{"e_p_q", "e_q_r", "e_r_p"}, g.edgeLabels())
}
