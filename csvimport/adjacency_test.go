package csvimport_test

import (
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/csvgraph/core"
	"github.com/katalvlaran/csvgraph/csvimport"
)

func TestAdjacency_SourceThenTargets(t *testing.T) {
	for _, f := range []csvimport.Format{csvimport.EdgeList, csvimport.AdjacencyList} {
		t.Run(f.String(), func(t *testing.T) {
			g := directedGraph()
			err := csvimport.ReadCore(g, strings.NewReader("a;b\nc;d;e\n"), csvimport.WithFormat(f))
			require.NoError(t, err)

			require.Equal(t, []string{"a", "b", "c", "d", "e"}, g.Vertices())
			require.ElementsMatch(t, []string{"a->b", "c->d", "c->e"}, edgeSet(g))
			require.Equal(t, "e_c_e", g.EdgesBetween("c", "e")[0].Label)
		})
	}
}

func TestAdjacency_EmptySourceAddsNothingForRow(t *testing.T) {
	g := directedGraph()
	err := csvimport.ReadCore(g, input("a;b", ";c"))

	ie := requireImportError(t, err, csvimport.ErrSemantic)
	require.Equal(t, 2, ie.Line)
	require.Equal(t, "csvimport: failed to import CSV graph: line 2 source vertex cannot be empty", err.Error())
	require.Equal(t, []string{"a", "b"}, g.Vertices(), "c must not be added")
	require.Equal(t, 1, g.EdgeCount())
}

func TestAdjacency_EmptyTarget(t *testing.T) {
	g := directedGraph()
	err := csvimport.ReadCore(g, input("a;;b"))

	ie := requireImportError(t, err, csvimport.ErrSemantic)
	require.Equal(t, "target vertex cannot be empty", ie.Msg)
	require.Equal(t, []string{"a"}, g.Vertices())
	require.Zero(t, g.EdgeCount())
}

func TestAdjacency_SourceOnlyRowAddsVertex(t *testing.T) {
	g := directedGraph()
	require.NoError(t, csvimport.ReadCore(g, input("lonely", "a;b")))
	require.Equal(t, []string{"a", "b", "lonely"}, g.Vertices())
	require.Equal(t, 1, g.EdgeCount())
}

func TestAdjacency_DuplicateTargetsFollowGraphPolicy(t *testing.T) {
	multi := directedGraph(core.WithMultiEdges())
	require.NoError(t, csvimport.ReadCore(multi, input("a;b;b")))
	require.Len(t, multi.EdgesBetween("a", "b"), 2)

	simple := directedGraph()
	err := csvimport.ReadCore(simple, input("a;b;b"))
	requireImportError(t, err, csvimport.ErrGraphConstraint)
	require.ErrorIs(t, err, core.ErrMultiEdgeNotAllowed)
	require.Contains(t, err.Error(), "provided graph does not support input")
	require.Equal(t, 1, simple.EdgeCount(), "first edge stays, no rollback")
}

func TestAdjacency_VertexSetEqualsDistinctFields(t *testing.T) {
	const text = "x;y;z\ny;x\nq\nz;x;q;w\n"
	g := directedGraph(core.WithMultiEdges())
	require.NoError(t, csvimport.ReadCore(g, strings.NewReader(text)))

	seen := map[string]struct{}{}
	for _, line := range strings.Split(strings.TrimSpace(text), "\n") {
		for _, f := range strings.Split(line, ";") {
			seen[f] = struct{}{}
		}
	}
	want := make([]string, 0, len(seen))
	for k := range seen {
		want = append(want, k)
	}
	sort.Strings(want)
	require.Equal(t, want, g.Vertices())
}

func TestAdjacency_RegistryBuildsEachKeyOnce(t *testing.T) {
	im, counts := newRecImporter(t)
	g := newRecGraph()
	require.NoError(t, im.Read(g, input("a;b", "b;a", "a;b;c")))

	require.Equal(t, map[string]int{"a": 1, "b": 1, "c": 1}, counts)
	require.Equal(t, []string{"a", "b", "c"}, g.keys())
	require.Equal(t, []string{"e_a_b", "e_b_a", "e_a_b", "e_a_c"}, g.edgeLabels())
	require.Same(t, g.edges[0].source, g.edges[2].source, "a resolves to the same vertex")
	require.Same(t, g.edges[0].target, g.edges[1].source, "b resolves to the same vertex")
}

func TestAdjacency_QuotedFieldsAndDelimiter(t *testing.T) {
	g := directedGraph()
	err := csvimport.ReadCore(g, strings.NewReader("\"a,1\",b\n\"say \"\"hi\"\"\",b\n"),
		csvimport.WithDelimiter(','))
	require.NoError(t, err)
	require.Equal(t, []string{"a,1", "b", `say "hi"`}, g.Vertices())
}

func TestAdjacency_BlankLinesSkipped(t *testing.T) {
	g := directedGraph()
	require.NoError(t, csvimport.ReadCore(g, strings.NewReader("a;b\n\n\nc;d\n")))
	require.ElementsMatch(t, []string{"a->b", "c->d"}, edgeSet(g))
}

func TestAdjacency_UndirectedMirrorRejectedWithoutMultiEdges(t *testing.T) {
	g := core.NewGraph()
	err := csvimport.ReadCore(g, input("a;b", "b;a"))
	requireImportError(t, err, csvimport.ErrGraphConstraint)
	require.Equal(t, 1, g.EdgeCount())
}
