// Package csvimport reads delimited text (CSV with a configurable delimiter,
// ';' by default) into a caller-owned graph.
//
// Formats:
//
//	EdgeList / AdjacencyList: each row is "source;target1;target2;...".
//	    a;b
//	    c;d;e          → edges a→b, c→d, c→e
//
//	Matrix: first row is a header, then one row of cells per source vertex.
//	    Without MatrixFormatNodeID the header fixes the vertex count and is
//	    itself the first data row; vertices are named "1".."n".
//	    With MatrixFormatNodeID the header is ";n1;n2" (corner cell ignored)
//	    and every data row starts with an ignored label cell.
//
// Matrix cell policy (MatrixFormatEdgeWeights = W, MatrixFormatZeroWhenNoEdge = Z):
//
//	integer 0    → edge of weight 0 iff W && !Z, else no edge
//	integer ≠ 0  → edge; weight = value iff W
//	float        → weighted edge iff W, else ErrSemantic
//	other text   → ignored
//
// Targets:
//
//	Any Graph[V,E] works; weights are applied only when the graph implements
//	WeightedGraph and reports Weighted(). ReadCore / NewCoreTarget plug in
//	*core.Graph directly.
//
// Observability:
//
//	WithLogger routes progress to a *zap.Logger; each Read tags its entries
//	with an import_id. WithMetrics(NewMetrics(reg)) counts imports, rows and
//	edges per format on a Prometheus registry.
//
// Errors:
//
//	Every failure during Read is an *ImportError whose Kind is ErrIO,
//	ErrSyntax, ErrSemantic or ErrGraphConstraint. The first failure stops the
//	import; the graph is left as populated up to that point.
//
// Example:
//
//	g := core.NewGraph(core.WithDirected(true), core.WithWeighted(), core.WithLoops())
//	err := csvimport.ReadCore(g, strings.NewReader(";a;b\na;0;5\nb;1;0\n"),
//		csvimport.WithFormat(csvimport.Matrix),
//		csvimport.WithParameters(csvimport.MatrixFormatNodeID, csvimport.MatrixFormatEdgeWeights))
package csvimport
