// Package csvgraph imports graphs stored as delimited text.
//
// Three layouts are understood:
//
//	edge list       a;b;c     → edges a→b, a→c
//	adjacency list  same row shape as the edge list
//	matrix          header row plus one row of cells per source vertex,
//	                optionally with vertex names and numeric weights
//
// Layout:
//
//	core/          thread-safe in-memory Graph (vertices, labeled edges,
//	               weights, loops, multi-edges) used as the default target
//	csvimport/     the generic Importer[V,E]: options, row handlers,
//	               vertex registry, edge materializer, ImportError, metrics
//	config/        YAML import settings validated with go-playground/validator
//	cmd/csvgraph/  cobra CLI: `csvgraph import <file|->`
//
// Any graph type can be a target by implementing csvimport.Graph (and
// csvimport.WeightedGraph to receive weights); *core.Graph is wired through
// csvimport.ReadCore.
package csvgraph
