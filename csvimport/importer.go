// SPDX-License-Identifier: MIT
// Package: csvgraph/csvimport
//
// importer.go: Importer construction and the Read orchestration loop.
//
// Flow:
//   rowReader.next → rowHandler.handle → registry / materializer → Graph
//   Any failure is translated into *ImportError and stops the loop.
//
// AI-Hints:
//   • One Importer can serve many Read calls; each Read owns its own vertex
//     registry and row state, so keys never leak between imports.
//   • Read is not safe for concurrent use against the SAME graph.

package csvimport

import (
	"errors"
	"io"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Importer reads delimited text into a caller-owned graph.
type Importer[V, E any] struct {
	cfg         Config
	buildVertex VertexBuilder[V]
	buildEdge   EdgeBuilder[V, E]
}

// New creates an Importer with the given builders and options.
//
// Errors:
//   - ErrNilVertexBuilder, ErrNilEdgeBuilder.
//
// Panics:
//   - Only inside option constructors (see options.go).
func New[V, E any](vb VertexBuilder[V], eb EdgeBuilder[V, E], opts ...Option) (*Importer[V, E], error) {
	if vb == nil {
		return nil, ErrNilVertexBuilder
	}
	if eb == nil {
		return nil, ErrNilEdgeBuilder
	}

	return &Importer[V, E]{cfg: newConfig(opts...), buildVertex: vb, buildEdge: eb}, nil
}

// Format returns the configured input layout.
func (im *Importer[V, E]) Format() Format { return im.cfg.Format }

// Delimiter returns the configured field separator.
func (im *Importer[V, E]) Delimiter() rune { return im.cfg.Delimiter }

// Parameter reports whether a Matrix parameter is enabled.
func (im *Importer[V, E]) Parameter(p Parameter) bool { return im.cfg.Parameters.Has(p) }

// Config returns a copy of the resolved configuration.
func (im *Importer[V, E]) Config() Config { return im.cfg }

// Read imports the whole input into g.
//
// Implementation:
//   - Stage 1: Select the row handler for the configured format.
//   - Stage 2: Pull records in document order; the first is the header.
//   - Stage 3: Hand each record to the handler; stop at the first failure.
//
// Errors:
//   - ErrNilGraph if g is nil.
//   - *ImportError (Kind ErrIO / ErrSyntax / ErrSemantic / ErrGraphConstraint).
//
// Notes:
//   - There is no rollback: after a failure g keeps every vertex and edge
//     added before it.
func (im *Importer[V, E]) Read(g Graph[V, E], r io.Reader) error {
	if g == nil {
		return ErrNilGraph
	}
	start := time.Now()
	log := im.cfg.Logger.With(
		zap.Stringer("format", im.cfg.Format),
		zap.String("import_id", uuid.NewString()))

	reg := newRegistry(g, im.buildVertex)
	mat := newMaterializer(g, im.buildEdge)
	h := newRowHandler(im.cfg, reg, mat)
	rows := newRowReader(r, im.cfg.Delimiter)

	log.Debug("csv import started",
		zap.String("delimiter", string(im.cfg.Delimiter)),
		zap.Stringers("parameters", im.cfg.Parameters.List()),
		zap.Bool("weighted_target", mat.weighted != nil))

	for {
		row, err := rows.next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err == nil {
			log.Debug("csv row", zap.Int("line", rows.currentLine()), zap.Int("fields", len(row)))
			err = h.handle(row)
		}
		if err != nil {
			ie := translate(err, rows.currentLine())
			log.Warn("csv import aborted",
				zap.Int("line", ie.Line),
				zap.Int("vertices", reg.size()),
				zap.Int("edges", mat.count),
				zap.Error(ie))
			im.cfg.Metrics.observe(im.cfg.Format, h.rows, mat.count, time.Since(start), ie)
			return ie
		}
	}

	log.Info("csv import finished",
		zap.Int("rows", h.rows),
		zap.Int("vertices", reg.size()),
		zap.Int("edges", mat.count))
	im.cfg.Metrics.observe(im.cfg.Format, h.rows, mat.count, time.Since(start), nil)

	return nil
}
