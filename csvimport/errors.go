// SPDX-License-Identifier: MIT
// Package: csvgraph/csvimport
//
// errors.go: sentinel errors and the single surfaced import error.
//
// Error policy:
//   • Configuration problems are plain sentinels returned by New / ParseX.
//   • Every failure during Read surfaces as *ImportError. Its Kind is one of
//     ErrIO, ErrSyntax, ErrSemantic, ErrGraphConstraint; its Err is the cause.
//   • Callers branch with errors.Is(err, ErrX) or errors.As(err, &*ImportError).
//   • The first failure aborts the import; the graph keeps what was added so far.

package csvimport

import (
	"errors"
	"fmt"
)

// Configuration errors.
var (
	// ErrNilVertexBuilder indicates New was called without a vertex builder.
	ErrNilVertexBuilder = errors.New("csvimport: vertex builder cannot be nil")

	// ErrNilEdgeBuilder indicates New was called without an edge builder.
	ErrNilEdgeBuilder = errors.New("csvimport: edge builder cannot be nil")

	// ErrNilGraph indicates Read was called with a nil target graph.
	ErrNilGraph = errors.New("csvimport: graph cannot be nil")

	// ErrUnknownFormat indicates ParseFormat received an unrecognized name.
	ErrUnknownFormat = errors.New("csvimport: unknown format")

	// ErrUnknownParameter indicates ParseParameter received an unrecognized name.
	ErrUnknownParameter = errors.New("csvimport: unknown parameter")
)

// Import failure classes, carried as ImportError.Kind.
var (
	// ErrIO reports a read failure of the underlying stream.
	ErrIO = errors.New("csvimport: i/o failure")

	// ErrSyntax reports malformed delimited text (bad quoting).
	ErrSyntax = errors.New("csvimport: syntax error")

	// ErrSemantic reports well-formed text that violates a format rule:
	// empty keys, row width mismatch, bad header, weights where none are expected.
	ErrSemantic = errors.New("csvimport: semantic error")

	// ErrGraphConstraint reports that the target graph or a builder rejected
	// a vertex or edge (duplicate vertex, self-loop, parallel edge, bad weight).
	ErrGraphConstraint = errors.New("csvimport: graph constraint violation")
)

// ImportError is the only error type Read returns for failures that happen
// while consuming input.
type ImportError struct {
	// Kind is one of ErrIO, ErrSyntax, ErrSemantic, ErrGraphConstraint.
	Kind error
	// Line is the 1-based input line of the failing record, 0 if unknown.
	Line int
	// Column is the 1-based column for syntax errors, 0 otherwise.
	Column int
	// Msg is the human-readable description without position.
	Msg string
	// Err is the underlying cause, if any.
	Err error
}

// Error formats as "csvimport: failed to import CSV graph: line L:C msg".
func (e *ImportError) Error() string {
	switch {
	case e.Line > 0 && e.Column > 0:
		return fmt.Sprintf("csvimport: failed to import CSV graph: line %d:%d %s", e.Line, e.Column, e.Msg)
	case e.Line > 0:
		return fmt.Sprintf("csvimport: failed to import CSV graph: line %d %s", e.Line, e.Msg)
	default:
		return "csvimport: failed to import CSV graph: " + e.Msg
	}
}

// Unwrap exposes both the kind sentinel and the cause to errors.Is / errors.As.
func (e *ImportError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}

	return []error{e.Kind, e.Err}
}

// rowError is the internal result of row processing. It carries no position;
// Read attaches the line when translating it into an ImportError.
type rowError struct {
	kind  error
	msg   string
	cause error
}

func (e *rowError) Error() string { return e.msg }

// semanticErrorf reports a format rule violation.
func semanticErrorf(format string, args ...interface{}) error {
	return &rowError{kind: ErrSemantic, msg: fmt.Sprintf(format, args...)}
}

// graphViolation wraps a rejection coming from the graph or a builder.
func graphViolation(cause error) error {
	return &rowError{
		kind:  ErrGraphConstraint,
		msg:   "provided graph does not support input: " + cause.Error(),
		cause: cause,
	}
}

// translate converts any failure raised while importing into *ImportError.
// line is the record line for row errors, ignored for tokenizer errors that
// carry their own position.
func translate(err error, line int) *ImportError {
	var ie *ImportError
	if errors.As(err, &ie) {
		return ie
	}
	var re *rowError
	if errors.As(err, &re) {
		return &ImportError{Kind: re.kind, Line: line, Msg: re.msg, Err: re.cause}
	}

	return &ImportError{Kind: ErrIO, Line: line, Msg: err.Error(), Err: err}
}
