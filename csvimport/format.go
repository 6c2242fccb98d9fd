// SPDX-License-Identifier: MIT
// Package: csvgraph/csvimport
//
// format.go: input layouts (Format) and matrix decoding toggles (Parameter).

package csvimport

import (
	"fmt"
	"strings"
)

// Format selects how rows are interpreted for the whole import.
type Format uint8

const (
	// EdgeList reads each row as "source;target1;target2;...".
	// Behaves exactly like AdjacencyList.
	EdgeList Format = iota

	// AdjacencyList reads each row as "source;target1;target2;...".
	AdjacencyList

	// Matrix reads a header row followed by one row of cells per source vertex.
	Matrix
)

var formatNames = [...]string{
	EdgeList:      "edge_list",
	AdjacencyList: "adjacency_list",
	Matrix:        "matrix",
}

// String returns the canonical snake_case name ("edge_list", "adjacency_list", "matrix").
func (f Format) String() string {
	if int(f) < len(formatNames) {
		return formatNames[f]
	}

	return fmt.Sprintf("Format(%d)", uint8(f))
}

// valid reports whether f is one of the declared formats.
func (f Format) valid() bool { return int(f) < len(formatNames) }

// ParseFormat maps a case-insensitive name to a Format. Dashes are accepted
// in place of underscores ("edge-list").
func ParseFormat(name string) (Format, error) {
	n := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "-", "_")
	for i, s := range formatNames {
		if s == n {
			return Format(i), nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

// Parameter is a boolean toggle that only affects the Matrix format.
type Parameter uint8

const (
	// MatrixFormatNodeID: the header row lists vertex names after a corner cell,
	// and every row starts with a label cell that is ignored.
	MatrixFormatNodeID Parameter = iota

	// MatrixFormatEdgeWeights: numeric cells are edge weights rather than presence flags.
	MatrixFormatEdgeWeights

	// MatrixFormatZeroWhenNoEdge: a cell holding integer 0 means "no edge"
	// rather than "edge of weight 0".
	MatrixFormatZeroWhenNoEdge

	parameterCount
)

var parameterNames = [...]string{
	MatrixFormatNodeID:         "matrix_format_nodeid",
	MatrixFormatEdgeWeights:    "matrix_format_edge_weights",
	MatrixFormatZeroWhenNoEdge: "matrix_format_zero_when_no_edge",
}

// String returns the canonical snake_case name of the parameter.
func (p Parameter) String() string {
	if p < parameterCount {
		return parameterNames[p]
	}

	return fmt.Sprintf("Parameter(%d)", uint8(p))
}

// ParseParameter maps a case-insensitive name to a Parameter. Short forms
// without the "matrix_format_" prefix are accepted ("nodeid", "edge_weights").
func ParseParameter(name string) (Parameter, error) {
	n := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "-", "_")
	for i, s := range parameterNames {
		if s == n || strings.TrimPrefix(s, "matrix_format_") == n {
			return Parameter(i), nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownParameter, name)
}

// Parameters is an immutable set of enabled parameters.
// The zero value has every parameter disabled.
type Parameters struct {
	bits uint8
}

// NewParameters returns a set with exactly the given parameters enabled.
func NewParameters(ps ...Parameter) Parameters {
	var s Parameters
	for _, p := range ps {
		s = s.with(p, true)
	}

	return s
}

// Has reports whether p is enabled.
func (s Parameters) Has(p Parameter) bool {
	return p < parameterCount && s.bits&(1<<p) != 0
}

// List returns the enabled parameters in declaration order.
func (s Parameters) List() []Parameter {
	var out []Parameter
	for p := Parameter(0); p < parameterCount; p++ {
		if s.Has(p) {
			out = append(out, p)
		}
	}

	return out
}

// with returns a copy of s with p switched on or off.
func (s Parameters) with(p Parameter, on bool) Parameters {
	if on {
		s.bits |= 1 << p
	} else {
		s.bits &^= 1 << p
	}

	return s
}
