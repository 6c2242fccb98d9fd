package csvimport

import (
	"strconv"
	"strings"
)

// matrixPolicy holds the two parameters that drive cell decoding.
type matrixPolicy struct {
	edgeWeights    bool // numeric cells are weights
	zeroWhenNoEdge bool // integer 0 means "no edge"
}

// cellEdge is the decoded meaning of one matrix cell.
type cellEdge struct {
	create    bool
	weight    float64
	hasWeight bool
}

// decodeCell applies the matrix numeric policy to one cell:
//
//	integer 0      → weighted edge of 0 only if weights on and zero-means-no-edge off
//	integer ≠ 0    → edge; weighted with the value if weights on
//	float          → weighted edge if weights on, otherwise a semantic error
//	anything else  → ignored
//
// Integers are 32-bit and untrimmed; the float attempt trims surrounding
// whitespace, so " 1" is a float cell.
func decodeCell(cell string, p matrixPolicy) (cellEdge, error) {
	if n, err := strconv.ParseInt(cell, 10, 32); err == nil {
		if n == 0 {
			if !p.zeroWhenNoEdge && p.edgeWeights {
				return cellEdge{create: true, weight: 0, hasWeight: true}, nil
			}
			return cellEdge{}, nil
		}
		if p.edgeWeights {
			return cellEdge{create: true, weight: float64(n), hasWeight: true}, nil
		}
		return cellEdge{create: true}, nil
	}

	f, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
	if err != nil {
		return cellEdge{}, nil
	}
	if !p.edgeWeights {
		return cellEdge{}, semanticErrorf("double entry found when expecting no weights")
	}

	return cellEdge{create: true, weight: f, hasWeight: true}, nil
}
