package csvimport

import (
	"encoding/csv"
	"errors"
	"io"
)

// rowReader yields records one at a time from delimited text.
//
// Quoting follows RFC 4180: a field starting with '"' may contain the
// delimiter, newlines and doubled quotes. Blank lines are skipped. The record
// slice is reused between calls, so a row must not be retained after the
// next call to next.
type rowReader struct {
	r    *csv.Reader
	line int
}

func newRowReader(in io.Reader, delimiter rune) *rowReader {
	r := csv.NewReader(in)
	r.Comma = delimiter
	r.FieldsPerRecord = -1 // rows may differ in width; handlers enforce shape
	r.ReuseRecord = true

	return &rowReader{r: r}
}

// next returns the next record, io.EOF at the end of input, or an
// *ImportError of kind ErrSyntax or ErrIO.
func (rr *rowReader) next() ([]string, error) {
	row, err := rr.r.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, io.EOF
		}
		var pe *csv.ParseError
		if errors.As(err, &pe) {
			return nil, &ImportError{Kind: ErrSyntax, Line: pe.Line, Column: pe.Column, Msg: pe.Err.Error(), Err: err}
		}
		return nil, &ImportError{Kind: ErrIO, Line: rr.line, Msg: err.Error(), Err: err}
	}
	rr.line, _ = rr.r.FieldPos(0)

	return row, nil
}

// currentLine is the line on which the last returned record started.
func (rr *rowReader) currentLine() int { return rr.line }
