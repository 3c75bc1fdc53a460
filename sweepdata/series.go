package sweepdata

import "fmt"

// Series pairs a swept voltage with one dependent quantity, index
// aligned, in the order the samples appear in the file. V is not
// required to be monotonic.
type Series struct {
	V []float64
	I []float64
}

// Len reports the number of samples.
func (s Series) Len() int {
	return len(s.V)
}

// NewSeries builds a Series from two aligned slices. The slices must
// have the same length; the 0th voltage corresponds to the 0th
// dependent value, etc.
func NewSeries(v, i []float64) (Series, error) {
	if len(v) != len(i) {
		return Series{}, fmt.Errorf("series slices must have the same length (got %d and %d)", len(v), len(i))
	}

	return Series{V: v, I: i}, nil
}

// Series extracts the vCol and iCol columns of the table as an
// aligned pair.
func (t *Table) Series(vCol, iCol int) (Series, error) {
	for r, row := range t.Rows {
		if vCol >= len(row) || iCol >= len(row) {
			return Series{}, fmt.Errorf("row %d has %d columns, need columns %d and %d", r, len(row), vCol, iCol)
		}
	}

	return NewSeries(t.Column(vCol), t.Column(iCol))
}
