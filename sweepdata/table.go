package sweepdata

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/carbocation/pfx"
)

// ErrMalformedHeader indicates that a column was requested by name
// but the file's textual header does not contain it.
var ErrMalformedHeader = errors.New("column not found in header")

// Table is a rectangular numeric table in sweep order, with the
// column names from the file's embedded textual header, if one was
// present. Which column means what is a contract of the producing
// simulator, not of the loader.
type Table struct {
	Header []string
	Rows   [][]float64
}

// LoadTable reads the numeric body of a sweep dump. Blank lines and
// comment lines are skipped. Every other line is split on whitespace
// or commas and parsed as a row of floats; lines that fail to parse
// are dropped silently, which is what tolerates the one textual
// column-name header some flows embed in the body. The first such
// unparseable line seen before any numeric row is kept as the header.
func LoadTable(r io.Reader) (*Table, error) {
	out := &Table{}

	lines := bufio.NewScanner(r)
	for lines.Scan() {
		line := strings.TrimSpace(lines.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		tokens := splitRow(line)
		row, err := parseRow(tokens)
		if err != nil {
			if out.Header == nil && len(out.Rows) == 0 && len(tokens) > 0 {
				out.Header = tokens
			}
			continue
		}

		out.Rows = append(out.Rows, row)
	}

	if err := lines.Err(); err != nil {
		return nil, pfx.Err(err)
	}

	return out, nil
}

func splitRow(line string) []string {
	return strings.FieldsFunc(line, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
}

func parseRow(tokens []string) ([]float64, error) {
	if len(tokens) == 0 {
		return nil, fmt.Errorf("no tokens")
	}

	row := make([]float64, 0, len(tokens))
	for _, tok := range tokens {
		v, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return nil, err
		}
		row = append(row, v)
	}

	return row, nil
}

// ColumnIndex resolves a column name against the captured header.
// Failure reports the available column names so the caller can print
// an actionable diagnostic.
func (t *Table) ColumnIndex(name string) (int, error) {
	for i, col := range t.Header {
		if col == name {
			return i, nil
		}
	}

	return 0, fmt.Errorf("%w: %q (available columns: %v)", ErrMalformedHeader, name, t.Header)
}

// Column returns column i as a slice. Indexing a column the table
// does not have is a caller contract violation and panics, as does
// indexing a ragged row.
func (t *Table) Column(i int) []float64 {
	out := make([]float64, len(t.Rows))
	for r, row := range t.Rows {
		out[r] = row[i]
	}
	return out
}
