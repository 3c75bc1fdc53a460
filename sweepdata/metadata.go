// Package sweepdata reads the plain-text sweep dumps produced by the
// simulation flows: an optional leading block of "# key = value"
// comment lines, followed by a whitespace- or comma-delimited numeric
// table that may embed a single textual column-name header.
package sweepdata

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/carbocation/pfx"
)

// Metadata holds the key/value pairs from a file's leading comment
// block. Keys are case-sensitive. The parser never applies defaults;
// missing keys are resolved by the caller via GetString/GetFloat.
type Metadata map[string]string

// GetString returns the value for key, or fallback if the key is
// absent.
func (m Metadata) GetString(key, fallback string) string {
	if v, ok := m[key]; ok {
		return v
	}
	return fallback
}

// GetFloat returns the value for key parsed as a float64. Absent or
// unparseable values yield fallback.
func (m Metadata) GetFloat(key string, fallback float64) float64 {
	v, ok := m[key]
	if !ok {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fallback
	}
	return f
}

// ParseMetadata scans lines from the start of r. A line of the form
// "# key = value" contributes an entry (the first '=' splits key from
// value, both trimmed). Comment lines without '=' are ignored.
// Scanning stops at the first non-comment line, so a metadata block
// anywhere past the table body is never picked up.
func ParseMetadata(r io.Reader) (Metadata, error) {
	out := make(Metadata)

	lines := bufio.NewScanner(r)
	for lines.Scan() {
		line := strings.TrimSpace(lines.Text())
		if !strings.HasPrefix(line, "#") {
			break
		}

		body := strings.TrimSpace(strings.TrimPrefix(line, "#"))
		key, value, found := strings.Cut(body, "=")
		if !found {
			continue
		}

		out[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}

	if err := lines.Err(); err != nil {
		return nil, pfx.Err(err)
	}

	return out, nil
}
