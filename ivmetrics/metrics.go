// Package ivmetrics assembles the derived figures of merit for one
// analyzed sweep and serializes them. A Metrics value is built once,
// never mutated, and both the structured and the human-readable
// outputs render from the same ordered field list so the two forms
// cannot disagree.
package ivmetrics

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/carbocation/pfx"
)

// Field is one named metric. Value is either a string or a float64.
type Field struct {
	Key   string
	Value interface{}
}

// Metrics is the complete metric set for one run.
type Metrics struct {
	fields []Field
}

// New builds the metric set. Field names and order match the
// reference analysis outputs.
func New(sourceFile string, vOn, vOff, window, g0, r0, ion, ioff float64) Metrics {
	return Metrics{fields: []Field{
		{"csv_file", sourceFile},
		{"v_on_V", vOn},
		{"v_off_V", vOff},
		{"delta_g0_window_V", window},
		{"g0_S", g0},
		{"R0_ohm", r0},
		{"Ion_A", ion},
		{"Ioff_A", ioff},
	}}
}

// Fields returns the ordered metric list.
func (m Metrics) Fields() []Field {
	out := make([]Field, len(m.fields))
	copy(out, m.fields)
	return out
}

// formatFloat renders a float the same way for both output forms.
// Non-finite values have no JSON literal, so they render as words.
func formatFloat(v float64) (s string, finite bool) {
	if math.IsInf(v, 1) {
		return "+Inf", false
	}
	if math.IsInf(v, -1) {
		return "-Inf", false
	}
	if math.IsNaN(v) {
		return "NaN", false
	}
	return strconv.FormatFloat(v, 'g', -1, 64), true
}

// WriteJSON writes the structured form: one pretty-printed object
// with 2-space indentation, keys in metric order, finite numbers as
// numeric literals, and non-finite numbers as quoted words.
func (m Metrics) WriteJSON(w io.Writer) error {
	var buf bytes.Buffer
	buf.WriteString("{\n")

	for k, f := range m.fields {
		key, err := json.Marshal(f.Key)
		if err != nil {
			return pfx.Err(err)
		}

		var val []byte
		switch v := f.Value.(type) {
		case string:
			if val, err = json.Marshal(v); err != nil {
				return pfx.Err(err)
			}
		case float64:
			s, finite := formatFloat(v)
			if finite {
				val = []byte(s)
			} else {
				val = []byte(strconv.Quote(s))
			}
		default:
			return fmt.Errorf("metric %q has unsupported type %T", f.Key, f.Value)
		}

		buf.WriteString("  ")
		buf.Write(key)
		buf.WriteString(": ")
		buf.Write(val)
		if k < len(m.fields)-1 {
			buf.WriteString(",")
		}
		buf.WriteString("\n")
	}

	buf.WriteString("}")

	if _, err := w.Write(buf.Bytes()); err != nil {
		return pfx.Err(err)
	}
	return nil
}

// WriteText writes the human-readable form: a title banner followed
// by one "key: value" line per metric, in metric order.
func (m Metrics) WriteText(w io.Writer, title string) error {
	var buf bytes.Buffer
	buf.WriteString(title + "\n")
	buf.WriteString(strings.Repeat("=", len(title)) + "\n\n")

	for _, f := range m.fields {
		switch v := f.Value.(type) {
		case string:
			fmt.Fprintf(&buf, "%s: %s\n", f.Key, v)
		case float64:
			s, _ := formatFloat(v)
			fmt.Fprintf(&buf, "%s: %s\n", f.Key, s)
		default:
			return fmt.Errorf("metric %q has unsupported type %T", f.Key, f.Value)
		}
	}

	if _, err := w.Write(buf.Bytes()); err != nil {
		return pfx.Err(err)
	}
	return nil
}
