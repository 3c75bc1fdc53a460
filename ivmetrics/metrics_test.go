package ivmetrics

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"testing"
)

func TestOutputsAgree(t *testing.T) {
	m := New("results/iv/sweep.csv", 0.6, 0.0, 0.05, 1e-5, 1e5, 1e-6, 0.0)

	var jsonBuf, textBuf bytes.Buffer
	if err := m.WriteJSON(&jsonBuf); err != nil {
		t.Fatal(err)
	}
	if err := m.WriteText(&textBuf, "Sweep I-V Metrics"); err != nil {
		t.Fatal(err)
	}

	var structured map[string]interface{}
	if err := json.Unmarshal(jsonBuf.Bytes(), &structured); err != nil {
		t.Fatalf("structured output is not valid JSON: %v\n%s", err, jsonBuf.String())
	}

	text := parseTextForm(t, textBuf.String())

	for _, f := range m.Fields() {
		tv, ok := text[f.Key]
		if !ok {
			t.Errorf("text form is missing %q", f.Key)
			continue
		}
		jv, ok := structured[f.Key]
		if !ok {
			t.Errorf("structured form is missing %q", f.Key)
			continue
		}

		switch want := f.Value.(type) {
		case string:
			if jv != want || tv != want {
				t.Errorf("%s: json %v, text %v, want %v", f.Key, jv, tv, want)
			}
		case float64:
			jf, ok := jv.(float64)
			if !ok {
				t.Errorf("%s: structured value %v is not numeric", f.Key, jv)
				continue
			}
			tf, err := strconv.ParseFloat(tv, 64)
			if err != nil {
				t.Errorf("%s: text value %q does not parse: %v", f.Key, tv, err)
				continue
			}
			if jf != want || tf != want {
				t.Errorf("%s: json %v, text %v, want %v", f.Key, jf, tf, want)
			}
		}
	}
}

func parseTextForm(t *testing.T, s string) map[string]string {
	t.Helper()

	lines := strings.Split(s, "\n")
	if len(lines) < 3 || !strings.HasPrefix(lines[1], "=") {
		t.Fatalf("text form lacks the title banner:\n%s", s)
	}

	out := make(map[string]string)
	for _, line := range lines[2:] {
		key, value, found := strings.Cut(line, ": ")
		if !found {
			continue
		}
		out[key] = value
	}
	return out
}

func TestFieldOrder(t *testing.T) {
	m := New("f.csv", 0.6, 0.0, 0.05, 1e-5, 1e5, 1e-6, 0.0)

	var buf bytes.Buffer
	if err := m.WriteJSON(&buf); err != nil {
		t.Fatal(err)
	}

	// Keys appear in metric order in the serialized document.
	out := buf.String()
	last := -1
	for _, f := range m.Fields() {
		at := strings.Index(out, strconv.Quote(f.Key))
		if at < 0 {
			t.Fatalf("key %q not in output", f.Key)
		}
		if at < last {
			t.Errorf("key %q out of order", f.Key)
		}
		last = at
	}
}

func TestInfiniteResistance(t *testing.T) {
	m := New("f.csv", 0.6, 0.0, 0.05, 0.0, math.Inf(1), 0.0, 0.0)

	var jsonBuf, textBuf bytes.Buffer
	if err := m.WriteJSON(&jsonBuf); err != nil {
		t.Fatal(err)
	}
	if err := m.WriteText(&textBuf, "Sweep I-V Metrics"); err != nil {
		t.Fatal(err)
	}

	var structured map[string]interface{}
	if err := json.Unmarshal(jsonBuf.Bytes(), &structured); err != nil {
		t.Fatalf("structured output is not valid JSON with an infinite metric: %v", err)
	}
	if structured["R0_ohm"] != "+Inf" {
		t.Errorf("R0_ohm = %v, want the string +Inf", structured["R0_ohm"])
	}

	tv := parseTextForm(t, textBuf.String())["R0_ohm"]
	if f, err := strconv.ParseFloat(tv, 64); err != nil || !math.IsInf(f, 1) {
		t.Errorf("text R0_ohm = %q, want +Inf", tv)
	}
}
