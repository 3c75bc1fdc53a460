package sweepdata

import (
	"strings"
	"testing"
)

func TestParseMetadata(t *testing.T) {
	in := strings.Join([]string{
		"# device = nfet_01v8",
		"# W_um = 1",
		"# this comment has no equals sign and is skipped",
		"# corner = tt",
		"V,I",
		"# trailing = ignored because scanning stopped",
		"0.0,0.0",
	}, "\n")

	meta, err := ParseMetadata(strings.NewReader(in))
	if err != nil {
		t.Fatal(err)
	}

	if got := meta.GetString("device", "unknown"); got != "nfet_01v8" {
		t.Errorf("device = %q, want nfet_01v8", got)
	}
	if got := meta.GetString("corner", ""); got != "tt" {
		t.Errorf("corner = %q, want tt", got)
	}
	if got := meta.GetFloat("W_um", 0); got != 1 {
		t.Errorf("W_um = %v, want 1", got)
	}

	// The metadata block ends at the first non-comment line.
	if _, ok := meta["trailing"]; ok {
		t.Error("picked up a metadata line past the end of the header block")
	}

	if len(meta) != 3 {
		t.Errorf("got %d entries, want 3: %v", len(meta), meta)
	}
}

func TestParseMetadataDefaults(t *testing.T) {
	meta, err := ParseMetadata(strings.NewReader("0.1 0.2\n"))
	if err != nil {
		t.Fatal(err)
	}

	if len(meta) != 0 {
		t.Errorf("expected empty metadata, got %v", meta)
	}

	// Missing keys resolve to the caller's defaults, never an error.
	if got := meta.GetString("device", "fallback"); got != "fallback" {
		t.Errorf("GetString default = %q", got)
	}
	if got := meta.GetFloat("L_um", 0.15); got != 0.15 {
		t.Errorf("GetFloat default = %v", got)
	}
}

func TestParseMetadataTrimsAndSplitsOnFirstEquals(t *testing.T) {
	meta, err := ParseMetadata(strings.NewReader("#  note =  a = b \n"))
	if err != nil {
		t.Fatal(err)
	}

	if got := meta.GetString("note", ""); got != "a = b" {
		t.Errorf("note = %q, want %q", got, "a = b")
	}
}

func TestParseMetadataUnparseableFloatFallsBack(t *testing.T) {
	meta, err := ParseMetadata(strings.NewReader("# W_um = one\n"))
	if err != nil {
		t.Fatal(err)
	}

	if got := meta.GetFloat("W_um", 2.5); got != 2.5 {
		t.Errorf("GetFloat on unparseable value = %v, want fallback 2.5", got)
	}
}
