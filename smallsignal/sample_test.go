package smallsignal

import (
	"errors"
	"testing"

	"github.com/nanolab/sweepkit/sweepdata"
)

func TestCurrentAtOnOff(t *testing.T) {
	s := mustSeries(t,
		[]float64{-0.1, -0.05, 0, 0.05, 0.1},
		[]float64{-1e-6, -0.5e-6, 0, 0.5e-6, 1e-6},
	)

	ion, err := CurrentAt(s, 0.1)
	if err != nil {
		t.Fatal(err)
	}
	if ion != 1e-6 {
		t.Errorf("Ion = %v, want 1e-6", ion)
	}

	ioff, err := CurrentAt(s, 0.0)
	if err != nil {
		t.Fatal(err)
	}
	if ioff != 0 {
		t.Errorf("Ioff = %v, want 0", ioff)
	}
}

func TestCurrentAtNearestSample(t *testing.T) {
	s := mustSeries(t,
		[]float64{0.0, 0.2, 0.4},
		[]float64{1, 2, 3},
	)

	// 0.29 is nearer to 0.2 than to 0.4.
	got, err := CurrentAt(s, 0.29)
	if err != nil {
		t.Fatal(err)
	}
	if got != 2 {
		t.Errorf("CurrentAt(0.29) = %v, want 2", got)
	}
}

func TestCurrentAtTieFirstOccurrence(t *testing.T) {
	// 0.1 and 0.3 are equidistant from the 0.2 target; the earlier
	// sample wins.
	s := mustSeries(t,
		[]float64{0.1, 0.3, 0.1},
		[]float64{11, 22, 33},
	)

	got, err := CurrentAt(s, 0.2)
	if err != nil {
		t.Fatal(err)
	}
	if got != 11 {
		t.Errorf("CurrentAt(0.2) = %v, want 11 (first of the tied samples)", got)
	}
}

func TestCurrentAtEmptySeries(t *testing.T) {
	if _, err := CurrentAt(sweepdata.Series{}, 0); !errors.Is(err, ErrEmptySeries) {
		t.Errorf("err = %v, want ErrEmptySeries", err)
	}
}
