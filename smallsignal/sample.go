package smallsignal

import (
	"errors"
	"math"

	"github.com/nanolab/sweepkit/sweepdata"
)

// ErrEmptySeries indicates a bias-point lookup over zero samples.
var ErrEmptySeries = errors.New("empty series")

// CurrentAt returns the dependent value at the sample whose voltage
// is closest to target. Ties go to the first occurrence in sweep
// order.
func CurrentAt(s sweepdata.Series, target float64) (float64, error) {
	if s.Len() == 0 {
		return 0, ErrEmptySeries
	}

	best := 0
	bestDist := math.Abs(s.V[0] - target)
	for k := 1; k < s.Len(); k++ {
		if d := math.Abs(s.V[k] - target); d < bestDist {
			best = k
			bestDist = d
		}
	}

	return s.I[best], nil
}
