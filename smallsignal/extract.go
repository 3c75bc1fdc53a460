// Package smallsignal extracts bias-point figures of merit from a
// swept I-V series: the small-signal conductance and resistance via a
// windowed linear fit, and the current at a requested bias voltage.
package smallsignal

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/nanolab/sweepkit/sweepdata"
)

// ErrInvalidFitWindow indicates a non-positive fit window half-width.
var ErrInvalidFitWindow = errors.New("fit window must be positive")

// Extract estimates the small-signal conductance g0 around 0 V as the
// ordinary-least-squares slope of I vs V over the samples with
// |V| <= window, and r0 as its reciprocal. When fewer than two
// samples fall inside the window (a sweep coarser than the window),
// the fit falls back to the two samples closest to 0 V across the
// whole series, which reduces to the exact two-point slope. A
// conductance of exactly zero reports r0 = +Inf.
func Extract(s sweepdata.Series, window float64) (g0, r0 float64, err error) {
	if window <= 0 {
		return 0, 0, fmt.Errorf("%w (got %g)", ErrInvalidFitWindow, window)
	}

	var vFit, iFit []float64
	for k, v := range s.V {
		if math.Abs(v) <= window {
			vFit = append(vFit, v)
			iFit = append(iFit, s.I[k])
		}
	}

	if len(vFit) < 2 {
		vFit, iFit, err = nearestToZero(s, 2)
		if err != nil {
			return 0, 0, err
		}
	}

	_, g0 = stat.LinearRegression(vFit, iFit, nil, false)

	r0 = math.Inf(1)
	if g0 != 0 {
		r0 = 1.0 / g0
	}

	return g0, r0, nil
}

// nearestToZero returns the n samples with the smallest |V|, ties
// resolved by original sweep order.
func nearestToZero(s sweepdata.Series, n int) (v, i []float64, err error) {
	if s.Len() < n {
		return nil, nil, fmt.Errorf("need at least %d samples for the fallback fit, have %d", n, s.Len())
	}

	idx := make([]int, s.Len())
	for k := range idx {
		idx[k] = k
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return math.Abs(s.V[idx[a]]) < math.Abs(s.V[idx[b]])
	})

	for _, k := range idx[:n] {
		v = append(v, s.V[k])
		i = append(i, s.I[k])
	}

	return v, i, nil
}
