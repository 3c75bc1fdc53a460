// Package derive holds the elementwise transforms applied to loaded
// sweep columns: guarded reciprocals, aligned products, and unit
// scaling. All operations are pure and total over equal-length
// inputs; a shape mismatch is a caller contract violation.
package derive

import "math"

// Config carries the numeric tuning for derived quantities. Guard is
// added to denominators and log arguments so an exactly-zero
// conductance reads as a very large but finite resistance.
type Config struct {
	Guard float64
}

// Default matches the reference outputs bit for bit.
var Default = Config{Guard: 1e-30}

// Reciprocal returns 1/(x[i]+Guard) for every element.
func (c Config) Reciprocal(x []float64) []float64 {
	out := make([]float64, len(x))
	for i, v := range x {
		out[i] = 1.0 / (v + c.Guard)
	}
	return out
}

// AbsLog10 returns log10(|x[i]|+Guard) for every element, the
// quantity plotted on log-magnitude current curves.
func (c Config) AbsLog10(x []float64) []float64 {
	out := make([]float64, len(x))
	for i, v := range x {
		out[i] = math.Log10(math.Abs(v) + c.Guard)
	}
	return out
}

// Product returns the elementwise product of two aligned columns,
// e.g. transconductance times output resistance for intrinsic gain.
func Product(a, b []float64) []float64 {
	if len(a) != len(b) {
		panic("derive: product over columns of unequal length")
	}

	out := make([]float64, len(a))
	for i, v := range a {
		out[i] = v * b[i]
	}
	return out
}

// Scale returns x with every element multiplied by k. Used for unit
// conversions such as V to mV (k = 1e3) or S to 1/kOhm (k = 1e-3).
func Scale(x []float64, k float64) []float64 {
	out := make([]float64, len(x))
	for i, v := range x {
		out[i] = v * k
	}
	return out
}
