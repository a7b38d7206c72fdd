package ops

import "math"

// PowOp represents exponentiation: output = a^b.
//
// Local derivatives:
//   - d(a^b)/da = b * a^(b-1)
//   - d(a^b)/db = a^b * ln(a)
//
// For a <= 0 the partial with respect to b involves ln(a) and is NaN or -Inf,
// even when a^b itself is finite (e.g. (-2)^2).
type PowOp struct{}

// Name returns "pow".
func (PowOp) Name() string { return "pow" }

// Forward computes a^b.
func (PowOp) Forward(a, b float64) float64 { return math.Pow(a, b) }

// Partials returns (b·a^(b-1), a^b·ln a).
func (PowOp) Partials(a, b float64) (da, db float64) {
	return b * math.Pow(a, b-1), math.Pow(a, b) * math.Log(a)
}
