package ops

import "math"

// SqrtOp represents the square root: y = sqrt(x).
//
// Local derivative:
//   - d(sqrt(x))/dx = 1 / (2 * sqrt(x))
//
// sqrt(x) for x < 0 is NaN and propagates.
type SqrtOp struct{}

// Name returns "sqrt".
func (SqrtOp) Name() string { return "sqrt" }

// Forward computes sqrt(x).
func (SqrtOp) Forward(x float64) float64 { return math.Sqrt(x) }

// Derivative returns 1 / (2 * sqrt(x)).
func (SqrtOp) Derivative(x float64) float64 { return 0.5 / math.Sqrt(x) }
