package ops

import "math"

// TanhOp represents the hyperbolic tangent: y = tanh(x).
//
// Local derivative:
//   - d(tanh(x))/dx = 1 - tanh²(x)
type TanhOp struct{}

// Name returns "tanh".
func (TanhOp) Name() string { return "tanh" }

// Forward computes tanh(x).
func (TanhOp) Forward(x float64) float64 { return math.Tanh(x) }

// Derivative returns 1 - tanh²(x).
func (TanhOp) Derivative(x float64) float64 {
	t := math.Tanh(x)
	return 1 - t*t
}
