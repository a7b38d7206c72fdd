package ops

import "math"

// TanOp represents the tangent operation: y = tan(x).
//
// Local derivative:
//   - d(tan(x))/dx = 1/cos²(x)
type TanOp struct{}

// Name returns "tan".
func (TanOp) Name() string { return "tan" }

// Forward computes tan(x).
func (TanOp) Forward(x float64) float64 { return math.Tan(x) }

// Derivative returns 1/cos²(x).
func (TanOp) Derivative(x float64) float64 {
	c := math.Cos(x)
	return 1 / (c * c)
}
