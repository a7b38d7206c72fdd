package ops

import "math"

// SinOp represents the sine operation: y = sin(x).
//
// Local derivative:
//   - d(sin(x))/dx = cos(x)
type SinOp struct{}

// Name returns "sin".
func (SinOp) Name() string { return "sin" }

// Forward computes sin(x).
func (SinOp) Forward(x float64) float64 { return math.Sin(x) }

// Derivative returns cos(x).
func (SinOp) Derivative(x float64) float64 { return math.Cos(x) }
