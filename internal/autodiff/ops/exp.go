package ops

import "math"

// ExpOp represents the exponential function: y = exp(x).
//
// Local derivative:
//   - d(exp(x))/dx = exp(x)
type ExpOp struct{}

// Name returns "exp".
func (ExpOp) Name() string { return "exp" }

// Forward computes exp(x).
func (ExpOp) Forward(x float64) float64 { return math.Exp(x) }

// Derivative returns exp(x).
func (ExpOp) Derivative(x float64) float64 { return math.Exp(x) }
