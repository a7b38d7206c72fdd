package ops

import "math"

// CosOp represents the cosine operation: y = cos(x).
//
// Local derivative:
//   - d(cos(x))/dx = -sin(x)
type CosOp struct{}

// Name returns "cos".
func (CosOp) Name() string { return "cos" }

// Forward computes cos(x).
func (CosOp) Forward(x float64) float64 { return math.Cos(x) }

// Derivative returns -sin(x).
func (CosOp) Derivative(x float64) float64 { return -math.Sin(x) }
