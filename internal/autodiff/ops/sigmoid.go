package ops

import "math"

// SigmoidOp represents the logistic function: σ(x) = 1 / (1 + exp(-x)).
type SigmoidOp struct{}

// Name returns "sigmoid".
func (SigmoidOp) Name() string { return "sigmoid" }

// Forward computes σ(x).
func (SigmoidOp) Forward(x float64) float64 { return 1 / (1 + math.Exp(-x)) }

// Derivative returns σ(x) * (1 - σ(x)).
func (op SigmoidOp) Derivative(x float64) float64 {
	s := op.Forward(x)
	return s * (1 - s)
}
