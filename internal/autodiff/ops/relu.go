package ops

// ReLUOp represents a ReLU (Rectified Linear Unit) activation: output = max(0, x).
//
// Local derivative:
//   - 1 if x > 0, else 0 (the subgradient at 0 is taken as 0)
type ReLUOp struct{}

// Name returns "relu".
func (ReLUOp) Name() string { return "relu" }

// Forward computes max(0, x). NaN input stays NaN.
func (ReLUOp) Forward(x float64) float64 {
	if x < 0 {
		return 0
	}
	return x
}

// Derivative returns 1 for x > 0, otherwise 0.
func (ReLUOp) Derivative(x float64) float64 {
	if x > 0 {
		return 1
	}
	return 0
}
