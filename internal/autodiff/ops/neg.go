package ops

// NegOp represents negation: y = -x.
type NegOp struct{}

// Name returns "neg".
func (NegOp) Name() string { return "neg" }

// Forward computes -x.
func (NegOp) Forward(x float64) float64 { return -x }

// Derivative returns -1.
func (NegOp) Derivative(_ float64) float64 { return -1 }
