package ops

// MulOp represents multiplication: output = a * b.
//
// Local derivatives:
//   - d(a*b)/da = b
//   - d(a*b)/db = a
type MulOp struct{}

// Name returns "mul".
func (MulOp) Name() string { return "mul" }

// Forward computes a * b.
func (MulOp) Forward(a, b float64) float64 { return a * b }

// Partials returns (b, a).
func (MulOp) Partials(a, b float64) (da, db float64) { return b, a }
