package ops

// SubOp represents subtraction: output = a - b.
//
// Local derivatives:
//   - d(a-b)/da = 1
//   - d(a-b)/db = -1
type SubOp struct{}

// Name returns "sub".
func (SubOp) Name() string { return "sub" }

// Forward computes a - b.
func (SubOp) Forward(a, b float64) float64 { return a - b }

// Partials returns (1, -1).
func (SubOp) Partials(_, _ float64) (da, db float64) { return 1, -1 }
