package ops

// AddOp represents addition: output = a + b.
//
// Local derivatives:
//   - d(a+b)/da = 1
//   - d(a+b)/db = 1
type AddOp struct{}

// Name returns "add".
func (AddOp) Name() string { return "add" }

// Forward computes a + b.
func (AddOp) Forward(a, b float64) float64 { return a + b }

// Partials returns (1, 1).
func (AddOp) Partials(_, _ float64) (da, db float64) { return 1, 1 }
