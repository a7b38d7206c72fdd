package ops

// DivOp represents division: output = a / b.
//
// Local derivatives:
//   - d(a/b)/da = 1/b
//   - d(a/b)/db = -a/b²
//
// b == 0 yields ±Inf or NaN per IEEE-754.
type DivOp struct{}

// Name returns "div".
func (DivOp) Name() string { return "div" }

// Forward computes a / b.
func (DivOp) Forward(a, b float64) float64 { return a / b }

// Partials returns (1/b, -a/b²).
func (DivOp) Partials(a, b float64) (da, db float64) {
	return 1 / b, -a / (b * b)
}
