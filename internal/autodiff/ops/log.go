package ops

import "math"

// LogOp represents the natural logarithm: y = log(x).
//
// Local derivative:
//   - d(log(x))/dx = 1/x
//
// log(0) is -Inf and log(x) for x < 0 is NaN; both propagate.
type LogOp struct{}

// Name returns "log".
func (LogOp) Name() string { return "log" }

// Forward computes log(x).
func (LogOp) Forward(x float64) float64 { return math.Log(x) }

// Derivative returns 1/x.
func (LogOp) Derivative(x float64) float64 { return 1 / x }
