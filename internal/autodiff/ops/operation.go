// Package ops defines the differentiable primitives of the scalar graph engine.
//
// A primitive knows two things:
//   - Forward: the output value given the input values
//   - its local derivatives with respect to each input, evaluated at those
//     same input values
//
// The engine never special-cases a primitive: it calls Forward to create the
// output node and records one edge per argument whose weight is the matching
// local derivative. New primitives are added by implementing UnaryPrimitive or
// BinaryPrimitive (or wrapping plain functions in UnaryFunc / BinaryFunc) and
// registering them in a Registry.
//
// Builtin primitives:
//   - AddOp: a + b (d/da = 1, d/db = 1)
//   - SubOp: a - b (d/da = 1, d/db = -1)
//   - MulOp: a * b (d/da = b, d/db = a)
//   - DivOp: a / b (d/da = 1/b, d/db = -a/b²)
//   - PowOp: a^b (d/da = b·a^(b-1), d/db = a^b·ln a)
//   - SinOp, CosOp, TanOp, ExpOp, LogOp, SqrtOp, TanhOp, SigmoidOp, ReLUOp, NegOp
//
// Domain errors are not signalled. log(-1), sqrt(-1) and 1/0 produce the
// IEEE-754 NaN or Inf that the math package returns, and those propagate
// through the rest of the graph unchanged.
package ops

// UnaryPrimitive is a differentiable function of one scalar.
type UnaryPrimitive interface {
	// Name is the registry key, e.g. "sin".
	Name() string

	// Forward computes f(x).
	Forward(x float64) float64

	// Derivative computes df/dx at x.
	Derivative(x float64) float64
}

// BinaryPrimitive is a differentiable function of two scalars.
type BinaryPrimitive interface {
	// Name is the registry key, e.g. "mul".
	Name() string

	// Forward computes f(a, b).
	Forward(a, b float64) float64

	// Partials computes df/da and df/db at (a, b).
	//
	// Example for MulOp:
	//   Partials(3, 4) = (4, 3)
	Partials(a, b float64) (da, db float64)
}

// UnaryFunc adapts plain functions to UnaryPrimitive.
//
//	square := ops.UnaryFunc{
//	    Op: "square",
//	    F:  func(x float64) float64 { return x * x },
//	    DF: func(x float64) float64 { return 2 * x },
//	}
type UnaryFunc struct {
	Op string
	F  func(x float64) float64
	DF func(x float64) float64
}

// Name returns the primitive name.
func (u UnaryFunc) Name() string { return u.Op }

// Forward computes F(x).
func (u UnaryFunc) Forward(x float64) float64 { return u.F(x) }

// Derivative computes DF(x).
func (u UnaryFunc) Derivative(x float64) float64 { return u.DF(x) }

// BinaryFunc adapts plain functions to BinaryPrimitive.
type BinaryFunc struct {
	Op  string
	F   func(a, b float64) float64
	DFA func(a, b float64) float64 // d/da
	DFB func(a, b float64) float64 // d/db
}

// Name returns the primitive name.
func (f BinaryFunc) Name() string { return f.Op }

// Forward computes F(a, b).
func (f BinaryFunc) Forward(a, b float64) float64 { return f.F(a, b) }

// Partials computes DFA(a, b) and DFB(a, b).
func (f BinaryFunc) Partials(a, b float64) (da, db float64) {
	return f.DFA(a, b), f.DFB(a, b)
}
