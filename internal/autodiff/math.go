package autodiff

import "github.com/born-ml/scalargrad/internal/autodiff/ops"

// Add returns a + b.
func (e *Engine) Add(a, b Node) Node { return e.ApplyBinary(ops.AddOp{}, a, b) }

// Sub returns a - b.
func (e *Engine) Sub(a, b Node) Node { return e.ApplyBinary(ops.SubOp{}, a, b) }

// Mul returns a * b.
func (e *Engine) Mul(a, b Node) Node { return e.ApplyBinary(ops.MulOp{}, a, b) }

// Div returns a / b.
func (e *Engine) Div(a, b Node) Node { return e.ApplyBinary(ops.DivOp{}, a, b) }

// Pow returns a^b.
func (e *Engine) Pow(a, b Node) Node { return e.ApplyBinary(ops.PowOp{}, a, b) }

// Neg returns -x.
func (e *Engine) Neg(x Node) Node { return e.Apply(ops.NegOp{}, x) }

// Sin returns sin(x).
func (e *Engine) Sin(x Node) Node { return e.Apply(ops.SinOp{}, x) }

// Cos returns cos(x).
func (e *Engine) Cos(x Node) Node { return e.Apply(ops.CosOp{}, x) }

// Tan returns tan(x).
func (e *Engine) Tan(x Node) Node { return e.Apply(ops.TanOp{}, x) }

// Exp returns exp(x).
func (e *Engine) Exp(x Node) Node { return e.Apply(ops.ExpOp{}, x) }

// Log returns the natural logarithm of x. Non-positive x yields -Inf or NaN.
func (e *Engine) Log(x Node) Node { return e.Apply(ops.LogOp{}, x) }

// Sqrt returns the square root of x. Negative x yields NaN.
func (e *Engine) Sqrt(x Node) Node { return e.Apply(ops.SqrtOp{}, x) }

// Tanh returns tanh(x).
func (e *Engine) Tanh(x Node) Node { return e.Apply(ops.TanhOp{}, x) }

// Sigmoid returns 1 / (1 + exp(-x)).
func (e *Engine) Sigmoid(x Node) Node { return e.Apply(ops.SigmoidOp{}, x) }

// ReLU returns max(0, x).
func (e *Engine) ReLU(x Node) Node { return e.Apply(ops.ReLUOp{}, x) }
