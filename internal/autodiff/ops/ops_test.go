package ops_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/born-ml/scalargrad/internal/autodiff/ops"
)

func TestAddOp(t *testing.T) {
	op := ops.AddOp{}

	for _, tc := range []struct{ a, b float64 }{
		{0.1, 0.2}, {-1.5, 4.25}, {1e300, -1e-300}, {-7e-320, 3e-310}, {0, math.Copysign(0, -1)}, {123456.789, -0.000321},
	} {
		a, b := tc.a, tc.b
		assert.Equal(t, a+b, op.Forward(a, b), "add(%g, %g)", a, b)
		da, db := op.Partials(a, b)
		assert.Equal(t, 1.0, da)
		assert.Equal(t, 1.0, db)
	}
}

func TestMulOp_ProductRule(t *testing.T) {
	op := ops.MulOp{}

	for _, tc := range []struct{ a, b float64 }{
		{2, 3}, {-1.5, 4.25}, {0, 7}, {1e300, 1e-300},
	} {
		assert.Equal(t, tc.a*tc.b, op.Forward(tc.a, tc.b))
		da, db := op.Partials(tc.a, tc.b)
		assert.Equal(t, tc.b, da, "d(a*b)/da must be b")
		assert.Equal(t, tc.a, db, "d(a*b)/db must be a")
	}
}

func TestSinOp_ChainRule(t *testing.T) {
	op := ops.SinOp{}

	for _, x := range []float64{-3, -0.5, 0, 0.5, 1.2, 100} {
		assert.Equal(t, math.Sin(x), op.Forward(x))
		assert.Equal(t, math.Cos(x), op.Derivative(x))
	}
}

func TestSubDivOps(t *testing.T) {
	da, db := ops.SubOp{}.Partials(5, 2)
	assert.Equal(t, 1.0, da)
	assert.Equal(t, -1.0, db)

	assert.Equal(t, 2.5, ops.DivOp{}.Forward(5, 2))
	da, db = ops.DivOp{}.Partials(5, 2)
	assert.Equal(t, 0.5, da)
	assert.Equal(t, -1.25, db)
}

func TestReLUOp(t *testing.T) {
	op := ops.ReLUOp{}

	assert.Equal(t, 0.0, op.Forward(-2))
	assert.Equal(t, 3.0, op.Forward(3))
	assert.Equal(t, 0.0, op.Derivative(-2))
	assert.Equal(t, 0.0, op.Derivative(0))
	assert.Equal(t, 1.0, op.Derivative(3))
}

// Restricted domains propagate IEEE-754 specials instead of failing or clamping.
func TestDomainErrorsPropagate(t *testing.T) {
	assert.True(t, math.IsNaN(ops.LogOp{}.Forward(-1)))
	assert.True(t, math.IsInf(ops.LogOp{}.Forward(0), -1))
	assert.True(t, math.IsInf(ops.LogOp{}.Derivative(0), 1))

	assert.True(t, math.IsNaN(ops.SqrtOp{}.Forward(-4)))
	assert.True(t, math.IsNaN(ops.SqrtOp{}.Derivative(-4)))

	assert.True(t, math.IsInf(ops.DivOp{}.Forward(1, 0), 1))
	assert.True(t, math.IsNaN(ops.DivOp{}.Forward(0, 0)))

	assert.Equal(t, 4.0, ops.PowOp{}.Forward(-2, 2))
	_, db := ops.PowOp{}.Partials(-2, 2)
	assert.True(t, math.IsNaN(db))
}

func TestUnaryFunc(t *testing.T) {
	square := ops.UnaryFunc{
		Op: "square",
		F:  func(x float64) float64 { return x * x },
		DF: func(x float64) float64 { return 2 * x },
	}

	assert.Equal(t, "square", square.Name())
	assert.Equal(t, 9.0, square.Forward(3))
	assert.Equal(t, 6.0, square.Derivative(3))
}

func TestBinaryFunc(t *testing.T) {
	hypot := ops.BinaryFunc{
		Op:  "hypot",
		F:   math.Hypot,
		DFA: func(a, b float64) float64 { return a / math.Hypot(a, b) },
		DFB: func(a, b float64) float64 { return b / math.Hypot(a, b) },
	}

	assert.Equal(t, 5.0, hypot.Forward(3, 4))
	da, db := hypot.Partials(3, 4)
	assert.InDelta(t, 0.6, da, 1e-15)
	assert.InDelta(t, 0.8, db, 1e-15)
}
