package ops_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/scalargrad/internal/autodiff/ops"
)

func TestNewRegistry_Builtins(t *testing.T) {
	r := ops.NewRegistry()

	assert.Equal(t, []string{
		"add", "cos", "div", "exp", "log", "mul", "neg", "pow",
		"relu", "sigmoid", "sin", "sqrt", "sub", "tan", "tanh",
	}, r.Names())

	sin, ok := r.Unary("sin")
	require.True(t, ok)
	assert.Equal(t, ops.SinOp{}, sin)

	mul, ok := r.Binary("mul")
	require.True(t, ok)
	assert.Equal(t, ops.MulOp{}, mul)

	_, ok = r.Unary("mul")
	assert.False(t, ok, "binary primitive must not resolve as unary")
}

func TestRegistry_Register(t *testing.T) {
	r := ops.NewEmptyRegistry()

	cube := ops.UnaryFunc{
		Op: "cube",
		F:  func(x float64) float64 { return x * x * x },
		DF: func(x float64) float64 { return 3 * x * x },
	}
	require.NoError(t, r.Register(cube))
	require.NoError(t, r.Register(ops.MulOp{}))

	got, ok := r.Unary("cube")
	require.True(t, ok)
	assert.Equal(t, 12.0, got.Derivative(2))
	assert.Equal(t, []string{"cube", "mul"}, r.Names())
}

func TestRegistry_RegisterErrors(t *testing.T) {
	r := ops.NewRegistry()

	tests := []struct {
		name string
		prim any
		want error
	}{
		{"duplicate unary", ops.SinOp{}, ops.ErrDuplicatePrimitive},
		{"duplicate across arities", ops.UnaryFunc{
			Op: "add",
			F:  func(x float64) float64 { return x },
			DF: func(float64) float64 { return 1 },
		}, ops.ErrDuplicatePrimitive},
		{"empty name", ops.UnaryFunc{
			F:  func(x float64) float64 { return x },
			DF: func(float64) float64 { return 1 },
		}, ops.ErrInvalidPrimitive},
		{"nil derivative", ops.UnaryFunc{
			Op: "id",
			F:  func(x float64) float64 { return x },
		}, ops.ErrInvalidPrimitive},
		{"nil partial", ops.BinaryFunc{
			Op:  "first",
			F:   func(a, _ float64) float64 { return a },
			DFA: func(_, _ float64) float64 { return 1 },
		}, ops.ErrInvalidPrimitive},
		{"nil function behind pointer", &ops.UnaryFunc{
			Op: "id",
			DF: func(float64) float64 { return 1 },
		}, ops.ErrInvalidPrimitive},
		{"nil partial behind pointer", &ops.BinaryFunc{
			Op:  "second",
			F:   func(_, b float64) float64 { return b },
			DFB: func(_, _ float64) float64 { return 1 },
		}, ops.ErrInvalidPrimitive},
		{"nil pointer adapter", (*ops.UnaryFunc)(nil), ops.ErrInvalidPrimitive},
		{"not a primitive", 42, ops.ErrInvalidPrimitive},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, r.Register(tt.prim), tt.want)
		})
	}
}

func TestRegistry_RegisterPointerAdapter(t *testing.T) {
	r := ops.NewEmptyRegistry()

	require.NoError(t, r.Register(&ops.UnaryFunc{
		Op: "double",
		F:  func(x float64) float64 { return 2 * x },
		DF: func(float64) float64 { return 2 },
	}))

	got, ok := r.Unary("double")
	require.True(t, ok)
	assert.Equal(t, 6.0, got.Forward(3))
	assert.Equal(t, 2.0, got.Derivative(3))
}
