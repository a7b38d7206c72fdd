package autodiff_test

import (
	"fmt"
	"math"

	"github.com/born-ml/scalargrad/autodiff"
)

func Example() {
	e := autodiff.New()
	x := e.Leaf(0.5)
	y := e.Leaf(4.2)
	z := e.Add(e.Mul(x, y), e.Sin(x))

	e.SeedRoot(z)

	fmt.Printf("z     = %.6f\n", z.Value())
	fmt.Printf("dz/dx = %.6f\n", e.Grad(x))
	fmt.Printf("dz/dy = %.6f\n", e.Grad(y))
	// Output:
	// z     = 2.579426
	// dz/dx = 5.077583
	// dz/dy = 0.500000
}

func ExampleNewWithRegistry() {
	r := autodiff.NewRegistry()
	err := r.Register(autodiff.UnaryFunc{
		Op: "softplus",
		F:  func(x float64) float64 { return math.Log1p(math.Exp(x)) },
		DF: func(x float64) float64 { return 1 / (1 + math.Exp(-x)) },
	})
	if err != nil {
		panic(err)
	}

	e := autodiff.NewWithRegistry(r)
	x := e.Leaf(0)
	y, err := e.Call("softplus", x)
	if err != nil {
		panic(err)
	}

	e.SeedRoot(y)
	fmt.Printf("%.4f %.4f\n", y.Value(), e.Grad(x))
	// Output:
	// 0.6931 0.5000
}

func ExamplePass_Gradients() {
	e := autodiff.New()
	x := e.Leaf(3)
	y := e.Mul(x, x)

	grads := e.SeedRoot(y).Gradients()
	fmt.Println(grads[x.ID()], grads[y.ID()])
	// Output:
	// 6 1
}
