// Package autodiff implements reverse-mode automatic differentiation over
// scalar computation graphs.
//
// Architecture:
//   - graph.Graph: arena owning every node's value and child edges
//   - Engine: forward operations; each call creates one node and records one
//     edge per argument carrying the local derivative
//   - Pass: reverse accumulation from one seeded root, memoized per node
//   - ops.Registry: differentiable primitives, extensible by callers
//
// Usage:
//
//	e := autodiff.New()
//	x := e.Leaf(0.5)
//	y := e.Leaf(4.2)
//	z := e.Add(e.Mul(x, y), e.Sin(x))
//
//	e.SeedRoot(z)
//	fmt.Println(e.Grad(x)) // y + cos(x)
//	fmt.Println(e.Grad(y)) // x
//
// The protocol is single-phase: build the whole graph, then differentiate.
// Seeding a root freezes the graph and any further forward operation panics.
package autodiff

import (
	"fmt"

	"github.com/born-ml/scalargrad/internal/autodiff/ops"
	"github.com/born-ml/scalargrad/internal/graph"
)

// Node is a handle to one vertex of an Engine's graph.
// The zero Node belongs to no graph.
type Node struct {
	owner *graph.Graph
	id    graph.NodeID
}

// ID returns the node's index in creation order.
func (n Node) ID() graph.NodeID {
	return n.id
}

// Value returns the forward value computed for the node.
func (n Node) Value() float64 {
	if n.owner == nil {
		panic(fmt.Errorf("autodiff: value of zero node: %w", ErrForeignNode))
	}
	return n.owner.Value(n.id)
}

// Engine builds a computation graph and differentiates it.
//
// An Engine is not safe for concurrent use.
type Engine struct {
	graph    *graph.Graph
	registry *ops.Registry
	tape     *Tape
	pass     *Pass // Current pass, set by SeedRoot
}

// New creates an Engine with the builtin primitives.
func New() *Engine {
	return NewWithRegistry(ops.NewRegistry())
}

// NewWithRegistry creates an Engine whose Call resolves names through r.
func NewWithRegistry(r *ops.Registry) *Engine {
	return &Engine{
		graph:    graph.New(),
		registry: r,
		tape:     NewTape(),
	}
}

// Registry returns the primitive registry used by Call.
func (e *Engine) Registry() *ops.Registry {
	return e.registry
}

// Tape returns the record of applied operations.
func (e *Engine) Tape() *Tape {
	return e.tape
}

// NumNodes returns the number of nodes created so far.
func (e *Engine) NumNodes() int {
	return e.graph.Len()
}

// NumEdges returns the number of edges recorded so far.
func (e *Engine) NumEdges() int {
	return e.graph.NumEdges()
}

// Children returns the edges recorded on n: one per use of n as an argument.
func (e *Engine) Children(n Node) []graph.Edge {
	e.mustOwn(n, "children")
	return e.graph.Children(n.id)
}

// Leaf creates an input node holding value.
func (e *Engine) Leaf(value float64) Node {
	return Node{owner: e.graph, id: e.newNode(value, "leaf")}
}

// Apply applies a unary primitive to x.
func (e *Engine) Apply(p ops.UnaryPrimitive, x Node) Node {
	e.mustOwn(x, p.Name())

	xv := e.graph.Value(x.id)
	out := e.newNode(p.Forward(xv), p.Name())
	e.record(x.id, p.Derivative(xv), out)

	e.tape.Record(Operation{Name: p.Name(), Inputs: []graph.NodeID{x.id}, Output: out})
	return Node{owner: e.graph, id: out}
}

// ApplyBinary applies a binary primitive to a and b.
//
// a and b may be the same node; it then receives two edges, one per
// argument position.
func (e *Engine) ApplyBinary(p ops.BinaryPrimitive, a, b Node) Node {
	e.mustOwn(a, p.Name())
	e.mustOwn(b, p.Name())

	av, bv := e.graph.Value(a.id), e.graph.Value(b.id)
	out := e.newNode(p.Forward(av, bv), p.Name())
	da, db := p.Partials(av, bv)
	e.record(a.id, da, out)
	e.record(b.id, db, out)

	e.tape.Record(Operation{Name: p.Name(), Inputs: []graph.NodeID{a.id, b.id}, Output: out})
	return Node{owner: e.graph, id: out}
}

// Call applies the primitive registered under name.
//
// Unlike the typed helpers, lookup and arity failures are returned as errors.
// Misuse of the graph itself (foreign node, frozen graph) still panics.
func (e *Engine) Call(name string, args ...Node) (Node, error) {
	switch len(args) {
	case 1:
		if p, ok := e.registry.Unary(name); ok {
			return e.Apply(p, args[0]), nil
		}
		if _, ok := e.registry.Binary(name); ok {
			return Node{}, fmt.Errorf("call %q with 1 argument: %w", name, ErrArity)
		}
	case 2:
		if p, ok := e.registry.Binary(name); ok {
			return e.ApplyBinary(p, args[0], args[1]), nil
		}
		if _, ok := e.registry.Unary(name); ok {
			return Node{}, fmt.Errorf("call %q with 2 arguments: %w", name, ErrArity)
		}
	default:
		if _, ok := e.registry.Unary(name); ok {
			return Node{}, fmt.Errorf("call %q with %d arguments: %w", name, len(args), ErrArity)
		}
		if _, ok := e.registry.Binary(name); ok {
			return Node{}, fmt.Errorf("call %q with %d arguments: %w", name, len(args), ErrArity)
		}
	}
	return Node{}, fmt.Errorf("call %q: %w", name, ErrUnknownPrimitive)
}

// SeedRoot designates root as the node being differentiated: its total
// derivative is 1. It freezes the graph and starts a fresh Pass, which
// becomes the one Grad reads from. Seeding another root later starts another
// independent Pass; previous passes stay valid.
func (e *Engine) SeedRoot(root Node) *Pass {
	e.mustOwn(root, "seed root")
	e.graph.Freeze()
	e.pass = newPass(e.graph, root.id)
	return e.pass
}

// Pass returns the current pass, or nil if no root has been seeded.
func (e *Engine) Pass() *Pass {
	return e.pass
}

// Grad returns d(root)/d(n) for the most recently seeded root.
//
// Grad panics with ErrRootNotSeeded if SeedRoot has not been called.
func (e *Engine) Grad(n Node) float64 {
	if e.pass == nil {
		panic(fmt.Errorf("autodiff: grad: %w", ErrRootNotSeeded))
	}
	return e.pass.Grad(n)
}

func (e *Engine) newNode(value float64, op string) graph.NodeID {
	id, err := e.graph.Add(value)
	if err != nil {
		panic(fmt.Errorf("autodiff: %s: %w", op, err))
	}
	return id
}

func (e *Engine) record(id graph.NodeID, weight float64, consumer graph.NodeID) {
	if err := e.graph.RecordChild(id, weight, consumer); err != nil {
		panic(fmt.Errorf("autodiff: %w", err))
	}
}

func (e *Engine) mustOwn(n Node, op string) {
	if n.owner != e.graph {
		panic(fmt.Errorf("autodiff: %s: %w", op, ErrForeignNode))
	}
}
