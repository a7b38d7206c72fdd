package autodiff

import (
	"fmt"

	"github.com/born-ml/scalargrad/internal/graph"
)

// Pass holds the total derivatives of one seeded root with respect to the
// nodes of a frozen graph.
//
// Gradients are computed lazily and memoized: the first Grad on a node sums
// weight * grad(consumer) over its child edges, resolving any consumer that is
// not yet known, and every node's sum is expanded at most once per Pass. The
// evaluation uses an explicit stack, so graph depth is not limited by the
// goroutine stack.
//
// Passes over the same graph never share cached values. A single Pass is not
// safe for concurrent use; separate passes may be used from separate
// goroutines since the frozen graph is only read.
type Pass struct {
	graph      *graph.Graph
	root       graph.NodeID
	grads      []float64 // Total derivative per node, valid where known is set
	known      []bool
	expansions int
}

func newPass(g *graph.Graph, root graph.NodeID) *Pass {
	p := &Pass{
		graph: g,
		root:  root,
		grads: make([]float64, g.Len()),
		known: make([]bool, g.Len()),
	}
	p.grads[root] = 1
	p.known[root] = true
	return p
}

// Root returns the seeded root.
func (p *Pass) Root() Node {
	return Node{owner: p.graph, id: p.root}
}

// Expansions returns how many node sums have been computed so far.
// The seeded root is not counted.
func (p *Pass) Expansions() int {
	return p.expansions
}

// Grad returns d(root)/d(n).
//
// Nodes that do not reach the root through child edges, including nodes
// never used by any operation, have a derivative of 0. Every edge is summed,
// so a NaN or Inf weight on a dead branch still yields NaN per IEEE-754,
// whether that branch was built before or after the root.
func (p *Pass) Grad(n Node) float64 {
	if n.owner != p.graph {
		panic(fmt.Errorf("autodiff: grad: %w", ErrForeignNode))
	}
	return p.grad(n.id)
}

// Gradients returns d(root)/d(n) for every node, indexed by NodeID.
//
// Creation order is a topological order, so a single backward sweep from the
// root visits every consumer before the nodes feeding it.
func (p *Pass) Gradients() []float64 {
	for id := p.root - 1; id >= 0; id-- {
		if !p.known[id] {
			p.expand(id)
		}
	}

	out := make([]float64, len(p.grads))
	copy(out, p.grads)
	return out
}

func (p *Pass) grad(id graph.NodeID) float64 {
	// Edges only point to newer nodes: nothing created after the root reaches it.
	if id > p.root {
		return 0
	}
	if p.known[id] {
		return p.grads[id]
	}

	stack := []graph.NodeID{id}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		if p.known[top] {
			stack = stack[:len(stack)-1]
			continue
		}

		pending := false
		for _, edge := range p.graph.Children(top) {
			if edge.Consumer > p.root || p.known[edge.Consumer] {
				continue
			}
			stack = append(stack, edge.Consumer)
			pending = true
		}
		if pending {
			continue
		}

		p.expand(top)
		stack = stack[:len(stack)-1]
	}

	return p.grads[id]
}

// expand computes the sum for id. Every consumer up to the root must be known.
// Consumers created after the root hold 0 in grads, so their edges still
// contribute weight * 0 and a NaN or Inf weight propagates.
func (p *Pass) expand(id graph.NodeID) {
	var sum float64
	for _, edge := range p.graph.Children(id) {
		sum += edge.Weight * p.grads[edge.Consumer]
	}
	p.grads[id] = sum
	p.known[id] = true
	p.expansions++
}
