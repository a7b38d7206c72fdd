// Package graph stores the vertices of a scalar computation graph.
//
// A Graph is an arena: it owns every node's value and its ordered list of
// child edges. Nodes are addressed by NodeID, the index assigned at creation.
// Edges only ever point from an older node to a newer one, so creation order
// is always a valid topological order and the graph cannot contain a cycle.
//
// Lifecycle:
//
//	g := graph.New()
//	x, _ := g.Add(0.5)             // forward pass: create nodes
//	y, _ := g.Add(math.Sin(0.5))
//	_ = g.RecordChild(x, math.Cos(0.5), y)
//	g.Freeze()                     // reverse pass may now read the graph
package graph

import "fmt"

// NodeID identifies a node inside the Graph that created it.
type NodeID int

// Edge records that a node was consumed by Consumer.
// Weight is the local derivative d(Consumer)/d(node) at forward-pass values.
type Edge struct {
	Weight   float64
	Consumer NodeID
}

// Graph owns the storage of every node.
type Graph struct {
	values   []float64 // Forward value per node, set once at creation
	children [][]Edge  // Outgoing edges per node, in recording order
	edges    int       // Total edge count
	frozen   bool      // Set once the reverse pass may start
}

// New creates an empty graph.
func New() *Graph {
	return &Graph{
		values:   make([]float64, 0, 64),
		children: make([][]Edge, 0, 64),
	}
}

// Add creates a node holding value and returns its ID.
func (g *Graph) Add(value float64) (NodeID, error) {
	if g.frozen {
		return 0, fmt.Errorf("add node: %w", ErrFrozen)
	}
	id := NodeID(len(g.values))
	g.values = append(g.values, value)
	g.children = append(g.children, nil)
	return id, nil
}

// RecordChild appends an edge from id to consumer with the given weight.
//
// Duplicate edges are kept: x*x legitimately records two edges from x to the
// same product, one per argument position.
func (g *Graph) RecordChild(id NodeID, weight float64, consumer NodeID) error {
	if g.frozen {
		return fmt.Errorf("record edge %d->%d: %w", id, consumer, ErrFrozen)
	}
	if !g.Contains(id) {
		return fmt.Errorf("record edge from %d: %w", id, ErrUnknownNode)
	}
	if !g.Contains(consumer) {
		return fmt.Errorf("record edge to %d: %w", consumer, ErrUnknownNode)
	}
	if consumer <= id {
		return fmt.Errorf("record edge %d->%d: %w", id, consumer, ErrBackEdge)
	}
	g.children[id] = append(g.children[id], Edge{Weight: weight, Consumer: consumer})
	g.edges++
	return nil
}

// Value returns the forward value of id.
// The caller must pass an ID obtained from this graph.
func (g *Graph) Value(id NodeID) float64 {
	return g.values[id]
}

// Children returns the edges recorded on id.
// The returned slice must not be modified.
func (g *Graph) Children(id NodeID) []Edge {
	return g.children[id]
}

// Contains reports whether id names a node of this graph.
func (g *Graph) Contains(id NodeID) bool {
	return id >= 0 && int(id) < len(g.values)
}

// Len returns the number of nodes.
func (g *Graph) Len() int {
	return len(g.values)
}

// NumEdges returns the total number of recorded edges.
func (g *Graph) NumEdges() int {
	return g.edges
}

// Freeze ends the forward phase. It is idempotent.
func (g *Graph) Freeze() {
	g.frozen = true
}

// Frozen reports whether Freeze has been called.
func (g *Graph) Frozen() bool {
	return g.frozen
}
