package autodiff

import "github.com/born-ml/scalargrad/internal/graph"

// Operation is one recorded primitive application.
type Operation struct {
	Name   string         // Primitive name, e.g. "mul"
	Inputs []graph.NodeID // Argument nodes, in argument order
	Output graph.NodeID   // Node created by the call
}

// Tape records every primitive applied during the forward pass, in execution
// order. It mirrors the graph's edges and exists for inspection only; the
// reverse pass reads the graph directly.
type Tape struct {
	operations []Operation
}

// NewTape creates an empty tape.
func NewTape() *Tape {
	return &Tape{
		operations: make([]Operation, 0, 64), // Pre-allocate for common case
	}
}

// Record appends an operation.
func (t *Tape) Record(op Operation) {
	t.operations = append(t.operations, op)
}

// Operations returns the recorded operations in execution order.
// The returned slice must not be modified.
func (t *Tape) Operations() []Operation {
	return t.operations
}

// NumOps returns the number of recorded operations.
func (t *Tape) NumOps() int {
	return len(t.operations)
}
