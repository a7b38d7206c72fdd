// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package autodiff provides reverse-mode automatic differentiation of scalar
// expressions.
//
// Every forward operation creates a new node and records, on each argument,
// the local derivative of the result with respect to that argument. Once the
// expression is built, seeding a root starts a pass that sums those local
// derivatives backward into total derivatives, computing each node at most
// once.
//
// Example:
//
//	import "github.com/born-ml/scalargrad/autodiff"
//
//	func main() {
//	    e := autodiff.New()
//	    x := e.Leaf(0.5)
//	    y := e.Leaf(4.2)
//	    z := e.Add(e.Mul(x, y), e.Sin(x))
//
//	    e.SeedRoot(z)
//	    dx := e.Grad(x) // y + cos(x)
//	    dy := e.Grad(y) // x
//	}
package autodiff

import (
	"github.com/born-ml/scalargrad/internal/autodiff"
	"github.com/born-ml/scalargrad/internal/autodiff/ops"
	"github.com/born-ml/scalargrad/internal/graph"
)

// Engine builds a computation graph and differentiates it.
type Engine = autodiff.Engine

// Node is a handle to one vertex of an Engine's graph.
type Node = autodiff.Node

// NodeID identifies a node in creation order.
type NodeID = graph.NodeID

// Edge is a recorded local derivative toward a consumer node.
type Edge = graph.Edge

// Pass holds the memoized total derivatives for one seeded root.
type Pass = autodiff.Pass

// Tape records the primitives applied during the forward pass.
type Tape = autodiff.Tape

// Operation is one entry of a Tape.
type Operation = autodiff.Operation

// Registry maps primitive names to differentiable primitives.
type Registry = ops.Registry

// UnaryPrimitive is a differentiable function of one scalar.
type UnaryPrimitive = ops.UnaryPrimitive

// BinaryPrimitive is a differentiable function of two scalars.
type BinaryPrimitive = ops.BinaryPrimitive

// UnaryFunc adapts plain functions to UnaryPrimitive.
type UnaryFunc = ops.UnaryFunc

// BinaryFunc adapts plain functions to BinaryPrimitive.
type BinaryFunc = ops.BinaryFunc

// Errors.
var (
	ErrRootNotSeeded      = autodiff.ErrRootNotSeeded
	ErrForeignNode        = autodiff.ErrForeignNode
	ErrGraphFrozen        = autodiff.ErrGraphFrozen
	ErrUnknownPrimitive   = autodiff.ErrUnknownPrimitive
	ErrArity              = autodiff.ErrArity
	ErrDuplicatePrimitive = ops.ErrDuplicatePrimitive
	ErrInvalidPrimitive   = ops.ErrInvalidPrimitive
)

// New creates an Engine with the builtin primitives.
func New() *Engine {
	return autodiff.New()
}

// NewWithRegistry creates an Engine that resolves Call through r.
//
// Example:
//
//	r := autodiff.NewRegistry()
//	_ = r.Register(autodiff.UnaryFunc{Op: "square", F: sq, DF: dsq})
//	e := autodiff.NewWithRegistry(r)
func NewWithRegistry(r *Registry) *Engine {
	return autodiff.NewWithRegistry(r)
}

// NewRegistry creates a registry holding the builtin primitives.
func NewRegistry() *Registry {
	return ops.NewRegistry()
}
