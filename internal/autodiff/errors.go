package autodiff

import (
	"errors"

	"github.com/born-ml/scalargrad/internal/graph"
)

// Common errors.
var (
	ErrRootNotSeeded    = errors.New("no root seeded")
	ErrForeignNode      = errors.New("node does not belong to this graph")
	ErrUnknownPrimitive = errors.New("unknown primitive")
	ErrArity            = errors.New("wrong number of arguments")

	// ErrGraphFrozen is returned (or panicked) by forward operations once
	// differentiation has started.
	ErrGraphFrozen = graph.ErrFrozen
)
