package graph

import "errors"

// Common errors.
var (
	ErrFrozen      = errors.New("graph is frozen: forward pass has ended")
	ErrUnknownNode = errors.New("unknown node")
	ErrBackEdge    = errors.New("edge must point to a newer node")
)
