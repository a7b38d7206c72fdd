package ops

import (
	"errors"
	"fmt"
	"sort"
)

// Common errors.
var (
	ErrDuplicatePrimitive = errors.New("primitive already registered")
	ErrInvalidPrimitive   = errors.New("invalid primitive")
)

// Registry maps primitive names to their implementations.
// Unary and binary primitives share one namespace.
type Registry struct {
	unary  map[string]UnaryPrimitive
	binary map[string]BinaryPrimitive
}

// NewRegistry creates a registry holding all builtin primitives.
func NewRegistry() *Registry {
	r := NewEmptyRegistry()

	for _, p := range []BinaryPrimitive{AddOp{}, SubOp{}, MulOp{}, DivOp{}, PowOp{}} {
		r.binary[p.Name()] = p
	}
	for _, p := range []UnaryPrimitive{
		SinOp{}, CosOp{}, TanOp{}, ExpOp{}, LogOp{},
		SqrtOp{}, TanhOp{}, SigmoidOp{}, ReLUOp{}, NegOp{},
	} {
		r.unary[p.Name()] = p
	}

	return r
}

// NewEmptyRegistry creates a registry with no primitives.
func NewEmptyRegistry() *Registry {
	return &Registry{
		unary:  make(map[string]UnaryPrimitive),
		binary: make(map[string]BinaryPrimitive),
	}
}

// Register adds a UnaryPrimitive or BinaryPrimitive.
//
// Names must be non-empty and unique across both arities. UnaryFunc and
// BinaryFunc adapters, by value or by pointer, with nil functions are rejected.
// Pointer adapters are stored by value.
func (r *Registry) Register(p any) error {
	switch prim := p.(type) {
	case *UnaryFunc:
		if prim == nil {
			return fmt.Errorf("register nil *UnaryFunc: %w", ErrInvalidPrimitive)
		}
		return r.Register(*prim)
	case *BinaryFunc:
		if prim == nil {
			return fmt.Errorf("register nil *BinaryFunc: %w", ErrInvalidPrimitive)
		}
		return r.Register(*prim)
	case UnaryFunc:
		if prim.F == nil || prim.DF == nil {
			return fmt.Errorf("register %q: nil function: %w", prim.Op, ErrInvalidPrimitive)
		}
		return r.registerUnary(prim)
	case BinaryFunc:
		if prim.F == nil || prim.DFA == nil || prim.DFB == nil {
			return fmt.Errorf("register %q: nil function: %w", prim.Op, ErrInvalidPrimitive)
		}
		return r.registerBinary(prim)
	case UnaryPrimitive:
		return r.registerUnary(prim)
	case BinaryPrimitive:
		return r.registerBinary(prim)
	default:
		return fmt.Errorf("register %T: not a primitive: %w", p, ErrInvalidPrimitive)
	}
}

func (r *Registry) registerUnary(p UnaryPrimitive) error {
	if err := r.checkName(p.Name()); err != nil {
		return err
	}
	r.unary[p.Name()] = p
	return nil
}

func (r *Registry) registerBinary(p BinaryPrimitive) error {
	if err := r.checkName(p.Name()); err != nil {
		return err
	}
	r.binary[p.Name()] = p
	return nil
}

func (r *Registry) checkName(name string) error {
	if name == "" {
		return fmt.Errorf("register: empty name: %w", ErrInvalidPrimitive)
	}
	_, u := r.unary[name]
	_, b := r.binary[name]
	if u || b {
		return fmt.Errorf("register %q: %w", name, ErrDuplicatePrimitive)
	}
	return nil
}

// Unary returns the unary primitive registered under name.
func (r *Registry) Unary(name string) (UnaryPrimitive, bool) {
	p, ok := r.unary[name]
	return p, ok
}

// Binary returns the binary primitive registered under name.
func (r *Registry) Binary(name string) (BinaryPrimitive, bool) {
	p, ok := r.binary[name]
	return p, ok
}

// Names returns all registered primitive names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.unary)+len(r.binary))
	for name := range r.unary {
		names = append(names, name)
	}
	for name := range r.binary {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
