package ir

import "fmt"

// Prim is a scalar primitive kind.
type Prim uint8

const (
	PrimInt Prim = iota
	PrimUInt
	PrimFloat
	PrimBool
)

// String returns the target-neutral name of the primitive kind.
func (p Prim) String() string {
	switch p {
	case PrimInt:
		return "int"
	case PrimUInt:
		return "uint"
	case PrimFloat:
		return "float"
	case PrimBool:
		return "bool"
	default:
		return fmt.Sprintf("Prim(%d)", uint8(p))
	}
}

// Dimension is a vector arity: scalar, or 2/3/4 components.
type Dimension uint8

const (
	Scalar Dimension = iota
	D2
	D3
	D4
)

// Components returns the component count, 1 for Scalar.
func (d Dimension) Components() int {
	switch d {
	case D2:
		return 2
	case D3:
		return 3
	case D4:
		return 4
	default:
		return 1
	}
}

// Type is a type descriptor: a primitive crossed with a dimension, plus an
// outer-to-inner sequence of array extents. A scalar has an empty
// ArrayDims; [[T; N]; M] has ArrayDims = [M, N] with the primitive/dim
// coming from T.
type Type struct {
	Prim      Prim
	Dim       Dimension
	ArrayDims []uint32
}

// NewScalar returns the scalar descriptor for p.
func NewScalar(p Prim) Type { return Type{Prim: p, Dim: Scalar} }

// NewVector returns the vector descriptor for p at dimension d.
func NewVector(p Prim, d Dimension) Type { return Type{Prim: p, Dim: d} }

// ArrayOf wraps elem in an array of the given outer-to-inner extents.
func ArrayOf(elem Type, dims ...uint32) Type {
	out := elem
	out.ArrayDims = append(append([]uint32(nil), dims...), elem.ArrayDims...)
	return out
}

// IsArray reports whether t has at least one array extent.
func (t Type) IsArray() bool { return len(t.ArrayDims) > 0 }

// Elem returns the element type after stripping the outermost array
// extent. Panics if t is not an array.
func (t Type) Elem() Type {
	if !t.IsArray() {
		panic("ir: Elem of non-array type")
	}
	out := t
	out.ArrayDims = t.ArrayDims[1:]
	return out
}

// Equal reports structural equality of two type descriptors.
func (t Type) Equal(o Type) bool {
	if t.Prim != o.Prim || t.Dim != o.Dim || len(t.ArrayDims) != len(o.ArrayDims) {
		return false
	}
	for i := range t.ArrayDims {
		if t.ArrayDims[i] != o.ArrayDims[i] {
			return false
		}
	}
	return true
}

func (t Type) String() string {
	base := t.Prim.String()
	if t.Dim != Scalar {
		base = fmt.Sprintf("%s%d", base, t.Dim.Components())
	}
	for _, n := range t.ArrayDims {
		base = fmt.Sprintf("%s[%d]", base, n)
	}
	return base
}
