package shade

import "github.com/gogpu/shade/ir"

// ExprArray is a fixed-length, read-only array expression of element type
// T. Go has no const generics, so unlike the scalar/vector Expr types the
// element count is not part of ExprArray's type: it is a runtime field of
// the ir.Type carried alongside the erased tree. Nothing checks it: not
// the compiler, and not the printer, which only writes it out as part of
// the array type.
type ExprArray[T AnyExpr] struct {
	erased ir.ErasedExpr
	typ    ir.Type
	wrap   func(ir.ExprKind) T
}

func (a ExprArray[T]) exprErased() ir.ErasedExpr { return a.erased }
func (a ExprArray[T]) exprType() ir.Type         { return a.typ }

// At indexes the array by a computed expression, yielding an element of
// type T.
func (a ExprArray[T]) At(index ExprInt) T {
	return a.wrap(ir.ArrayLookup{Object: a.erased, Index: index.erased})
}

func newArrayLit[T AnyExpr](elemType ir.Type, wrap func(ir.ExprKind) T, elems []ir.ErasedExpr) ExprArray[T] {
	t := ir.ArrayOf(elemType, uint32(len(elems)))
	return ExprArray[T]{
		erased: ir.ErasedExpr{Kind: ir.LitArray{Type: t, Elems: elems}},
		typ:    t,
		wrap:   wrap,
	}
}

// NewArrayInt builds a literal int array from its elements.
func NewArrayInt(elems ...ExprInt) ExprArray[ExprInt] {
	es := make([]ir.ErasedExpr, len(elems))
	for i, e := range elems {
		es[i] = e.erased
	}
	return newArrayLit(ir.NewScalar(ir.PrimInt), wrapInt, es)
}

// NewArrayUInt builds a literal uint array from its elements.
func NewArrayUInt(elems ...ExprUInt) ExprArray[ExprUInt] {
	es := make([]ir.ErasedExpr, len(elems))
	for i, e := range elems {
		es[i] = e.erased
	}
	return newArrayLit(ir.NewScalar(ir.PrimUInt), wrapUInt, es)
}

// NewArrayFloat builds a literal float array from its elements.
func NewArrayFloat(elems ...ExprFloat) ExprArray[ExprFloat] {
	es := make([]ir.ErasedExpr, len(elems))
	for i, e := range elems {
		es[i] = e.erased
	}
	return newArrayLit(ir.NewScalar(ir.PrimFloat), wrapFloat, es)
}

// NewArrayBool builds a literal bool array from its elements.
func NewArrayBool(elems ...ExprBool) ExprArray[ExprBool] {
	es := make([]ir.ErasedExpr, len(elems))
	for i, e := range elems {
		es[i] = e.erased
	}
	return newArrayLit(ir.NewScalar(ir.PrimBool), wrapBool, es)
}

// VarArray is a fixed- or driver-sized mutable array variable, used for
// built-in array outputs such as gl_ClipDistance.
type VarArray[T AnyExpr] struct {
	handle ir.ScopedHandle
	elem   ir.Type
	wrap   func(ir.ExprKind) T
}

func (v VarArray[T]) varHandle() ir.ScopedHandle { return v.handle }
func (v VarArray[T]) varType() ir.Type           { return ir.ArrayOf(v.elem, 0) }

// At returns an assignable, readable reference to the array's element at
// index.
func (v VarArray[T]) At(index ExprInt) ArrayElem[T] {
	obj := ir.ErasedExpr{Kind: ir.MutVar{Handle: v.handle}}
	return ArrayElem[T]{
		erased: ir.ErasedExpr{Kind: ir.ArrayLookup{Object: obj, Index: index.erased}},
		wrap:   v.wrap,
	}
}

func newVarArrayFloat(h ir.ScopedHandle) VarArray[ExprFloat] {
	return VarArray[ExprFloat]{handle: h, elem: ir.NewScalar(ir.PrimFloat), wrap: wrapFloat}
}

func newVarArrayInt(h ir.ScopedHandle) VarArray[ExprInt] {
	return VarArray[ExprInt]{handle: h, elem: ir.NewScalar(ir.PrimInt), wrap: wrapInt}
}

// ArrayElem is an indexed reference into a VarArray: it reads like an
// expression and assigns like a Var.
type ArrayElem[T AnyExpr] struct {
	erased ir.ErasedExpr
	wrap   func(ir.ExprKind) T
}

// Get reads the element's current value.
func (a ArrayElem[T]) Get() T { return a.wrap(a.erased.Kind) }

func (a ArrayElem[T]) exprErased() ir.ErasedExpr { return a.erased }
func (a ArrayElem[T]) assignTarget() ir.ErasedExpr { return a.erased }
