package shade

import "github.com/gogpu/shade/ir"

// ExprUInt is an unsigned 32-bit integer expression.
type ExprUInt struct{ erased ir.ErasedExpr }

func (e ExprUInt) exprErased() ir.ErasedExpr { return e.erased }
func (e ExprUInt) exprType() ir.Type         { return ir.NewScalar(ir.PrimUInt) }

// UInt lifts a Go uint32 literal into an ExprUInt.
func UInt(v uint32) ExprUInt { return ExprUInt{ir.ErasedExpr{Kind: ir.LitUInt(v)}} }

func wrapUInt(k ir.ExprKind) ExprUInt { return ExprUInt{ir.ErasedExpr{Kind: k}} }

// ExprUIntV2 is a two-component unsigned integer vector expression.
type ExprUIntV2 struct{ erased ir.ErasedExpr }

func (e ExprUIntV2) exprErased() ir.ErasedExpr { return e.erased }
func (e ExprUIntV2) exprType() ir.Type         { return ir.NewVector(ir.PrimUInt, ir.D2) }

// UIntV2 lifts a literal two-component unsigned integer vector.
func UIntV2(x, y uint32) ExprUIntV2 {
	return ExprUIntV2{ir.ErasedExpr{Kind: ir.LitUInt2{x, y}}}
}

func wrapUIntV2(k ir.ExprKind) ExprUIntV2 { return ExprUIntV2{ir.ErasedExpr{Kind: k}} }

// ExprUIntV3 is a three-component unsigned integer vector expression.
type ExprUIntV3 struct{ erased ir.ErasedExpr }

func (e ExprUIntV3) exprErased() ir.ErasedExpr { return e.erased }
func (e ExprUIntV3) exprType() ir.Type         { return ir.NewVector(ir.PrimUInt, ir.D3) }

// UIntV3 lifts a literal three-component unsigned integer vector.
func UIntV3(x, y, z uint32) ExprUIntV3 {
	return ExprUIntV3{ir.ErasedExpr{Kind: ir.LitUInt3{x, y, z}}}
}

func wrapUIntV3(k ir.ExprKind) ExprUIntV3 { return ExprUIntV3{ir.ErasedExpr{Kind: k}} }

// ExprUIntV4 is a four-component unsigned integer vector expression.
type ExprUIntV4 struct{ erased ir.ErasedExpr }

func (e ExprUIntV4) exprErased() ir.ErasedExpr { return e.erased }
func (e ExprUIntV4) exprType() ir.Type         { return ir.NewVector(ir.PrimUInt, ir.D4) }

// UIntV4 lifts a literal four-component unsigned integer vector.
func UIntV4(x, y, z, w uint32) ExprUIntV4 {
	return ExprUIntV4{ir.ErasedExpr{Kind: ir.LitUInt4{x, y, z, w}}}
}

func wrapUIntV4(k ir.ExprKind) ExprUIntV4 { return ExprUIntV4{ir.ErasedExpr{Kind: k}} }

// VarUInt is a mutable unsigned integer local or output.
type VarUInt struct{ handle ir.ScopedHandle }

func (v VarUInt) varHandle() ir.ScopedHandle { return v.handle }
func (v VarUInt) varType() ir.Type           { return ir.NewScalar(ir.PrimUInt) }
func (v VarUInt) Get() ExprUInt              { return wrapUInt(ir.MutVar{Handle: v.handle}) }

// VarUIntV2 is a mutable two-component unsigned integer vector local or output.
type VarUIntV2 struct{ handle ir.ScopedHandle }

func (v VarUIntV2) varHandle() ir.ScopedHandle { return v.handle }
func (v VarUIntV2) varType() ir.Type           { return ir.NewVector(ir.PrimUInt, ir.D2) }
func (v VarUIntV2) Get() ExprUIntV2            { return wrapUIntV2(ir.MutVar{Handle: v.handle}) }

// VarUIntV3 is a mutable three-component unsigned integer vector local or output.
type VarUIntV3 struct{ handle ir.ScopedHandle }

func (v VarUIntV3) varHandle() ir.ScopedHandle { return v.handle }
func (v VarUIntV3) varType() ir.Type           { return ir.NewVector(ir.PrimUInt, ir.D3) }
func (v VarUIntV3) Get() ExprUIntV3            { return wrapUIntV3(ir.MutVar{Handle: v.handle}) }

// VarUIntV4 is a mutable four-component unsigned integer vector local or output.
type VarUIntV4 struct{ handle ir.ScopedHandle }

func (v VarUIntV4) varHandle() ir.ScopedHandle { return v.handle }
func (v VarUIntV4) varType() ir.Type           { return ir.NewVector(ir.PrimUInt, ir.D4) }
func (v VarUIntV4) Get() ExprUIntV4            { return wrapUIntV4(ir.MutVar{Handle: v.handle}) }
