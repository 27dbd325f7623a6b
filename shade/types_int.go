package shade

import "github.com/gogpu/shade/ir"

// ExprInt is a signed 32-bit integer expression.
type ExprInt struct{ erased ir.ErasedExpr }

func (e ExprInt) exprErased() ir.ErasedExpr { return e.erased }
func (e ExprInt) exprType() ir.Type         { return ir.NewScalar(ir.PrimInt) }

// Int lifts a Go int32 literal into an ExprInt.
func Int(v int32) ExprInt { return ExprInt{ir.ErasedExpr{Kind: ir.LitInt(v)}} }

func wrapInt(k ir.ExprKind) ExprInt { return ExprInt{ir.ErasedExpr{Kind: k}} }

// ExprIntV2 is a two-component signed integer vector expression.
type ExprIntV2 struct{ erased ir.ErasedExpr }

func (e ExprIntV2) exprErased() ir.ErasedExpr { return e.erased }
func (e ExprIntV2) exprType() ir.Type         { return ir.NewVector(ir.PrimInt, ir.D2) }

// IntV2 lifts a literal two-component integer vector.
func IntV2(x, y int32) ExprIntV2 {
	return ExprIntV2{ir.ErasedExpr{Kind: ir.LitInt2{x, y}}}
}

func wrapIntV2(k ir.ExprKind) ExprIntV2 { return ExprIntV2{ir.ErasedExpr{Kind: k}} }

// ExprIntV3 is a three-component signed integer vector expression.
type ExprIntV3 struct{ erased ir.ErasedExpr }

func (e ExprIntV3) exprErased() ir.ErasedExpr { return e.erased }
func (e ExprIntV3) exprType() ir.Type         { return ir.NewVector(ir.PrimInt, ir.D3) }

// IntV3 lifts a literal three-component integer vector.
func IntV3(x, y, z int32) ExprIntV3 {
	return ExprIntV3{ir.ErasedExpr{Kind: ir.LitInt3{x, y, z}}}
}

func wrapIntV3(k ir.ExprKind) ExprIntV3 { return ExprIntV3{ir.ErasedExpr{Kind: k}} }

// ExprIntV4 is a four-component signed integer vector expression.
type ExprIntV4 struct{ erased ir.ErasedExpr }

func (e ExprIntV4) exprErased() ir.ErasedExpr { return e.erased }
func (e ExprIntV4) exprType() ir.Type         { return ir.NewVector(ir.PrimInt, ir.D4) }

// IntV4 lifts a literal four-component integer vector.
func IntV4(x, y, z, w int32) ExprIntV4 {
	return ExprIntV4{ir.ErasedExpr{Kind: ir.LitInt4{x, y, z, w}}}
}

func wrapIntV4(k ir.ExprKind) ExprIntV4 { return ExprIntV4{ir.ErasedExpr{Kind: k}} }

// VarInt is a mutable signed integer local or output.
type VarInt struct{ handle ir.ScopedHandle }

func (v VarInt) varHandle() ir.ScopedHandle { return v.handle }
func (v VarInt) varType() ir.Type           { return ir.NewScalar(ir.PrimInt) }

// Get reads the variable's current value as an expression.
func (v VarInt) Get() ExprInt { return wrapInt(ir.MutVar{Handle: v.handle}) }

// VarIntV2 is a mutable two-component integer vector local or output.
type VarIntV2 struct{ handle ir.ScopedHandle }

func (v VarIntV2) varHandle() ir.ScopedHandle { return v.handle }
func (v VarIntV2) varType() ir.Type           { return ir.NewVector(ir.PrimInt, ir.D2) }
func (v VarIntV2) Get() ExprIntV2             { return wrapIntV2(ir.MutVar{Handle: v.handle}) }

// VarIntV3 is a mutable three-component integer vector local or output.
type VarIntV3 struct{ handle ir.ScopedHandle }

func (v VarIntV3) varHandle() ir.ScopedHandle { return v.handle }
func (v VarIntV3) varType() ir.Type           { return ir.NewVector(ir.PrimInt, ir.D3) }
func (v VarIntV3) Get() ExprIntV3             { return wrapIntV3(ir.MutVar{Handle: v.handle}) }

// VarIntV4 is a mutable four-component integer vector local or output.
type VarIntV4 struct{ handle ir.ScopedHandle }

func (v VarIntV4) varHandle() ir.ScopedHandle { return v.handle }
func (v VarIntV4) varType() ir.Type           { return ir.NewVector(ir.PrimInt, ir.D4) }
func (v VarIntV4) Get() ExprIntV4             { return wrapIntV4(ir.MutVar{Handle: v.handle}) }
