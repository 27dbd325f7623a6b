package shade

import "github.com/gogpu/shade/ir"

// ExprFloat is a 32-bit floating point expression.
type ExprFloat struct{ erased ir.ErasedExpr }

func (e ExprFloat) exprErased() ir.ErasedExpr { return e.erased }
func (e ExprFloat) exprType() ir.Type         { return ir.NewScalar(ir.PrimFloat) }

// Float lifts a Go float32 literal into an ExprFloat.
func Float(v float32) ExprFloat { return ExprFloat{ir.ErasedExpr{Kind: ir.LitFloat(v)}} }

func wrapFloat(k ir.ExprKind) ExprFloat { return ExprFloat{ir.ErasedExpr{Kind: k}} }

// ExprFloatV2 is a two-component float vector expression.
type ExprFloatV2 struct{ erased ir.ErasedExpr }

func (e ExprFloatV2) exprErased() ir.ErasedExpr { return e.erased }
func (e ExprFloatV2) exprType() ir.Type         { return ir.NewVector(ir.PrimFloat, ir.D2) }

// FloatV2 lifts a literal two-component float vector.
func FloatV2(x, y float32) ExprFloatV2 {
	return ExprFloatV2{ir.ErasedExpr{Kind: ir.LitFloat2{x, y}}}
}

func wrapFloatV2(k ir.ExprKind) ExprFloatV2 { return ExprFloatV2{ir.ErasedExpr{Kind: k}} }

// ExprFloatV3 is a three-component float vector expression.
type ExprFloatV3 struct{ erased ir.ErasedExpr }

func (e ExprFloatV3) exprErased() ir.ErasedExpr { return e.erased }
func (e ExprFloatV3) exprType() ir.Type         { return ir.NewVector(ir.PrimFloat, ir.D3) }

// FloatV3 lifts a literal three-component float vector.
func FloatV3(x, y, z float32) ExprFloatV3 {
	return ExprFloatV3{ir.ErasedExpr{Kind: ir.LitFloat3{x, y, z}}}
}

func wrapFloatV3(k ir.ExprKind) ExprFloatV3 { return ExprFloatV3{ir.ErasedExpr{Kind: k}} }

// ExprFloatV4 is a four-component float vector expression.
type ExprFloatV4 struct{ erased ir.ErasedExpr }

func (e ExprFloatV4) exprErased() ir.ErasedExpr { return e.erased }
func (e ExprFloatV4) exprType() ir.Type         { return ir.NewVector(ir.PrimFloat, ir.D4) }

// FloatV4 lifts a literal four-component float vector.
func FloatV4(x, y, z, w float32) ExprFloatV4 {
	return ExprFloatV4{ir.ErasedExpr{Kind: ir.LitFloat4{x, y, z, w}}}
}

func wrapFloatV4(k ir.ExprKind) ExprFloatV4 { return ExprFloatV4{ir.ErasedExpr{Kind: k}} }

// VarFloat is a mutable float local or output.
type VarFloat struct{ handle ir.ScopedHandle }

func (v VarFloat) varHandle() ir.ScopedHandle { return v.handle }
func (v VarFloat) varType() ir.Type           { return ir.NewScalar(ir.PrimFloat) }
func (v VarFloat) Get() ExprFloat             { return wrapFloat(ir.MutVar{Handle: v.handle}) }

// VarFloatV2 is a mutable two-component float vector local or output.
type VarFloatV2 struct{ handle ir.ScopedHandle }

func (v VarFloatV2) varHandle() ir.ScopedHandle { return v.handle }
func (v VarFloatV2) varType() ir.Type           { return ir.NewVector(ir.PrimFloat, ir.D2) }
func (v VarFloatV2) Get() ExprFloatV2           { return wrapFloatV2(ir.MutVar{Handle: v.handle}) }

// VarFloatV3 is a mutable three-component float vector local or output.
type VarFloatV3 struct{ handle ir.ScopedHandle }

func (v VarFloatV3) varHandle() ir.ScopedHandle { return v.handle }
func (v VarFloatV3) varType() ir.Type           { return ir.NewVector(ir.PrimFloat, ir.D3) }
func (v VarFloatV3) Get() ExprFloatV3           { return wrapFloatV3(ir.MutVar{Handle: v.handle}) }

// VarFloatV4 is a mutable four-component float vector local or output.
type VarFloatV4 struct{ handle ir.ScopedHandle }

func (v VarFloatV4) varHandle() ir.ScopedHandle { return v.handle }
func (v VarFloatV4) varType() ir.Type           { return ir.NewVector(ir.PrimFloat, ir.D4) }
func (v VarFloatV4) Get() ExprFloatV4           { return wrapFloatV4(ir.MutVar{Handle: v.handle}) }
