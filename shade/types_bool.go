package shade

import "github.com/gogpu/shade/ir"

// ExprBool is a boolean expression.
type ExprBool struct{ erased ir.ErasedExpr }

func (e ExprBool) exprErased() ir.ErasedExpr { return e.erased }
func (e ExprBool) exprType() ir.Type         { return ir.NewScalar(ir.PrimBool) }

// Bool lifts a Go bool literal into an ExprBool.
func Bool(v bool) ExprBool { return ExprBool{ir.ErasedExpr{Kind: ir.LitBool(v)}} }

func wrapBool(k ir.ExprKind) ExprBool { return ExprBool{ir.ErasedExpr{Kind: k}} }

// ExprBoolV2 is a two-component boolean vector expression.
type ExprBoolV2 struct{ erased ir.ErasedExpr }

func (e ExprBoolV2) exprErased() ir.ErasedExpr { return e.erased }
func (e ExprBoolV2) exprType() ir.Type         { return ir.NewVector(ir.PrimBool, ir.D2) }

// BoolV2 lifts a literal two-component boolean vector.
func BoolV2(x, y bool) ExprBoolV2 {
	return ExprBoolV2{ir.ErasedExpr{Kind: ir.LitBool2{x, y}}}
}

func wrapBoolV2(k ir.ExprKind) ExprBoolV2 { return ExprBoolV2{ir.ErasedExpr{Kind: k}} }

// ExprBoolV3 is a three-component boolean vector expression.
type ExprBoolV3 struct{ erased ir.ErasedExpr }

func (e ExprBoolV3) exprErased() ir.ErasedExpr { return e.erased }
func (e ExprBoolV3) exprType() ir.Type         { return ir.NewVector(ir.PrimBool, ir.D3) }

// BoolV3 lifts a literal three-component boolean vector.
func BoolV3(x, y, z bool) ExprBoolV3 {
	return ExprBoolV3{ir.ErasedExpr{Kind: ir.LitBool3{x, y, z}}}
}

func wrapBoolV3(k ir.ExprKind) ExprBoolV3 { return ExprBoolV3{ir.ErasedExpr{Kind: k}} }

// ExprBoolV4 is a four-component boolean vector expression.
type ExprBoolV4 struct{ erased ir.ErasedExpr }

func (e ExprBoolV4) exprErased() ir.ErasedExpr { return e.erased }
func (e ExprBoolV4) exprType() ir.Type         { return ir.NewVector(ir.PrimBool, ir.D4) }

// BoolV4 lifts a literal four-component boolean vector.
func BoolV4(x, y, z, w bool) ExprBoolV4 {
	return ExprBoolV4{ir.ErasedExpr{Kind: ir.LitBool4{x, y, z, w}}}
}

func wrapBoolV4(k ir.ExprKind) ExprBoolV4 { return ExprBoolV4{ir.ErasedExpr{Kind: k}} }

// VarBool is a mutable boolean local or output.
type VarBool struct{ handle ir.ScopedHandle }

func (v VarBool) varHandle() ir.ScopedHandle { return v.handle }
func (v VarBool) varType() ir.Type           { return ir.NewScalar(ir.PrimBool) }
func (v VarBool) Get() ExprBool              { return wrapBool(ir.MutVar{Handle: v.handle}) }

// VarBoolV2 is a mutable two-component boolean vector local or output.
type VarBoolV2 struct{ handle ir.ScopedHandle }

func (v VarBoolV2) varHandle() ir.ScopedHandle { return v.handle }
func (v VarBoolV2) varType() ir.Type           { return ir.NewVector(ir.PrimBool, ir.D2) }
func (v VarBoolV2) Get() ExprBoolV2            { return wrapBoolV2(ir.MutVar{Handle: v.handle}) }

// VarBoolV3 is a mutable three-component boolean vector local or output.
type VarBoolV3 struct{ handle ir.ScopedHandle }

func (v VarBoolV3) varHandle() ir.ScopedHandle { return v.handle }
func (v VarBoolV3) varType() ir.Type           { return ir.NewVector(ir.PrimBool, ir.D3) }
func (v VarBoolV3) Get() ExprBoolV3            { return wrapBoolV3(ir.MutVar{Handle: v.handle}) }

// VarBoolV4 is a mutable four-component boolean vector local or output.
type VarBoolV4 struct{ handle ir.ScopedHandle }

func (v VarBoolV4) varHandle() ir.ScopedHandle { return v.handle }
func (v VarBoolV4) varType() ir.Type           { return ir.NewVector(ir.PrimBool, ir.D4) }
func (v VarBoolV4) Get() ExprBoolV4            { return wrapBoolV4(ir.MutVar{Handle: v.handle}) }
