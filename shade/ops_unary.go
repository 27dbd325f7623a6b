package shade

import "github.com/gogpu/shade/ir"

func unary(op ir.UnaryOp, e ir.ErasedExpr) ir.ExprKind {
	return ir.Unary{Op: op, Expr: e}
}

// Not is defined only on boolean types.

func (e ExprBool) Not() ExprBool     { return wrapBool(unary(ir.UnaryNot, e.erased)) }
func (e ExprBoolV2) Not() ExprBoolV2 { return wrapBoolV2(unary(ir.UnaryNot, e.erased)) }
func (e ExprBoolV3) Not() ExprBoolV3 { return wrapBoolV3(unary(ir.UnaryNot, e.erased)) }
func (e ExprBoolV4) Not() ExprBoolV4 { return wrapBoolV4(unary(ir.UnaryNot, e.erased)) }

// Neg is defined only on numeric types; booleans have no unary minus.

func (e ExprInt) Neg() ExprInt     { return wrapInt(unary(ir.UnaryNeg, e.erased)) }
func (e ExprIntV2) Neg() ExprIntV2 { return wrapIntV2(unary(ir.UnaryNeg, e.erased)) }
func (e ExprIntV3) Neg() ExprIntV3 { return wrapIntV3(unary(ir.UnaryNeg, e.erased)) }
func (e ExprIntV4) Neg() ExprIntV4 { return wrapIntV4(unary(ir.UnaryNeg, e.erased)) }

func (e ExprUInt) Neg() ExprUInt     { return wrapUInt(unary(ir.UnaryNeg, e.erased)) }
func (e ExprUIntV2) Neg() ExprUIntV2 { return wrapUIntV2(unary(ir.UnaryNeg, e.erased)) }
func (e ExprUIntV3) Neg() ExprUIntV3 { return wrapUIntV3(unary(ir.UnaryNeg, e.erased)) }
func (e ExprUIntV4) Neg() ExprUIntV4 { return wrapUIntV4(unary(ir.UnaryNeg, e.erased)) }

func (e ExprFloat) Neg() ExprFloat     { return wrapFloat(unary(ir.UnaryNeg, e.erased)) }
func (e ExprFloatV2) Neg() ExprFloatV2 { return wrapFloatV2(unary(ir.UnaryNeg, e.erased)) }
func (e ExprFloatV3) Neg() ExprFloatV3 { return wrapFloatV3(unary(ir.UnaryNeg, e.erased)) }
func (e ExprFloatV4) Neg() ExprFloatV4 { return wrapFloatV4(unary(ir.UnaryNeg, e.erased)) }
