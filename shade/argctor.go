package shade

import "github.com/gogpu/shade/ir"

// argConstructible lets a generic function build a zero-valued T and ask
// it to construct a fresh value of its own type from an arbitrary erased
// expression kind. Go has no way to parameterize "construct a T" directly
// over a type parameter, so each concrete Expr type supplies its own
// constructor through this method instead.
type argConstructible interface {
	fromKind(ir.ExprKind) AnyExpr
}

func (ExprInt) fromKind(k ir.ExprKind) AnyExpr   { return wrapInt(k) }
func (ExprIntV2) fromKind(k ir.ExprKind) AnyExpr { return wrapIntV2(k) }
func (ExprIntV3) fromKind(k ir.ExprKind) AnyExpr { return wrapIntV3(k) }
func (ExprIntV4) fromKind(k ir.ExprKind) AnyExpr { return wrapIntV4(k) }

func (ExprUInt) fromKind(k ir.ExprKind) AnyExpr   { return wrapUInt(k) }
func (ExprUIntV2) fromKind(k ir.ExprKind) AnyExpr { return wrapUIntV2(k) }
func (ExprUIntV3) fromKind(k ir.ExprKind) AnyExpr { return wrapUIntV3(k) }
func (ExprUIntV4) fromKind(k ir.ExprKind) AnyExpr { return wrapUIntV4(k) }

func (ExprFloat) fromKind(k ir.ExprKind) AnyExpr   { return wrapFloat(k) }
func (ExprFloatV2) fromKind(k ir.ExprKind) AnyExpr { return wrapFloatV2(k) }
func (ExprFloatV3) fromKind(k ir.ExprKind) AnyExpr { return wrapFloatV3(k) }
func (ExprFloatV4) fromKind(k ir.ExprKind) AnyExpr { return wrapFloatV4(k) }

func (ExprBool) fromKind(k ir.ExprKind) AnyExpr   { return wrapBool(k) }
func (ExprBoolV2) fromKind(k ir.ExprKind) AnyExpr { return wrapBoolV2(k) }
func (ExprBoolV3) fromKind(k ir.ExprKind) AnyExpr { return wrapBoolV3(k) }
func (ExprBoolV4) fromKind(k ir.ExprKind) AnyExpr { return wrapBoolV4(k) }
