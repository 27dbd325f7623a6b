package shade

import "github.com/gogpu/shade/ir"

// Equatable is every concrete Expr type: equality is defined blanket,
// the same way the original crate derives eq/neq for any T regardless of
// its other trait bounds.
type Equatable interface {
	ExprInt | ExprUInt | ExprFloat | ExprBool |
		ExprIntV2 | ExprIntV3 | ExprIntV4 |
		ExprUIntV2 | ExprUIntV3 | ExprUIntV4 |
		ExprFloatV2 | ExprFloatV3 | ExprFloatV4 |
		ExprBoolV2 | ExprBoolV3 | ExprBoolV4
	AnyExpr
}

// Eq builds an == comparison between two expressions of the same shape.
func Eq[T Equatable](a, b T) ExprBool {
	return wrapBool(binary(ir.BinEq, a.exprErased(), b.exprErased()))
}

// Neq builds a != comparison between two expressions of the same shape.
func Neq[T Equatable](a, b T) ExprBool {
	return wrapBool(binary(ir.BinNeq, a.exprErased(), b.exprErased()))
}

// Ordered is the three numeric scalar types. Only scalars get relational
// operators: the original crate derives PartialOrd for scalar T alone,
// never for its vector wrappers.
type Ordered interface {
	ExprInt | ExprUInt | ExprFloat
	AnyExpr
}

// Lt builds a < comparison.
func Lt[T Ordered](a, b T) ExprBool {
	return wrapBool(binary(ir.BinLt, a.exprErased(), b.exprErased()))
}

// Lte builds a <= comparison.
func Lte[T Ordered](a, b T) ExprBool {
	return wrapBool(binary(ir.BinLte, a.exprErased(), b.exprErased()))
}

// Gt builds a > comparison.
func Gt[T Ordered](a, b T) ExprBool {
	return wrapBool(binary(ir.BinGt, a.exprErased(), b.exprErased()))
}

// Gte builds a >= comparison.
func Gte[T Ordered](a, b T) ExprBool {
	return wrapBool(binary(ir.BinGte, a.exprErased(), b.exprErased()))
}

// EqL, NeqL, LtL, LteL, GtL and GteL are the (Expr<T>, T) literal-lifting
// half of the comparison matrix, mirroring the original crate's
// rhs: impl Into<Expr<T>> parameter on gte/eq/etc (see
// original_source/src/lib.rs). Eq/Neq/Lt/Lte/Gt/Gte above are generic
// over every comparable shape, but a raw host literal's type depends on
// which concrete Expr type it is being compared against, which a single
// generic function can't dispatch on; each scalar type gets its own pair
// of methods instead, the same way AddL/SubL/... do for arithmetic.

func (e ExprInt) EqL(rhs int32) ExprBool  { return Eq(e, Int(rhs)) }
func (e ExprInt) NeqL(rhs int32) ExprBool { return Neq(e, Int(rhs)) }
func (e ExprInt) LtL(rhs int32) ExprBool  { return Lt(e, Int(rhs)) }
func (e ExprInt) LteL(rhs int32) ExprBool { return Lte(e, Int(rhs)) }
func (e ExprInt) GtL(rhs int32) ExprBool  { return Gt(e, Int(rhs)) }
func (e ExprInt) GteL(rhs int32) ExprBool { return Gte(e, Int(rhs)) }

func (e ExprUInt) EqL(rhs uint32) ExprBool  { return Eq(e, UInt(rhs)) }
func (e ExprUInt) NeqL(rhs uint32) ExprBool { return Neq(e, UInt(rhs)) }
func (e ExprUInt) LtL(rhs uint32) ExprBool  { return Lt(e, UInt(rhs)) }
func (e ExprUInt) LteL(rhs uint32) ExprBool { return Lte(e, UInt(rhs)) }
func (e ExprUInt) GtL(rhs uint32) ExprBool  { return Gt(e, UInt(rhs)) }
func (e ExprUInt) GteL(rhs uint32) ExprBool { return Gte(e, UInt(rhs)) }

func (e ExprFloat) EqL(rhs float32) ExprBool  { return Eq(e, Float(rhs)) }
func (e ExprFloat) NeqL(rhs float32) ExprBool { return Neq(e, Float(rhs)) }
func (e ExprFloat) LtL(rhs float32) ExprBool  { return Lt(e, Float(rhs)) }
func (e ExprFloat) LteL(rhs float32) ExprBool { return Lte(e, Float(rhs)) }
func (e ExprFloat) GtL(rhs float32) ExprBool  { return Gt(e, Float(rhs)) }
func (e ExprFloat) GteL(rhs float32) ExprBool { return Gte(e, Float(rhs)) }

func (e ExprBool) EqL(rhs bool) ExprBool  { return Eq(e, Bool(rhs)) }
func (e ExprBool) NeqL(rhs bool) ExprBool { return Neq(e, Bool(rhs)) }
