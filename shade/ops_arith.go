package shade

import "github.com/gogpu/shade/ir"

func binary(op ir.BinaryOp, l, r ir.ErasedExpr) ir.ExprKind {
	return ir.Binary{Op: op, Left: l, Right: r}
}

// Add, Sub, Mul and Div are defined on every numeric scalar and vector
// type. Boolean types have no arithmetic operators, matching GLSL.

func (e ExprInt) Add(o ExprInt) ExprInt { return wrapInt(binary(ir.BinAdd, e.erased, o.erased)) }
func (e ExprInt) Sub(o ExprInt) ExprInt { return wrapInt(binary(ir.BinSub, e.erased, o.erased)) }
func (e ExprInt) Mul(o ExprInt) ExprInt { return wrapInt(binary(ir.BinMul, e.erased, o.erased)) }
func (e ExprInt) Div(o ExprInt) ExprInt { return wrapInt(binary(ir.BinDiv, e.erased, o.erased)) }

func (e ExprIntV2) Add(o ExprIntV2) ExprIntV2 {
	return wrapIntV2(binary(ir.BinAdd, e.erased, o.erased))
}
func (e ExprIntV2) Sub(o ExprIntV2) ExprIntV2 {
	return wrapIntV2(binary(ir.BinSub, e.erased, o.erased))
}
func (e ExprIntV2) Mul(o ExprIntV2) ExprIntV2 {
	return wrapIntV2(binary(ir.BinMul, e.erased, o.erased))
}
func (e ExprIntV2) Div(o ExprIntV2) ExprIntV2 {
	return wrapIntV2(binary(ir.BinDiv, e.erased, o.erased))
}

func (e ExprIntV3) Add(o ExprIntV3) ExprIntV3 {
	return wrapIntV3(binary(ir.BinAdd, e.erased, o.erased))
}
func (e ExprIntV3) Sub(o ExprIntV3) ExprIntV3 {
	return wrapIntV3(binary(ir.BinSub, e.erased, o.erased))
}
func (e ExprIntV3) Mul(o ExprIntV3) ExprIntV3 {
	return wrapIntV3(binary(ir.BinMul, e.erased, o.erased))
}
func (e ExprIntV3) Div(o ExprIntV3) ExprIntV3 {
	return wrapIntV3(binary(ir.BinDiv, e.erased, o.erased))
}

func (e ExprIntV4) Add(o ExprIntV4) ExprIntV4 {
	return wrapIntV4(binary(ir.BinAdd, e.erased, o.erased))
}
func (e ExprIntV4) Sub(o ExprIntV4) ExprIntV4 {
	return wrapIntV4(binary(ir.BinSub, e.erased, o.erased))
}
func (e ExprIntV4) Mul(o ExprIntV4) ExprIntV4 {
	return wrapIntV4(binary(ir.BinMul, e.erased, o.erased))
}
func (e ExprIntV4) Div(o ExprIntV4) ExprIntV4 {
	return wrapIntV4(binary(ir.BinDiv, e.erased, o.erased))
}

func (e ExprUInt) Add(o ExprUInt) ExprUInt { return wrapUInt(binary(ir.BinAdd, e.erased, o.erased)) }
func (e ExprUInt) Sub(o ExprUInt) ExprUInt { return wrapUInt(binary(ir.BinSub, e.erased, o.erased)) }
func (e ExprUInt) Mul(o ExprUInt) ExprUInt { return wrapUInt(binary(ir.BinMul, e.erased, o.erased)) }
func (e ExprUInt) Div(o ExprUInt) ExprUInt { return wrapUInt(binary(ir.BinDiv, e.erased, o.erased)) }

func (e ExprUIntV2) Add(o ExprUIntV2) ExprUIntV2 {
	return wrapUIntV2(binary(ir.BinAdd, e.erased, o.erased))
}
func (e ExprUIntV2) Sub(o ExprUIntV2) ExprUIntV2 {
	return wrapUIntV2(binary(ir.BinSub, e.erased, o.erased))
}
func (e ExprUIntV2) Mul(o ExprUIntV2) ExprUIntV2 {
	return wrapUIntV2(binary(ir.BinMul, e.erased, o.erased))
}
func (e ExprUIntV2) Div(o ExprUIntV2) ExprUIntV2 {
	return wrapUIntV2(binary(ir.BinDiv, e.erased, o.erased))
}

func (e ExprUIntV3) Add(o ExprUIntV3) ExprUIntV3 {
	return wrapUIntV3(binary(ir.BinAdd, e.erased, o.erased))
}
func (e ExprUIntV3) Sub(o ExprUIntV3) ExprUIntV3 {
	return wrapUIntV3(binary(ir.BinSub, e.erased, o.erased))
}
func (e ExprUIntV3) Mul(o ExprUIntV3) ExprUIntV3 {
	return wrapUIntV3(binary(ir.BinMul, e.erased, o.erased))
}
func (e ExprUIntV3) Div(o ExprUIntV3) ExprUIntV3 {
	return wrapUIntV3(binary(ir.BinDiv, e.erased, o.erased))
}

func (e ExprUIntV4) Add(o ExprUIntV4) ExprUIntV4 {
	return wrapUIntV4(binary(ir.BinAdd, e.erased, o.erased))
}
func (e ExprUIntV4) Sub(o ExprUIntV4) ExprUIntV4 {
	return wrapUIntV4(binary(ir.BinSub, e.erased, o.erased))
}
func (e ExprUIntV4) Mul(o ExprUIntV4) ExprUIntV4 {
	return wrapUIntV4(binary(ir.BinMul, e.erased, o.erased))
}
func (e ExprUIntV4) Div(o ExprUIntV4) ExprUIntV4 {
	return wrapUIntV4(binary(ir.BinDiv, e.erased, o.erased))
}

func (e ExprFloat) Add(o ExprFloat) ExprFloat {
	return wrapFloat(binary(ir.BinAdd, e.erased, o.erased))
}
func (e ExprFloat) Sub(o ExprFloat) ExprFloat {
	return wrapFloat(binary(ir.BinSub, e.erased, o.erased))
}
func (e ExprFloat) Mul(o ExprFloat) ExprFloat {
	return wrapFloat(binary(ir.BinMul, e.erased, o.erased))
}
func (e ExprFloat) Div(o ExprFloat) ExprFloat {
	return wrapFloat(binary(ir.BinDiv, e.erased, o.erased))
}

func (e ExprFloatV2) Add(o ExprFloatV2) ExprFloatV2 {
	return wrapFloatV2(binary(ir.BinAdd, e.erased, o.erased))
}
func (e ExprFloatV2) Sub(o ExprFloatV2) ExprFloatV2 {
	return wrapFloatV2(binary(ir.BinSub, e.erased, o.erased))
}
func (e ExprFloatV2) Mul(o ExprFloatV2) ExprFloatV2 {
	return wrapFloatV2(binary(ir.BinMul, e.erased, o.erased))
}
func (e ExprFloatV2) Div(o ExprFloatV2) ExprFloatV2 {
	return wrapFloatV2(binary(ir.BinDiv, e.erased, o.erased))
}

func (e ExprFloatV3) Add(o ExprFloatV3) ExprFloatV3 {
	return wrapFloatV3(binary(ir.BinAdd, e.erased, o.erased))
}
func (e ExprFloatV3) Sub(o ExprFloatV3) ExprFloatV3 {
	return wrapFloatV3(binary(ir.BinSub, e.erased, o.erased))
}
func (e ExprFloatV3) Mul(o ExprFloatV3) ExprFloatV3 {
	return wrapFloatV3(binary(ir.BinMul, e.erased, o.erased))
}
func (e ExprFloatV3) Div(o ExprFloatV3) ExprFloatV3 {
	return wrapFloatV3(binary(ir.BinDiv, e.erased, o.erased))
}

func (e ExprFloatV4) Add(o ExprFloatV4) ExprFloatV4 {
	return wrapFloatV4(binary(ir.BinAdd, e.erased, o.erased))
}
func (e ExprFloatV4) Sub(o ExprFloatV4) ExprFloatV4 {
	return wrapFloatV4(binary(ir.BinSub, e.erased, o.erased))
}
func (e ExprFloatV4) Mul(o ExprFloatV4) ExprFloatV4 {
	return wrapFloatV4(binary(ir.BinMul, e.erased, o.erased))
}
func (e ExprFloatV4) Div(o ExprFloatV4) ExprFloatV4 {
	return wrapFloatV4(binary(ir.BinDiv, e.erased, o.erased))
}

// Rem is defined for float only; the original crate never instantiates
// it for int/uint, so integer remainder has no dedicated operator sugar
// here. It builds an ir.BinRem node, which the glsl printer writes as the
// '%' operator.

func (e ExprFloat) Rem(o ExprFloat) ExprFloat {
	return wrapFloat(binary(ir.BinRem, e.erased, o.erased))
}
func (e ExprFloatV2) Rem(o ExprFloatV2) ExprFloatV2 {
	return wrapFloatV2(binary(ir.BinRem, e.erased, o.erased))
}
func (e ExprFloatV3) Rem(o ExprFloatV3) ExprFloatV3 {
	return wrapFloatV3(binary(ir.BinRem, e.erased, o.erased))
}
func (e ExprFloatV4) Rem(o ExprFloatV4) ExprFloatV4 {
	return wrapFloatV4(binary(ir.BinRem, e.erased, o.erased))
}

// AddL, SubL, MulL and DivL (RemL for float) are the (Expr<T>, T) half of
// the operator matrix: the original crate's impl_binop_Expr! macro
// instantiates each operator both for an Expr<T> right-hand side and for
// a bare T that gets lifted through Into<Expr<T>>. Go has no operator
// overloading and no way to overload a method by parameter type, so the
// literal-accepting form gets its own name rather than sharing Add/Sub/
// Mul/Div's; each just lifts its raw argument through the type's own
// literal constructor (Int/UInt/Float) and defers to the Expr form, so
// the resulting IR is identical either way.

func (e ExprInt) AddL(rhs int32) ExprInt { return e.Add(Int(rhs)) }
func (e ExprInt) SubL(rhs int32) ExprInt { return e.Sub(Int(rhs)) }
func (e ExprInt) MulL(rhs int32) ExprInt { return e.Mul(Int(rhs)) }
func (e ExprInt) DivL(rhs int32) ExprInt { return e.Div(Int(rhs)) }

func (e ExprUInt) AddL(rhs uint32) ExprUInt { return e.Add(UInt(rhs)) }
func (e ExprUInt) SubL(rhs uint32) ExprUInt { return e.Sub(UInt(rhs)) }
func (e ExprUInt) MulL(rhs uint32) ExprUInt { return e.Mul(UInt(rhs)) }
func (e ExprUInt) DivL(rhs uint32) ExprUInt { return e.Div(UInt(rhs)) }

func (e ExprFloat) AddL(rhs float32) ExprFloat { return e.Add(Float(rhs)) }
func (e ExprFloat) SubL(rhs float32) ExprFloat { return e.Sub(Float(rhs)) }
func (e ExprFloat) MulL(rhs float32) ExprFloat { return e.Mul(Float(rhs)) }
func (e ExprFloat) DivL(rhs float32) ExprFloat { return e.Div(Float(rhs)) }
func (e ExprFloat) RemL(rhs float32) ExprFloat { return e.Rem(Float(rhs)) }

// AddScalar, SubScalar, MulScalar and DivScalar (RemScalar for float
// vectors) are the scalar-with-vector half of the operator matrix: spec
// §4.1's "V2<f32> + f32" row. GLSL itself applies a vector-op-scalar
// binary directly, broadcasting the scalar across every component, so
// these build the same ir.Binary node a same-shape Add/Sub/Mul/Div would,
// just with a scalar right operand instead of a vector one.

func (e ExprIntV2) AddScalar(s ExprInt) ExprIntV2 { return wrapIntV2(binary(ir.BinAdd, e.erased, s.erased)) }
func (e ExprIntV2) SubScalar(s ExprInt) ExprIntV2 { return wrapIntV2(binary(ir.BinSub, e.erased, s.erased)) }
func (e ExprIntV2) MulScalar(s ExprInt) ExprIntV2 { return wrapIntV2(binary(ir.BinMul, e.erased, s.erased)) }
func (e ExprIntV2) DivScalar(s ExprInt) ExprIntV2 { return wrapIntV2(binary(ir.BinDiv, e.erased, s.erased)) }

func (e ExprIntV3) AddScalar(s ExprInt) ExprIntV3 { return wrapIntV3(binary(ir.BinAdd, e.erased, s.erased)) }
func (e ExprIntV3) SubScalar(s ExprInt) ExprIntV3 { return wrapIntV3(binary(ir.BinSub, e.erased, s.erased)) }
func (e ExprIntV3) MulScalar(s ExprInt) ExprIntV3 { return wrapIntV3(binary(ir.BinMul, e.erased, s.erased)) }
func (e ExprIntV3) DivScalar(s ExprInt) ExprIntV3 { return wrapIntV3(binary(ir.BinDiv, e.erased, s.erased)) }

func (e ExprIntV4) AddScalar(s ExprInt) ExprIntV4 { return wrapIntV4(binary(ir.BinAdd, e.erased, s.erased)) }
func (e ExprIntV4) SubScalar(s ExprInt) ExprIntV4 { return wrapIntV4(binary(ir.BinSub, e.erased, s.erased)) }
func (e ExprIntV4) MulScalar(s ExprInt) ExprIntV4 { return wrapIntV4(binary(ir.BinMul, e.erased, s.erased)) }
func (e ExprIntV4) DivScalar(s ExprInt) ExprIntV4 { return wrapIntV4(binary(ir.BinDiv, e.erased, s.erased)) }

func (e ExprUIntV2) AddScalar(s ExprUInt) ExprUIntV2 {
	return wrapUIntV2(binary(ir.BinAdd, e.erased, s.erased))
}
func (e ExprUIntV2) SubScalar(s ExprUInt) ExprUIntV2 {
	return wrapUIntV2(binary(ir.BinSub, e.erased, s.erased))
}
func (e ExprUIntV2) MulScalar(s ExprUInt) ExprUIntV2 {
	return wrapUIntV2(binary(ir.BinMul, e.erased, s.erased))
}
func (e ExprUIntV2) DivScalar(s ExprUInt) ExprUIntV2 {
	return wrapUIntV2(binary(ir.BinDiv, e.erased, s.erased))
}

func (e ExprUIntV3) AddScalar(s ExprUInt) ExprUIntV3 {
	return wrapUIntV3(binary(ir.BinAdd, e.erased, s.erased))
}
func (e ExprUIntV3) SubScalar(s ExprUInt) ExprUIntV3 {
	return wrapUIntV3(binary(ir.BinSub, e.erased, s.erased))
}
func (e ExprUIntV3) MulScalar(s ExprUInt) ExprUIntV3 {
	return wrapUIntV3(binary(ir.BinMul, e.erased, s.erased))
}
func (e ExprUIntV3) DivScalar(s ExprUInt) ExprUIntV3 {
	return wrapUIntV3(binary(ir.BinDiv, e.erased, s.erased))
}

func (e ExprUIntV4) AddScalar(s ExprUInt) ExprUIntV4 {
	return wrapUIntV4(binary(ir.BinAdd, e.erased, s.erased))
}
func (e ExprUIntV4) SubScalar(s ExprUInt) ExprUIntV4 {
	return wrapUIntV4(binary(ir.BinSub, e.erased, s.erased))
}
func (e ExprUIntV4) MulScalar(s ExprUInt) ExprUIntV4 {
	return wrapUIntV4(binary(ir.BinMul, e.erased, s.erased))
}
func (e ExprUIntV4) DivScalar(s ExprUInt) ExprUIntV4 {
	return wrapUIntV4(binary(ir.BinDiv, e.erased, s.erased))
}

func (e ExprFloatV2) AddScalar(s ExprFloat) ExprFloatV2 {
	return wrapFloatV2(binary(ir.BinAdd, e.erased, s.erased))
}
func (e ExprFloatV2) SubScalar(s ExprFloat) ExprFloatV2 {
	return wrapFloatV2(binary(ir.BinSub, e.erased, s.erased))
}
func (e ExprFloatV2) MulScalar(s ExprFloat) ExprFloatV2 {
	return wrapFloatV2(binary(ir.BinMul, e.erased, s.erased))
}
func (e ExprFloatV2) DivScalar(s ExprFloat) ExprFloatV2 {
	return wrapFloatV2(binary(ir.BinDiv, e.erased, s.erased))
}
func (e ExprFloatV2) RemScalar(s ExprFloat) ExprFloatV2 {
	return wrapFloatV2(binary(ir.BinRem, e.erased, s.erased))
}

func (e ExprFloatV3) AddScalar(s ExprFloat) ExprFloatV3 {
	return wrapFloatV3(binary(ir.BinAdd, e.erased, s.erased))
}
func (e ExprFloatV3) SubScalar(s ExprFloat) ExprFloatV3 {
	return wrapFloatV3(binary(ir.BinSub, e.erased, s.erased))
}
func (e ExprFloatV3) MulScalar(s ExprFloat) ExprFloatV3 {
	return wrapFloatV3(binary(ir.BinMul, e.erased, s.erased))
}
func (e ExprFloatV3) DivScalar(s ExprFloat) ExprFloatV3 {
	return wrapFloatV3(binary(ir.BinDiv, e.erased, s.erased))
}
func (e ExprFloatV3) RemScalar(s ExprFloat) ExprFloatV3 {
	return wrapFloatV3(binary(ir.BinRem, e.erased, s.erased))
}

func (e ExprFloatV4) AddScalar(s ExprFloat) ExprFloatV4 {
	return wrapFloatV4(binary(ir.BinAdd, e.erased, s.erased))
}
func (e ExprFloatV4) SubScalar(s ExprFloat) ExprFloatV4 {
	return wrapFloatV4(binary(ir.BinSub, e.erased, s.erased))
}
func (e ExprFloatV4) MulScalar(s ExprFloat) ExprFloatV4 {
	return wrapFloatV4(binary(ir.BinMul, e.erased, s.erased))
}
func (e ExprFloatV4) DivScalar(s ExprFloat) ExprFloatV4 {
	return wrapFloatV4(binary(ir.BinDiv, e.erased, s.erased))
}
func (e ExprFloatV4) RemScalar(s ExprFloat) ExprFloatV4 {
	return wrapFloatV4(binary(ir.BinRem, e.erased, s.erased))
}
