package shade

import "github.com/gogpu/shade/ir"

// Shl and Shr are defined only on the two integer types, per spec's
// resolution of the float-shift open question: GLSL disallows shifting a
// float, so there is no Shl/Shr on ExprFloat or its vectors even though
// the upstream crate's impl_binshifts_Expr! macro instantiates them for
// f32 too. The right-hand operand is always ExprUInt regardless of the
// left-hand type, matching impl_binshift_Expr!'s single `Expr<u32>`
// parameter shared across every shiftable base type, plus the literal
// u32 form (ShlL/ShrL) for the macro's `rhs: u32` overload.

func (e ExprInt) Shl(o ExprUInt) ExprInt { return wrapInt(binary(ir.BinShl, e.erased, o.erased)) }
func (e ExprInt) Shr(o ExprUInt) ExprInt { return wrapInt(binary(ir.BinShr, e.erased, o.erased)) }
func (e ExprInt) ShlL(bits uint32) ExprInt { return e.Shl(UInt(bits)) }
func (e ExprInt) ShrL(bits uint32) ExprInt { return e.Shr(UInt(bits)) }

func (e ExprIntV2) Shl(o ExprUInt) ExprIntV2 {
	return wrapIntV2(binary(ir.BinShl, e.erased, o.erased))
}
func (e ExprIntV2) Shr(o ExprUInt) ExprIntV2 {
	return wrapIntV2(binary(ir.BinShr, e.erased, o.erased))
}
func (e ExprIntV2) ShlL(bits uint32) ExprIntV2 { return e.Shl(UInt(bits)) }
func (e ExprIntV2) ShrL(bits uint32) ExprIntV2 { return e.Shr(UInt(bits)) }

func (e ExprIntV3) Shl(o ExprUInt) ExprIntV3 {
	return wrapIntV3(binary(ir.BinShl, e.erased, o.erased))
}
func (e ExprIntV3) Shr(o ExprUInt) ExprIntV3 {
	return wrapIntV3(binary(ir.BinShr, e.erased, o.erased))
}
func (e ExprIntV3) ShlL(bits uint32) ExprIntV3 { return e.Shl(UInt(bits)) }
func (e ExprIntV3) ShrL(bits uint32) ExprIntV3 { return e.Shr(UInt(bits)) }

func (e ExprIntV4) Shl(o ExprUInt) ExprIntV4 {
	return wrapIntV4(binary(ir.BinShl, e.erased, o.erased))
}
func (e ExprIntV4) Shr(o ExprUInt) ExprIntV4 {
	return wrapIntV4(binary(ir.BinShr, e.erased, o.erased))
}
func (e ExprIntV4) ShlL(bits uint32) ExprIntV4 { return e.Shl(UInt(bits)) }
func (e ExprIntV4) ShrL(bits uint32) ExprIntV4 { return e.Shr(UInt(bits)) }

func (e ExprUInt) Shl(o ExprUInt) ExprUInt { return wrapUInt(binary(ir.BinShl, e.erased, o.erased)) }
func (e ExprUInt) Shr(o ExprUInt) ExprUInt { return wrapUInt(binary(ir.BinShr, e.erased, o.erased)) }
func (e ExprUInt) ShlL(bits uint32) ExprUInt { return e.Shl(UInt(bits)) }
func (e ExprUInt) ShrL(bits uint32) ExprUInt { return e.Shr(UInt(bits)) }

func (e ExprUIntV2) Shl(o ExprUInt) ExprUIntV2 {
	return wrapUIntV2(binary(ir.BinShl, e.erased, o.erased))
}
func (e ExprUIntV2) Shr(o ExprUInt) ExprUIntV2 {
	return wrapUIntV2(binary(ir.BinShr, e.erased, o.erased))
}
func (e ExprUIntV2) ShlL(bits uint32) ExprUIntV2 { return e.Shl(UInt(bits)) }
func (e ExprUIntV2) ShrL(bits uint32) ExprUIntV2 { return e.Shr(UInt(bits)) }

func (e ExprUIntV3) Shl(o ExprUInt) ExprUIntV3 {
	return wrapUIntV3(binary(ir.BinShl, e.erased, o.erased))
}
func (e ExprUIntV3) Shr(o ExprUInt) ExprUIntV3 {
	return wrapUIntV3(binary(ir.BinShr, e.erased, o.erased))
}
func (e ExprUIntV3) ShlL(bits uint32) ExprUIntV3 { return e.Shl(UInt(bits)) }
func (e ExprUIntV3) ShrL(bits uint32) ExprUIntV3 { return e.Shr(UInt(bits)) }

func (e ExprUIntV4) Shl(o ExprUInt) ExprUIntV4 {
	return wrapUIntV4(binary(ir.BinShl, e.erased, o.erased))
}
func (e ExprUIntV4) Shr(o ExprUInt) ExprUIntV4 {
	return wrapUIntV4(binary(ir.BinShr, e.erased, o.erased))
}
func (e ExprUIntV4) ShlL(bits uint32) ExprUIntV4 { return e.Shl(UInt(bits)) }
func (e ExprUIntV4) ShrL(bits uint32) ExprUIntV4 { return e.Shr(UInt(bits)) }
