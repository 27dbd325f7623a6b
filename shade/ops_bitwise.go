package shade

import "github.com/gogpu/shade/ir"

// Or, And and Xor are logical operators defined only on scalar bool,
// mirroring the original crate's inherent and()/or()/xor() methods on
// Expr<bool>. BitOr, BitAnd and BitXor are the separate bitwise '|'/'&'/
// '^' operators the same crate also instantiates for scalar bool via its
// BitOr/BitAnd/BitXor trait impls, distinct from the logical methods
// above; bool vectors below only ever get the bitwise forms, matching the
// original (it has no and()/or()/xor() inherent methods on V2/V3/V4<bool>).

func (e ExprBool) Or(o ExprBool) ExprBool  { return wrapBool(binary(ir.BinOr, e.erased, o.erased)) }
func (e ExprBool) And(o ExprBool) ExprBool { return wrapBool(binary(ir.BinAnd, e.erased, o.erased)) }
func (e ExprBool) Xor(o ExprBool) ExprBool { return wrapBool(binary(ir.BinXor, e.erased, o.erased)) }

func (e ExprBool) BitOr(o ExprBool) ExprBool {
	return wrapBool(binary(ir.BinBitOr, e.erased, o.erased))
}
func (e ExprBool) BitAnd(o ExprBool) ExprBool {
	return wrapBool(binary(ir.BinBitAnd, e.erased, o.erased))
}
func (e ExprBool) BitXor(o ExprBool) ExprBool {
	return wrapBool(binary(ir.BinBitXor, e.erased, o.erased))
}

func (e ExprBoolV2) Or(o ExprBoolV2) ExprBoolV2 {
	return wrapBoolV2(binary(ir.BinBitOr, e.erased, o.erased))
}
func (e ExprBoolV2) And(o ExprBoolV2) ExprBoolV2 {
	return wrapBoolV2(binary(ir.BinBitAnd, e.erased, o.erased))
}
func (e ExprBoolV2) Xor(o ExprBoolV2) ExprBoolV2 {
	return wrapBoolV2(binary(ir.BinBitXor, e.erased, o.erased))
}

func (e ExprBoolV3) Or(o ExprBoolV3) ExprBoolV3 {
	return wrapBoolV3(binary(ir.BinBitOr, e.erased, o.erased))
}
func (e ExprBoolV3) And(o ExprBoolV3) ExprBoolV3 {
	return wrapBoolV3(binary(ir.BinBitAnd, e.erased, o.erased))
}
func (e ExprBoolV3) Xor(o ExprBoolV3) ExprBoolV3 {
	return wrapBoolV3(binary(ir.BinBitXor, e.erased, o.erased))
}

func (e ExprBoolV4) Or(o ExprBoolV4) ExprBoolV4 {
	return wrapBoolV4(binary(ir.BinBitOr, e.erased, o.erased))
}
func (e ExprBoolV4) And(o ExprBoolV4) ExprBoolV4 {
	return wrapBoolV4(binary(ir.BinBitAnd, e.erased, o.erased))
}
func (e ExprBoolV4) Xor(o ExprBoolV4) ExprBoolV4 {
	return wrapBoolV4(binary(ir.BinBitXor, e.erased, o.erased))
}
