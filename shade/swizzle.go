package shade

import "github.com/gogpu/shade/ir"

// Sel2, Sel3 and Sel4 restrict swizzle selectors to the components a base
// vector of that arity actually has, so e.g. a V2 cannot be swizzled by Z
// or W at compile time.
//
// The original this DSL follows always returns a vector of the base's own
// arity from a swizzle regardless of how many components were selected (a
// quirk of its Swizzlable<S> trait). Swizzle output here instead matches
// the selector count, the way GLSL itself behaves: one component yields a
// scalar, two yield a vec2, and so on.
type Sel2 ir.SwizzleSelector

const (
	Sel2X Sel2 = Sel2(ir.SwizzleX)
	Sel2Y Sel2 = Sel2(ir.SwizzleY)
)

type Sel3 ir.SwizzleSelector

const (
	Sel3X Sel3 = Sel3(ir.SwizzleX)
	Sel3Y Sel3 = Sel3(ir.SwizzleY)
	Sel3Z Sel3 = Sel3(ir.SwizzleZ)
)

type Sel4 ir.SwizzleSelector

const (
	Sel4X Sel4 = Sel4(ir.SwizzleX)
	Sel4Y Sel4 = Sel4(ir.SwizzleY)
	Sel4Z Sel4 = Sel4(ir.SwizzleZ)
	Sel4W Sel4 = Sel4(ir.SwizzleW)
)

func swizzle(base ir.ErasedExpr, sels ...ir.SwizzleSelector) ir.ExprKind {
	return ir.Swizzle{Base: base, Selectors: sels}
}

// Two-component vectors.

func (e ExprIntV2) Swizzle1(a Sel2) ExprInt {
	return wrapInt(swizzle(e.erased, ir.SwizzleSelector(a)))
}
func (e ExprIntV2) Swizzle2(a, b Sel2) ExprIntV2 {
	return wrapIntV2(swizzle(e.erased, ir.SwizzleSelector(a), ir.SwizzleSelector(b)))
}

func (e ExprUIntV2) Swizzle1(a Sel2) ExprUInt {
	return wrapUInt(swizzle(e.erased, ir.SwizzleSelector(a)))
}
func (e ExprUIntV2) Swizzle2(a, b Sel2) ExprUIntV2 {
	return wrapUIntV2(swizzle(e.erased, ir.SwizzleSelector(a), ir.SwizzleSelector(b)))
}

func (e ExprFloatV2) Swizzle1(a Sel2) ExprFloat {
	return wrapFloat(swizzle(e.erased, ir.SwizzleSelector(a)))
}
func (e ExprFloatV2) Swizzle2(a, b Sel2) ExprFloatV2 {
	return wrapFloatV2(swizzle(e.erased, ir.SwizzleSelector(a), ir.SwizzleSelector(b)))
}

func (e ExprBoolV2) Swizzle1(a Sel2) ExprBool {
	return wrapBool(swizzle(e.erased, ir.SwizzleSelector(a)))
}
func (e ExprBoolV2) Swizzle2(a, b Sel2) ExprBoolV2 {
	return wrapBoolV2(swizzle(e.erased, ir.SwizzleSelector(a), ir.SwizzleSelector(b)))
}

// Three-component vectors.

func (e ExprIntV3) Swizzle1(a Sel3) ExprInt {
	return wrapInt(swizzle(e.erased, ir.SwizzleSelector(a)))
}
func (e ExprIntV3) Swizzle2(a, b Sel3) ExprIntV2 {
	return wrapIntV2(swizzle(e.erased, ir.SwizzleSelector(a), ir.SwizzleSelector(b)))
}
func (e ExprIntV3) Swizzle3(a, b, c Sel3) ExprIntV3 {
	return wrapIntV3(swizzle(e.erased, ir.SwizzleSelector(a), ir.SwizzleSelector(b), ir.SwizzleSelector(c)))
}

func (e ExprUIntV3) Swizzle1(a Sel3) ExprUInt {
	return wrapUInt(swizzle(e.erased, ir.SwizzleSelector(a)))
}
func (e ExprUIntV3) Swizzle2(a, b Sel3) ExprUIntV2 {
	return wrapUIntV2(swizzle(e.erased, ir.SwizzleSelector(a), ir.SwizzleSelector(b)))
}
func (e ExprUIntV3) Swizzle3(a, b, c Sel3) ExprUIntV3 {
	return wrapUIntV3(swizzle(e.erased, ir.SwizzleSelector(a), ir.SwizzleSelector(b), ir.SwizzleSelector(c)))
}

func (e ExprFloatV3) Swizzle1(a Sel3) ExprFloat {
	return wrapFloat(swizzle(e.erased, ir.SwizzleSelector(a)))
}
func (e ExprFloatV3) Swizzle2(a, b Sel3) ExprFloatV2 {
	return wrapFloatV2(swizzle(e.erased, ir.SwizzleSelector(a), ir.SwizzleSelector(b)))
}
func (e ExprFloatV3) Swizzle3(a, b, c Sel3) ExprFloatV3 {
	return wrapFloatV3(swizzle(e.erased, ir.SwizzleSelector(a), ir.SwizzleSelector(b), ir.SwizzleSelector(c)))
}

func (e ExprBoolV3) Swizzle1(a Sel3) ExprBool {
	return wrapBool(swizzle(e.erased, ir.SwizzleSelector(a)))
}
func (e ExprBoolV3) Swizzle2(a, b Sel3) ExprBoolV2 {
	return wrapBoolV2(swizzle(e.erased, ir.SwizzleSelector(a), ir.SwizzleSelector(b)))
}
func (e ExprBoolV3) Swizzle3(a, b, c Sel3) ExprBoolV3 {
	return wrapBoolV3(swizzle(e.erased, ir.SwizzleSelector(a), ir.SwizzleSelector(b), ir.SwizzleSelector(c)))
}

// Four-component vectors.

func (e ExprIntV4) Swizzle1(a Sel4) ExprInt {
	return wrapInt(swizzle(e.erased, ir.SwizzleSelector(a)))
}
func (e ExprIntV4) Swizzle2(a, b Sel4) ExprIntV2 {
	return wrapIntV2(swizzle(e.erased, ir.SwizzleSelector(a), ir.SwizzleSelector(b)))
}
func (e ExprIntV4) Swizzle3(a, b, c Sel4) ExprIntV3 {
	return wrapIntV3(swizzle(e.erased, ir.SwizzleSelector(a), ir.SwizzleSelector(b), ir.SwizzleSelector(c)))
}
func (e ExprIntV4) Swizzle4(a, b, c, d Sel4) ExprIntV4 {
	return wrapIntV4(swizzle(e.erased, ir.SwizzleSelector(a), ir.SwizzleSelector(b), ir.SwizzleSelector(c), ir.SwizzleSelector(d)))
}

func (e ExprUIntV4) Swizzle1(a Sel4) ExprUInt {
	return wrapUInt(swizzle(e.erased, ir.SwizzleSelector(a)))
}
func (e ExprUIntV4) Swizzle2(a, b Sel4) ExprUIntV2 {
	return wrapUIntV2(swizzle(e.erased, ir.SwizzleSelector(a), ir.SwizzleSelector(b)))
}
func (e ExprUIntV4) Swizzle3(a, b, c Sel4) ExprUIntV3 {
	return wrapUIntV3(swizzle(e.erased, ir.SwizzleSelector(a), ir.SwizzleSelector(b), ir.SwizzleSelector(c)))
}
func (e ExprUIntV4) Swizzle4(a, b, c, d Sel4) ExprUIntV4 {
	return wrapUIntV4(swizzle(e.erased, ir.SwizzleSelector(a), ir.SwizzleSelector(b), ir.SwizzleSelector(c), ir.SwizzleSelector(d)))
}

func (e ExprFloatV4) Swizzle1(a Sel4) ExprFloat {
	return wrapFloat(swizzle(e.erased, ir.SwizzleSelector(a)))
}
func (e ExprFloatV4) Swizzle2(a, b Sel4) ExprFloatV2 {
	return wrapFloatV2(swizzle(e.erased, ir.SwizzleSelector(a), ir.SwizzleSelector(b)))
}
func (e ExprFloatV4) Swizzle3(a, b, c Sel4) ExprFloatV3 {
	return wrapFloatV3(swizzle(e.erased, ir.SwizzleSelector(a), ir.SwizzleSelector(b), ir.SwizzleSelector(c)))
}
func (e ExprFloatV4) Swizzle4(a, b, c, d Sel4) ExprFloatV4 {
	return wrapFloatV4(swizzle(e.erased, ir.SwizzleSelector(a), ir.SwizzleSelector(b), ir.SwizzleSelector(c), ir.SwizzleSelector(d)))
}

func (e ExprBoolV4) Swizzle1(a Sel4) ExprBool {
	return wrapBool(swizzle(e.erased, ir.SwizzleSelector(a)))
}
func (e ExprBoolV4) Swizzle2(a, b Sel4) ExprBoolV2 {
	return wrapBoolV2(swizzle(e.erased, ir.SwizzleSelector(a), ir.SwizzleSelector(b)))
}
func (e ExprBoolV4) Swizzle3(a, b, c Sel4) ExprBoolV3 {
	return wrapBoolV3(swizzle(e.erased, ir.SwizzleSelector(a), ir.SwizzleSelector(b), ir.SwizzleSelector(c)))
}
func (e ExprBoolV4) Swizzle4(a, b, c, d Sel4) ExprBoolV4 {
	return wrapBoolV4(swizzle(e.erased, ir.SwizzleSelector(a), ir.SwizzleSelector(b), ir.SwizzleSelector(c), ir.SwizzleSelector(d)))
}
