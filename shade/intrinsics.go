package shade

import "github.com/gogpu/shade/ir"

// Floaty is every float scalar/vector shape: the type set most intrinsics
// in the closed library below are defined over.
type Floaty interface {
	ExprFloat | ExprFloatV2 | ExprFloatV3 | ExprFloatV4
	AnyExpr
}

// Numeric is every non-boolean scalar/vector shape.
type Numeric interface {
	ExprInt | ExprUInt | ExprFloat |
		ExprIntV2 | ExprIntV3 | ExprIntV4 |
		ExprUIntV2 | ExprUIntV3 | ExprUIntV4 |
		ExprFloatV2 | ExprFloatV3 | ExprFloatV4
	AnyExpr
}

// Integral is every integer scalar/vector shape.
type Integral interface {
	ExprInt | ExprUInt | ExprIntV2 | ExprIntV3 | ExprIntV4 | ExprUIntV2 | ExprUIntV3 | ExprUIntV4
	AnyExpr
}

func construct[T any](x argConstructible, k ir.ExprKind) T {
	return x.fromKind(k).(T)
}

func call1[T AnyExpr](name ir.Intrinsic, x T) T {
	k := ir.FunCall{Handle: ir.FunIntrinsic{Name: name}, Args: []ir.ErasedExpr{x.exprErased()}}
	return construct[T](any(x).(argConstructible), k)
}

func call2[T AnyExpr](name ir.Intrinsic, a, b T) T {
	k := ir.FunCall{Handle: ir.FunIntrinsic{Name: name}, Args: []ir.ErasedExpr{a.exprErased(), b.exprErased()}}
	return construct[T](any(a).(argConstructible), k)
}

func call3[T AnyExpr](name ir.Intrinsic, a, b, c T) T {
	k := ir.FunCall{Handle: ir.FunIntrinsic{Name: name}, Args: []ir.ErasedExpr{a.exprErased(), b.exprErased(), c.exprErased()}}
	return construct[T](any(a).(argConstructible), k)
}

// boolResult builds a scalar-bool-producing intrinsic call (isnan, isinf)
// over a float argument of any shape; the result is always a scalar bool,
// never a per-component vector, matching the original's signature.
func boolResult[T Floaty](name ir.Intrinsic, x T) ExprBool {
	return wrapBool(ir.FunCall{Handle: ir.FunIntrinsic{Name: name}, Args: []ir.ErasedExpr{x.exprErased()}})
}

// Trigonometric.

func Radians[T Floaty](x T) T { return call1(ir.IntrinRadians, x) }
func Degrees[T Floaty](x T) T { return call1(ir.IntrinDegrees, x) }
func Sin[T Floaty](x T) T     { return call1(ir.IntrinSin, x) }
func Cos[T Floaty](x T) T     { return call1(ir.IntrinCos, x) }
func Tan[T Floaty](x T) T     { return call1(ir.IntrinTan, x) }
func Asin[T Floaty](x T) T    { return call1(ir.IntrinAsin, x) }
func Acos[T Floaty](x T) T    { return call1(ir.IntrinAcos, x) }
func Atan[T Floaty](x T) T    { return call1(ir.IntrinAtan, x) }
func Atan2[T Floaty](y, x T) T {
	return call2(ir.IntrinAtan2, y, x)
}
func Sinh[T Floaty](x T) T   { return call1(ir.IntrinSinh, x) }
func Cosh[T Floaty](x T) T   { return call1(ir.IntrinCosh, x) }
func Tanh[T Floaty](x T) T   { return call1(ir.IntrinTanh, x) }
func Asinh[T Floaty](x T) T  { return call1(ir.IntrinAsinh, x) }
func Acosh[T Floaty](x T) T  { return call1(ir.IntrinAcosh, x) }
func Atanh[T Floaty](x T) T  { return call1(ir.IntrinAtanh, x) }

// Exponential.

func Pow[T Floaty](x, y T) T  { return call2(ir.IntrinPow, x, y) }
func Exp[T Floaty](x T) T     { return call1(ir.IntrinExp, x) }
func Exp2[T Floaty](x T) T    { return call1(ir.IntrinExp2, x) }
func Log[T Floaty](x T) T     { return call1(ir.IntrinLog, x) }
func Log2[T Floaty](x T) T    { return call1(ir.IntrinLog2, x) }
func Sqrt[T Floaty](x T) T    { return call1(ir.IntrinSqrt, x) }
func InverseSqrt[T Floaty](x T) T { return call1(ir.IntrinInverseSqrt, x) }

// Signed is every signed (non-unsigned) numeric shape: abs and sign are
// undefined for unsigned operands in GLSL, so they take this narrower set
// rather than Numeric.
type Signed interface {
	ExprInt | ExprFloat | ExprIntV2 | ExprIntV3 | ExprIntV4 | ExprFloatV2 | ExprFloatV3 | ExprFloatV4
	AnyExpr
}

// Common math.

func Abs[T Signed](x T) T          { return call1(ir.IntrinAbs, x) }
func Sign[T Signed](x T) T         { return call1(ir.IntrinSign, x) }
func Floor[T Floaty](x T) T        { return call1(ir.IntrinFloor, x) }
func Trunc[T Floaty](x T) T        { return call1(ir.IntrinTrunc, x) }
func Round[T Floaty](x T) T        { return call1(ir.IntrinRound, x) }
func RoundEven[T Floaty](x T) T    { return call1(ir.IntrinRoundEven, x) }
func Ceil[T Floaty](x T) T         { return call1(ir.IntrinCeil, x) }
func Fract[T Floaty](x T) T        { return call1(ir.IntrinFract, x) }
// Bounded is every numeric scalar/vector shape plus scalar bool: the
// type set min, max and clamp accept.
type Bounded interface {
	ExprInt | ExprUInt | ExprFloat | ExprBool |
		ExprIntV2 | ExprIntV3 | ExprIntV4 |
		ExprUIntV2 | ExprUIntV3 | ExprUIntV4 |
		ExprFloatV2 | ExprFloatV3 | ExprFloatV4
	AnyExpr
}

func Min[T Bounded](a, b T) T      { return call2(ir.IntrinMin, a, b) }
func Max[T Bounded](a, b T) T      { return call2(ir.IntrinMax, a, b) }
func Clamp[T Bounded](x, lo, hi T) T { return call3(ir.IntrinClamp, x, lo, hi) }
func Mix[T Floaty](a, b, t T) T    { return call3(ir.IntrinMix, a, b, t) }
func Step[T Floaty](edge, x T) T   { return call2(ir.IntrinStep, edge, x) }
func Smoothstep[T Floaty](lo, hi, x T) T { return call3(ir.IntrinSmoothstep, lo, hi, x) }
func IsNan[T Floaty](x T) ExprBool { return boolResult(ir.IntrinIsNan, x) }
func IsInf[T Floaty](x T) ExprBool { return boolResult(ir.IntrinIsInf, x) }
func Fma[T Floaty](a, b, c T) T    { return call3(ir.IntrinFma, a, b, c) }

func FloatBitsToInt(x ExprFloat) ExprInt     { return wrapInt(call1bits(ir.IntrinFloatBitsToInt, x)) }
func FloatBitsToUint(x ExprFloat) ExprUInt   { return wrapUInt(call1bits(ir.IntrinFloatBitsToUint, x)) }
func IntBitsToFloat(x ExprInt) ExprFloat     { return wrapFloat(call1bits(ir.IntrinIntBitsToFloat, x)) }
func UintBitsToFloat(x ExprUInt) ExprFloat   { return wrapFloat(call1bits(ir.IntrinUintBitsToFloat, x)) }

func call1bits(name ir.Intrinsic, x AnyExpr) ir.ExprKind {
	return ir.FunCall{Handle: ir.FunIntrinsic{Name: name}, Args: []ir.ErasedExpr{x.exprErased()}}
}

// Float packing.

func PackSnorm2x16(v ExprFloatV2) ExprUInt   { return wrapUInt(call1bits(ir.IntrinPackSnorm2x16, v)) }
func UnpackSnorm2x16(v ExprUInt) ExprFloatV2 { return wrapFloatV2(call1bits(ir.IntrinUnpackSnorm2x16, v)) }
func PackUnorm2x16(v ExprFloatV2) ExprUInt   { return wrapUInt(call1bits(ir.IntrinPackUnorm2x16, v)) }
func UnpackUnorm2x16(v ExprUInt) ExprFloatV2 { return wrapFloatV2(call1bits(ir.IntrinUnpackUnorm2x16, v)) }
func PackHalf2x16(v ExprFloatV2) ExprUInt    { return wrapUInt(call1bits(ir.IntrinPackHalf2x16, v)) }
func UnpackHalf2x16(v ExprUInt) ExprFloatV2  { return wrapFloatV2(call1bits(ir.IntrinUnpackHalf2x16, v)) }

// Geometry.

func Length[T Floaty](x T) ExprFloat     { return wrapFloat(call1bits(ir.IntrinLength, x)) }
func Distance[T Floaty](a, b T) ExprFloat {
	return wrapFloat(ir.FunCall{Handle: ir.FunIntrinsic{Name: ir.IntrinDistance}, Args: []ir.ErasedExpr{a.exprErased(), b.exprErased()}})
}
func Dot[T Floaty](a, b T) ExprFloat {
	return wrapFloat(ir.FunCall{Handle: ir.FunIntrinsic{Name: ir.IntrinDot}, Args: []ir.ErasedExpr{a.exprErased(), b.exprErased()}})
}
func Cross(a, b ExprFloatV3) ExprFloatV3 { return call2(ir.IntrinCross, a, b) }
func Normalize[T Floaty](x T) T          { return call1(ir.IntrinNormalize, x) }
func Faceforward[T Floaty](n, i, nref T) T { return call3(ir.IntrinFaceforward, n, i, nref) }
func Reflect[T Floaty](i, n T) T         { return call2(ir.IntrinReflect, i, n) }
func Refract[T Floaty](i, n, eta ExprFloat) T {
	k := ir.FunCall{Handle: ir.FunIntrinsic{Name: ir.IntrinRefract}, Args: []ir.ErasedExpr{i.exprErased(), n.exprErased(), eta.erased}}
	return construct[T](any(i).(argConstructible), k)
}

// Relational vector ops compare two same-shape numeric vectors
// component-wise and yield a bool vector of matching arity. Named by
// arity suffix, the same convention the swizzle family uses, since the
// result shape is fixed by the input shape rather than by a type
// parameter Go can infer on its own.

func relVec(name ir.Intrinsic, a, b ir.ErasedExpr) ir.ExprKind {
	return ir.FunCall{Handle: ir.FunIntrinsic{Name: name}, Args: []ir.ErasedExpr{a, b}}
}

type NumericV2 interface {
	ExprIntV2 | ExprUIntV2 | ExprFloatV2
	AnyExpr
}
type NumericV3 interface {
	ExprIntV3 | ExprUIntV3 | ExprFloatV3
	AnyExpr
}
type NumericV4 interface {
	ExprIntV4 | ExprUIntV4 | ExprFloatV4
	AnyExpr
}

func LessThan2[T NumericV2](a, b T) ExprBoolV2 {
	return wrapBoolV2(relVec(ir.IntrinVLessThan, a.exprErased(), b.exprErased()))
}
func LessThan3[T NumericV3](a, b T) ExprBoolV3 {
	return wrapBoolV3(relVec(ir.IntrinVLessThan, a.exprErased(), b.exprErased()))
}
func LessThan4[T NumericV4](a, b T) ExprBoolV4 {
	return wrapBoolV4(relVec(ir.IntrinVLessThan, a.exprErased(), b.exprErased()))
}

func LessThanEqual2[T NumericV2](a, b T) ExprBoolV2 {
	return wrapBoolV2(relVec(ir.IntrinVLessThanEqual, a.exprErased(), b.exprErased()))
}
func LessThanEqual3[T NumericV3](a, b T) ExprBoolV3 {
	return wrapBoolV3(relVec(ir.IntrinVLessThanEqual, a.exprErased(), b.exprErased()))
}
func LessThanEqual4[T NumericV4](a, b T) ExprBoolV4 {
	return wrapBoolV4(relVec(ir.IntrinVLessThanEqual, a.exprErased(), b.exprErased()))
}

func GreaterThan2[T NumericV2](a, b T) ExprBoolV2 {
	return wrapBoolV2(relVec(ir.IntrinVGreaterThan, a.exprErased(), b.exprErased()))
}
func GreaterThan3[T NumericV3](a, b T) ExprBoolV3 {
	return wrapBoolV3(relVec(ir.IntrinVGreaterThan, a.exprErased(), b.exprErased()))
}
func GreaterThan4[T NumericV4](a, b T) ExprBoolV4 {
	return wrapBoolV4(relVec(ir.IntrinVGreaterThan, a.exprErased(), b.exprErased()))
}

func GreaterThanEqual2[T NumericV2](a, b T) ExprBoolV2 {
	return wrapBoolV2(relVec(ir.IntrinVGreaterThanEqual, a.exprErased(), b.exprErased()))
}
func GreaterThanEqual3[T NumericV3](a, b T) ExprBoolV3 {
	return wrapBoolV3(relVec(ir.IntrinVGreaterThanEqual, a.exprErased(), b.exprErased()))
}
func GreaterThanEqual4[T NumericV4](a, b T) ExprBoolV4 {
	return wrapBoolV4(relVec(ir.IntrinVGreaterThanEqual, a.exprErased(), b.exprErased()))
}

func VecEqual2[T NumericV2](a, b T) ExprBoolV2 {
	return wrapBoolV2(relVec(ir.IntrinVEqual, a.exprErased(), b.exprErased()))
}
func VecEqual3[T NumericV3](a, b T) ExprBoolV3 {
	return wrapBoolV3(relVec(ir.IntrinVEqual, a.exprErased(), b.exprErased()))
}
func VecEqual4[T NumericV4](a, b T) ExprBoolV4 {
	return wrapBoolV4(relVec(ir.IntrinVEqual, a.exprErased(), b.exprErased()))
}

func VecNotEqual2[T NumericV2](a, b T) ExprBoolV2 {
	return wrapBoolV2(relVec(ir.IntrinVNotEqual, a.exprErased(), b.exprErased()))
}
func VecNotEqual3[T NumericV3](a, b T) ExprBoolV3 {
	return wrapBoolV3(relVec(ir.IntrinVNotEqual, a.exprErased(), b.exprErased()))
}
func VecNotEqual4[T NumericV4](a, b T) ExprBoolV4 {
	return wrapBoolV4(relVec(ir.IntrinVNotEqual, a.exprErased(), b.exprErased()))
}

func VAny2(x ExprBoolV2) ExprBool { return wrapBool(call1bits(ir.IntrinVAny, x)) }
func VAny3(x ExprBoolV3) ExprBool { return wrapBool(call1bits(ir.IntrinVAny, x)) }
func VAny4(x ExprBoolV4) ExprBool { return wrapBool(call1bits(ir.IntrinVAny, x)) }

func VAll2(x ExprBoolV2) ExprBool { return wrapBool(call1bits(ir.IntrinVAll, x)) }
func VAll3(x ExprBoolV3) ExprBool { return wrapBool(call1bits(ir.IntrinVAll, x)) }
func VAll4(x ExprBoolV4) ExprBool { return wrapBool(call1bits(ir.IntrinVAll, x)) }

func VNot2(x ExprBoolV2) ExprBoolV2 { return call1(ir.IntrinVNot, x) }
func VNot3(x ExprBoolV3) ExprBoolV3 { return call1(ir.IntrinVNot, x) }
func VNot4(x ExprBoolV4) ExprBoolV4 { return call1(ir.IntrinVNot, x) }

// Integer.

func BitfieldExtract[T Integral](value T, offset, bits ExprInt) T {
	k := ir.FunCall{Handle: ir.FunIntrinsic{Name: ir.IntrinBitfieldExtract}, Args: []ir.ErasedExpr{value.exprErased(), offset.erased, bits.erased}}
	return construct[T](any(value).(argConstructible), k)
}
func BitfieldReverse[T Integral](x T) T { return call1(ir.IntrinBitfieldReverse, x) }
func BitCount[T Integral](x T) ExprInt  { return wrapInt(call1bits(ir.IntrinBitCount, x)) }
func FindLSB[T Integral](x T) ExprInt   { return wrapInt(call1bits(ir.IntrinFindLSB, x)) }
func FindMSB[T Integral](x T) ExprInt   { return wrapInt(call1bits(ir.IntrinFindMSB, x)) }

func BitfieldInsert[T Integral](base, insert T, offset, bits ExprInt) T {
	k := ir.FunCall{Handle: ir.FunIntrinsic{Name: ir.IntrinBitfieldInsert}, Args: []ir.ErasedExpr{
		base.exprErased(), insert.exprErased(), offset.erased, bits.erased,
	}}
	return construct[T](any(base).(argConstructible), k)
}

// UaddCarry and UsubBorrow write their carry/borrow flag into carry or
// borrow respectively and return the sum/difference, matching GLSL's out-parameter signature
// by taking the output Var by value and assigning it as a side effect.
func UaddCarry[R Returnable](s *Scope[R], a, b ExprUInt, carry VarUInt) ExprUInt {
	return uintCarryCall(s, ir.IntrinUaddCarry, a, b, carry)
}
func UsubBorrow[R Returnable](s *Scope[R], a, b ExprUInt, borrow VarUInt) ExprUInt {
	return uintCarryCall(s, ir.IntrinUsubBorrow, a, b, borrow)
}

func uintCarryCall[R Returnable](s *Scope[R], name ir.Intrinsic, a, b ExprUInt, out VarUInt) ExprUInt {
	result := s.VarUInt(wrapUInt(ir.FunCall{
		Handle: ir.FunIntrinsic{Name: name},
		Args:   []ir.ErasedExpr{a.erased, b.erased, out.assignTarget()},
	}))
	return result.Get()
}

// UmulExtended and ImulExtended write the low/high halves of a widening
// multiply into lo/hi and return nothing, matching GLSL's two-out-param
// signature.
func UmulExtended[R Returnable](s *Scope[R], a, b ExprUInt, hi, lo VarUInt) {
	multExtended(s, ir.IntrinUmulExtended, a.erased, b.erased, hi, lo)
}
func ImulExtended[R Returnable](s *Scope[R], a, b ExprInt, hi, lo VarInt) {
	multExtended(s, ir.IntrinImulExtended, a.erased, b.erased, hi, lo)
}

func multExtended[R Returnable](s *Scope[R], name ir.Intrinsic, a, b ir.ErasedExpr, hi, lo AssignTarget) {
	s.scope.Instructions = append(s.scope.Instructions, ir.ScopeInstr{
		Kind: ir.ExprStmt{Expr: ir.ErasedExpr{Kind: ir.FunCall{
			Handle: ir.FunIntrinsic{Name: name},
			Args:   []ir.ErasedExpr{a, b, hi.assignTarget(), lo.assignTarget()},
		}}},
	})
}

// Frexp and Ldexp split/combine a float into significand and
// power-of-two exponent, matching GLSL's frexp(x, out exp)/ldexp(x, exp).
func Frexp[T Floaty](x T, exp VarInt) T {
	k := ir.FunCall{Handle: ir.FunIntrinsic{Name: ir.IntrinFrexp}, Args: []ir.ErasedExpr{x.exprErased(), exp.assignTarget()}}
	return construct[T](any(x).(argConstructible), k)
}
func Ldexp[T Floaty](x T, exp ExprInt) T {
	k := ir.FunCall{Handle: ir.FunIntrinsic{Name: ir.IntrinLdexp}, Args: []ir.ErasedExpr{x.exprErased(), exp.erased}}
	return construct[T](any(x).(argConstructible), k)
}

// Geometry-shader emission. These have no result: they are statements,
// valid only inside a geometry shader's main function.

func exprStmt[R Returnable](s *Scope[R], name ir.Intrinsic) {
	s.scope.Instructions = append(s.scope.Instructions, ir.ScopeInstr{
		Kind: ir.ExprStmt{Expr: ir.ErasedExpr{Kind: ir.FunCall{Handle: ir.FunIntrinsic{Name: name}}}},
	})
}

func exprStmt1[R Returnable](s *Scope[R], name ir.Intrinsic, a ir.ErasedExpr) {
	s.scope.Instructions = append(s.scope.Instructions, ir.ScopeInstr{
		Kind: ir.ExprStmt{Expr: ir.ErasedExpr{Kind: ir.FunCall{Handle: ir.FunIntrinsic{Name: name}, Args: []ir.ErasedExpr{a}}}},
	})
}

func EmitVertex[R Returnable](s *Scope[R])   { exprStmt(s, ir.IntrinEmitVertex) }
func EndPrimitive[R Returnable](s *Scope[R]) { exprStmt(s, ir.IntrinEndPrimitive) }

// EmitStreamVertex and EndStreamPrimitive are the multi-stream geometry
// shader variants, taking the target stream index as their sole argument.
func EmitStreamVertex[R Returnable](s *Scope[R], stream ExprInt) {
	exprStmt1(s, ir.IntrinEmitStreamVertex, stream.erased)
}
func EndStreamPrimitive[R Returnable](s *Scope[R], stream ExprInt) {
	exprStmt1(s, ir.IntrinEndStreamPrimitive, stream.erased)
}

// Fragment derivatives.

func DFdx[T Floaty](x T) T           { return call1(ir.IntrinDFdx, x) }
func DFdy[T Floaty](x T) T           { return call1(ir.IntrinDFdy, x) }
func DFdxFine[T Floaty](x T) T       { return call1(ir.IntrinDFdxFine, x) }
func DFdyFine[T Floaty](x T) T       { return call1(ir.IntrinDFdyFine, x) }
func DFdxCoarse[T Floaty](x T) T     { return call1(ir.IntrinDFdxCoarse, x) }
func DFdyCoarse[T Floaty](x T) T     { return call1(ir.IntrinDFdyCoarse, x) }
func Fwidth[T Floaty](x T) T         { return call1(ir.IntrinFwidth, x) }
func FwidthFine[T Floaty](x T) T     { return call1(ir.IntrinFwidthFine, x) }
func FwidthCoarse[T Floaty](x T) T   { return call1(ir.IntrinFwidthCoarse, x) }

// InterpolateAtCentroid, InterpolateAtSample and InterpolateAtOffset
// re-evaluate a fragment input's interpolation at a non-default location;
// valid only when v is itself an input reference, which the type system
// here does not distinguish from any other Floaty value.
func InterpolateAtCentroid[T Floaty](v T) T { return call1(ir.IntrinInterpolateAtCentroid, v) }
func InterpolateAtSample[T Floaty](v T, sample ExprInt) T {
	k := ir.FunCall{Handle: ir.FunIntrinsic{Name: ir.IntrinInterpolateAtSample}, Args: []ir.ErasedExpr{v.exprErased(), sample.erased}}
	return construct[T](any(v).(argConstructible), k)
}
func InterpolateAtOffset[T Floaty](v T, offset ExprFloatV2) T {
	k := ir.FunCall{Handle: ir.FunIntrinsic{Name: ir.IntrinInterpolateAtOffset}, Args: []ir.ErasedExpr{v.exprErased(), offset.erased}}
	return construct[T](any(v).(argConstructible), k)
}

// Invocation barriers. Statements, valid in tessellation control and
// compute-adjacent stages only.

func Barrier[R Returnable](s *Scope[R])             { exprStmt(s, ir.IntrinBarrier) }
func MemoryBarrier[R Returnable](s *Scope[R])       { exprStmt(s, ir.IntrinMemoryBarrier) }
func MemoryBarrierBuffer[R Returnable](s *Scope[R]) { exprStmt(s, ir.IntrinMemoryBarrierBuffer) }
func MemoryBarrierShared[R Returnable](s *Scope[R]) { exprStmt(s, ir.IntrinMemoryBarrierShared) }
func MemoryBarrierImage[R Returnable](s *Scope[R])  { exprStmt(s, ir.IntrinMemoryBarrierImage) }
func GroupMemoryBarrier[R Returnable](s *Scope[R])  { exprStmt(s, ir.IntrinGroupMemoryBarrier) }

// Group predicates.

func AnyInvocation(x ExprBool) ExprBool       { return call1(ir.IntrinAnyInvocation, x) }
func AllInvocations(x ExprBool) ExprBool      { return call1(ir.IntrinAllInvocations, x) }
func AllInvocationsEqual(x ExprBool) ExprBool { return call1(ir.IntrinAllInvocationsEqual, x) }
