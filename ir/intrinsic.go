package ir

// Intrinsic is a named entry in the closed library of intrinsic
// functions. Each value lowers to FunCall{FunIntrinsic{Name: value}, args}
// and the printer emits it as Name(arg, arg, ...), with Name taken from
// GLSLName.
type Intrinsic uint16

const (
	// Trigonometric.
	IntrinSin Intrinsic = iota
	IntrinCos
	IntrinTan
	IntrinAsin
	IntrinAcos
	IntrinAtan
	IntrinAtan2
	IntrinSinh
	IntrinCosh
	IntrinTanh
	IntrinAsinh
	IntrinAcosh
	IntrinAtanh
	IntrinRadians
	IntrinDegrees

	// Exponential.
	IntrinPow
	IntrinExp
	IntrinExp2
	IntrinLog
	IntrinLog2
	IntrinSqrt
	IntrinInverseSqrt

	// Common math.
	IntrinAbs
	IntrinSign
	IntrinFloor
	IntrinTrunc
	IntrinRound
	IntrinRoundEven
	IntrinCeil
	IntrinFract
	IntrinMin
	IntrinMax
	IntrinClamp
	IntrinMix
	IntrinStep
	IntrinSmoothstep
	IntrinIsNan
	IntrinIsInf
	IntrinFma
	IntrinFrexp
	IntrinLdexp
	IntrinFloatBitsToInt
	IntrinFloatBitsToUint
	IntrinIntBitsToFloat
	IntrinUintBitsToFloat

	// Float packing.
	IntrinPackSnorm2x16
	IntrinUnpackSnorm2x16
	IntrinPackUnorm2x16
	IntrinUnpackUnorm2x16
	IntrinPackHalf2x16
	IntrinUnpackHalf2x16

	// Geometry.
	IntrinLength
	IntrinDistance
	IntrinDot
	IntrinCross
	IntrinNormalize
	IntrinFaceforward
	IntrinReflect
	IntrinRefract

	// Relational vector.
	IntrinVLessThan
	IntrinVLessThanEqual
	IntrinVGreaterThan
	IntrinVGreaterThanEqual
	IntrinVEqual
	IntrinVNotEqual
	IntrinVAny
	IntrinVAll
	IntrinVNot

	// Integer.
	IntrinUaddCarry
	IntrinUsubBorrow
	IntrinUmulExtended
	IntrinImulExtended
	IntrinBitfieldExtract
	IntrinBitfieldInsert
	IntrinBitfieldReverse
	IntrinBitCount
	IntrinFindLSB
	IntrinFindMSB

	// Geometry-shader emission.
	IntrinEmitVertex
	IntrinEndPrimitive
	IntrinEmitStreamVertex
	IntrinEndStreamPrimitive

	// Fragment derivatives.
	IntrinDFdx
	IntrinDFdy
	IntrinDFdxFine
	IntrinDFdyFine
	IntrinDFdxCoarse
	IntrinDFdyCoarse
	IntrinFwidth
	IntrinFwidthFine
	IntrinFwidthCoarse
	IntrinInterpolateAtCentroid
	IntrinInterpolateAtSample
	IntrinInterpolateAtOffset

	// Invocation barriers.
	IntrinBarrier
	IntrinMemoryBarrier
	IntrinMemoryBarrierBuffer
	IntrinMemoryBarrierShared
	IntrinMemoryBarrierImage
	IntrinGroupMemoryBarrier

	// Group predicates.
	IntrinAnyInvocation
	IntrinAllInvocations
	IntrinAllInvocationsEqual
)

var intrinsicNames = map[Intrinsic]string{
	IntrinSin: "sin", IntrinCos: "cos", IntrinTan: "tan",
	IntrinAsin: "asin", IntrinAcos: "acos", IntrinAtan: "atan", IntrinAtan2: "atan",
	IntrinSinh: "sinh", IntrinCosh: "cosh", IntrinTanh: "tanh",
	IntrinAsinh: "asinh", IntrinAcosh: "acosh", IntrinAtanh: "atanh",
	IntrinRadians: "radians", IntrinDegrees: "degrees",

	IntrinPow: "pow", IntrinExp: "exp", IntrinExp2: "exp2",
	IntrinLog: "log", IntrinLog2: "log2",
	IntrinSqrt: "sqrt", IntrinInverseSqrt: "inversesqrt",

	IntrinAbs: "abs", IntrinSign: "sign", IntrinFloor: "floor",
	IntrinTrunc: "trunc", IntrinRound: "round", IntrinRoundEven: "roundEven",
	IntrinCeil: "ceil", IntrinFract: "fract",
	IntrinMin: "min", IntrinMax: "max", IntrinClamp: "clamp",
	IntrinMix: "mix", IntrinStep: "step", IntrinSmoothstep: "smoothstep",
	IntrinIsNan: "isnan", IntrinIsInf: "isinf",
	IntrinFma: "fma", IntrinFrexp: "frexp", IntrinLdexp: "ldexp",
	IntrinFloatBitsToInt: "floatBitsToInt", IntrinFloatBitsToUint: "floatBitsToUint",
	IntrinIntBitsToFloat: "intBitsToFloat", IntrinUintBitsToFloat: "uintBitsToFloat",

	IntrinPackSnorm2x16: "packSnorm2x16", IntrinUnpackSnorm2x16: "unpackSnorm2x16",
	IntrinPackUnorm2x16: "packUnorm2x16", IntrinUnpackUnorm2x16: "unpackUnorm2x16",
	IntrinPackHalf2x16: "packHalf2x16", IntrinUnpackHalf2x16: "unpackHalf2x16",

	IntrinLength: "length", IntrinDistance: "distance", IntrinDot: "dot",
	IntrinCross: "cross", IntrinNormalize: "normalize",
	IntrinFaceforward: "faceforward", IntrinReflect: "reflect", IntrinRefract: "refract",

	IntrinVLessThan: "lessThan", IntrinVLessThanEqual: "lessThanEqual",
	IntrinVGreaterThan: "greaterThan", IntrinVGreaterThanEqual: "greaterThanEqual",
	IntrinVEqual: "equal", IntrinVNotEqual: "notEqual",
	IntrinVAny: "any", IntrinVAll: "all", IntrinVNot: "not",

	IntrinUaddCarry: "uaddCarry", IntrinUsubBorrow: "usubBorrow",
	IntrinUmulExtended: "umulExtended", IntrinImulExtended: "imulExtended",
	IntrinBitfieldExtract: "bitfieldExtract", IntrinBitfieldInsert: "bitfieldInsert",
	IntrinBitfieldReverse: "bitfieldReverse", IntrinBitCount: "bitCount",
	IntrinFindLSB: "findLSB", IntrinFindMSB: "findMSB",

	IntrinEmitVertex: "EmitVertex", IntrinEndPrimitive: "EndPrimitive",
	IntrinEmitStreamVertex: "EmitStreamVertex", IntrinEndStreamPrimitive: "EndStreamPrimitive",

	IntrinDFdx: "dFdx", IntrinDFdy: "dFdy",
	IntrinDFdxFine: "dFdxFine", IntrinDFdyFine: "dFdyFine",
	IntrinDFdxCoarse: "dFdxCoarse", IntrinDFdyCoarse: "dFdyCoarse",
	IntrinFwidth: "fwidth", IntrinFwidthFine: "fwidthFine", IntrinFwidthCoarse: "fwidthCoarse",
	IntrinInterpolateAtCentroid: "interpolateAtCentroid",
	IntrinInterpolateAtSample:   "interpolateAtSample",
	IntrinInterpolateAtOffset:   "interpolateAtOffset",

	IntrinBarrier:             "barrier",
	IntrinMemoryBarrier:       "memoryBarrier",
	IntrinMemoryBarrierBuffer: "memoryBarrierBuffer",
	IntrinMemoryBarrierShared: "memoryBarrierShared",
	IntrinMemoryBarrierImage:  "memoryBarrierImage",
	IntrinGroupMemoryBarrier:  "groupMemoryBarrier",

	IntrinAnyInvocation:       "anyInvocation",
	IntrinAllInvocations:      "allInvocations",
	IntrinAllInvocationsEqual: "allInvocationsEqual",
}

// GLSLName returns the GLSL-family built-in function name for i.
func (i Intrinsic) GLSLName() string { return intrinsicNames[i] }
