package ir

// ErasedExpr is a type-erased expression node. It owns its children by
// value; there is no sharing, so cloning an ErasedExpr is a deep copy.
type ErasedExpr struct {
	Kind ExprKind
}

// ExprKind is the sum type of expression node shapes. Each variant
// implements the no-op marker method exprKind to seal the set to this
// package's declared variants.
type ExprKind interface {
	exprKind()
}

// LitInt, LitUInt, LitFloat, LitBool, their vector forms and LitArray
// cover every literal form.

// LitInt is a literal 32-bit signed integer.
type LitInt int32

func (LitInt) exprKind() {}

// LitUInt is a literal 32-bit unsigned integer.
type LitUInt uint32

func (LitUInt) exprKind() {}

// LitFloat is a literal 32-bit float.
type LitFloat float32

func (LitFloat) exprKind() {}

// LitBool is a literal boolean.
type LitBool bool

func (LitBool) exprKind() {}

// LitInt2/3/4, LitUInt2/3/4, LitFloat2/3/4 and LitBool2/3/4 are literal
// fixed-arity vectors of each scalar kind.

type LitInt2 [2]int32
type LitInt3 [3]int32
type LitInt4 [4]int32

func (LitInt2) exprKind() {}
func (LitInt3) exprKind() {}
func (LitInt4) exprKind() {}

type LitUInt2 [2]uint32
type LitUInt3 [3]uint32
type LitUInt4 [4]uint32

func (LitUInt2) exprKind() {}
func (LitUInt3) exprKind() {}
func (LitUInt4) exprKind() {}

type LitFloat2 [2]float32
type LitFloat3 [3]float32
type LitFloat4 [4]float32

func (LitFloat2) exprKind() {}
func (LitFloat3) exprKind() {}
func (LitFloat4) exprKind() {}

type LitBool2 [2]bool
type LitBool3 [3]bool
type LitBool4 [4]bool

func (LitBool2) exprKind() {}
func (LitBool3) exprKind() {}
func (LitBool4) exprKind() {}

// LitArray is a literal array of element expressions. Type reflects the
// full array descriptor (outer-to-inner extents), not just the element
// type.
type LitArray struct {
	Type  Type
	Elems []ErasedExpr
}

func (LitArray) exprKind() {}

// MutVar references a mutable variable by its scoped handle.
type MutVar struct {
	Handle ScopedHandle
}

func (MutVar) exprKind() {}

// ImmutBuiltIn references a read-only stage built-in.
type ImmutBuiltIn struct {
	ID BuiltInID
}

func (ImmutBuiltIn) exprKind() {}

// UnaryOp enumerates the unary operators.
type UnaryOp uint8

const (
	UnaryNot UnaryOp = iota
	UnaryNeg
)

// Unary is a unary operator applied to a sub-expression.
type Unary struct {
	Op   UnaryOp
	Expr ErasedExpr
}

func (Unary) exprKind() {}

// BinaryOp enumerates the binary operators.
type BinaryOp uint8

const (
	BinAnd BinaryOp = iota
	BinOr
	BinXor
	BinBitOr
	BinBitAnd
	BinBitXor
	BinAdd
	BinSub
	BinMul
	BinDiv
	BinRem
	BinShl
	BinShr
	BinEq
	BinNeq
	BinLt
	BinLte
	BinGt
	BinGte
)

// Binary is a binary operator applied to two sub-expressions.
type Binary struct {
	Op    BinaryOp
	Left  ErasedExpr
	Right ErasedExpr
}

func (Binary) exprKind() {}

// FunRef identifies the callee of a FunCall: the shader's distinguished
// main function, a user-defined function by handle, or a named intrinsic.
type FunRef interface {
	funRef()
}

// FunMain is the sentinel callee for the shader's distinguished entry
// point. Shaders never actually call Main; the sentinel exists so
// ErasedFun/ShaderDecl can share the FunRef vocabulary.
type FunMain struct{}

func (FunMain) funRef() {}

// FunUserDefined references a user-defined function by its monotonic
// handle within the shader.
type FunUserDefined struct {
	Index uint16
}

func (FunUserDefined) funRef() {}

// FunIntrinsic references a named intrinsic from the closed library in
// Intrinsic.
type FunIntrinsic struct {
	Name Intrinsic
}

func (FunIntrinsic) funRef() {}

// FunCall calls handle with the given arguments, in order.
type FunCall struct {
	Handle FunRef
	Args   []ErasedExpr
}

func (FunCall) exprKind() {}

// SwizzleSelector selects one component of a vector.
type SwizzleSelector uint8

const (
	SwizzleX SwizzleSelector = iota
	SwizzleY
	SwizzleZ
	SwizzleW
)

// letter returns the GLSL-family position-style swizzle letter.
func (s SwizzleSelector) letter() byte {
	return "xyzw"[s]
}

// Letter returns the GLSL-family position-style swizzle letter
// (x/y/z/w), for use by printers that prefer that convention over
// r/g/b/a.
func (s SwizzleSelector) Letter() byte { return s.letter() }

// Swizzle selects 1-4 components of Base, possibly reordering or
// repeating them.
type Swizzle struct {
	Base      ErasedExpr
	Selectors []SwizzleSelector
}

func (Swizzle) exprKind() {}

// Field accesses a named field on an aggregate value (e.g. a per-vertex-in
// array element's .position()).
type Field struct {
	Object ErasedExpr
	Name   string
}

func (Field) exprKind() {}

// ArrayLookup indexes Object by a computed Index expression.
type ArrayLookup struct {
	Object ErasedExpr
	Index  ErasedExpr
}

func (ArrayLookup) exprKind() {}
