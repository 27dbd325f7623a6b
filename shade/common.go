package shade

import "github.com/gogpu/shade/ir"

// AnyExpr is satisfied by every concrete Expr type. It erases a typed
// expression down to the ir form the printer consumes, the same way
// ir.ExprKind erases its own variants: an interface plus the information
// needed to reconstruct what was erased.
type AnyExpr interface {
	exprErased() ir.ErasedExpr
	exprType() ir.Type
}

// AnyVar is satisfied by every concrete Var type.
type AnyVar interface {
	varHandle() ir.ScopedHandle
	varType() ir.Type
}

// Erase returns the type-erased form of any Expr value. Exported for the
// glsl package and for callers building custom intrinsic wrappers.
func Erase(e AnyExpr) ir.ErasedExpr { return e.exprErased() }

// TypeOf returns the ir type descriptor of any Expr value.
func TypeOf(e AnyExpr) ir.Type { return e.exprType() }

// eraseAll erases a slice of Expr values in order, for call-argument lists.
func eraseAll(args []AnyExpr) []ir.ErasedExpr {
	out := make([]ir.ErasedExpr, len(args))
	for i, a := range args {
		out[i] = a.exprErased()
	}
	return out
}

// Void is the return marker for Scope[Void]: a function that leaves or
// aborts without a value.
type Void struct{}

// Returnable is satisfied by Void and by every concrete Expr type; it
// bounds the type parameter of Scope and Fn*.
type Returnable interface {
	Void | ExprInt | ExprUInt | ExprFloat | ExprBool |
		ExprIntV2 | ExprIntV3 | ExprIntV4 |
		ExprUIntV2 | ExprUIntV3 | ExprUIntV4 |
		ExprFloatV2 | ExprFloatV3 | ExprFloatV4 |
		ExprBoolV2 | ExprBoolV3 | ExprBoolV4
}
