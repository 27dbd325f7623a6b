// Package shade is a typed embedded DSL for authoring GPU shader programs
// as ordinary Go values. Each concrete Expr/Var type pins down a scalar or
// vector shape at compile time; building one records an equivalent
// type-erased ir.ErasedExpr that the glsl package can later print.
//
// The DSL never executes shader code itself: Expr and Var values are
// inert descriptions of a computation, assembled into a Shader and handed
// to a printer.
package shade
