// Package ir defines the erased (untyped) intermediate representation for
// shade shaders.
//
// The IR is the normalized form every typed shade.Expr[T]/shade.Scope[R]
// builder call lowers to. It is a plain owned tree, not an SSA arena: every
// node holds its children by value, and there is no def-use analysis,
// constant folding, or optimization pass over it. A shade.Shader
// accumulates ir.ShaderDecl values in call order; a Writer (in package
// glsl) walks the resulting Module and emits target-language source text.
//
// # Structure
//
// The IR is organized around:
//   - Type/Dimension/Prim: the closed type-descriptor grammar.
//   - ScopedHandle: identifies where a value comes from (built-in, global,
//     function argument, or locally scoped variable).
//   - ErasedExpr: the expression node set (literals, operators, calls,
//     swizzles, field/array access).
//   - ScopeInstr/ErasedScope: the statement node set and its lexical
//     container.
//   - ErasedFun/ShaderDecl/Module: function bodies and the top-level
//     shader aggregate.
package ir
