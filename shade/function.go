package shade

import "github.com/gogpu/shade/ir"

// declaredReturn builds the Ret descriptor for a function whose body is a
// Scope[R]: a type-only placeholder for value returns (the Expr field is
// left zero; only ReturnValue.Type is meaningful at this level, actual
// values come from the Return instructions the body recorded), or
// ReturnVoid for Scope[Void].
func declaredReturn[R Returnable]() ir.ErasedReturn {
	var zero R
	if v, ok := any(zero).(AnyExpr); ok {
		return ir.ErasedReturn{Kind: ir.ReturnValue{Type: v.exprType()}}
	}
	return ir.ErasedReturn{Kind: ir.ReturnVoid{}}
}

// resultOf builds an R from a FunCall's erased result. For R = Void this
// is just the zero value; a call to a void function only has meaning as
// a statement (see Invoke*), never as a value.
func resultOf[R Returnable](k ir.ExprKind) R {
	var zero R
	if ac, ok := any(zero).(argConstructible); ok {
		return ac.fromKind(k).(R)
	}
	return zero
}

// argValue builds the typed expression a function body sees for one of
// its own parameters, referencing it by ordinal.
func argValue[T Equatable](idx uint16) T {
	var zero T
	v := any(zero).(argConstructible).fromKind(ir.MutVar{Handle: ir.FunArg{Index: idx}})
	return v.(T)
}

func register(sh *Shader, fn ir.ErasedFun) uint16 {
	idx := sh.mod.NextFunHandle
	sh.mod.NextFunHandle++
	sh.mod.Decls = append(sh.mod.Decls, ir.ShaderDecl{Kind: ir.DeclFunDef{Index: idx, Fun: fn}})
	return idx
}

func callExpr(index uint16, args []ir.ErasedExpr) ir.ExprKind {
	return ir.FunCall{Handle: ir.FunUserDefined{Index: index}, Args: args}
}

// Callable0 is a registered nullary function.
type Callable0[R Returnable] struct{ index uint16 }

// Fn0 builds a nullary function in sh and returns a handle to call it.
func Fn0[R Returnable](sh *Shader, build func(*Scope[R])) Callable0[R] {
	s := newRootScope[R]()
	build(s)
	idx := register(sh, ir.ErasedFun{Scope: *s.scope, Ret: declaredReturn[R]()})
	return Callable0[R]{index: idx}
}

// Call invokes the function as an expression, yielding its result.
func (c Callable0[R]) Call() R { return resultOf[R](callExpr(c.index, nil)) }

// InvokeCallable0 calls c as a bare statement in s, discarding any result.
func InvokeCallable0[R Returnable, S Returnable](s *Scope[S], c Callable0[R]) {
	s.scope.Instructions = append(s.scope.Instructions, ir.ScopeInstr{
		Kind: ir.ExprStmt{Expr: ir.ErasedExpr{Kind: callExpr(c.index, nil)}},
	})
}

// Callable1 is a registered unary function.
type Callable1[R Returnable, A1 Equatable] struct{ index uint16 }

// Fn1 builds a unary function in sh and returns a handle to call it.
func Fn1[R Returnable, A1 Equatable](sh *Shader, build func(*Scope[R], A1)) Callable1[R, A1] {
	s := newRootScope[R]()
	a1 := argValue[A1](0)
	build(s, a1)
	idx := register(sh, ir.ErasedFun{Args: []ir.Type{a1.exprType()}, Scope: *s.scope, Ret: declaredReturn[R]()})
	return Callable1[R, A1]{index: idx}
}

func (c Callable1[R, A1]) Call(a1 A1) R {
	return resultOf[R](callExpr(c.index, []ir.ErasedExpr{a1.exprErased()}))
}

func InvokeCallable1[R Returnable, A1 Equatable, S Returnable](s *Scope[S], c Callable1[R, A1], a1 A1) {
	s.scope.Instructions = append(s.scope.Instructions, ir.ScopeInstr{
		Kind: ir.ExprStmt{Expr: ir.ErasedExpr{Kind: callExpr(c.index, []ir.ErasedExpr{a1.exprErased()})}},
	})
}

// Callable2 is a registered binary function.
type Callable2[R Returnable, A1, A2 Equatable] struct{ index uint16 }

func Fn2[R Returnable, A1, A2 Equatable](sh *Shader, build func(*Scope[R], A1, A2)) Callable2[R, A1, A2] {
	s := newRootScope[R]()
	a1, a2 := argValue[A1](0), argValue[A2](1)
	build(s, a1, a2)
	idx := register(sh, ir.ErasedFun{
		Args: []ir.Type{a1.exprType(), a2.exprType()}, Scope: *s.scope, Ret: declaredReturn[R](),
	})
	return Callable2[R, A1, A2]{index: idx}
}

func (c Callable2[R, A1, A2]) Call(a1 A1, a2 A2) R {
	return resultOf[R](callExpr(c.index, []ir.ErasedExpr{a1.exprErased(), a2.exprErased()}))
}

func InvokeCallable2[R Returnable, A1, A2 Equatable, S Returnable](s *Scope[S], c Callable2[R, A1, A2], a1 A1, a2 A2) {
	s.scope.Instructions = append(s.scope.Instructions, ir.ScopeInstr{
		Kind: ir.ExprStmt{Expr: ir.ErasedExpr{Kind: callExpr(c.index, []ir.ErasedExpr{a1.exprErased(), a2.exprErased()})}},
	})
}

// Callable3 is a registered ternary function.
type Callable3[R Returnable, A1, A2, A3 Equatable] struct{ index uint16 }

func Fn3[R Returnable, A1, A2, A3 Equatable](sh *Shader, build func(*Scope[R], A1, A2, A3)) Callable3[R, A1, A2, A3] {
	s := newRootScope[R]()
	a1, a2, a3 := argValue[A1](0), argValue[A2](1), argValue[A3](2)
	build(s, a1, a2, a3)
	idx := register(sh, ir.ErasedFun{
		Args: []ir.Type{a1.exprType(), a2.exprType(), a3.exprType()}, Scope: *s.scope, Ret: declaredReturn[R](),
	})
	return Callable3[R, A1, A2, A3]{index: idx}
}

func (c Callable3[R, A1, A2, A3]) Call(a1 A1, a2 A2, a3 A3) R {
	return resultOf[R](callExpr(c.index, []ir.ErasedExpr{a1.exprErased(), a2.exprErased(), a3.exprErased()}))
}

// Callable4 is a registered four-argument function.
type Callable4[R Returnable, A1, A2, A3, A4 Equatable] struct{ index uint16 }

func Fn4[R Returnable, A1, A2, A3, A4 Equatable](sh *Shader, build func(*Scope[R], A1, A2, A3, A4)) Callable4[R, A1, A2, A3, A4] {
	s := newRootScope[R]()
	a1, a2, a3, a4 := argValue[A1](0), argValue[A2](1), argValue[A3](2), argValue[A4](3)
	build(s, a1, a2, a3, a4)
	idx := register(sh, ir.ErasedFun{
		Args:  []ir.Type{a1.exprType(), a2.exprType(), a3.exprType(), a4.exprType()},
		Scope: *s.scope, Ret: declaredReturn[R](),
	})
	return Callable4[R, A1, A2, A3, A4]{index: idx}
}

func (c Callable4[R, A1, A2, A3, A4]) Call(a1 A1, a2 A2, a3 A3, a4 A4) R {
	return resultOf[R](callExpr(c.index, []ir.ErasedExpr{
		a1.exprErased(), a2.exprErased(), a3.exprErased(), a4.exprErased(),
	}))
}

// untypedArg is the type-erased argument handle FnDyn hands to bodies of
// functions with more than four parameters, where there is no way in Go
// to spell one type parameter per argument.
type untypedArg struct {
	erased ir.ErasedExpr
	typ    ir.Type
}

func (a untypedArg) exprErased() ir.ErasedExpr { return a.erased }
func (a untypedArg) exprType() ir.Type         { return a.typ }

// CallableDyn is a registered function of 5 or more arguments, or one
// whose arity is only known at the call site's discretion.
type CallableDyn[R Returnable] struct{ index uint16 }

// FnDyn builds a function of arbitrary arity. argTypes fixes the
// parameter count and the type of each; build receives one untypedArg per
// entry, in order. This is the only route to functions of arity 5-16 (and
// beyond): Go has no variadic type parameters, so unlike Fn0-Fn4 the
// parameter shapes here are values, not part of the instantiation.
func FnDyn[R Returnable](sh *Shader, argTypes []ir.Type, build func(*Scope[R], []AnyExpr)) CallableDyn[R] {
	s := newRootScope[R]()
	args := make([]AnyExpr, len(argTypes))
	for i, t := range argTypes {
		args[i] = untypedArg{erased: ir.ErasedExpr{Kind: ir.MutVar{Handle: ir.FunArg{Index: uint16(i)}}}, typ: t}
	}
	build(s, args)
	idx := register(sh, ir.ErasedFun{Args: argTypes, Scope: *s.scope, Ret: declaredReturn[R]()})
	return CallableDyn[R]{index: idx}
}

// Call invokes a FnDyn function as an expression.
func (c CallableDyn[R]) Call(args ...AnyExpr) R {
	return resultOf[R](callExpr(c.index, eraseAll(args)))
}

// InvokeCallableDyn calls c as a bare statement in s, discarding any result.
func InvokeCallableDyn[R Returnable, S Returnable](s *Scope[S], c CallableDyn[R], args ...AnyExpr) {
	s.scope.Instructions = append(s.scope.Instructions, ir.ScopeInstr{
		Kind: ir.ExprStmt{Expr: ir.ErasedExpr{Kind: callExpr(c.index, eraseAll(args))}},
	})
}
