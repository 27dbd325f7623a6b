package shade

import "github.com/gogpu/shade/ir"

// Scope is a lexical block being built up instruction by instruction. R is
// the type a Leave/Abort in this scope (or one of its ancestors) must
// produce: Void for a function with no return value, or one of the
// concrete Expr types.
//
// A Scope is only ever handed to caller code by a Fn* constructor or by
// a nested-block builder (When/Unless/LoopFor/LoopWhile); there is no
// exported constructor; the zero value is not usable.
type Scope[R Returnable] struct {
	scope  *ir.ErasedScope
	nextID *uint16
}

func newRootScope[R Returnable]() *Scope[R] {
	next := uint16(1)
	root := ir.NewScope(0)
	return &Scope[R]{scope: &root, nextID: &next}
}

func (s *Scope[R]) subScope() *ir.ErasedScope {
	id := *s.nextID
	*s.nextID++
	sub := ir.NewScope(id)
	return &sub
}

func declareVar[T AnyExpr](scope *ir.ErasedScope, t ir.Type, init T) ir.ScopedHandle {
	h := ir.FunVar{Subscope: scope.ID, Handle: scope.NextVar}
	scope.NextVar++
	scope.Instructions = append(scope.Instructions, ir.ScopeInstr{
		Kind: ir.VarDecl{Type: t, Handle: h, Init: init.exprErased()},
	})
	return h
}

// Var declares a new local, initialized from init, for every concrete
// Expr type. One method per type, the same way the concrete Expr/Var
// families themselves are one type per primitive x dimension rather than
// a single generic.

func (s *Scope[R]) VarInt(init ExprInt) VarInt {
	return VarInt{declareVar(s.scope, ir.NewScalar(ir.PrimInt), init)}
}
func (s *Scope[R]) VarIntV2(init ExprIntV2) VarIntV2 {
	return VarIntV2{declareVar(s.scope, ir.NewVector(ir.PrimInt, ir.D2), init)}
}
func (s *Scope[R]) VarIntV3(init ExprIntV3) VarIntV3 {
	return VarIntV3{declareVar(s.scope, ir.NewVector(ir.PrimInt, ir.D3), init)}
}
func (s *Scope[R]) VarIntV4(init ExprIntV4) VarIntV4 {
	return VarIntV4{declareVar(s.scope, ir.NewVector(ir.PrimInt, ir.D4), init)}
}

func (s *Scope[R]) VarUInt(init ExprUInt) VarUInt {
	return VarUInt{declareVar(s.scope, ir.NewScalar(ir.PrimUInt), init)}
}
func (s *Scope[R]) VarUIntV2(init ExprUIntV2) VarUIntV2 {
	return VarUIntV2{declareVar(s.scope, ir.NewVector(ir.PrimUInt, ir.D2), init)}
}
func (s *Scope[R]) VarUIntV3(init ExprUIntV3) VarUIntV3 {
	return VarUIntV3{declareVar(s.scope, ir.NewVector(ir.PrimUInt, ir.D3), init)}
}
func (s *Scope[R]) VarUIntV4(init ExprUIntV4) VarUIntV4 {
	return VarUIntV4{declareVar(s.scope, ir.NewVector(ir.PrimUInt, ir.D4), init)}
}

func (s *Scope[R]) VarFloat(init ExprFloat) VarFloat {
	return VarFloat{declareVar(s.scope, ir.NewScalar(ir.PrimFloat), init)}
}
func (s *Scope[R]) VarFloatV2(init ExprFloatV2) VarFloatV2 {
	return VarFloatV2{declareVar(s.scope, ir.NewVector(ir.PrimFloat, ir.D2), init)}
}
func (s *Scope[R]) VarFloatV3(init ExprFloatV3) VarFloatV3 {
	return VarFloatV3{declareVar(s.scope, ir.NewVector(ir.PrimFloat, ir.D3), init)}
}
func (s *Scope[R]) VarFloatV4(init ExprFloatV4) VarFloatV4 {
	return VarFloatV4{declareVar(s.scope, ir.NewVector(ir.PrimFloat, ir.D4), init)}
}

func (s *Scope[R]) VarBool(init ExprBool) VarBool {
	return VarBool{declareVar(s.scope, ir.NewScalar(ir.PrimBool), init)}
}
func (s *Scope[R]) VarBoolV2(init ExprBoolV2) VarBoolV2 {
	return VarBoolV2{declareVar(s.scope, ir.NewVector(ir.PrimBool, ir.D2), init)}
}
func (s *Scope[R]) VarBoolV3(init ExprBoolV3) VarBoolV3 {
	return VarBoolV3{declareVar(s.scope, ir.NewVector(ir.PrimBool, ir.D3), init)}
}
func (s *Scope[R]) VarBoolV4(init ExprBoolV4) VarBoolV4 {
	return VarBoolV4{declareVar(s.scope, ir.NewVector(ir.PrimBool, ir.D4), init)}
}

// Set assigns value to target, which must be a Var or an indexed VarArray
// element in this function.
func (s *Scope[R]) Set(target AssignTarget, value AnyExpr) {
	s.scope.Instructions = append(s.scope.Instructions, ir.ScopeInstr{
		Kind: ir.MutateVar{Target: target.assignTarget(), Expr: value.exprErased()},
	})
}

func buildReturn[R Returnable](value R) ir.ErasedReturn {
	if v, ok := any(value).(AnyExpr); ok {
		return ir.ErasedReturn{Kind: ir.ReturnValue{Type: v.exprType(), Expr: v.exprErased()}}
	}
	return ir.ErasedReturn{Kind: ir.ReturnVoid{}}
}

// Leave terminates the function with value, which must be Void{} for a
// Scope[Void] or the function's declared Expr return type otherwise.
func (s *Scope[R]) Leave(value R) {
	s.scope.Instructions = append(s.scope.Instructions, ir.ScopeInstr{
		Kind: ir.Return{Value: buildReturn(value)},
	})
}

// Abort terminates the function with a void return unconditionally, even
// inside a Scope[R] whose function returns a value. This mirrors the
// original library's abort(), which is only ever meant to be reached from
// paths that the host's type system cannot see are dead; using it to
// short-circuit a value-returning function produces a shader that will
// not validate downstream, same as upstream.
func (s *Scope[R]) Abort() {
	s.scope.Instructions = append(s.scope.Instructions, ir.ScopeInstr{
		Kind: ir.Return{Value: ir.ErasedReturn{Kind: ir.ReturnVoid{}}},
	})
}

// LoopContinue skips to the next iteration of the innermost enclosing
// loop.
func (s *Scope[R]) LoopContinue() {
	s.scope.Instructions = append(s.scope.Instructions, ir.ScopeInstr{Kind: ir.Continue{}})
}

// LoopBreak exits the innermost enclosing loop.
func (s *Scope[R]) LoopBreak() {
	s.scope.Instructions = append(s.scope.Instructions, ir.ScopeInstr{Kind: ir.Break{}})
}

// IfChain threads an If through any number of ElseIf branches to an
// optional terminal Else; all of them append into the same parent scope
// that opened the chain.
type IfChain[R Returnable] struct {
	parent *Scope[R]
}

// When opens an If. body receives a nested Scope sharing this function's
// subscope counter and return type.
func (s *Scope[R]) When(cond ExprBool, body func(*Scope[R])) *IfChain[R] {
	sub := s.subScope()
	body(&Scope[R]{scope: sub, nextID: s.nextID})
	s.scope.Instructions = append(s.scope.Instructions, ir.ScopeInstr{
		Kind: ir.If{Cond: cond.erased, Body: *sub},
	})
	return &IfChain[R]{parent: s}
}

// Unless is When with the condition negated, for readability at call
// sites that read more naturally as a guard clause.
func (s *Scope[R]) Unless(cond ExprBool, body func(*Scope[R])) *IfChain[R] {
	return s.When(cond.Not(), body)
}

// ElseIf extends the chain with another conditional branch.
func (c *IfChain[R]) ElseIf(cond ExprBool, body func(*Scope[R])) *IfChain[R] {
	sub := c.parent.subScope()
	body(&Scope[R]{scope: sub, nextID: c.parent.nextID})
	c.parent.scope.Instructions = append(c.parent.scope.Instructions, ir.ScopeInstr{
		Kind: ir.ElseIf{Cond: cond.erased, Body: *sub},
	})
	return c
}

// Else terminates the chain unconditionally.
func (c *IfChain[R]) Else(body func(*Scope[R])) {
	sub := c.parent.subScope()
	body(&Scope[R]{scope: sub, nextID: c.parent.nextID})
	c.parent.scope.Instructions = append(c.parent.scope.Instructions, ir.ScopeInstr{
		Kind: ir.Else{Body: *sub},
	})
}

// LoopWhile repeats body while cond holds. cond is evaluated once, after
// body has been built, to build the expression tree checked before every
// iteration; it
// is not re-invoked per modeled iteration, since Scope only ever builds a
// tree and never executes one.
func (s *Scope[R]) LoopWhile(cond func() ExprBool, body func(*Scope[R])) {
	sub := s.subScope()
	body(&Scope[R]{scope: sub, nextID: s.nextID})
	s.scope.Instructions = append(s.scope.Instructions, ir.ScopeInstr{
		Kind: ir.While{Cond: cond().erased, Body: *sub},
	})
}

// LoopForInt is a C-style counted loop over an int induction variable.
func (s *Scope[R]) LoopForInt(init ExprInt, cond func(ExprInt) ExprBool, post func(ExprInt) ExprInt, body func(*Scope[R], ExprInt)) {
	sub := s.subScope()
	h := ir.FunVar{Subscope: sub.ID, Handle: sub.NextVar}
	sub.NextVar++
	counter := wrapInt(ir.MutVar{Handle: h})
	sub.Instructions = append(sub.Instructions, ir.ScopeInstr{
		Kind: ir.VarDecl{Type: ir.NewScalar(ir.PrimInt), Handle: h, Init: init.erased},
	})

	inner := &Scope[R]{scope: sub, nextID: s.nextID}
	body(inner, counter)

	s.scope.Instructions = append(s.scope.Instructions, ir.ScopeInstr{
		Kind: ir.For{
			InitType:   ir.NewScalar(ir.PrimInt),
			InitHandle: h,
			InitExpr:   init.erased,
			Cond:       cond(counter).erased,
			Post:       post(counter).erased,
			Body:       *sub,
		},
	})
}

// LoopForFloat is a C-style counted loop over a float induction variable.
func (s *Scope[R]) LoopForFloat(init ExprFloat, cond func(ExprFloat) ExprBool, post func(ExprFloat) ExprFloat, body func(*Scope[R], ExprFloat)) {
	sub := s.subScope()
	h := ir.FunVar{Subscope: sub.ID, Handle: sub.NextVar}
	sub.NextVar++
	counter := wrapFloat(ir.MutVar{Handle: h})
	sub.Instructions = append(sub.Instructions, ir.ScopeInstr{
		Kind: ir.VarDecl{Type: ir.NewScalar(ir.PrimFloat), Handle: h, Init: init.erased},
	})

	inner := &Scope[R]{scope: sub, nextID: s.nextID}
	body(inner, counter)

	s.scope.Instructions = append(s.scope.Instructions, ir.ScopeInstr{
		Kind: ir.For{
			InitType:   ir.NewScalar(ir.PrimFloat),
			InitHandle: h,
			InitExpr:   init.erased,
			Cond:       cond(counter).erased,
			Post:       post(counter).erased,
			Body:       *sub,
		},
	})
}
