// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package shade

import (
	"testing"

	"github.com/gogpu/shade/ir"
)

func TestLiteralErasure(t *testing.T) {
	tests := []struct {
		name string
		kind ir.ExprKind
	}{
		{"int", Int(7).exprErased().Kind},
		{"uint", UInt(7).exprErased().Kind},
		{"float", Float(1.5).exprErased().Kind},
		{"bool", Bool(true).exprErased().Kind},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			switch tt.kind.(type) {
			case ir.LitInt, ir.LitUInt, ir.LitFloat, ir.LitBool:
			default:
				t.Errorf("exprErased().Kind = %T, want a Lit* kind", tt.kind)
			}
		})
	}
}

func TestIntLiteralRoundTrip(t *testing.T) {
	e := Int(42)
	got := e.exprErased().Kind
	lit, ok := got.(ir.LitInt)
	if !ok {
		t.Fatalf("exprErased().Kind = %T, want ir.LitInt", got)
	}
	if int32(lit) != 42 {
		t.Errorf("LitInt = %d, want 42", int32(lit))
	}
}

func TestMainFunHasNoArgsAndDeclaresOneEntryPoint(t *testing.T) {
	sh, _ := NewFragmentShader()
	MainFun0(sh, func(s *Scope[Void]) {
		s.Leave(Void{})
	})

	mod := sh.Module()
	if len(mod.Decls) != 1 {
		t.Fatalf("len(Decls) = %d, want 1", len(mod.Decls))
	}
	main, ok := mod.Decls[0].Kind.(ir.DeclMain)
	if !ok {
		t.Fatalf("Decls[0].Kind = %T, want ir.DeclMain", mod.Decls[0].Kind)
	}
	if len(main.Fun.Args) != 0 {
		t.Errorf("main.Fun.Args = %v, want none", main.Fun.Args)
	}
	if _, ok := main.Fun.Ret.Kind.(ir.ReturnVoid); !ok {
		t.Errorf("main.Fun.Ret.Kind = %T, want ir.ReturnVoid", main.Fun.Ret.Kind)
	}
}

func TestMainFunRegisteredTwicePanics(t *testing.T) {
	sh, _ := NewFragmentShader()
	MainFun0(sh, func(s *Scope[Void]) {})

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on second MainFun0 call")
		}
	}()
	MainFun0(sh, func(s *Scope[Void]) {})
}

func TestVarDeclNumbersLocalsBySubscope(t *testing.T) {
	sh, _ := NewFragmentShader()
	MainFun0(sh, func(s *Scope[Void]) {
		a := s.VarInt(Int(1))
		b := s.VarInt(Int(2))

		aVar, ok := a.handle.(ir.FunVar)
		if !ok {
			t.Fatalf("a.handle = %T, want ir.FunVar", a.handle)
		}
		bVar, ok := b.handle.(ir.FunVar)
		if !ok {
			t.Fatalf("b.handle = %T, want ir.FunVar", b.handle)
		}
		if aVar.Subscope != 0 || bVar.Subscope != 0 {
			t.Errorf("root-scope locals Subscope = %d, %d, want 0, 0", aVar.Subscope, bVar.Subscope)
		}
		if aVar.Handle != 0 || bVar.Handle != 1 {
			t.Errorf("locals Handle = %d, %d, want 0, 1", aVar.Handle, bVar.Handle)
		}
	})
}

func TestNestedScopeGetsFreshSubscope(t *testing.T) {
	sh, _ := NewFragmentShader()
	MainFun0(sh, func(s *Scope[Void]) {
		s.VarInt(Int(0)) // subscope 0, handle 0

		s.When(Bool(true), func(inner *Scope[Void]) {
			v := inner.VarInt(Int(1))
			fv, ok := v.handle.(ir.FunVar)
			if !ok {
				t.Fatalf("v.handle = %T, want ir.FunVar", v.handle)
			}
			if fv.Subscope != 1 {
				t.Errorf("nested local Subscope = %d, want 1", fv.Subscope)
			}
			if fv.Handle != 0 {
				t.Errorf("nested local Handle = %d, want 0", fv.Handle)
			}
		})
	})
}

func TestIfElseIfElseInstructionSequenceShape(t *testing.T) {
	sh, _ := NewFragmentShader()
	MainFun0(sh, func(s *Scope[Void]) {
		s.When(Bool(true), func(s *Scope[Void]) {}).
			ElseIf(Bool(false), func(s *Scope[Void]) {}).
			Else(func(s *Scope[Void]) {})
	})

	instrs := sh.Module().Decls[0].Kind.(ir.DeclMain).Fun.Scope.Instructions
	if len(instrs) != 3 {
		t.Fatalf("len(Instructions) = %d, want 3 (If, ElseIf, Else)", len(instrs))
	}
	if _, ok := instrs[0].Kind.(ir.If); !ok {
		t.Errorf("Instructions[0].Kind = %T, want ir.If", instrs[0].Kind)
	}
	if _, ok := instrs[1].Kind.(ir.ElseIf); !ok {
		t.Errorf("Instructions[1].Kind = %T, want ir.ElseIf", instrs[1].Kind)
	}
	if _, ok := instrs[2].Kind.(ir.Else); !ok {
		t.Errorf("Instructions[2].Kind = %T, want ir.Else", instrs[2].Kind)
	}
}

func TestForLoopInstructionShape(t *testing.T) {
	sh, _ := NewFragmentShader()
	MainFun0(sh, func(s *Scope[Void]) {
		s.LoopForInt(Int(0),
			func(i ExprInt) ExprBool { return Lt(i, Int(10)) },
			func(i ExprInt) ExprInt { return i.Add(Int(1)) },
			func(s *Scope[Void], i ExprInt) {})
	})

	instrs := sh.Module().Decls[0].Kind.(ir.DeclMain).Fun.Scope.Instructions
	if len(instrs) != 1 {
		t.Fatalf("len(Instructions) = %d, want 1", len(instrs))
	}
	forInstr, ok := instrs[0].Kind.(ir.For)
	if !ok {
		t.Fatalf("Instructions[0].Kind = %T, want ir.For", instrs[0].Kind)
	}
	if !forInstr.InitType.Equal(ir.NewScalar(ir.PrimInt)) {
		t.Errorf("InitType = %v, want int scalar", forInstr.InitType)
	}
	if _, ok := forInstr.Cond.Kind.(ir.Binary); !ok {
		t.Errorf("Cond.Kind = %T, want ir.Binary", forInstr.Cond.Kind)
	}
}

func TestArrayLiteralRoundTrip(t *testing.T) {
	arr := NewArrayFloat(Float(1), Float(2), Float(3))
	lit, ok := arr.exprErased().Kind.(ir.LitArray)
	if !ok {
		t.Fatalf("exprErased().Kind = %T, want ir.LitArray", arr.exprErased().Kind)
	}
	if len(lit.Elems) != 3 {
		t.Fatalf("len(Elems) = %d, want 3", len(lit.Elems))
	}
	for i, want := range []float32{1, 2, 3} {
		got, ok := lit.Elems[i].Kind.(ir.LitFloat)
		if !ok {
			t.Fatalf("Elems[%d].Kind = %T, want ir.LitFloat", i, lit.Elems[i].Kind)
		}
		if float32(got) != want {
			t.Errorf("Elems[%d] = %v, want %v", i, float32(got), want)
		}
	}
	if !lit.Type.Equal(ir.ArrayOf(ir.NewScalar(ir.PrimFloat), 3)) {
		t.Errorf("Type = %v, want float[3]", lit.Type)
	}
}

func TestUserFunctionArityAndArgTypes(t *testing.T) {
	sh, _ := NewFragmentShader()
	Fn2(sh, func(s *Scope[ExprFloat], a ExprFloat, b ExprInt) {
		s.Leave(a)
	})

	decl := sh.Module().Decls[0].Kind.(ir.DeclFunDef)
	if len(decl.Fun.Args) != 2 {
		t.Fatalf("len(Args) = %d, want 2", len(decl.Fun.Args))
	}
	if !decl.Fun.Args[0].Equal(ir.NewScalar(ir.PrimFloat)) {
		t.Errorf("Args[0] = %v, want float scalar", decl.Fun.Args[0])
	}
	if !decl.Fun.Args[1].Equal(ir.NewScalar(ir.PrimInt)) {
		t.Errorf("Args[1] = %v, want int scalar", decl.Fun.Args[1])
	}
	if _, ok := decl.Fun.Ret.Kind.(ir.ReturnValue); !ok {
		t.Errorf("Ret.Kind = %T, want ir.ReturnValue", decl.Fun.Ret.Kind)
	}
}

func TestConstantAndInputGlobalsNumberInOrder(t *testing.T) {
	sh, _ := NewFragmentShader()
	Constant(sh, Float(1))
	Input[ExprInt](sh)
	out := OutputFloat(sh)

	if len(sh.Module().Decls) != 3 {
		t.Fatalf("len(Decls) = %d, want 3", len(sh.Module().Decls))
	}
	c := sh.Module().Decls[0].Kind.(ir.DeclConst)
	in := sh.Module().Decls[1].Kind.(ir.DeclIn)
	o := sh.Module().Decls[2].Kind.(ir.DeclOut)
	if c.Index != 0 || in.Index != 1 || o.Index != 2 {
		t.Errorf("global indices = %d, %d, %d, want 0, 1, 2", c.Index, in.Index, o.Index)
	}
	outHandle := out.handle.(ir.Global)
	if outHandle.Index != 2 {
		t.Errorf("output handle index = %d, want 2", outHandle.Index)
	}
}
