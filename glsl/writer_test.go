// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package glsl

import (
	"strings"
	"testing"

	"github.com/gogpu/shade/ir"
	"github.com/gogpu/shade/shade"
)

func compile(t *testing.T, sh *shade.Shader, stage ir.Stage) string {
	t.Helper()
	out, err := Compile(sh.Module(), DefaultOptions(stage))
	if err != nil {
		t.Fatalf("Compile() error = %v", err)
	}
	return out
}

func TestCompileEmptyFragmentShader(t *testing.T) {
	sh, _ := shade.NewFragmentShader()
	shade.MainFun0(sh, func(s *shade.Scope[shade.Void]) {})

	got := compile(t, sh, ir.StageFragment)
	want := "#version 330 core\n\n\nvoid main() {\n}\n"
	if got != want {
		t.Fatalf("Compile() = %q, want %q", got, want)
	}
}

func TestCompileEmptyFragmentShaderES(t *testing.T) {
	sh, _ := shade.NewFragmentShader()
	shade.MainFun0(sh, func(s *shade.Scope[shade.Void]) {})

	opts := DefaultOptions(ir.StageFragment)
	opts.LangVersion = VersionES300
	got, err := Compile(sh.Module(), opts)
	if err != nil {
		t.Fatalf("Compile() error = %v", err)
	}
	want := "#version 300 es\n\nprecision highp float;\nprecision highp int;\n\n\nvoid main() {\n}\n"
	if got != want {
		t.Fatalf("Compile() = %q, want %q", got, want)
	}
}

func TestCompileConstantsAndIO(t *testing.T) {
	sh, _ := shade.NewFragmentShader()
	shade.Constant(sh, shade.Float(2))
	shade.Input[shade.ExprFloatV3](sh)
	out := shade.OutputFloatV4(sh)
	shade.MainFun0(sh, func(s *shade.Scope[shade.Void]) {
		s.Set(out, shade.FloatV4(1, 1, 1, 1))
	})

	got := compile(t, sh, ir.StageFragment)
	for _, want := range []string{
		"const float g_0 = 2.0;\n",
		"in vec3 g_1;\n",
		"out vec4 g_2;\n",
		"g_2 = vec4(1.0, 1.0, 1.0, 1.0);",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("Compile() = %q, missing %q", got, want)
		}
	}
}

func TestExpressionPrecedenceLeftAssociativeSubtraction(t *testing.T) {
	sh, _ := shade.NewFragmentShader()
	out := shade.OutputFloat(sh)
	shade.MainFun0(sh, func(s *shade.Scope[shade.Void]) {
		a, b, c := shade.Float(1), shade.Float(2), shade.Float(3)
		// a - (b - c): the right operand must be parenthesized even
		// though subtraction binds at the same precedence as itself.
		s.Set(out, a.Sub(b.Sub(c)))
	})

	got := compile(t, sh, ir.StageFragment)
	if !strings.Contains(got, "g_0 = 1.0 - (2.0 - 3.0);") {
		t.Fatalf("Compile() = %q, want expression g_0 = 1.0 - (2.0 - 3.0);", got)
	}
}

func TestExpressionPrecedenceLeftOperandNoParens(t *testing.T) {
	sh, _ := shade.NewFragmentShader()
	out := shade.OutputFloat(sh)
	shade.MainFun0(sh, func(s *shade.Scope[shade.Void]) {
		a, b, c := shade.Float(1), shade.Float(2), shade.Float(3)
		// (a - b) - c: the left operand never needs parens at equal
		// precedence.
		s.Set(out, a.Sub(b).Sub(c))
	})

	got := compile(t, sh, ir.StageFragment)
	if !strings.Contains(got, "g_0 = 1.0 - 2.0 - 3.0;") {
		t.Fatalf("Compile() = %q, want expression g_0 = 1.0 - 2.0 - 3.0;", got)
	}
}

func TestExpressionPrecedenceMulBindsTighterThanAdd(t *testing.T) {
	sh, _ := shade.NewFragmentShader()
	out := shade.OutputFloat(sh)
	shade.MainFun0(sh, func(s *shade.Scope[shade.Void]) {
		a, b, c := shade.Float(1), shade.Float(2), shade.Float(3)
		s.Set(out, a.Add(b.Mul(c)))
	})

	got := compile(t, sh, ir.StageFragment)
	if !strings.Contains(got, "g_0 = 1.0 + 2.0 * 3.0;") {
		t.Fatalf("Compile() = %q, want expression g_0 = 1.0 + 2.0 * 3.0;", got)
	}
	if strings.Contains(got, "(2.0 * 3.0)") {
		t.Fatalf("Compile() = %q, should not parenthesize higher-precedence child", got)
	}
}

func TestCompileIfElseIfElseCascade(t *testing.T) {
	sh, _ := shade.NewFragmentShader()
	out := shade.OutputInt(sh)
	shade.MainFun0(sh, func(s *shade.Scope[shade.Void]) {
		x := shade.Int(1)
		s.When(shade.Lt(x, shade.Int(0)), func(s *shade.Scope[shade.Void]) {
			s.Set(out, shade.Int(-1))
		}).ElseIf(shade.Eq(x, shade.Int(0)), func(s *shade.Scope[shade.Void]) {
			s.Set(out, shade.Int(0))
		}).Else(func(s *shade.Scope[shade.Void]) {
			s.Set(out, shade.Int(1))
		})
	})

	got := compile(t, sh, ir.StageFragment)
	want := "if (1 < 0) {\n" +
		"        g_0 = -1;\n" +
		"    } else if (1 == 0) {\n" +
		"        g_0 = 0;\n" +
		"    } else {\n" +
		"        g_0 = 1;\n" +
		"    }\n"
	if !strings.Contains(got, want) {
		t.Fatalf("Compile() = %q, want cascade %q", got, want)
	}
}

func TestCompileForLoop(t *testing.T) {
	sh, _ := shade.NewFragmentShader()
	out := shade.OutputInt(sh)
	shade.MainFun0(sh, func(s *shade.Scope[shade.Void]) {
		acc := s.VarInt(shade.Int(0))
		s.LoopForInt(shade.Int(0),
			func(i shade.ExprInt) shade.ExprBool { return shade.Lt(i, shade.Int(4)) },
			func(i shade.ExprInt) shade.ExprInt { return i.Add(shade.Int(1)) },
			func(s *shade.Scope[shade.Void], i shade.ExprInt) {
				s.Set(acc, acc.Get().Add(i))
			})
		s.Set(out, acc.Get())
	})

	got := compile(t, sh, ir.StageFragment)
	want := "for (int l_1_0 = 0; l_1_0 < 4; l_1_0 = l_1_0 + 1) {\n" +
		"        l_0_0 = l_0_0 + l_1_0;\n" +
		"    }\n"
	if !strings.Contains(got, want) {
		t.Fatalf("Compile() = %q, want for-loop %q", got, want)
	}
}

func TestCompileWhileLoop(t *testing.T) {
	sh, _ := shade.NewFragmentShader()
	shade.MainFun0(sh, func(s *shade.Scope[shade.Void]) {
		n := s.VarInt(shade.Int(4))
		s.LoopWhile(func() shade.ExprBool { return shade.Lt(shade.Int(0), n.Get()) }, func(s *shade.Scope[shade.Void]) {
			s.Set(n, n.Get().Sub(shade.Int(1)))
		})
	})

	got := compile(t, sh, ir.StageFragment)
	want := "while (0 < l_0_0) {\n" +
		"        l_0_0 = l_0_0 - 1;\n" +
		"    }\n"
	if !strings.Contains(got, want) {
		t.Fatalf("Compile() = %q, want while-loop %q", got, want)
	}
}

func TestCompileUserFunctionCall(t *testing.T) {
	sh, _ := shade.NewFragmentShader()
	double := shade.Fn1(sh, func(s *shade.Scope[shade.ExprFloat], a shade.ExprFloat) {
		s.Leave(a.Mul(shade.Float(2)))
	})
	out := shade.OutputFloat(sh)
	shade.MainFun0(sh, func(s *shade.Scope[shade.Void]) {
		s.Set(out, double.Call(shade.Float(3)))
	})

	got := compile(t, sh, ir.StageFragment)
	for _, want := range []string{
		"float fn_0(float a0) {\n    return a0 * 2.0;\n}",
		"g_0 = fn_0(3.0);",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("Compile() = %q, missing %q", got, want)
		}
	}
}

func TestCompileSwizzle(t *testing.T) {
	sh, env := shade.NewFragmentShader()
	out := shade.OutputFloatV2(sh)
	shade.MainFun0(sh, func(s *shade.Scope[shade.Void]) {
		s.Set(out, env.FragCoord.Swizzle2(shade.Sel4X, shade.Sel4W))
	})

	got := compile(t, sh, ir.StageFragment)
	if !strings.Contains(got, "g_0 = gl_FragCoord.xw;") {
		t.Fatalf("Compile() = %q, want swizzle gl_FragCoord.xw", got)
	}
}

func TestCompileVertexShaderPosition(t *testing.T) {
	sh, env := shade.NewVertexShader()
	shade.MainFun0(sh, func(s *shade.Scope[shade.Void]) {
		s.Set(env.Position, shade.FloatV4(0, 0, 0, 1))
	})

	got := compile(t, sh, ir.StageVertex)
	if !strings.Contains(got, "gl_Position = vec4(0.0, 0.0, 0.0, 1.0);") {
		t.Fatalf("Compile() = %q, want gl_Position assignment", got)
	}
}

func TestVersionStringFormatting(t *testing.T) {
	tests := []struct {
		name string
		v    Version
		want string
	}{
		{"desktop 330", Version330, "330 core"},
		{"desktop 460", Version460, "460 core"},
		{"es 300", VersionES300, "300 es"},
		{"es 310", VersionES310, "310 es"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTypeToGLSL(t *testing.T) {
	tests := []struct {
		name string
		typ  ir.Type
		want string
	}{
		{"scalar int", ir.NewScalar(ir.PrimInt), "int"},
		{"vec3 float", ir.NewVector(ir.PrimFloat, ir.D3), "vec3"},
		{"vec4 uint", ir.NewVector(ir.PrimUInt, ir.D4), "uvec4"},
		{"vec2 bool", ir.NewVector(ir.PrimBool, ir.D2), "bvec2"},
		{"array of float", ir.ArrayOf(ir.NewScalar(ir.PrimFloat), 4), "float[4]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := typeToGLSL(tt.typ)
			if err != nil {
				t.Fatalf("typeToGLSL() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("typeToGLSL() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestForceHighPrecisionOnlyAppliesToES(t *testing.T) {
	sh, _ := shade.NewFragmentShader()
	shade.MainFun0(sh, func(s *shade.Scope[shade.Void]) {})

	opts := DefaultOptions(ir.StageFragment)
	opts.LangVersion = Version450
	got, err := Compile(sh.Module(), opts)
	if err != nil {
		t.Fatalf("Compile() error = %v", err)
	}
	if strings.Contains(got, "precision") {
		t.Fatalf("Compile() = %q, desktop GLSL must not carry precision qualifiers", got)
	}
}
