// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package glsl

import (
	"fmt"
	"strings"

	"github.com/gogpu/shade/ir"
)

// precAtomic is the precedence assigned to nodes that never need
// parenthesizing as a child: literals, variable/built-in references,
// calls, swizzles, field accesses and array lookups all print as a
// single postfix-bound token as far as any enclosing operator is
// concerned.
const precAtomic = 1000

// precedence returns the binding strength of a binary operator: higher
// binds tighter. Levels follow ordinary C-family reading order.
func precedence(op ir.BinaryOp) int {
	switch op {
	case ir.BinMul, ir.BinDiv, ir.BinRem:
		return 100
	case ir.BinAdd, ir.BinSub:
		return 90
	case ir.BinShl, ir.BinShr:
		return 80
	case ir.BinLt, ir.BinLte, ir.BinGt, ir.BinGte:
		return 70
	case ir.BinEq, ir.BinNeq:
		return 60
	case ir.BinBitAnd:
		return 50
	case ir.BinBitXor:
		return 40
	case ir.BinBitOr:
		return 30
	case ir.BinAnd:
		return 20
	case ir.BinXor:
		return 15
	case ir.BinOr:
		return 10
	default:
		return 0
	}
}

// binaryOpSymbol returns the GLSL operator spelling for op.
func binaryOpSymbol(op ir.BinaryOp) (string, error) {
	switch op {
	case ir.BinAnd:
		return "&&", nil
	case ir.BinOr:
		return "||", nil
	case ir.BinXor:
		return "^^", nil
	case ir.BinBitOr:
		return "|", nil
	case ir.BinBitAnd:
		return "&", nil
	case ir.BinBitXor:
		return "^", nil
	case ir.BinAdd:
		return "+", nil
	case ir.BinSub:
		return "-", nil
	case ir.BinMul:
		return "*", nil
	case ir.BinDiv:
		return "/", nil
	case ir.BinRem:
		return "%", nil
	case ir.BinShl:
		return "<<", nil
	case ir.BinShr:
		return ">>", nil
	case ir.BinEq:
		return "==", nil
	case ir.BinNeq:
		return "!=", nil
	case ir.BinLt:
		return "<", nil
	case ir.BinLte:
		return "<=", nil
	case ir.BinGt:
		return ">", nil
	case ir.BinGte:
		return ">=", nil
	default:
		return "", fmt.Errorf("glsl: unsupported binary operator %v", op)
	}
}

// exprPrecedence reports the precedence of e's outermost node, for
// deciding whether a parent needs to parenthesize it.
func exprPrecedence(e ir.ErasedExpr) int {
	switch k := e.Kind.(type) {
	case ir.Binary:
		return precedence(k.Op)
	case ir.Unary:
		return 110
	default:
		return precAtomic
	}
}

// writeExpr writes e as a standalone expression (a statement operand, a
// call argument, an initializer): never itself parenthesized.
func (w *Writer) writeExpr(e ir.ErasedExpr) (string, error) {
	switch k := e.Kind.(type) {
	case ir.LitInt:
		return fmt.Sprintf("%d", int32(k)), nil
	case ir.LitUInt:
		return fmt.Sprintf("%du", uint32(k)), nil
	case ir.LitFloat:
		return formatFloat(float32(k)), nil
	case ir.LitBool:
		if bool(k) {
			return "true", nil
		}
		return "false", nil
	case ir.LitInt2:
		return w.writeLitVec("ivec2", []string{fmt.Sprintf("%d", k[0]), fmt.Sprintf("%d", k[1])})
	case ir.LitInt3:
		return w.writeLitVec("ivec3", []string{fmt.Sprintf("%d", k[0]), fmt.Sprintf("%d", k[1]), fmt.Sprintf("%d", k[2])})
	case ir.LitInt4:
		return w.writeLitVec("ivec4", []string{
			fmt.Sprintf("%d", k[0]), fmt.Sprintf("%d", k[1]), fmt.Sprintf("%d", k[2]), fmt.Sprintf("%d", k[3]),
		})
	case ir.LitUInt2:
		return w.writeLitVec("uvec2", []string{fmt.Sprintf("%du", k[0]), fmt.Sprintf("%du", k[1])})
	case ir.LitUInt3:
		return w.writeLitVec("uvec3", []string{fmt.Sprintf("%du", k[0]), fmt.Sprintf("%du", k[1]), fmt.Sprintf("%du", k[2])})
	case ir.LitUInt4:
		return w.writeLitVec("uvec4", []string{
			fmt.Sprintf("%du", k[0]), fmt.Sprintf("%du", k[1]), fmt.Sprintf("%du", k[2]), fmt.Sprintf("%du", k[3]),
		})
	case ir.LitFloat2:
		return w.writeLitVec("vec2", []string{formatFloat(k[0]), formatFloat(k[1])})
	case ir.LitFloat3:
		return w.writeLitVec("vec3", []string{formatFloat(k[0]), formatFloat(k[1]), formatFloat(k[2])})
	case ir.LitFloat4:
		return w.writeLitVec("vec4", []string{formatFloat(k[0]), formatFloat(k[1]), formatFloat(k[2]), formatFloat(k[3])})
	case ir.LitBool2:
		return w.writeLitVec("bvec2", []string{litBoolStr(k[0]), litBoolStr(k[1])})
	case ir.LitBool3:
		return w.writeLitVec("bvec3", []string{litBoolStr(k[0]), litBoolStr(k[1]), litBoolStr(k[2])})
	case ir.LitBool4:
		return w.writeLitVec("bvec4", []string{litBoolStr(k[0]), litBoolStr(k[1]), litBoolStr(k[2]), litBoolStr(k[3])})
	case ir.LitArray:
		return w.writeLitArray(k)
	case ir.MutVar:
		return w.resolveHandle(k.Handle)
	case ir.ImmutBuiltIn:
		name := k.ID.GLSLName()
		if name == "" {
			return "", fmt.Errorf("glsl: unknown built-in id %d", k.ID)
		}
		return name, nil
	case ir.Unary:
		return w.writeUnary(k)
	case ir.Binary:
		return w.writeBinary(k)
	case ir.FunCall:
		return w.writeCall(k)
	case ir.Swizzle:
		return w.writeSwizzle(k)
	case ir.Field:
		return w.writeField(k)
	case ir.ArrayLookup:
		return w.writeArrayLookup(k)
	default:
		return "", fmt.Errorf("glsl: unsupported expression kind %T", e.Kind)
	}
}

func litBoolStr(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

func (w *Writer) writeLitVec(ctor string, comps []string) (string, error) {
	return fmt.Sprintf("%s(%s)", ctor, strings.Join(comps, ", ")), nil
}

// writeLitArray prints a GLSL array constructor, recursing through
// nested array extents the same way LitArray nests ErasedExpr elements.
func (w *Writer) writeLitArray(a ir.LitArray) (string, error) {
	typ, err := typeToGLSL(a.Type)
	if err != nil {
		return "", err
	}
	elems := make([]string, len(a.Elems))
	for i, e := range a.Elems {
		s, err := w.writeExpr(e)
		if err != nil {
			return "", err
		}
		elems[i] = s
	}
	return fmt.Sprintf("%s(%s)", typ, strings.Join(elems, ", ")), nil
}

// resolveHandle returns the GLSL identifier a ScopedHandle refers to.
func (w *Writer) resolveHandle(h ir.ScopedHandle) (string, error) {
	switch v := h.(type) {
	case ir.BuiltIn:
		name := v.ID.GLSLName()
		if name == "" {
			return "", fmt.Errorf("glsl: unknown built-in id %d", v.ID)
		}
		return name, nil
	case ir.Global:
		return globalName(v.Index), nil
	case ir.FunArg:
		return argName(v.Index), nil
	case ir.FunVar:
		return localName(v.Subscope, v.Handle), nil
	default:
		return "", fmt.Errorf("glsl: unsupported handle kind %T", h)
	}
}

// parenWrap wraps child's text in parentheses if child's precedence
// is too low to appear bare as an operand of a node at parentPrec binding
// on the given side. The right operand of a left-associative operator
// needs parentheses even at equal precedence (e.g. a-(b-c) is not a-b-c);
// the left operand does not.
func parenWrap(child ir.ErasedExpr, text string, parentPrec int, isRight bool) string {
	childPrec := exprPrecedence(child)
	needsParen := childPrec < parentPrec || (isRight && childPrec == parentPrec)
	if needsParen {
		return "(" + text + ")"
	}
	return text
}

func (w *Writer) writeUnary(u ir.Unary) (string, error) {
	operand, err := w.writeExpr(u.Expr)
	if err != nil {
		return "", err
	}
	operand = parenWrap(u.Expr, operand, 110, false)

	switch u.Op {
	case ir.UnaryNot:
		return "!" + operand, nil
	case ir.UnaryNeg:
		// A bare "-" in front of text already starting with "-" would
		// merge into GLSL's "--" decrement token, so force parens in
		// that case regardless of precedence (e.g. Neg(Neg(x)) or
		// Neg of a negative integer literal).
		if strings.HasPrefix(operand, "-") {
			operand = "(" + operand + ")"
		}
		return "-" + operand, nil
	default:
		return "", fmt.Errorf("glsl: unsupported unary operator %v", u.Op)
	}
}

func (w *Writer) writeBinary(b ir.Binary) (string, error) {
	left, err := w.writeExpr(b.Left)
	if err != nil {
		return "", err
	}
	right, err := w.writeExpr(b.Right)
	if err != nil {
		return "", err
	}
	sym, err := binaryOpSymbol(b.Op)
	if err != nil {
		return "", err
	}

	prec := precedence(b.Op)
	left = parenWrap(b.Left, left, prec, false)
	right = parenWrap(b.Right, right, prec, true)

	return fmt.Sprintf("%s %s %s", left, sym, right), nil
}

// funCallee resolves a FunRef to its callee name.
func (w *Writer) funCallee(ref ir.FunRef) (string, error) {
	switch f := ref.(type) {
	case ir.FunMain:
		return "main", nil
	case ir.FunUserDefined:
		return funcName(f.Index), nil
	case ir.FunIntrinsic:
		name := f.Name.GLSLName()
		if name == "" {
			return "", fmt.Errorf("glsl: unknown intrinsic %d", f.Name)
		}
		return name, nil
	default:
		return "", fmt.Errorf("glsl: unsupported function reference %T", ref)
	}
}

func (w *Writer) writeCall(c ir.FunCall) (string, error) {
	callee, err := w.funCallee(c.Handle)
	if err != nil {
		return "", err
	}
	args := make([]string, len(c.Args))
	for i, a := range c.Args {
		s, err := w.writeExpr(a)
		if err != nil {
			return "", err
		}
		args[i] = s
	}
	return fmt.Sprintf("%s(%s)", callee, strings.Join(args, ", ")), nil
}

// writeSwizzle prints each selector with its positional x/y/z/w letter.
// This eDSL's BuiltInID and Type vocabulary has no notion of colors, so
// the r/g/b/a spelling is never produced; GLSL accepts x/y/z/w on any
// vector regardless of the semantic set the source used.
func (w *Writer) writeSwizzle(s ir.Swizzle) (string, error) {
	base, err := w.writeExpr(s.Base)
	if err != nil {
		return "", err
	}
	base = parenWrap(s.Base, base, precAtomic, false)

	var sb strings.Builder
	for _, sel := range s.Selectors {
		sb.WriteByte(sel.Letter())
	}
	return fmt.Sprintf("%s.%s", base, sb.String()), nil
}

func (w *Writer) writeField(f ir.Field) (string, error) {
	obj, err := w.writeExpr(f.Object)
	if err != nil {
		return "", err
	}
	obj = parenWrap(f.Object, obj, precAtomic, false)
	return fmt.Sprintf("%s.%s", obj, f.Name), nil
}

func (w *Writer) writeArrayLookup(a ir.ArrayLookup) (string, error) {
	obj, err := w.writeExpr(a.Object)
	if err != nil {
		return "", err
	}
	obj = parenWrap(a.Object, obj, precAtomic, false)
	index, err := w.writeExpr(a.Index)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s[%s]", obj, index), nil
}
