// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package glsl

import (
	"fmt"

	"github.com/gogpu/shade/ir"
)

// writeScope writes every instruction in scope's list, in order, merging
// a consecutive If/ElseIf*/Else? run into a single if/else-if/else
// cascade the same way the builder recorded it as one chain (see
// shade.IfChain) rather than as independent statements.
func (w *Writer) writeScope(scope ir.ErasedScope) error {
	instrs := scope.Instructions
	for i := 0; i < len(instrs); {
		ifInstr, ok := instrs[i].Kind.(ir.If)
		if !ok {
			if err := w.writeInstr(instrs[i].Kind); err != nil {
				return err
			}
			i++
			continue
		}

		cond, err := w.writeExpr(ifInstr.Cond)
		if err != nil {
			return err
		}
		w.writeLine("if (%s) {", cond)
		w.pushIndent()
		if err := w.writeScope(ifInstr.Body); err != nil {
			return err
		}
		w.popIndent()
		i++

		for i < len(instrs) {
			elseIf, isElseIf := instrs[i].Kind.(ir.ElseIf)
			els, isElse := instrs[i].Kind.(ir.Else)
			if !isElseIf && !isElse {
				break
			}

			if isElseIf {
				cond, err := w.writeExpr(elseIf.Cond)
				if err != nil {
					return err
				}
				w.writeLine("} else if (%s) {", cond)
				w.pushIndent()
				if err := w.writeScope(elseIf.Body); err != nil {
					return err
				}
				w.popIndent()
			} else {
				w.writeLine("} else {")
				w.pushIndent()
				if err := w.writeScope(els.Body); err != nil {
					return err
				}
				w.popIndent()
			}
			i++
		}
		w.writeLine("}")
	}
	return nil
}

// writeInstr writes every non-If/ElseIf/Else instruction kind. If/ElseIf/
// Else are only ever reached through writeScope's cascade merge, never
// here, since a bare If is always the head of a cascade.
func (w *Writer) writeInstr(kind ir.InstrKind) error {
	switch k := kind.(type) {
	case ir.VarDecl:
		return w.writeVarDecl(k)
	case ir.Return:
		return w.writeReturn(k)
	case ir.Continue:
		w.writeLine("continue;")
		return nil
	case ir.Break:
		w.writeLine("break;")
		return nil
	case ir.For:
		return w.writeFor(k)
	case ir.While:
		return w.writeWhile(k)
	case ir.MutateVar:
		return w.writeMutateVar(k)
	case ir.ExprStmt:
		return w.writeExprStmt(k)
	default:
		return fmt.Errorf("glsl: unsupported instruction kind %T", kind)
	}
}

func (w *Writer) writeVarDecl(d ir.VarDecl) error {
	typ, err := typeToGLSL(d.Type)
	if err != nil {
		return err
	}
	name, err := w.resolveHandle(d.Handle)
	if err != nil {
		return err
	}
	init, err := w.writeExpr(d.Init)
	if err != nil {
		return err
	}
	w.writeLine("%s %s = %s;", typ, name, init)
	return nil
}

func (w *Writer) writeReturn(r ir.Return) error {
	switch v := r.Value.Kind.(type) {
	case ir.ReturnVoid:
		w.writeLine("return;")
		return nil
	case ir.ReturnValue:
		expr, err := w.writeExpr(v.Expr)
		if err != nil {
			return err
		}
		w.writeLine("return %s;", expr)
		return nil
	default:
		return fmt.Errorf("glsl: unsupported return kind %T", r.Value.Kind)
	}
}

func (w *Writer) writeFor(f ir.For) error {
	typ, err := typeToGLSL(f.InitType)
	if err != nil {
		return err
	}
	name, err := w.resolveHandle(f.InitHandle)
	if err != nil {
		return err
	}
	init, err := w.writeExpr(f.InitExpr)
	if err != nil {
		return err
	}
	cond, err := w.writeExpr(f.Cond)
	if err != nil {
		return err
	}
	post, err := w.writeExpr(f.Post)
	if err != nil {
		return err
	}

	w.writeLine("for (%s %s = %s; %s; %s = %s) {", typ, name, init, cond, name, post)
	w.pushIndent()
	if err := w.writeScope(forBody(f)); err != nil {
		return err
	}
	w.popIndent()
	w.writeLine("}")
	return nil
}

// forBody returns f.Body with its leading induction VarDecl stripped: the
// builder records that declaration as Body's first instruction (so the
// sub-scope's instruction list matches what the induction variable's
// declaration site looks like to everything else in the tree), but the
// for-header above already declares and initializes the same handle, so
// printing it again inside the braces would redeclare it.
func forBody(f ir.For) ir.ErasedScope {
	instrs := f.Body.Instructions
	if len(instrs) == 0 {
		return f.Body
	}
	decl, ok := instrs[0].Kind.(ir.VarDecl)
	if !ok {
		return f.Body
	}
	if h, ok := decl.Handle.(ir.FunVar); !ok || h != f.InitHandle {
		return f.Body
	}
	body := f.Body
	body.Instructions = instrs[1:]
	return body
}

func (w *Writer) writeWhile(wh ir.While) error {
	cond, err := w.writeExpr(wh.Cond)
	if err != nil {
		return err
	}
	w.writeLine("while (%s) {", cond)
	w.pushIndent()
	if err := w.writeScope(wh.Body); err != nil {
		return err
	}
	w.popIndent()
	w.writeLine("}")
	return nil
}

func (w *Writer) writeMutateVar(m ir.MutateVar) error {
	target, err := w.writeExpr(m.Target)
	if err != nil {
		return err
	}
	value, err := w.writeExpr(m.Expr)
	if err != nil {
		return err
	}
	w.writeLine("%s = %s;", target, value)
	return nil
}

func (w *Writer) writeExprStmt(e ir.ExprStmt) error {
	expr, err := w.writeExpr(e.Expr)
	if err != nil {
		return err
	}
	w.writeLine("%s;", expr)
	return nil
}
