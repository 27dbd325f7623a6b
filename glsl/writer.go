// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package glsl

import (
	"fmt"
	"strings"

	"github.com/gogpu/shade/ir"
)

// Writer walks a Module and accumulates GLSL source text. Unlike the
// teacher's Writer, identifier assignment needs no uniqueness pass: every
// name is a deterministic function of the handle it names (see
// globalName, funcName, argName and localName below), so two distinct
// handles never produce the same text.
type Writer struct {
	module  *ir.Module
	options *Options

	out    strings.Builder
	indent int
}

func newWriter(module *ir.Module, options *Options) *Writer {
	return &Writer{module: module, options: options}
}

// String returns the GLSL source accumulated so far.
func (w *Writer) String() string { return w.out.String() }

// Identifier scheme. Every handle kind gets its own deterministic,
// collision-free prefix, so there is no namer and no escaping pass: none
// of these prefixes can collide with a GLSL keyword or gl_* built-in.

func globalName(idx uint16) string             { return fmt.Sprintf("g_%d", idx) }
func funcName(idx uint16) string               { return fmt.Sprintf("fn_%d", idx) }
func argName(idx uint16) string                { return fmt.Sprintf("a%d", idx) }
func localName(subscope, handle uint16) string { return fmt.Sprintf("l_%d_%d", subscope, handle) }

// writeModule emits the whole module: version directive, precision
// qualifiers (ES only), then one top-level declaration per ShaderDecl in
// registration order, matching the order spec'd for Module.Decls.
func (w *Writer) writeModule() error {
	w.writeVersionDirective()
	w.writePrecisionQualifiers()

	for _, decl := range w.module.Decls {
		if err := w.writeDecl(decl.Kind); err != nil {
			return err
		}
	}
	return nil
}

func (w *Writer) writeVersionDirective() {
	w.writeLine("#version %s", w.options.LangVersion.String())
	w.writeLine("")
}

func (w *Writer) writePrecisionQualifiers() {
	if !w.options.LangVersion.ES || !w.options.ForceHighPrecision {
		return
	}
	w.writeLine("precision highp float;")
	w.writeLine("precision highp int;")
	w.writeLine("")
}

func (w *Writer) writeDecl(kind ir.DeclKind) error {
	switch d := kind.(type) {
	case ir.DeclConst:
		return w.writeConst(d)
	case ir.DeclIn:
		return w.writeGlobalIO("in", d.Index, d.Type)
	case ir.DeclOut:
		return w.writeGlobalIO("out", d.Index, d.Type)
	case ir.DeclFunDef:
		return w.writeFunDef(d)
	case ir.DeclMain:
		return w.writeMain(d)
	default:
		return fmt.Errorf("glsl: unsupported declaration kind %T", kind)
	}
}

func (w *Writer) writeConst(d ir.DeclConst) error {
	typ, err := typeToGLSL(d.Type)
	if err != nil {
		return err
	}
	value, err := w.writeExpr(d.Expr)
	if err != nil {
		return err
	}
	w.writeLine("const %s %s = %s;", typ, globalName(d.Index), value)
	return nil
}

func (w *Writer) writeGlobalIO(qualifier string, idx uint16, t ir.Type) error {
	typ, err := typeToGLSL(t)
	if err != nil {
		return err
	}
	w.writeLine("%s %s %s;", qualifier, typ, globalName(idx))
	return nil
}

func (w *Writer) writeFunDef(d ir.DeclFunDef) error {
	w.writeLine("")
	ret, err := returnTypeName(d.Fun.Ret)
	if err != nil {
		return err
	}

	args := make([]string, len(d.Fun.Args))
	for i, t := range d.Fun.Args {
		typ, err := typeToGLSL(t)
		if err != nil {
			return err
		}
		args[i] = fmt.Sprintf("%s %s", typ, argName(uint16(i)))
	}

	w.writeLine("%s %s(%s) {", ret, funcName(d.Index), strings.Join(args, ", "))
	w.pushIndent()
	if err := w.writeScope(d.Fun.Scope); err != nil {
		return err
	}
	w.popIndent()
	w.writeLine("}")
	return nil
}

func (w *Writer) writeMain(d ir.DeclMain) error {
	w.writeLine("")
	w.writeLine("void main() {")
	w.pushIndent()
	if err := w.writeScope(d.Fun.Scope); err != nil {
		return err
	}
	w.popIndent()
	w.writeLine("}")
	return nil
}

// returnTypeName returns the GLSL spelling of a function's declared
// return shape: "void" for ReturnVoid, or the type name for ReturnValue.
func returnTypeName(ret ir.ErasedReturn) (string, error) {
	switch r := ret.Kind.(type) {
	case ir.ReturnVoid:
		return "void", nil
	case ir.ReturnValue:
		return typeToGLSL(r.Type)
	default:
		return "", fmt.Errorf("glsl: unsupported return kind %T", ret.Kind)
	}
}

// Output helpers, in the teacher's indent-and-format style.

func (w *Writer) writeLine(format string, args ...any) {
	w.writeIndent()
	if len(args) == 0 {
		w.out.WriteString(format)
	} else {
		fmt.Fprintf(&w.out, format, args...)
	}
	w.out.WriteByte('\n')
}

func (w *Writer) writeIndent() {
	for i := 0; i < w.indent; i++ {
		w.out.WriteString("    ")
	}
}

func (w *Writer) pushIndent() { w.indent++ }

func (w *Writer) popIndent() {
	if w.indent > 0 {
		w.indent--
	}
}

// formatFloat formats a float32 for GLSL output, ensuring it always reads
// back as a float literal rather than an integer.
func formatFloat(f float32) string {
	s := fmt.Sprintf("%g", f)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}
