// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package glsl prints a shade ir.Module to GLSL-family source text.
//
// Writer walks a Module's declarations in registration order and emits
// one top-level GLSL declaration per ir.ShaderDecl: constants and
// in/out globals as plain variable declarations, user functions and the
// distinguished entry point as GLSL function definitions.
//
// # Basic usage
//
//	source, err := glsl.Compile(module, glsl.DefaultOptions(ir.StageFragment))
//
// # Precedence
//
// Expression printing is precedence-aware: a binary node is wrapped in
// parentheses only when its child's operator binds less tightly,
// matching ordinary C-family reading rules rather than unconditionally
// parenthesizing every node.
//
// # Validation
//
// The printer does not validate the IR beyond what it needs to print it:
// per the eDSL's design, malformed trees are prevented by the typed
// builder layer (package shade) at construction time, not rechecked
// here. The one exception is built-in/function handles with no known
// target-language name, which Writer reports as an error rather than
// emitting broken text.
package glsl
