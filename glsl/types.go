// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package glsl

import (
	"fmt"
	"strings"

	"github.com/gogpu/shade/ir"
)

// glslTypeInt, glslTypeUint and glslTypeFloat are the GLSL scalar type
// names, pulled out as constants for repeated use the same way the
// teacher names its own scalar constants.
const (
	glslTypeInt   = "int"
	glslTypeUint  = "uint"
	glslTypeFloat = "float"
	glslTypeBool  = "bool"
)

// scalarNames maps a primitive kind to its {scalar, vec2, vec3, vec4}
// GLSL spellings, indexed by ir.Dimension.
var scalarNames = map[ir.Prim][4]string{
	ir.PrimInt:   {glslTypeInt, "ivec2", "ivec3", "ivec4"},
	ir.PrimUInt:  {glslTypeUint, "uvec2", "uvec3", "uvec4"},
	ir.PrimFloat: {glslTypeFloat, "vec2", "vec3", "vec4"},
	ir.PrimBool:  {glslTypeBool, "bvec2", "bvec3", "bvec4"},
}

// baseTypeName returns the GLSL name for t's primitive/dimension pair,
// ignoring any array extents.
func baseTypeName(t ir.Type) (string, error) {
	names, ok := scalarNames[t.Prim]
	if !ok {
		return "", fmt.Errorf("glsl: unknown primitive %v", t.Prim)
	}
	return names[t.Dim], nil
}

// arraySuffix returns the outer-to-inner "[n][m]..." suffix for t's array
// extents, or "" if t is not an array.
func arraySuffix(t ir.Type) string {
	if !t.IsArray() {
		return ""
	}
	var b strings.Builder
	for _, n := range t.ArrayDims {
		fmt.Fprintf(&b, "[%d]", n)
	}
	return b.String()
}

// typeToGLSL returns the full GLSL spelling of t, including any array
// suffix, for use where a type name appears standalone (a constructor
// call, a cast, a local variable's base type written out in full).
func typeToGLSL(t ir.Type) (string, error) {
	base, err := baseTypeName(t)
	if err != nil {
		return "", err
	}
	return base + arraySuffix(t), nil
}
