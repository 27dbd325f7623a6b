// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package glsl

import (
	"fmt"

	"github.com/gogpu/shade/ir"
)

// Version represents a GLSL version.
type Version struct {
	Major int
	Minor int
	ES    bool // true for GLSL ES (OpenGL ES / WebGL)
}

// Common GLSL versions.
var (
	// Desktop OpenGL versions.
	Version330 = Version{Major: 3, Minor: 30, ES: false} // OpenGL 3.3 Core
	Version400 = Version{Major: 4, Minor: 0, ES: false}  // OpenGL 4.0
	Version450 = Version{Major: 4, Minor: 50, ES: false} // OpenGL 4.5
	Version460 = Version{Major: 4, Minor: 60, ES: false} // OpenGL 4.6

	// OpenGL ES / WebGL versions.
	VersionES300 = Version{Major: 3, Minor: 0, ES: true}  // ES 3.0 / WebGL 2.0
	VersionES310 = Version{Major: 3, Minor: 10, ES: true} // ES 3.1
	VersionES320 = Version{Major: 3, Minor: 20, ES: true} // ES 3.2
)

// String returns the version as a GLSL version directive value.
func (v Version) String() string {
	if v.ES {
		return fmt.Sprintf("%d%02d es", v.Major, v.Minor)
	}
	return fmt.Sprintf("%d%02d core", v.Major, v.Minor)
}

// Options configures GLSL code generation.
type Options struct {
	// LangVersion is the target GLSL version, written out in the
	// #version directive.
	LangVersion Version

	// Stage identifies which of the five shader stages mod targets.
	// Compile does not read it, nor the module's own Stage: the emitted
	// text depends only on the module's declarations, LangVersion and
	// ForceHighPrecision.
	Stage ir.Stage

	// ForceHighPrecision forces highp precision qualifiers for ES
	// targets. Ignored for desktop GLSL, which has no precision
	// qualifiers on scalar/vector types.
	ForceHighPrecision bool
}

// DefaultOptions returns sensible default options for targeting stage.
func DefaultOptions(stage ir.Stage) Options {
	return Options{
		LangVersion:        Version330,
		Stage:              stage,
		ForceHighPrecision: true,
	}
}

// Compile generates GLSL source code from an IR module.
func Compile(module *ir.Module, options Options) (string, error) {
	if options.LangVersion.Major == 0 {
		options.LangVersion = Version330
	}

	w := newWriter(module, &options)
	if err := w.writeModule(); err != nil {
		return "", fmt.Errorf("glsl: %w", err)
	}
	return w.String(), nil
}
