package shade

import "github.com/gogpu/shade/ir"

// Shader is the owned, single-stage tree a program assembles: a constant
// and input/output global list plus a function table, always exactly one
// of which is the distinguished entry point. Shader values are built up
// by calling Fn*, MainFun0, Constant, Input and the Output* family against
// them; once built, a Shader is handed to a glsl printer.
type Shader struct {
	mod *ir.Module
}

// Module returns the underlying erased module, for the glsl package.
func (sh *Shader) Module() *ir.Module { return sh.mod }

func newShader(stage ir.Stage) *Shader {
	return &Shader{mod: &ir.Module{Stage: stage}}
}

// NewVertexShader starts a vertex-stage shader and its built-in
// environment.
func NewVertexShader() (*Shader, VertexShaderEnv) {
	sh := newShader(ir.StageVertex)
	return sh, newVertexShaderEnv()
}

// NewTessControlShader starts a tessellation-control-stage shader and its
// built-in environment.
func NewTessControlShader() (*Shader, TessCtrlShaderEnv) {
	sh := newShader(ir.StageTessControl)
	return sh, newTessCtrlShaderEnv()
}

// NewTessEvalShader starts a tessellation-evaluation-stage shader and its
// built-in environment.
func NewTessEvalShader() (*Shader, TessEvalShaderEnv) {
	sh := newShader(ir.StageTessEval)
	return sh, newTessEvalShaderEnv()
}

// NewGeometryShader starts a geometry-stage shader and its built-in
// environment.
func NewGeometryShader() (*Shader, GeometryShaderEnv) {
	sh := newShader(ir.StageGeometry)
	return sh, newGeometryShaderEnv()
}

// NewFragmentShader starts a fragment-stage shader and its built-in
// environment.
func NewFragmentShader() (*Shader, FragmentShaderEnv) {
	sh := newShader(ir.StageFragment)
	return sh, newFragmentShaderEnv()
}

// MainFun0 registers sh's distinguished, argument-less entry point. A
// Shader must get exactly one MainFun0 call; a second call panics, the
// same way the module it builds cannot hold two DeclMain entries.
func MainFun0[R Returnable](sh *Shader, build func(*Scope[R])) {
	if sh.mod.HasMain() {
		panic("shade: shader already has a main function")
	}
	s := newRootScope[R]()
	build(s)
	sh.mod.Decls = append(sh.mod.Decls, ir.ShaderDecl{
		Kind: ir.DeclMain{Fun: ir.ErasedFun{Scope: *s.scope, Ret: declaredReturn[R]()}},
	})
}

func globalValue[T Equatable](idx uint16) T {
	var zero T
	v := any(zero).(argConstructible).fromKind(ir.MutVar{Handle: ir.Global{Index: idx}})
	return v.(T)
}

// Constant declares a module-scope constant initialized from value and
// returns an expression referencing it.
func Constant[T Equatable](sh *Shader, value T) T {
	idx := sh.mod.NextGlobalHandle
	sh.mod.NextGlobalHandle++
	sh.mod.Decls = append(sh.mod.Decls, ir.ShaderDecl{
		Kind: ir.DeclConst{Index: idx, Type: value.exprType(), Expr: value.exprErased()},
	})
	return globalValue[T](idx)
}

// Input declares a shader input of the given type and returns an
// expression referencing it. The concrete type argument fixes which
// input slot this call declares: Input[ExprFloatV3](sh) for a vec3 input,
// and so on.
func Input[T Equatable](sh *Shader) T {
	var zero T
	idx := sh.mod.NextGlobalHandle
	sh.mod.NextGlobalHandle++
	sh.mod.Decls = append(sh.mod.Decls, ir.ShaderDecl{Kind: ir.DeclIn{Index: idx, Type: zero.exprType()}})
	return globalValue[T](idx)
}

func declareOutput(sh *Shader, t ir.Type) ir.ScopedHandle {
	idx := sh.mod.NextGlobalHandle
	sh.mod.NextGlobalHandle++
	sh.mod.Decls = append(sh.mod.Decls, ir.ShaderDecl{Kind: ir.DeclOut{Index: idx, Type: t}})
	return ir.Global{Index: idx}
}

// OutputInt, OutputIntV2/3/4, OutputUInt..., OutputFloat... and
// OutputBool... declare a shader output of the matching shape and return
// the mutable Var used to write to it, one function per concrete type for
// the same reason Var itself is a family of concrete types rather than
// one generic.

func OutputInt(sh *Shader) VarInt { return VarInt{declareOutput(sh, ir.NewScalar(ir.PrimInt))} }
func OutputIntV2(sh *Shader) VarIntV2 {
	return VarIntV2{declareOutput(sh, ir.NewVector(ir.PrimInt, ir.D2))}
}
func OutputIntV3(sh *Shader) VarIntV3 {
	return VarIntV3{declareOutput(sh, ir.NewVector(ir.PrimInt, ir.D3))}
}
func OutputIntV4(sh *Shader) VarIntV4 {
	return VarIntV4{declareOutput(sh, ir.NewVector(ir.PrimInt, ir.D4))}
}

func OutputUInt(sh *Shader) VarUInt { return VarUInt{declareOutput(sh, ir.NewScalar(ir.PrimUInt))} }
func OutputUIntV2(sh *Shader) VarUIntV2 {
	return VarUIntV2{declareOutput(sh, ir.NewVector(ir.PrimUInt, ir.D2))}
}
func OutputUIntV3(sh *Shader) VarUIntV3 {
	return VarUIntV3{declareOutput(sh, ir.NewVector(ir.PrimUInt, ir.D3))}
}
func OutputUIntV4(sh *Shader) VarUIntV4 {
	return VarUIntV4{declareOutput(sh, ir.NewVector(ir.PrimUInt, ir.D4))}
}

func OutputFloat(sh *Shader) VarFloat {
	return VarFloat{declareOutput(sh, ir.NewScalar(ir.PrimFloat))}
}
func OutputFloatV2(sh *Shader) VarFloatV2 {
	return VarFloatV2{declareOutput(sh, ir.NewVector(ir.PrimFloat, ir.D2))}
}
func OutputFloatV3(sh *Shader) VarFloatV3 {
	return VarFloatV3{declareOutput(sh, ir.NewVector(ir.PrimFloat, ir.D3))}
}
func OutputFloatV4(sh *Shader) VarFloatV4 {
	return VarFloatV4{declareOutput(sh, ir.NewVector(ir.PrimFloat, ir.D4))}
}

func OutputBool(sh *Shader) VarBool { return VarBool{declareOutput(sh, ir.NewScalar(ir.PrimBool))} }
func OutputBoolV2(sh *Shader) VarBoolV2 {
	return VarBoolV2{declareOutput(sh, ir.NewVector(ir.PrimBool, ir.D2))}
}
func OutputBoolV3(sh *Shader) VarBoolV3 {
	return VarBoolV3{declareOutput(sh, ir.NewVector(ir.PrimBool, ir.D3))}
}
func OutputBoolV4(sh *Shader) VarBoolV4 {
	return VarBoolV4{declareOutput(sh, ir.NewVector(ir.PrimBool, ir.D4))}
}
