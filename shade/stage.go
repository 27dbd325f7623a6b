package shade

import "github.com/gogpu/shade/ir"

func immut(id ir.BuiltInID) ir.ErasedExpr { return ir.ErasedExpr{Kind: ir.ImmutBuiltIn{ID: id}} }

func varBuiltIn(id ir.BuiltInID) ir.ScopedHandle { return ir.BuiltIn{ID: id} }

// VertexShaderEnv exposes the built-ins visible to a vertex shader.
type VertexShaderEnv struct {
	VertexIndex   ExprInt
	InstanceIndex ExprInt
	BaseVertex    ExprInt
	BaseInstance  ExprInt

	Position     VarFloatV4
	PointSize    VarFloat
	ClipDistance VarArray[ExprFloat]
}

func newVertexShaderEnv() VertexShaderEnv {
	return VertexShaderEnv{
		VertexIndex:   wrapInt(ir.ImmutBuiltIn{ID: ir.BuiltInVertexIndex}),
		InstanceIndex: wrapInt(ir.ImmutBuiltIn{ID: ir.BuiltInInstanceIndex}),
		BaseVertex:    wrapInt(ir.ImmutBuiltIn{ID: ir.BuiltInBaseVertex}),
		BaseInstance:  wrapInt(ir.ImmutBuiltIn{ID: ir.BuiltInBaseInstance}),
		Position:      VarFloatV4{varBuiltIn(ir.BuiltInPosition)},
		PointSize:     VarFloat{varBuiltIn(ir.BuiltInPointSize)},
		ClipDistance:  newVarArrayFloat(varBuiltIn(ir.BuiltInClipDistance)),
	}
}

// perVertexField builds a read-only field access into an aggregate
// per-vertex-in element (e.g. gl_in[i].gl_Position).
func perVertexField(base ir.ErasedExpr, id ir.BuiltInID) ir.ErasedExpr {
	return ir.ErasedExpr{Kind: ir.Field{Object: base, Name: id.GLSLName()}}
}

func perVertexFieldArray(base ir.ErasedExpr, id ir.BuiltInID) ExprArray[ExprFloat] {
	return ExprArray[ExprFloat]{
		erased: perVertexField(base, id),
		typ:    ir.ArrayOf(ir.NewScalar(ir.PrimFloat), 0),
		wrap:   wrapFloat,
	}
}

// TessControlPerVertexIn is one element of a tessellation control shader's
// incoming per-vertex array.
type TessControlPerVertexIn struct{ erased ir.ErasedExpr }

func (p TessControlPerVertexIn) exprErased() ir.ErasedExpr { return p.erased }
func (p TessControlPerVertexIn) exprType() ir.Type         { return ir.Type{} }

func (p TessControlPerVertexIn) Position() ExprFloatV4 {
	return wrapFloatV4(perVertexField(p.erased, ir.BuiltInPerVertexPosition).Kind)
}
func (p TessControlPerVertexIn) PointSize() ExprFloat {
	return wrapFloat(perVertexField(p.erased, ir.BuiltInPerVertexPointSize).Kind)
}
func (p TessControlPerVertexIn) ClipDistance() ExprArray[ExprFloat] {
	return perVertexFieldArray(p.erased, ir.BuiltInPerVertexClipDistance)
}
func (p TessControlPerVertexIn) CullDistance() ExprArray[ExprFloat] {
	return perVertexFieldArray(p.erased, ir.BuiltInPerVertexCullDistance)
}

// TessControlPerVertexOut is one element of a tessellation control
// shader's outgoing per-vertex array: the same fields as
// TessControlPerVertexIn, but assignable.
type TessControlPerVertexOut struct{ erased ir.ErasedExpr }

func (p TessControlPerVertexOut) Position() ArrayElem[ExprFloatV4] {
	return ArrayElem[ExprFloatV4]{erased: perVertexField(p.erased, ir.BuiltInPerVertexPosition), wrap: wrapFloatV4}
}
func (p TessControlPerVertexOut) PointSize() ArrayElem[ExprFloat] {
	return ArrayElem[ExprFloat]{erased: perVertexField(p.erased, ir.BuiltInPerVertexPointSize), wrap: wrapFloat}
}

// TessControlOutArray is the gl_out[]-like output per-vertex array.
type TessControlOutArray struct{}

// At indexes the output array, almost always by InvocationID.
func (TessControlOutArray) At(index ExprInt) TessControlPerVertexOut {
	base := ir.ErasedExpr{Kind: ir.ArrayLookup{
		Object: immut(ir.BuiltInPerVertexOutArray), Index: index.erased,
	}}
	return TessControlPerVertexOut{erased: base}
}

// TessCtrlShaderEnv exposes the built-ins visible to a tessellation
// control shader.
type TessCtrlShaderEnv struct {
	PatchVerticesIn ExprInt
	PrimitiveID     ExprInt
	InvocationID    ExprInt
	In              ExprArray[TessControlPerVertexIn]
	Out             TessControlOutArray

	TessLevelOuter VarArray[ExprFloat]
	TessLevelInner VarArray[ExprFloat]
}

func newTessCtrlShaderEnv() TessCtrlShaderEnv {
	return TessCtrlShaderEnv{
		PatchVerticesIn: wrapInt(ir.ImmutBuiltIn{ID: ir.BuiltInPatchVerticesIn}),
		PrimitiveID:     wrapInt(ir.ImmutBuiltIn{ID: ir.BuiltInPrimitiveID}),
		InvocationID:    wrapInt(ir.ImmutBuiltIn{ID: ir.BuiltInInvocationID}),
		In: ExprArray[TessControlPerVertexIn]{
			erased: immut(ir.BuiltInPerVertexInArray),
			typ:    ir.Type{},
			wrap:   func(k ir.ExprKind) TessControlPerVertexIn { return TessControlPerVertexIn{ir.ErasedExpr{Kind: k}} },
		},
		Out:            TessControlOutArray{},
		TessLevelOuter: newVarArrayFloat(varBuiltIn(ir.BuiltInTessLevelOuter)),
		TessLevelInner: newVarArrayFloat(varBuiltIn(ir.BuiltInTessLevelInner)),
	}
}

// TessEvaluationPerVertexIn is one element of a tessellation evaluation
// shader's incoming per-vertex array.
type TessEvaluationPerVertexIn struct{ erased ir.ErasedExpr }

func (p TessEvaluationPerVertexIn) exprErased() ir.ErasedExpr { return p.erased }
func (p TessEvaluationPerVertexIn) exprType() ir.Type         { return ir.Type{} }

func (p TessEvaluationPerVertexIn) Position() ExprFloatV4 {
	return wrapFloatV4(perVertexField(p.erased, ir.BuiltInPerVertexPosition).Kind)
}
func (p TessEvaluationPerVertexIn) PointSize() ExprFloat {
	return wrapFloat(perVertexField(p.erased, ir.BuiltInPerVertexPointSize).Kind)
}
func (p TessEvaluationPerVertexIn) ClipDistance() ExprArray[ExprFloat] {
	return perVertexFieldArray(p.erased, ir.BuiltInPerVertexClipDistance)
}
func (p TessEvaluationPerVertexIn) CullDistance() ExprArray[ExprFloat] {
	return perVertexFieldArray(p.erased, ir.BuiltInPerVertexCullDistance)
}

// TessEvalShaderEnv exposes the built-ins visible to a tessellation
// evaluation shader.
type TessEvalShaderEnv struct {
	PatchVerticesIn ExprInt
	PrimitiveID     ExprInt
	TessCoord       ExprFloatV3
	TessLevelOuter  ExprArray[ExprFloat]
	TessLevelInner  ExprArray[ExprFloat]
	In              ExprArray[TessEvaluationPerVertexIn]

	Position     VarFloatV4
	PointSize    VarFloat
	ClipDistance VarArray[ExprFloat]
	CullDistance VarArray[ExprFloat]
}

func newTessEvalShaderEnv() TessEvalShaderEnv {
	return TessEvalShaderEnv{
		PatchVerticesIn: wrapInt(ir.ImmutBuiltIn{ID: ir.BuiltInPatchVerticesIn}),
		PrimitiveID:     wrapInt(ir.ImmutBuiltIn{ID: ir.BuiltInPrimitiveID}),
		TessCoord:       wrapFloatV3(ir.ImmutBuiltIn{ID: ir.BuiltInTessCoord}),
		TessLevelOuter: ExprArray[ExprFloat]{
			erased: immut(ir.BuiltInTessLevelOuter),
			typ:    ir.ArrayOf(ir.NewScalar(ir.PrimFloat), 4),
			wrap:   wrapFloat,
		},
		TessLevelInner: ExprArray[ExprFloat]{
			erased: immut(ir.BuiltInTessLevelInner),
			typ:    ir.ArrayOf(ir.NewScalar(ir.PrimFloat), 2),
			wrap:   wrapFloat,
		},
		In: ExprArray[TessEvaluationPerVertexIn]{
			erased: immut(ir.BuiltInPerVertexInArray),
			typ:    ir.Type{},
			wrap:   func(k ir.ExprKind) TessEvaluationPerVertexIn { return TessEvaluationPerVertexIn{ir.ErasedExpr{Kind: k}} },
		},
		Position:  VarFloatV4{varBuiltIn(ir.BuiltInPosition)},
		PointSize: VarFloat{varBuiltIn(ir.BuiltInPointSize)},
		// cull_distance must reference BuiltInCullDistance, not
		// BuiltInClipDistance: the upstream crate aliases it to the
		// clip-distance built-in by mistake.
		ClipDistance: newVarArrayFloat(varBuiltIn(ir.BuiltInClipDistance)),
		CullDistance: newVarArrayFloat(varBuiltIn(ir.BuiltInCullDistance)),
	}
}

// GeometryPerVertexIn is one element of a geometry shader's incoming
// per-vertex array.
type GeometryPerVertexIn struct{ erased ir.ErasedExpr }

func (p GeometryPerVertexIn) exprErased() ir.ErasedExpr { return p.erased }
func (p GeometryPerVertexIn) exprType() ir.Type         { return ir.Type{} }

func (p GeometryPerVertexIn) Position() ExprFloatV4 {
	return wrapFloatV4(perVertexField(p.erased, ir.BuiltInPerVertexPosition).Kind)
}
func (p GeometryPerVertexIn) PointSize() ExprFloat {
	return wrapFloat(perVertexField(p.erased, ir.BuiltInPerVertexPointSize).Kind)
}
func (p GeometryPerVertexIn) ClipDistance() ExprArray[ExprFloat] {
	return perVertexFieldArray(p.erased, ir.BuiltInPerVertexClipDistance)
}
func (p GeometryPerVertexIn) CullDistance() ExprArray[ExprFloat] {
	return perVertexFieldArray(p.erased, ir.BuiltInPerVertexCullDistance)
}

// GeometryShaderEnv exposes the built-ins visible to a geometry shader.
type GeometryShaderEnv struct {
	PrimitiveIDIn ExprInt
	InvocationID  ExprInt
	In            ExprArray[GeometryPerVertexIn]

	Position      VarFloatV4
	PointSize     VarFloat
	ClipDistance  VarArray[ExprFloat]
	CullDistance  VarArray[ExprFloat]
	PrimitiveID   VarInt
	Layer         VarInt
	ViewportIndex VarInt
}

func newGeometryShaderEnv() GeometryShaderEnv {
	return GeometryShaderEnv{
		PrimitiveIDIn: wrapInt(ir.ImmutBuiltIn{ID: ir.BuiltInPrimitiveIDIn}),
		InvocationID:  wrapInt(ir.ImmutBuiltIn{ID: ir.BuiltInInvocationID}),
		In: ExprArray[GeometryPerVertexIn]{
			erased: immut(ir.BuiltInPerVertexInArray),
			typ:    ir.Type{},
			wrap:   func(k ir.ExprKind) GeometryPerVertexIn { return GeometryPerVertexIn{ir.ErasedExpr{Kind: k}} },
		},
		Position:      VarFloatV4{varBuiltIn(ir.BuiltInPosition)},
		PointSize:     VarFloat{varBuiltIn(ir.BuiltInPointSize)},
		ClipDistance:  newVarArrayFloat(varBuiltIn(ir.BuiltInClipDistance)),
		CullDistance:  newVarArrayFloat(varBuiltIn(ir.BuiltInCullDistance)),
		PrimitiveID:   VarInt{varBuiltIn(ir.BuiltInPrimitiveID)},
		Layer:         VarInt{varBuiltIn(ir.BuiltInLayer)},
		ViewportIndex: VarInt{varBuiltIn(ir.BuiltInViewportIndex)},
	}
}

// FragmentShaderEnv exposes the built-ins visible to a fragment shader.
type FragmentShaderEnv struct {
	FragCoord         ExprFloatV4
	FrontFacing       ExprBool
	ClipDistance      ExprArray[ExprFloat]
	CullDistance      ExprArray[ExprFloat]
	PointCoord        ExprFloatV2
	PrimitiveID       ExprInt
	SampleID          ExprInt
	SamplePosition    ExprFloatV2
	SampleMaskIn      ExprInt
	Layer             ExprInt
	ViewportIndex     ExprInt
	HelperInvocation  ExprBool

	FragDepth  VarFloat
	SampleMask VarArray[ExprInt]
}

func newFragmentShaderEnv() FragmentShaderEnv {
	return FragmentShaderEnv{
		FragCoord:   wrapFloatV4(ir.ImmutBuiltIn{ID: ir.BuiltInFragCoord}),
		FrontFacing: wrapBool(ir.ImmutBuiltIn{ID: ir.BuiltInFrontFacing}),
		ClipDistance: ExprArray[ExprFloat]{
			erased: immut(ir.BuiltInClipDistance), typ: ir.ArrayOf(ir.NewScalar(ir.PrimFloat), 0), wrap: wrapFloat,
		},
		CullDistance: ExprArray[ExprFloat]{
			erased: immut(ir.BuiltInCullDistance), typ: ir.ArrayOf(ir.NewScalar(ir.PrimFloat), 0), wrap: wrapFloat,
		},
		PointCoord:       wrapFloatV2(ir.ImmutBuiltIn{ID: ir.BuiltInPointCoord}),
		PrimitiveID:      wrapInt(ir.ImmutBuiltIn{ID: ir.BuiltInPrimitiveID}),
		SampleID:         wrapInt(ir.ImmutBuiltIn{ID: ir.BuiltInSampleID}),
		SamplePosition:   wrapFloatV2(ir.ImmutBuiltIn{ID: ir.BuiltInSamplePosition}),
		SampleMaskIn:     wrapInt(ir.ImmutBuiltIn{ID: ir.BuiltInSampleMaskIn}),
		Layer:            wrapInt(ir.ImmutBuiltIn{ID: ir.BuiltInLayer}),
		ViewportIndex:    wrapInt(ir.ImmutBuiltIn{ID: ir.BuiltInViewportIndex}),
		HelperInvocation: wrapBool(ir.ImmutBuiltIn{ID: ir.BuiltInHelperInvocation}),
		FragDepth:        VarFloat{varBuiltIn(ir.BuiltInFragDepth)},
		SampleMask:       newVarArrayInt(varBuiltIn(ir.BuiltInSampleMask)),
	}
}
