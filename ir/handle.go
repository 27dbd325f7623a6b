package ir

// ScopedHandle identifies where a value comes from: a stage built-in, a
// top-level shader global, a function argument, or a locally scoped
// variable. It is a sum type expressed the same way ExprKind and
// InstrKind are: an interface with a no-op marker method implemented
// by each variant.
type ScopedHandle interface {
	scopedHandle()
}

// BuiltIn references a stage-defined named slot (e.g. the vertex position
// output).
type BuiltIn struct {
	ID BuiltInID
}

func (BuiltIn) scopedHandle() {}

// Global references an index into the shader's top-level declaration
// stream (a constant, input, or output).
type Global struct {
	Index uint16
}

func (Global) scopedHandle() {}

// FunArg references a function argument by ordinal within the current
// function.
type FunArg struct {
	Index uint16
}

func (FunArg) scopedHandle() {}

// FunVar references a local variable introduced in a sub-scope. The pair
// (Subscope, Handle) is the only anti-collision mechanism: sibling
// sub-scopes may reuse the same Handle index, disambiguated by Subscope.
type FunVar struct {
	Subscope uint16
	Handle   uint16
}

func (FunVar) scopedHandle() {}

// BuiltInID enumerates every built-in slot exposed by any of the five
// shader stages. Not every id is meaningful in every stage; the stage
// environment constructors (see package shade) only ever populate the ids
// valid for that stage.
type BuiltInID uint16

const (
	// Vertex stage.
	BuiltInVertexIndex BuiltInID = iota
	BuiltInInstanceIndex
	BuiltInBaseVertex
	BuiltInBaseInstance
	BuiltInPosition
	BuiltInPointSize
	BuiltInClipDistance

	// Tessellation control stage.
	BuiltInMaxPatchVerticesIn
	BuiltInPatchVerticesIn
	BuiltInPrimitiveID
	BuiltInInvocationID
	BuiltInTessLevelOuter
	BuiltInTessLevelInner

	// Tessellation evaluation stage.
	BuiltInTessCoord
	BuiltInCullDistance

	// Geometry stage.
	BuiltInPrimitiveIDIn
	BuiltInLayer
	BuiltInViewportIndex

	// Fragment stage.
	BuiltInFragCoord
	BuiltInFrontFacing
	BuiltInPointCoord
	BuiltInSampleID
	BuiltInSamplePosition
	BuiltInSampleMaskIn
	BuiltInHelperInvocation
	BuiltInFragDepth
	BuiltInSampleMask

	// Per-vertex aggregate field accessors, used by Field expressions over
	// an indexed per-vertex-in/out array element.
	BuiltInPerVertexPosition
	BuiltInPerVertexPointSize
	BuiltInPerVertexClipDistance
	BuiltInPerVertexCullDistance

	// The implicit gl_in[]/gl_out[] per-vertex arrays that tessellation
	// control, tessellation evaluation and geometry stages index into
	// before reaching a BuiltInPerVertex* field.
	BuiltInPerVertexInArray
	BuiltInPerVertexOutArray
)

// glslNames gives the reserved GLSL-family identifier for each built-in.
var glslNames = map[BuiltInID]string{
	BuiltInVertexIndex:    "gl_VertexID",
	BuiltInInstanceIndex:  "gl_InstanceID",
	BuiltInBaseVertex:     "gl_BaseVertex",
	BuiltInBaseInstance:   "gl_BaseInstance",
	BuiltInPosition:       "gl_Position",
	BuiltInPointSize:      "gl_PointSize",
	BuiltInClipDistance:   "gl_ClipDistance",
	BuiltInCullDistance:   "gl_CullDistance",

	BuiltInMaxPatchVerticesIn: "gl_MaxPatchVertices",
	BuiltInPatchVerticesIn:    "gl_PatchVerticesIn",
	BuiltInPrimitiveID:        "gl_PrimitiveID",
	BuiltInInvocationID:       "gl_InvocationID",
	BuiltInTessLevelOuter:     "gl_TessLevelOuter",
	BuiltInTessLevelInner:     "gl_TessLevelInner",
	BuiltInTessCoord:          "gl_TessCoord",

	BuiltInPrimitiveIDIn:  "gl_PrimitiveIDIn",
	BuiltInLayer:          "gl_Layer",
	BuiltInViewportIndex:  "gl_ViewportIndex",

	BuiltInFragCoord:        "gl_FragCoord",
	BuiltInFrontFacing:      "gl_FrontFacing",
	BuiltInPointCoord:       "gl_PointCoord",
	BuiltInSampleID:         "gl_SampleID",
	BuiltInSamplePosition:   "gl_SamplePosition",
	BuiltInSampleMaskIn:     "gl_SampleMaskIn",
	BuiltInHelperInvocation: "gl_HelperInvocation",
	BuiltInFragDepth:        "gl_FragDepth",
	BuiltInSampleMask:       "gl_SampleMask",

	BuiltInPerVertexPosition:     "gl_Position",
	BuiltInPerVertexPointSize:    "gl_PointSize",
	BuiltInPerVertexClipDistance: "gl_ClipDistance",
	BuiltInPerVertexCullDistance: "gl_CullDistance",

	BuiltInPerVertexInArray:  "gl_in",
	BuiltInPerVertexOutArray: "gl_out",
}

// GLSLName returns the reserved GLSL-family identifier for id, or "" if id
// is unknown.
func (id BuiltInID) GLSLName() string { return glslNames[id] }
