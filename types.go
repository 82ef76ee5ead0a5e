package render

import "math"

// Handle identifies a GPU-side resource owned by a Device. The zero Handle
// is the default or null object of every resource kind: the window
// framebuffer, the null vertex array, shader, texture and sampler.
type Handle uint32

// InvalidHandle is returned when creating a resource failed. Callers must
// check for it before using a returned handle.
const InvalidHandle Handle = math.MaxUint32

// PixelFormat describes the channel layout of texture data.
type PixelFormat uint8

const (
	FormatR PixelFormat = iota
	FormatRG
	FormatRGB
	FormatRGBA
	FormatDepth
	FormatDepthAndStencil
)

// BufferUsage is the update-frequency hint for buffer storage.
type BufferUsage uint8

const (
	// UsageStatic data is uploaded once and drawn many times.
	UsageStatic BufferUsage = iota
	// UsageDynamic data is rewritten often, typically every frame.
	UsageDynamic
	// UsageStream data is rewritten before nearly every draw.
	UsageStream
)

// SamplerFilter selects texel filtering.
type SamplerFilter uint8

const (
	FilterNearest SamplerFilter = iota
	FilterLinear
	FilterNearestMipmapNearest
	FilterLinearMipmapNearest
	FilterNearestMipmapLinear
	FilterLinearMipmapLinear
)

// mipmapped reports whether the filter samples mip levels.
func (f SamplerFilter) mipmapped() bool {
	return f != FilterNearest && f != FilterLinear
}

// WrapMode selects how texture coordinates outside [0,1] are resolved.
type WrapMode uint8

const (
	WrapClamp WrapMode = iota
	WrapRepeat
	WrapMirror
)

// BlendFunc is a blend factor. BlendNone on either side of a pair disables
// blending.
type BlendFunc uint8

const (
	BlendNone BlendFunc = iota
	BlendZero
	BlendOne
	BlendSrcColor
	BlendOneMinusSrcColor
	BlendSrcAlpha
	BlendOneMinusSrcAlpha
	BlendDstAlpha
	BlendOneMinusDstAlpha
	BlendDstColor
	BlendOneMinusDstColor
	BlendSrcAlphaSaturate
)

// DrawFunc is a depth or stencil comparison function.
type DrawFunc uint8

const (
	DrawNever DrawFunc = iota
	DrawAlways
	DrawLess
	DrawGreater
	DrawLessEqual
	DrawGreaterEqual
	DrawEqual
	DrawNotEqual
)

// StencilOp is the action taken on the stencil buffer after a test.
type StencilOp uint8

const (
	StencilKeep StencilOp = iota
	StencilZero
	StencilReplace
	StencilIncrement
	StencilIncrementWrap
	StencilDecrement
	StencilDecrementWrap
	StencilInvert
)

// FaceCulling selects which polygon faces are discarded.
type FaceCulling uint8

const (
	CullNone FaceCulling = iota
	CullFront
	CullBack
	CullFrontAndBack
)

// Attachment is a framebuffer attachment point. Color attachments are
// combined with a slot index for multiple render targets.
type Attachment uint8

const (
	AttachColor Attachment = iota
	AttachDepth
	AttachStencil
	AttachDepthStencil
)

// PrimitiveType selects how indices are assembled into primitives.
type PrimitiveType uint8

const (
	PrimitiveTriangles PrimitiveType = iota
	PrimitivePoints
	PrimitiveLines
	PrimitiveLineStrip
	PrimitiveLineLoop
	PrimitiveTriangleStrip
	PrimitiveTriangleFan
)

// DrawParameters is the per-draw fixed-function state applied by Draw.
type DrawParameters struct {
	PrimitiveType PrimitiveType
	FaceCulling   FaceCulling
	DepthFunc     DrawFunc
	WriteDepth    bool
	SourceBlend   BlendFunc
	DestBlend     BlendFunc

	UseScissorTest bool
	ScissorX       uint32
	ScissorY       uint32
	ScissorWidth   uint32
	ScissorHeight  uint32
}

// StencilParameters is the full stencil configuration applied by
// SetStencilTest.
type StencilParameters struct {
	Enable        bool
	Func          DrawFunc
	TestMask      uint32
	WriteMask     uint32
	Reference     int32
	Fail          StencilOp
	PassDepthFail StencilOp
	Pass          StencilOp
}
