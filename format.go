package render

import "github.com/go-theft-auto/render/internal/gl"

var bufferUsages = [...]gl.Enum{
	UsageStatic:  gl.STATIC_DRAW,
	UsageDynamic: gl.DYNAMIC_DRAW,
	UsageStream:  gl.STREAM_DRAW,
}

var samplerFilters = [...]gl.Enum{
	FilterNearest:              gl.NEAREST,
	FilterLinear:               gl.LINEAR,
	FilterNearestMipmapNearest: gl.NEAREST_MIPMAP_NEAREST,
	FilterLinearMipmapNearest:  gl.LINEAR_MIPMAP_NEAREST,
	FilterNearestMipmapLinear:  gl.NEAREST_MIPMAP_LINEAR,
	FilterLinearMipmapLinear:   gl.LINEAR_MIPMAP_LINEAR,
}

var wrapModes = [...]gl.Enum{
	WrapClamp:  gl.CLAMP_TO_EDGE,
	WrapRepeat: gl.REPEAT,
	WrapMirror: gl.MIRRORED_REPEAT,
}

var blendFuncs = [...]gl.Enum{
	BlendNone:             gl.NONE,
	BlendZero:             gl.ZERO,
	BlendOne:              gl.ONE,
	BlendSrcColor:         gl.SRC_COLOR,
	BlendOneMinusSrcColor: gl.ONE_MINUS_SRC_COLOR,
	BlendSrcAlpha:         gl.SRC_ALPHA,
	BlendOneMinusSrcAlpha: gl.ONE_MINUS_SRC_ALPHA,
	BlendDstAlpha:         gl.DST_ALPHA,
	BlendOneMinusDstAlpha: gl.ONE_MINUS_DST_ALPHA,
	BlendDstColor:         gl.DST_COLOR,
	BlendOneMinusDstColor: gl.ONE_MINUS_DST_COLOR,
	BlendSrcAlphaSaturate: gl.SRC_ALPHA_SATURATE,
}

var drawFuncs = [...]gl.Enum{
	DrawNever:        gl.NEVER,
	DrawAlways:       gl.ALWAYS,
	DrawLess:         gl.LESS,
	DrawGreater:      gl.GREATER,
	DrawLessEqual:    gl.LEQUAL,
	DrawGreaterEqual: gl.GEQUAL,
	DrawEqual:        gl.EQUAL,
	DrawNotEqual:     gl.NOTEQUAL,
}

var stencilOps = [...]gl.Enum{
	StencilKeep:          gl.KEEP,
	StencilZero:          gl.ZERO,
	StencilReplace:       gl.REPLACE,
	StencilIncrement:     gl.INCR,
	StencilIncrementWrap: gl.INCR_WRAP,
	StencilDecrement:     gl.DECR,
	StencilDecrementWrap: gl.DECR_WRAP,
	StencilInvert:        gl.INVERT,
}

var faceCullings = [...]gl.Enum{
	CullNone:         gl.NONE,
	CullFront:        gl.FRONT,
	CullBack:         gl.BACK,
	CullFrontAndBack: gl.FRONT_AND_BACK,
}

var attachments = [...]gl.Enum{
	AttachColor:        gl.COLOR_ATTACHMENT0,
	AttachDepth:        gl.DEPTH_ATTACHMENT,
	AttachStencil:      gl.STENCIL_ATTACHMENT,
	AttachDepthStencil: gl.DEPTH_STENCIL_ATTACHMENT,
}

var primitiveTypes = [...]gl.Enum{
	PrimitiveTriangles:     gl.TRIANGLES,
	PrimitivePoints:        gl.POINTS,
	PrimitiveLines:         gl.LINES,
	PrimitiveLineStrip:     gl.LINE_STRIP,
	PrimitiveLineLoop:      gl.LINE_LOOP,
	PrimitiveTriangleStrip: gl.TRIANGLE_STRIP,
	PrimitiveTriangleFan:   gl.TRIANGLE_FAN,
}

// lookup maps v through table, returning 0 for values outside the table.
func lookup[T ~uint8](table []gl.Enum, v T) gl.Enum {
	if int(v) >= len(table) {
		return 0
	}
	return table[v]
}

func (u BufferUsage) native() gl.Enum   { return lookup(bufferUsages[:], u) }
func (f SamplerFilter) native() gl.Enum { return lookup(samplerFilters[:], f) }
func (w WrapMode) native() gl.Enum      { return lookup(wrapModes[:], w) }
func (b BlendFunc) native() gl.Enum     { return lookup(blendFuncs[:], b) }
func (f DrawFunc) native() gl.Enum      { return lookup(drawFuncs[:], f) }
func (op StencilOp) native() gl.Enum    { return lookup(stencilOps[:], op) }
func (c FaceCulling) native() gl.Enum   { return lookup(faceCullings[:], c) }
func (p PrimitiveType) native() gl.Enum { return lookup(primitiveTypes[:], p) }

// attachmentPoint returns the attachment enum for a kind and slot. Only
// color attachments have more than one slot.
func attachmentPoint(a Attachment, slot uint32) gl.Enum {
	return lookup(attachments[:], a) + gl.Enum(slot)
}

// dataFormat maps a pixel format to the client-side format of TexImage2D.
func (d *Device) dataFormat(f PixelFormat) gl.Enum {
	switch f {
	case FormatR:
		return gl.RED
	case FormatRG:
		return gl.RG
	case FormatRGB:
		return gl.RGB
	case FormatRGBA:
		return gl.RGBA
	case FormatDepth:
		return gl.DEPTH_COMPONENT
	case FormatDepthAndStencil:
		return gl.DEPTH_STENCIL
	default:
		d.log.Error("invalid pixel format", "format", f)
		return 0
	}
}

// internalFormat maps a pixel format to a texture storage format. RGB and
// RGBA switch to S3TC sRGB formats when compress is set.
func (d *Device) internalFormat(f PixelFormat, compress bool) gl.Enum {
	switch f {
	case FormatRGB:
		if compress {
			return gl.COMPRESSED_SRGB_S3TC_DXT1_EXT
		}
		return gl.RGB
	case FormatRGBA:
		if compress {
			return gl.COMPRESSED_SRGB_ALPHA_S3TC_DXT5_EXT
		}
		return gl.RGBA
	default:
		return d.dataFormat(f)
	}
}
