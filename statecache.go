package render

import "github.com/go-theft-auto/render/internal/gl"

// cachedState is the device's belief about the context's mutable global
// state. A field changes only together with the call that changed the
// context.
type cachedState struct {
	framebuffer Handle
	vertexArray Handle
	shader      Handle

	viewportSet    bool
	viewportTarget Handle
	viewportWidth  uint32
	viewportHeight uint32

	faceCulling FaceCulling
	depthFunc   DrawFunc
	writeDepth  bool
	sourceBlend BlendFunc
	destBlend   BlendFunc

	stencilEnabled       bool
	stencilFunc          DrawFunc
	stencilTestMask      uint32
	stencilWriteMask     uint32
	stencilReference     int32
	stencilFail          StencilOp
	stencilPassDepthFail StencilOp
	stencilPass          StencilOp

	scissorEnabled bool

	// Zero means unknown, so the first upload always sets the alignment.
	packAlignment   int32
	unpackAlignment int32
}

func defaultState() cachedState {
	return cachedState{
		faceCulling:          CullNone,
		depthFunc:            DrawAlways,
		sourceBlend:          BlendNone,
		destBlend:            BlendNone,
		stencilFunc:          DrawAlways,
		stencilTestMask:      0xFFFFFFFF,
		stencilWriteMask:     0xFFFFFFFF,
		stencilFail:          StencilKeep,
		stencilPassDepthFail: StencilKeep,
		stencilPass:          StencilKeep,
	}
}

// SetRenderTarget binds the framebuffer of the given render target.
func (d *Device) SetRenderTarget(target Handle) {
	if target == d.state.framebuffer {
		return
	}
	d.funcs.BindFramebuffer(gl.FRAMEBUFFER, uint32(target))
	d.state.framebuffer = target
}

// SetViewport sizes the viewport to the recorded dimensions of target. It
// is a no-op while target and its dimensions match the last application.
func (d *Device) SetViewport(target Handle) {
	rt, ok := d.targets[target]
	if !ok {
		return
	}
	s := &d.state
	if s.viewportSet && s.viewportTarget == target &&
		s.viewportWidth == rt.width && s.viewportHeight == rt.height {
		return
	}
	d.funcs.Viewport(0, 0, int32(rt.width), int32(rt.height))
	s.viewportSet = true
	s.viewportTarget = target
	s.viewportWidth = rt.width
	s.viewportHeight = rt.height
}

// SetVertexArray binds a vertex array.
func (d *Device) SetVertexArray(va Handle) {
	if va == d.state.vertexArray {
		return
	}
	d.funcs.BindVertexArray(uint32(va))
	d.state.vertexArray = va
}

// SetShader makes program the current shader program.
func (d *Device) SetShader(program Handle) {
	if program == d.state.shader {
		return
	}
	d.funcs.UseProgram(uint32(program))
	d.state.shader = program
}

// SetFaceCulling enables, disables or changes face culling.
func (d *Device) SetFaceCulling(mode FaceCulling) {
	cur := d.state.faceCulling
	if mode == cur {
		return
	}
	switch {
	case mode == CullNone:
		d.funcs.Disable(gl.CULL_FACE)
	case cur == CullNone:
		d.funcs.Enable(gl.CULL_FACE)
		d.funcs.CullFace(mode.native())
	default:
		d.funcs.CullFace(mode.native())
	}
	d.state.faceCulling = mode
}

// SetDepthTest sets the depth write mask and comparison function. The two
// are tracked independently.
func (d *Device) SetDepthTest(write bool, fn DrawFunc) {
	if write != d.state.writeDepth {
		d.funcs.DepthMask(write)
		d.state.writeDepth = write
	}
	if fn == d.state.depthFunc {
		return
	}
	d.funcs.DepthFunc(fn.native())
	d.state.depthFunc = fn
}

// SetBlending sets the source and destination blend factors. BlendNone on
// either side disables blending.
func (d *Device) SetBlending(src, dst BlendFunc) {
	s := &d.state
	if src == s.sourceBlend && dst == s.destBlend {
		return
	}
	switch {
	case src == BlendNone || dst == BlendNone:
		d.funcs.Disable(gl.BLEND)
	case s.sourceBlend == BlendNone || s.destBlend == BlendNone:
		d.funcs.Enable(gl.BLEND)
		d.funcs.BlendFunc(src.native(), dst.native())
	default:
		d.funcs.BlendFunc(src.native(), dst.native())
	}
	s.sourceBlend = src
	s.destBlend = dst
}

// SetStencilTest applies the stencil configuration. The enable flag, the
// comparison, the operations and the write mask are each applied only when
// they differ from the cached state.
func (d *Device) SetStencilTest(p StencilParameters) {
	s := &d.state
	if p.Enable != s.stencilEnabled {
		if p.Enable {
			d.funcs.Enable(gl.STENCIL_TEST)
		} else {
			d.funcs.Disable(gl.STENCIL_TEST)
		}
		s.stencilEnabled = p.Enable
	}

	if p.Func != s.stencilFunc || p.TestMask != s.stencilTestMask || p.Reference != s.stencilReference {
		d.funcs.StencilFunc(p.Func.native(), p.Reference, p.TestMask)
		s.stencilFunc = p.Func
		s.stencilTestMask = p.TestMask
		s.stencilReference = p.Reference
	}

	if p.Fail != s.stencilFail || p.PassDepthFail != s.stencilPassDepthFail || p.Pass != s.stencilPass {
		d.funcs.StencilOp(p.Fail.native(), p.PassDepthFail.native(), p.Pass.native())
		s.stencilFail = p.Fail
		s.stencilPassDepthFail = p.PassDepthFail
		s.stencilPass = p.Pass
	}

	d.SetStencilWriteMask(p.WriteMask)
}

// SetStencilWriteMask sets which stencil bits may be written.
func (d *Device) SetStencilWriteMask(mask uint32) {
	if mask == d.state.stencilWriteMask {
		return
	}
	d.funcs.StencilMask(mask)
	d.state.stencilWriteMask = mask
}

// SetScissorTest enables the scissor test with the given rectangle, or
// disables it. Enabling always re-applies the rectangle.
func (d *Device) SetScissorTest(enable bool, x, y, width, height uint32) {
	if !enable {
		if d.state.scissorEnabled {
			d.funcs.Disable(gl.SCISSOR_TEST)
			d.state.scissorEnabled = false
		}
		return
	}
	if !d.state.scissorEnabled {
		d.funcs.Enable(gl.SCISSOR_TEST)
	}
	d.funcs.Scissor(int32(x), int32(y), int32(width), int32(height))
	d.state.scissorEnabled = true
}

// SetDrawParameters applies blending, scissor, face culling and depth, in
// that order.
func (d *Device) SetDrawParameters(p DrawParameters) {
	d.SetBlending(p.SourceBlend, p.DestBlend)
	d.SetScissorTest(p.UseScissorTest, p.ScissorX, p.ScissorY, p.ScissorWidth, p.ScissorHeight)
	d.SetFaceCulling(p.FaceCulling)
	d.SetDepthTest(p.WriteDepth, p.DepthFunc)
}

func (d *Device) setPackAlignment(n int32) {
	if n == d.state.packAlignment {
		return
	}
	d.funcs.PixelStorei(gl.PACK_ALIGNMENT, n)
	d.state.packAlignment = n
}

func (d *Device) setUnpackAlignment(n int32) {
	if n == d.state.unpackAlignment {
		return
	}
	d.funcs.PixelStorei(gl.UNPACK_ALIGNMENT, n)
	d.state.unpackAlignment = n
}
