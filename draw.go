package render

import "github.com/go-theft-auto/render/internal/gl"

// Clear binds target and clears the requested buffers. The clear color is
// set when clearing color; the stencil write mask is set to stencil when
// clearing stencil.
func (d *Device) Clear(target Handle, color, depth, stencil bool, r, g, b, a float32, stencilMask uint32) {
	d.SetRenderTarget(target)

	var mask gl.Enum
	if color {
		mask |= gl.COLOR_BUFFER_BIT
		d.funcs.ClearColor(r, g, b, a)
	}
	if depth {
		mask |= gl.DEPTH_BUFFER_BIT
	}
	if stencil {
		mask |= gl.STENCIL_BUFFER_BIT
		d.SetStencilWriteMask(stencilMask)
	}
	d.funcs.Clear(mask)
}

// Draw renders elementCount indices of va with program into target.
// Nothing happens when instances is 0. Otherwise the target, its viewport,
// the draw parameters, the program and the vertex array are applied in
// that order, and a single draw call is issued, instanced when instances
// is greater than 1.
func (d *Device) Draw(target, program, va Handle, params DrawParameters, instances, elementCount uint32) {
	if instances == 0 {
		return
	}

	// The viewport is sized from the target bound just before it.
	d.SetRenderTarget(target)
	d.SetViewport(target)
	d.SetDrawParameters(params)
	d.SetShader(program)
	d.SetVertexArray(va)

	mode := params.PrimitiveType.native()
	if instances == 1 {
		d.funcs.DrawElements(mode, int32(elementCount), gl.UNSIGNED_INT, 0)
		return
	}
	d.funcs.DrawElementsInstanced(mode, int32(elementCount), gl.UNSIGNED_INT, 0, int32(instances))
}
