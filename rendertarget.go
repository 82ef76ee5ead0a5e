package render

import "github.com/go-theft-auto/render/internal/gl"

type renderTarget struct {
	width  uint32
	height uint32
}

// CreateRenderTarget creates a framebuffer with texture attached at the
// given attachment point and mip level. The texture's compatibility is not
// checked.
func (d *Device) CreateRenderTarget(texture Handle, width, height uint32, attachment Attachment, slot uint32, mipLevel int32) Handle {
	fb := Handle(d.funcs.CreateFramebuffer())
	d.SetRenderTarget(fb)
	d.funcs.FramebufferTexture2D(gl.FRAMEBUFFER, attachmentPoint(attachment, slot), gl.TEXTURE_2D, uint32(texture), mipLevel)
	d.targets[fb] = &renderTarget{width: width, height: height}
	d.log.Debug("render target created", "handle", fb, "width", width, "height", height)
	return fb
}

// UpdateRenderTarget records new surface dimensions. It always updates the
// window surface (target 0) whatever target is passed; the viewport picks
// up the change on the next draw.
func (d *Device) UpdateRenderTarget(target Handle, width, height uint32) {
	rt, ok := d.targets[0]
	if !ok {
		return
	}
	rt.width = width
	rt.height = height
}

// ReleaseRenderTarget deletes a render target and returns 0. Target 0 and
// unknown handles are ignored.
func (d *Device) ReleaseRenderTarget(target Handle) Handle {
	if target == 0 {
		return 0
	}
	if _, ok := d.targets[target]; !ok {
		return 0
	}
	d.funcs.DeleteFramebuffer(uint32(target))
	delete(d.targets, target)

	// Deleting the bound framebuffer rebinds the default one.
	if d.state.framebuffer == target {
		d.state.framebuffer = 0
	}
	if d.state.viewportTarget == target {
		d.state.viewportSet = false
	}
	return 0
}

// RenderTargetSize returns the recorded dimensions of target.
func (d *Device) RenderTargetSize(target Handle) (width, height uint32, ok bool) {
	rt, ok := d.targets[target]
	if !ok {
		return 0, 0, false
	}
	return rt.width, rt.height, true
}
