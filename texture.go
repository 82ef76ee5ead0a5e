package render

import "github.com/go-theft-auto/render/internal/gl"

// CreateSampler creates a sampler object. Anisotropic filtering is only
// applied when anisotropy is nonzero and minFilter samples mip levels.
func (d *Device) CreateSampler(minFilter, magFilter SamplerFilter, wrapU, wrapV WrapMode, anisotropy float32) Handle {
	s := d.funcs.CreateSampler()
	d.funcs.SamplerParameteri(s, gl.TEXTURE_WRAP_S, int32(wrapU.native()))
	d.funcs.SamplerParameteri(s, gl.TEXTURE_WRAP_T, int32(wrapV.native()))
	d.funcs.SamplerParameteri(s, gl.TEXTURE_MAG_FILTER, int32(magFilter.native()))
	d.funcs.SamplerParameteri(s, gl.TEXTURE_MIN_FILTER, int32(minFilter.native()))
	if anisotropy != 0 && minFilter.mipmapped() {
		d.funcs.SamplerParameterf(s, gl.TEXTURE_MAX_ANISOTROPY_EXT, anisotropy)
	}
	return Handle(s)
}

// ReleaseSampler deletes a sampler and returns 0. Sampler 0 is ignored.
// Samplers are not tracked, so a released name is passed to the driver
// again, which ignores it.
func (d *Device) ReleaseSampler(sampler Handle) Handle {
	if sampler == 0 {
		return 0
	}
	d.funcs.DeleteSampler(uint32(sampler))
	return 0
}

// CreateTexture2D uploads a 2D texture of unsigned bytes. The texture is
// created with nearest filtering and edge clamping; sampling parameters
// normally come from a sampler bound next to it. Without generateMipmaps
// the mip range is pinned to level 0. Pack and unpack alignments are only
// changed when they differ from the current ones.
func (d *Device) CreateTexture2D(width, height int32, data []byte, format, internal PixelFormat, generateMipmaps, compress bool, packAlignment, unpackAlignment int32) Handle {
	glFormat := d.dataFormat(format)
	glInternal := d.internalFormat(internal, compress)

	d.setPackAlignment(packAlignment)
	d.setUnpackAlignment(unpackAlignment)

	tex := d.funcs.CreateTexture()
	d.funcs.BindTexture(gl.TEXTURE_2D, tex)
	d.funcs.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, int32(gl.NEAREST))
	d.funcs.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, int32(gl.NEAREST))
	d.funcs.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, int32(gl.CLAMP_TO_EDGE))
	d.funcs.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, int32(gl.CLAMP_TO_EDGE))
	d.funcs.TexImage2D(gl.TEXTURE_2D, 0, int32(glInternal), width, height, glFormat, gl.UNSIGNED_BYTE, data)

	if generateMipmaps {
		d.funcs.GenerateMipmap(gl.TEXTURE_2D)
	} else {
		d.funcs.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_BASE_LEVEL, 0)
		d.funcs.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAX_LEVEL, 0)
	}
	return Handle(tex)
}

// ReleaseTexture2D deletes a texture and returns 0. Texture 0 is ignored.
// Like samplers, textures are untracked and a repeated release reaches the
// driver.
func (d *Device) ReleaseTexture2D(texture Handle) Handle {
	if texture == 0 {
		return 0
	}
	d.funcs.DeleteTexture(uint32(texture))
	return 0
}
