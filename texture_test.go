package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-theft-auto/render/internal/gl"
)

func TestCreateSampler(t *testing.T) {
	d, f := newTestDevice(t)

	s := d.CreateSampler(FilterLinearMipmapLinear, FilterLinear, WrapRepeat, WrapClamp, 8)
	params := f.named("SamplerParameteri")
	require.Len(t, params, 4)
	assert.Equal(t, []any{uint32(s), gl.Enum(gl.TEXTURE_WRAP_S), int32(gl.REPEAT)}, params[0].args)
	assert.Equal(t, []any{uint32(s), gl.Enum(gl.TEXTURE_WRAP_T), int32(gl.CLAMP_TO_EDGE)}, params[1].args)
	assert.Equal(t, []any{uint32(s), gl.Enum(gl.TEXTURE_MIN_FILTER), int32(gl.LINEAR_MIPMAP_LINEAR)}, params[3].args)
	assert.Equal(t, []any{uint32(s), gl.Enum(gl.TEXTURE_MAX_ANISOTROPY_EXT), float32(8)}, f.named("SamplerParameterf")[0].args)
}

func TestCreateSamplerAnisotropyNeedsMipmaps(t *testing.T) {
	d, f := newTestDevice(t)

	d.CreateSampler(FilterLinear, FilterLinear, WrapClamp, WrapClamp, 16)
	d.CreateSampler(FilterNearestMipmapNearest, FilterNearest, WrapClamp, WrapClamp, 0)
	assert.Zero(t, f.count("SamplerParameterf"))
}

func TestReleaseSampler(t *testing.T) {
	d, f := newTestDevice(t)

	assert.Equal(t, Handle(0), d.ReleaseSampler(0))
	assert.Empty(t, f.calls)
	assert.Equal(t, Handle(0), d.ReleaseSampler(3))
	assert.Equal(t, []any{uint32(3)}, f.named("DeleteSampler")[0].args)
}

func TestUntrackedReleasesReachDriver(t *testing.T) {
	d, f := newTestDevice(t)

	// Handles returned by Release* are 0, so callers that store the result
	// never release twice; a stale copy is forwarded to the driver.
	s := d.CreateSampler(FilterLinear, FilterLinear, WrapClamp, WrapClamp, 0)
	tex := d.CreateTexture2D(1, 1, make([]byte, 4), FormatRGBA, FormatRGBA, false, false, 4, 4)
	ubo := d.CreateUniformBuffer(nil, 16, UsageDynamic)
	for i := 0; i < 2; i++ {
		assert.Equal(t, Handle(0), d.ReleaseSampler(s))
		assert.Equal(t, Handle(0), d.ReleaseTexture2D(tex))
		assert.Equal(t, Handle(0), d.ReleaseUniformBuffer(ubo))
	}
	assert.Equal(t, 2, f.count("DeleteSampler"))
	assert.Equal(t, 2, f.count("DeleteTexture"))
	assert.Equal(t, 2, f.count("DeleteBuffers"))

	s = d.ReleaseSampler(s)
	f.reset()
	d.ReleaseSampler(s)
	assert.Empty(t, f.calls)
}

func TestCreateTexture2D(t *testing.T) {
	d, f := newTestDevice(t)

	tex := d.CreateTexture2D(4, 2, make([]byte, 32), FormatRGBA, FormatRGBA, false, true, 4, 4)
	img := f.named("TexImage2D")
	require.Len(t, img, 1)
	assert.Equal(t, []any{gl.Enum(gl.TEXTURE_2D), int32(0), int32(gl.COMPRESSED_SRGB_ALPHA_S3TC_DXT5_EXT),
		int32(4), int32(2), gl.Enum(gl.RGBA), gl.Enum(gl.UNSIGNED_BYTE)}, img[0].args)

	params := f.named("TexParameteri")
	require.Len(t, params, 6)
	assert.Equal(t, []any{gl.Enum(gl.TEXTURE_2D), gl.Enum(gl.TEXTURE_MIN_FILTER), int32(gl.NEAREST)}, params[0].args)
	assert.Equal(t, []any{gl.Enum(gl.TEXTURE_2D), gl.Enum(gl.TEXTURE_MAX_LEVEL), int32(0)}, params[5].args)
	assert.Zero(t, f.count("GenerateMipmap"))

	f.reset()
	d.CreateTexture2D(4, 2, make([]byte, 32), FormatRGBA, FormatRGBA, true, false, 4, 4)
	assert.Equal(t, 1, f.count("GenerateMipmap"))
	assert.Len(t, f.named("TexParameteri"), 4)

	f.reset()
	assert.Equal(t, Handle(0), d.ReleaseTexture2D(tex))
	assert.Equal(t, Handle(0), d.ReleaseTexture2D(0))
	assert.Equal(t, []any{uint32(tex)}, f.named("DeleteTexture")[0].args)
	assert.Equal(t, 1, f.count("DeleteTexture"))
}
