package render

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/go-theft-auto/render/internal/gl"
)

func TestAttributeSlots(t *testing.T) {
	tests := []struct {
		size uint32
		want []attributeSlot
	}{
		{1, []attributeSlot{{1, 0}}},
		{3, []attributeSlot{{3, 0}}},
		{4, []attributeSlot{{4, 0}}},
		{5, []attributeSlot{{4, 0}, {1, 16}}},
		{8, []attributeSlot{{4, 0}, {4, 16}}},
		{9, []attributeSlot{{4, 0}, {4, 16}, {1, 32}}},
		{16, []attributeSlot{{4, 0}, {4, 16}, {4, 32}, {4, 48}}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, attributeSlots(tt.size), "size %d", tt.size)
	}
	assert.Empty(t, attributeSlots(0))
}

func TestNativeEnums(t *testing.T) {
	assert.Equal(t, gl.Enum(gl.DYNAMIC_DRAW), UsageDynamic.native())
	assert.Equal(t, gl.Enum(gl.LEQUAL), DrawLessEqual.native())
	assert.Equal(t, gl.Enum(gl.ONE_MINUS_SRC_ALPHA), BlendOneMinusSrcAlpha.native())
	assert.Equal(t, gl.Enum(gl.INCR_WRAP), StencilIncrementWrap.native())
	assert.Equal(t, gl.Enum(gl.FRONT_AND_BACK), CullFrontAndBack.native())
	assert.Equal(t, gl.Enum(gl.MIRRORED_REPEAT), WrapMirror.native())
	assert.Equal(t, gl.Enum(gl.TRIANGLES), PrimitiveTriangles.native())
	assert.Equal(t, gl.Enum(0), BlendFunc(200).native())
}

func TestAttachmentPoint(t *testing.T) {
	assert.Equal(t, gl.Enum(gl.COLOR_ATTACHMENT0+2), attachmentPoint(AttachColor, 2))
	assert.Equal(t, gl.Enum(gl.DEPTH_STENCIL_ATTACHMENT), attachmentPoint(AttachDepthStencil, 0))
}

func TestPixelFormats(t *testing.T) {
	d, _ := newTestDevice(t)

	assert.Equal(t, gl.Enum(gl.RG), d.dataFormat(FormatRG))
	assert.Equal(t, gl.Enum(gl.DEPTH_STENCIL), d.dataFormat(FormatDepthAndStencil))

	assert.Equal(t, gl.Enum(gl.RGBA), d.internalFormat(FormatRGBA, false))
	assert.Equal(t, gl.Enum(gl.COMPRESSED_SRGB_ALPHA_S3TC_DXT5_EXT), d.internalFormat(FormatRGBA, true))
	assert.Equal(t, gl.Enum(gl.COMPRESSED_SRGB_S3TC_DXT1_EXT), d.internalFormat(FormatRGB, true))
	assert.Equal(t, gl.Enum(gl.RED), d.internalFormat(FormatR, true), "only color formats compress")
}

func TestInvalidPixelFormatLogsToDeviceLogger(t *testing.T) {
	var buf bytes.Buffer
	d, f := newTestDevice(t, WithLogger(slog.New(slog.NewTextHandler(&buf, nil))))

	assert.Equal(t, gl.Enum(0), d.dataFormat(PixelFormat(99)))
	assert.Contains(t, buf.String(), "invalid pixel format")

	buf.Reset()
	d.CreateTexture2D(1, 1, make([]byte, 4), PixelFormat(99), FormatRGBA, false, false, 4, 4)
	assert.Contains(t, buf.String(), "invalid pixel format")
	assert.Equal(t, gl.Enum(0), f.named("TexImage2D")[0].args[5])
}

func TestBytes(t *testing.T) {
	assert.Len(t, Bytes([]float32{1, 2, 3}), 12)
	assert.Equal(t, []byte{1, 0, 0, 0}, Bytes([]uint32{1}))
	assert.Empty(t, Bytes([]int32(nil)))
}
