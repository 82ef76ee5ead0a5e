// Package gl holds the native OpenGL constants and the call surface used by
// the render device. Keeping the surface behind an interface lets the device
// run against a recording fake in tests.
package gl

// Enum is a native OpenGL enumerant.
type Enum uint32

const (
	FALSE = 0
	TRUE  = 1

	NONE = 0

	ARRAY_BUFFER         Enum = 0x8892
	ELEMENT_ARRAY_BUFFER Enum = 0x8893
	UNIFORM_BUFFER       Enum = 0x8A11

	STATIC_DRAW  Enum = 0x88E4
	DYNAMIC_DRAW Enum = 0x88E8
	STREAM_DRAW  Enum = 0x88E0

	MAP_WRITE_BIT            Enum = 0x0002
	MAP_INVALIDATE_RANGE_BIT Enum = 0x0004

	UNSIGNED_BYTE Enum = 0x1401
	UNSIGNED_INT  Enum = 0x1405
	FLOAT         Enum = 0x1406

	FRAMEBUFFER              Enum = 0x8D40
	COLOR_ATTACHMENT0        Enum = 0x8CE0
	DEPTH_ATTACHMENT         Enum = 0x8D00
	STENCIL_ATTACHMENT       Enum = 0x8D20
	DEPTH_STENCIL_ATTACHMENT Enum = 0x821A

	TEXTURE_2D         Enum = 0x0DE1
	TEXTURE0           Enum = 0x84C0
	TEXTURE_MAG_FILTER Enum = 0x2800
	TEXTURE_MIN_FILTER Enum = 0x2801
	TEXTURE_WRAP_S     Enum = 0x2802
	TEXTURE_WRAP_T     Enum = 0x2803
	TEXTURE_BASE_LEVEL Enum = 0x813C
	TEXTURE_MAX_LEVEL  Enum = 0x813D

	// EXT_texture_filter_anisotropic
	TEXTURE_MAX_ANISOTROPY_EXT Enum = 0x84FE

	NEAREST                Enum = 0x2600
	LINEAR                 Enum = 0x2601
	NEAREST_MIPMAP_NEAREST Enum = 0x2700
	LINEAR_MIPMAP_NEAREST  Enum = 0x2701
	NEAREST_MIPMAP_LINEAR  Enum = 0x2702
	LINEAR_MIPMAP_LINEAR   Enum = 0x2703

	REPEAT          Enum = 0x2901
	CLAMP_TO_EDGE   Enum = 0x812F
	MIRRORED_REPEAT Enum = 0x8370

	RED             Enum = 0x1903
	RG              Enum = 0x8227
	RGB             Enum = 0x1907
	RGBA            Enum = 0x1908
	DEPTH_COMPONENT Enum = 0x1902
	DEPTH_STENCIL   Enum = 0x84F9

	// EXT_texture_sRGB
	COMPRESSED_SRGB_S3TC_DXT1_EXT       Enum = 0x8C4C
	COMPRESSED_SRGB_ALPHA_S3TC_DXT5_EXT Enum = 0x8C4F

	PACK_ALIGNMENT   Enum = 0x0D05
	UNPACK_ALIGNMENT Enum = 0x0CF5

	VERTEX_SHADER         Enum = 0x8B31
	FRAGMENT_SHADER       Enum = 0x8B30
	COMPILE_STATUS        Enum = 0x8B81
	LINK_STATUS           Enum = 0x8B82
	VALIDATE_STATUS       Enum = 0x8B83
	ACTIVE_UNIFORMS       Enum = 0x8B86
	ACTIVE_ATTRIBUTES     Enum = 0x8B89
	ACTIVE_UNIFORM_BLOCKS Enum = 0x8A36
	UNIFORM_BLOCK_INDEX   Enum = 0x8A3A
	FLOAT_VEC4            Enum = 0x8B52
	FLOAT_MAT4            Enum = 0x8B5C
	SAMPLER_2D            Enum = 0x8B5E

	MAJOR_VERSION Enum = 0x821B
	MINOR_VERSION Enum = 0x821C

	CULL_FACE    Enum = 0x0B44
	DEPTH_TEST   Enum = 0x0B71
	STENCIL_TEST Enum = 0x0B90
	BLEND        Enum = 0x0BE2
	SCISSOR_TEST Enum = 0x0C11

	FRONT          Enum = 0x0404
	BACK           Enum = 0x0405
	FRONT_AND_BACK Enum = 0x0408
	CW             Enum = 0x0900
	CCW            Enum = 0x0901

	NEVER    Enum = 0x0200
	LESS     Enum = 0x0201
	EQUAL    Enum = 0x0202
	LEQUAL   Enum = 0x0203
	GREATER  Enum = 0x0204
	NOTEQUAL Enum = 0x0205
	GEQUAL   Enum = 0x0206
	ALWAYS   Enum = 0x0207

	ZERO                Enum = 0x0000
	ONE                 Enum = 0x0001
	SRC_COLOR           Enum = 0x0300
	ONE_MINUS_SRC_COLOR Enum = 0x0301
	SRC_ALPHA           Enum = 0x0302
	ONE_MINUS_SRC_ALPHA Enum = 0x0303
	DST_ALPHA           Enum = 0x0304
	ONE_MINUS_DST_ALPHA Enum = 0x0305
	DST_COLOR           Enum = 0x0306
	ONE_MINUS_DST_COLOR Enum = 0x0307
	SRC_ALPHA_SATURATE  Enum = 0x0308

	KEEP      Enum = 0x1E00
	REPLACE   Enum = 0x1E01
	INCR      Enum = 0x1E02
	DECR      Enum = 0x1E03
	INVERT    Enum = 0x150A
	INCR_WRAP Enum = 0x8507
	DECR_WRAP Enum = 0x8508

	DEPTH_BUFFER_BIT   Enum = 0x00000100
	STENCIL_BUFFER_BIT Enum = 0x00000400
	COLOR_BUFFER_BIT   Enum = 0x00004000

	POINTS         Enum = 0x0000
	LINES          Enum = 0x0001
	LINE_LOOP      Enum = 0x0002
	LINE_STRIP     Enum = 0x0003
	TRIANGLES      Enum = 0x0004
	TRIANGLE_STRIP Enum = 0x0005
	TRIANGLE_FAN   Enum = 0x0006
)
