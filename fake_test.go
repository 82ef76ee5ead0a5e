package render

import (
	"errors"
	"slices"
	"testing"

	"github.com/go-theft-auto/render/internal/gl"
)

type call struct {
	name string
	args []any
}

type fakeUniform struct {
	name  string
	ty    gl.Enum
	block int32
}

// fakeFuncs records every call and simulates just enough driver behavior
// for the device: object names, shader status, program introspection and
// buffer mapping.
type fakeFuncs struct {
	calls []call
	next  uint32

	major, minor int32

	shaderTypes  map[uint32]gl.Enum
	compileFail  map[gl.Enum]string
	linkFail     string
	validateFail string

	attribs  []string
	blocks   []string
	uniforms []fakeUniform

	mapFails   bool
	unmapFails bool
	mapped     []byte
}

func newFakeFuncs() *fakeFuncs {
	return &fakeFuncs{
		next:        1,
		major:       3,
		minor:       3,
		shaderTypes: make(map[uint32]gl.Enum),
		compileFail: make(map[gl.Enum]string),
	}
}

func (f *fakeFuncs) record(name string, args ...any) {
	f.calls = append(f.calls, call{name: name, args: args})
}

func (f *fakeFuncs) gen() uint32 {
	n := f.next
	f.next++
	return n
}

func (f *fakeFuncs) reset() { f.calls = nil }

func (f *fakeFuncs) count(name string) int {
	n := 0
	for _, c := range f.calls {
		if c.name == name {
			n++
		}
	}
	return n
}

func (f *fakeFuncs) named(name string) []call {
	var out []call
	for _, c := range f.calls {
		if c.name == name {
			out = append(out, c)
		}
	}
	return out
}

func (f *fakeFuncs) names() []string {
	out := make([]string, len(f.calls))
	for i, c := range f.calls {
		out[i] = c.name
	}
	return out
}

func (f *fakeFuncs) GetInteger(pname gl.Enum) int32 {
	f.record("GetInteger", pname)
	switch pname {
	case gl.MAJOR_VERSION:
		return f.major
	case gl.MINOR_VERSION:
		return f.minor
	}
	return 0
}

func (f *fakeFuncs) Enable(cap gl.Enum)  { f.record("Enable", cap) }
func (f *fakeFuncs) Disable(cap gl.Enum) { f.record("Disable", cap) }

func (f *fakeFuncs) CreateFramebuffer() uint32 {
	f.record("CreateFramebuffer")
	return f.gen()
}

func (f *fakeFuncs) DeleteFramebuffer(fb uint32) { f.record("DeleteFramebuffer", fb) }

func (f *fakeFuncs) BindFramebuffer(target gl.Enum, fb uint32) {
	f.record("BindFramebuffer", target, fb)
}

func (f *fakeFuncs) FramebufferTexture2D(target, attachment, texTarget gl.Enum, tex uint32, level int32) {
	f.record("FramebufferTexture2D", target, attachment, texTarget, tex, level)
}

func (f *fakeFuncs) CreateVertexArray() uint32 {
	f.record("CreateVertexArray")
	return f.gen()
}

func (f *fakeFuncs) DeleteVertexArray(va uint32) { f.record("DeleteVertexArray", va) }
func (f *fakeFuncs) BindVertexArray(va uint32)   { f.record("BindVertexArray", va) }

func (f *fakeFuncs) EnableVertexAttribArray(index uint32) {
	f.record("EnableVertexAttribArray", index)
}

func (f *fakeFuncs) VertexAttribPointer(index uint32, size int32, ty gl.Enum, normalized bool, stride int32, offset int) {
	f.record("VertexAttribPointer", index, size, ty, normalized, stride, offset)
}

func (f *fakeFuncs) VertexAttribDivisor(index, divisor uint32) {
	f.record("VertexAttribDivisor", index, divisor)
}

func (f *fakeFuncs) CreateBuffers(n int) []uint32 {
	f.record("CreateBuffers", n)
	bufs := make([]uint32, n)
	for i := range bufs {
		bufs[i] = f.gen()
	}
	return bufs
}

func (f *fakeFuncs) DeleteBuffers(bufs []uint32) {
	f.record("DeleteBuffers", slices.Clone(bufs))
}

func (f *fakeFuncs) BindBuffer(target gl.Enum, buf uint32) { f.record("BindBuffer", target, buf) }

func (f *fakeFuncs) BindBufferBase(target gl.Enum, index, buf uint32) {
	f.record("BindBufferBase", target, index, buf)
}

func (f *fakeFuncs) BufferData(target gl.Enum, size int, src []byte, usage gl.Enum) {
	f.record("BufferData", target, size, src != nil, usage)
}

func (f *fakeFuncs) BufferSubData(target gl.Enum, offset int, src []byte) {
	f.record("BufferSubData", target, offset, len(src))
}

func (f *fakeFuncs) MapBufferRange(target gl.Enum, offset, length int, access gl.Enum) []byte {
	f.record("MapBufferRange", target, offset, length, access)
	if f.mapFails {
		return nil
	}
	f.mapped = make([]byte, length)
	return f.mapped
}

func (f *fakeFuncs) UnmapBuffer(target gl.Enum) bool {
	f.record("UnmapBuffer", target)
	return !f.unmapFails
}

func (f *fakeFuncs) CreateSampler() uint32 {
	f.record("CreateSampler")
	return f.gen()
}

func (f *fakeFuncs) DeleteSampler(s uint32)     { f.record("DeleteSampler", s) }
func (f *fakeFuncs) BindSampler(unit, s uint32) { f.record("BindSampler", unit, s) }

func (f *fakeFuncs) SamplerParameteri(s uint32, pname gl.Enum, param int32) {
	f.record("SamplerParameteri", s, pname, param)
}

func (f *fakeFuncs) SamplerParameterf(s uint32, pname gl.Enum, param float32) {
	f.record("SamplerParameterf", s, pname, param)
}

func (f *fakeFuncs) CreateTexture() uint32 {
	f.record("CreateTexture")
	return f.gen()
}

func (f *fakeFuncs) DeleteTexture(tex uint32)               { f.record("DeleteTexture", tex) }
func (f *fakeFuncs) ActiveTexture(unit gl.Enum)             { f.record("ActiveTexture", unit) }
func (f *fakeFuncs) BindTexture(target gl.Enum, tex uint32) { f.record("BindTexture", target, tex) }

func (f *fakeFuncs) TexParameteri(target, pname gl.Enum, param int32) {
	f.record("TexParameteri", target, pname, param)
}

func (f *fakeFuncs) TexImage2D(target gl.Enum, level, internalFormat, width, height int32, format, ty gl.Enum, data []byte) {
	f.record("TexImage2D", target, level, internalFormat, width, height, format, ty)
}

func (f *fakeFuncs) GenerateMipmap(target gl.Enum)          { f.record("GenerateMipmap", target) }
func (f *fakeFuncs) PixelStorei(pname gl.Enum, param int32) { f.record("PixelStorei", pname, param) }

func (f *fakeFuncs) CreateProgram() uint32 {
	f.record("CreateProgram")
	return f.gen()
}

func (f *fakeFuncs) DeleteProgram(p uint32)   { f.record("DeleteProgram", p) }
func (f *fakeFuncs) LinkProgram(p uint32)     { f.record("LinkProgram", p) }
func (f *fakeFuncs) ValidateProgram(p uint32) { f.record("ValidateProgram", p) }
func (f *fakeFuncs) UseProgram(p uint32)      { f.record("UseProgram", p) }

func (f *fakeFuncs) GetProgrami(p uint32, pname gl.Enum) int32 {
	f.record("GetProgrami", p, pname)
	switch pname {
	case gl.LINK_STATUS:
		if f.linkFail != "" {
			return gl.FALSE
		}
		return gl.TRUE
	case gl.VALIDATE_STATUS:
		if f.validateFail != "" {
			return gl.FALSE
		}
		return gl.TRUE
	case gl.ACTIVE_ATTRIBUTES:
		return int32(len(f.attribs))
	case gl.ACTIVE_UNIFORM_BLOCKS:
		return int32(len(f.blocks))
	case gl.ACTIVE_UNIFORMS:
		return int32(len(f.uniforms))
	}
	return 0
}

func (f *fakeFuncs) GetProgramInfoLog(p uint32) string {
	f.record("GetProgramInfoLog", p)
	if f.linkFail != "" {
		return f.linkFail
	}
	return f.validateFail
}

func (f *fakeFuncs) CreateShader(ty gl.Enum) uint32 {
	f.record("CreateShader", ty)
	s := f.gen()
	f.shaderTypes[s] = ty
	return s
}

func (f *fakeFuncs) DeleteShader(s uint32)             { f.record("DeleteShader", s) }
func (f *fakeFuncs) ShaderSource(s uint32, src string) { f.record("ShaderSource", s, src) }
func (f *fakeFuncs) CompileShader(s uint32)            { f.record("CompileShader", s) }

func (f *fakeFuncs) GetShaderi(s uint32, pname gl.Enum) int32 {
	f.record("GetShaderi", s, pname)
	if _, failed := f.compileFail[f.shaderTypes[s]]; failed && pname == gl.COMPILE_STATUS {
		return gl.FALSE
	}
	return gl.TRUE
}

func (f *fakeFuncs) GetShaderInfoLog(s uint32) string {
	f.record("GetShaderInfoLog", s)
	return f.compileFail[f.shaderTypes[s]]
}

func (f *fakeFuncs) AttachShader(p, s uint32) { f.record("AttachShader", p, s) }
func (f *fakeFuncs) DetachShader(p, s uint32) { f.record("DetachShader", p, s) }

func (f *fakeFuncs) GetActiveAttrib(p, index uint32) (string, int32, gl.Enum) {
	f.record("GetActiveAttrib", p, index)
	return f.attribs[index], 1, gl.FLOAT_VEC4
}

func (f *fakeFuncs) BindAttribLocation(p, index uint32, name string) {
	f.record("BindAttribLocation", p, index, name)
}

func (f *fakeFuncs) GetActiveUniform(p, index uint32) (string, int32, gl.Enum) {
	f.record("GetActiveUniform", p, index)
	u := f.uniforms[index]
	return u.name, 1, u.ty
}

func (f *fakeFuncs) GetActiveUniformi(p, index uint32, pname gl.Enum) int32 {
	f.record("GetActiveUniformi", p, index, pname)
	return f.uniforms[index].block
}

func (f *fakeFuncs) GetActiveUniformBlockName(p, index uint32) string {
	f.record("GetActiveUniformBlockName", p, index)
	return f.blocks[index]
}

func (f *fakeFuncs) GetUniformBlockIndex(p uint32, name string) uint32 {
	f.record("GetUniformBlockIndex", p, name)
	return uint32(slices.Index(f.blocks, name))
}

func (f *fakeFuncs) UniformBlockBinding(p, blockIndex, binding uint32) {
	f.record("UniformBlockBinding", p, blockIndex, binding)
}

// GetUniformLocation places reflected uniforms at their index plus 10 and
// everything else at 99.
func (f *fakeFuncs) GetUniformLocation(p uint32, name string) int32 {
	f.record("GetUniformLocation", p, name)
	for i, u := range f.uniforms {
		if u.name == name {
			return int32(i) + 10
		}
	}
	return 99
}

func (f *fakeFuncs) Uniform1i(loc, v int32)          { f.record("Uniform1i", loc, v) }
func (f *fakeFuncs) Uniform1iv(loc int32, v []int32) { f.record("Uniform1iv", loc, slices.Clone(v)) }
func (f *fakeFuncs) Uniform1f(loc int32, v float32)  { f.record("Uniform1f", loc, v) }

func (f *fakeFuncs) Uniform2f(loc int32, v0, v1 float32) { f.record("Uniform2f", loc, v0, v1) }

func (f *fakeFuncs) Uniform3f(loc int32, v0, v1, v2 float32) {
	f.record("Uniform3f", loc, v0, v1, v2)
}

func (f *fakeFuncs) Uniform4f(loc int32, v0, v1, v2, v3 float32) {
	f.record("Uniform4f", loc, v0, v1, v2, v3)
}

func (f *fakeFuncs) UniformMatrix3fv(loc int32, m []float32) {
	f.record("UniformMatrix3fv", loc, slices.Clone(m))
}

func (f *fakeFuncs) UniformMatrix4fv(loc int32, m []float32) {
	f.record("UniformMatrix4fv", loc, slices.Clone(m))
}

func (f *fakeFuncs) Viewport(x, y, width, height int32) { f.record("Viewport", x, y, width, height) }
func (f *fakeFuncs) Scissor(x, y, width, height int32)  { f.record("Scissor", x, y, width, height) }
func (f *fakeFuncs) BlendFunc(sfactor, dfactor gl.Enum) { f.record("BlendFunc", sfactor, dfactor) }
func (f *fakeFuncs) DepthFunc(fn gl.Enum)               { f.record("DepthFunc", fn) }
func (f *fakeFuncs) DepthMask(mask bool)                { f.record("DepthMask", mask) }

func (f *fakeFuncs) StencilFunc(fn gl.Enum, ref int32, mask uint32) {
	f.record("StencilFunc", fn, ref, mask)
}

func (f *fakeFuncs) StencilOp(sfail, dpfail, dppass gl.Enum) {
	f.record("StencilOp", sfail, dpfail, dppass)
}

func (f *fakeFuncs) StencilMask(mask uint32)       { f.record("StencilMask", mask) }
func (f *fakeFuncs) CullFace(mode gl.Enum)         { f.record("CullFace", mode) }
func (f *fakeFuncs) FrontFace(mode gl.Enum)        { f.record("FrontFace", mode) }
func (f *fakeFuncs) ClearColor(r, g, b, a float32) { f.record("ClearColor", r, g, b, a) }
func (f *fakeFuncs) Clear(mask gl.Enum)            { f.record("Clear", mask) }

func (f *fakeFuncs) DrawElements(mode gl.Enum, count int32, ty gl.Enum, offset int) {
	f.record("DrawElements", mode, count, ty, offset)
}

func (f *fakeFuncs) DrawElementsInstanced(mode gl.Enum, count int32, ty gl.Enum, offset int, instances int32) {
	f.record("DrawElementsInstanced", mode, count, ty, offset, instances)
}

type fakeSurface struct {
	funcs         *fakeFuncs
	err           error
	width, height int
}

func (s *fakeSurface) Functions() (gl.Functions, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.funcs, nil
}

func (s *fakeSurface) FramebufferSize() (int, int) { return s.width, s.height }

var errNoContext = errors.New("no context")

// newTestDevice returns an 800x600 device whose construction calls have
// been cleared from the recording.
func newTestDevice(t *testing.T, opts ...Option) (*Device, *fakeFuncs) {
	t.Helper()
	f := newFakeFuncs()
	d, err := NewDevice(&fakeSurface{funcs: f, width: 800, height: 600}, opts...)
	if err != nil {
		t.Fatalf("NewDevice: %v", err)
	}
	f.reset()
	return d, f
}
