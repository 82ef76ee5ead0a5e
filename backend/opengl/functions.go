// Package opengl binds the render device to a desktop OpenGL 3.3 core
// context created by GLFW.
package opengl

import (
	"unsafe"

	"github.com/go-gl/gl/v3.3-core/gl"

	api "github.com/go-theft-auto/render/internal/gl"
)

// Functions issues calls through the go-gl bindings. The zero value is
// ready once gl.Init has run on the current context.
type Functions struct{}

var _ api.Functions = Functions{}

func ptr(b []byte) unsafe.Pointer {
	if len(b) == 0 {
		return nil
	}
	return unsafe.Pointer(&b[0])
}

func (Functions) GetInteger(pname api.Enum) int32 {
	var v int32
	gl.GetIntegerv(uint32(pname), &v)
	return v
}

func (Functions) Enable(cap api.Enum)  { gl.Enable(uint32(cap)) }
func (Functions) Disable(cap api.Enum) { gl.Disable(uint32(cap)) }

func (Functions) CreateFramebuffer() uint32 {
	var fb uint32
	gl.GenFramebuffers(1, &fb)
	return fb
}

func (Functions) DeleteFramebuffer(fb uint32) { gl.DeleteFramebuffers(1, &fb) }

func (Functions) BindFramebuffer(target api.Enum, fb uint32) {
	gl.BindFramebuffer(uint32(target), fb)
}

func (Functions) FramebufferTexture2D(target, attachment, texTarget api.Enum, tex uint32, level int32) {
	gl.FramebufferTexture2D(uint32(target), uint32(attachment), uint32(texTarget), tex, level)
}

func (Functions) CreateVertexArray() uint32 {
	var va uint32
	gl.GenVertexArrays(1, &va)
	return va
}

func (Functions) DeleteVertexArray(va uint32) { gl.DeleteVertexArrays(1, &va) }
func (Functions) BindVertexArray(va uint32)   { gl.BindVertexArray(va) }

func (Functions) EnableVertexAttribArray(index uint32) { gl.EnableVertexAttribArray(index) }

func (Functions) VertexAttribPointer(index uint32, size int32, ty api.Enum, normalized bool, stride int32, offset int) {
	gl.VertexAttribPointerWithOffset(index, size, uint32(ty), normalized, stride, uintptr(offset))
}

func (Functions) VertexAttribDivisor(index, divisor uint32) { gl.VertexAttribDivisor(index, divisor) }

func (Functions) CreateBuffers(n int) []uint32 {
	bufs := make([]uint32, n)
	gl.GenBuffers(int32(n), &bufs[0])
	return bufs
}

func (Functions) DeleteBuffers(bufs []uint32) {
	if len(bufs) == 0 {
		return
	}
	gl.DeleteBuffers(int32(len(bufs)), &bufs[0])
}

func (Functions) BindBuffer(target api.Enum, buf uint32) { gl.BindBuffer(uint32(target), buf) }

func (Functions) BindBufferBase(target api.Enum, index, buf uint32) {
	gl.BindBufferBase(uint32(target), index, buf)
}

func (Functions) BufferData(target api.Enum, size int, src []byte, usage api.Enum) {
	gl.BufferData(uint32(target), size, ptr(src), uint32(usage))
}

func (Functions) BufferSubData(target api.Enum, offset int, src []byte) {
	if len(src) == 0 {
		return
	}
	gl.BufferSubData(uint32(target), offset, len(src), ptr(src))
}

func (Functions) MapBufferRange(target api.Enum, offset, length int, access api.Enum) []byte {
	p := gl.MapBufferRange(uint32(target), offset, length, uint32(access))
	if p == nil {
		return nil
	}
	return unsafe.Slice((*byte)(p), length)
}

func (Functions) UnmapBuffer(target api.Enum) bool { return gl.UnmapBuffer(uint32(target)) }

func (Functions) CreateSampler() uint32 {
	var s uint32
	gl.GenSamplers(1, &s)
	return s
}

func (Functions) DeleteSampler(s uint32)     { gl.DeleteSamplers(1, &s) }
func (Functions) BindSampler(unit, s uint32) { gl.BindSampler(unit, s) }

func (Functions) SamplerParameteri(s uint32, pname api.Enum, param int32) {
	gl.SamplerParameteri(s, uint32(pname), param)
}

func (Functions) SamplerParameterf(s uint32, pname api.Enum, param float32) {
	gl.SamplerParameterf(s, uint32(pname), param)
}

func (Functions) CreateTexture() uint32 {
	var tex uint32
	gl.GenTextures(1, &tex)
	return tex
}

func (Functions) DeleteTexture(tex uint32)                { gl.DeleteTextures(1, &tex) }
func (Functions) ActiveTexture(unit api.Enum)             { gl.ActiveTexture(uint32(unit)) }
func (Functions) BindTexture(target api.Enum, tex uint32) { gl.BindTexture(uint32(target), tex) }

func (Functions) TexParameteri(target, pname api.Enum, param int32) {
	gl.TexParameteri(uint32(target), uint32(pname), param)
}

func (Functions) TexImage2D(target api.Enum, level, internalFormat, width, height int32, format, ty api.Enum, data []byte) {
	gl.TexImage2D(uint32(target), level, internalFormat, width, height, 0, uint32(format), uint32(ty), ptr(data))
}

func (Functions) GenerateMipmap(target api.Enum)          { gl.GenerateMipmap(uint32(target)) }
func (Functions) PixelStorei(pname api.Enum, param int32) { gl.PixelStorei(uint32(pname), param) }
func (Functions) CreateProgram() uint32                   { return gl.CreateProgram() }
func (Functions) DeleteProgram(p uint32)                  { gl.DeleteProgram(p) }
func (Functions) LinkProgram(p uint32)                    { gl.LinkProgram(p) }
func (Functions) ValidateProgram(p uint32)                { gl.ValidateProgram(p) }
func (Functions) UseProgram(p uint32)                     { gl.UseProgram(p) }
func (Functions) CreateShader(ty api.Enum) uint32         { return gl.CreateShader(uint32(ty)) }
func (Functions) DeleteShader(s uint32)                   { gl.DeleteShader(s) }
func (Functions) CompileShader(s uint32)                  { gl.CompileShader(s) }
func (Functions) AttachShader(p, s uint32)                { gl.AttachShader(p, s) }
func (Functions) DetachShader(p, s uint32)                { gl.DetachShader(p, s) }

func (Functions) UniformBlockBinding(p, blockIndex, binding uint32) {
	gl.UniformBlockBinding(p, blockIndex, binding)
}

func (Functions) GetProgrami(p uint32, pname api.Enum) int32 {
	var v int32
	gl.GetProgramiv(p, uint32(pname), &v)
	return v
}

func (Functions) GetProgramInfoLog(p uint32) string {
	var n int32
	gl.GetProgramiv(p, gl.INFO_LOG_LENGTH, &n)
	if n == 0 {
		return ""
	}
	log := make([]byte, n+1)
	gl.GetProgramInfoLog(p, n, nil, &log[0])
	return gl.GoStr(&log[0])
}

func (Functions) ShaderSource(s uint32, src string) {
	csource, free := gl.Strs(src + "\x00")
	defer free()
	gl.ShaderSource(s, 1, csource, nil)
}

func (Functions) GetShaderi(s uint32, pname api.Enum) int32 {
	var v int32
	gl.GetShaderiv(s, uint32(pname), &v)
	return v
}

func (Functions) GetShaderInfoLog(s uint32) string {
	var n int32
	gl.GetShaderiv(s, gl.INFO_LOG_LENGTH, &n)
	if n == 0 {
		return ""
	}
	log := make([]byte, n+1)
	gl.GetShaderInfoLog(s, n, nil, &log[0])
	return gl.GoStr(&log[0])
}

// Some drivers misreport the *_MAX_LENGTH queries, so names are read into a
// fixed buffer.
const maxNameLength = 256

func (Functions) GetActiveAttrib(p, index uint32) (string, int32, api.Enum) {
	var (
		length, size int32
		ty           uint32
		name         [maxNameLength]byte
	)
	gl.GetActiveAttrib(p, index, maxNameLength, &length, &size, &ty, &name[0])
	return string(name[:length]), size, api.Enum(ty)
}

func (Functions) BindAttribLocation(p, index uint32, name string) {
	gl.BindAttribLocation(p, index, gl.Str(name+"\x00"))
}

func (Functions) GetActiveUniform(p, index uint32) (string, int32, api.Enum) {
	var (
		length, size int32
		ty           uint32
		name         [maxNameLength]byte
	)
	gl.GetActiveUniform(p, index, maxNameLength, &length, &size, &ty, &name[0])
	return string(name[:length]), size, api.Enum(ty)
}

func (Functions) GetActiveUniformi(p, index uint32, pname api.Enum) int32 {
	var v int32
	gl.GetActiveUniformsiv(p, 1, &index, uint32(pname), &v)
	return v
}

func (Functions) GetActiveUniformBlockName(p, index uint32) string {
	var n int32
	gl.GetActiveUniformBlockiv(p, index, gl.UNIFORM_BLOCK_NAME_LENGTH, &n)
	if n <= 1 {
		return ""
	}
	name := make([]byte, n)
	gl.GetActiveUniformBlockName(p, index, n, nil, &name[0])
	return string(name[:n-1])
}

func (Functions) GetUniformBlockIndex(p uint32, name string) uint32 {
	return gl.GetUniformBlockIndex(p, gl.Str(name+"\x00"))
}

func (Functions) GetUniformLocation(p uint32, name string) int32 {
	return gl.GetUniformLocation(p, gl.Str(name+"\x00"))
}

func (Functions) Uniform1i(loc, v int32) { gl.Uniform1i(loc, v) }

func (Functions) Uniform1iv(loc int32, v []int32) {
	if len(v) == 0 {
		return
	}
	gl.Uniform1iv(loc, int32(len(v)), &v[0])
}

func (Functions) Uniform1f(loc int32, v float32)              { gl.Uniform1f(loc, v) }
func (Functions) Uniform2f(loc int32, v0, v1 float32)         { gl.Uniform2f(loc, v0, v1) }
func (Functions) Uniform3f(loc int32, v0, v1, v2 float32)     { gl.Uniform3f(loc, v0, v1, v2) }
func (Functions) Uniform4f(loc int32, v0, v1, v2, v3 float32) { gl.Uniform4f(loc, v0, v1, v2, v3) }
func (Functions) UniformMatrix3fv(loc int32, m []float32)     { gl.UniformMatrix3fv(loc, 1, false, &m[0]) }
func (Functions) UniformMatrix4fv(loc int32, m []float32)     { gl.UniformMatrix4fv(loc, 1, false, &m[0]) }
func (Functions) Viewport(x, y, width, height int32)          { gl.Viewport(x, y, width, height) }
func (Functions) Scissor(x, y, width, height int32)           { gl.Scissor(x, y, width, height) }
func (Functions) BlendFunc(sfactor, dfactor api.Enum)         { gl.BlendFunc(uint32(sfactor), uint32(dfactor)) }
func (Functions) DepthFunc(fn api.Enum)                       { gl.DepthFunc(uint32(fn)) }
func (Functions) DepthMask(mask bool)                         { gl.DepthMask(mask) }

func (Functions) StencilFunc(fn api.Enum, ref int32, mask uint32) {
	gl.StencilFunc(uint32(fn), ref, mask)
}

func (Functions) StencilOp(sfail, dpfail, dppass api.Enum) {
	gl.StencilOp(uint32(sfail), uint32(dpfail), uint32(dppass))
}

func (Functions) StencilMask(mask uint32)       { gl.StencilMask(mask) }
func (Functions) CullFace(mode api.Enum)        { gl.CullFace(uint32(mode)) }
func (Functions) FrontFace(mode api.Enum)       { gl.FrontFace(uint32(mode)) }
func (Functions) ClearColor(r, g, b, a float32) { gl.ClearColor(r, g, b, a) }
func (Functions) Clear(mask api.Enum)           { gl.Clear(uint32(mask)) }

func (Functions) DrawElements(mode api.Enum, count int32, ty api.Enum, offset int) {
	gl.DrawElements(uint32(mode), count, uint32(ty), gl.PtrOffset(offset))
}

func (Functions) DrawElementsInstanced(mode api.Enum, count int32, ty api.Enum, offset int, instances int32) {
	gl.DrawElementsInstanced(uint32(mode), count, uint32(ty), gl.PtrOffset(offset), instances)
}
