package gl

// Functions is the subset of OpenGL the render device issues. Object names
// are plain uint32 values; 0 is the null object for every kind.
//
// Implementations must be called from the goroutine that owns the context.
type Functions interface {
	GetInteger(pname Enum) int32

	Enable(cap Enum)
	Disable(cap Enum)

	CreateFramebuffer() uint32
	DeleteFramebuffer(fb uint32)
	BindFramebuffer(target Enum, fb uint32)
	FramebufferTexture2D(target, attachment, texTarget Enum, tex uint32, level int32)

	CreateVertexArray() uint32
	DeleteVertexArray(va uint32)
	BindVertexArray(va uint32)
	EnableVertexAttribArray(index uint32)
	VertexAttribPointer(index uint32, size int32, ty Enum, normalized bool, stride int32, offset int)
	VertexAttribDivisor(index, divisor uint32)

	CreateBuffers(n int) []uint32
	DeleteBuffers(bufs []uint32)
	BindBuffer(target Enum, buf uint32)
	BindBufferBase(target Enum, index, buf uint32)
	// BufferData allocates size bytes. A nil src leaves the storage
	// uninitialized; otherwise len(src) must be at least size.
	BufferData(target Enum, size int, src []byte, usage Enum)
	BufferSubData(target Enum, offset int, src []byte)
	// MapBufferRange returns nil if the range could not be mapped. The
	// returned slice is only valid until UnmapBuffer.
	MapBufferRange(target Enum, offset, length int, access Enum) []byte
	UnmapBuffer(target Enum) bool

	CreateSampler() uint32
	DeleteSampler(s uint32)
	BindSampler(unit, s uint32)
	SamplerParameteri(s uint32, pname Enum, param int32)
	SamplerParameterf(s uint32, pname Enum, param float32)

	CreateTexture() uint32
	DeleteTexture(tex uint32)
	ActiveTexture(unit Enum)
	BindTexture(target Enum, tex uint32)
	TexParameteri(target, pname Enum, param int32)
	TexImage2D(target Enum, level, internalFormat, width, height int32, format, ty Enum, data []byte)
	GenerateMipmap(target Enum)
	PixelStorei(pname Enum, param int32)

	CreateProgram() uint32
	DeleteProgram(p uint32)
	LinkProgram(p uint32)
	ValidateProgram(p uint32)
	UseProgram(p uint32)
	GetProgrami(p uint32, pname Enum) int32
	GetProgramInfoLog(p uint32) string
	CreateShader(ty Enum) uint32
	DeleteShader(s uint32)
	ShaderSource(s uint32, src string)
	CompileShader(s uint32)
	GetShaderi(s uint32, pname Enum) int32
	GetShaderInfoLog(s uint32) string
	AttachShader(p, s uint32)
	DetachShader(p, s uint32)

	GetActiveAttrib(p, index uint32) (name string, size int32, ty Enum)
	BindAttribLocation(p, index uint32, name string)
	GetActiveUniform(p, index uint32) (name string, size int32, ty Enum)
	// GetActiveUniformi queries one parameter of one active uniform.
	GetActiveUniformi(p, index uint32, pname Enum) int32
	GetActiveUniformBlockName(p, index uint32) string
	GetUniformBlockIndex(p uint32, name string) uint32
	UniformBlockBinding(p, blockIndex, binding uint32)
	GetUniformLocation(p uint32, name string) int32

	Uniform1i(loc, v int32)
	Uniform1iv(loc int32, v []int32)
	Uniform1f(loc int32, v float32)
	Uniform2f(loc int32, v0, v1 float32)
	Uniform3f(loc int32, v0, v1, v2 float32)
	Uniform4f(loc int32, v0, v1, v2, v3 float32)
	UniformMatrix3fv(loc int32, m []float32)
	UniformMatrix4fv(loc int32, m []float32)

	Viewport(x, y, width, height int32)
	Scissor(x, y, width, height int32)
	BlendFunc(sfactor, dfactor Enum)
	DepthFunc(fn Enum)
	DepthMask(mask bool)
	StencilFunc(fn Enum, ref int32, mask uint32)
	StencilOp(sfail, dpfail, dppass Enum)
	StencilMask(mask uint32)
	CullFace(mode Enum)
	FrontFace(mode Enum)

	ClearColor(r, g, b, a float32)
	Clear(mask Enum)
	DrawElements(mode Enum, count int32, ty Enum, offset int)
	DrawElementsInstanced(mode Enum, count int32, ty Enum, offset int, instances int32)
}
