package render

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/go-theft-auto/render/internal/gl"
)

type uniformKey struct {
	program Handle
	name    string
}

// SetShaderUniformBuffer binds buffer to the binding point of the named
// uniform block of program.
func (d *Device) SetShaderUniformBuffer(program Handle, block string, buffer Handle) {
	d.SetShader(program)
	var index uint32
	ok := false
	if rec := d.programs[program]; rec != nil {
		index, ok = rec.uniformBlocks[block]
	}
	if !ok {
		d.log.Warn("unknown uniform block", "program", program, "block", block)
		return
	}
	d.funcs.BindBufferBase(gl.UNIFORM_BUFFER, index, uint32(buffer))
}

// SetShaderSampler binds texture and sampler to texture unit and points the
// named sampler2D uniform of program at that unit.
func (d *Device) SetShaderSampler(program Handle, name string, texture, sampler Handle, unit uint32) {
	d.SetShader(program)
	d.funcs.ActiveTexture(gl.TEXTURE0 + gl.Enum(unit))
	d.funcs.BindTexture(gl.TEXTURE_2D, uint32(texture))
	d.funcs.BindSampler(unit, uint32(sampler))

	var loc int32
	ok := false
	if rec := d.programs[program]; rec != nil {
		loc, ok = rec.samplers[name]
	}
	if !ok {
		d.log.Warn("unknown sampler uniform", "program", program, "sampler", name)
		return
	}
	d.funcs.Uniform1i(loc, int32(unit))
}

// uniformLocation looks up a uniform by name, through the location cache
// when the device has one.
func (d *Device) uniformLocation(program Handle, name string) int32 {
	if d.uniformLocs == nil {
		return d.funcs.GetUniformLocation(uint32(program), name)
	}
	k := uniformKey{program: program, name: name}
	if loc, ok := d.uniformLocs[k]; ok {
		return loc
	}
	loc := d.funcs.GetUniformLocation(uint32(program), name)
	d.uniformLocs[k] = loc
	return loc
}

// SetShaderInt sets an int uniform of program.
func (d *Device) SetShaderInt(program Handle, name string, v int32) {
	d.SetShader(program)
	d.funcs.Uniform1i(d.uniformLocation(program, name), v)
}

// SetShaderIntArray sets an int array uniform of program.
func (d *Device) SetShaderIntArray(program Handle, name string, v []int32) {
	d.SetShader(program)
	d.funcs.Uniform1iv(d.uniformLocation(program, name), v)
}

// SetShaderFloat sets a float uniform of program.
func (d *Device) SetShaderFloat(program Handle, name string, v float32) {
	d.SetShader(program)
	d.funcs.Uniform1f(d.uniformLocation(program, name), v)
}

// SetShaderFloat2 sets a vec2 uniform of program.
func (d *Device) SetShaderFloat2(program Handle, name string, v mgl32.Vec2) {
	d.SetShader(program)
	d.funcs.Uniform2f(d.uniformLocation(program, name), v[0], v[1])
}

// SetShaderFloat3 sets a vec3 uniform of program.
func (d *Device) SetShaderFloat3(program Handle, name string, v mgl32.Vec3) {
	d.SetShader(program)
	d.funcs.Uniform3f(d.uniformLocation(program, name), v[0], v[1], v[2])
}

// SetShaderFloat4 sets a vec4 uniform of program.
func (d *Device) SetShaderFloat4(program Handle, name string, v mgl32.Vec4) {
	d.SetShader(program)
	d.funcs.Uniform4f(d.uniformLocation(program, name), v[0], v[1], v[2], v[3])
}

// SetShaderMat3 sets a column-major mat3 uniform of program.
func (d *Device) SetShaderMat3(program Handle, name string, m mgl32.Mat3) {
	d.SetShader(program)
	d.funcs.UniformMatrix3fv(d.uniformLocation(program, name), m[:])
}

// SetShaderMat4 sets a column-major mat4 uniform of program.
func (d *Device) SetShaderMat4(program Handle, name string, m mgl32.Mat4) {
	d.SetShader(program)
	d.funcs.UniformMatrix4fv(d.uniformLocation(program, name), m[:])
}
