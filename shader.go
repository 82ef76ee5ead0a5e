package render

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/go-theft-auto/render/internal/gl"
)

const (
	versionDirective = "#version"

	vertexBuildDefine   = "#define VERTEX_SHADER_BUILD\n"
	fragmentBuildDefine = "#define FRAGMENT_SHADER_BUILD\n"

	// Contexts older than this get attribute locations bound in
	// enumeration order instead of from layout qualifiers.
	explicitAttribLocationVersion = 320
)

var (
	// ErrMissingVersion is returned for shader source without a #version
	// line.
	ErrMissingVersion = errors.New("render: shader source is missing a #version directive")
	// ErrCreateObject is returned when the context refused to create a
	// program or shader object.
	ErrCreateObject = errors.New("render: shader object creation failed")
	// ErrLink is returned when a program fails to link.
	ErrLink = errors.New("render: shader program link failed")
	// ErrValidate is returned when a program fails validation.
	ErrValidate = errors.New("render: shader program validation failed")
)

// ShaderStage is a programmable pipeline stage.
type ShaderStage uint8

const (
	StageVertex ShaderStage = iota
	StageFragment
)

func (s ShaderStage) String() string {
	switch s {
	case StageVertex:
		return "vertex"
	case StageFragment:
		return "fragment"
	}
	return fmt.Sprintf("ShaderStage(%d)", uint8(s))
}

func (s ShaderStage) native() gl.Enum {
	if s == StageFragment {
		return gl.FRAGMENT_SHADER
	}
	return gl.VERTEX_SHADER
}

// ShaderCompileError carries the driver's diagnostics for a stage that
// failed to compile.
type ShaderCompileError struct {
	Stage ShaderStage
	Log   string
}

func (e *ShaderCompileError) Error() string {
	return fmt.Sprintf("render: %s shader compile failed: %s", e.Stage, e.Log)
}

// UnsupportedUniform is an active uniform that reflection skipped. Only
// sampler2D uniforms are reflected; other types are set by name.
type UnsupportedUniform struct {
	Name string
	// Type is the native type enumerant reported by the driver.
	Type uint32
}

// ShaderReflection is what was discovered about a program after linking.
type ShaderReflection struct {
	UniformBlocks map[string]uint32
	Samplers      map[string]int32
	Unsupported   []UnsupportedUniform
}

type shaderProgram struct {
	shaders       []uint32
	uniformBlocks map[string]uint32
	samplers      map[string]int32
	unsupported   []UnsupportedUniform
}

// splitShaderSource derives the vertex and fragment sources of a combined
// shader by inserting a stage define on the line after #version.
func splitShaderSource(src string) (vertex, fragment string, err error) {
	v := strings.Index(src, versionDirective)
	if v < 0 {
		return "", "", ErrMissingVersion
	}
	nl := strings.IndexByte(src[v:], '\n')
	if nl < 0 {
		return "", "", ErrMissingVersion
	}
	at := v + nl + 1
	return src[:at] + vertexBuildDefine + src[at:], src[:at] + fragmentBuildDefine + src[at:], nil
}

// CreateShaderProgram compiles, links, validates and reflects a program
// from a single source text holding both stages. The stages are selected
// in the source with VERTEX_SHADER_BUILD and FRAGMENT_SHADER_BUILD.
//
// On failure the diagnostics are logged, every object created so far is
// deleted, and InvalidHandle is returned with the error.
func (d *Device) CreateShaderProgram(source string) (Handle, error) {
	vertex, fragment, err := splitShaderSource(source)
	if err != nil {
		d.log.Error("shader program rejected", "err", err)
		return InvalidHandle, err
	}

	prog := d.funcs.CreateProgram()
	if prog == 0 {
		d.log.Error("shader program rejected", "err", ErrCreateObject)
		return InvalidHandle, ErrCreateObject
	}

	rec := &shaderProgram{
		uniformBlocks: make(map[string]uint32),
		samplers:      make(map[string]int32),
	}
	fail := func(err error) (Handle, error) {
		d.log.Error("shader program rejected", "err", err)
		d.deleteProgram(prog, rec.shaders)
		return InvalidHandle, err
	}

	for _, st := range []struct {
		stage ShaderStage
		src   string
	}{{StageVertex, vertex}, {StageFragment, fragment}} {
		s, err := d.compileShader(st.stage, st.src)
		if err != nil {
			return fail(err)
		}
		d.funcs.AttachShader(prog, s)
		rec.shaders = append(rec.shaders, s)
	}

	d.funcs.LinkProgram(prog)
	if err := d.programStatus(prog, gl.LINK_STATUS, ErrLink); err != nil {
		return fail(err)
	}
	d.funcs.ValidateProgram(prog)
	if err := d.programStatus(prog, gl.VALIDATE_STATUS, ErrValidate); err != nil {
		return fail(err)
	}

	if d.Version() < explicitAttribLocationVersion {
		// Assumes the driver enumerates attributes in declaration order,
		// which not every driver does.
		d.bindAttributesInOrder(prog)
		d.funcs.LinkProgram(prog)
		if err := d.programStatus(prog, gl.LINK_STATUS, ErrLink); err != nil {
			return fail(err)
		}
	}

	d.reflect(prog, rec)

	h := Handle(prog)
	d.programs[h] = rec
	d.log.Debug("shader program created", "handle", h,
		"uniformBlocks", len(rec.uniformBlocks), "samplers", len(rec.samplers))
	return h, nil
}

func (d *Device) compileShader(stage ShaderStage, src string) (uint32, error) {
	s := d.funcs.CreateShader(stage.native())
	if s == 0 {
		return 0, fmt.Errorf("%w: %s shader", ErrCreateObject, stage)
	}
	d.funcs.ShaderSource(s, src)
	d.funcs.CompileShader(s)
	if d.funcs.GetShaderi(s, gl.COMPILE_STATUS) == gl.FALSE {
		log := d.funcs.GetShaderInfoLog(s)
		d.funcs.DeleteShader(s)
		return 0, &ShaderCompileError{Stage: stage, Log: log}
	}
	return s, nil
}

func (d *Device) programStatus(prog uint32, pname gl.Enum, sentinel error) error {
	if d.funcs.GetProgrami(prog, pname) != gl.FALSE {
		return nil
	}
	return fmt.Errorf("%w: %s", sentinel, d.funcs.GetProgramInfoLog(prog))
}

func (d *Device) bindAttributesInOrder(prog uint32) {
	n := d.funcs.GetProgrami(prog, gl.ACTIVE_ATTRIBUTES)
	for i := uint32(0); i < uint32(n); i++ {
		name, _, _ := d.funcs.GetActiveAttrib(prog, i)
		d.funcs.BindAttribLocation(prog, i, name)
	}
}

// reflect records uniform block indices and sampler2D locations. Each
// block is bound to the binding point equal to its index.
func (d *Device) reflect(prog uint32, rec *shaderProgram) {
	blocks := d.funcs.GetProgrami(prog, gl.ACTIVE_UNIFORM_BLOCKS)
	for i := uint32(0); i < uint32(blocks); i++ {
		name := d.funcs.GetActiveUniformBlockName(prog, i)
		index := d.funcs.GetUniformBlockIndex(prog, name)
		d.funcs.UniformBlockBinding(prog, index, index)
		rec.uniformBlocks[name] = index
	}

	uniforms := d.funcs.GetProgrami(prog, gl.ACTIVE_UNIFORMS)
	for i := uint32(0); i < uint32(uniforms); i++ {
		// Block members are reached through their block.
		if d.funcs.GetActiveUniformi(prog, i, gl.UNIFORM_BLOCK_INDEX) != -1 {
			continue
		}
		name, _, ty := d.funcs.GetActiveUniform(prog, i)
		if ty != gl.SAMPLER_2D {
			d.log.Warn("unsupported uniform type skipped by reflection", "program", prog, "uniform", name, "type", uint32(ty))
			rec.unsupported = append(rec.unsupported, UnsupportedUniform{Name: name, Type: uint32(ty)})
			continue
		}
		rec.samplers[name] = d.funcs.GetUniformLocation(prog, name)
	}
}

func (d *Device) deleteProgram(prog uint32, shaders []uint32) {
	for _, s := range shaders {
		d.funcs.DetachShader(prog, s)
		d.funcs.DeleteShader(s)
	}
	d.funcs.DeleteProgram(prog)
}

// ReleaseShaderProgram detaches and deletes the program's shaders, deletes
// the program and returns 0. Program 0 and unknown handles are ignored.
func (d *Device) ReleaseShaderProgram(program Handle) Handle {
	if program == 0 {
		return 0
	}
	rec, ok := d.programs[program]
	if !ok {
		return 0
	}
	d.deleteProgram(uint32(program), rec.shaders)
	delete(d.programs, program)
	for k := range d.uniformLocs {
		if k.program == program {
			delete(d.uniformLocs, k)
		}
	}
	return 0
}

// ShaderReflection returns the reflected tables of a program.
func (d *Device) ShaderReflection(program Handle) (ShaderReflection, bool) {
	rec, ok := d.programs[program]
	if !ok {
		return ShaderReflection{}, false
	}
	return ShaderReflection{
		UniformBlocks: maps.Clone(rec.uniformBlocks),
		Samplers:      maps.Clone(rec.samplers),
		Unsupported:   slices.Clone(rec.unsupported),
	}, true
}
