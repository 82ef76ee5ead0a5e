package render

import (
	"strconv"

	"github.com/go-theft-auto/render/internal/gl"
)

// Version returns the context's API version as major*100 + minor*10, for
// example 330 for 3.3. It is queried once per device.
func (d *Device) Version() uint32 {
	if d.version != 0 {
		return d.version
	}
	major := d.funcs.GetInteger(gl.MAJOR_VERSION)
	minor := d.funcs.GetInteger(gl.MINOR_VERSION)
	d.version = uint32(major*100 + minor*10)
	return d.version
}

// ShaderVersion returns the shading language version matching Version, as
// used in a #version directive. It returns "" for contexts without shader
// support.
func (d *Device) ShaderVersion() string {
	if d.shaderVersion != "" {
		return d.shaderVersion
	}
	v := d.Version()
	s := shaderVersionFor(v)
	if s == "" {
		d.log.Error("context version does not support shaders", "major", v/100, "minor", (v/10)%10)
		return ""
	}
	d.shaderVersion = s
	return s
}

func shaderVersionFor(v uint32) string {
	switch {
	case v >= 330:
		return strconv.FormatUint(uint64(v), 10)
	case v >= 320:
		return "150"
	case v >= 310:
		return "140"
	case v >= 300:
		return "130"
	case v >= 210:
		return "120"
	case v >= 200:
		return "110"
	default:
		return ""
	}
}
