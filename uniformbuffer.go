package render

import (
	"errors"

	"github.com/go-theft-auto/render/internal/gl"
)

var (
	// ErrMapBuffer is returned when a buffer could not be mapped for writing.
	ErrMapBuffer = errors.New("render: buffer could not be mapped")
	// ErrUnmapBuffer is returned when a mapped buffer's contents were lost
	// before it was unmapped, for example on a display mode change.
	ErrUnmapBuffer = errors.New("render: buffer contents lost while mapped")
)

// CreateUniformBuffer allocates a uniform buffer of size bytes, filled from
// data when data is not nil.
func (d *Device) CreateUniformBuffer(data []byte, size int, usage BufferUsage) Handle {
	if data != nil && len(data) < size {
		d.log.Warn("uniform buffer data shorter than its size, leaving it uninitialized", "have", len(data), "want", size)
		data = nil
	}
	ubo := d.funcs.CreateBuffers(1)[0]
	d.funcs.BindBuffer(gl.UNIFORM_BUFFER, ubo)
	d.funcs.BufferData(gl.UNIFORM_BUFFER, size, data, usage.native())
	return Handle(ubo)
}

// UpdateUniformBuffer copies data to the start of buffer through a
// write-only mapping. Buffer 0 is ignored.
func (d *Device) UpdateUniformBuffer(buffer Handle, data []byte) error {
	if buffer == 0 || len(data) == 0 {
		return nil
	}
	d.funcs.BindBuffer(gl.UNIFORM_BUFFER, uint32(buffer))
	return d.withMappedBuffer(gl.UNIFORM_BUFFER, len(data), func(dst []byte) {
		copy(dst, data)
	})
}

// withMappedBuffer maps the first n bytes of the buffer bound to target,
// passes them to fn and unmaps on every path out. fn must not retain dst.
func (d *Device) withMappedBuffer(target gl.Enum, n int, fn func(dst []byte)) (err error) {
	dst := d.funcs.MapBufferRange(target, 0, n, gl.MAP_WRITE_BIT|gl.MAP_INVALIDATE_RANGE_BIT)
	if dst == nil {
		return ErrMapBuffer
	}
	defer func() {
		if !d.funcs.UnmapBuffer(target) && err == nil {
			err = ErrUnmapBuffer
		}
	}()
	fn(dst)
	return nil
}

// ReleaseUniformBuffer deletes a uniform buffer and returns 0. Buffer 0 is
// ignored. Uniform buffers are untracked, so a repeated release reaches the
// driver, which ignores deleted names.
func (d *Device) ReleaseUniformBuffer(buffer Handle) Handle {
	if buffer == 0 {
		return 0
	}
	d.funcs.DeleteBuffers([]uint32{uint32(buffer)})
	return 0
}
