package render

import "github.com/go-theft-auto/render/internal/gl"

const floatSize = 4

// maxSlotComponents is the most scalars one vertex attribute slot holds.
const maxSlotComponents = 4

type vertexArray struct {
	buffers []uint32
	// capacities[i] is the allocated byte size of buffers[i].
	capacities   []int
	usage        BufferUsage
	elementCount uint32
	// Buffers from instanceStart up to the index buffer hold per-instance
	// data. The index buffer is always last.
	instanceStart int
}

// attributeSlot is one hardware attribute of a component: size floats at
// offset bytes into each element.
type attributeSlot struct {
	size   int32
	offset int
}

// attributeSlots splits an element of elementSize floats into consecutive
// slots of at most four floats.
func attributeSlots(elementSize uint32) []attributeSlot {
	slots := make([]attributeSlot, 0, (elementSize+maxSlotComponents-1)/maxSlotComponents)
	for off := uint32(0); off < elementSize; off += maxSlotComponents {
		slots = append(slots, attributeSlot{
			size:   int32(min(maxSlotComponents, elementSize-off)),
			offset: int(off) * floatSize,
		})
	}
	return slots
}

// CreateVertexArray creates a vertex array with one buffer per component
// plus an index buffer.
//
// The first vertexComponents entries of elementSizes describe per-vertex
// components and are filled from vertexData, which may be nil. The next
// instanceComponents entries describe per-instance components: they are
// allocated for a single instance, always use UsageDynamic, and advance once
// per instance. Components wider than four floats occupy several
// consecutive attribute locations.
func (d *Device) CreateVertexArray(vertexData [][]float32, elementSizes []uint32, vertexComponents, instanceComponents int, vertexCount uint32, indices []uint32, usage BufferUsage) Handle {
	numBuffers := vertexComponents + instanceComponents + 1
	if vertexComponents < 0 || instanceComponents < 0 ||
		len(elementSizes) < numBuffers-1 || (vertexData != nil && len(vertexData) < vertexComponents) {
		d.log.Error("vertex array description is missing components",
			"elementSizes", len(elementSizes), "vertexData", len(vertexData),
			"vertexComponents", vertexComponents, "instanceComponents", instanceComponents)
		return InvalidHandle
	}

	va := Handle(d.funcs.CreateVertexArray())
	d.SetVertexArray(va)

	buffers := d.funcs.CreateBuffers(numBuffers)
	capacities := make([]int, numBuffers)

	attrib := uint32(0)
	for i := 0; i < numBuffers-1; i++ {
		instanced := i >= vertexComponents
		bufUsage := usage
		if instanced {
			bufUsage = UsageDynamic
		}

		elementSize := elementSizes[i]
		stride := int(elementSize) * floatSize
		size := stride
		var src []byte
		if !instanced {
			size = stride * int(vertexCount)
			if vertexData != nil {
				src = Bytes(vertexData[i])
				if len(src) < size {
					d.log.Warn("vertex component shorter than its buffer, leaving it uninitialized",
						"component", i, "have", len(src), "want", size)
					src = nil
				}
			}
		}

		d.funcs.BindBuffer(gl.ARRAY_BUFFER, buffers[i])
		d.funcs.BufferData(gl.ARRAY_BUFFER, size, src, bufUsage.native())
		capacities[i] = size

		for _, slot := range attributeSlots(elementSize) {
			d.funcs.EnableVertexAttribArray(attrib)
			d.funcs.VertexAttribPointer(attrib, slot.size, gl.FLOAT, false, int32(stride), slot.offset)
			if instanced {
				d.funcs.VertexAttribDivisor(attrib, 1)
			}
			attrib++
		}
	}

	indexBytes := Bytes(indices)
	d.funcs.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, buffers[numBuffers-1])
	d.funcs.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indexBytes), indexBytes, usage.native())
	capacities[numBuffers-1] = len(indexBytes)

	d.vertexArrays[va] = &vertexArray{
		buffers:       buffers,
		capacities:    capacities,
		usage:         usage,
		elementCount:  uint32(len(indices)),
		instanceStart: vertexComponents,
	}
	d.log.Debug("vertex array created", "handle", va, "buffers", numBuffers, "attributes", attrib)
	return va
}

// UpdateVertexArrayBuffer writes data into buffer bufferIndex of va. The
// buffer is overwritten in place when data fits its capacity, and
// reallocated at exactly len(data) bytes otherwise. Instance buffers are
// always written with UsageDynamic. Handle 0 and unknown handles are
// ignored.
func (d *Device) UpdateVertexArrayBuffer(va Handle, bufferIndex int, data []byte) {
	if va == 0 {
		return
	}
	rec, ok := d.vertexArrays[va]
	if !ok {
		return
	}
	if bufferIndex < 0 || bufferIndex >= len(rec.buffers) {
		d.log.Error("vertex array buffer index out of range", "handle", va, "index", bufferIndex, "buffers", len(rec.buffers))
		return
	}

	usage := rec.usage
	if bufferIndex >= rec.instanceStart {
		usage = UsageDynamic
	}

	d.SetVertexArray(va)
	d.funcs.BindBuffer(gl.ARRAY_BUFFER, rec.buffers[bufferIndex])
	if len(data) <= rec.capacities[bufferIndex] {
		d.funcs.BufferSubData(gl.ARRAY_BUFFER, 0, data)
		return
	}
	d.funcs.BufferData(gl.ARRAY_BUFFER, len(data), data, usage.native())
	rec.capacities[bufferIndex] = len(data)
}

// ReleaseVertexArray deletes va and all of its buffers and returns 0.
// Handle 0 and unknown handles are ignored.
func (d *Device) ReleaseVertexArray(va Handle) Handle {
	if va == 0 {
		return 0
	}
	rec, ok := d.vertexArrays[va]
	if !ok {
		return 0
	}
	d.funcs.DeleteVertexArray(uint32(va))
	d.funcs.DeleteBuffers(rec.buffers)
	delete(d.vertexArrays, va)

	// Deleting the bound vertex array rebinds the null one.
	if d.state.vertexArray == va {
		d.state.vertexArray = 0
	}
	return 0
}

// VertexArrayInfo describes a live vertex array.
type VertexArrayInfo struct {
	Usage        BufferUsage
	ElementCount uint32
	// Capacities holds the allocated byte size of each buffer, index
	// buffer last.
	Capacities []int
	// InstanceStart is the index of the first per-instance buffer.
	InstanceStart int
}

// VertexArrayInfo reports the bookkeeping of va.
func (d *Device) VertexArrayInfo(va Handle) (VertexArrayInfo, bool) {
	rec, ok := d.vertexArrays[va]
	if !ok {
		return VertexArrayInfo{}, false
	}
	return VertexArrayInfo{
		Usage:         rec.usage,
		ElementCount:  rec.elementCount,
		Capacities:    append([]int(nil), rec.capacities...),
		InstanceStart: rec.instanceStart,
	}, true
}
