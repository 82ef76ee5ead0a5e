package render

// IndexedModel is flattened mesh data: one float slice per vertex
// component, the width of each component's element, the widths of the
// per-instance components and the index list.
type IndexedModel struct {
	Components           [][]float32
	ElementSizes         []uint32
	InstanceElementSizes []uint32
	Indices              []uint32
}

// VertexCount derives the vertex count from the first component.
func (m *IndexedModel) VertexCount() uint32 {
	if len(m.Components) == 0 || len(m.ElementSizes) == 0 || m.ElementSizes[0] == 0 {
		return 0
	}
	return uint32(len(m.Components[0])) / m.ElementSizes[0]
}

// CreateVertexArray uploads the model to d.
func (m *IndexedModel) CreateVertexArray(d *Device, usage BufferUsage) Handle {
	sizes := make([]uint32, 0, len(m.ElementSizes)+len(m.InstanceElementSizes))
	sizes = append(sizes, m.ElementSizes...)
	sizes = append(sizes, m.InstanceElementSizes...)
	return d.CreateVertexArray(m.Components, sizes, len(m.ElementSizes), len(m.InstanceElementSizes),
		m.VertexCount(), m.Indices, usage)
}

// VertexArray ties a vertex array handle to its device and index count.
type VertexArray struct {
	device       *Device
	handle       Handle
	elementCount uint32
}

// NewVertexArray uploads m to d.
func NewVertexArray(d *Device, m *IndexedModel, usage BufferUsage) *VertexArray {
	return &VertexArray{
		device:       d,
		handle:       m.CreateVertexArray(d, usage),
		elementCount: uint32(len(m.Indices)),
	}
}

// Handle returns the device handle, 0 after Release.
func (va *VertexArray) Handle() Handle { return va.handle }

// ElementCount returns the number of indices.
func (va *VertexArray) ElementCount() uint32 { return va.elementCount }

// UpdateBuffer writes data into one of the array's buffers.
func (va *VertexArray) UpdateBuffer(bufferIndex int, data []byte) {
	va.device.UpdateVertexArrayBuffer(va.handle, bufferIndex, data)
}

// Release frees the array on its device. It is safe to call twice.
func (va *VertexArray) Release() {
	va.handle = va.device.ReleaseVertexArray(va.handle)
}
