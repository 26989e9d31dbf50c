package bind_group_provider

// BufferWrite is one queued upload into the buffer behind a provider binding.
// The renderer batches a frame's uniform updates and submits them together.
type BufferWrite struct {
	Provider BindGroupProvider
	Binding  int
	Offset   uint64
	Data     []byte
}

// SlotWrite targets dynamic-offset slot n of a binding. The offset is n times
// the provider's dynamic stride, so a provider without one always writes at 0.
//
// Parameters:
//   - p: provider created with WithDynamicStride
//   - binding: binding index of the uniform buffer
//   - slot: zero-based slot index
//   - data: bytes to upload, at most one stride long
//
// Returns:
//   - BufferWrite: the write, ready for WriteBuffers
func SlotWrite(p BindGroupProvider, binding, slot int, data []byte) BufferWrite {
	return BufferWrite{
		Provider: p,
		Binding:  binding,
		Offset:   uint64(slot) * p.DynamicStride(),
		Data:     data,
	}
}
