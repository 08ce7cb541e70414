// SPDX-License-Identifier: Apache-2.0

package arena

// Size returns the payload size recorded for the live allocation at p,
// or 0 for Nil.
func (h *Heap) Size(p Ptr) int {
	if p == Nil {
		return 0
	}
	return int(h.payloadSize(headerOf(p)))
}

// Bytes returns the payload of the live allocation at p as a slice backed by
// the arena. Its capacity is clipped to the payload so appends never spill
// into a neighbouring block. The slice is valid until p is freed.
// Bytes(Nil) returns nil.
func (h *Heap) Bytes(p Ptr) []byte {
	if p == Nil {
		return nil
	}
	start := int(p)
	end := start + h.Size(p)
	return h.mem[start:end:end]
}
