// SPDX-License-Identifier: Apache-2.0

package arena

// Option represents a configuration option for a Heap.
type Option func(*Heap)

// WithMapper sets the Mapper the arena is reserved from.
func WithMapper(m Mapper) Option {
	return func(h *Heap) {
		h.mapper = m
	}
}

// WithResidueUnlinking removes a free block from the list once an exact-fit
// allocation leaves it with zero capacity. Without it the block stays linked
// and later scans skip over it.
func WithResidueUnlinking() Option {
	return func(h *Heap) {
		h.unlinkResidue = true
	}
}
