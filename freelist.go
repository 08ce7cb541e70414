// SPDX-License-Identifier: Apache-2.0

package arena

import "iter"

// FreeBlock describes one node of the free list.
type FreeBlock struct {
	Offset   int // offset of the block header within the arena
	Capacity int // bytes available to allocations, excluding the header
	Next     int // offset of the next free block, or -1 at the tail
}

// Last reports whether b is the tail of the free list.
func (b FreeBlock) Last() bool {
	return b.Next < 0
}

// FreeList satisfies the Allocator interface.
// The list is read as the sequence is consumed, so a sequence ranged over
// after further Alloc or Free calls reflects the list at that time.
func (h *Heap) FreeList() iter.Seq[FreeBlock] {
	return func(yield func(FreeBlock) bool) {
		for cur := h.head; cur != noBlock; cur = h.next(cur) {
			b := FreeBlock{
				Offset:   int(cur),
				Capacity: int(h.capacity(cur)),
				Next:     -1,
			}
			if n := h.next(cur); n != noBlock {
				b.Next = int(n)
			}
			if !yield(b) {
				return
			}
		}
	}
}

// FreeBlocks returns the number of nodes in the free list, zero-capacity
// residue included.
func (h *Heap) FreeBlocks() int {
	n := 0
	for cur := h.head; cur != noBlock; cur = h.next(cur) {
		n++
	}
	return n
}

// FreeBytes returns the summed capacity of all free blocks.
func (h *Heap) FreeBytes() int {
	total := 0
	for cur := h.head; cur != noBlock; cur = h.next(cur) {
		total += int(h.capacity(cur))
	}
	return total
}
