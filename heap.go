// SPDX-License-Identifier: Apache-2.0

package arena

import (
	"github.com/pkg/errors"
)

var (
	// ErrHeapTooSmall is returned by New when the arena cannot hold a single
	// free block header.
	ErrHeapTooSmall = errors.New("arena: heap size smaller than a block header")

	// ErrHeapTooLarge is returned by New when the arena exceeds MaxHeapSize.
	ErrHeapTooLarge = errors.New("arena: heap size exceeds 32-bit offsets")
)

// Heap is a first-fit allocator over one arena reserved at construction.
// It is not safe for concurrent use.
type Heap struct {
	mem    []byte
	head   uint32
	mapper Mapper

	unlinkResidue bool

	live uint64 // bytes handed out, headers included
	peak uint64
}

// New reserves totalSize bytes from the configured Mapper and lays out a
// single free block spanning the whole arena.
// By default the memory comes from the operating system, see OSMapper.
func New(totalSize int, opts ...Option) (*Heap, error) {
	if totalSize < HeaderSize {
		return nil, ErrHeapTooSmall
	}
	if uint64(totalSize) > MaxHeapSize {
		return nil, ErrHeapTooLarge
	}

	h := &Heap{
		mapper: OSMapper(),
	}
	for _, opt := range opts {
		opt(h)
	}

	mem, err := h.mapper.Map(totalSize)
	if err != nil {
		return nil, errors.Wrapf(err, "map %d bytes", totalSize)
	}
	if len(mem) != totalSize {
		_ = h.mapper.Unmap(mem)
		return nil, errors.Errorf("mapper returned %d bytes, want %d", len(mem), totalSize)
	}
	h.mem = mem

	h.head = 0
	h.setCapacity(h.head, uint32(totalSize-HeaderSize))
	h.setNext(h.head, noBlock)
	return h, nil
}

// Alloc satisfies the Allocator interface.
//
// The first free block whose capacity covers size plus a header is split
// from its high end: the allocation takes the last size+HeaderSize bytes of
// the block and the block keeps its offset and list position.
func (h *Heap) Alloc(size int) Ptr {
	if size <= 0 || uint64(size) > MaxHeapSize-HeaderSize {
		return Nil
	}
	need := uint32(size) + HeaderSize

	prev, cur := noBlock, h.head
	for cur != noBlock && h.capacity(cur) < need {
		prev, cur = cur, h.next(cur)
	}
	if cur == noBlock {
		return Nil
	}

	c := h.capacity(cur)
	h.setCapacity(cur, c-need)
	if c == need && h.unlinkResidue {
		h.unlink(prev, cur)
	}

	hdr := cur + c - uint32(size)
	h.setPayloadSize(hdr, uint32(size))

	h.live += uint64(need)
	if h.live > h.peak {
		h.peak = h.live
	}
	return Ptr(hdr + HeaderSize)
}

func (h *Heap) unlink(prev, block uint32) {
	if prev == noBlock {
		h.head = h.next(block)
		return
	}
	h.setNext(prev, h.next(block))
}

// Free satisfies the Allocator interface.
//
// The allocation header is reused as a free block header whose capacity is the
// recorded payload size. The block becomes the new head; neighbours are never
// merged.
func (h *Heap) Free(p Ptr) {
	if p == Nil {
		return
	}
	hdr := headerOf(p)
	size := h.payloadSize(hdr)

	h.setCapacity(hdr, size)
	h.setNext(hdr, h.head)
	h.head = hdr

	h.live -= uint64(size) + HeaderSize
}

// Release returns the arena to its Mapper. The heap must not be used afterwards.
func (h *Heap) Release() error {
	if h.mem == nil {
		return nil
	}
	mem := h.mem
	h.mem = nil
	h.head = noBlock
	h.live = 0
	return h.mapper.Unmap(mem)
}

// Len returns the number of bytes currently handed out, headers included.
func (h *Heap) Len() int {
	return int(h.live)
}

// Cap returns the size of the arena in bytes.
func (h *Heap) Cap() int {
	return len(h.mem)
}

// Peak returns the highest value Len has reached.
// Unlike Len it does not drop when allocations are freed.
func (h *Heap) Peak() int {
	return int(h.peak)
}
