// SPDX-License-Identifier: Apache-2.0

// Package arena implements a first-fit free-list allocator over a single
// fixed-size memory region. The free list lives inside the region itself:
// every free block and every allocation starts with an 8-byte header.
package arena

import "iter"

// Ptr is the offset of an allocation's payload within the arena.
// The zero value is Nil; no payload ever starts at offset 0.
type Ptr int

// Nil is returned by Alloc when a request cannot be satisfied.
const Nil Ptr = 0

// Allocator is an interface that describes a free-list arena allocator.
type Allocator interface {
	// Alloc reserves size bytes and returns the payload offset, or Nil if
	// size is not positive or no free block is large enough.
	Alloc(size int) Ptr

	// Free returns the block at p to the free list. Free(Nil) is a no-op.
	// Freeing a pointer twice, or one never returned by Alloc, is undefined.
	Free(p Ptr)

	// FreeList yields the free blocks from head to tail.
	FreeList() iter.Seq[FreeBlock]

	// Len returns the number of bytes currently handed out, headers included.
	Len() int

	// Cap returns the size of the arena in bytes.
	Cap() int

	// Peak returns the high-water mark of Len.
	Peak() int
}
