// SPDX-License-Identifier: Apache-2.0

// Package workload drives an arena.Allocator through fixed allocation
// patterns and prints the free list as it changes.
package workload

import (
	"fmt"
	"io"
	"math/rand/v2"

	arena "github.com/wundergraph/go-freelist-arena"
)

// ChunkSize is the request size used by the simple and full workloads.
const ChunkSize = 24

const (
	randomSlots = 10
	randomSteps = randomSlots * 10
)

// Runner executes workloads. The first write error stops all further output
// and is reported by Err.
type Runner struct {
	a   arena.Allocator
	out io.Writer
	err error
}

// NewRunner returns a Runner that allocates from a and prints to out.
func NewRunner(a arena.Allocator, out io.Writer) *Runner {
	return &Runner{a: a, out: out}
}

// Err returns the first error encountered while writing output.
func (r *Runner) Err() error {
	return r.err
}

// PrintFreeList prints the current free list.
func (r *Runner) PrintFreeList() {
	if r.err != nil {
		return
	}
	r.err = PrintFreeList(r.out, r.a)
}

func (r *Runner) alloc(size int) arena.Ptr {
	p := r.a.Alloc(size)
	if p == arena.Nil && r.err == nil {
		_, r.err = fmt.Fprintf(r.out, "\nALERT: malloc(%d) returned NULL!\n\n", size)
	}
	return p
}

// Simple allocates and frees a handful of blocks in a fixed order, including
// a request that is expected to fail on a 128-byte heap and a Free(Nil).
func (r *Runner) Simple() error {
	var ptrs [4]arena.Ptr

	ptrs[0] = r.alloc(ChunkSize)
	r.PrintFreeList()

	r.a.Free(ptrs[0])
	r.PrintFreeList()

	r.a.Free(arena.Nil)
	r.PrintFreeList()

	ptrs[1] = r.alloc(64)
	r.PrintFreeList()

	ptrs[2] = r.alloc(72)
	r.PrintFreeList()

	ptrs[3] = r.alloc(8)
	r.PrintFreeList()

	for i := 3; i >= 1; i-- {
		r.a.Free(ptrs[i])
		r.PrintFreeList()
	}
	return r.err
}

// Saturation returns how many ChunkSize allocations fit in a fresh heap of
// heapSize bytes.
func Saturation(heapSize int) int {
	if heapSize < arena.HeaderSize {
		return 0
	}
	return (heapSize - arena.HeaderSize) / (arena.HeaderSize + ChunkSize)
}

// Full fills a heap of heapSize bytes with ChunkSize blocks, requests one
// more than fits, then frees the blocks that were granted.
func (r *Runner) Full(heapSize int) error {
	n := Saturation(heapSize)
	ptrs := make([]arena.Ptr, n+1)

	for i := range ptrs {
		ptrs[i] = r.alloc(ChunkSize)
		r.PrintFreeList()
	}
	for _, p := range ptrs[:n] {
		r.a.Free(p)
		r.PrintFreeList()
	}
	return r.err
}

// Random interleaves allocations and frees over a fixed set of slots chosen
// by a generator seeded with seed. A slot overwritten by a new allocation
// leaks its previous block. The free list is printed after roughly one step
// in eight and once more after all live slots are freed.
func (r *Runner) Random(seed int64) error {
	var ptrs [randomSlots]arena.Ptr
	rnd := rand.New(rand.NewPCG(uint64(seed), 0))

	for i := 0; i < randomSteps; i++ {
		slot := rnd.IntN(randomSlots)
		if rnd.IntN(4) == 0 {
			size := (rnd.IntN(100) + 1) * 8
			ptrs[slot] = r.alloc(size)
		} else {
			r.a.Free(ptrs[slot])
			ptrs[slot] = arena.Nil
		}
		if rnd.IntN(8) == 0 {
			r.PrintFreeList()
		}
	}

	for i, p := range ptrs {
		if p != arena.Nil {
			r.a.Free(p)
			ptrs[i] = arena.Nil
		}
	}
	r.PrintFreeList()
	return r.err
}
