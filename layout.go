// SPDX-License-Identifier: Apache-2.0

package arena

import (
	"encoding/binary"
	"math"
)

// HeaderSize is the footprint of both a free block header and an allocation
// header. A free block header holds its capacity and the offset of the next
// free block; an allocation header holds the payload size and a magic word.
// The two overlay each other so an allocation can become a free block in place.
const HeaderSize = 8

const (
	// noBlock terminates the free list.
	noBlock uint32 = math.MaxUint32

	// MaxHeapSize is the largest arena addressable with 32-bit offsets.
	MaxHeapSize = math.MaxUint32

	sizeField  = 0 // capacity of a free block, payload size of an allocation
	linkField  = 4 // next offset of a free block, magic of an allocation
	fieldWidth = 4
)

func (h *Heap) word(off, field uint32) uint32 {
	at := off + field
	return binary.LittleEndian.Uint32(h.mem[at : at+fieldWidth])
}

func (h *Heap) putWord(off, field, v uint32) {
	at := off + field
	binary.LittleEndian.PutUint32(h.mem[at:at+fieldWidth], v)
}

func (h *Heap) capacity(block uint32) uint32 { return h.word(block, sizeField) }

func (h *Heap) setCapacity(block, c uint32) { h.putWord(block, sizeField, c) }

func (h *Heap) next(block uint32) uint32 { return h.word(block, linkField) }

func (h *Heap) setNext(block, next uint32) { h.putWord(block, linkField, next) }

func (h *Heap) payloadSize(hdr uint32) uint32 { return h.word(hdr, sizeField) }

func (h *Heap) setPayloadSize(hdr, size uint32) { h.putWord(hdr, sizeField, size) }

// headerOf returns the offset of the allocation header preceding p.
func headerOf(p Ptr) uint32 {
	return uint32(p) - HeaderSize
}
