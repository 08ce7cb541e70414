// SPDX-License-Identifier: Apache-2.0

package arena

// Mapper reserves and releases the memory backing an arena.
// Map must return exactly size zeroed, writable bytes.
type Mapper interface {
	Map(size int) ([]byte, error)
	Unmap(mem []byte) error
}

type goMapper struct{}

// GoMapper returns a Mapper backed by the Go heap. The arena is then
// reclaimed by the garbage collector once the Heap is unreachable.
func GoMapper() Mapper {
	return goMapper{}
}

func (goMapper) Map(size int) ([]byte, error) {
	return make([]byte, size), nil
}

func (goMapper) Unmap([]byte) error {
	return nil
}
