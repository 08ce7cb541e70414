// SPDX-License-Identifier: Apache-2.0

//go:build !unix

package arena

import (
	"github.com/edsrzf/mmap-go"
)

type osMapper struct{}

// OSMapper returns a Mapper that reserves an anonymous read-write mapping
// from the operating system.
func OSMapper() Mapper {
	return osMapper{}
}

func (osMapper) Map(size int) ([]byte, error) {
	m, err := mmap.MapRegion(nil, size, mmap.RDWR, mmap.ANON, 0)
	if err != nil {
		return nil, err
	}
	return m, nil
}

func (osMapper) Unmap(mem []byte) error {
	m := mmap.MMap(mem)
	return m.Unmap()
}
