// SPDX-License-Identifier: Apache-2.0

//go:build unix

package arena

import (
	"golang.org/x/sys/unix"
)

type osMapper struct{}

// OSMapper returns a Mapper that reserves anonymous private memory from the
// operating system. The pages are zeroed by the kernel.
func OSMapper() Mapper {
	return osMapper{}
}

func (osMapper) Map(size int) ([]byte, error) {
	return unix.Mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
}

func (osMapper) Unmap(mem []byte) error {
	return unix.Munmap(mem)
}
