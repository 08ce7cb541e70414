// SPDX-License-Identifier: Apache-2.0

package workload

import (
	"fmt"
	"io"

	arena "github.com/wundergraph/go-freelist-arena"
)

// PrintFreeList writes every free block of a, head first.
func PrintFreeList(w io.Writer, a arena.Allocator) error {
	if _, err := fmt.Fprintln(w, "Free List:"); err != nil {
		return err
	}
	for b := range a.FreeList() {
		next := "(nil)"
		if !b.Last() {
			next = fmt.Sprintf("0x%04x", b.Next)
		}
		if _, err := fmt.Fprintf(w, "Free chunk at 0x%04x (size: %d, next: %s)\n", b.Offset, b.Capacity, next); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w)
	return err
}
