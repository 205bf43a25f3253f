// Package romload reads a ROM image from disk for the machine to boot
// from. It is pure host glue: the file system boundary where a malformed
// image is reported as an error, a boundary the cpu/memory packages never
// cross.
package romload

import (
	"fmt"
	"os"

	"apple2go/memory"
)

// Load reads path and constructs a memory.Memory from its contents. It
// fails with memory.ErrBadROMSize if the file is not exactly 12288 bytes.
func Load(path string) (*memory.Memory, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("romload: reading %s: %w", path, err)
	}
	m, err := memory.New(data)
	if err != nil {
		return nil, fmt.Errorf("romload: %s: %w", path, err)
	}
	return m, nil
}
