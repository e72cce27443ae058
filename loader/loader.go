package loader

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"

	"github.com/wnxd/guestmem/emulator"
)

var (
	ErrSegmentEmpty    = errors.New("empty segment")
	ErrSegmentOverflow = errors.New("segment overflows the address space")
)

const chunkSize = 0x1000

// Load copies each region into guest memory in order. It stops at the first
// region that fails.
func Load(mem emulator.BulkMemory, regions ...Region) error {
	for _, r := range regions {
		if r.Length == 0 || r.ReaderAt == nil {
			return fmt.Errorf("region %08X: %w", r.Addr, ErrSegmentEmpty)
		} else if uint64(r.Addr)+r.Length > 1<<32 {
			return fmt.Errorf("region %08X+%d: %w", r.Addr, r.Length, ErrSegmentOverflow)
		}
		if err := loadRegion(mem, r); err != nil {
			return fmt.Errorf("region %08X: %w", r.Addr, err)
		}
	}
	return nil
}

func loadRegion(mem emulator.BulkMemory, r Region) error {
	buf := make([]byte, min(r.Length, chunkSize))
	for off := uint64(0); off < r.Length; {
		n := min(r.Length-off, uint64(len(buf)))
		read, err := r.ReadAt(buf[:n], int64(off))
		if read < int(n) {
			if err == nil || err == io.EOF {
				err = io.ErrUnexpectedEOF
			}
			return err
		}
		if err = mem.MemWrite(r.Addr+uint32(off), buf[:n]); err != nil {
			return err
		}
		off += n
	}
	return nil
}

// LoadFile loads the raw image name from fsys at guest address addr.
func LoadFile(mem emulator.BulkMemory, fsys fs.FS, name string, addr uint32) error {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return err
	}
	return Load(mem, Region{Addr: addr, Length: uint64(len(data)), ReaderAt: bytes.NewReader(data)})
}
