package debugger

import (
	"github.com/wnxd/guestmem/emulator"
)

type MemoryManager interface {
	emulator.BulkMemory
	MinAddr() uint32
	MaxAddr() uint32
	PageCount() int
	MemRegions() []emulator.MemRegion
	ToPointer(addr uint32) emulator.Pointer
	MemExtract(addr uint32, val any) error
	MemStore(addr uint32, val any) error
}
