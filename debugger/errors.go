package debugger

import (
	"errors"
	"fmt"

	"github.com/wnxd/guestmem/emulator"
)

var (
	ErrArgumentInvalid    = errors.New("argument invalid")
	ErrWatchpointNotFound = errors.New("watchpoint not found")
)

// InvalidMemoryException is returned for an access outside the addressable
// range. It unwraps to emulator.ErrOutOfRange.
type InvalidMemoryException struct {
	write bool
	addr  uint32
	size  uint64
}

func NewInvalidMemoryException(write bool, addr uint32, size uint64) error {
	return &InvalidMemoryException{
		write: write,
		addr:  addr,
		size:  size,
	}
}

func (e *InvalidMemoryException) Error() string {
	op := "read"
	if e.write {
		op = "write"
	}
	return fmt.Sprintf("[InvalidMemory] %s, addr: %08X, size: %d", op, e.addr, e.size)
}

func (e *InvalidMemoryException) Unwrap() error {
	return emulator.ErrOutOfRange
}

func (e *InvalidMemoryException) Write() bool {
	return e.write
}

func (e *InvalidMemoryException) Address() uint32 {
	return e.addr
}

func (e *InvalidMemoryException) Size() uint64 {
	return e.size
}
