package debugger

import (
	"io"

	"github.com/wnxd/guestmem/emulator"
)

// Debugger is the guest memory core as seen by both of its clients: the
// executor drives it through emulator.Memory, the debugger integration
// through the watchpoint and inspection managers.
type Debugger interface {
	io.Closer
	Arch() emulator.Arch
	emulator.Memory
	MemoryManager
	WatchManager
}

func New(arch emulator.Arch, opts ...Option) (Debugger, error) {
	if ctor, ok := dbgMap[arch]; ok {
		return ctor(opts...)
	}
	return nil, emulator.ErrArchUnsupported
}
