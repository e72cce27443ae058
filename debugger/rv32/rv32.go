package rv32

import (
	"github.com/wnxd/guestmem/debugger"
	"github.com/wnxd/guestmem/emulator"
	internal "github.com/wnxd/guestmem/internal/debugger/rv32"
)

const (
	GUEST_MIN_MEM = internal.GUEST_MIN_MEM
	GUEST_MAX_MEM = internal.GUEST_MAX_MEM
)

var _ = debugger.Register(emulator.ARCH_RV32, internal.NewRv32Debugger)

func New(opts ...debugger.Option) (debugger.Debugger, error) {
	return internal.NewRv32Debugger(opts...)
}
