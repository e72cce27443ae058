package rv32

import (
	"github.com/wnxd/guestmem/debugger"
	"github.com/wnxd/guestmem/emulator"
	internal "github.com/wnxd/guestmem/internal/debugger"
)

const (
	GUEST_MIN_MEM = 0x0000_0400
	GUEST_MAX_MEM = 0x0C00_0000
	POINTER_SIZE  = emulator.PointerSize
)

type Rv32Dbg struct {
	internal.Dbg
}

func NewRv32Debugger(opts ...debugger.Option) (debugger.Debugger, error) {
	cfg, err := debugger.NewConfig(GUEST_MIN_MEM, GUEST_MAX_MEM, opts...)
	if err != nil {
		return nil, err
	}
	dbg := new(Rv32Dbg)
	err = dbg.Init(dbg, cfg)
	if err != nil {
		return nil, err
	}
	return dbg, nil
}

func (dbg *Rv32Dbg) Arch() emulator.Arch {
	return emulator.ARCH_RV32
}

func (dbg *Rv32Dbg) ByteOrder() emulator.ByteOrder {
	return emulator.BO_LITTLE_ENDIAN
}

func (dbg *Rv32Dbg) PointerSize() uint64 {
	return POINTER_SIZE
}
