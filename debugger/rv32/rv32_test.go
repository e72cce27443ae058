package rv32_test

import (
	"testing"

	"github.com/wnxd/guestmem/debugger"
	"github.com/wnxd/guestmem/debugger/rv32"
	"github.com/wnxd/guestmem/emulator"
	"github.com/wnxd/guestmem/internal/test"
)

func TestRegistered(t *testing.T) {
	dbg, err := debugger.New(emulator.ARCH_RV32)
	test.DemandEquality(t, err, nil)
	defer dbg.Close()

	test.ExpectEquality(t, dbg.Arch(), emulator.ARCH_RV32)
	test.ExpectEquality(t, dbg.ByteOrder(), emulator.BO_LITTLE_ENDIAN)
	test.ExpectEquality(t, dbg.PageSize(), uint64(1024))
	test.ExpectEquality(t, dbg.MinAddr(), uint32(rv32.GUEST_MIN_MEM))
	test.ExpectEquality(t, dbg.MaxAddr(), uint32(rv32.GUEST_MAX_MEM))

	test.ExpectFailure(t, debugger.Register(emulator.ARCH_RV32, rv32.New))
}

func TestUnknownArch(t *testing.T) {
	_, err := debugger.New(emulator.ARCH_UNKNOWN)
	test.ExpectError(t, err, emulator.ErrArchUnsupported)
}

func TestAddressRangeOption(t *testing.T) {
	dbg, err := rv32.New(debugger.WithAddressRange(0x1000, 0x1FFF))
	test.DemandEquality(t, err, nil)
	defer dbg.Close()

	_, err = dbg.ReadMem(0x0FFF, emulator.SIZE_BYTE)
	test.ExpectError(t, err, emulator.ErrOutOfRange)
	_, err = dbg.ReadMem(0x1FFF, emulator.SIZE_BYTE)
	test.ExpectSuccess(t, err)
	_, err = dbg.ReadMem(0x2000, emulator.SIZE_BYTE)
	test.ExpectError(t, err, emulator.ErrOutOfRange)
}
