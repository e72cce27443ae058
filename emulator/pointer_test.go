package emulator_test

import (
	"testing"

	"github.com/wnxd/guestmem/emulator"
	"github.com/wnxd/guestmem/internal/test"
)

type flatMemory []byte

func (m flatMemory) MemRead(addr uint32, size uint64) ([]byte, error) {
	if uint64(addr)+size > uint64(len(m)) {
		return nil, emulator.ErrOutOfRange
	}
	return append([]byte(nil), m[addr:uint64(addr)+size]...), nil
}

func (m flatMemory) MemWrite(addr uint32, data []byte) error {
	if uint64(addr)+uint64(len(data)) > uint64(len(m)) {
		return emulator.ErrOutOfRange
	}
	copy(m[addr:], data)
	return nil
}

func TestPointer(t *testing.T) {
	mem := make(flatMemory, 0x100)
	p := emulator.ToPointer(mem, 0x10)
	test.ExpectFailure(t, p.IsNil())
	test.ExpectEquality(t, p.Add(4).Sub(2).Address(), uint32(0x12))

	n, err := p.WriteAt([]byte("a somewhat long string\x00"), 0)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, n, 23)

	s, err := p.MemReadString()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s, "a somewhat long string")

	b := make([]byte, 4)
	_, err = p.ReadAt(b, 2)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, string(b), "some")

	test.ExpectSuccess(t, emulator.ToPointer(mem, 0x80).MemWrite([]byte{0x10, 0, 0, 0}))
	q, err := emulator.ToPointer(mem, 0x80).MemReadPointer()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, q.Address(), p.Address())

	_, err = emulator.ToPointer(mem, 0xFE).MemReadPointer()
	test.ExpectError(t, err, emulator.ErrOutOfRange)
}

func TestAccessSize(t *testing.T) {
	test.ExpectSuccess(t, emulator.SIZE_HALF_WORD.Valid())
	test.ExpectFailure(t, emulator.AccessSize(3).Valid())
	test.ExpectEquality(t, emulator.SIZE_WORD.Len(), uint32(4))
	test.ExpectEquality(t, emulator.SIZE_BYTE.String(), "byte")
}
