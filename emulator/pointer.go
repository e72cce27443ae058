package emulator

import (
	"encoding/binary"
	"errors"
	"slices"
)

const PointerSize = 4

type Pointer struct {
	mem  BulkMemory
	addr uint32
}

func ToPointer(mem BulkMemory, addr uint32) Pointer {
	return Pointer{mem, addr}
}

func (p Pointer) IsNil() bool {
	return p.addr == 0
}

func (p Pointer) Address() uint32 {
	return p.addr
}

func (p Pointer) Add(offset uint32) Pointer {
	return Pointer{p.mem, p.addr + offset}
}

func (p Pointer) Sub(offset uint32) Pointer {
	return Pointer{p.mem, p.addr - offset}
}

func (p Pointer) MemRead(size uint64) ([]byte, error) {
	return p.mem.MemRead(p.addr, size)
}

func (p Pointer) MemWrite(data []byte) error {
	return p.mem.MemWrite(p.addr, data)
}

// MemReadString reads a NUL-terminated string. Near the end of the
// addressable range it drops to byte reads so that only a byte the string
// actually needs can fault.
func (p Pointer) MemReadString() (string, error) {
	var data []byte
	size := uint64(0x10)
	for begin := p.addr; ; {
		buf, err := p.mem.MemRead(begin, size)
		if err != nil {
			if size > 1 && errors.Is(err, ErrOutOfRange) {
				size = 1
				continue
			}
			return "", err
		}
		i := slices.Index(buf, 0)
		if i != -1 {
			data = append(data, buf[:i]...)
			break
		}
		data = append(data, buf...)
		begin += uint32(size)
	}
	return string(data), nil
}

// MemReadPointer dereferences a little-endian guest pointer stored at p.
func (p Pointer) MemReadPointer() (Pointer, error) {
	buf, err := p.mem.MemRead(p.addr, PointerSize)
	if err != nil {
		return Pointer{}, err
	}
	return Pointer{p.mem, binary.LittleEndian.Uint32(buf)}, nil
}

func (p Pointer) ReadAt(b []byte, off int64) (n int, err error) {
	data, err := p.mem.MemRead(p.addr+uint32(off), uint64(len(b)))
	if err != nil {
		return 0, err
	}
	return copy(b, data), nil
}

func (p Pointer) WriteAt(b []byte, off int64) (n int, err error) {
	err = p.mem.MemWrite(p.addr+uint32(off), b)
	if err != nil {
		return 0, err
	}
	return len(b), nil
}
