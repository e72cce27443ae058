package debugger

import (
	"github.com/wnxd/guestmem/emulator"
	"github.com/wnxd/guestmem/encoding"
)

type pointerStream struct {
	ptr  emulator.Pointer
	size int
}

func PointerStream(ptr emulator.Pointer, size int) encoding.Stream {
	return &pointerStream{ptr, size}
}

func (ps *pointerStream) BlockSize() int {
	return ps.size
}

func (ps *pointerStream) Offset() uint64 {
	return uint64(ps.ptr.Address())
}

func (ps *pointerStream) Skip(n int) error {
	ps.ptr = ps.ptr.Add(uint32(n))
	return nil
}

func (ps *pointerStream) Read(b []byte) (int, error) {
	n, err := ps.ptr.ReadAt(b, 0)
	if err == nil {
		ps.Skip(n)
	}
	return n, err
}

func (ps *pointerStream) Write(b []byte) (int, error) {
	n, err := ps.ptr.WriteAt(b, 0)
	if err == nil {
		ps.Skip(n)
	}
	return n, err
}
