package encoding_test

import (
	"bytes"
	"io"
	"testing"

	"github.com/wnxd/guestmem/encoding"
	"github.com/wnxd/guestmem/internal/test"
)

type sliceStream struct {
	buf []byte
	off int
}

func (s *sliceStream) BlockSize() int { return 4 }
func (s *sliceStream) Offset() uint64 { return uint64(s.off) }

func (s *sliceStream) Skip(n int) error {
	s.off += n
	return nil
}

func (s *sliceStream) Read(b []byte) (int, error) {
	if s.off+len(b) > len(s.buf) {
		return 0, io.ErrUnexpectedEOF
	}
	n := copy(b, s.buf[s.off:])
	s.off += n
	return n, nil
}

func (s *sliceStream) Write(b []byte) (int, error) {
	if end := s.off + len(b); end > len(s.buf) {
		s.buf = append(s.buf, make([]byte, end-len(s.buf))...)
	}
	n := copy(s.buf[s.off:], b)
	s.off += n
	return n, nil
}

type frame struct {
	PC    uint32
	Valid bool
	Depth int
	Regs  [2]int16
	Ratio float32
	Cycle uint64
}

func TestEncodeLayout(t *testing.T) {
	f := frame{PC: 0x80000000, Valid: true, Depth: -2, Regs: [2]int16{-1, 0x1234}, Ratio: 1, Cycle: 0x0102030405060708}
	s := new(sliceStream)
	test.ExpectSuccess(t, encoding.Encode(s, f))

	want := []byte{
		0x00, 0x00, 0x00, 0x80, // PC
		0x01, 0x00, 0x00, 0x00, // Valid + padding
		0xFE, 0xFF, 0xFF, 0xFF, // Depth as 32-bit int
		0xFF, 0xFF, 0x34, 0x12, // Regs
		0x00, 0x00, 0x80, 0x3F, // Ratio
		0x00, 0x00, 0x00, 0x00, // padding
		0x08, 0x07, 0x06, 0x05, 0x04, 0x03, 0x02, 0x01, // Cycle
	}
	test.ExpectSuccess(t, bytes.Equal(s.buf, want))

	size, err := encoding.Size(4, f)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, size, len(want))
}

func TestDecode(t *testing.T) {
	in := frame{PC: 0x1000, Depth: -7, Regs: [2]int16{3, -4}, Ratio: 0.5, Cycle: 99}
	s := new(sliceStream)
	test.ExpectSuccess(t, encoding.Encode(s, &in))

	var out frame
	s.off = 0
	test.ExpectSuccess(t, encoding.Decode(s, &out))
	test.ExpectEquality(t, out, in)
}

func TestDecodeErrors(t *testing.T) {
	s := new(sliceStream)
	var v uint32
	test.ExpectError(t, encoding.Decode(s, v), encoding.ErrNotPointer)
	test.ExpectError(t, encoding.Decode(s, nil), encoding.ErrNilValue)
	test.ExpectError(t, encoding.Decode(s, (*uint32)(nil)), encoding.ErrNilValue)

	var str struct{ Name string }
	test.ExpectError(t, encoding.Decode(s, &str), encoding.ErrUnsupportedType)
	test.ExpectFailure(t, encoding.Decode(s, &v))
}
