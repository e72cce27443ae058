package loader

import (
	"io"
)

// Region is a segment of a program image destined for guest address Addr.
type Region struct {
	Addr   uint32
	Length uint64
	io.ReaderAt
}
