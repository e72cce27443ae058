package emulator

import "fmt"

type ByteOrder int

const (
	BO_LITTLE_ENDIAN ByteOrder = iota
	BO_BIG_ENDIAN
)

// AccessSize is the width of a single load or store issued by the executor.
type AccessSize int

const (
	SIZE_BYTE      AccessSize = 1
	SIZE_HALF_WORD AccessSize = 2
	SIZE_WORD      AccessSize = 4
)

func (s AccessSize) Len() uint32 {
	return uint32(s)
}

func (s AccessSize) Valid() bool {
	switch s {
	case SIZE_BYTE, SIZE_HALF_WORD, SIZE_WORD:
		return true
	}
	return false
}

func (s AccessSize) String() string {
	switch s {
	case SIZE_BYTE:
		return "byte"
	case SIZE_HALF_WORD:
		return "halfword"
	case SIZE_WORD:
		return "word"
	default:
		return fmt.Sprintf("size(%d)", int(s))
	}
}

type MemRegion struct {
	Addr, Size uint64
}

func (r MemRegion) End() uint64 {
	return r.Addr + r.Size
}
