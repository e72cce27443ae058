package debugger

import (
	"github.com/wnxd/guestmem/emulator"
)

// Half-word and word accesses always address the cell at addr &^ 3;
// alignment is the executor's responsibility. A misaligned half-word selects
// the high half only at offset 2, so offsets 1 and 3 alias the low half.

func readLane(word, addr uint32, size emulator.AccessSize) uint32 {
	switch size {
	case emulator.SIZE_BYTE:
		return (word >> laneShift(addr)) & 0xff
	case emulator.SIZE_HALF_WORD:
		if addr&3 == 2 {
			return (word >> 16) & 0xffff
		}
		return word & 0xffff
	default:
		return word
	}
}

func writeLane(word, addr uint32, size emulator.AccessSize, value uint32) uint32 {
	switch size {
	case emulator.SIZE_BYTE:
		shift := laneShift(addr)
		return word&^(0xff<<shift) | (value&0xff)<<shift
	case emulator.SIZE_HALF_WORD:
		if addr&3 == 2 {
			return word&0x0000ffff | (value&0xffff)<<16
		}
		return word&0xffff0000 | value&0xffff
	default:
		return value
	}
}

func laneShift(addr uint32) uint32 {
	return (addr & 3) * 8
}
