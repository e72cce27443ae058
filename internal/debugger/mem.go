package debugger

import (
	"maps"
	"slices"

	"github.com/wnxd/guestmem/debugger"
	"github.com/wnxd/guestmem/emulator"
	"github.com/wnxd/guestmem/encoding"
)

const (
	PAGE_SHIFT = 10
	PAGE_SIZE  = 1 << PAGE_SHIFT
	CELL_SIZE  = 4
	PAGE_CELLS = PAGE_SIZE / CELL_SIZE
)

type page [PAGE_CELLS]uint32

// memoryManager is a sparse page table. A page exists once any address in it
// has been accessed and is never released before dtor.
type memoryManager struct {
	minAddr uint32
	maxAddr uint32
	pages   map[uint32]*page
}

func (mm *memoryManager) ctor(minAddr, maxAddr uint32) {
	mm.minAddr = minAddr
	mm.maxAddr = maxAddr
	mm.pages = make(map[uint32]*page)
}

func (mm *memoryManager) dtor() {
	clear(mm.pages)
}

func (mm *memoryManager) inRange(addr uint32) bool {
	return addr >= mm.minAddr && addr <= mm.maxAddr
}

func (mm *memoryManager) check(write bool, addr uint32, size emulator.AccessSize) error {
	if !mm.inRange(addr) {
		return debugger.NewInvalidMemoryException(write, addr, uint64(size))
	} else if !size.Valid() {
		return emulator.ErrAccessSize
	}
	return nil
}

// checkSpan validates every byte of [addr, addr+size).
func (mm *memoryManager) checkSpan(write bool, addr uint32, size uint64) error {
	if !mm.inRange(addr) || size > 0 && uint64(addr)+size-1 > uint64(mm.maxAddr) {
		return debugger.NewInvalidMemoryException(write, addr, size)
	}
	return nil
}

func (mm *memoryManager) page(addr uint32) *page {
	idx := addr >> PAGE_SHIFT
	p, ok := mm.pages[idx]
	if !ok {
		p = new(page)
		mm.pages[idx] = p
	}
	return p
}

func (mm *memoryManager) cell(addr uint32) *uint32 {
	off := debugger.AlignDown(addr, CELL_SIZE) & (PAGE_SIZE - 1)
	return &mm.page(addr)[off/CELL_SIZE]
}

// pageSpan returns how many of the rest bytes starting at addr lie in addr's
// page.
func pageSpan(addr uint32, rest uint64) uint64 {
	a := uint64(addr)
	return min(debugger.Align(a+1, PAGE_SIZE)-a, rest)
}

func (mm *memoryManager) memRead(addr uint32, size uint64) ([]byte, error) {
	err := mm.checkSpan(false, addr, size)
	if err != nil {
		return nil, err
	}
	data := make([]byte, size)
	for off := uint64(0); off < size; {
		a := addr + uint32(off)
		n := pageSpan(a, size-off)
		p := mm.page(a)
		for i := range uint32(n) {
			b := a + i
			data[off+uint64(i)] = byte(readLane(p[(b&(PAGE_SIZE-1))/CELL_SIZE], b, emulator.SIZE_BYTE))
		}
		off += n
	}
	return data, nil
}

func (mm *memoryManager) memWrite(addr uint32, data []byte) error {
	size := uint64(len(data))
	err := mm.checkSpan(true, addr, size)
	if err != nil {
		return err
	}
	for off := uint64(0); off < size; {
		a := addr + uint32(off)
		n := pageSpan(a, size-off)
		p := mm.page(a)
		for i := range uint32(n) {
			b := a + i
			c := &p[(b&(PAGE_SIZE-1))/CELL_SIZE]
			*c = writeLane(*c, b, emulator.SIZE_BYTE, uint32(data[off+uint64(i)]))
		}
		off += n
	}
	return nil
}

// memRegions walks the page table in address order and merges adjacent
// pages.
func (mm *memoryManager) memRegions() []emulator.MemRegion {
	var regions []emulator.MemRegion
	for _, idx := range slices.Sorted(maps.Keys(mm.pages)) {
		addr := uint64(idx) << PAGE_SHIFT
		if n := len(regions); n > 0 && regions[n-1].End() == addr {
			regions[n-1].Size += PAGE_SIZE
			continue
		}
		regions = append(regions, emulator.MemRegion{Addr: addr, Size: PAGE_SIZE})
	}
	return regions
}

func (mm *memoryManager) memExtract(dbg Debugger, addr uint32, val any) error {
	stream := PointerStream(dbg.ToPointer(addr), int(dbg.PointerSize()))
	return encoding.Decode(stream, val)
}

func (mm *memoryManager) memStore(dbg Debugger, addr uint32, val any) error {
	stream := PointerStream(dbg.ToPointer(addr), int(dbg.PointerSize()))
	return encoding.Encode(stream, val)
}

func (dbg *Dbg) MinAddr() uint32 {
	return dbg.memoryManager.minAddr
}

func (dbg *Dbg) MaxAddr() uint32 {
	return dbg.memoryManager.maxAddr
}

func (dbg *Dbg) PageCount() int {
	return len(dbg.memoryManager.pages)
}

func (dbg *Dbg) MemRead(addr uint32, size uint64) ([]byte, error) {
	return dbg.memoryManager.memRead(addr, size)
}

func (dbg *Dbg) MemWrite(addr uint32, data []byte) error {
	return dbg.memoryManager.memWrite(addr, data)
}

func (dbg *Dbg) MemRegions() []emulator.MemRegion {
	return dbg.memoryManager.memRegions()
}

func (dbg *Dbg) ToPointer(addr uint32) emulator.Pointer {
	return emulator.ToPointer(dbg.impl, addr)
}

func (dbg *Dbg) MemExtract(addr uint32, val any) error {
	return dbg.memoryManager.memExtract(dbg.impl, addr, val)
}

func (dbg *Dbg) MemStore(addr uint32, val any) error {
	return dbg.memoryManager.memStore(dbg.impl, addr, val)
}
