package debugger

import (
	"io"
	"log"

	"github.com/wnxd/guestmem/debugger"
	"github.com/wnxd/guestmem/emulator"
)

type Debugger interface {
	debugger.Debugger
	PointerSize() uint64
}

// Dbg is the shared guest memory core. Platform packages embed it and supply
// Arch, ByteOrder and PointerSize.
type Dbg struct {
	impl   Debugger
	logger *log.Logger
	memoryManager
	watchManager
}

func (dbg *Dbg) Init(impl Debugger, cfg debugger.Config) error {
	if cfg.MinAddr > cfg.MaxAddr {
		return debugger.ErrArgumentInvalid
	}
	if cfg.Logger == nil {
		cfg.Logger = log.New(io.Discard, "", 0)
	}
	dbg.impl = impl
	dbg.logger = cfg.Logger
	dbg.memoryManager.ctor(cfg.MinAddr, cfg.MaxAddr)
	dbg.watchManager.ctor(cfg.Logger)
	dbg.logger.Printf("guest memory %s: range %08X-%08X, page size %d", impl.Arch(), cfg.MinAddr, cfg.MaxAddr, PAGE_SIZE)
	return nil
}

func (dbg *Dbg) Close() error {
	dbg.watchManager.dtor()
	dbg.memoryManager.dtor()
	return nil
}

func (dbg *Dbg) PageSize() uint64 {
	return PAGE_SIZE
}

func (dbg *Dbg) ReadMem(addr uint32, size emulator.AccessSize) (uint32, error) {
	err := dbg.memoryManager.check(false, addr, size)
	if err != nil {
		return 0, err
	}
	cell := dbg.memoryManager.cell(addr)
	dbg.watchManager.evaluate(addr, size.Len(), false)
	return readLane(*cell, addr, size), nil
}

func (dbg *Dbg) WriteMem(addr uint32, size emulator.AccessSize, value uint32) error {
	err := dbg.memoryManager.check(true, addr, size)
	if err != nil {
		return err
	}
	cell := dbg.memoryManager.cell(addr)
	dbg.watchManager.evaluate(addr, size.Len(), true)
	*cell = writeLane(*cell, addr, size, value)
	return nil
}
