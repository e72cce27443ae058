package loader_test

import (
	"bytes"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/wnxd/guestmem/debugger/rv32"
	"github.com/wnxd/guestmem/emulator"
	"github.com/wnxd/guestmem/internal/test"
	"github.com/wnxd/guestmem/loader"
)

func TestLoad(t *testing.T) {
	dbg, err := rv32.New()
	test.DemandEquality(t, err, nil)
	defer dbg.Close()

	text := bytes.Repeat([]byte{0x13, 0x00, 0x00, 0x00}, 0x600)
	data := []byte("guest data")
	err = loader.Load(dbg,
		loader.Region{Addr: 0x10000, Length: uint64(len(text)), ReaderAt: bytes.NewReader(text)},
		loader.Region{Addr: 0x20000, Length: uint64(len(data)), ReaderAt: strings.NewReader(string(data))},
	)
	test.ExpectSuccess(t, err)

	v, err := dbg.ReadMem(0x10000+0x17FC, emulator.SIZE_WORD)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint32(0x13))

	got, err := dbg.MemRead(0x20000, uint64(len(data)))
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, string(got), string(data))

	// loading does not arm or trip anything
	_, ok := dbg.Trigger()
	test.ExpectFailure(t, ok)
}

func TestLoadErrors(t *testing.T) {
	dbg, err := rv32.New()
	test.DemandEquality(t, err, nil)
	defer dbg.Close()

	err = loader.Load(dbg, loader.Region{Addr: 0x1000})
	test.ExpectError(t, err, loader.ErrSegmentEmpty)

	err = loader.Load(dbg, loader.Region{Addr: 0xFFFFFFF0, Length: 0x20, ReaderAt: bytes.NewReader(make([]byte, 0x20))})
	test.ExpectError(t, err, loader.ErrSegmentOverflow)

	err = loader.Load(dbg, loader.Region{Addr: 0x100, Length: 4, ReaderAt: bytes.NewReader(make([]byte, 4))})
	test.ExpectError(t, err, emulator.ErrOutOfRange)

	// short reader
	err = loader.Load(dbg, loader.Region{Addr: 0x1000, Length: 8, ReaderAt: bytes.NewReader(make([]byte, 4))})
	test.ExpectFailure(t, err)
}

func TestLoadFile(t *testing.T) {
	dbg, err := rv32.New()
	test.DemandEquality(t, err, nil)
	defer dbg.Close()

	fsys := fstest.MapFS{
		"boot.bin": &fstest.MapFile{Data: []byte{0xEF, 0xBE, 0xAD, 0xDE}},
	}
	test.ExpectSuccess(t, loader.LoadFile(dbg, fsys, "boot.bin", 0x8000))
	v, err := dbg.ReadMem(0x8000, emulator.SIZE_WORD)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint32(0xDEADBEEF))

	test.ExpectFailure(t, loader.LoadFile(dbg, fsys, "missing.bin", 0x8000))
}
