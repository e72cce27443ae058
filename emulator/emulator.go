package emulator

// Memory is the access contract between the instruction executor and guest
// memory. Accesses are issued one at a time, in program order.
type Memory interface {
	ByteOrder() ByteOrder
	PageSize() uint64
	ReadMem(addr uint32, size AccessSize) (uint32, error)
	WriteMem(addr uint32, size AccessSize, value uint32) error
}

// BulkMemory is byte-granular access used for inspection and image loading.
type BulkMemory interface {
	MemRead(addr uint32, size uint64) ([]byte, error)
	MemWrite(addr uint32, data []byte) error
}
