package encoding

// Stream is a cursor over guest memory. BlockSize is the guest pointer
// width used for int, uint and uintptr values.
type Stream interface {
	BlockSize() int
	Offset() uint64
	Skip(int) error
	Read([]byte) (int, error)
	Write([]byte) (int, error)
}
