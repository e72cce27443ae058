package encoding

import (
	"errors"
	"reflect"
	"sync"
	"unsafe"

	"github.com/modern-go/reflect2"
)

var (
	ErrUnsupportedType = errors.New("unsupported type")
	ErrNilValue        = errors.New("nil value")
	ErrNotPointer      = errors.New("decode target is not a pointer")
)

type handler = func(Stream, unsafe.Pointer) error

// layout is the guest representation of a Go type: little-endian scalars,
// naturally aligned struct fields.
type layout struct {
	decode handler
	encode handler
	size   int
	align  int
}

var layouts sync.Map

// Size returns the number of guest bytes val occupies.
func Size(blockSize int, val any) (int, error) {
	if val == nil {
		return 0, ErrNilValue
	}
	typ := reflect2.TypeOf(val)
	if typ.Kind() == reflect.Pointer {
		typ = typ.(reflect2.PtrType).Elem()
	}
	l, err := getLayout(typ, blockSize)
	if err != nil {
		return 0, err
	}
	return l.size, nil
}

// Decode fills the value pointed to by val from stream.
func Decode(stream Stream, val any) error {
	if val == nil {
		return ErrNilValue
	}
	typ := reflect2.TypeOf(val)
	if typ.Kind() != reflect.Pointer {
		return ErrNotPointer
	}
	ptr := reflect2.PtrOf(val)
	if ptr == nil {
		return ErrNilValue
	}
	l, err := getLayout(typ.(reflect2.PtrType).Elem(), stream.BlockSize())
	if err != nil {
		return err
	}
	return l.decode(stream, ptr)
}

// Encode writes val, or the value val points to, to stream.
func Encode(stream Stream, val any) error {
	if val == nil {
		return ErrNilValue
	}
	typ := reflect2.TypeOf(val)
	if typ.Kind() == reflect.Pointer {
		ptr := reflect2.PtrOf(val)
		if ptr == nil {
			return ErrNilValue
		}
		l, err := getLayout(typ.(reflect2.PtrType).Elem(), stream.BlockSize())
		if err != nil {
			return err
		}
		return l.encode(stream, ptr)
	}
	l, err := getLayout(typ, stream.BlockSize())
	if err != nil {
		return err
	}
	return l.encode(stream, reflect2.PtrOf(val))
}

func getLayout(typ reflect2.Type, bs int) (*layout, error) {
	key := [2]uintptr{uintptr(bs), typ.RType()}
	if v, ok := layouts.Load(key); ok {
		return v.(*layout), nil
	}
	l, err := build(typ, bs)
	if err != nil {
		return nil, err
	}
	layouts.Store(key, l)
	return l, nil
}

func build(typ reflect2.Type, bs int) (*layout, error) {
	switch typ.Kind() {
	case reflect.Bool:
		return boolLayout(), nil
	case reflect.Int8, reflect.Uint8:
		return scalarLayout(1, 1, false), nil
	case reflect.Int16, reflect.Uint16:
		return scalarLayout(2, 2, false), nil
	case reflect.Int32, reflect.Uint32, reflect.Float32:
		return scalarLayout(4, 4, false), nil
	case reflect.Int64, reflect.Uint64, reflect.Float64:
		return scalarLayout(8, 8, false), nil
	case reflect.Int:
		return scalarLayout(bs, int(typ.Type1().Size()), true), nil
	case reflect.Uint, reflect.Uintptr:
		return scalarLayout(bs, int(typ.Type1().Size()), false), nil
	case reflect.Array:
		return arrayLayout(typ.(reflect2.ArrayType), bs)
	case reflect.Struct:
		return structLayout(typ.(reflect2.StructType), bs)
	}
	return nil, ErrUnsupportedType
}

func boolLayout() *layout {
	return &layout{
		decode: func(stream Stream, ptr unsafe.Pointer) error {
			var b [1]byte
			if _, err := stream.Read(b[:]); err != nil {
				return err
			}
			*(*bool)(ptr) = b[0] != 0
			return nil
		},
		encode: func(stream Stream, ptr unsafe.Pointer) error {
			var b [1]byte
			if *(*bool)(ptr) {
				b[0] = 1
			}
			_, err := stream.Write(b[:])
			return err
		},
		size:  1,
		align: 1,
	}
}

// scalarLayout maps a host value of hostSize bytes onto guestSize guest
// bytes. Narrowing truncates; widening sign-extends when signed is set.
func scalarLayout(guestSize, hostSize int, signed bool) *layout {
	return &layout{
		decode: func(stream Stream, ptr unsafe.Pointer) error {
			var b [8]byte
			if _, err := stream.Read(b[:guestSize]); err != nil {
				return err
			}
			v := getLittle(b[:guestSize])
			if signed && guestSize < hostSize {
				shift := 64 - 8*guestSize
				v = uint64(int64(v<<shift) >> shift)
			}
			storeHost(ptr, hostSize, v)
			return nil
		},
		encode: func(stream Stream, ptr unsafe.Pointer) error {
			var b [8]byte
			putLittle(b[:guestSize], loadHost(ptr, hostSize))
			_, err := stream.Write(b[:guestSize])
			return err
		},
		size:  guestSize,
		align: guestSize,
	}
}

func arrayLayout(typ reflect2.ArrayType, bs int) (*layout, error) {
	elem, err := getLayout(typ.Elem(), bs)
	if err != nil {
		return nil, err
	}
	count := typ.Len()
	stride := typ.Elem().Type1().Size()
	return &layout{
		decode: func(stream Stream, ptr unsafe.Pointer) error {
			for i := 0; i < count; i++ {
				if err := elem.decode(stream, unsafe.Add(ptr, uintptr(i)*stride)); err != nil {
					return err
				}
			}
			return nil
		},
		encode: func(stream Stream, ptr unsafe.Pointer) error {
			for i := 0; i < count; i++ {
				if err := elem.encode(stream, unsafe.Add(ptr, uintptr(i)*stride)); err != nil {
					return err
				}
			}
			return nil
		},
		size:  elem.size * count,
		align: elem.align,
	}, nil
}

type fieldLayout struct {
	*layout
	offset uintptr
	pad    int
}

func structLayout(typ reflect2.StructType, bs int) (*layout, error) {
	count := typ.NumField()
	fields := make([]fieldLayout, 0, count)
	size, maxAlign := 0, 1
	for i := 0; i < count; i++ {
		field := typ.Field(i)
		if field.Tag().Get("encoding") == "ignore" {
			continue
		}
		l, err := getLayout(field.Type(), bs)
		if err != nil {
			return nil, err
		}
		offset := align(size, l.align)
		fields = append(fields, fieldLayout{l, field.Offset(), offset - size})
		size = offset + l.size
		maxAlign = max(maxAlign, l.align)
	}
	total := align(size, maxAlign)
	tail := total - size
	return &layout{
		decode: func(stream Stream, ptr unsafe.Pointer) error {
			for _, f := range fields {
				if err := skip(stream, f.pad); err != nil {
					return err
				}
				if err := f.decode(stream, unsafe.Add(ptr, f.offset)); err != nil {
					return err
				}
			}
			return skip(stream, tail)
		},
		encode: func(stream Stream, ptr unsafe.Pointer) error {
			for _, f := range fields {
				if err := skip(stream, f.pad); err != nil {
					return err
				}
				if err := f.encode(stream, unsafe.Add(ptr, f.offset)); err != nil {
					return err
				}
			}
			return skip(stream, tail)
		},
		size:  total,
		align: maxAlign,
	}, nil
}

func skip(stream Stream, n int) error {
	if n == 0 {
		return nil
	}
	return stream.Skip(n)
}

func getLittle(b []byte) (v uint64) {
	for i := len(b) - 1; i >= 0; i-- {
		v = v<<8 | uint64(b[i])
	}
	return
}

func putLittle(b []byte, v uint64) {
	for i := range b {
		b[i] = byte(v)
		v >>= 8
	}
}

func loadHost(ptr unsafe.Pointer, size int) uint64 {
	switch size {
	case 1:
		return uint64(*(*uint8)(ptr))
	case 2:
		return uint64(*(*uint16)(ptr))
	case 4:
		return uint64(*(*uint32)(ptr))
	default:
		return *(*uint64)(ptr)
	}
}

func storeHost(ptr unsafe.Pointer, size int, v uint64) {
	switch size {
	case 1:
		*(*uint8)(ptr) = uint8(v)
	case 2:
		*(*uint16)(ptr) = uint16(v)
	case 4:
		*(*uint32)(ptr) = uint32(v)
	default:
		*(*uint64)(ptr) = v
	}
}

func align(a, b int) int {
	return (a + b - 1) &^ (b - 1)
}
