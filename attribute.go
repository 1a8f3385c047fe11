package g3d

import (
	"unsafe"

	"github.com/hupe1980/g3d/internal/f16"
)

// Attribute binds one descriptor to a contiguous data buffer and an optional
// index buffer (used by indirect-referencing channels). The buffer is either
// owned — freshly allocated, freed with the attribute — or borrowed from the
// caller, in which case the caller must keep the backing storage alive and
// unaliased for as long as the attribute (and any document holding it) is in
// use. That lifetime rule is a precondition, not something the attribute can
// check.
type Attribute struct {
	// Descriptor identifies the meaning, element kind, type and arity of the
	// values in the data buffer.
	Descriptor AttributeDescriptor

	data  []byte
	index []byte
	owned bool
}

// NewAttribute constructs an attribute borrowing the given data buffer.
//
// It fails with ErrNullBuffer for a nil buffer and with *ErrMisalignedBuffer
// if the buffer length is not an exact multiple of the descriptor's element
// size. An empty non-nil buffer is a valid zero-element attribute.
func NewAttribute(desc AttributeDescriptor, data []byte) (*Attribute, error) {
	return newAttribute(desc, data, false)
}

func newAttribute(desc AttributeDescriptor, data []byte, owned bool) (*Attribute, error) {
	if err := desc.Validate(); err != nil {
		return nil, err
	}
	if data == nil {
		return nil, ErrNullBuffer
	}
	elem := desc.ElementSize()
	if len(data)%elem != 0 {
		return nil, &ErrMisalignedBuffer{ByteSize: len(data), ElementSize: elem}
	}
	return &Attribute{Descriptor: desc, data: data, owned: owned}, nil
}

// Key returns the canonical descriptor string, which is also the attribute's
// unique key within a document.
func (a *Attribute) Key() string {
	return a.Descriptor.String()
}

// Data returns the raw value buffer. Mutating it in place is allowed during
// the build phase; resizing is not.
func (a *Attribute) Data() []byte {
	return a.data
}

// Index returns the raw index buffer, empty for attributes without
// indirection. It always serializes, even when empty, so that empty
// round-trips as empty rather than absent.
func (a *Attribute) Index() []byte {
	return a.index
}

// SetIndex attaches an index buffer. The buffer is borrowed under the same
// lifetime rule as borrowed data buffers.
func (a *Attribute) SetIndex(index []byte) {
	a.index = index
}

// Owned reports whether the attribute owns its data buffer.
func (a *Attribute) Owned() bool {
	return a.owned
}

// ByteSize returns the length of the data buffer in bytes.
func (a *Attribute) ByteSize() int {
	return len(a.data)
}

// Count returns the number of elements in the data buffer. It is derived
// from the buffer length, never stored, so it cannot diverge.
func (a *Attribute) Count() int {
	return len(a.data) / a.Descriptor.ElementSize()
}

// Element constrains the primitive types an attribute buffer can be viewed
// as. 128-bit values have no Go primitive and must be accessed through the
// raw byte buffer; float16 values decode through Float16Values.
type Element interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~int8 | ~int16 | ~int32 | ~int64 |
		~float32 | ~float64
}

// DataAs reinterprets the attribute's data buffer as a slice of T without
// copying. T must match the descriptor's data type width; the caller is
// responsible for choosing the right T (typically via Descriptor.DataType).
// The returned slice aliases the attribute buffer: reads and in-place writes
// are fine, resizing is not.
func DataAs[T Element](a *Attribute) []T {
	return viewAs[T](a.data)
}

// IndexAs reinterprets the attribute's index buffer as a slice of T without
// copying, under the same rules as DataAs.
func IndexAs[T Element](a *Attribute) []T {
	return viewAs[T](a.index)
}

// Float16Values decodes a float16 attribute's data buffer into float32
// values. Unlike DataAs this copies, since binary16 has no Go primitive.
func Float16Values(a *Attribute) []float32 {
	return f16.Decode(viewAs[f16.Bits](a.data))
}

func viewAs[T Element](buf []byte) []T {
	if len(buf) == 0 {
		return nil
	}
	var zero T
	n := len(buf) / int(unsafe.Sizeof(zero))
	return unsafe.Slice((*T)(unsafe.Pointer(&buf[0])), n)
}

// bytesOf reinterprets a typed slice as its backing bytes without copying.
func bytesOf[T Element](src []T) []byte {
	if len(src) == 0 {
		return []byte{}
	}
	var zero T
	return unsafe.Slice((*byte)(unsafe.Pointer(&src[0])), len(src)*int(unsafe.Sizeof(zero)))
}
