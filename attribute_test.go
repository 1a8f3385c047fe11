package g3d

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAttribute(t *testing.T) {
	desc := AttributeDescriptor{
		Association:   AssociationVertex,
		AttributeType: AttributeTypeCoordinate,
		DataType:      DataTypeFloat32,
		DataArity:     3,
	}
	require.Equal(t, 12, desc.ElementSize())

	a, err := NewAttribute(desc, make([]byte, 48))
	require.NoError(t, err)
	assert.Equal(t, 4, a.Count())
	assert.Equal(t, 48, a.ByteSize())
	assert.False(t, a.Owned())
	assert.Empty(t, a.Index())
	assert.Equal(t, "g3d:vertex:coordinate:0:float32:3", a.Key())
}

func TestNewAttributeNilBuffer(t *testing.T) {
	desc := AttributeDescriptor{
		Association:   AssociationVertex,
		AttributeType: AttributeTypeCoordinate,
		DataType:      DataTypeFloat32,
		DataArity:     3,
	}

	_, err := NewAttribute(desc, nil)
	assert.ErrorIs(t, err, ErrNullBuffer)

	// Empty but non-nil is a valid zero-element attribute.
	a, err := NewAttribute(desc, []byte{})
	require.NoError(t, err)
	assert.Equal(t, 0, a.Count())
}

func TestNewAttributeMisaligned(t *testing.T) {
	desc := AttributeDescriptor{
		Association:   AssociationVertex,
		AttributeType: AttributeTypeCoordinate,
		DataType:      DataTypeFloat32,
		DataArity:     3,
	}

	// element size 12, 10 bytes does not divide
	_, err := NewAttribute(desc, make([]byte, 10))
	var misaligned *ErrMisalignedBuffer
	require.ErrorAs(t, err, &misaligned)
	assert.Equal(t, 10, misaligned.ByteSize)
	assert.Equal(t, 12, misaligned.ElementSize)
}

func TestNewAttributeInvalidDescriptor(t *testing.T) {
	_, err := NewAttribute(AttributeDescriptor{DataArity: -1}, make([]byte, 4))
	var ia *ErrInvalidArity
	assert.ErrorAs(t, err, &ia)
}

func TestAttributeTypedViews(t *testing.T) {
	desc := AttributeDescriptor{
		Association:   AssociationCorner,
		AttributeType: AttributeTypeIndex,
		DataType:      DataTypeInt32,
		DataArity:     1,
	}
	a, err := NewAttribute(desc, make([]byte, 6*4))
	require.NoError(t, err)

	view := DataAs[int32](a)
	require.Len(t, view, 6)
	copy(view, []int32{0, 1, 2, 1, 3, 2})

	// The view aliases the attribute buffer.
	assert.Equal(t, []int32{0, 1, 2, 1, 3, 2}, DataAs[int32](a))
	assert.Equal(t, byte(1), a.Data()[4])

	assert.Nil(t, DataAs[int32](&Attribute{}))
	assert.Nil(t, IndexAs[int32](a))
}

func TestAttributeFloat16Values(t *testing.T) {
	desc := AttributeDescriptor{
		Association:   AssociationVertex,
		AttributeType: AttributeTypePerVertex,
		DataType:      DataTypeFloat16,
		DataArity:     1,
	}
	// 1.0 = 0x3C00, -2.0 = 0xC000, 0.5 = 0x3800 in binary16, little-endian.
	buf := []byte{0x00, 0x3C, 0x00, 0xC0, 0x00, 0x38}
	a, err := NewAttribute(desc, buf)
	require.NoError(t, err)
	assert.Equal(t, 3, a.Count())
	assert.Equal(t, []float32{1, -2, 0.5}, Float16Values(a))
}

func TestAttributeSetIndex(t *testing.T) {
	desc := AttributeDescriptor{
		Association:        AssociationNone,
		AttributeType:      AttributeTypeMapChannelData,
		AttributeTypeIndex: 1,
		DataType:           DataTypeFloat32,
		DataArity:          3,
	}
	a, err := NewAttribute(desc, make([]byte, 24))
	require.NoError(t, err)

	a.SetIndex([]byte{1, 0, 0, 0})
	assert.Equal(t, []byte{1, 0, 0, 0}, a.Index())
}
