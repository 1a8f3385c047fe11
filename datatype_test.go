package g3d

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDataTypeSize(t *testing.T) {
	tests := []struct {
		dt   DataType
		size int
	}{
		{DataTypeUint8, 1},
		{DataTypeUint16, 2},
		{DataTypeUint32, 4},
		{DataTypeUint64, 8},
		{DataTypeUint128, 16},
		{DataTypeInt8, 1},
		{DataTypeInt16, 2},
		{DataTypeInt32, 4},
		{DataTypeInt64, 8},
		{DataTypeInt128, 16},
		{DataTypeFloat16, 2},
		{DataTypeFloat32, 4},
		{DataTypeFloat64, 8},
		{DataTypeFloat128, 16},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.size, tt.dt.Size(), tt.dt.String())
	}

	assert.Equal(t, 0, DataTypeInvalid.Size())
	assert.Equal(t, 0, DataType(-1).Size())
}

func TestDataTypeNames(t *testing.T) {
	for dt := DataTypeUint8; dt < DataTypeInvalid; dt++ {
		parsed, err := ParseDataType(dt.String())
		require.NoError(t, err)
		assert.Equal(t, dt, parsed)
	}

	assert.Equal(t, "invalid", DataTypeInvalid.String())
	assert.Equal(t, "invalid", DataType(99).String())
}

func TestParseDataTypeUnknown(t *testing.T) {
	tests := []string{"", "float8", "Float32", "float32 ", "invalid"}

	for _, name := range tests {
		_, err := ParseDataType(name)
		var unknownErr *ErrUnknownName
		require.ErrorAs(t, err, &unknownErr, name)
		assert.Equal(t, name, unknownErr.Name)
	}
}

func TestAssociationNames(t *testing.T) {
	for a := AssociationVertex; a < AssociationInvalid; a++ {
		parsed, err := ParseAssociation(a.String())
		require.NoError(t, err)
		assert.Equal(t, a, parsed)
	}

	_, err := ParseAssociation("point")
	var unknownErr *ErrUnknownName
	assert.ErrorAs(t, err, &unknownErr)
}

func TestAttributeTypeNames(t *testing.T) {
	for at := AttributeTypeCustom; at < AttributeTypeInvalid; at++ {
		parsed, err := ParseAttributeType(at.String())
		require.NoError(t, err)
		assert.Equal(t, at, parsed)
	}

	assert.Equal(t, "mapchannel_data", AttributeTypeMapChannelData.String())
	assert.Equal(t, "mapchannel_index", AttributeTypeMapChannelIndex.String())

	_, err := ParseAttributeType("material_id")
	var unknownErr *ErrUnknownName
	assert.ErrorAs(t, err, &unknownErr)
}
