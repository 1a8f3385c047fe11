package g3d

// DataType identifies the primitive type of the individual values stored in an
// attribute channel.
//
// The numeric values are part of the wire format: they are written verbatim
// into the 32-byte attribute descriptor record. Do not reorder.
type DataType int32

const (
	DataTypeUint8 DataType = iota
	DataTypeUint16
	DataTypeUint32
	DataTypeUint64
	DataTypeUint128
	DataTypeInt8
	DataTypeInt16
	DataTypeInt32
	DataTypeInt64
	DataTypeInt128
	DataTypeFloat16
	DataTypeFloat32
	DataTypeFloat64
	DataTypeFloat128

	// DataTypeInvalid marks unrecognized input. It is never a legal stored
	// value; it only exists so corrupt records have somewhere to land.
	DataTypeInvalid
)

// There is no 1-byte float. float16 requires a binary16 decoder (see
// internal/f16) but is stored like any other 2-byte value.
var dataTypeSizes = [...]int{
	DataTypeUint8:    1,
	DataTypeUint16:   2,
	DataTypeUint32:   4,
	DataTypeUint64:   8,
	DataTypeUint128:  16,
	DataTypeInt8:     1,
	DataTypeInt16:    2,
	DataTypeInt32:    4,
	DataTypeInt64:    8,
	DataTypeInt128:   16,
	DataTypeFloat16:  2,
	DataTypeFloat32:  4,
	DataTypeFloat64:  8,
	DataTypeFloat128: 16,
}

var dataTypeNames = [...]string{
	DataTypeUint8:    "uint8",
	DataTypeUint16:   "uint16",
	DataTypeUint32:   "uint32",
	DataTypeUint64:   "uint64",
	DataTypeUint128:  "uint128",
	DataTypeInt8:     "int8",
	DataTypeInt16:    "int16",
	DataTypeInt32:    "int32",
	DataTypeInt64:    "int64",
	DataTypeInt128:   "int128",
	DataTypeFloat16:  "float16",
	DataTypeFloat32:  "float32",
	DataTypeFloat64:  "float64",
	DataTypeFloat128: "float128",
}

var dataTypesByName = func() map[string]DataType {
	m := make(map[string]DataType, len(dataTypeNames))
	for t, name := range dataTypeNames {
		m[name] = DataType(t)
	}
	return m
}()

// Valid reports whether t is one of the defined data types (excluding the
// DataTypeInvalid sentinel).
func (t DataType) Valid() bool {
	return t >= 0 && t < DataTypeInvalid
}

// Size returns the byte size of a single value of this type.
// It returns 0 for invalid types.
func (t DataType) Size() int {
	if !t.Valid() {
		return 0
	}
	return dataTypeSizes[t]
}

// String returns the canonical name used in descriptor strings.
func (t DataType) String() string {
	if !t.Valid() {
		return "invalid"
	}
	return dataTypeNames[t]
}

// ParseDataType resolves a canonical data type name.
//
// Names are case-sensitive and exact; anything else fails with *ErrUnknownName.
func ParseDataType(s string) (DataType, error) {
	t, ok := dataTypesByName[s]
	if !ok {
		return DataTypeInvalid, &ErrUnknownName{Kind: "data type", Name: s}
	}
	return t, nil
}
