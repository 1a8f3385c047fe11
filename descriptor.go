package g3d

import (
	"encoding/binary"
	"fmt"
	"strconv"
	"strings"
)

// DescriptorSize is the size of the fixed binary descriptor record. N records
// form a contiguous, directly indexable table without per-record length
// prefixes.
const DescriptorSize = 32

// descriptorMagic is the leading token of every canonical descriptor string.
const descriptorMagic = "g3d"

// AttributeDescriptor is the schema unit of the format: it identifies what an
// attribute means (role and channel index), which geometric element its
// values repeat over, and the primitive type and arity of those values.
//
// A descriptor has two lossless encodings: a canonical URN-like string
// (String / ParseDescriptor) used as the unique attribute key, and a fixed
// 32-byte little-endian record (MarshalBinary / UnmarshalBinary) used in the
// container's descriptor table.
type AttributeDescriptor struct {
	// Association selects the geometric element the values repeat over.
	Association Association

	// AttributeType is the semantic role of the channel.
	AttributeType AttributeType

	// AttributeTypeIndex disambiguates multiple channels of the same role
	// (uv0, uv1, ...). Must be non-negative.
	AttributeTypeIndex int32

	// DataType is the primitive type of the individual values.
	DataType DataType

	// DataArity is the number of primitive values per element (3 for xyz
	// coordinates, 2 for uv). Must be positive.
	DataArity int32
}

// Validate checks every field against its closed range.
func (d AttributeDescriptor) Validate() error {
	if !d.Association.Valid() {
		return &ErrOutOfRange{Field: "association", Value: int32(d.Association)}
	}
	if !d.AttributeType.Valid() {
		return &ErrOutOfRange{Field: "attribute type", Value: int32(d.AttributeType)}
	}
	if d.AttributeTypeIndex < 0 {
		return &ErrOutOfRange{Field: "attribute type index", Value: d.AttributeTypeIndex}
	}
	if !d.DataType.Valid() {
		return &ErrOutOfRange{Field: "data type", Value: int32(d.DataType)}
	}
	if d.DataArity <= 0 {
		return &ErrInvalidArity{Arity: d.DataArity}
	}
	return nil
}

// ElementSize returns the byte size of one element: the data type size times
// the arity. It returns 0 for descriptors with an invalid data type.
func (d AttributeDescriptor) ElementSize() int {
	return d.DataType.Size() * int(d.DataArity)
}

// String returns the canonical descriptor string:
//
//	g3d:<association>:<attribute_type>:<attribute_type_index>:<data_type>:<data_arity>
//
// The encoding is deterministic; for every valid descriptor it re-parses to
// an identical descriptor.
func (d AttributeDescriptor) String() string {
	var sb strings.Builder
	sb.WriteString(descriptorMagic)
	sb.WriteByte(':')
	sb.WriteString(d.Association.String())
	sb.WriteByte(':')
	sb.WriteString(d.AttributeType.String())
	sb.WriteByte(':')
	sb.WriteString(strconv.FormatInt(int64(d.AttributeTypeIndex), 10))
	sb.WriteByte(':')
	sb.WriteString(d.DataType.String())
	sb.WriteByte(':')
	sb.WriteString(strconv.FormatInt(int64(d.DataArity), 10))
	return sb.String()
}

// ParseDescriptor parses a canonical descriptor string.
//
// The grammar is strict: exactly six colon-separated tokens, the first
// literally "g3d", exact case-sensitive enum names, decimal index and arity.
// After the candidate descriptor validates, it is re-encoded and compared
// byte-for-byte against the input; any divergence (leading zeros, signs)
// fails with *ErrRoundTripMismatch instead of being normalized.
func ParseDescriptor(s string) (AttributeDescriptor, error) {
	var d AttributeDescriptor

	tokens := strings.Split(s, ":")
	if len(tokens) != 6 {
		return d, &ErrMalformedDescriptor{Input: s, Reason: fmt.Sprintf("expected 6 tokens, got %d", len(tokens))}
	}
	if tokens[0] != descriptorMagic {
		return d, &ErrMalformedDescriptor{Input: s, Reason: fmt.Sprintf("expected leading %q token", descriptorMagic)}
	}

	assoc, err := ParseAssociation(tokens[1])
	if err != nil {
		return d, &ErrMalformedDescriptor{Input: s, Reason: "bad association", cause: err}
	}
	attrType, err := ParseAttributeType(tokens[2])
	if err != nil {
		return d, &ErrMalformedDescriptor{Input: s, Reason: "bad attribute type", cause: err}
	}
	index, err := strconv.ParseInt(tokens[3], 10, 32)
	if err != nil {
		return d, &ErrMalformedDescriptor{Input: s, Reason: "bad attribute type index", cause: err}
	}
	dataType, err := ParseDataType(tokens[4])
	if err != nil {
		return d, &ErrMalformedDescriptor{Input: s, Reason: "bad data type", cause: err}
	}
	arity, err := strconv.ParseInt(tokens[5], 10, 32)
	if err != nil {
		return d, &ErrMalformedDescriptor{Input: s, Reason: "bad data arity", cause: err}
	}

	d = AttributeDescriptor{
		Association:        assoc,
		AttributeType:      attrType,
		AttributeTypeIndex: int32(index),
		DataType:           dataType,
		DataArity:          int32(arity),
	}
	if err := d.Validate(); err != nil {
		return AttributeDescriptor{}, err
	}

	// Reject superficially parseable but non-canonical spellings.
	if canonical := d.String(); canonical != s {
		return AttributeDescriptor{}, &ErrRoundTripMismatch{Input: s, Canonical: canonical}
	}
	return d, nil
}

// MarshalBinary encodes the descriptor as the fixed 32-byte record: five
// little-endian int32 fields in the order association, attribute type,
// attribute type index, data arity, data type, followed by 12 reserved zero
// bytes that pad the record to a power of two.
//
// Note the record stores arity before data type, the reverse of the string
// form.
func (d AttributeDescriptor) MarshalBinary() ([]byte, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	buf := make([]byte, DescriptorSize)
	binary.LittleEndian.PutUint32(buf[0:4], uint32(d.Association))
	binary.LittleEndian.PutUint32(buf[4:8], uint32(d.AttributeType))
	binary.LittleEndian.PutUint32(buf[8:12], uint32(d.AttributeTypeIndex))
	binary.LittleEndian.PutUint32(buf[12:16], uint32(d.DataArity))
	binary.LittleEndian.PutUint32(buf[16:20], uint32(d.DataType))
	// buf[20:32] reserved
	return buf, nil
}

// UnmarshalBinary decodes a fixed 32-byte descriptor record and validates it.
// The 12 reserved trailing bytes are ignored on read.
func (d *AttributeDescriptor) UnmarshalBinary(data []byte) error {
	if len(data) != DescriptorSize {
		return fmt.Errorf("descriptor record must be %d bytes, got %d", DescriptorSize, len(data))
	}
	rec := AttributeDescriptor{
		Association:        Association(int32(binary.LittleEndian.Uint32(data[0:4]))),
		AttributeType:      AttributeType(int32(binary.LittleEndian.Uint32(data[4:8]))),
		AttributeTypeIndex: int32(binary.LittleEndian.Uint32(data[8:12])),
		DataArity:          int32(binary.LittleEndian.Uint32(data[12:16])),
		DataType:           DataType(int32(binary.LittleEndian.Uint32(data[16:20]))),
	}
	if err := rec.Validate(); err != nil {
		return err
	}
	*d = rec
	return nil
}
