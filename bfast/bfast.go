// Package bfast implements the BFAST container layout (Binary Format for
// Array Streaming and Transmission): a sequence of named byte arrays framed
// by a fixed header and a range table.
//
// Physical layout, all integers little-endian:
//
//	[0, 32)              header: magic, data start, data end, array count (int64 each)
//	[32, 32+16*count)    range table: absolute begin/end offsets per array
//	[data start, ...)    array payloads, each starting on a 64-byte boundary,
//	                     zero padding in between
//
// The first physical array is the name table: the NUL-terminated UTF-8 names
// of the remaining arrays, concatenated. Callers see only the named arrays
// that follow it.
package bfast

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"strings"

	"github.com/hupe1980/g3d/internal/conv"
)

const (
	// Magic identifies a BFAST container.
	Magic uint64 = 0xBFA5

	// Alignment is the byte boundary every array payload starts on.
	Alignment = 64

	// HeaderSize is the size of the fixed container header.
	HeaderSize = 32

	// RangeSize is the size of one begin/end entry in the range table.
	RangeSize = 16
)

// Buffer is one named byte array in a container.
type Buffer struct {
	Name string
	Data []byte
}

// ErrInvalidHeader indicates a container whose fixed header is truncated or
// internally inconsistent.
type ErrInvalidHeader struct {
	Reason string
}

func (e *ErrInvalidHeader) Error() string {
	return fmt.Sprintf("bfast: invalid header: %s", e.Reason)
}

// ErrInvalidRange indicates a range table entry that is non-monotonic or out
// of bounds.
type ErrInvalidRange struct {
	Index      int
	Begin, End int64
}

func (e *ErrInvalidRange) Error() string {
	return fmt.Sprintf("bfast: invalid range %d: [%d, %d)", e.Index, e.Begin, e.End)
}

// ErrInvalidNames indicates a name table whose entry count does not match the
// number of arrays that follow it.
type ErrInvalidNames struct {
	Want, Got int
}

func (e *ErrInvalidNames) Error() string {
	return fmt.Sprintf("bfast: name table has %d entries, expected %d", e.Got, e.Want)
}

type span struct {
	begin, end int64
}

// layout computes where every physical array lands. Physical array 0 is the
// name table; the caller's buffers follow.
func layout(bufs []Buffer) (spans []span, nameTable []byte, err error) {
	var names strings.Builder
	for _, b := range bufs {
		if strings.ContainsRune(b.Name, 0) {
			return nil, nil, fmt.Errorf("bfast: buffer name %q contains NUL", b.Name)
		}
		names.WriteString(b.Name)
		names.WriteByte(0)
	}
	nameTable = []byte(names.String())

	count := len(bufs) + 1
	spans = make([]span, 0, count)
	cursor := align(int64(HeaderSize + count*RangeSize))

	sizes := make([]int64, 0, count)
	sizes = append(sizes, int64(len(nameTable)))
	for _, b := range bufs {
		sizes = append(sizes, int64(len(b.Data)))
	}
	for _, size := range sizes {
		cursor = align(cursor)
		spans = append(spans, span{begin: cursor, end: cursor + size})
		cursor += size
	}
	return spans, nameTable, nil
}

// Write frames bufs into w and returns the number of bytes written.
func Write(w io.Writer, bufs []Buffer) (int64, error) {
	spans, nameTable, err := layout(bufs)
	if err != nil {
		return 0, err
	}

	header := make([]byte, HeaderSize)
	binary.LittleEndian.PutUint64(header[0:8], Magic)
	binary.LittleEndian.PutUint64(header[8:16], uint64(spans[0].begin))
	binary.LittleEndian.PutUint64(header[16:24], uint64(spans[len(spans)-1].end))
	binary.LittleEndian.PutUint64(header[24:32], uint64(len(spans)))

	written := int64(0)
	n, err := w.Write(header)
	written += int64(n)
	if err != nil {
		return written, fmt.Errorf("bfast: write header: %w", err)
	}

	ranges := make([]byte, len(spans)*RangeSize)
	for i, s := range spans {
		binary.LittleEndian.PutUint64(ranges[i*RangeSize:], uint64(s.begin))
		binary.LittleEndian.PutUint64(ranges[i*RangeSize+8:], uint64(s.end))
	}
	n, err = w.Write(ranges)
	written += int64(n)
	if err != nil {
		return written, fmt.Errorf("bfast: write range table: %w", err)
	}

	payloads := make([][]byte, 0, len(spans))
	payloads = append(payloads, nameTable)
	for _, b := range bufs {
		payloads = append(payloads, b.Data)
	}
	for i, payload := range payloads {
		pad := spans[i].begin - written
		if pad > 0 {
			n, err := w.Write(make([]byte, pad))
			written += int64(n)
			if err != nil {
				return written, fmt.Errorf("bfast: write padding: %w", err)
			}
		}
		n, err := w.Write(payload)
		written += int64(n)
		if err != nil {
			return written, fmt.Errorf("bfast: write array %d: %w", i, err)
		}
	}
	return written, nil
}

// Marshal frames bufs into a byte slice.
func Marshal(bufs []Buffer) ([]byte, error) {
	var out bytes.Buffer
	if _, err := Write(&out, bufs); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

// Unmarshal parses a framed container. The returned buffers alias data; the
// caller must not release or mutate data while they are in use.
//
// The reader trusts the range table for array positions: payloads are written
// aligned, but alignment is not re-derived or enforced on read.
func Unmarshal(data []byte) ([]Buffer, error) {
	if len(data) < HeaderSize {
		return nil, &ErrInvalidHeader{Reason: fmt.Sprintf("truncated: %d bytes", len(data))}
	}
	if magic := binary.LittleEndian.Uint64(data[0:8]); magic != Magic {
		return nil, &ErrInvalidHeader{Reason: fmt.Sprintf("bad magic 0x%X", magic)}
	}

	dataStart, err := conv.Uint64ToInt64(binary.LittleEndian.Uint64(data[8:16]))
	if err != nil {
		return nil, &ErrInvalidHeader{Reason: err.Error()}
	}
	dataEnd, err := conv.Uint64ToInt64(binary.LittleEndian.Uint64(data[16:24]))
	if err != nil {
		return nil, &ErrInvalidHeader{Reason: err.Error()}
	}
	count64, err := conv.Uint64ToInt64(binary.LittleEndian.Uint64(data[24:32]))
	if err != nil {
		return nil, &ErrInvalidHeader{Reason: err.Error()}
	}
	count, err := conv.Int64ToInt(count64)
	if err != nil {
		return nil, &ErrInvalidHeader{Reason: err.Error()}
	}

	if count < 1 || count > (len(data)-HeaderSize)/RangeSize {
		return nil, &ErrInvalidHeader{Reason: fmt.Sprintf("array count %d", count)}
	}
	if dataStart < int64(HeaderSize+count*RangeSize) || dataStart > dataEnd || dataEnd > int64(len(data)) {
		return nil, &ErrInvalidHeader{Reason: fmt.Sprintf("data section [%d, %d) out of bounds", dataStart, dataEnd)}
	}

	spans := make([]span, count)
	for i := range spans {
		off := HeaderSize + i*RangeSize
		begin, err := conv.Uint64ToInt64(binary.LittleEndian.Uint64(data[off:]))
		if err != nil {
			return nil, &ErrInvalidRange{Index: i}
		}
		end, err := conv.Uint64ToInt64(binary.LittleEndian.Uint64(data[off+8:]))
		if err != nil {
			return nil, &ErrInvalidRange{Index: i, Begin: begin}
		}
		if begin < dataStart || begin > end || end > dataEnd {
			return nil, &ErrInvalidRange{Index: i, Begin: begin, End: end}
		}
		if i > 0 && begin < spans[i-1].end {
			return nil, &ErrInvalidRange{Index: i, Begin: begin, End: end}
		}
		spans[i] = span{begin: begin, end: end}
	}

	names := parseNameTable(data[spans[0].begin:spans[0].end])
	if len(names) != count-1 {
		return nil, &ErrInvalidNames{Want: count - 1, Got: len(names)}
	}

	bufs := make([]Buffer, count-1)
	for i := range bufs {
		s := spans[i+1]
		bufs[i] = Buffer{Name: names[i], Data: data[s.begin:s.end]}
	}
	return bufs, nil
}

func parseNameTable(table []byte) []string {
	if len(table) == 0 {
		return nil
	}
	parts := strings.Split(string(table), "\x00")
	// A well-formed table ends with a terminator, leaving one empty trailing
	// part. A missing terminator still yields the right names.
	if parts[len(parts)-1] == "" {
		parts = parts[:len(parts)-1]
	}
	return parts
}

func align(offset int64) int64 {
	return (offset + Alignment - 1) &^ (Alignment - 1)
}
