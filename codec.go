package g3d

import (
	"bytes"
	"fmt"
	"io"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/g3d/bfast"
)

// Buffer names in the serialized container. Names are informational; readers
// follow the positional contract, not the names.
const (
	metaBufferName        = "meta"
	descriptorsBufferName = "descriptors"
	indexNameSuffix       = ":index"
)

type options struct {
	logger      *Logger
	parallelism int
}

// Option configures container encode/decode behavior.
type Option func(*options)

// WithLogger attaches a logger to the codec. If nil is passed, logging stays
// disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithParallelism stages descriptor records with up to n goroutines. The
// serialized array order is unaffected; this is purely a throughput knob for
// documents with very many attributes. Values below 2 keep the codec
// sequential.
func WithParallelism(n int) Option {
	return func(o *options) {
		o.parallelism = n
	}
}

func applyOptions(opts []Option) *options {
	o := &options{
		logger:      NoopLogger(),
		parallelism: 1,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Write serializes the document into w as a BFAST container and returns the
// number of bytes written.
//
// Array contract: array 0 is the meta JSON, array 1 the descriptor table (one
// 32-byte record per attribute, insertion order), then per attribute its data
// buffer followed by its index buffer. Empty index buffers are emitted as
// empty arrays so that they round-trip as empty rather than absent.
func (d *Document) Write(w io.Writer, opts ...Option) (int64, error) {
	o := applyOptions(opts)

	bufs, err := d.buffers(o)
	if err != nil {
		o.logger.LogEncode(d.Len(), 0, err)
		return 0, err
	}
	n, err := bfast.Write(w, bufs)
	o.logger.LogEncode(d.Len(), n, err)
	return n, err
}

// Marshal serializes the document into a byte slice. See Write.
func (d *Document) Marshal(opts ...Option) ([]byte, error) {
	var out bytes.Buffer
	if _, err := d.Write(&out, opts...); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

func (d *Document) buffers(o *options) ([]bfast.Buffer, error) {
	meta, err := d.metaBytes()
	if err != nil {
		return nil, fmt.Errorf("encode meta: %w", err)
	}

	attrs := d.Attributes()
	table, err := marshalDescriptorTable(attrs, o.parallelism)
	if err != nil {
		return nil, err
	}

	bufs := make([]bfast.Buffer, 0, 2+2*len(attrs))
	bufs = append(bufs,
		bfast.Buffer{Name: metaBufferName, Data: meta},
		bfast.Buffer{Name: descriptorsBufferName, Data: table},
	)
	for _, a := range attrs {
		key := a.Key()
		index := a.Index()
		if index == nil {
			index = []byte{}
		}
		bufs = append(bufs,
			bfast.Buffer{Name: key, Data: a.Data()},
			bfast.Buffer{Name: key + indexNameSuffix, Data: index},
		)
	}
	return bufs, nil
}

func marshalDescriptorTable(attrs []*Attribute, parallelism int) ([]byte, error) {
	table := make([]byte, len(attrs)*DescriptorSize)

	if parallelism > 1 && len(attrs) > 1 {
		g := new(errgroup.Group)
		g.SetLimit(parallelism)
		for i, a := range attrs {
			i, a := i, a
			g.Go(func() error {
				rec, err := a.Descriptor.MarshalBinary()
				if err != nil {
					return err
				}
				copy(table[i*DescriptorSize:], rec)
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
		return table, nil
	}

	for i, a := range attrs {
		rec, err := a.Descriptor.MarshalBinary()
		if err != nil {
			return nil, err
		}
		copy(table[i*DescriptorSize:], rec)
	}
	return table, nil
}

// Unmarshal parses a serialized container into a fresh document.
//
// The decode is zero-copy: attribute buffers alias data, so the caller must
// keep data alive and unmodified for the document's lifetime. Element counts
// are taken from the meta JSON when it carries them, otherwise inferred from
// the well-known coordinate and index attributes.
//
// A failed decode returns no document: the error is the only result.
func Unmarshal(data []byte, opts ...Option) (*Document, error) {
	o := applyOptions(opts)

	doc, err := unmarshal(data)
	o.logger.LogDecode(docLen(doc), len(data), err)
	return doc, err
}

func unmarshal(data []byte) (*Document, error) {
	bufs, err := bfast.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	if len(bufs) < 2 {
		return nil, &ErrCorruptDescriptorTable{cause: fmt.Errorf("container has %d arrays, need at least 2", len(bufs))}
	}

	table := bufs[1].Data
	if len(table)%DescriptorSize != 0 {
		return nil, &ErrCorruptDescriptorTable{Length: len(table)}
	}
	n := len(table) / DescriptorSize
	if len(bufs) != 2+2*n {
		return nil, &ErrCorruptDescriptorTable{
			Length: len(table),
			cause:  fmt.Errorf("descriptor table lists %d attributes but container has %d attribute arrays", n, len(bufs)-2),
		}
	}

	attrs := make([]*Attribute, n)
	for i := range attrs {
		var desc AttributeDescriptor
		if err := desc.UnmarshalBinary(table[i*DescriptorSize : (i+1)*DescriptorSize]); err != nil {
			return nil, &ErrCorruptDescriptorTable{Length: len(table), cause: err}
		}
		a, err := NewAttribute(desc, bufs[2+2*i].Data)
		if err != nil {
			return nil, err
		}
		if index := bufs[3+2*i].Data; len(index) > 0 {
			a.SetIndex(index)
		}
		attrs[i] = a
	}

	info, ok := parseMeta(bufs[0].Data)
	if !ok {
		info = inferCounts(attrs)
	}

	doc := NewDocument(info.VertexCount, info.FaceCount, info.CornerCount, info.PolygonSize)
	doc.SetMeta(bufs[0].Data)
	for _, a := range attrs {
		if err := doc.Add(a); err != nil {
			return nil, err
		}
	}
	return doc, nil
}

// inferCounts recovers element counts from well-known attributes when the
// meta JSON carries none: vertices from the primary coordinate channel,
// corners from the primary corner index channel, faces by dividing corners by
// the polygon size. Triangles are assumed when nothing states otherwise.
func inferCounts(attrs []*Attribute) MetaInfo {
	info := MetaInfo{PolygonSize: 3}
	for _, a := range attrs {
		desc := a.Descriptor
		if desc.AttributeTypeIndex != 0 {
			continue
		}
		switch {
		case desc.Association == AssociationVertex && desc.AttributeType == AttributeTypeCoordinate:
			info.VertexCount = a.Count()
		case desc.Association == AssociationCorner && desc.AttributeType == AttributeTypeIndex:
			info.CornerCount = a.Count()
		}
	}
	if info.PolygonSize > 0 {
		info.FaceCount = info.CornerCount / info.PolygonSize
	}
	return info
}

func docLen(d *Document) int {
	if d == nil {
		return 0
	}
	return d.Len()
}
