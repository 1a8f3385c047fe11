package g3d

// Document is an ordered collection of uniquely keyed attributes plus the
// element-count metadata of the mesh they describe. It is the unit the
// container codec serializes.
//
// The four counts are fixed at construction. Attributes are added one at a
// time; insertion order is preserved and is the order attributes appear in
// the serialized container. Keys are canonical descriptor strings and must be
// unique.
//
// A Document is not safe for concurrent mutation. Once the build phase has
// ended, concurrent read-only access (including serialization) is safe, since
// every attribute buffer is immutable from then on.
type Document struct {
	vertexCount int
	faceCount   int
	cornerCount int
	polygonSize int

	// meta holds the verbatim meta JSON bytes (container array 0). Populated
	// on decode and passed through unchanged on encode; synthesized from the
	// counts when empty.
	meta []byte

	keys  []string
	attrs map[string]*Attribute
}

// NewDocument creates an empty document for a mesh with the given element
// counts. polygonSize is the constant number of corners per face (3 for
// triangle meshes).
func NewDocument(vertexCount, faceCount, cornerCount, polygonSize int) *Document {
	return &Document{
		vertexCount: vertexCount,
		faceCount:   faceCount,
		cornerCount: cornerCount,
		polygonSize: polygonSize,
		attrs:       make(map[string]*Attribute),
	}
}

// VertexCount returns the number of vertices.
func (d *Document) VertexCount() int { return d.vertexCount }

// FaceCount returns the number of faces.
func (d *Document) FaceCount() int { return d.faceCount }

// CornerCount returns the number of face corners (polygon vertices).
func (d *Document) CornerCount() int { return d.cornerCount }

// PolygonSize returns the constant corners-per-face count.
func (d *Document) PolygonSize() int { return d.polygonSize }

// Len returns the number of attributes.
func (d *Document) Len() int { return len(d.keys) }

// Keys returns the canonical descriptor strings in insertion order.
func (d *Document) Keys() []string {
	keys := make([]string, len(d.keys))
	copy(keys, d.keys)
	return keys
}

// Attribute returns the attribute stored under the given canonical
// descriptor string.
func (d *Document) Attribute(key string) (*Attribute, bool) {
	a, ok := d.attrs[key]
	return a, ok
}

// Attributes returns all attributes in insertion order.
func (d *Document) Attributes() []*Attribute {
	out := make([]*Attribute, 0, len(d.keys))
	for _, k := range d.keys {
		out = append(out, d.attrs[k])
	}
	return out
}

// Find returns the first attribute matching the given association, role and
// channel index, regardless of data type and arity.
func (d *Document) Find(assoc Association, attrType AttributeType, index int32) (*Attribute, bool) {
	for _, k := range d.keys {
		a := d.attrs[k]
		desc := a.Descriptor
		if desc.Association == assoc && desc.AttributeType == attrType && desc.AttributeTypeIndex == index {
			return a, true
		}
	}
	return nil, false
}

// MapChannel returns the data/index attribute pair of the map channel with
// the given id, if both halves are present.
func (d *Document) MapChannel(id int32) (data, index *Attribute, ok bool) {
	data, okData := d.Find(AssociationNone, AttributeTypeMapChannelData, id)
	index, okIndex := d.Find(AssociationCorner, AttributeTypeMapChannelIndex, id)
	if !okData || !okIndex {
		return nil, nil, false
	}
	return data, index, true
}

// Add inserts an existing attribute, keyed by its canonical descriptor
// string. It fails with *ErrDuplicateAttribute if the key is already present,
// leaving the document untouched.
func (d *Document) Add(a *Attribute) error {
	key := a.Key()
	if _, exists := d.attrs[key]; exists {
		return &ErrDuplicateAttribute{Key: key}
	}
	d.attrs[key] = a
	d.keys = append(d.keys, key)
	return nil
}

// Remove deletes the attribute stored under key and reports whether it was
// present.
func (d *Document) Remove(key string) bool {
	if _, exists := d.attrs[key]; !exists {
		return false
	}
	delete(d.attrs, key)
	for i, k := range d.keys {
		if k == key {
			d.keys = append(d.keys[:i], d.keys[i+1:]...)
			break
		}
	}
	return true
}

// AddAttribute adds an attribute owning a freshly allocated, zero-filled
// buffer of count elements. The returned attribute's buffer (or a typed view
// of it) is meant to be populated by the caller.
func (d *Document) AddAttribute(desc AttributeDescriptor, count int) (*Attribute, error) {
	if err := desc.Validate(); err != nil {
		return nil, err
	}
	a, err := newAttribute(desc, make([]byte, count*desc.ElementSize()), true)
	if err != nil {
		return nil, err
	}
	if err := d.Add(a); err != nil {
		return nil, err
	}
	return a, nil
}

// AddAttributeFromString is AddAttribute with the descriptor given in
// canonical string form.
func (d *Document) AddAttributeFromString(key string, count int) (*Attribute, error) {
	desc, err := ParseDescriptor(key)
	if err != nil {
		return nil, err
	}
	return d.AddAttribute(desc, count)
}

// AddOwned adds an attribute owning a copy of src.
func (d *Document) AddOwned(desc AttributeDescriptor, src []byte) (*Attribute, error) {
	if src == nil {
		return nil, ErrNullBuffer
	}
	buf := make([]byte, len(src))
	copy(buf, src)
	a, err := newAttribute(desc, buf, true)
	if err != nil {
		return nil, err
	}
	if err := d.Add(a); err != nil {
		return nil, err
	}
	return a, nil
}

// AddBorrowed adds an attribute referencing caller-owned storage. The caller
// must keep buf alive and stable for the document's entire lifetime; the
// document never frees or copies it.
func (d *Document) AddBorrowed(desc AttributeDescriptor, buf []byte) (*Attribute, error) {
	a, err := NewAttribute(desc, buf)
	if err != nil {
		return nil, err
	}
	if err := d.Add(a); err != nil {
		return nil, err
	}
	return a, nil
}

// AddVertices adds the vertex position channel g3d:vertex:coordinate:0:float32:3,
// copying the given xyz triples.
func (d *Document) AddVertices(positions []float32) (*Attribute, error) {
	return d.AddOwned(AttributeDescriptor{
		Association:   AssociationVertex,
		AttributeType: AttributeTypeCoordinate,
		DataType:      DataTypeFloat32,
		DataArity:     3,
	}, bytesOf(positions))
}

// AddVertices4 adds a 4-component vertex position channel
// g3d:vertex:coordinate:0:float32:4 (homogeneous coordinates).
func (d *Document) AddVertices4(positions []float32) (*Attribute, error) {
	return d.AddOwned(AttributeDescriptor{
		Association:   AssociationVertex,
		AttributeType: AttributeTypeCoordinate,
		DataType:      DataTypeFloat32,
		DataArity:     4,
	}, bytesOf(positions))
}

// AddIndices adds the corner-to-vertex index channel g3d:corner:index:0:int32:1.
func (d *Document) AddIndices(indices []int32) (*Attribute, error) {
	return d.AddOwned(AttributeDescriptor{
		Association:   AssociationCorner,
		AttributeType: AttributeTypeIndex,
		DataType:      DataTypeInt32,
		DataArity:     1,
	}, bytesOf(indices))
}

// AddUVs adds the uv channel g3d:vertex:uv:<channel>:float32:2.
func (d *Document) AddUVs(channel int32, uvs []float32) (*Attribute, error) {
	return d.AddOwned(AttributeDescriptor{
		Association:        AssociationVertex,
		AttributeType:      AttributeTypeUV,
		AttributeTypeIndex: channel,
		DataType:           DataTypeFloat32,
		DataArity:          2,
	}, bytesOf(uvs))
}

// AddVertexNormals adds the per-vertex normal channel
// g3d:vertex:normal:0:float32:3.
func (d *Document) AddVertexNormals(normals []float32) (*Attribute, error) {
	return d.AddOwned(AttributeDescriptor{
		Association:   AssociationVertex,
		AttributeType: AttributeTypeNormal,
		DataType:      DataTypeFloat32,
		DataArity:     3,
	}, bytesOf(normals))
}

// AddMaterialIDs adds the per-face material id channel
// g3d:face:materialid:0:int32:1.
func (d *Document) AddMaterialIDs(ids []int32) (*Attribute, error) {
	return d.AddOwned(AttributeDescriptor{
		Association:   AssociationFace,
		AttributeType: AttributeTypeMaterialID,
		DataType:      DataTypeInt32,
		DataArity:     1,
	}, bytesOf(ids))
}

// AddMapChannel adds the indirect-referencing attribute pair of map channel
// id: pooled xyz value triples under g3d:none:mapchannel_data:<id>:float32:3
// and per-corner indices into that pool under
// g3d:corner:mapchannel_index:<id>:int32:1.
//
// The pair is added atomically: if either insert fails, the document is left
// without both halves.
func (d *Document) AddMapChannel(id int32, values []float32, indices []int32) error {
	dataDesc := AttributeDescriptor{
		Association:        AssociationNone,
		AttributeType:      AttributeTypeMapChannelData,
		AttributeTypeIndex: id,
		DataType:           DataTypeFloat32,
		DataArity:          3,
	}
	indexDesc := AttributeDescriptor{
		Association:        AssociationCorner,
		AttributeType:      AttributeTypeMapChannelIndex,
		AttributeTypeIndex: id,
		DataType:           DataTypeInt32,
		DataArity:          1,
	}

	if _, err := d.AddOwned(dataDesc, bytesOf(values)); err != nil {
		return err
	}
	if _, err := d.AddOwned(indexDesc, bytesOf(indices)); err != nil {
		d.Remove(dataDesc.String())
		return err
	}
	return nil
}
