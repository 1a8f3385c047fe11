package g3d

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocumentCounts(t *testing.T) {
	doc := NewDocument(4, 2, 6, 3)
	assert.Equal(t, 4, doc.VertexCount())
	assert.Equal(t, 2, doc.FaceCount())
	assert.Equal(t, 6, doc.CornerCount())
	assert.Equal(t, 3, doc.PolygonSize())
	assert.Equal(t, 0, doc.Len())
}

func TestDocumentAddAttribute(t *testing.T) {
	doc := NewDocument(4, 2, 6, 3)

	a, err := doc.AddAttributeFromString("g3d:vertex:coordinate:0:float32:3", 4)
	require.NoError(t, err)
	assert.True(t, a.Owned())
	assert.Equal(t, 4, a.Count())
	assert.Equal(t, 48, a.ByteSize())

	got, ok := doc.Attribute("g3d:vertex:coordinate:0:float32:3")
	require.True(t, ok)
	assert.Same(t, a, got)

	_, err = doc.AddAttributeFromString("not a descriptor", 4)
	var malformed *ErrMalformedDescriptor
	assert.ErrorAs(t, err, &malformed)
}

func TestDocumentDuplicateAttribute(t *testing.T) {
	doc := NewDocument(4, 2, 6, 3)

	_, err := doc.AddAttributeFromString("g3d:vertex:uv:0:float32:2", 4)
	require.NoError(t, err)

	_, err = doc.AddAttributeFromString("g3d:vertex:uv:0:float32:2", 4)
	var dup *ErrDuplicateAttribute
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "g3d:vertex:uv:0:float32:2", dup.Key)
	assert.Equal(t, 1, doc.Len())

	// A different channel index of the same role is a distinct key.
	_, err = doc.AddAttributeFromString("g3d:vertex:uv:1:float32:2", 4)
	require.NoError(t, err)
	assert.Equal(t, 2, doc.Len())
}

func TestDocumentInsertionOrder(t *testing.T) {
	doc := NewDocument(4, 2, 6, 3)

	_, err := doc.AddVertices(make([]float32, 12))
	require.NoError(t, err)
	_, err = doc.AddIndices(make([]int32, 6))
	require.NoError(t, err)
	_, err = doc.AddUVs(0, make([]float32, 8))
	require.NoError(t, err)

	assert.Equal(t, []string{
		"g3d:vertex:coordinate:0:float32:3",
		"g3d:corner:index:0:int32:1",
		"g3d:vertex:uv:0:float32:2",
	}, doc.Keys())

	attrs := doc.Attributes()
	require.Len(t, attrs, 3)
	assert.Equal(t, "g3d:corner:index:0:int32:1", attrs[1].Key())
}

func TestDocumentConvenienceKeys(t *testing.T) {
	doc := NewDocument(4, 2, 6, 3)

	tests := []struct {
		name string
		add  func() (*Attribute, error)
		key  string
	}{
		{"Vertices", func() (*Attribute, error) { return doc.AddVertices(make([]float32, 12)) }, "g3d:vertex:coordinate:0:float32:3"},
		{"Vertices4", func() (*Attribute, error) { return doc.AddVertices4(make([]float32, 16)) }, "g3d:vertex:coordinate:0:float32:4"},
		{"Indices", func() (*Attribute, error) { return doc.AddIndices(make([]int32, 6)) }, "g3d:corner:index:0:int32:1"},
		{"UV1", func() (*Attribute, error) { return doc.AddUVs(1, make([]float32, 8)) }, "g3d:vertex:uv:1:float32:2"},
		{"Normals", func() (*Attribute, error) { return doc.AddVertexNormals(make([]float32, 12)) }, "g3d:vertex:normal:0:float32:3"},
		{"MaterialIDs", func() (*Attribute, error) { return doc.AddMaterialIDs(make([]int32, 2)) }, "g3d:face:materialid:0:int32:1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := tt.add()
			require.NoError(t, err)
			assert.Equal(t, tt.key, a.Key())
		})
	}

	// Vertices and Vertices4 differ only in arity but are distinct keys, so
	// both may coexist.
	assert.Equal(t, len(tests), doc.Len())
}

func TestDocumentAddOwnedCopies(t *testing.T) {
	doc := NewDocument(4, 2, 6, 3)

	src := []float32{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}
	a, err := doc.AddVertices(src)
	require.NoError(t, err)

	src[0] = 99
	assert.Equal(t, float32(1), DataAs[float32](a)[0], "owned attribute must not alias the source")
}

func TestDocumentAddBorrowedAliases(t *testing.T) {
	doc := NewDocument(4, 2, 6, 3)

	desc, err := ParseDescriptor("g3d:corner:index:0:int32:1")
	require.NoError(t, err)

	buf := make([]byte, 6*4)
	a, err := doc.AddBorrowed(desc, buf)
	require.NoError(t, err)
	assert.False(t, a.Owned())

	buf[0] = 7
	assert.Equal(t, int32(7), DataAs[int32](a)[0])
}

func TestDocumentAddMapChannel(t *testing.T) {
	doc := NewDocument(4, 2, 6, 3)

	// 3 pooled xyz triples, one index per corner.
	values := make([]float32, 9)
	indices := make([]int32, 6)
	require.NoError(t, doc.AddMapChannel(1, values, indices))

	data, index, ok := doc.MapChannel(1)
	require.True(t, ok)
	assert.Equal(t, "g3d:none:mapchannel_data:1:float32:3", data.Key())
	assert.Equal(t, "g3d:corner:mapchannel_index:1:int32:1", index.Key())
	assert.Equal(t, 3, data.Count())
	assert.Equal(t, 6, index.Count())

	_, _, ok = doc.MapChannel(2)
	assert.False(t, ok)
}

func TestDocumentAddMapChannelAtomic(t *testing.T) {
	t.Run("DataHalfCollides", func(t *testing.T) {
		doc := NewDocument(4, 2, 6, 3)
		_, err := doc.AddAttributeFromString("g3d:none:mapchannel_data:1:float32:3", 3)
		require.NoError(t, err)

		err = doc.AddMapChannel(1, make([]float32, 9), make([]int32, 6))
		var dup *ErrDuplicateAttribute
		require.ErrorAs(t, err, &dup)

		// The index half must not have been inserted.
		_, ok := doc.Attribute("g3d:corner:mapchannel_index:1:int32:1")
		assert.False(t, ok)
		assert.Equal(t, 1, doc.Len())
	})

	t.Run("IndexHalfCollides", func(t *testing.T) {
		doc := NewDocument(4, 2, 6, 3)
		_, err := doc.AddAttributeFromString("g3d:corner:mapchannel_index:1:int32:1", 6)
		require.NoError(t, err)

		err = doc.AddMapChannel(1, make([]float32, 9), make([]int32, 6))
		var dup *ErrDuplicateAttribute
		require.ErrorAs(t, err, &dup)

		// The data half must have been rolled back.
		_, ok := doc.Attribute("g3d:none:mapchannel_data:1:float32:3")
		assert.False(t, ok)
		assert.Equal(t, 1, doc.Len())
	})
}

func TestDocumentRemove(t *testing.T) {
	doc := NewDocument(4, 2, 6, 3)

	_, err := doc.AddVertices(make([]float32, 12))
	require.NoError(t, err)
	_, err = doc.AddIndices(make([]int32, 6))
	require.NoError(t, err)

	assert.True(t, doc.Remove("g3d:vertex:coordinate:0:float32:3"))
	assert.False(t, doc.Remove("g3d:vertex:coordinate:0:float32:3"))
	assert.Equal(t, []string{"g3d:corner:index:0:int32:1"}, doc.Keys())
}

func TestDocumentFind(t *testing.T) {
	doc := NewDocument(4, 2, 6, 3)

	_, err := doc.AddUVs(0, make([]float32, 8))
	require.NoError(t, err)
	_, err = doc.AddUVs(3, make([]float32, 8))
	require.NoError(t, err)

	a, ok := doc.Find(AssociationVertex, AttributeTypeUV, 3)
	require.True(t, ok)
	assert.Equal(t, "g3d:vertex:uv:3:float32:2", a.Key())

	_, ok = doc.Find(AssociationVertex, AttributeTypeUV, 2)
	assert.False(t, ok)
}
