// Package g3d implements the G3D format: a simple, generic, self-describing
// binary container for 3D mesh geometry.
//
// A G3D document is a collection of attribute channels. Each channel carries
// a descriptor stating what the values mean (coordinate, index, normal, uv,
// material id, ...), which geometric element they repeat over (vertex, face,
// corner, edge, whole object, or none), their primitive type, and their
// arity (values per element). Descriptors have a canonical URN-like string
// form that doubles as the channel's unique key:
//
//	g3d:<association>:<attribute_type>:<attribute_type_index>:<data_type>:<data_arity>
//
// Serialization uses the BFAST framing from the bfast subpackage: array 0 is
// a JSON meta document, array 1 the table of fixed 32-byte descriptor
// records, followed by a data/index array pair per attribute. Readers and
// writers in any language can process the container with nothing more than
// the layout facts above; no per-format parsing beyond the descriptor table
// is required.
//
// # Quick Start
//
// Build and serialize a triangle mesh:
//
//	doc := g3d.NewDocument(4, 2, 6, 3)
//	doc.AddVertices([]float32{0, 0, 0, 1, 0, 0, 0, 1, 0, 1, 1, 0})
//	doc.AddIndices([]int32{0, 1, 2, 1, 3, 2})
//	doc.AddUVs(0, uvs)
//
//	data, err := doc.Marshal()
//
// Read it back:
//
//	doc, err := g3d.Unmarshal(data)
//	pos, _ := doc.Attribute("g3d:vertex:coordinate:0:float32:3")
//	xyz := g3d.DataAs[float32](pos)
//
// Unmarshal is zero-copy: decoded attribute buffers alias the input slice.
//
// # Map Channels
//
// Tools that decouple UV/normal/color data from vertex identity (3ds Max map
// channels, FBX indirect referencing) are served by attribute pairs: a pooled
// data channel with no association and a per-corner index channel into the
// pool, both sharing a channel id. AddMapChannel adds such a pair atomically.
//
// # Concurrency
//
// Documents are built single-threaded; once built, concurrent read-only use
// (including serialization) is safe.
package g3d
