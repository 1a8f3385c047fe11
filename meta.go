package g3d

import (
	"encoding/json"
)

// Version is the format version recorded in freshly written meta documents.
const Version = "0.9.0"

// Meta is the schema this package writes into the container's meta JSON
// array. The meta array itself is opaque to the format: documents decoded
// from containers keep the original bytes verbatim and re-emit them
// unchanged, so producers are free to carry additional fields.
type Meta struct {
	G3D MetaInfo `json:"g3d"`
}

// MetaInfo carries the element counts that cannot be recovered from the
// attribute buffers alone.
type MetaInfo struct {
	Version     string `json:"version,omitempty"`
	VertexCount int    `json:"vertexCount"`
	FaceCount   int    `json:"faceCount"`
	CornerCount int    `json:"cornerCount"`
	PolygonSize int    `json:"polygonSize"`
}

// Meta returns the verbatim meta JSON bytes this document was decoded from,
// or nil if the document was built locally and has none yet.
func (d *Document) Meta() []byte {
	return d.meta
}

// SetMeta replaces the meta JSON bytes emitted as container array 0. The
// contents are passed through unvalidated; readers of this package only look
// for the "g3d" object described by Meta.
func (d *Document) SetMeta(meta []byte) {
	d.meta = meta
}

// metaBytes returns the bytes to emit as container array 0: the stored meta
// verbatim when present, otherwise a fresh document synthesized from the
// counts.
func (d *Document) metaBytes() ([]byte, error) {
	if d.meta != nil {
		return d.meta, nil
	}
	return json.Marshal(Meta{G3D: MetaInfo{
		Version:     Version,
		VertexCount: d.vertexCount,
		FaceCount:   d.faceCount,
		CornerCount: d.cornerCount,
		PolygonSize: d.polygonSize,
	}})
}

// parseMeta extracts counts from a meta JSON array. It reports false when the
// bytes are not JSON or carry no g3d object, in which case the caller falls
// back to inferring counts from well-known attributes.
func parseMeta(data []byte) (MetaInfo, bool) {
	var m Meta
	if err := json.Unmarshal(data, &m); err != nil {
		return MetaInfo{}, false
	}
	if m.G3D == (MetaInfo{}) {
		return MetaInfo{}, false
	}
	return m.G3D, true
}
