package g3d

// AttributeType identifies the semantic role an attribute plays when a reader
// maps channels back onto mesh concepts (positions, indices, UVs, ...). The
// roles map roughly to FBX layer elements and 3ds Max map channels.
//
// AttributeTypeCustom is the escape hatch for user data that has no defined
// role; readers must preserve such channels without interpreting them.
//
// The numeric values are part of the wire format. Do not reorder.
type AttributeType int32

const (
	AttributeTypeCustom AttributeType = iota
	AttributeTypeCoordinate
	AttributeTypeIndex
	AttributeTypeFaceIndex
	AttributeTypeFaceSize
	AttributeTypeNormal
	AttributeTypeBinormal
	AttributeTypeTangent
	AttributeTypeMaterialID
	AttributeTypePolygroup
	AttributeTypeUV
	AttributeTypeColor
	AttributeTypeSmoothing
	AttributeTypeCrease
	AttributeTypeHole
	AttributeTypeInvisibility
	AttributeTypeSelection
	AttributeTypePerVertex
	AttributeTypeMapChannelData
	AttributeTypeMapChannelIndex

	// AttributeTypeInvalid marks unrecognized input; never a legal stored value.
	AttributeTypeInvalid
)

var attributeTypeNames = [...]string{
	AttributeTypeCustom:          "custom",
	AttributeTypeCoordinate:      "coordinate",
	AttributeTypeIndex:           "index",
	AttributeTypeFaceIndex:       "faceindex",
	AttributeTypeFaceSize:        "facesize",
	AttributeTypeNormal:          "normal",
	AttributeTypeBinormal:        "binormal",
	AttributeTypeTangent:         "tangent",
	AttributeTypeMaterialID:      "materialid",
	AttributeTypePolygroup:       "polygroup",
	AttributeTypeUV:              "uv",
	AttributeTypeColor:           "color",
	AttributeTypeSmoothing:       "smoothing",
	AttributeTypeCrease:          "crease",
	AttributeTypeHole:            "hole",
	AttributeTypeInvisibility:    "invisibility",
	AttributeTypeSelection:       "selection",
	AttributeTypePerVertex:       "pervertex",
	AttributeTypeMapChannelData:  "mapchannel_data",
	AttributeTypeMapChannelIndex: "mapchannel_index",
}

var attributeTypesByName = func() map[string]AttributeType {
	m := make(map[string]AttributeType, len(attributeTypeNames))
	for t, name := range attributeTypeNames {
		m[name] = AttributeType(t)
	}
	return m
}()

// Valid reports whether t is one of the defined roles (excluding the
// AttributeTypeInvalid sentinel).
func (t AttributeType) Valid() bool {
	return t >= 0 && t < AttributeTypeInvalid
}

// String returns the canonical name used in descriptor strings.
func (t AttributeType) String() string {
	if !t.Valid() {
		return "invalid"
	}
	return attributeTypeNames[t]
}

// ParseAttributeType resolves a canonical attribute role name.
func ParseAttributeType(s string) (AttributeType, error) {
	t, ok := attributeTypesByName[s]
	if !ok {
		return AttributeTypeInvalid, &ErrUnknownName{Kind: "attribute type", Name: s}
	}
	return t, nil
}
