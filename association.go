package g3d

// Association identifies the geometric element an attribute's values repeat
// over: one value group per vertex, per face, per corner, per edge, once for
// the whole object, or no association at all (pooled data such as map channel
// values).
//
// The numeric values are part of the wire format. Do not reorder.
type Association int32

const (
	AssociationVertex Association = iota
	AssociationFace
	AssociationCorner
	AssociationEdge
	AssociationObject
	AssociationNone

	// AssociationInvalid marks unrecognized input; never a legal stored value.
	AssociationInvalid
)

var associationNames = [...]string{
	AssociationVertex: "vertex",
	AssociationFace:   "face",
	AssociationCorner: "corner",
	AssociationEdge:   "edge",
	AssociationObject: "object",
	AssociationNone:   "none",
}

var associationsByName = func() map[string]Association {
	m := make(map[string]Association, len(associationNames))
	for a, name := range associationNames {
		m[name] = Association(a)
	}
	return m
}()

// Valid reports whether a is one of the defined associations (excluding the
// AssociationInvalid sentinel).
func (a Association) Valid() bool {
	return a >= 0 && a < AssociationInvalid
}

// String returns the canonical name used in descriptor strings.
func (a Association) String() string {
	if !a.Valid() {
		return "invalid"
	}
	return associationNames[a]
}

// ParseAssociation resolves a canonical association name.
func ParseAssociation(s string) (Association, error) {
	a, ok := associationsByName[s]
	if !ok {
		return AssociationInvalid, &ErrUnknownName{Kind: "association", Name: s}
	}
	return a, nil
}
