package model

// Option is the uniform {text, value} pair every selectable input consumes.
// Text is always the display string; Value keeps the original identifier type
// so JSON payloads preserve numbers as numbers.
type Option struct {
	Text  string `json:"text"`
	Value any    `json:"value"`
}

// AssociationKind enumerates the association macros a bound attribute can be
// declared with. The zero value means the attribute is a plain field.
type AssociationKind string

const (
	AssociationNone      AssociationKind = ""
	AssociationBelongsTo AssociationKind = "belongsTo"
	AssociationHasOne    AssociationKind = "hasOne"
	AssociationHasMany   AssociationKind = "hasMany"
)

const (
	CardinalityOne  = "one"
	CardinalityMany = "many"
)

// Association describes the declared relationship behind a bound attribute.
// Name is the association name (e.g. "role", "tags"), RelatedType the type
// name of the records on the other side and ForeignKey the declared foreign
// key column for belongs-to associations.
type Association struct {
	Kind        AssociationKind `json:"kind"`
	Name        string          `json:"name"`
	RelatedType string          `json:"relatedType,omitempty"`
	ForeignKey  string          `json:"foreignKey,omitempty"`
}

// Valid reports whether the association carries a known kind.
func (a Association) Valid() bool {
	switch a.Kind {
	case AssociationBelongsTo, AssociationHasOne, AssociationHasMany:
		return true
	default:
		return false
	}
}

// Cardinality returns "one" for singular kinds, "many" for collection kinds
// and an empty string when the association is not valid.
func (a Association) Cardinality() string {
	return deriveCardinality(a.Kind)
}

// ForeignAttribute returns the attribute name a form submits for the
// association. See foreignAttribute for the naming rules.
func (a Association) ForeignAttribute() string {
	return foreignAttribute(a)
}
