package selectize

import (
	"strings"

	"github.com/goliatone/go-formext/pkg/model"
)

// Inspection classifies a bound attribute.
type Inspection struct {
	// Association is the reflected metadata; its Kind is AssociationNone for
	// plain attributes.
	Association model.Association
	// IsAssociation is true when the object's type declares an association
	// for the attribute.
	IsAssociation bool
	// Cardinality is model.CardinalityOne, model.CardinalityMany or empty.
	Cardinality string
	// ForeignAttribute is the attribute name to submit, empty for plain
	// attributes.
	ForeignAttribute string
}

// Inspect reflects the field's attribute through resolver. A nil resolver, a
// field without an object or an attribute the resolver does not know about
// all yield a plain (non-association) inspection.
func Inspect(field model.Field, resolver model.AssociationResolver) Inspection {
	if resolver == nil || field.Object == nil {
		return Inspection{}
	}
	attribute := strings.TrimSpace(field.Attribute)
	if attribute == "" {
		return Inspection{}
	}
	association, ok := resolver.ReflectAssociation(field.Object.TypeName(), attribute)
	if !ok || !association.Valid() {
		return Inspection{}
	}
	if strings.TrimSpace(association.Name) == "" {
		association.Name = attribute
	}
	return Inspection{
		Association:      association,
		IsAssociation:    true,
		Cardinality:      association.Cardinality(),
		ForeignAttribute: association.ForeignAttribute(),
	}
}

// SubmitAttribute returns the foreign attribute for associations and the
// field's own attribute otherwise.
func (i Inspection) SubmitAttribute(field model.Field) string {
	if i.IsAssociation && i.ForeignAttribute != "" {
		return i.ForeignAttribute
	}
	return field.Attribute
}
