package model

import (
	"context"

	internalmodel "github.com/goliatone/go-formext/internal/model"
)

// Option re-exports the internal {text, value} pair.
type Option = internalmodel.Option

// AssociationKind re-exports the internal association macro enumeration.
type AssociationKind = internalmodel.AssociationKind

// Association re-exports the internal association metadata.
type Association = internalmodel.Association

const (
	AssociationNone      = internalmodel.AssociationNone
	AssociationBelongsTo = internalmodel.AssociationBelongsTo
	AssociationHasOne    = internalmodel.AssociationHasOne
	AssociationHasMany   = internalmodel.AssociationHasMany

	CardinalityOne  = internalmodel.CardinalityOne
	CardinalityMany = internalmodel.CardinalityMany
)

// Object is the model-like value a form is bound to.
type Object interface {
	// TypeName identifies the object's type for association lookups.
	TypeName() string
	// Attribute returns the current value of the named attribute. The boolean
	// is false when the object does not expose the attribute.
	Attribute(name string) (any, bool)
}

// Record is an associated-record-like value: anything with an identifier.
type Record interface {
	RecordID() any
}

// Named records expose a display name.
type Named interface {
	Name() string
}

// Titled records expose a display title.
type Titled interface {
	Title() string
}

// AssociationResolver exposes association metadata for a type's attribute.
// Implementations return false when the attribute is not an association.
type AssociationResolver interface {
	ReflectAssociation(typeName, attribute string) (Association, bool)
}

// RecordSource loads related records. Related returns the records currently
// associated with object under the association name (zero or one record for
// singular associations). All returns every record of the related type and
// backs the default option collection of association inputs.
type RecordSource interface {
	Related(ctx context.Context, object Object, association Association) ([]Record, error)
	All(ctx context.Context, relatedType string) ([]Record, error)
}

// Field is the host form context for a single input render: the bound
// object and attribute plus per-field options and HTML attribute overrides.
type Field struct {
	Object     Object
	ObjectName string
	Attribute  string
	Label      string
	Required   bool
	Disabled   bool
	Options    map[string]any
	HTML       HTMLOptions
}

// Value returns the bound attribute's current value.
func (f Field) Value() (any, bool) {
	if f.Object == nil || f.Attribute == "" {
		return nil, false
	}
	return f.Object.Attribute(f.Attribute)
}

// Option returns a per-field option.
func (f Field) Option(key string) (any, bool) {
	if f.Options == nil {
		return nil, false
	}
	value, ok := f.Options[key]
	return value, ok
}

// LabelText returns the configured label or a humanised attribute name.
func (f Field) LabelText() string {
	if f.Label != "" {
		return f.Label
	}
	return internalmodel.Humanize(f.Attribute)
}

// StringForm renders a value for display.
func StringForm(value any) string {
	return internalmodel.StringForm(value)
}

// SameID compares identifiers with numeric coercion.
func SameID(a, b any) bool {
	return internalmodel.SameID(a, b)
}

// Sequence reports whether value is a list and returns a copy of its items.
func Sequence(value any) ([]any, bool) {
	return internalmodel.Sequence(value)
}

// NormalizeAssociationKind parses loosely formatted association macros.
func NormalizeAssociationKind(raw string) (AssociationKind, bool) {
	return internalmodel.NormalizeAssociationKind(raw)
}

// ToInt64 coerces integers, integral floats and numeric strings.
func ToInt64(value any) (int64, bool) {
	return internalmodel.ToInt64(value)
}
