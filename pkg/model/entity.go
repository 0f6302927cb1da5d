package model

import "strings"

// Entity is a plain Record implementation for hosts that do not have their
// own record types (and for tests). Empty names/titles are treated as absent.
type Entity struct {
	ID        any    `json:"id" yaml:"id"`
	NameText  string `json:"name,omitempty" yaml:"name,omitempty"`
	TitleText string `json:"title,omitempty" yaml:"title,omitempty"`
}

var (
	_ Record = Entity{}
	_ Named  = Entity{}
	_ Titled = Entity{}
)

// RecordID implements Record.
func (e Entity) RecordID() any { return e.ID }

// Name implements Named.
func (e Entity) Name() string { return e.NameText }

// Title implements Titled.
func (e Entity) Title() string { return e.TitleText }

// String returns the record's identifier string form.
func (e Entity) String() string { return StringForm(e.ID) }

// MapObject is a map-backed Object.
type MapObject struct {
	Type   string
	Values map[string]any
}

var _ Object = MapObject{}

// NewMapObject constructs a MapObject for the named type.
func NewMapObject(typeName string, values map[string]any) MapObject {
	return MapObject{Type: strings.TrimSpace(typeName), Values: values}
}

// TypeName implements Object.
func (o MapObject) TypeName() string { return o.Type }

// Attribute implements Object.
func (o MapObject) Attribute(name string) (any, bool) {
	if o.Values == nil {
		return nil, false
	}
	value, ok := o.Values[name]
	return value, ok
}

// DisplayName returns the first non-empty of the record's name, title and
// string form. This is the text option collections show for records.
func DisplayName(record Record) string {
	if record == nil {
		return ""
	}
	if named, ok := record.(Named); ok {
		if name := strings.TrimSpace(named.Name()); name != "" {
			return named.Name()
		}
	}
	if titled, ok := record.(Titled); ok {
		if title := strings.TrimSpace(titled.Title()); title != "" {
			return titled.Title()
		}
	}
	return StringForm(record)
}

// ResolvedText returns the record's title, then its name. Unlike
// DisplayName it does not fall back to the string form: an empty result
// means the record has nothing displayable.
func ResolvedText(record Record) string {
	if record == nil {
		return ""
	}
	if titled, ok := record.(Titled); ok {
		if title := strings.TrimSpace(titled.Title()); title != "" {
			return titled.Title()
		}
	}
	if named, ok := record.(Named); ok {
		if name := strings.TrimSpace(named.Name()); name != "" {
			return named.Name()
		}
	}
	return ""
}
