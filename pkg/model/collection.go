package model

import "strings"

// CollectionKind discriminates where an input reads its local options from.
type CollectionKind int

const (
	// CollectionUnset means no collection was configured.
	CollectionUnset CollectionKind = iota
	// CollectionList holds the option items directly.
	CollectionList
	// CollectionAttribute reads the items from an attribute of the bound
	// object at render time.
	CollectionAttribute
)

// Collection is the explicit option source declared by the caller.
type Collection struct {
	kind      CollectionKind
	items     []any
	attribute string
}

// CollectionOf declares a list of option items. Items may be Options,
// {text, value} maps, Records or scalars.
func CollectionOf(items ...any) Collection {
	return Collection{kind: CollectionList, items: append([]any(nil), items...)}
}

// CollectionFromAttribute declares that the options come from the named
// attribute of the bound object.
func CollectionFromAttribute(name string) Collection {
	return Collection{kind: CollectionAttribute, attribute: strings.TrimSpace(name)}
}

// CollectionFrom converts a loosely typed option value (as found in option
// maps or config files) into a Collection: a Collection passes through, any
// list becomes CollectionList and a string names an attribute.
func CollectionFrom(value any) (Collection, bool) {
	switch v := value.(type) {
	case nil:
		return Collection{}, false
	case Collection:
		return v, v.kind != CollectionUnset
	case *Collection:
		if v == nil {
			return Collection{}, false
		}
		return *v, v.kind != CollectionUnset
	case string:
		if strings.TrimSpace(v) == "" {
			return Collection{}, false
		}
		return CollectionFromAttribute(v), true
	}
	if items, ok := Sequence(value); ok {
		return Collection{kind: CollectionList, items: items}, true
	}
	return Collection{}, false
}

// Kind reports the collection source kind.
func (c Collection) Kind() CollectionKind {
	return c.kind
}

// Items returns a copy of the declared items for list collections.
func (c Collection) Items() []any {
	if c.kind != CollectionList {
		return nil
	}
	return append([]any(nil), c.items...)
}

// Attribute returns the attribute name for attribute collections.
func (c Collection) Attribute() string {
	if c.kind != CollectionAttribute {
		return ""
	}
	return c.attribute
}

// IsSet reports whether a collection was declared.
func (c Collection) IsSet() bool {
	return c.kind != CollectionUnset
}
