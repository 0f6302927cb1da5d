package selectize

import (
	"bytes"
	"slices"
	"strings"

	"github.com/goliatone/go-formext/pkg/model"
	"github.com/goliatone/go-formext/pkg/render"
)

// Markup is everything the emitter needs to write the hidden input.
type Markup struct {
	Name     string
	ID       string
	Multiple bool
	// Value is written to the value attribute in single mode.
	Value    any
	Disabled bool

	Serialized  any
	Creatable   bool
	Collection  []model.Option
	MaxItems    *int
	SortField   string
	SearchURL   string
	SearchParam string
	Escape      *bool
	// AddLabel is the localized "add item" label, written when Creatable.
	AddLabel string

	// HTML carries caller attribute overrides (class, custom data keys, ...).
	HTML model.HTMLOptions
}

// builtinData lists the data attributes owned by the emitter, in output
// order.
var builtinData = []string{
	"selectize",
	"value",
	"creatable",
	"collection",
	"max-items",
	"sort-field",
	"search-url",
	"search-param",
	"escape",
}

// Emit writes a single hidden input for m into buf. Nil optional values are
// omitted from the data attributes.
func Emit(buf *bytes.Buffer, m Markup) {
	var attrs render.Attrs
	attrs.Set("type", "hidden")
	attrs.Set("name", m.Name)
	attrs.Set("id", m.ID)
	if !m.Multiple && m.Value != nil {
		attrs.Set("value", model.StringForm(m.Value))
	}
	if m.Multiple {
		attrs.Set("multiple", true)
	}
	if m.Disabled {
		attrs.Set("disabled", true)
	}

	overrides := m.HTML.Clone()
	hostData := overrides.Data()
	delete(overrides, "data")
	delete(overrides, "value")
	delete(overrides, "id")
	attrs.Merge(overrides)

	attrs.SetData("selectize", true)
	attrs.SetData("value", m.Serialized)
	attrs.SetData("creatable", m.Creatable)
	if m.Collection != nil {
		attrs.SetData("collection", m.Collection)
	}
	if m.MaxItems != nil {
		attrs.SetData("max-items", *m.MaxItems)
	}
	attrs.SetData("sort-field", optionalString(m.SortField))
	attrs.SetData("search-url", optionalString(m.SearchURL))
	attrs.SetData("search-param", optionalString(m.SearchParam))
	if m.Escape != nil {
		attrs.SetData("escape", *m.Escape)
	}

	keys := make([]string, 0, len(hostData))
	for key := range hostData {
		keys = append(keys, key)
	}
	slices.Sort(keys)
	for _, key := range keys {
		name := render.DataKey(key)
		if slices.Contains(builtinData, name) {
			continue
		}
		attrs.SetData(name, hostData[key])
	}

	if m.Creatable {
		attrs.Set("add-translation", m.AddLabel)
	}

	buf.WriteString("<input")
	buf.WriteString(attrs.String())
	buf.WriteString(">")
}

func optionalString(value string) any {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	return value
}
