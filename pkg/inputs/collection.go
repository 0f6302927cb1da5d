package inputs

import (
	"bytes"
	"context"
	"html"
	"strings"

	"github.com/goliatone/go-formext/pkg/model"
	"github.com/goliatone/go-formext/pkg/render"
)

type choiceKind int

const (
	choiceCheckBox choiceKind = iota
	choiceRadio
)

func (k choiceKind) inputType() string {
	if k == choiceRadio {
		return "radio"
	}
	return "checkbox"
}

// collectionRenderer writes one check box or radio button per option. The
// options and the submitted attribute are resolved like the selectize input
// does, so associations render their related records and submit the foreign
// attribute. Check box lists start with an empty hidden value so clearing
// every box still submits the attribute.
func collectionRenderer(kind choiceKind) InputRenderer {
	return func(ctx context.Context, buf *bytes.Buffer, field model.Field, data InputData) error {
		input, err := newSelectize(field, data)
		if err != nil {
			return err
		}
		options, err := input.Collection(ctx)
		if err != nil {
			return err
		}

		attribute := input.Attribute()
		multiple := kind == choiceCheckBox
		name := render.FieldName(field.ObjectName, attribute, multiple)
		baseID := render.FieldID(field.ObjectName, attribute)
		if custom, ok := field.HTML.Lookup("id"); ok && custom != nil {
			baseID = model.StringForm(custom)
		}
		selected := selectedValues(input.Value())
		inline := optionBool(field, "inline", false)

		overrides := field.HTML.Clone()
		delete(overrides, "id")

		var builder strings.Builder
		if multiple {
			var hidden render.Attrs
			hidden.Set("type", "hidden")
			hidden.Set("name", name)
			hidden.Set("value", "")
			builder.WriteString(`<input`)
			hidden.WriteTo(&builder)
			builder.WriteString(`>`)
		}

		for _, option := range options {
			var attrs render.Attrs
			attrs.Set("type", kind.inputType())
			attrs.Set("name", name)
			id := render.FieldID(baseID, model.StringForm(option.Value))
			attrs.Set("id", id)
			attrs.Set("value", model.StringForm(option.Value))
			attrs.Set("checked", isSelected(selected, option.Value))
			attrs.Set("disabled", field.Disabled)
			if kind == choiceRadio {
				attrs.Set("required", field.Required)
			}
			attrs.Merge(overrides)

			wrapper := kind.inputType()
			if inline {
				builder.WriteString(`<label class="`)
				builder.WriteString(wrapper)
				builder.WriteString(`-inline" for="`)
			} else {
				builder.WriteString(`<div class="`)
				builder.WriteString(wrapper)
				builder.WriteString(`"><label for="`)
			}
			builder.WriteString(html.EscapeString(id))
			builder.WriteString(`"><input`)
			attrs.WriteTo(&builder)
			builder.WriteString(`> `)
			builder.WriteString(html.EscapeString(option.Text))
			builder.WriteString(`</label>`)
			if !inline {
				builder.WriteString(`</div>`)
			}
		}

		buf.WriteString(builder.String())
		return nil
	}
}

func selectedValues(value any) []any {
	if value == nil {
		return nil
	}
	if items, ok := model.Sequence(value); ok {
		return items
	}
	return []any{value}
}

func isSelected(selected []any, value any) bool {
	for _, item := range selected {
		if model.SameID(item, value) {
			return true
		}
	}
	return false
}
