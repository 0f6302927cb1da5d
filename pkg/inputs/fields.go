package inputs

import (
	"strconv"
	"strings"

	"github.com/goliatone/go-formext/pkg/model"
	"github.com/goliatone/go-formext/pkg/render"
)

// controlAttrs builds the leading attributes shared by every control: type,
// name, id and value, followed by the required/disabled flags. A nil value
// omits the value attribute.
func controlAttrs(field model.Field, inputType string, value any, classes ...string) render.Attrs {
	var attrs render.Attrs
	if inputType != "" {
		attrs.Set("type", inputType)
	}
	attrs.Set("name", render.FieldName(field.ObjectName, field.Attribute, false))
	attrs.Set("id", render.FieldID(field.ObjectName, field.Attribute))
	if value != nil {
		attrs.Set("value", model.StringForm(value))
	}
	attrs.AddClass(classes...)
	attrs.Set("required", field.Required)
	attrs.Set("disabled", field.Disabled)
	return attrs
}

// controlID returns the id the control renders with, honouring an "id"
// HTML override.
func controlID(field model.Field) string {
	if custom, ok := field.HTML.Lookup("id"); ok && custom != nil {
		return model.StringForm(custom)
	}
	return render.FieldID(field.ObjectName, field.Attribute)
}

// fieldValue returns the bound value, preferring an explicit "value" option.
func fieldValue(field model.Field) any {
	if value, ok := field.Option("value"); ok {
		return value
	}
	value, _ := field.Value()
	return value
}

// optionString reads a string option, falling back to def when unset or
// blank.
func optionString(field model.Field, key, def string) string {
	value, ok := field.Option(key)
	if !ok || value == nil {
		return def
	}
	if text := strings.TrimSpace(model.StringForm(value)); text != "" {
		return text
	}
	return def
}

// optionNumber reads a numeric option. Numeric strings are accepted so
// values coming from query strings or YAML behave like literals.
func optionNumber(field model.Field, key string) (float64, bool) {
	value, ok := field.Option(key)
	if !ok {
		return 0, false
	}
	return toFloat(value)
}

func optionBool(field model.Field, key string, def bool) bool {
	value, ok := field.Option(key)
	if !ok || value == nil {
		return def
	}
	switch v := value.(type) {
	case bool:
		return v
	case string:
		parsed, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return def
		}
		return parsed
	default:
		return def
	}
}

func toFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, false
		}
		return parsed, true
	}
	if n, ok := model.ToInt64(value); ok {
		return float64(n), true
	}
	return 0, false
}

// number returns the pointer value when set.
func number(value *float64) any {
	if value == nil {
		return nil
	}
	return *value
}
