package inputs

import (
	"context"

	"github.com/goliatone/go-formext/pkg/model"
)

// numericView renders a text field wrapped in a spinner. Bounds and step
// come from the field options ("min", "max", "step") over the configured
// defaults and are handed to the client as data attributes.
func numericView(_ context.Context, field model.Field, data InputData) (map[string]any, error) {
	defaults := data.Config.Numeric
	attrs := controlAttrs(field, "text", fieldValue(field), "form-control", "numeric", "spinner-input")
	for _, bound := range []struct {
		key string
		def *float64
	}{
		{"min", defaults.Min},
		{"max", defaults.Max},
		{"step", defaults.Step},
	} {
		if value, ok := optionNumber(field, bound.key); ok {
			attrs.SetData(bound.key, value)
			continue
		}
		attrs.SetData(bound.key, number(bound.def))
	}
	attrs.Merge(field.HTML)

	return map[string]any{
		"attrs":     attrs.String(),
		"up_icon":   optionString(field, "up_icon", defaults.UpIcon),
		"down_icon": optionString(field, "down_icon", defaults.DownIcon),
	}, nil
}
