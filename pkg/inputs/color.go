package inputs

import (
	"context"
	"regexp"
	"strings"

	"github.com/goliatone/go-formext/pkg/model"
)

var swatchColor = regexp.MustCompile(`^(#[0-9a-fA-F]{3,8}|(rgb|rgba|hsl|hsla)\([0-9.,%\s]+\)|[a-zA-Z]+)$`)

func colorView(_ context.Context, field model.Field, data InputData) (map[string]any, error) {
	value := fieldValue(field)
	attrs := controlAttrs(field, "text", value, "form-control", "color-picker-input")
	attrs.SetData("colorpicker", true)
	attrs.SetData("format", optionString(field, "format", data.Config.Color.Format))
	attrs.Merge(field.HTML)

	swatch := strings.TrimSpace(model.StringForm(value))
	if !swatchColor.MatchString(swatch) {
		swatch = ""
	}
	return map[string]any{
		"attrs":  attrs.String(),
		"swatch": swatch,
	}, nil
}
