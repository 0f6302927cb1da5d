package inputs

import (
	"bytes"
	"context"
	"strings"

	"github.com/goliatone/go-formext/pkg/model"
)

// sliderRenderer writes a text field enhanced into a slider. A two element
// sequence value renders a range slider.
func sliderRenderer(_ context.Context, buf *bytes.Buffer, field model.Field, data InputData) error {
	cfg := data.Config.Slider
	minValue := cfg.Min
	if value, ok := optionNumber(field, "min"); ok {
		minValue = value
	}
	maxValue := cfg.Max
	if value, ok := optionNumber(field, "max"); ok {
		maxValue = value
	}
	step := cfg.Step
	if value, ok := optionNumber(field, "step"); ok {
		step = value
	}

	value := fieldValue(field)
	var sliderValue any = minValue
	var textValue any
	isRange := false
	if items, ok := model.Sequence(value); ok && len(items) == 2 {
		isRange = true
		lower, _ := toFloat(items[0])
		upper, _ := toFloat(items[1])
		sliderValue = []float64{lower, upper}
		textValue = model.StringForm(items[0]) + "," + model.StringForm(items[1])
	} else if scalar, ok := toFloat(value); ok {
		sliderValue = scalar
		textValue = value
	}

	attrs := controlAttrs(field, "text", textValue, "form-control", "slider-input")
	attrs.SetData("slider", true)
	attrs.SetData("slider-min", minValue)
	attrs.SetData("slider-max", maxValue)
	attrs.SetData("slider-step", step)
	attrs.SetData("slider-value", sliderValue)
	if isRange {
		attrs.SetData("slider-range", true)
	}
	if tooltip := optionString(field, "tooltip", cfg.Tooltip); tooltip != "" {
		attrs.SetData("slider-tooltip", tooltip)
	}
	attrs.Merge(field.HTML)

	var builder strings.Builder
	builder.WriteString(`<input`)
	attrs.WriteTo(&builder)
	builder.WriteString(`>`)
	buf.WriteString(builder.String())
	return nil
}
