package inputs

import (
	"context"
	"time"

	"github.com/goliatone/go-formext/pkg/model"
)

// Date-time picker modes selected with the "mode" option.
const (
	ModeDateTime = "datetime"
	ModeDate     = "date"
	ModeTime     = "time"
)

func dateTimeView(_ context.Context, field model.Field, data InputData) (map[string]any, error) {
	cfg := data.Config.DateTime
	mode := optionString(field, "mode", ModeDateTime)
	layout, format, icon := cfg.Layout, cfg.Format, "calendar"
	switch mode {
	case ModeDate:
		layout, format = cfg.DateLayout, cfg.DateFormat
	case ModeTime:
		layout, format, icon = cfg.TimeLayout, cfg.TimeFormat, "clock-o"
	default:
		mode = ModeDateTime
	}
	layout = optionString(field, "layout", layout)
	format = optionString(field, "format", format)

	attrs := controlAttrs(field, "text", formatTime(fieldValue(field), layout), "form-control", "date-time-picker-input")
	attrs.SetData("date-time-picker", mode)
	if format != "" {
		attrs.SetData("format", format)
	}
	if locale := data.Options.Locale; locale != "" {
		attrs.SetData("locale", locale)
	}
	attrs.Merge(field.HTML)

	return map[string]any{
		"attrs": attrs.String(),
		"icon":  icon,
	}, nil
}

// formatTime renders time values with layout. Other values pass through so
// hosts can hand over pre-formatted strings.
func formatTime(value any, layout string) any {
	if layout == "" {
		layout = time.RFC3339
	}
	switch v := value.(type) {
	case time.Time:
		if v.IsZero() {
			return nil
		}
		return v.Format(layout)
	case *time.Time:
		if v == nil || v.IsZero() {
			return nil
		}
		return v.Format(layout)
	default:
		return value
	}
}
