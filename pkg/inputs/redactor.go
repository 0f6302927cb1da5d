package inputs

import (
	"context"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-formext/pkg/config"
	"github.com/goliatone/go-formext/pkg/model"
)

var (
	ugcPolicyOnce    sync.Once
	ugcPolicy        *bluemonday.Policy
	strictPolicyOnce sync.Once
	strictPolicy     *bluemonday.Policy
)

// redactorView renders a textarea enhanced into a rich-text editor. The
// stored HTML is sanitised before it is embedded.
func redactorView(_ context.Context, field model.Field, data InputData) (map[string]any, error) {
	cfg := data.Config.Redactor
	attrs := controlAttrs(field, "", nil, "form-control", "redactor-input")
	attrs.SetData("redactor", true)
	minHeight := cfg.MinHeight
	if value, ok := optionNumber(field, "min_height"); ok {
		minHeight = int(value)
	}
	if minHeight > 0 {
		attrs.SetData("min-height", minHeight)
	}
	buttons := cfg.Buttons
	if value, ok := field.Option("buttons"); ok {
		if items, ok := model.Sequence(value); ok {
			buttons = make([]string, 0, len(items))
			for _, item := range items {
				buttons = append(buttons, model.StringForm(item))
			}
		}
	}
	if len(buttons) > 0 {
		attrs.SetData("buttons", buttons)
	}
	if locale := data.Options.Locale; locale != "" {
		attrs.SetData("lang", locale)
	}
	attrs.Merge(field.HTML)

	policy := optionString(field, "policy", cfg.Policy)
	return map[string]any{
		"attrs":   attrs.String(),
		"content": sanitizeContent(model.StringForm(fieldValue(field)), policy),
	}, nil
}

// sanitizeContent cleans stored rich text with the named policy. Unknown
// policies fall back to the user generated content policy.
func sanitizeContent(raw, policy string) string {
	if strings.TrimSpace(raw) == "" {
		return ""
	}
	if policy == config.PolicyStrict {
		return strictSanitizer().Sanitize(raw)
	}
	return ugcSanitizer().Sanitize(raw)
}

func ugcSanitizer() *bluemonday.Policy {
	ugcPolicyOnce.Do(func() {
		ugcPolicy = bluemonday.UGCPolicy()
	})
	return ugcPolicy
}

func strictSanitizer() *bluemonday.Policy {
	strictPolicyOnce.Do(func() {
		strictPolicy = bluemonday.StrictPolicy()
	})
	return strictPolicy
}
