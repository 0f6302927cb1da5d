package render

import (
	"fmt"
	"reflect"
	"strings"
)

// TemplateI18nConfig configures template-level translation helpers.
type TemplateI18nConfig struct {
	// LocaleKey selects the key used to infer the locale when templates pass
	// a map or struct instead of a raw locale string. Defaults to "locale".
	LocaleKey string
	// FuncName customises the translator helper name (defaults to "translate").
	FuncName string
	// Prefix namespaces every key looked up from templates
	// (e.g. "formext" turns "file.remove" into "formext.file.remove").
	Prefix string
	// OnMissing controls the string returned when a translation is missing.
	OnMissing MissingTranslationHandler
}

// TemplateI18nFuncs returns helpers suitable for the gotemplate engine
// (gotemplate.WithTemplateFunc). The main helper signature is:
//
//	translate(localeSrc, key, fallback) string
//
// localeSrc can be a locale string or a map/struct holding the locale under
// cfg.LocaleKey.
func TemplateI18nFuncs(t Translator, cfg TemplateI18nConfig) map[string]any {
	localeKey := strings.TrimSpace(cfg.LocaleKey)
	if localeKey == "" {
		localeKey = "locale"
	}

	translateName := strings.TrimSpace(cfg.FuncName)
	if translateName == "" {
		translateName = "translate"
	}

	onMissing := cfg.OnMissing
	if onMissing == nil {
		onMissing = missingTranslationDefault
	}
	prefix := cfg.Prefix

	return map[string]any{
		translateName: func(localeSrc any, key string, fallback ...string) string {
			key = strings.TrimSpace(key)
			if key == "" {
				return ""
			}
			def := ""
			if len(fallback) > 0 {
				def = fallback[0]
			}
			return translate(resolveLocale(localeSrc, localeKey), TranslationKey(prefix, key), def, t, onMissing)
		},
		"current_locale": func(localeSrc any) string {
			return resolveLocale(localeSrc, localeKey)
		},
	}
}

func resolveLocale(src any, key string) string {
	if src == nil {
		return ""
	}

	if str, ok := src.(string); ok {
		return str
	}

	switch data := src.(type) {
	case map[string]any:
		if v, ok := data[key]; ok {
			if str, ok := v.(string); ok {
				return str
			}
			return strings.TrimSpace(fmt.Sprint(v))
		}
		return ""
	case map[string]string:
		return data[key]
	}

	value := reflect.ValueOf(src)
	for value.IsValid() && value.Kind() == reflect.Pointer {
		if value.IsNil() {
			return ""
		}
		value = value.Elem()
	}

	if value.Kind() == reflect.Struct {
		field := value.FieldByNameFunc(func(name string) bool {
			return strings.EqualFold(name, key)
		})
		if field.IsValid() && field.Kind() == reflect.String {
			return field.String()
		}
	}
	return ""
}
