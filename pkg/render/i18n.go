package render

import (
	"errors"
	"strings"
)

// Translator resolves localized strings. It mirrors the shape of
// go-i18n style translators so hosts can pass their existing instance.
type Translator interface {
	Translate(locale, key string, args ...any) (string, error)
}

// TranslatorFunc adapts a plain function to Translator.
type TranslatorFunc func(locale, key string, args ...any) (string, error)

// Translate implements Translator.
func (f TranslatorFunc) Translate(locale, key string, args ...any) (string, error) {
	return f(locale, key, args...)
}

// MissingTranslationHandler decides the text used when a key cannot be
// translated. params carries a {"default": fallback} map as first element.
type MissingTranslationHandler func(locale, key string, params []any, err error) string

// ErrMissingTranslator is passed to MissingTranslationHandler when no
// Translator is configured.
var ErrMissingTranslator = errors.New("render: translator not configured")

func missingTranslationDefault(_ string, key string, params []any, _ error) string {
	if fallback := fallbackFromParams(params); strings.TrimSpace(fallback) != "" {
		return fallback
	}
	return key
}

func fallbackFromParams(params []any) string {
	for _, param := range params {
		values, ok := param.(map[string]any)
		if !ok {
			continue
		}
		if fallback, ok := values["default"].(string); ok {
			return fallback
		}
	}
	return ""
}

func translate(locale, key, fallback string, t Translator, onMissing MissingTranslationHandler) string {
	key = strings.TrimSpace(key)
	if key == "" {
		return fallback
	}

	if t == nil {
		if onMissing != nil {
			return onMissing(locale, key, []any{map[string]any{"default": fallback}}, ErrMissingTranslator)
		}
		if strings.TrimSpace(fallback) != "" {
			return fallback
		}
		return key
	}

	result, err := t.Translate(locale, key)
	if err == nil && strings.TrimSpace(result) != "" {
		return result
	}

	if onMissing != nil {
		return onMissing(locale, key, []any{map[string]any{"default": fallback}}, err)
	}
	if strings.TrimSpace(fallback) != "" {
		return fallback
	}
	return key
}

// TranslationKey joins a namespace prefix with an input-scoped key
// ("formext" + "selectize.add" -> "formext.selectize.add").
func TranslationKey(prefix, key string) string {
	prefix = strings.Trim(strings.TrimSpace(prefix), ".")
	key = strings.Trim(strings.TrimSpace(key), ".")
	if prefix == "" {
		return key
	}
	if key == "" {
		return prefix
	}
	return prefix + "." + key
}
