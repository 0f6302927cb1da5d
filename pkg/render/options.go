package render

import theme "github.com/goliatone/go-theme"

// RenderOptions describe per-request data that inputs use to customise their
// output without mutating the renderer configuration.
type RenderOptions struct {
	// Locale is forwarded to the Translator.
	Locale string
	// Translator resolves localized strings such as the selectize "add item"
	// label. When nil, the fallback copy is used.
	Translator Translator
	// OnMissing customises the text returned when a translation is missing.
	OnMissing MissingTranslationHandler
	// Theme carries the resolved go-theme selection. Partials override the
	// template used for an input (keyed by the input's partial key, e.g.
	// "inputs.numeric") and AssetURL resolves stylesheet/script URLs.
	Theme *theme.RendererConfig
}

// Translate resolves key through the configured translator, falling back to
// fallback (or the key itself when fallback is empty).
func (o RenderOptions) Translate(key, fallback string) string {
	onMissing := o.OnMissing
	if onMissing == nil {
		onMissing = missingTranslationDefault
	}
	return translate(o.Locale, key, fallback, o.Translator, onMissing)
}

// ThemePartials returns the theme partial overrides, or nil.
func (o RenderOptions) ThemePartials() map[string]string {
	if o.Theme == nil {
		return nil
	}
	return o.Theme.Partials
}

// AssetURL resolves an asset key through the theme, returning the key
// unchanged when no theme resolver is configured.
func (o RenderOptions) AssetURL(key string) string {
	if o.Theme == nil || o.Theme.AssetURL == nil {
		return key
	}
	if resolved := o.Theme.AssetURL(key); resolved != "" {
		return resolved
	}
	return key
}
