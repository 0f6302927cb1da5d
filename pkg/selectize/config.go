package selectize

import (
	"strconv"
	"strings"

	internalmodel "github.com/goliatone/go-formext/internal/model"
	"github.com/goliatone/go-formext/pkg/config"
	"github.com/goliatone/go-formext/pkg/model"
)

// Per-field option keys.
const (
	OptionCreatable   = "creatable"
	OptionMulti       = "multi"
	OptionMaxItems    = "max_items"
	OptionSortField   = "sort_field"
	OptionSearchURL   = "search_url"
	OptionSearchParam = "search_param"
	OptionEscape      = "escape"
	OptionCollection  = "collection"
	OptionValue       = "value"
)

const (
	defaultSortField   = "text"
	defaultSearchParam = "q"
)

// Config is the resolved, read-only configuration of one selectize render.
// Precedence is per-field options, then the initializer defaults, then the
// built-in defaults. The explicit value override is also read from the HTML
// options when the field options do not set it.
type Config struct {
	Creatable   bool
	Multi       bool
	MaxItems    *int
	SortField   string
	SearchURL   string
	SearchParam string
	Escape      *bool
	Collection  model.Collection
	// Value overrides the object's attribute when HasValue is set.
	Value    any
	HasValue bool
}

// ResolveConfig builds the Config for field. Neither field nor defaults are
// modified.
func ResolveConfig(field model.Field, defaults config.Selectize) (Config, error) {
	cfg := Config{
		Creatable:   defaults.Creatable,
		SortField:   firstNonEmpty(defaults.SortField, defaultSortField),
		SearchParam: firstNonEmpty(defaults.SearchParam, defaultSearchParam),
	}
	if defaults.MaxItems != nil {
		v := *defaults.MaxItems
		cfg.MaxItems = &v
	}
	if defaults.Escape != nil {
		v := *defaults.Escape
		cfg.Escape = &v
	}

	if raw, ok := field.Option(OptionCreatable); ok {
		cfg.Creatable = truthy(raw)
	}
	if raw, ok := field.Option(OptionMulti); ok {
		cfg.Multi = truthy(raw)
	}
	if raw, ok := field.Option(OptionMaxItems); ok && raw != nil {
		parsed, ok := internalmodel.ToInt64(raw)
		if !ok {
			return Config{}, newInvalidOptionError(field.Attribute, OptionMaxItems)
		}
		v := int(parsed)
		cfg.MaxItems = &v
	}
	if raw, ok := stringOption(field, OptionSortField); ok {
		cfg.SortField = raw
	}
	if raw, ok := stringOption(field, OptionSearchURL); ok {
		cfg.SearchURL = raw
	}
	if raw, ok := stringOption(field, OptionSearchParam); ok {
		cfg.SearchParam = raw
	}
	if raw, ok := field.Option(OptionEscape); ok && raw != nil {
		v := truthy(raw)
		cfg.Escape = &v
	}
	if raw, ok := field.Option(OptionCollection); ok && raw != nil {
		collection, ok := model.CollectionFrom(raw)
		if !ok {
			return Config{}, newInvalidCollectionError(field.Attribute)
		}
		cfg.Collection = collection
	}

	if raw, ok := field.Option(OptionValue); ok {
		cfg.Value, cfg.HasValue = raw, true
	} else if raw, ok := field.HTML.Lookup(OptionValue); ok {
		cfg.Value, cfg.HasValue = raw, true
	}
	return cfg, nil
}

func stringOption(field model.Field, key string) (string, bool) {
	raw, ok := field.Option(key)
	if !ok || raw == nil {
		return "", false
	}
	value := strings.TrimSpace(model.StringForm(raw))
	if value == "" {
		return "", false
	}
	return value, true
}

// truthy treats every non-nil value except false (and "false"/"0" style
// strings) as true.
func truthy(value any) bool {
	switch v := value.(type) {
	case nil:
		return false
	case bool:
		return v
	case string:
		trimmed := strings.TrimSpace(v)
		if trimmed == "" {
			return false
		}
		if parsed, err := strconv.ParseBool(trimmed); err == nil {
			return parsed
		}
		return true
	default:
		return true
	}
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if strings.TrimSpace(value) != "" {
			return value
		}
	}
	return ""
}
