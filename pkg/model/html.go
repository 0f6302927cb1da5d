package model

import "maps"

// HTMLOptions carries HTML attribute overrides for the rendered control.
// The "data" key holds a nested map of data attributes (keys without the
// "data-" prefix) and "class" may be a string or a list of strings.
type HTMLOptions map[string]any

// Clone returns a copy with the nested data map copied as well, so renderers
// can add attributes without touching the caller's map.
func (h HTMLOptions) Clone() HTMLOptions {
	out := make(HTMLOptions, len(h)+2)
	for key, value := range h {
		out[key] = value
	}
	if data, ok := h["data"].(map[string]any); ok {
		out["data"] = maps.Clone(data)
	}
	return out
}

// Data returns the nested data attribute map, or nil when absent.
func (h HTMLOptions) Data() map[string]any {
	if h == nil {
		return nil
	}
	switch data := h["data"].(type) {
	case map[string]any:
		return data
	case map[string]string:
		out := make(map[string]any, len(data))
		for key, value := range data {
			out[key] = value
		}
		return out
	default:
		return nil
	}
}

// Lookup returns an attribute value.
func (h HTMLOptions) Lookup(key string) (any, bool) {
	if h == nil {
		return nil, false
	}
	value, ok := h[key]
	return value, ok
}
