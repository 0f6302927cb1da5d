package selectize

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/goliatone/go-formext/pkg/model"
)

// NormalizeOptions converts a collection into {text, value} pairs, keeping
// the source order. Items are handled as follows:
//
//	model.Option / {text, value} map -> passed through
//	model.Record                     -> {name|title|string form, RecordID()}
//	scalar                           -> {string form, scalar}
//
// A map missing either key, or an item without a value, fails with an error
// matching ErrInvalidOptionShape. The input slice is never modified.
func NormalizeOptions(items []any) ([]model.Option, error) {
	out := make([]model.Option, 0, len(items))
	for index, item := range items {
		option, ok := NormalizeOption(item)
		if !ok {
			return nil, newInvalidOptionShapeError(index)
		}
		out = append(out, option)
	}
	return out, nil
}

// NormalizeOption normalises a single collection item. The boolean is false
// when the item is pair-shaped but incomplete.
func NormalizeOption(item any) (model.Option, bool) {
	switch v := item.(type) {
	case nil:
		return model.Option{}, false
	case model.Option:
		return v, v.Value != nil
	case *model.Option:
		if v == nil || v.Value == nil {
			return model.Option{}, false
		}
		return *v, true
	case map[string]any:
		return pairFromMap(v)
	case map[string]string:
		text, hasText := v["text"]
		value, hasValue := v["value"]
		if !hasText || !hasValue {
			return model.Option{}, false
		}
		return model.Option{Text: text, Value: value}, true
	case model.Record:
		id := v.RecordID()
		if id == nil {
			return model.Option{}, false
		}
		return model.Option{Text: model.DisplayName(v), Value: id}, true
	}
	if values, ok := mapEntries(item); ok {
		return pairFromMap(values)
	}
	return model.Option{Text: model.StringForm(item), Value: item}, true
}

// mapEntries flattens any other map type (map[string]int, map[any]any from
// decoders, ...) into string keyed entries.
func mapEntries(item any) (map[string]any, bool) {
	rv := reflect.ValueOf(item)
	if rv.Kind() != reflect.Map {
		return nil, false
	}
	out := make(map[string]any, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		out[fmt.Sprint(iter.Key().Interface())] = iter.Value().Interface()
	}
	return out, true
}

func pairFromMap(values map[string]any) (model.Option, bool) {
	text, hasText := lookupKey(values, "text")
	value, hasValue := lookupKey(values, "value")
	if !hasText || !hasValue || value == nil {
		return model.Option{}, false
	}
	return model.Option{Text: model.StringForm(text), Value: value}, true
}

// lookupKey matches keys case-insensitively so decoded documents using
// "Text"/"Value" are accepted.
func lookupKey(values map[string]any, key string) (any, bool) {
	if value, ok := values[key]; ok {
		return value, true
	}
	for candidate, value := range values {
		if strings.EqualFold(candidate, key) {
			return value, true
		}
	}
	return nil, false
}
