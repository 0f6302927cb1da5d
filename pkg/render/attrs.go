package render

import (
	"encoding/json"
	"fmt"
	"html"
	"slices"
	"strconv"
	"strings"
)

// Attr is a single HTML attribute. Values follow the host form builder
// conventions: nil omits the attribute, true renders a boolean attribute
// (name="name"), false omits it and everything else renders its string form.
type Attr struct {
	Name  string
	Value any
}

// Attrs is an ordered attribute list. Later entries with the same name
// replace earlier ones in place, so defaults can be overridden without
// reordering the markup.
type Attrs []Attr

// Set adds or replaces an attribute.
func (a *Attrs) Set(name string, value any) {
	name = strings.TrimSpace(name)
	if name == "" {
		return
	}
	for i := range *a {
		if (*a)[i].Name == name {
			(*a)[i].Value = value
			return
		}
	}
	*a = append(*a, Attr{Name: name, Value: value})
}

// Get returns an attribute value.
func (a Attrs) Get(name string) (any, bool) {
	for _, attr := range a {
		if attr.Name == name {
			return attr.Value, true
		}
	}
	return nil, false
}

// Delete removes an attribute.
func (a *Attrs) Delete(name string) {
	*a = slices.DeleteFunc(*a, func(attr Attr) bool { return attr.Name == name })
}

// AddClass appends class tokens, skipping duplicates.
func (a *Attrs) AddClass(classes ...string) {
	current, _ := a.Get("class")
	tokens := ClassTokens(current)
	for _, class := range classes {
		for _, token := range strings.Fields(class) {
			if !slices.Contains(tokens, token) {
				tokens = append(tokens, token)
			}
		}
	}
	if len(tokens) == 0 {
		return
	}
	a.Set("class", strings.Join(tokens, " "))
}

// SetData sets a data attribute. Keys are given without the "data-" prefix.
// Nil values are skipped, mirroring how host form builders drop nil data
// entries.
func (a *Attrs) SetData(key string, value any) {
	key = strings.TrimSpace(key)
	if key == "" {
		return
	}
	name := "data-" + key
	if value == nil {
		a.Delete(name)
		return
	}
	a.Set(name, DataValue(value))
}

// Merge applies host HTML overrides. The nested "data" map is expanded into
// data-* attributes and "class" tokens are appended.
func (a *Attrs) Merge(overrides map[string]any) {
	if len(overrides) == 0 {
		return
	}
	keys := make([]string, 0, len(overrides))
	for key := range overrides {
		keys = append(keys, key)
	}
	slices.Sort(keys)

	for _, key := range keys {
		value := overrides[key]
		switch key {
		case "data":
			a.mergeData(value)
		case "class":
			a.AddClass(ClassTokens(value)...)
		default:
			a.Set(key, value)
		}
	}
}

func (a *Attrs) mergeData(value any) {
	var data map[string]any
	switch v := value.(type) {
	case map[string]any:
		data = v
	case map[string]string:
		data = make(map[string]any, len(v))
		for key, item := range v {
			data[key] = item
		}
	default:
		return
	}
	keys := make([]string, 0, len(data))
	for key := range data {
		keys = append(keys, key)
	}
	slices.Sort(keys)
	for _, key := range keys {
		a.SetData(DataKey(key), data[key])
	}
}

// String renders the attributes with a leading space per attribute.
func (a Attrs) String() string {
	var builder strings.Builder
	a.WriteTo(&builder)
	return builder.String()
}

// WriteTo writes the escaped attributes into builder.
func (a Attrs) WriteTo(builder *strings.Builder) {
	for _, attr := range a {
		value, ok := attributeValue(attr.Name, attr.Value)
		if !ok {
			continue
		}
		builder.WriteByte(' ')
		builder.WriteString(html.EscapeString(attr.Name))
		builder.WriteString(`="`)
		builder.WriteString(html.EscapeString(value))
		builder.WriteByte('"')
	}
}

func attributeValue(name string, value any) (string, bool) {
	switch v := value.(type) {
	case nil:
		return "", false
	case bool:
		if !v {
			return "", false
		}
		return name, true
	case string:
		return v, true
	case []string:
		return strings.Join(v, " "), true
	default:
		return fmt.Sprint(v), true
	}
}

// DataValue encodes a data attribute value: strings pass through, numbers
// and booleans use their JSON form and composite values are JSON encoded.
func DataValue(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case json.RawMessage:
		return string(v)
	}
	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Sprint(value)
	}
	return string(payload)
}

// DataKey converts option style keys ("max_items") into data attribute
// names ("max-items").
func DataKey(key string) string {
	return strings.ReplaceAll(strings.TrimSpace(key), "_", "-")
}

// ClassTokens flattens a class value (string or list) into tokens.
func ClassTokens(value any) []string {
	switch v := value.(type) {
	case nil:
		return nil
	case string:
		return strings.Fields(v)
	case []string:
		var out []string
		for _, item := range v {
			out = append(out, strings.Fields(item)...)
		}
		return out
	case []any:
		var out []string
		for _, item := range v {
			out = append(out, strings.Fields(fmt.Sprint(item))...)
		}
		return out
	default:
		return strings.Fields(fmt.Sprint(v))
	}
}

// FieldName builds the submitted parameter name for an attribute, nesting it
// under the object name when one is given ("user[role_id]").
func FieldName(objectName, attribute string, multiple bool) string {
	objectName = strings.TrimSpace(objectName)
	attribute = strings.TrimSpace(attribute)
	name := attribute
	if objectName != "" {
		name = objectName + "[" + attribute + "]"
	}
	if multiple {
		name += "[]"
	}
	return name
}

// FieldID builds a DOM id from the object and attribute names
// ("user", "role_id" -> "user_role_id").
func FieldID(objectName, attribute string) string {
	raw := strings.TrimSpace(attribute)
	if objectName = strings.TrimSpace(objectName); objectName != "" {
		raw = objectName + "_" + raw
	}
	var builder strings.Builder
	lastUnderscore := false
	for _, r := range raw {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-':
			builder.WriteRune(r)
			lastUnderscore = false
		default:
			if !lastUnderscore {
				builder.WriteByte('_')
				lastUnderscore = true
			}
		}
	}
	return strings.Trim(builder.String(), "_")
}
