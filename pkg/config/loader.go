package config

import (
	"bytes"
	"encoding/json"
	"io/fs"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadFS reads the initializer at path from fsys and overlays it on the
// embedded defaults. A nil fsys yields the defaults.
func LoadFS(fsys fs.FS, path string) (Config, error) {
	if fsys == nil {
		return Default(), nil
	}
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return Config{}, newReadError(path, err)
	}
	return Parse(data, path)
}

// Parse decodes a document named source (its extension selects JSON or
// YAML) over the embedded defaults and validates the result. Unknown keys
// are rejected.
func Parse(data []byte, source string) (Config, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return Config{}, newEmptyError(source)
	}
	cfg, err := decode(Default(), data, source)
	if err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(source); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Marshal renders cfg as a YAML initializer document.
func Marshal(cfg Config) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func decode(base Config, data []byte, source string) (Config, error) {
	cfg := base
	switch strings.ToLower(filepath.Ext(source)) {
	case ".json":
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&cfg); err != nil {
			return Config{}, newDecodeError(source, err)
		}
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil {
			return Config{}, newDecodeError(source, err)
		}
	default:
		return Config{}, newFormatError(source)
	}
	return cfg, nil
}

// Validate checks value ranges. source labels the errors.
func (c Config) Validate(source string) error {
	if strings.TrimSpace(c.Selectize.SortField) == "" {
		return newInvalidValueError(source, "selectize.sortField", c.Selectize.SortField)
	}
	if strings.TrimSpace(c.Selectize.SearchParam) == "" {
		return newInvalidValueError(source, "selectize.searchParam", c.Selectize.SearchParam)
	}
	if c.Selectize.MaxItems != nil && *c.Selectize.MaxItems < 1 {
		return newInvalidValueError(source, "selectize.maxItems", strconv.Itoa(*c.Selectize.MaxItems))
	}
	if c.Numeric.Min != nil && c.Numeric.Max != nil && *c.Numeric.Min > *c.Numeric.Max {
		return newInvalidValueError(source, "numeric.min", formatFloat(*c.Numeric.Min))
	}
	if c.Numeric.Step != nil && *c.Numeric.Step <= 0 {
		return newInvalidValueError(source, "numeric.step", formatFloat(*c.Numeric.Step))
	}
	for _, layout := range [][2]string{
		{"datetime.layout", c.DateTime.Layout},
		{"datetime.dateLayout", c.DateTime.DateLayout},
		{"datetime.timeLayout", c.DateTime.TimeLayout},
	} {
		if strings.TrimSpace(layout[1]) == "" {
			return newInvalidValueError(source, layout[0], layout[1])
		}
	}
	if c.Slider.Min >= c.Slider.Max {
		return newInvalidValueError(source, "slider.min", formatFloat(c.Slider.Min))
	}
	if c.Slider.Step <= 0 {
		return newInvalidValueError(source, "slider.step", formatFloat(c.Slider.Step))
	}
	if _, ok := colorFormats[strings.ToLower(c.Color.Format)]; !ok {
		return newInvalidValueError(source, "color.format", c.Color.Format)
	}
	switch c.Redactor.Policy {
	case PolicyUGC, PolicyStrict:
	default:
		return newInvalidValueError(source, "redactor.policy", c.Redactor.Policy)
	}
	if c.Redactor.MinHeight < 0 {
		return newInvalidValueError(source, "redactor.minHeight", strconv.Itoa(c.Redactor.MinHeight))
	}
	return nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
