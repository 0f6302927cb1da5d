package config

import (
	"bytes"
	"io/fs"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-formext/pkg/association"
	"github.com/goliatone/go-formext/pkg/model"
)

// FieldDocument describes one input render declaratively: the bound object,
// the field options and, optionally, the associations and records backing
// it. The CLI and the input tests load these from YAML fixtures.
type FieldDocument struct {
	Input        string                    `json:"input" yaml:"input"`
	Object       ObjectDocument            `json:"object" yaml:"object"`
	Attribute    string                    `json:"attribute" yaml:"attribute"`
	Label        string                    `json:"label,omitempty" yaml:"label,omitempty"`
	Required     bool                      `json:"required,omitempty" yaml:"required,omitempty"`
	Disabled     bool                      `json:"disabled,omitempty" yaml:"disabled,omitempty"`
	Options      map[string]any            `json:"options,omitempty" yaml:"options,omitempty"`
	HTML         map[string]any            `json:"html,omitempty" yaml:"html,omitempty"`
	Associations []AssociationDocument     `json:"associations,omitempty" yaml:"associations,omitempty"`
	Records      map[string][]model.Entity `json:"records,omitempty" yaml:"records,omitempty"`
}

// ObjectDocument is the bound object of a FieldDocument.
type ObjectDocument struct {
	Type   string         `json:"type" yaml:"type"`
	Name   string         `json:"name,omitempty" yaml:"name,omitempty"`
	Values map[string]any `json:"values,omitempty" yaml:"values,omitempty"`
}

// AssociationDocument declares an association on Type.
type AssociationDocument struct {
	Type        string `json:"type" yaml:"type"`
	Kind        string `json:"kind" yaml:"kind"`
	Name        string `json:"name" yaml:"name"`
	RelatedType string `json:"relatedType,omitempty" yaml:"relatedType,omitempty"`
	ForeignKey  string `json:"foreignKey,omitempty" yaml:"foreignKey,omitempty"`
}

// LoadFieldDocument reads and decodes a field document from fsys.
func LoadFieldDocument(fsys fs.FS, path string) (FieldDocument, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return FieldDocument{}, newReadError(path, err)
	}
	return ParseFieldDocument(data, path)
}

// ParseFieldDocument decodes a YAML (or JSON) field document.
func ParseFieldDocument(data []byte, source string) (FieldDocument, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return FieldDocument{}, newEmptyError(source)
	}
	var doc FieldDocument
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return FieldDocument{}, newDecodeError(source, err)
	}
	if strings.TrimSpace(doc.Attribute) == "" {
		return FieldDocument{}, newInvalidValueError(source, "attribute", doc.Attribute)
	}
	for _, assoc := range doc.Associations {
		if _, ok := model.NormalizeAssociationKind(assoc.Kind); !ok {
			return FieldDocument{}, newInvalidValueError(source, "associations.kind", assoc.Kind)
		}
	}
	return doc, nil
}

// Field builds the host form context described by the document.
func (d FieldDocument) Field() model.Field {
	field := model.Field{
		ObjectName: d.Object.Name,
		Attribute:  d.Attribute,
		Label:      d.Label,
		Required:   d.Required,
		Disabled:   d.Disabled,
		Options:    d.Options,
	}
	if d.HTML != nil {
		field.HTML = model.HTMLOptions(d.HTML)
	}
	if d.Object.Type != "" || d.Object.Values != nil {
		field.Object = model.NewMapObject(d.Object.Type, d.Object.Values)
	}
	return field
}

// Store builds an in-memory association registry from the declared
// associations and records.
func (d FieldDocument) Store() (*association.Static, error) {
	store := association.NewStatic()
	for _, assoc := range d.Associations {
		kind, _ := model.NormalizeAssociationKind(assoc.Kind)
		err := store.Declare(assoc.Type, model.Association{
			Kind:        kind,
			Name:        assoc.Name,
			RelatedType: assoc.RelatedType,
			ForeignKey:  assoc.ForeignKey,
		})
		if err != nil {
			return nil, err
		}
	}
	for relatedType, entities := range d.Records {
		records := make([]model.Record, 0, len(entities))
		for _, entity := range entities {
			records = append(records, entity)
		}
		store.AddRecords(relatedType, records...)
	}
	return store, nil
}
