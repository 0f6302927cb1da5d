// Package openapi resolves associations from the x-relationships extension
// of OpenAPI component schemas:
//
//	components:
//	  schemas:
//	    User:
//	      properties:
//	        role:
//	          type: object
//	          x-relationships:
//	            type: belongsTo
//	            target: '#/components/schemas/Role'
//	            foreignKey: role_id
package openapi

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"strings"
	"unicode"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-formext/pkg/model"
)

const (
	relationshipExtensionKey = "x-relationships"

	relationshipTypeAttr       = "type"
	relationshipTargetAttr     = "target"
	relationshipForeignKeyAttr = "foreignKey"
	relationshipCardAttr       = "cardinality"
)

var relationshipKeyLookup = map[string]string{
	"type":        relationshipTypeAttr,
	"kind":        relationshipTypeAttr,
	"target":      relationshipTargetAttr,
	"foreignkey":  relationshipForeignKeyAttr,
	"foreignid":   relationshipForeignKeyAttr,
	"cardinality": relationshipCardAttr,
}

// Resolver is a model.AssociationResolver backed by an OpenAPI document.
// It is immutable after construction and safe for concurrent use.
type Resolver struct {
	associations map[string]map[string]model.Association
}

var _ model.AssociationResolver = (*Resolver)(nil)

// Load parses an OpenAPI 3 document (JSON or YAML) and indexes the
// relationships declared on component schema properties.
func Load(ctx context.Context, data []byte) (*Resolver, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, fmt.Errorf("openapi resolver: document payload is empty")
	}

	loader := &openapi3.Loader{Context: ctx}
	doc, err := loader.LoadFromData(data)
	if err != nil {
		return nil, fmt.Errorf("openapi resolver: load document: %w", err)
	}
	return FromDocument(doc), nil
}

// FromDocument indexes an already loaded document. Schemas and properties
// are visited in name order; when two properties resolve to the same
// association name the first one wins.
func FromDocument(doc *openapi3.T) *Resolver {
	resolver := &Resolver{associations: make(map[string]map[string]model.Association)}
	if doc == nil || doc.Components == nil {
		return resolver
	}
	for _, typeName := range slices.Sorted(maps.Keys(doc.Components.Schemas)) {
		schemaRef := doc.Components.Schemas[typeName]
		if schemaRef == nil || schemaRef.Value == nil {
			continue
		}
		properties := schemaRef.Value.Properties
		for _, property := range slices.Sorted(maps.Keys(properties)) {
			propRef := properties[property]
			if propRef == nil || propRef.Value == nil {
				continue
			}
			rel := relationshipFromExtensions(propRef.Value.Extensions)
			association, ok := associationFromRelationship(property, rel)
			if !ok {
				continue
			}
			resolver.add(typeName, association)
		}
	}
	return resolver
}

// ReflectAssociation implements model.AssociationResolver.
func (r *Resolver) ReflectAssociation(typeName, attribute string) (model.Association, bool) {
	if r == nil {
		return model.Association{}, false
	}
	association, ok := r.associations[strings.TrimSpace(typeName)][strings.TrimSpace(attribute)]
	return association, ok
}

// Types returns the sorted schema names that declare at least one
// relationship.
func (r *Resolver) Types() []string {
	if r == nil {
		return nil
	}
	return slices.Sorted(maps.Keys(r.associations))
}

func (r *Resolver) add(typeName string, association model.Association) {
	byName, ok := r.associations[typeName]
	if !ok {
		byName = make(map[string]model.Association)
		r.associations[typeName] = byName
	}
	if _, exists := byName[association.Name]; exists {
		return
	}
	byName[association.Name] = association
}

// associationFromRelationship converts the extension of property into an
// association. Relationships declared on the foreign key property itself
// ("role_id" with foreignKey "role_id") are named after the key without its
// "_id"/"_ids" suffix.
func associationFromRelationship(property string, rel map[string]string) (model.Association, bool) {
	if len(rel) == 0 {
		return model.Association{}, false
	}
	kind, ok := model.NormalizeAssociationKind(rel[relationshipTypeAttr])
	if !ok {
		switch strings.ToLower(rel[relationshipCardAttr]) {
		case model.CardinalityMany:
			kind = model.AssociationHasMany
		case model.CardinalityOne:
			kind = model.AssociationBelongsTo
		default:
			return model.Association{}, false
		}
	}

	name := property
	foreignKey := rel[relationshipForeignKeyAttr]
	if foreignKey == property {
		switch {
		case strings.HasSuffix(property, "_ids"):
			name = strings.TrimSuffix(property, "_ids")
		case strings.HasSuffix(property, "_id"):
			name = strings.TrimSuffix(property, "_id")
		}
	}
	return model.Association{
		Kind:        kind,
		Name:        name,
		RelatedType: targetName(rel[relationshipTargetAttr]),
		ForeignKey:  foreignKey,
	}, true
}

// targetName strips a component reference down to the schema name.
func targetName(target string) string {
	target = strings.TrimSpace(target)
	if idx := strings.LastIndex(target, "/"); idx >= 0 {
		return target[idx+1:]
	}
	return target
}

func relationshipFromExtensions(ext map[string]any) map[string]string {
	if len(ext) == 0 {
		return nil
	}
	raw, ok := ext[relationshipExtensionKey]
	if !ok {
		return nil
	}

	var values map[string]any
	switch value := raw.(type) {
	case map[string]any:
		values = value
	case map[string]string:
		values = make(map[string]any, len(value))
		for key, v := range value {
			values[key] = v
		}
	default:
		return nil
	}

	result := make(map[string]string, len(values))
	for _, key := range slices.Sorted(maps.Keys(values)) {
		str, ok := values[key].(string)
		if !ok || str == "" {
			continue
		}
		if canonical, ok := relationshipKeyLookup[normaliseKey(key)]; ok {
			result[canonical] = str
		}
	}
	if len(result) == 0 {
		return nil
	}
	return result
}

func normaliseKey(raw string) string {
	var builder strings.Builder
	builder.Grow(len(raw))
	for _, r := range raw {
		if unicode.IsLetter(r) || unicode.IsNumber(r) {
			builder.WriteRune(unicode.ToLower(r))
		}
	}
	return builder.String()
}
