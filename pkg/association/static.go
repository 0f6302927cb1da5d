package association

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/goliatone/go-formext/pkg/model"
)

// Static is an in-memory association registry and record store. It is safe
// for concurrent use.
type Static struct {
	mu           sync.RWMutex
	associations map[string]map[string]model.Association
	records      map[string][]model.Record
}

var (
	_ model.AssociationResolver = (*Static)(nil)
	_ model.RecordSource        = (*Static)(nil)
)

// NewStatic creates an empty registry.
func NewStatic() *Static {
	return &Static{
		associations: make(map[string]map[string]model.Association),
		records:      make(map[string][]model.Record),
	}
}

// Declare registers an association on typeName. The association name is the
// attribute forms reflect on ("role", "tags").
func (s *Static) Declare(typeName string, association model.Association) error {
	typeName = strings.TrimSpace(typeName)
	if typeName == "" {
		return fmt.Errorf("association: type name is required")
	}
	association.Name = strings.TrimSpace(association.Name)
	if association.Name == "" {
		return fmt.Errorf("association: %s association name is required", typeName)
	}
	if !association.Valid() {
		return fmt.Errorf("association: %s.%s has unknown kind %q", typeName, association.Name, association.Kind)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	byName, ok := s.associations[typeName]
	if !ok {
		byName = make(map[string]model.Association)
		s.associations[typeName] = byName
	}
	byName[association.Name] = association
	return nil
}

// MustDeclare mirrors Declare but panics on error.
func (s *Static) MustDeclare(typeName string, association model.Association) {
	if err := s.Declare(typeName, association); err != nil {
		panic(err)
	}
}

// AddRecords appends records of relatedType.
func (s *Static) AddRecords(relatedType string, records ...model.Record) {
	relatedType = strings.TrimSpace(relatedType)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[relatedType] = append(s.records[relatedType], records...)
}

// ReflectAssociation implements model.AssociationResolver.
func (s *Static) ReflectAssociation(typeName, attribute string) (model.Association, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	association, ok := s.associations[strings.TrimSpace(typeName)][strings.TrimSpace(attribute)]
	return association, ok
}

// All implements model.RecordSource.
func (s *Static) All(ctx context.Context, relatedType string) ([]model.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.Record(nil), s.records[strings.TrimSpace(relatedType)]...), nil
}

// Related implements model.RecordSource. The object's foreign attribute
// holds the associated identifier(s); when the object does not expose it, a
// record (or list of records) stored under the association name is used.
func (s *Static) Related(ctx context.Context, object model.Object, association model.Association) ([]model.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if object == nil {
		return nil, nil
	}

	if raw, ok := object.Attribute(association.ForeignAttribute()); ok {
		ids, isList := model.Sequence(raw)
		if !isList {
			if raw == nil {
				return nil, nil
			}
			ids = []any{raw}
		}
		return s.find(association.RelatedType, ids), nil
	}

	raw, ok := object.Attribute(association.Name)
	if !ok || raw == nil {
		return nil, nil
	}
	if record, ok := raw.(model.Record); ok {
		return []model.Record{record}, nil
	}
	items, _ := model.Sequence(raw)
	out := make([]model.Record, 0, len(items))
	for _, item := range items {
		if record, ok := item.(model.Record); ok {
			out = append(out, record)
		}
	}
	return out, nil
}

func (s *Static) find(relatedType string, ids []any) []model.Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	candidates := s.records[strings.TrimSpace(relatedType)]
	out := make([]model.Record, 0, len(ids))
	for _, id := range ids {
		for _, record := range candidates {
			if model.SameID(record.RecordID(), id) {
				out = append(out, record)
				break
			}
		}
	}
	return out
}
