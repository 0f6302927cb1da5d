package model

import (
	"strings"

	"github.com/jinzhu/inflection"
)

// NormalizeAssociationKind maps loosely formatted association macros
// ("belongs_to", "BelongsTo", "has-many") onto the canonical kinds.
func NormalizeAssociationKind(raw string) (AssociationKind, bool) {
	compact := strings.NewReplacer("_", "", "-", "", " ", "").Replace(strings.ToLower(strings.TrimSpace(raw)))
	switch compact {
	case "belongsto":
		return AssociationBelongsTo, true
	case "hasone":
		return AssociationHasOne, true
	case "hasmany":
		return AssociationHasMany, true
	default:
		return AssociationNone, false
	}
}

func deriveCardinality(kind AssociationKind) string {
	switch kind {
	case AssociationHasMany:
		return CardinalityMany
	case AssociationBelongsTo, AssociationHasOne:
		return CardinalityOne
	default:
		return ""
	}
}

// foreignAttribute resolves the submitted attribute name:
//
//	belongsTo -> declared foreign key (falls back to <name>_id)
//	hasOne    -> <name>_id
//	hasMany   -> <singular name>_ids
func foreignAttribute(a Association) string {
	name := strings.TrimSpace(a.Name)
	switch a.Kind {
	case AssociationBelongsTo:
		if fk := strings.TrimSpace(a.ForeignKey); fk != "" {
			return fk
		}
		if name == "" {
			return ""
		}
		return name + "_id"
	case AssociationHasOne:
		if name == "" {
			return ""
		}
		return name + "_id"
	case AssociationHasMany:
		if name == "" {
			return ""
		}
		return inflection.Singular(name) + "_ids"
	default:
		return ""
	}
}

// CloneAssociation returns a copy of the association pointer.
func CloneAssociation(a *Association) *Association {
	if a == nil {
		return nil
	}
	cloned := *a
	return &cloned
}
