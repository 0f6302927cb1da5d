package model

import "testing"

func TestNormalizeAssociationKind(t *testing.T) {
	cases := map[string]AssociationKind{
		"belongs_to": AssociationBelongsTo,
		"BelongsTo":  AssociationBelongsTo,
		"has-one":    AssociationHasOne,
		"HaSmAnY":    AssociationHasMany,
		" has many ": AssociationHasMany,
	}
	for raw, want := range cases {
		got, ok := NormalizeAssociationKind(raw)
		if !ok {
			t.Fatalf("expected %q to normalise", raw)
		}
		if got != want {
			t.Fatalf("kind mismatch for %q: got %q want %q", raw, got, want)
		}
	}

	if _, ok := NormalizeAssociationKind("habtm"); ok {
		t.Fatalf("expected unknown macro to be rejected")
	}
}

func TestAssociationCardinality(t *testing.T) {
	if got := (Association{Kind: AssociationBelongsTo}).Cardinality(); got != CardinalityOne {
		t.Fatalf("belongsTo cardinality: got %q", got)
	}
	if got := (Association{Kind: AssociationHasOne}).Cardinality(); got != CardinalityOne {
		t.Fatalf("hasOne cardinality: got %q", got)
	}
	if got := (Association{Kind: AssociationHasMany}).Cardinality(); got != CardinalityMany {
		t.Fatalf("hasMany cardinality: got %q", got)
	}
	if got := (Association{}).Cardinality(); got != "" {
		t.Fatalf("expected empty cardinality for plain attribute, got %q", got)
	}
}

func TestAssociationForeignAttribute(t *testing.T) {
	cases := []struct {
		name  string
		assoc Association
		want  string
	}{
		{"belongs to uses declared key", Association{Kind: AssociationBelongsTo, Name: "role", ForeignKey: "role_id"}, "role_id"},
		{"belongs to custom key", Association{Kind: AssociationBelongsTo, Name: "author", ForeignKey: "writer_id"}, "writer_id"},
		{"belongs to without key", Association{Kind: AssociationBelongsTo, Name: "owner"}, "owner_id"},
		{"has one", Association{Kind: AssociationHasOne, Name: "profile"}, "profile_id"},
		{"has many", Association{Kind: AssociationHasMany, Name: "tags"}, "tag_ids"},
		{"has many irregular", Association{Kind: AssociationHasMany, Name: "categories"}, "category_ids"},
		{"plain", Association{Name: "title"}, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.assoc.ForeignAttribute(); got != tc.want {
				t.Fatalf("foreign attribute: got %q want %q", got, tc.want)
			}
		})
	}
}

func TestCloneAssociation(t *testing.T) {
	original := &Association{Kind: AssociationHasMany, Name: "tags"}
	cloned := CloneAssociation(original)
	cloned.Name = "labels"
	if original.Name != "tags" {
		t.Fatalf("expected clone to be independent, original mutated to %q", original.Name)
	}
	if CloneAssociation(nil) != nil {
		t.Fatalf("expected nil clone for nil input")
	}
}
