package selectize_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goliatone/go-formext/pkg/association"
	"github.com/goliatone/go-formext/pkg/config"
	"github.com/goliatone/go-formext/pkg/model"
	"github.com/goliatone/go-formext/pkg/render"
	"github.com/goliatone/go-formext/pkg/selectize"
)

// countingSource wraps a RecordSource and counts Related calls.
type countingSource struct {
	model.RecordSource
	related int
	all     int
	err     error
}

func (s *countingSource) Related(ctx context.Context, object model.Object, association model.Association) ([]model.Record, error) {
	s.related++
	if s.err != nil {
		return nil, s.err
	}
	return s.RecordSource.Related(ctx, object, association)
}

func (s *countingSource) All(ctx context.Context, relatedType string) ([]model.Record, error) {
	s.all++
	if s.err != nil {
		return nil, s.err
	}
	return s.RecordSource.All(ctx, relatedType)
}

func fixtures(t *testing.T) *association.Static {
	t.Helper()
	store := association.NewStatic()
	store.MustDeclare("User", model.Association{Kind: model.AssociationBelongsTo, Name: "role", RelatedType: "Role", ForeignKey: "role_id"})
	store.MustDeclare("User", model.Association{Kind: model.AssociationHasOne, Name: "profile", RelatedType: "Profile"})
	store.MustDeclare("Post", model.Association{Kind: model.AssociationHasMany, Name: "tags", RelatedType: "Tag"})
	store.AddRecords("Role", model.Entity{ID: 3, NameText: "Admin"}, model.Entity{ID: 4, NameText: "Editor"})
	store.AddRecords("Tag", model.Entity{ID: 1, TitleText: "Go"}, model.Entity{ID: 2, NameText: "HTML"}, model.Entity{ID: 5})
	return store
}

func newInput(t *testing.T, field model.Field, store *association.Static, opts ...selectize.Option) *selectize.Input {
	t.Helper()
	base := []selectize.Option{
		selectize.WithAssociationResolver(store),
		selectize.WithRecordSource(store),
	}
	input, err := selectize.New(field, append(base, opts...)...)
	require.NoError(t, err)
	return input
}

func TestInspect(t *testing.T) {
	store := fixtures(t)
	user := model.NewMapObject("User", map[string]any{"role_id": 3})

	role := selectize.Inspect(model.Field{Object: user, Attribute: "role"}, store)
	assert.True(t, role.IsAssociation)
	assert.Equal(t, model.CardinalityOne, role.Cardinality)
	assert.Equal(t, "role_id", role.ForeignAttribute)

	profile := selectize.Inspect(model.Field{Object: user, Attribute: "profile"}, store)
	assert.Equal(t, "profile_id", profile.ForeignAttribute)

	post := model.NewMapObject("Post", nil)
	tags := selectize.Inspect(model.Field{Object: post, Attribute: "tags"}, store)
	assert.Equal(t, model.CardinalityMany, tags.Cardinality)
	assert.Equal(t, "tag_ids", tags.ForeignAttribute)

	plain := selectize.Inspect(model.Field{Object: user, Attribute: "email"}, store)
	assert.False(t, plain.IsAssociation)
	assert.Empty(t, plain.Cardinality)
	assert.Empty(t, plain.ForeignAttribute)
	assert.Equal(t, "email", plain.SubmitAttribute(model.Field{Attribute: "email"}))

	assert.False(t, selectize.Inspect(model.Field{Object: user, Attribute: "role"}, nil).IsAssociation)
}

func TestSerializeValue_SingleAssociation(t *testing.T) {
	store := fixtures(t)
	field := model.Field{
		Object:    model.NewMapObject("User", map[string]any{"role_id": 3}),
		Attribute: "role",
	}

	got, err := newInput(t, field, store).SerializeValue(context.Background())
	require.NoError(t, err)
	assert.Equal(t, model.Option{Text: "Admin", Value: 3}, got)
}

func TestSerializeValue_UnresolvedRecordDegrades(t *testing.T) {
	store := fixtures(t)
	field := model.Field{
		Object:    model.NewMapObject("User", map[string]any{"role_id": 99}),
		Attribute: "role",
	}

	got, err := newInput(t, field, store).SerializeValue(context.Background())
	require.NoError(t, err)
	assert.Equal(t, model.Option{Text: "99", Value: 99}, got)

	noSource, err := selectize.New(model.Field{
		Object:    model.NewMapObject("User", map[string]any{"role_id": 3}),
		Attribute: "role",
	}, selectize.WithAssociationResolver(store))
	require.NoError(t, err)
	got, err = noSource.SerializeValue(context.Background())
	require.NoError(t, err)
	assert.Equal(t, model.Option{Text: "3", Value: 3}, got)
}

func TestSerializeValue_MultiAssociation(t *testing.T) {
	store := fixtures(t)
	field := model.Field{
		Object:    model.NewMapObject("Post", map[string]any{"tag_ids": []any{"1", 2, 5, 8}}),
		Attribute: "tags",
	}

	got, err := newInput(t, field, store).SerializeValue(context.Background())
	require.NoError(t, err)

	want := []model.Option{
		{Text: "Go", Value: "1"},
		{Text: "HTML", Value: 2},
		{Text: "5", Value: 5},
		{Text: "8", Value: 8},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("serialised mismatch (-want +got):\n%s", diff)
	}
}

func TestSerializeValue_MultiSkipsNilIdentifiers(t *testing.T) {
	store := fixtures(t)
	field := model.Field{
		Object:    model.NewMapObject("Post", map[string]any{"tag_ids": []any{nil, 1}}),
		Attribute: "tags",
	}

	got, err := newInput(t, field, store).SerializeValue(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []model.Option{{Text: "Go", Value: 1}}, got)

	field = model.Field{
		Object:    model.NewMapObject("Post", map[string]any{"labels": []any{nil, "x"}}),
		Attribute: "labels",
	}
	input, err := selectize.New(field)
	require.NoError(t, err)
	got, err = input.SerializeValue(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []model.Option{{Text: "x", Value: "x"}}, got)
}

func TestSerializeValue_PlainAttribute(t *testing.T) {
	field := model.Field{
		Object:    model.NewMapObject("Post", map[string]any{"labels": []string{"x", "y"}, "status": "draft"}),
		Attribute: "labels",
	}
	input, err := selectize.New(field)
	require.NoError(t, err)
	got, err := input.SerializeValue(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []model.Option{{Text: "x", Value: "x"}, {Text: "y", Value: "y"}}, got)

	field.Attribute = "status"
	input, err = selectize.New(field)
	require.NoError(t, err)
	got, err = input.SerializeValue(context.Background())
	require.NoError(t, err)
	assert.Equal(t, model.Option{Text: "draft", Value: "draft"}, got)

	field.Attribute = "missing"
	input, err = selectize.New(field)
	require.NoError(t, err)
	got, err = input.SerializeValue(context.Background())
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestSerializeValue_DataOverrideWins(t *testing.T) {
	store := fixtures(t)
	source := &countingSource{RecordSource: store}
	override := `[{"text":"Custom","value":1}]`
	field := model.Field{
		Object:    model.NewMapObject("User", map[string]any{"role_id": 3}),
		Attribute: "role",
		HTML:      model.HTMLOptions{"data": map[string]any{"value": override}},
	}

	input, err := selectize.New(field, selectize.WithAssociationResolver(store), selectize.WithRecordSource(source))
	require.NoError(t, err)
	got, err := input.SerializeValue(context.Background())
	require.NoError(t, err)
	assert.Equal(t, override, got)
	assert.Zero(t, source.related, "override must short-circuit record lookups")
}

func TestSerializeValue_SourceErrorsPropagate(t *testing.T) {
	store := fixtures(t)
	boom := errors.New("db down")
	source := &countingSource{RecordSource: store, err: boom}
	field := model.Field{
		Object:    model.NewMapObject("User", map[string]any{"role_id": 3}),
		Attribute: "role",
	}

	input, err := selectize.New(field, selectize.WithAssociationResolver(store), selectize.WithRecordSource(source))
	require.NoError(t, err)
	_, err = input.SerializeValue(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, boom))
}

func TestRelated_IsMemoisedPerInput(t *testing.T) {
	store := fixtures(t)
	source := &countingSource{RecordSource: store}
	field := model.Field{
		Object:    model.NewMapObject("Post", map[string]any{"tag_ids": []int{1, 2}}),
		Attribute: "tags",
	}

	input, err := selectize.New(field, selectize.WithAssociationResolver(store), selectize.WithRecordSource(source))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, input.Render(context.Background(), &buf, render.RenderOptions{}))
	_, err = input.SerializeValue(context.Background())
	require.NoError(t, err)
	_, err = input.Related(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, source.related)
	assert.Equal(t, 1, source.all)
}

func TestMulti(t *testing.T) {
	scalar := model.NewMapObject("User", map[string]any{"role_id": 3})
	list := model.NewMapObject("Post", map[string]any{"labels": []string{"a"}})

	cases := []struct {
		name  string
		field model.Field
		want  bool
	}{
		{"explicit multi with scalar value", model.Field{Object: scalar, Attribute: "role_id", Options: map[string]any{"multi": true}}, true},
		{"sequence value without option", model.Field{Object: list, Attribute: "labels"}, true},
		{"sequence value with multi false", model.Field{Object: list, Attribute: "labels", Options: map[string]any{"multi": false}}, true},
		{"scalar value", model.Field{Object: scalar, Attribute: "role_id"}, false},
		{"explicit false", model.Field{Object: scalar, Attribute: "role_id", Options: map[string]any{"multi": false}}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			input, err := selectize.New(tc.field)
			require.NoError(t, err)
			assert.Equal(t, tc.want, input.Multi())
		})
	}
}

func TestCollection(t *testing.T) {
	store := fixtures(t)
	ctx := context.Background()
	user := model.NewMapObject("User", map[string]any{
		"role_id":         3,
		"available_roles": []any{"admin", "editor"},
		"broken":          42,
	})

	t.Run("search url suppresses collection", func(t *testing.T) {
		input := newInput(t, model.Field{Object: user, Attribute: "role", Options: map[string]any{
			"search_url": "/roles/search",
			"collection": []any{"ignored"},
		}}, store)
		got, err := input.Collection(ctx)
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("list", func(t *testing.T) {
		input := newInput(t, model.Field{Object: user, Attribute: "role", Options: map[string]any{
			"collection": []any{map[string]any{"text": "Owner", "value": 1}, "guest"},
		}}, store)
		got, err := input.Collection(ctx)
		require.NoError(t, err)
		assert.Equal(t, []model.Option{{Text: "Owner", Value: 1}, {Text: "guest", Value: "guest"}}, got)
	})

	t.Run("attribute", func(t *testing.T) {
		input := newInput(t, model.Field{Object: user, Attribute: "kind", Options: map[string]any{
			"collection": "available_roles",
		}}, store)
		got, err := input.Collection(ctx)
		require.NoError(t, err)
		assert.Equal(t, []model.Option{{Text: "admin", Value: "admin"}, {Text: "editor", Value: "editor"}}, got)

		missing := newInput(t, model.Field{Object: user, Attribute: "kind", Options: map[string]any{
			"collection": "nothing_here",
		}}, store)
		got, err = missing.Collection(ctx)
		require.NoError(t, err)
		assert.Empty(t, got)
		assert.NotNil(t, got)

		broken := newInput(t, model.Field{Object: user, Attribute: "kind", Options: map[string]any{
			"collection": "broken",
		}}, store)
		_, err = broken.Collection(ctx)
		assert.True(t, errors.Is(err, selectize.ErrInvalidConfig))
	})

	t.Run("association", func(t *testing.T) {
		input := newInput(t, model.Field{Object: user, Attribute: "role"}, store)
		got, err := input.Collection(ctx)
		require.NoError(t, err)
		assert.Equal(t, []model.Option{{Text: "Admin", Value: 3}, {Text: "Editor", Value: 4}}, got)
	})

	t.Run("plain attribute", func(t *testing.T) {
		input := newInput(t, model.Field{Object: user, Attribute: "email"}, store)
		got, err := input.Collection(ctx)
		require.NoError(t, err)
		assert.Equal(t, []model.Option{}, got)
	})

	t.Run("invalid shape surfaces", func(t *testing.T) {
		input := newInput(t, model.Field{Object: user, Attribute: "role", Options: map[string]any{
			"collection": []any{map[string]any{"foo": 1}},
		}}, store)
		_, err := input.Collection(ctx)
		assert.True(t, errors.Is(err, selectize.ErrInvalidOptionShape))
	})
}

func TestResolveConfig_Precedence(t *testing.T) {
	limit := 4
	escape := true
	defaults := config.Selectize{Creatable: true, MaxItems: &limit, SortField: "value", SearchParam: "term", Escape: &escape}

	cfg, err := selectize.ResolveConfig(model.Field{}, defaults)
	require.NoError(t, err)
	assert.True(t, cfg.Creatable)
	assert.Equal(t, 4, *cfg.MaxItems)
	assert.Equal(t, "value", cfg.SortField)
	assert.Equal(t, "term", cfg.SearchParam)
	assert.True(t, *cfg.Escape)

	field := model.Field{Options: map[string]any{
		"creatable":    false,
		"max_items":    "2",
		"sort_field":   "text",
		"search_param": "name",
		"escape":       false,
	}}
	cfg, err = selectize.ResolveConfig(field, defaults)
	require.NoError(t, err)
	assert.False(t, cfg.Creatable)
	assert.Equal(t, 2, *cfg.MaxItems)
	assert.Equal(t, "text", cfg.SortField)
	assert.Equal(t, "name", cfg.SearchParam)
	assert.False(t, *cfg.Escape)

	bare, err := selectize.ResolveConfig(model.Field{}, config.Selectize{})
	require.NoError(t, err)
	assert.Equal(t, "text", bare.SortField)
	assert.Equal(t, "q", bare.SearchParam)
	assert.Nil(t, bare.MaxItems)
	assert.Nil(t, bare.Escape)

	assert.Equal(t, 4, *defaults.MaxItems, "defaults must not be modified")
}

func TestResolveConfig_SearchParamDoesNotMutateOptions(t *testing.T) {
	options := map[string]any{"search_url": "/search"}
	_, err := selectize.ResolveConfig(model.Field{Options: options}, config.Selectize{})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"search_url": "/search"}, options)
}

func TestResolveConfig_InvalidOptions(t *testing.T) {
	_, err := selectize.ResolveConfig(model.Field{Attribute: "role", Options: map[string]any{"max_items": "many"}}, config.Selectize{})
	assert.True(t, errors.Is(err, selectize.ErrInvalidConfig))

	_, err = selectize.ResolveConfig(model.Field{Attribute: "role", Options: map[string]any{"collection": 42}}, config.Selectize{})
	assert.True(t, errors.Is(err, selectize.ErrInvalidConfig))
}

func TestResolveConfig_ValueOverride(t *testing.T) {
	cfg, err := selectize.ResolveConfig(model.Field{HTML: model.HTMLOptions{"value": 7}}, config.Selectize{})
	require.NoError(t, err)
	assert.True(t, cfg.HasValue)
	assert.Equal(t, 7, cfg.Value)

	cfg, err = selectize.ResolveConfig(model.Field{
		Options: map[string]any{"value": []int{1}},
		HTML:    model.HTMLOptions{"value": 7},
	}, config.Selectize{})
	require.NoError(t, err)
	assert.Equal(t, []int{1}, cfg.Value)
}
