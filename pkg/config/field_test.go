package config_test

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goliatone/go-formext/pkg/config"
	"github.com/goliatone/go-formext/pkg/model"
)

func TestLoadFieldDocument(t *testing.T) {
	doc, err := config.LoadFieldDocument(os.DirFS("testdata"), "role_field.yaml")
	require.NoError(t, err)
	assert.Equal(t, "selectize", doc.Input)

	field := doc.Field()
	assert.Equal(t, "user", field.ObjectName)
	assert.Equal(t, "role", field.Attribute)
	require.NotNil(t, field.Object)
	assert.Equal(t, "User", field.Object.TypeName())
	value, ok := field.Object.Attribute("role_id")
	assert.True(t, ok)
	assert.Equal(t, 3, value)
	assert.Equal(t, true, field.Options["creatable"])
	assert.Equal(t, "Pick a role", field.HTML.Data()["placeholder"])

	store, err := doc.Store()
	require.NoError(t, err)
	association, ok := store.ReflectAssociation("User", "role")
	require.True(t, ok)
	assert.Equal(t, model.AssociationBelongsTo, association.Kind)

	records, err := store.All(context.Background(), "Role")
	require.NoError(t, err)
	assert.Equal(t, []model.Record{
		model.Entity{ID: 3, NameText: "Admin"},
		model.Entity{ID: 4, TitleText: "Editor"},
	}, records)
}

func TestParseFieldDocument_Errors(t *testing.T) {
	_, err := config.ParseFieldDocument([]byte("object: {type: User}\n"), "inline.yaml")
	assert.True(t, errors.Is(err, config.ErrInvalidConfig), "attribute is required")

	_, err = config.ParseFieldDocument([]byte("attribute: role\nassociations:\n  - {type: User, kind: through, name: role}\n"), "inline.yaml")
	assert.True(t, errors.Is(err, config.ErrInvalidConfig), "unknown association kinds are rejected")

	_, err = config.ParseFieldDocument([]byte("attribute: role\nbogus: 1\n"), "inline.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), config.ErrMsgDecodeFailed)

	_, err = config.ParseFieldDocument(nil, "inline.yaml")
	assert.Contains(t, err.Error(), config.ErrMsgEmptyDocument)
}
