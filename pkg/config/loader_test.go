package config_test

import (
	"errors"
	"os"
	"testing"

	"github.com/itsatony/go-cuserr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goliatone/go-formext/pkg/config"
)

func TestDefault(t *testing.T) {
	cfg := config.Default()

	assert.Equal(t, "formext", cfg.TranslationPrefix)
	assert.Equal(t, "text", cfg.Selectize.SortField)
	assert.Equal(t, "q", cfg.Selectize.SearchParam)
	assert.False(t, cfg.Selectize.Creatable)
	assert.Nil(t, cfg.Selectize.MaxItems)
	assert.Nil(t, cfg.Selectize.Escape)
	assert.Equal(t, "fa fa-chevron-up", cfg.Numeric.UpIcon)
	assert.Equal(t, "2006-01-02 15:04", cfg.DateTime.Layout)
	assert.Equal(t, 100.0, cfg.Slider.Max)
	assert.Equal(t, "hex", cfg.Color.Format)
	assert.Equal(t, "image/*", cfg.Image.Accept)
	assert.Equal(t, config.PolicyUGC, cfg.Redactor.Policy)
	require.NoError(t, cfg.Validate("defaults"))
}

func TestDefault_ReturnsIndependentCopies(t *testing.T) {
	first := config.Default()
	limit := 2
	first.Selectize.MaxItems = &limit
	first.Redactor.Buttons = append(first.Redactor.Buttons, "bold")

	second := config.Default()
	assert.Nil(t, second.Selectize.MaxItems)
	assert.Empty(t, second.Redactor.Buttons)
}

func TestLoadFS_YAMLOverlaysDefaults(t *testing.T) {
	cfg, err := config.LoadFS(os.DirFS("testdata"), "custom.yaml")
	require.NoError(t, err)

	assert.Equal(t, "admin", cfg.TranslationPrefix)
	assert.True(t, cfg.Selectize.Creatable)
	require.NotNil(t, cfg.Selectize.MaxItems)
	assert.Equal(t, 3, *cfg.Selectize.MaxItems)
	assert.Equal(t, "text", cfg.Selectize.SortField, "unset keys keep defaults")
	require.NotNil(t, cfg.Numeric.Step)
	assert.Equal(t, 0.5, *cfg.Numeric.Step)
	assert.Equal(t, 10.0, cfg.Slider.Max)
	assert.Equal(t, 1.0, cfg.Slider.Step)
}

func TestLoadFS_JSON(t *testing.T) {
	cfg, err := config.LoadFS(os.DirFS("testdata"), "custom.json")
	require.NoError(t, err)

	assert.Equal(t, "term", cfg.Selectize.SearchParam)
	require.NotNil(t, cfg.Selectize.Escape)
	assert.False(t, *cfg.Selectize.Escape)
	assert.Equal(t, "rgba", cfg.Color.Format)
	assert.Equal(t, "formext", cfg.TranslationPrefix)
}

func TestLoadFS_NilFSReturnsDefaults(t *testing.T) {
	cfg, err := config.LoadFS(nil, "ignored.yaml")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoadFS_Errors(t *testing.T) {
	cases := []struct {
		name    string
		path    string
		message string
		field   string
	}{
		{name: "unsupported format", path: "config.toml", message: config.ErrMsgUnsupportedFormat},
		{name: "empty document", path: "empty.yaml", message: config.ErrMsgEmptyDocument},
		{name: "unknown key", path: "unknown_key.yaml", message: config.ErrMsgDecodeFailed},
		{name: "invalid range", path: "bad_slider.yaml", message: config.ErrMsgInvalidValue, field: "slider.min"},
		{name: "missing file", path: "missing.yaml", message: config.ErrMsgReadFailed},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := config.LoadFS(os.DirFS("testdata"), tc.path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.message)

			var customErr *cuserr.CustomError
			require.True(t, errors.As(err, &customErr))

			source, ok := customErr.GetMetadata(config.MetaKeySource)
			assert.True(t, ok)
			assert.Equal(t, tc.path, source)

			if tc.field != "" {
				field, ok := customErr.GetMetadata(config.MetaKeyField)
				assert.True(t, ok)
				assert.Equal(t, tc.field, field)
				assert.True(t, errors.Is(err, config.ErrInvalidConfig))
			}
		})
	}
}

func TestValidate_RejectsUnknownPolicyAndColor(t *testing.T) {
	cfg := config.Default()
	cfg.Redactor.Policy = "anything"
	assert.True(t, errors.Is(cfg.Validate("inline"), config.ErrInvalidConfig))

	cfg = config.Default()
	cfg.Color.Format = "cmyk"
	assert.True(t, errors.Is(cfg.Validate("inline"), config.ErrInvalidConfig))

	cfg = config.Default()
	zero := 0
	cfg.Selectize.MaxItems = &zero
	assert.True(t, errors.Is(cfg.Validate("inline"), config.ErrInvalidConfig))
}

func TestMarshal_RoundTripsThroughParse(t *testing.T) {
	cfg := config.Default()
	cfg.TranslationPrefix = "admin"
	cfg.Selectize.Creatable = true

	data, err := config.Marshal(cfg)
	require.NoError(t, err)

	parsed, err := config.Parse(data, "formext.yaml")
	require.NoError(t, err)
	assert.Equal(t, cfg, parsed)
}
