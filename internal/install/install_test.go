package install

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goliatone/go-formext/pkg/config"
)

type stubDriver struct {
	inputs    []string
	confirm   []bool
	selectIdx []int
	multiIdx  [][]int
	infos     []string
	defaults  []int

	inputPos   int
	confirmPos int
	selectPos  int
	multiPos   int
	prompts    []string
}

func (s *stubDriver) Input(_ context.Context, cfg InputConfig) (string, error) {
	s.prompts = append(s.prompts, cfg.Message)
	if s.inputPos >= len(s.inputs) {
		return "", errors.New("no input scripted")
	}
	val := s.inputs[s.inputPos]
	s.inputPos++
	if cfg.Validator != nil {
		if err := cfg.Validator(val); err != nil {
			return "", err
		}
	}
	return val, nil
}

func (s *stubDriver) Confirm(_ context.Context, cfg ConfirmConfig) (bool, error) {
	s.prompts = append(s.prompts, cfg.Message)
	if s.confirmPos >= len(s.confirm) {
		return false, errors.New("no confirm scripted")
	}
	val := s.confirm[s.confirmPos]
	s.confirmPos++
	return val, nil
}

func (s *stubDriver) Select(_ context.Context, cfg SelectConfig) (int, error) {
	s.prompts = append(s.prompts, cfg.Message)
	s.defaults = append(s.defaults, cfg.DefaultIndex)
	if s.selectPos >= len(s.selectIdx) {
		return -1, errors.New("no select scripted")
	}
	val := s.selectIdx[s.selectPos]
	s.selectPos++
	return val, nil
}

func (s *stubDriver) MultiSelect(_ context.Context, cfg SelectConfig) ([]int, error) {
	s.prompts = append(s.prompts, cfg.Message)
	if s.multiPos >= len(s.multiIdx) {
		return nil, errors.New("no multiselect scripted")
	}
	val := s.multiIdx[s.multiPos]
	s.multiPos++
	return val, nil
}

func (s *stubDriver) Info(_ context.Context, msg string) error {
	s.infos = append(s.infos, msg)
	return nil
}

func scripted() *stubDriver {
	return &stubDriver{
		inputs:    []string{"app.forms", "term"},
		confirm:   []bool{true},
		selectIdx: []int{1, 2, 1},
		multiIdx:  [][]int{{2, 3, 7}},
	}
}

func TestRunWritesLoadableInitializer(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config", "formext.yaml")
	driver := scripted()

	result, err := Run(context.Background(), driver, Options{Path: path})
	require.NoError(t, err)
	assert.True(t, result.Written)

	loaded, err := config.LoadFS(os.DirFS(dir), "config/formext.yaml")
	require.NoError(t, err)

	assert.Equal(t, "app.forms", loaded.TranslationPrefix)
	assert.True(t, loaded.Selectize.Creatable)
	assert.Equal(t, "term", loaded.Selectize.SearchParam)
	assert.Equal(t, "02/01/2006 15:04", loaded.DateTime.Layout)
	assert.Equal(t, "DD/MM/YYYY", loaded.DateTime.DateFormat)
	assert.Equal(t, "rgba", loaded.Color.Format)
	assert.Equal(t, config.PolicyStrict, loaded.Redactor.Policy)
	if diff := cmp.Diff([]string{"bold", "italic", "link"}, loaded.Redactor.Buttons); diff != "" {
		t.Fatalf("buttons mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(result.Config, loaded); diff != "" {
		t.Fatalf("written config differs from result (-want +got):\n%s", diff)
	}
	assert.Equal(t, []string{"Initializer written to " + path}, driver.infos)
}

func TestRunDefaultsToBasePresets(t *testing.T) {
	base := config.Default()
	base.DateTime.Layout = "01/02/2006 03:04 PM"
	base.Color.Format = "hsl"
	base.Redactor.Policy = config.PolicyStrict

	driver := scripted()
	_, err := Run(context.Background(), driver, Options{Path: filepath.Join(t.TempDir(), "formext.yaml"), Base: &base})
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3, 1}, driver.defaults)

	assert.Equal(t, -1, presetIndex("2006"))
}

func TestRunAsksBeforeOverwriting(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "formext.yaml")
	require.NoError(t, os.WriteFile(path, []byte("translationPrefix: keep\n"), 0o644))

	driver := &stubDriver{confirm: []bool{false}}
	result, err := Run(context.Background(), driver, Options{Path: path})
	require.NoError(t, err)
	assert.False(t, result.Written)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "translationPrefix: keep\n", string(data))
	assert.Len(t, driver.prompts, 1, "declining the overwrite must stop the installer")
}

func TestRunForceSkipsOverwritePrompt(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "formext.yaml")
	require.NoError(t, os.WriteFile(path, []byte("translationPrefix: old\n"), 0o644))

	result, err := Run(context.Background(), scripted(), Options{Path: path, Force: true})
	require.NoError(t, err)
	assert.True(t, result.Written)
	assert.Equal(t, "app.forms", result.Config.TranslationPrefix)
}

func TestRunPropagatesAbort(t *testing.T) {
	driver := &stubDriver{}
	_, err := Run(context.Background(), abortingDriver{driver}, Options{Path: filepath.Join(t.TempDir(), "formext.yaml")})
	require.ErrorIs(t, err, ErrAborted)
}

func TestRunRejectsBlankPrefix(t *testing.T) {
	driver := scripted()
	driver.inputs[0] = "  "
	_, err := Run(context.Background(), driver, Options{Path: filepath.Join(t.TempDir(), "formext.yaml")})
	require.EqualError(t, err, "a value is required")
}

type abortingDriver struct {
	*stubDriver
}

func (abortingDriver) Input(context.Context, InputConfig) (string, error) {
	return "", ErrAborted
}

func TestSelectionHelpers(t *testing.T) {
	options := []string{"a", "b", "c"}
	assert.Equal(t, 1, indexOf(options, "b"))
	assert.Equal(t, -1, indexOf(options, "z"))
	assert.Equal(t, []int{0, 2}, indicesOf(options, []string{"c", "a"}))
	assert.Equal(t, []string{"a", "c"}, defaultsFromIndices(options, []int{0, 2, 9}))
}
