package render_test

import (
	"errors"
	"testing"

	"github.com/goliatone/go-formext/pkg/render"
)

type stubTranslator map[string]string

func (t stubTranslator) Translate(_ string, key string, _ ...any) (string, error) {
	if msg, ok := t[key]; ok {
		return msg, nil
	}
	return "", errors.New("missing translation")
}

func TestRenderOptionsTranslate_UsesTranslatorThenFallback(t *testing.T) {
	opts := render.RenderOptions{
		Locale:     "es",
		Translator: stubTranslator{"formext.selectize.add": "Añadir"},
	}

	if got := opts.Translate("formext.selectize.add", "Add"); got != "Añadir" {
		t.Fatalf("expected translated label, got %q", got)
	}
	if got := opts.Translate("formext.file.remove", "Remove"); got != "Remove" {
		t.Fatalf("expected fallback for missing key, got %q", got)
	}
	if got := opts.Translate("formext.file.remove", ""); got != "formext.file.remove" {
		t.Fatalf("expected key when fallback empty, got %q", got)
	}
}

func TestRenderOptionsTranslate_NoTranslator(t *testing.T) {
	var captured error
	opts := render.RenderOptions{
		OnMissing: func(_ string, key string, _ []any, err error) string {
			captured = err
			return "[" + key + "]"
		},
	}
	if got := opts.Translate("formext.selectize.add", "Add"); got != "[formext.selectize.add]" {
		t.Fatalf("expected custom missing handler output, got %q", got)
	}
	if !errors.Is(captured, render.ErrMissingTranslator) {
		t.Fatalf("expected ErrMissingTranslator, got %v", captured)
	}

	if got := (render.RenderOptions{}).Translate("formext.selectize.add", "Add"); got != "Add" {
		t.Fatalf("expected fallback without translator, got %q", got)
	}
}

func TestTranslationKey(t *testing.T) {
	cases := map[[2]string]string{
		{"formext", "selectize.add"}: "formext.selectize.add",
		{"formext.", ".file.remove"}: "formext.file.remove",
		{"", "numeric.up"}:           "numeric.up",
		{"formext", ""}:              "formext",
	}
	for in, want := range cases {
		if got := render.TranslationKey(in[0], in[1]); got != want {
			t.Fatalf("TranslationKey(%q, %q) = %q, want %q", in[0], in[1], got, want)
		}
	}
}

func TestTemplateI18nFuncs(t *testing.T) {
	funcs := render.TemplateI18nFuncs(stubTranslator{"formext.file.remove": "Quitar"}, render.TemplateI18nConfig{
		Prefix: "formext",
	})

	translate, ok := funcs["translate"].(func(any, string, ...string) string)
	if !ok {
		t.Fatalf("translate helper has unexpected type %T", funcs["translate"])
	}
	if got := translate(map[string]any{"locale": "es"}, "file.remove", "Remove"); got != "Quitar" {
		t.Fatalf("expected prefixed translation, got %q", got)
	}
	if got := translate("es", "file.choose", "Choose file"); got != "Choose file" {
		t.Fatalf("expected fallback, got %q", got)
	}
	if got := translate("es", "  "); got != "" {
		t.Fatalf("blank keys render empty, got %q", got)
	}

	current, ok := funcs["current_locale"].(func(any) string)
	if !ok {
		t.Fatalf("current_locale helper has unexpected type %T", funcs["current_locale"])
	}
	type request struct{ Locale string }
	if got := current(&request{Locale: "fr"}); got != "fr" {
		t.Fatalf("expected locale from struct, got %q", got)
	}
	if got := current(map[string]string{"locale": "de"}); got != "de" {
		t.Fatalf("expected locale from string map, got %q", got)
	}
	if got := current(nil); got != "" {
		t.Fatalf("expected empty locale for nil, got %q", got)
	}
}

func TestTemplateI18nFuncs_CustomName(t *testing.T) {
	funcs := render.TemplateI18nFuncs(nil, render.TemplateI18nConfig{FuncName: "t"})
	if _, ok := funcs["t"]; !ok {
		t.Fatalf("expected custom helper name to be registered")
	}
	if _, ok := funcs["translate"]; ok {
		t.Fatalf("default helper name should not be registered when overridden")
	}
}
