package inputs

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/goliatone/go-formext/pkg/model"
	"github.com/goliatone/go-formext/pkg/render"
)

const templatePrefix = "templates/inputs/"

// NewDefaultRegistry constructs a registry pre-populated with the built-in
// inputs.
func NewDefaultRegistry() *Registry {
	registry := NewRegistry()

	registry.MustRegister(NameNumeric, Descriptor{
		Renderer:    templateInputRenderer(NameNumeric, numericView),
		Stylesheets: []string{StylesheetName},
		Scripts:     []Script{{Src: "spinner.js", Defer: true}},
	})
	registry.MustRegister(NameSelectize, Descriptor{
		Renderer:    selectizeRenderer,
		Stylesheets: []string{"selectize.css"},
		Scripts:     []Script{{Src: "selectize.js", Defer: true}},
	})
	registry.MustRegister(NameDateTime, Descriptor{
		Renderer:    templateInputRenderer(NameDateTime, dateTimeView),
		Stylesheets: []string{"bootstrap-datetimepicker.css"},
		Scripts:     []Script{{Src: "moment.js", Defer: true}, {Src: "bootstrap-datetimepicker.js", Defer: true}},
	})
	registry.MustRegister(NameColor, Descriptor{
		Renderer:    templateInputRenderer(NameColor, colorView),
		Stylesheets: []string{StylesheetName, "bootstrap-colorpicker.css"},
		Scripts:     []Script{{Src: "bootstrap-colorpicker.js", Defer: true}},
	})
	registry.MustRegister(NameSlider, Descriptor{
		Renderer:    sliderRenderer,
		Stylesheets: []string{"bootstrap-slider.css"},
		Scripts:     []Script{{Src: "bootstrap-slider.js", Defer: true}},
	})
	registry.MustRegister(NameFile, Descriptor{
		Renderer:    templateInputRenderer(NameFile, fileView),
		Stylesheets: []string{StylesheetName},
	})
	registry.MustRegister(NameImage, Descriptor{
		Renderer:    templateInputRenderer(NameImage, imageView),
		Stylesheets: []string{StylesheetName},
	})
	registry.MustRegister(NameRedactor, Descriptor{
		Renderer:    templateInputRenderer(NameRedactor, redactorView),
		Stylesheets: []string{"redactor.css"},
		Scripts:     []Script{{Src: "redactor.js", Defer: true}},
	})
	registry.MustRegister(NameCollectionCheckBoxes, Descriptor{
		Renderer:    collectionRenderer(choiceCheckBox),
		Stylesheets: []string{StylesheetName},
	})
	registry.MustRegister(NameCollectionRadioButtons, Descriptor{
		Renderer:    collectionRenderer(choiceRadio),
		Stylesheets: []string{StylesheetName},
	})

	return registry
}

// DefaultPartials maps every template-backed input's partial key to its
// embedded template. Themes override entries of this map.
func DefaultPartials() map[string]string {
	partials := make(map[string]string)
	for _, name := range []string{NameNumeric, NameDateTime, NameColor, NameFile, NameImage, NameRedactor} {
		partials[PartialKey(name)] = templatePrefix + name + ".tmpl"
	}
	return partials
}

// templateView computes the template payload of an input.
type templateView func(ctx context.Context, field model.Field, data InputData) (map[string]any, error)

// templateInputRenderer renders name's template, or the theme partial
// registered under its partial key. Every payload carries the locale, the
// field label and a translate helper scoped to the translation prefix.
func templateInputRenderer(name string, view templateView) InputRenderer {
	templateName := templatePrefix + name + ".tmpl"
	partialKey := PartialKey(name)

	return func(ctx context.Context, buf *bytes.Buffer, field model.Field, data InputData) error {
		if data.Template == nil {
			return fmt.Errorf("inputs: template renderer not configured for %q", templateName)
		}

		resolvedTemplate := templateName
		if partials := data.ThemePartials(); partials != nil {
			if candidate := strings.TrimSpace(partials[partialKey]); candidate != "" {
				resolvedTemplate = candidate
			}
		}

		payload, err := view(ctx, field, data)
		if err != nil {
			return err
		}
		helpers := render.TemplateI18nFuncs(data.Options.Translator, render.TemplateI18nConfig{
			Prefix:    data.Config.TranslationPrefix,
			OnMissing: data.Options.OnMissing,
		})
		payload["translate"] = helpers["translate"]
		payload["locale"] = data.Options.Locale
		payload["label"] = field.LabelText()

		rendered, err := data.Template.RenderTemplate(resolvedTemplate, payload)
		if err != nil {
			return fmt.Errorf("inputs: render template %q: %w", resolvedTemplate, err)
		}
		buf.WriteString(strings.TrimSpace(rendered))
		return nil
	}
}
