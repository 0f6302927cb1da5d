// Package formext renders custom form inputs (numeric spinner, selectize
// picker, date-time, color, slider, file and image uploaders, rich-text
// editor and collection check boxes / radio buttons) as declarative HTML
// with data attributes for a client-side enhancement layer.
//
// The root package re-exports the types most callers need and offers a
// shared default renderer:
//
//	html, err := formext.Render(ctx, formext.InputSelectize, formext.Field{
//		Object:     user,
//		ObjectName: "user",
//		Attribute:  "role",
//	}, formext.RenderOptions{Locale: "es", Translator: translator})
package formext

import (
	"context"
	"sync"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-formext/pkg/config"
	"github.com/goliatone/go-formext/pkg/inputs"
	"github.com/goliatone/go-formext/pkg/model"
	"github.com/goliatone/go-formext/pkg/render"
)

// Field is the host form context of a single input render.
type Field = model.Field

// Choice is the uniform {text, value} pair selectable inputs consume.
type Choice = model.Option

// Record is an associated-record-like value.
type Record = model.Record

// RenderOptions describes per-request locale, translator and theme data.
type RenderOptions = render.RenderOptions

// Config holds the input defaults (the initializer document).
type Config = config.Config

// Renderer dispatches fields to the registered inputs.
type Renderer = inputs.Renderer

// Built-in input names.
const (
	InputNumeric                = inputs.NameNumeric
	InputSelectize              = inputs.NameSelectize
	InputDateTime               = inputs.NameDateTime
	InputColor                  = inputs.NameColor
	InputSlider                 = inputs.NameSlider
	InputFile                   = inputs.NameFile
	InputImage                  = inputs.NameImage
	InputRedactor               = inputs.NameRedactor
	InputCollectionCheckBoxes   = inputs.NameCollectionCheckBoxes
	InputCollectionRadioButtons = inputs.NameCollectionRadioButtons
)

var (
	defaultOnce     sync.Once
	defaultRenderer *inputs.Renderer
	defaultErr      error
)

// NewRenderer exposes the inputs renderer constructor from the top-level
// module.
func NewRenderer(options ...inputs.Option) (*Renderer, error) {
	return inputs.New(options...)
}

// Render renders field with the named input using a shared renderer built
// from the embedded defaults. Inputs that need association metadata require
// a renderer constructed with WithAssociations.
func Render(ctx context.Context, input string, field Field, opts RenderOptions) (string, error) {
	defaultOnce.Do(func() {
		defaultRenderer, defaultErr = inputs.New()
	})
	if defaultErr != nil {
		return "", defaultErr
	}
	return defaultRenderer.Render(ctx, input, field, opts)
}

// WithAssociations wires a collaborator that implements both association
// lookups and record loading, such as association.Static.
func WithAssociations(store inputs.AssociationStore) inputs.Option {
	return inputs.WithAssociationStore(store)
}

// WithThemeSelector resolves the named theme through selector so template
// inputs use the theme partials and assets.
func WithThemeSelector(selector theme.ThemeSelector, name, variant string) inputs.Option {
	return inputs.WithTheme(selector, name, variant)
}
