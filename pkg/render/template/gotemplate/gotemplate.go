package gotemplate

import (
	"fmt"

	gotemplatepkg "github.com/goliatone/go-template"

	"github.com/goliatone/go-formext/pkg/render/template"
)

// NewGoTemplate builds a renderer backed by github.com/goliatone/go-template
// so hosts that already configure that engine can pass the same options and
// hand the result to inputs.WithTemplateRenderer.
func NewGoTemplate(opts ...gotemplatepkg.Option) (template.TemplateRenderer, error) {
	engine, err := gotemplatepkg.NewRenderer(opts...)
	if err != nil {
		return nil, fmt.Errorf("gotemplate: create go-template renderer: %w", err)
	}
	return engine, nil
}
