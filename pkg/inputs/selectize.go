package inputs

import (
	"bytes"
	"context"

	"github.com/goliatone/go-formext/pkg/model"
	"github.com/goliatone/go-formext/pkg/selectize"
)

func selectizeRenderer(ctx context.Context, buf *bytes.Buffer, field model.Field, data InputData) error {
	input, err := newSelectize(field, data)
	if err != nil {
		return err
	}
	return input.Render(ctx, buf, data.Options)
}

// newSelectize resolves a selectize input with the renderer collaborators.
// Collection inputs reuse it for option resolution and association
// inspection.
func newSelectize(field model.Field, data InputData) (*selectize.Input, error) {
	return selectize.New(field,
		selectize.WithAssociationResolver(data.Resolver),
		selectize.WithRecordSource(data.Source),
		selectize.WithDefaults(data.Config.Selectize),
		selectize.WithTranslationPrefix(data.Config.TranslationPrefix),
		selectize.WithLogger(data.logger()),
	)
}
