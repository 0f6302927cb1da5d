package selectize

import (
	"bytes"
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/goliatone/go-formext/pkg/config"
	"github.com/goliatone/go-formext/pkg/model"
	"github.com/goliatone/go-formext/pkg/render"
)

// Name is the registry name of the selectize input.
const Name = "selectize"

// TranslationKeyAdd is the key of the "add item" label shown for creatable
// inputs, relative to the translation prefix.
const TranslationKeyAdd = "selectize.add"

const defaultAddLabel = "Add"

// Log messages and fields.
const (
	LogMsgUnresolvedRecord = "selectize identifier without displayable record"
	LogMsgRelatedLoaded    = "selectize related records loaded"
	LogMsgCollectionLoaded = "selectize association collection loaded"

	LogFieldAttribute = "attribute"
	LogFieldValue     = "value"
	LogFieldCount     = "count"
	LogFieldRelated   = "related_type"
)

// Option configures an Input.
type Option func(*Input)

// WithAssociationResolver sets the collaborator used to reflect associations.
func WithAssociationResolver(resolver model.AssociationResolver) Option {
	return func(in *Input) {
		in.resolver = resolver
	}
}

// WithRecordSource sets the collaborator used to load related records.
func WithRecordSource(source model.RecordSource) Option {
	return func(in *Input) {
		in.source = source
	}
}

// WithDefaults sets the initializer defaults merged under per-field options.
func WithDefaults(defaults config.Selectize) Option {
	return func(in *Input) {
		in.defaults = defaults
	}
}

// WithTranslationPrefix namespaces the "add item" translation key.
func WithTranslationPrefix(prefix string) Option {
	return func(in *Input) {
		in.prefix = prefix
	}
}

// WithLogger sets the logger. A nil logger disables logging.
func WithLogger(logger *zap.Logger) Option {
	return func(in *Input) {
		if logger == nil {
			logger = zap.NewNop()
		}
		in.logger = logger
	}
}

// Input is a single render of the selectize input. It is not safe for
// concurrent use; construct one per render.
type Input struct {
	field      model.Field
	config     Config
	inspection Inspection

	resolver model.AssociationResolver
	source   model.RecordSource
	defaults config.Selectize
	prefix   string
	logger   *zap.Logger

	related       []model.Record
	relatedLoaded bool
}

// New resolves the configuration and association metadata for field.
func New(field model.Field, opts ...Option) (*Input, error) {
	in := &Input{
		field:    field,
		defaults: config.Default().Selectize,
		prefix:   config.Default().TranslationPrefix,
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(in)
		}
	}

	cfg, err := ResolveConfig(field, in.defaults)
	if err != nil {
		return nil, err
	}
	in.config = cfg
	in.inspection = Inspect(field, in.resolver)
	return in, nil
}

// Config returns the resolved configuration.
func (in *Input) Config() Config {
	return in.config
}

// Inspection returns the association classification.
func (in *Input) Inspection() Inspection {
	return in.inspection
}

// Attribute returns the submitted attribute name (the foreign attribute for
// associations).
func (in *Input) Attribute() string {
	return in.inspection.SubmitAttribute(in.field)
}

// Value returns the current value: the explicit value option when set,
// otherwise the object's submitted attribute.
func (in *Input) Value() any {
	if in.config.HasValue {
		return in.config.Value
	}
	if in.field.Object == nil {
		return nil
	}
	value, ok := in.field.Object.Attribute(in.Attribute())
	if !ok && in.Attribute() != in.field.Attribute {
		value, _ = in.field.Object.Attribute(in.field.Attribute)
		return recordIDs(value)
	}
	return value
}

// recordIDs replaces records (or lists of records) with their identifiers,
// for objects that expose the association but not its foreign attribute.
func recordIDs(value any) any {
	if record, ok := value.(model.Record); ok {
		return record.RecordID()
	}
	items, ok := model.Sequence(value)
	if !ok {
		return value
	}
	for i, item := range items {
		if record, ok := item.(model.Record); ok {
			items[i] = record.RecordID()
		}
	}
	return items
}

// Multi reports multi mode: explicitly configured, or a sequence value.
func (in *Input) Multi() bool {
	if in.config.Multi {
		return true
	}
	_, ok := model.Sequence(in.Value())
	return ok
}

// Related returns the records currently associated with the bound object.
// The source is queried at most once per Input.
func (in *Input) Related(ctx context.Context) ([]model.Record, error) {
	if in.relatedLoaded {
		return in.related, nil
	}
	if !in.inspection.IsAssociation || in.source == nil || in.field.Object == nil {
		in.relatedLoaded = true
		return nil, nil
	}
	records, err := in.source.Related(ctx, in.field.Object, in.inspection.Association)
	if err != nil {
		return nil, newRecordSourceError(in.field.Attribute, err)
	}
	in.related = records
	in.relatedLoaded = true
	in.logger.Debug(LogMsgRelatedLoaded,
		zap.String(LogFieldAttribute, in.field.Attribute),
		zap.Int(LogFieldCount, len(records)),
	)
	return records, nil
}

// SerializeValue converts the current value into pre-selected options. An
// explicit data-value HTML option is returned verbatim. Single mode yields a
// model.Option (nil when there is no value), multi mode a []model.Option.
// Identifiers without a displayable related record fall back to their
// string form; nil identifiers are skipped. Only RecordSource failures are
// returned as errors.
func (in *Input) SerializeValue(ctx context.Context) (any, error) {
	if override, ok := in.field.HTML.Data()["value"]; ok && present(override) {
		return override, nil
	}

	value := in.Value()
	if in.Multi() {
		items, ok := model.Sequence(value)
		if !ok && value != nil {
			items = []any{value}
		}
		related, err := in.Related(ctx)
		if err != nil {
			return nil, err
		}
		out := make([]model.Option, 0, len(items))
		for _, item := range items {
			if item == nil {
				continue
			}
			out = append(out, in.serializeOne(item, related))
		}
		return out, nil
	}

	if value == nil {
		return nil, nil
	}
	related, err := in.Related(ctx)
	if err != nil {
		return nil, err
	}
	return in.serializeOne(value, related), nil
}

func (in *Input) serializeOne(value any, related []model.Record) model.Option {
	if in.inspection.IsAssociation {
		for _, record := range related {
			if record == nil || !model.SameID(record.RecordID(), value) {
				continue
			}
			if text := model.ResolvedText(record); text != "" {
				return model.Option{Text: text, Value: value}
			}
			break
		}
		in.logger.Debug(LogMsgUnresolvedRecord,
			zap.String(LogFieldAttribute, in.field.Attribute),
			zap.Any(LogFieldValue, value),
		)
	}
	return model.Option{Text: model.StringForm(value), Value: value}
}

// Collection resolves the local options. It returns nil when a search URL is
// configured, the normalised configured collection when one is set, every
// record of the related type for associations and an empty list otherwise.
func (in *Input) Collection(ctx context.Context) ([]model.Option, error) {
	if in.config.SearchURL != "" {
		return nil, nil
	}

	collection := in.config.Collection
	switch collection.Kind() {
	case model.CollectionList:
		return NormalizeOptions(collection.Items())
	case model.CollectionAttribute:
		if in.field.Object == nil {
			return []model.Option{}, nil
		}
		raw, _ := in.field.Object.Attribute(collection.Attribute())
		if raw == nil {
			return []model.Option{}, nil
		}
		items, ok := model.Sequence(raw)
		if !ok {
			return nil, newInvalidCollectionError(collection.Attribute())
		}
		return NormalizeOptions(items)
	}

	if in.inspection.IsAssociation && in.source != nil {
		relatedType := in.inspection.Association.RelatedType
		records, err := in.source.All(ctx, relatedType)
		if err != nil {
			return nil, newRecordSourceError(in.field.Attribute, err)
		}
		in.logger.Debug(LogMsgCollectionLoaded,
			zap.String(LogFieldRelated, relatedType),
			zap.Int(LogFieldCount, len(records)),
		)
		items := make([]any, 0, len(records))
		for _, record := range records {
			items = append(items, record)
		}
		return NormalizeOptions(items)
	}
	return []model.Option{}, nil
}

// Markup assembles the emitter input. addLabel is only consulted for
// creatable inputs.
func (in *Input) Markup(ctx context.Context, addLabel func() string) (Markup, error) {
	serialized, err := in.SerializeValue(ctx)
	if err != nil {
		return Markup{}, err
	}
	collection, err := in.Collection(ctx)
	if err != nil {
		return Markup{}, err
	}

	multi := in.Multi()
	attribute := in.Attribute()
	id := render.FieldID(in.field.ObjectName, attribute)
	if custom, ok := in.field.HTML.Lookup("id"); ok && custom != nil {
		id = model.StringForm(custom)
	}

	markup := Markup{
		Name:        render.FieldName(in.field.ObjectName, attribute, multi),
		ID:          id,
		Multiple:    multi,
		Disabled:    in.field.Disabled,
		Serialized:  serialized,
		Creatable:   in.config.Creatable,
		Collection:  collection,
		MaxItems:    in.config.MaxItems,
		SortField:   in.config.SortField,
		SearchURL:   in.config.SearchURL,
		SearchParam: in.config.SearchParam,
		Escape:      in.config.Escape,
		HTML:        in.field.HTML,
	}
	if !multi {
		markup.Value = in.Value()
	}
	if markup.Creatable && addLabel != nil {
		markup.AddLabel = addLabel()
	}
	return markup, nil
}

// Render writes the hidden input into buf, translating the "add item" label
// through opts.
func (in *Input) Render(ctx context.Context, buf *bytes.Buffer, opts render.RenderOptions) error {
	markup, err := in.Markup(ctx, func() string {
		return opts.Translate(render.TranslationKey(in.prefix, TranslationKeyAdd), defaultAddLabel)
	})
	if err != nil {
		return err
	}
	Emit(buf, markup)
	return nil
}

// present mirrors the host framework's truthiness for the data-value
// override: nil, false and blank strings do not count.
func present(value any) bool {
	switch v := value.(type) {
	case nil:
		return false
	case bool:
		return v
	case string:
		return strings.TrimSpace(v) != ""
	default:
		return true
	}
}
