package inputs

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	theme "github.com/goliatone/go-theme"
	"go.uber.org/zap"

	"github.com/goliatone/go-formext/pkg/config"
	"github.com/goliatone/go-formext/pkg/model"
	"github.com/goliatone/go-formext/pkg/render"
	rendertemplate "github.com/goliatone/go-formext/pkg/render/template"
	gotemplate "github.com/goliatone/go-formext/pkg/render/template/gotemplate"
)

// ErrUnknownInput is returned when no input is registered under the
// requested name.
var ErrUnknownInput = errors.New("inputs: unknown input")

// Log messages and fields.
const (
	LogMsgInputRendered = "input rendered"
	LogMsgUnknownInput  = "unknown input requested"

	LogFieldInput     = "input"
	LogFieldAttribute = "attribute"
)

type Option func(*options)

type options struct {
	templateFS       fs.FS
	templateRenderer rendertemplate.TemplateRenderer
	registry         *Registry
	config           *config.Config
	resolver         model.AssociationResolver
	source           model.RecordSource
	logger           *zap.Logger
	themeSelector    theme.ThemeSelector
	themeName        string
	themeVariant     string
}

// WithTemplatesFS supplies an alternate template bundle via fs.FS.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *options) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir loads templates from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *options) {
		if path == "" {
			return
		}
		cfg.templateFS = os.DirFS(path)
	}
}

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *options) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// WithRegistry replaces the default input registry.
func WithRegistry(registry *Registry) Option {
	return func(cfg *options) {
		if registry != nil {
			cfg.registry = registry
		}
	}
}

// WithConfig sets the input defaults. The embedded defaults are used
// otherwise.
func WithConfig(c config.Config) Option {
	return func(cfg *options) {
		cfg.config = &c
	}
}

// WithAssociationResolver sets the collaborator used to classify
// associations.
func WithAssociationResolver(resolver model.AssociationResolver) Option {
	return func(cfg *options) {
		cfg.resolver = resolver
	}
}

// WithRecordSource sets the collaborator used to load related records.
func WithRecordSource(source model.RecordSource) Option {
	return func(cfg *options) {
		cfg.source = source
	}
}

// AssociationStore classifies associations and loads their records.
type AssociationStore interface {
	model.AssociationResolver
	model.RecordSource
}

// WithAssociationStore sets both association collaborators from one store.
func WithAssociationStore(store AssociationStore) Option {
	return func(cfg *options) {
		if store == nil {
			return
		}
		cfg.resolver = store
		cfg.source = store
	}
}

// WithLogger sets the logger. A nil logger disables logging.
func WithLogger(logger *zap.Logger) Option {
	return func(cfg *options) {
		cfg.logger = logger
	}
}

// WithTheme resolves the named theme through selector for renders whose
// RenderOptions carry no theme of their own.
func WithTheme(selector theme.ThemeSelector, name, variant string) Option {
	return func(cfg *options) {
		cfg.themeSelector = selector
		cfg.themeName = name
		cfg.themeVariant = variant
	}
}

// Renderer dispatches a field to the input registered under a name. It is
// safe for concurrent use once constructed.
type Renderer struct {
	templates rendertemplate.TemplateRenderer
	registry  *Registry
	config    config.Config
	resolver  model.AssociationResolver
	source    model.RecordSource
	logger    *zap.Logger
	theme     *theme.RendererConfig
}

// New constructs a renderer applying any provided options.
func New(opts ...Option) (*Renderer, error) {
	cfg := options{templateFS: TemplatesFS()}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}
	if cfg.logger == nil {
		cfg.logger = zap.NewNop()
	}
	if cfg.registry == nil {
		cfg.registry = NewDefaultRegistry()
	}
	if cfg.config == nil {
		defaults := config.Default()
		cfg.config = &defaults
	}

	templates := cfg.templateRenderer
	if templates == nil {
		engine, err := gotemplate.New(
			gotemplate.WithFS(cfg.templateFS),
			gotemplate.WithExtension(".tmpl"),
		)
		if err != nil {
			return nil, fmt.Errorf("inputs: configure template renderer: %w", err)
		}
		templates = engine
	}

	renderer := &Renderer{
		templates: templates,
		registry:  cfg.registry,
		config:    *cfg.config,
		resolver:  cfg.resolver,
		source:    cfg.source,
		logger:    cfg.logger,
	}

	if cfg.themeSelector != nil {
		selected, err := render.SelectTheme(cfg.themeSelector, cfg.themeName, cfg.themeVariant, DefaultPartials())
		if err != nil {
			return nil, fmt.Errorf("inputs: select theme %q: %w", cfg.themeName, err)
		}
		renderer.theme = selected
	}
	return renderer, nil
}

// Registry exposes the input registry.
func (r *Renderer) Registry() *Registry {
	return r.registry
}

// Config returns the input defaults the renderer was built with.
func (r *Renderer) Config() config.Config {
	return r.config
}

// Render renders field with the input registered under name.
func (r *Renderer) Render(ctx context.Context, name string, field model.Field, opts render.RenderOptions) (string, error) {
	var buf bytes.Buffer
	if err := r.RenderTo(ctx, &buf, name, field, opts); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// RenderTo renders field into buf. Nothing is written when rendering fails.
func (r *Renderer) RenderTo(ctx context.Context, buf *bytes.Buffer, name string, field model.Field, opts render.RenderOptions) error {
	if r == nil || r.registry == nil {
		return errors.New("inputs: renderer is nil")
	}
	descriptor, ok := r.registry.Descriptor(name)
	if !ok {
		r.logger.Debug(LogMsgUnknownInput, zap.String(LogFieldInput, name))
		return fmt.Errorf("%w %q", ErrUnknownInput, name)
	}
	if opts.Theme == nil {
		opts.Theme = r.theme
	}

	var out bytes.Buffer
	err := descriptor.Renderer(ctx, &out, field, InputData{
		Template: r.templates,
		Config:   r.config,
		Options:  opts,
		Resolver: r.resolver,
		Source:   r.source,
		Logger:   r.logger,
	})
	if err != nil {
		return fmt.Errorf("inputs: render %s %q: %w", descriptor.Name, field.Attribute, err)
	}
	buf.Write(out.Bytes())

	r.logger.Debug(LogMsgInputRendered,
		zap.String(LogFieldInput, descriptor.Name),
		zap.String(LogFieldAttribute, field.Attribute),
	)
	return nil
}

// Assets returns the de-duplicated stylesheets and scripts of the named
// inputs with their URLs resolved through the theme.
func (r *Renderer) Assets(names []string, opts render.RenderOptions) ([]string, []Script) {
	if opts.Theme == nil {
		opts.Theme = r.theme
	}
	stylesheets, scripts := r.registry.Assets(names)
	for i, href := range stylesheets {
		stylesheets[i] = opts.AssetURL(href)
	}
	for i := range scripts {
		if scripts[i].Src != "" {
			scripts[i].Src = opts.AssetURL(scripts[i].Src)
		}
	}
	return stylesheets, scripts
}
