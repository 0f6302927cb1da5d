package inputs

import (
	"bytes"
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/goliatone/go-formext/pkg/config"
	"github.com/goliatone/go-formext/pkg/model"
	"github.com/goliatone/go-formext/pkg/render"
	rendertemplate "github.com/goliatone/go-formext/pkg/render/template"
)

// InputRenderer defines the contract input renderers must satisfy.
// Implementations receive the bound field and write HTML into buf, either
// through the supplied template renderer or with custom logic.
type InputRenderer func(ctx context.Context, buf *bytes.Buffer, field model.Field, data InputData) error

// InputData carries the collaborators and configuration available to an
// input renderer for a single render.
type InputData struct {
	Template rendertemplate.TemplateRenderer
	Config   config.Config
	Options  render.RenderOptions
	Resolver model.AssociationResolver
	Source   model.RecordSource
	Logger   *zap.Logger
}

// ThemePartials returns the template overrides of the active theme.
func (d InputData) ThemePartials() map[string]string {
	return d.Options.ThemePartials()
}

// Translate looks up an input-scoped key ("file.remove") under the configured
// translation prefix.
func (d InputData) Translate(key, fallback string) string {
	return d.Options.Translate(render.TranslationKey(d.Config.TranslationPrefix, key), fallback)
}

func (d InputData) logger() *zap.Logger {
	if d.Logger == nil {
		return zap.NewNop()
	}
	return d.Logger
}

// Script describes JavaScript dependencies an input needs to emit once per
// page.
type Script struct {
	Src    string
	Type   string
	Inline string
	Async  bool
	Defer  bool
	Module bool
	Attrs  map[string]string
}

// Descriptor bundles the renderer implementation with its asset
// dependencies. Stylesheet hrefs and script sources are asset keys resolved
// through the theme when assets are requested from the Renderer.
type Descriptor struct {
	Name        string
	Renderer    InputRenderer
	Stylesheets []string
	Scripts     []Script
}

// Registry tracks input descriptors keyed by name. Callers can register new
// inputs or override the defaults.
type Registry struct {
	mu     sync.RWMutex
	inputs map[string]Descriptor
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		inputs: make(map[string]Descriptor),
	}
}

// Clone returns a deep copy of the registry to allow isolated mutations.
func (r *Registry) Clone() *Registry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cloned := NewRegistry()
	for name, descriptor := range r.inputs {
		cloned.inputs[name] = cloneDescriptor(descriptor)
	}
	return cloned
}

// Register associates a descriptor with name. Existing entries are replaced.
func (r *Registry) Register(name string, descriptor Descriptor) error {
	if name = normalize(name); name == "" {
		return fmt.Errorf("inputs: input name is required")
	}
	if descriptor.Renderer == nil {
		return fmt.Errorf("inputs: renderer for %q is nil", name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	descriptor.Name = name
	r.inputs[name] = cloneDescriptor(descriptor)
	return nil
}

// MustRegister mirrors Register but panics on error, simplifying default
// registry setup.
func (r *Registry) MustRegister(name string, descriptor Descriptor) {
	if err := r.Register(name, descriptor); err != nil {
		panic(err)
	}
}

// Descriptor fetches a descriptor by name.
func (r *Registry) Descriptor(name string) (Descriptor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	descriptor, ok := r.inputs[normalize(name)]
	if !ok {
		return Descriptor{}, false
	}
	return cloneDescriptor(descriptor), true
}

// Names returns the sorted registered input names.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.inputs))
	for name := range r.inputs {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Assets aggregates the de-duplicated dependencies of the named inputs in
// request order.
func (r *Registry) Assets(names []string) (stylesheets []string, scripts []Script) {
	if len(names) == 0 {
		return nil, nil
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	seenStyles := make(map[string]struct{})
	seenScripts := make(map[string]struct{})

	for _, name := range names {
		descriptor, ok := r.inputs[normalize(name)]
		if !ok {
			continue
		}
		for _, href := range descriptor.Stylesheets {
			if href == "" {
				continue
			}
			if _, exists := seenStyles[href]; exists {
				continue
			}
			seenStyles[href] = struct{}{}
			stylesheets = append(stylesheets, href)
		}
		for _, script := range descriptor.Scripts {
			key := scriptKey(script)
			if _, exists := seenScripts[key]; exists {
				continue
			}
			seenScripts[key] = struct{}{}
			scripts = append(scripts, cloneScript(script))
		}
	}
	return stylesheets, scripts
}

func cloneDescriptor(src Descriptor) Descriptor {
	clone := Descriptor{
		Name:        src.Name,
		Renderer:    src.Renderer,
		Stylesheets: slices.Clone(src.Stylesheets),
		Scripts:     make([]Script, len(src.Scripts)),
	}
	for idx, script := range src.Scripts {
		clone.Scripts[idx] = cloneScript(script)
	}
	return clone
}

func cloneScript(script Script) Script {
	out := script
	if len(script.Attrs) > 0 {
		out.Attrs = make(map[string]string, len(script.Attrs))
		for key, value := range script.Attrs {
			out.Attrs[key] = value
		}
	} else {
		out.Attrs = nil
	}
	return out
}

func scriptKey(script Script) string {
	if script.Src != "" {
		return "src:" + script.Src
	}
	return "inline:" + script.Inline
}

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
