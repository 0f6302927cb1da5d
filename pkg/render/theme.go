package render

import (
	"maps"
	"path"
	"strings"

	theme "github.com/goliatone/go-theme"
)

// ThemeConfig flattens a go-theme selection into the renderer config consumed
// by inputs. Variant templates, tokens and assets override the base manifest;
// fallbacks fill partial keys the manifest does not define.
func ThemeConfig(selection *theme.Selection, fallbacks map[string]string) *theme.RendererConfig {
	cfg := &theme.RendererConfig{
		Partials: make(map[string]string, len(fallbacks)),
		Tokens:   map[string]string{},
		CSSVars:  map[string]string{},
	}
	maps.Copy(cfg.Partials, fallbacks)
	if selection == nil {
		cfg.AssetURL = func(key string) string { return key }
		return cfg
	}

	cfg.Theme = selection.Theme
	cfg.Variant = selection.Variant

	assetPrefix := ""
	assetFiles := map[string]string{}
	if manifest := selection.Manifest; manifest != nil {
		maps.Copy(cfg.Partials, manifest.Templates)
		maps.Copy(cfg.Tokens, manifest.Tokens)
		assetPrefix = manifest.Assets.Prefix
		maps.Copy(assetFiles, manifest.Assets.Files)

		if variant, ok := manifest.Variants[selection.Variant]; ok {
			maps.Copy(cfg.Partials, variant.Templates)
			maps.Copy(cfg.Tokens, variant.Tokens)
			if strings.TrimSpace(variant.Assets.Prefix) != "" {
				assetPrefix = variant.Assets.Prefix
			}
			maps.Copy(assetFiles, variant.Assets.Files)
		}
	}

	for key, value := range cfg.Tokens {
		cfg.CSSVars["--"+strings.TrimPrefix(key, "--")] = value
	}

	cfg.AssetURL = func(key string) string {
		file, ok := assetFiles[key]
		if !ok {
			return ""
		}
		if strings.Contains(file, "://") || strings.HasPrefix(file, "/") || assetPrefix == "" {
			return file
		}
		if strings.Contains(assetPrefix, "://") {
			return strings.TrimRight(assetPrefix, "/") + "/" + strings.TrimLeft(file, "/")
		}
		return path.Join(assetPrefix, file)
	}
	return cfg
}

// SelectTheme resolves name/variant through selector and flattens the
// result. A nil selector yields a config holding only the fallbacks.
func SelectTheme(selector theme.ThemeSelector, name, variant string, fallbacks map[string]string) (*theme.RendererConfig, error) {
	if selector == nil {
		return ThemeConfig(nil, fallbacks), nil
	}
	selection, err := selector.Select(name, variant)
	if err != nil {
		return nil, err
	}
	return ThemeConfig(selection, fallbacks), nil
}
