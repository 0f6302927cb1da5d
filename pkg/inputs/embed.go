package inputs

import (
	"embed"
	"io/fs"
)

//go:embed templates/inputs/*.tmpl
var embeddedTemplates embed.FS

//go:embed assets/*
var embeddedAssets embed.FS

// StylesheetName is the asset key of the bundled stylesheet.
const StylesheetName = "formext.css"

// TemplatesFS exposes the embedded input templates. Template names are
// relative to its root ("templates/inputs/numeric.tmpl").
func TemplatesFS() fs.FS {
	return embeddedTemplates
}

// AssetsFS exposes the bundled stylesheet so callers can serve it or copy it
// into their own asset pipeline.
func AssetsFS() fs.FS {
	sub, err := fs.Sub(embeddedAssets, "assets")
	if err != nil {
		return embeddedAssets
	}
	return sub
}
