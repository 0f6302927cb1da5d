package formext

import (
	"io/fs"

	"github.com/goliatone/go-formext/pkg/inputs"
)

// EmbeddedTemplates exposes the built-in input templates so callers can
// reuse or extend them without importing the inputs package directly.
func EmbeddedTemplates() fs.FS {
	return inputs.TemplatesFS()
}

// AssetsFS exposes the bundled stylesheet so Go applications can serve it
// without an asset build step.
//
// Typical mount:
//
//	mux.Handle("/formext/",
//	  http.StripPrefix("/formext/",
//	    http.FileServerFS(formext.AssetsFS()),
//	  ),
//	)
func AssetsFS() fs.FS {
	return inputs.AssetsFS()
}
