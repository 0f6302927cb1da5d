package formext

import (
	"context"
	"io/fs"

	"github.com/goliatone/go-formext/pkg/association/openapi"
	"github.com/goliatone/go-formext/pkg/config"
)

// LoadConfig reads the initializer document at path from fsys. A nil fsys
// returns the embedded defaults.
func LoadConfig(fsys fs.FS, path string) (Config, error) {
	return config.LoadFS(fsys, path)
}

// LoadOpenAPIAssociations builds an association resolver from the
// x-relationships extensions of an OpenAPI document.
func LoadOpenAPIAssociations(ctx context.Context, data []byte) (*openapi.Resolver, error) {
	return openapi.Load(ctx, data)
}
