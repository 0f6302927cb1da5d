package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/goliatone/go-formext/pkg/association/openapi"
	"github.com/goliatone/go-formext/pkg/config"
	"github.com/goliatone/go-formext/pkg/inputs"
)

const (
	kindConfig  = "config"
	kindField   = "field"
	kindOpenAPI = "openapi"
)

type violation struct {
	file     string
	location string
	message  string
}

func main() {
	kind := flag.String("kind", kindField, "document kind: config, field or openapi")
	flag.Usage = func() {
		if _, err := fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [-kind config|field|openapi] [paths...]\n", filepath.Base(os.Args[0])); err != nil {
			panic(err)
		}
		if _, err := fmt.Fprintf(flag.CommandLine.Output(), "\nLint formext initializers, field documents and OpenAPI relationship declarations.\n"); err != nil {
			panic(err)
		}
		flag.PrintDefaults()
	}
	flag.Parse()

	paths := flag.Args()
	if len(paths) == 0 {
		flag.Usage()
		os.Exit(2)
	}

	ctx := context.Background()
	registry := inputs.NewDefaultRegistry()

	var violations []violation
	for _, path := range paths {
		var (
			linted []violation
			err    error
		)
		switch *kind {
		case kindConfig:
			linted, err = lintConfig(path)
		case kindField:
			linted, err = lintField(registry, path)
		case kindOpenAPI:
			linted, err = lintOpenAPI(ctx, path)
		default:
			fmt.Fprintf(os.Stderr, "unknown kind %q\n", *kind)
			os.Exit(2)
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "lint %s: %v\n", path, err)
			os.Exit(1)
		}
		violations = append(violations, linted...)
	}

	if len(violations) > 0 {
		sort.Slice(violations, func(i, j int) bool {
			if violations[i].file == violations[j].file {
				if violations[i].location == violations[j].location {
					return violations[i].message < violations[j].message
				}
				return violations[i].location < violations[j].location
			}
			return violations[i].file < violations[j].file
		})
		for _, v := range violations {
			fmt.Fprintf(os.Stderr, "%s: %s -> %s\n", v.file, v.location, v.message)
		}
		os.Exit(1)
	}
}

func lintConfig(path string) ([]violation, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	if _, err := config.Parse(raw, path); err != nil {
		return []violation{{file: path, location: "document", message: err.Error()}}, nil
	}
	return nil, nil
}

func lintField(registry *inputs.Registry, path string) ([]violation, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	doc, err := config.ParseFieldDocument(raw, path)
	if err != nil {
		return []violation{{file: path, location: "document", message: err.Error()}}, nil
	}

	var result []violation
	if _, ok := registry.Descriptor(doc.Input); !ok {
		result = append(result, violation{
			file:     path,
			location: "input",
			message:  fmt.Sprintf("unsupported input %q (supported: %s)", doc.Input, strings.Join(registry.Names(), ", ")),
		})
	}
	if _, err := doc.Store(); err != nil {
		result = append(result, violation{file: path, location: "associations", message: err.Error()})
	}
	for i, assoc := range doc.Associations {
		if strings.TrimSpace(assoc.Type) == "" {
			result = append(result, violation{
				file:     path,
				location: formatLocation([]string{"associations", fmt.Sprint(i), "type"}),
				message:  "association type is empty",
			})
		}
	}
	return result, nil
}

func lintOpenAPI(ctx context.Context, path string) ([]violation, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	resolver, err := openapi.Load(ctx, raw)
	if err != nil {
		return []violation{{file: path, location: "document", message: err.Error()}}, nil
	}
	if len(resolver.Types()) == 0 {
		return []violation{{
			file:     path,
			location: formatLocation([]string{"components", "schemas"}),
			message:  "no x-relationships declarations found",
		}}, nil
	}
	return nil, nil
}

func formatLocation(path []string) string {
	return strings.Join(path, " > ")
}
