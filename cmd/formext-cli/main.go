package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-formext/pkg/association/openapi"
	"github.com/goliatone/go-formext/pkg/config"
	"github.com/goliatone/go-formext/pkg/inputs"
	"github.com/goliatone/go-formext/pkg/render"
)

func main() {
	fieldPath := flag.String("field", "", "field document (YAML) to render")
	configPath := flag.String("config", "", "initializer document (defaults when empty)")
	locale := flag.String("locale", "", "locale passed to the translator")
	translations := flag.String("translations", "", "YAML map of locale -> key -> message")
	openapiPath := flag.String("openapi", "", "OpenAPI document declaring x-relationships")
	output := flag.String("output", "", "output file (stdout if empty)")
	assets := flag.Bool("assets", false, "print the stylesheet and script URLs the input needs")
	verbose := flag.Bool("verbose", false, "log render details")
	flag.Parse()

	if strings.TrimSpace(*fieldPath) == "" {
		log.Fatalf("a -field document is required")
	}
	ctx := context.Background()

	logger := zap.NewNop()
	if *verbose {
		dev, err := zap.NewDevelopment()
		if err != nil {
			log.Fatalf("Failed to build logger: %v", err)
		}
		logger = dev
		defer func() { _ = logger.Sync() }()
	}

	doc, err := config.LoadFieldDocument(os.DirFS(filepath.Dir(*fieldPath)), filepath.Base(*fieldPath))
	if err != nil {
		log.Fatalf("Failed to load field document: %v", err)
	}
	store, err := doc.Store()
	if err != nil {
		log.Fatalf("Failed to build association store: %v", err)
	}

	cfg := config.Default()
	if *configPath != "" {
		cfg, err = config.LoadFS(os.DirFS(filepath.Dir(*configPath)), filepath.Base(*configPath))
		if err != nil {
			log.Fatalf("Failed to load initializer: %v", err)
		}
	}

	opts := []inputs.Option{
		inputs.WithConfig(cfg),
		inputs.WithAssociationStore(store),
		inputs.WithLogger(logger),
	}
	if *openapiPath != "" {
		raw, err := os.ReadFile(*openapiPath)
		if err != nil {
			log.Fatalf("Failed to read OpenAPI document: %v", err)
		}
		resolver, err := openapi.Load(ctx, raw)
		if err != nil {
			log.Fatalf("Failed to load OpenAPI document: %v", err)
		}
		opts = append(opts, inputs.WithAssociationResolver(resolver))
	}

	renderer, err := inputs.New(opts...)
	if err != nil {
		log.Fatalf("Failed to build renderer: %v", err)
	}

	renderOpts := render.RenderOptions{Locale: *locale}
	if *translations != "" {
		translator, err := loadTranslations(*translations)
		if err != nil {
			log.Fatalf("Failed to load translations: %v", err)
		}
		renderOpts.Translator = translator
	}

	html, err := renderer.Render(ctx, doc.Input, doc.Field(), renderOpts)
	if err != nil {
		log.Fatalf("Failed to render input: %v", err)
	}

	if *assets {
		stylesheets, scripts := renderer.Assets([]string{doc.Input}, renderOpts)
		var head strings.Builder
		for _, href := range stylesheets {
			fmt.Fprintf(&head, "<link rel=\"stylesheet\" href=\"%s\">\n", href)
		}
		for _, script := range scripts {
			if script.Src == "" {
				continue
			}
			fmt.Fprintf(&head, "<script src=\"%s\"></script>\n", script.Src)
		}
		html = head.String() + html
	}

	if *output != "" {
		if err := os.WriteFile(*output, []byte(html+"\n"), 0o644); err != nil {
			log.Fatalf("Failed to write output: %v", err)
		}
		fmt.Printf("Input written to %s\n", *output)
	} else {
		fmt.Println(html)
	}
}

func loadTranslations(path string) (render.Translator, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	catalog := map[string]map[string]string{}
	if err := yaml.Unmarshal(raw, &catalog); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return render.TranslatorFunc(func(locale, key string, _ ...any) (string, error) {
		if msg, ok := catalog[locale][key]; ok {
			return msg, nil
		}
		return "", fmt.Errorf("missing translation %s:%s", locale, key)
	}), nil
}
