// Package install implements the interactive initializer generator: it
// prompts for the input defaults and writes them as a YAML document the
// inputs renderer loads with config.LoadFS.
package install

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/goliatone/go-formext/pkg/config"
)

// DefaultPath is where the initializer is written when no path is given.
const DefaultPath = "config/formext.yaml"

// Options configures a run.
type Options struct {
	Path  string
	Force bool
	// Base seeds the prompt defaults. The embedded defaults are used when
	// nil.
	Base *config.Config
}

// Result reports what a run did.
type Result struct {
	Path    string
	Written bool
	Config  config.Config
}

type dateTimePreset struct {
	label      string
	layout     string
	dateLayout string
	timeLayout string
	format     string
	dateFormat string
	timeFormat string
}

var dateTimePresets = []dateTimePreset{
	{"ISO (2024-03-05 14:30)", "2006-01-02 15:04", "2006-01-02", "15:04", "YYYY-MM-DD HH:mm", "YYYY-MM-DD", "HH:mm"},
	{"European (05/03/2024 14:30)", "02/01/2006 15:04", "02/01/2006", "15:04", "DD/MM/YYYY HH:mm", "DD/MM/YYYY", "HH:mm"},
	{"US (03/05/2024 02:30 PM)", "01/02/2006 03:04 PM", "01/02/2006", "03:04 PM", "MM/DD/YYYY hh:mm A", "MM/DD/YYYY", "hh:mm A"},
}

var (
	colorFormats    = []string{"hex", "rgb", "rgba", "hsl", "hsla"}
	sanitizers      = []string{config.PolicyUGC, config.PolicyStrict}
	redactorButtons = []string{"html", "formatting", "bold", "italic", "deleted", "unorderedlist", "orderedlist", "link", "image"}
)

// Run prompts for the initializer values through driver and writes the
// document. An existing file is only replaced when opts.Force is set or the
// user confirms the overwrite.
func Run(ctx context.Context, driver PromptDriver, opts Options) (Result, error) {
	if driver == nil {
		return Result{}, errors.New("install: prompt driver is nil")
	}
	path := strings.TrimSpace(opts.Path)
	if path == "" {
		path = DefaultPath
	}
	cfg := config.Default()
	if opts.Base != nil {
		cfg = opts.Base.Clone()
	}
	result := Result{Path: path}

	if _, err := os.Stat(path); err == nil && !opts.Force {
		overwrite, err := driver.Confirm(ctx, ConfirmConfig{
			Message: fmt.Sprintf("%s already exists. Overwrite?", path),
		})
		if err != nil {
			return result, err
		}
		if !overwrite {
			result.Config = cfg
			return result, driver.Info(ctx, "Skipped "+path)
		}
	} else if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return result, fmt.Errorf("install: stat %s: %w", path, err)
	}

	if err := ask(ctx, driver, &cfg); err != nil {
		return result, err
	}
	if err := cfg.Validate(path); err != nil {
		return result, err
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		return result, fmt.Errorf("install: encode initializer: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return result, fmt.Errorf("install: create %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return result, fmt.Errorf("install: write %s: %w", path, err)
	}

	result.Written = true
	result.Config = cfg
	return result, driver.Info(ctx, "Initializer written to "+path)
}

func ask(ctx context.Context, driver PromptDriver, cfg *config.Config) error {
	prefix, err := driver.Input(ctx, InputConfig{
		Message:   "Translation key prefix",
		Default:   cfg.TranslationPrefix,
		Help:      "Input labels are looked up as <prefix>.<input>.<key>, e.g. formext.selectize.add",
		Validator: requireText,
	})
	if err != nil {
		return err
	}
	cfg.TranslationPrefix = strings.TrimSpace(prefix)

	creatable, err := driver.Confirm(ctx, ConfirmConfig{
		Message: "Let selectize inputs create new items by default?",
		Default: cfg.Selectize.Creatable,
	})
	if err != nil {
		return err
	}
	cfg.Selectize.Creatable = creatable

	searchParam, err := driver.Input(ctx, InputConfig{
		Message:   "Selectize remote search query parameter",
		Default:   cfg.Selectize.SearchParam,
		Validator: requireText,
	})
	if err != nil {
		return err
	}
	cfg.Selectize.SearchParam = strings.TrimSpace(searchParam)

	labels := make([]string, len(dateTimePresets))
	for i, preset := range dateTimePresets {
		labels[i] = preset.label
	}
	presetIdx, err := driver.Select(ctx, SelectConfig{
		Message:      "Date-time format",
		Options:      labels,
		DefaultIndex: presetIndex(cfg.DateTime.Layout),
	})
	if err != nil {
		return err
	}
	if presetIdx >= 0 && presetIdx < len(dateTimePresets) {
		preset := dateTimePresets[presetIdx]
		cfg.DateTime = config.DateTime{
			Layout:     preset.layout,
			DateLayout: preset.dateLayout,
			TimeLayout: preset.timeLayout,
			Format:     preset.format,
			DateFormat: preset.dateFormat,
			TimeFormat: preset.timeFormat,
		}
	}

	colorIdx, err := driver.Select(ctx, SelectConfig{
		Message:      "Color picker format",
		Options:      colorFormats,
		DefaultIndex: indexOf(colorFormats, cfg.Color.Format),
	})
	if err != nil {
		return err
	}
	if colorIdx >= 0 && colorIdx < len(colorFormats) {
		cfg.Color.Format = colorFormats[colorIdx]
	}

	policyIdx, err := driver.Select(ctx, SelectConfig{
		Message:      "Rich text sanitiser",
		Options:      sanitizers,
		DefaultIndex: indexOf(sanitizers, cfg.Redactor.Policy),
		Help:         "ugc keeps safe formatting markup, strict removes every tag",
	})
	if err != nil {
		return err
	}
	if policyIdx >= 0 && policyIdx < len(sanitizers) {
		cfg.Redactor.Policy = sanitizers[policyIdx]
	}

	defaults := make([]int, 0, len(cfg.Redactor.Buttons))
	for _, button := range cfg.Redactor.Buttons {
		if idx := indexOf(redactorButtons, button); idx >= 0 {
			defaults = append(defaults, idx)
		}
	}
	buttonIdx, err := driver.MultiSelect(ctx, SelectConfig{
		Message:  "Rich text toolbar buttons (none keeps the editor defaults)",
		Options:  redactorButtons,
		Defaults: defaults,
	})
	if err != nil {
		return err
	}
	buttons := make([]string, 0, len(buttonIdx))
	for _, idx := range buttonIdx {
		if idx >= 0 && idx < len(redactorButtons) {
			buttons = append(buttons, redactorButtons[idx])
		}
	}
	if len(buttons) == 0 {
		buttons = nil
	}
	cfg.Redactor.Buttons = buttons
	return nil
}

func presetIndex(layout string) int {
	for i, preset := range dateTimePresets {
		if preset.layout == layout {
			return i
		}
	}
	return -1
}

func requireText(value string) error {
	if strings.TrimSpace(value) == "" {
		return errors.New("a value is required")
	}
	return nil
}
