package config

import (
	"embed"
	"io/fs"
	"sync"
)

//go:embed defaults/*
var embeddedDefaults embed.FS

const defaultsPath = "defaults/formext.yaml"

var (
	defaultsOnce sync.Once
	defaults     Config
	defaultsErr  error
)

// EmbeddedFS returns the bundled defaults directory.
func EmbeddedFS() fs.FS {
	sub, err := fs.Sub(embeddedDefaults, "defaults")
	if err != nil {
		// The embed directive guarantees the subpath exists.
		panic(err)
	}
	return sub
}

// Default returns a copy of the embedded defaults.
func Default() Config {
	defaultsOnce.Do(func() {
		data, err := embeddedDefaults.ReadFile(defaultsPath)
		if err != nil {
			defaultsErr = err
			return
		}
		defaults, defaultsErr = decode(Config{}, data, defaultsPath)
	})
	if defaultsErr != nil {
		panic(defaultsErr)
	}
	return defaults.Clone()
}

// Clone returns a deep copy of cfg.
func (c Config) Clone() Config {
	out := c
	if c.Selectize.MaxItems != nil {
		v := *c.Selectize.MaxItems
		out.Selectize.MaxItems = &v
	}
	if c.Selectize.Escape != nil {
		v := *c.Selectize.Escape
		out.Selectize.Escape = &v
	}
	out.Numeric.Min = cloneFloat(c.Numeric.Min)
	out.Numeric.Max = cloneFloat(c.Numeric.Max)
	out.Numeric.Step = cloneFloat(c.Numeric.Step)
	if c.Redactor.Buttons != nil {
		out.Redactor.Buttons = append([]string(nil), c.Redactor.Buttons...)
	}
	return out
}

func cloneFloat(v *float64) *float64 {
	if v == nil {
		return nil
	}
	out := *v
	return &out
}
