// Package config loads the initializer document that sets field-level
// defaults for every input (selectize flags, numeric bounds, date-time
// layouts, ...). Documents are YAML or JSON; anything they leave out keeps
// the embedded defaults.
package config
