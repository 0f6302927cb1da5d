// Package selectize renders the tag/select picker input: a hidden field that
// carries its options, current value(s) and client configuration as data
// attributes for a selectize-style widget.
//
// The package is split along the render pipeline:
//
//   - NormalizeOptions turns heterogeneous option sources into {text, value}
//     pairs.
//   - Inspect classifies the bound attribute as a plain field or an
//     association and picks the attribute name to submit.
//   - Input.SerializeValue converts the current value(s) into pre-selected
//     options, resolving display text from related records.
//   - Emit writes the hidden input.
package selectize
