// Package model defines the host-facing contracts the inputs consume. A
// Field carries the bound Object, its attribute name, per-field options and
// HTML overrides. Association metadata is not discovered through reflection:
// callers inject an AssociationResolver that classifies an attribute as a
// belongs-to, has-one or has-many association (or none), and a RecordSource
// that loads related records. Option is the uniform {text, value} pair used
// by every selectable input, and Collection is the explicit option source
// (a list of items or an attribute of the bound object).
package model
