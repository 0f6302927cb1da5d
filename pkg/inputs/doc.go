// Package inputs renders the custom form inputs. A Registry maps input
// names ("numeric", "selectize", "datetime", ...) to renderers and their
// asset dependencies; the Renderer dispatches a model.Field to the named
// input with the configured defaults, association collaborators and
// template engine.
//
// Template-backed inputs render "templates/inputs/<name>.tmpl" from the
// embedded bundle unless the active theme overrides the partial key
// "inputs.<name>".
//
//	renderer, err := inputs.New(
//		inputs.WithAssociationResolver(store),
//		inputs.WithRecordSource(store),
//	)
//	html, err := renderer.Render(ctx, inputs.NameSelectize, field, render.RenderOptions{Locale: "es"})
package inputs
