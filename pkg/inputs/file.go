package inputs

import (
	"context"
	"net/url"
	"path"
	"strings"

	"github.com/goliatone/go-formext/pkg/model"
	"github.com/goliatone/go-formext/pkg/render"
)

// Attachment is a stored upload bound to a file or image attribute. Plain
// string values are treated as the attachment URL.
type Attachment interface {
	URL() string
	Filename() string
}

const removePrefix = "remove_"

func fileView(_ context.Context, field model.Field, data InputData) (map[string]any, error) {
	return uploadPayload(field, optionString(field, "accept", data.Config.File.Accept), "file-input"), nil
}

func imageView(_ context.Context, field model.Field, data InputData) (map[string]any, error) {
	payload := uploadPayload(field, optionString(field, "accept", data.Config.Image.Accept), "image-input")
	payload["preview_class"] = optionString(field, "preview_class", data.Config.Image.PreviewClass)
	return payload, nil
}

// uploadPayload builds the shared file/image payload: the file control,
// the existing upload and the remove checkbox, offered when an upload exists
// and the field is neither required nor disabled.
func uploadPayload(field model.Field, accept, marker string) map[string]any {
	attrs := controlAttrs(field, "file", nil, marker)
	if accept != "" {
		attrs.Set("accept", accept)
	}
	attrs.SetData(marker, true)
	attrs.Merge(field.HTML)

	href, name := currentUpload(fieldValue(field))
	payload := map[string]any{
		"attrs":        attrs.String(),
		"current_url":  href,
		"current_name": name,
		"removable":    false,
	}
	if href != "" && !field.Required && !field.Disabled && optionBool(field, "removable", true) {
		payload["removable"] = true
		payload["remove_name"] = render.FieldName(field.ObjectName, removePrefix+field.Attribute, false)
		payload["remove_id"] = render.FieldID(field.ObjectName, removePrefix+field.Attribute)
	}
	return payload
}

// currentUpload returns the link and display name of an existing upload.
// URLs with schemes other than http and https are dropped.
func currentUpload(value any) (string, string) {
	var href, name string
	switch v := value.(type) {
	case nil:
		return "", ""
	case Attachment:
		href, name = v.URL(), v.Filename()
	case string:
		href = v
	default:
		href = model.StringForm(v)
	}
	href = safeURL(href)
	if href == "" {
		return "", ""
	}
	if strings.TrimSpace(name) == "" {
		name = path.Base(strings.SplitN(href, "?", 2)[0])
	}
	return href, name
}

func safeURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	parsed, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	switch strings.ToLower(parsed.Scheme) {
	case "", "http", "https":
		return raw
	default:
		return ""
	}
}
