// Package encoding reads and writes resources in their JSON wire format.
package encoding

import (
	"encoding/json"
	"io"
	"mime"
	"strings"

	"github.com/pkg/errors"

	"github.com/fastfhir/fhir-r5-go/model"
	// register the resource types
	_ "github.com/fastfhir/fhir-r5-go/model/r5"
)

type Format string

const (
	FormatJSON       Format = "application/fhir+json"
	FormatPrettyJSON Format = "application/fhir+json; pretty=true"
)

// MaxBodySize bounds the documents Decode reads.
const MaxBodySize = 64 << 20

// FormatFromMIME maps a media type or _format value to a Format.
func FormatFromMIME(s string) (Format, error) {
	mediaType, params, err := mime.ParseMediaType(s)
	if err != nil {
		mediaType = strings.ToLower(strings.TrimSpace(s))
	}
	switch mediaType {
	case "json", "application/json", "application/fhir+json", "application/json+fhir":
		if params["pretty"] == "true" {
			return FormatPrettyJSON, nil
		}
		return FormatJSON, nil
	default:
		return "", model.NewError(model.KindNotFound, "format", "unsupported format: %s", s)
	}
}

// Decode reads a single resource document from r.
func Decode(r io.Reader) (model.Resource, error) {
	return DecodeLimit(r, MaxBodySize)
}

// DecodeLimit is like Decode with a caller supplied size bound.
func DecodeLimit(r io.Reader, limit int64) (model.Resource, error) {
	data, err := io.ReadAll(io.LimitReader(r, limit+1))
	if err != nil {
		return nil, errors.Wrap(err, "read resource")
	}
	if int64(len(data)) > limit {
		return nil, model.NewError(model.KindOutOfMemory, "", "document exceeds %d bytes", limit)
	}
	return DecodeBytes(data)
}

// DecodeBytes parses a single resource document.
func DecodeBytes(data []byte) (model.Resource, error) {
	return model.Parse(data)
}

// DecodeAs is like Decode but also checks the concrete type. On a mismatch
// the decoded resource is released.
func DecodeAs[R model.Resource](r io.Reader) (R, error) {
	var zero R
	res, err := Decode(r)
	if err != nil {
		return zero, err
	}
	typed, ok := res.(R)
	if !ok {
		model.Release(res)
		return zero, model.NewError(model.KindInvalidJSON, "resourceType",
			"unexpected resource type %s", res.ResourceType())
	}
	return typed, nil
}

// Encode writes res to w followed by a newline.
func Encode(w io.Writer, res model.Resource, format Format) error {
	encoder := json.NewEncoder(w)
	encoder.SetEscapeHTML(false)
	switch format {
	case FormatJSON:
	case FormatPrettyJSON:
		encoder.SetIndent("", "  ")
	default:
		return model.NewError(model.KindNotFound, "format", "unsupported format: %s", format)
	}
	return errors.Wrap(encoder.Encode(model.ToJSON(res)), "encode resource")
}
