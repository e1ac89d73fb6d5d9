// Package schemas validates structured provider output against embedded
// JSON Schemas. A document that fails validation is reported with field
// paths so the failure can be logged before the chain falls back.
package schemas

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/ratneshsingh30/study-assistant/internal/types"
)

// ValidationError reports one or more schema violations.
type ValidationError struct {
	Shape  types.Shape
	Errors []FieldError
}

// FieldError is a single violation at a specific field.
type FieldError struct {
	Field   string
	Message string
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s validation failed:", ve.Shape)
	for _, fe := range ve.Errors {
		fmt.Fprintf(&sb, "\n  %s: %s", fe.Field, fe.Message)
	}
	return sb.String()
}

// Validate checks a JSON document against the schema for the given shape.
// Shapes without a schema (free-form markdown) always pass.
func Validate(shape types.Shape, document []byte) error {
	schema, ok := schemaFor(shape)
	if !ok {
		return nil
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewBytesLoader(schema),
		gojsonschema.NewBytesLoader(document),
	)
	if err != nil {
		return &ValidationError{
			Shape:  shape,
			Errors: []FieldError{{Field: "(document)", Message: err.Error()}},
		}
	}

	if result.Valid() {
		return nil
	}

	ve := &ValidationError{Shape: shape}
	for _, desc := range result.Errors() {
		ve.Errors = append(ve.Errors, FieldError{
			Field:   desc.Field(),
			Message: desc.Description(),
		})
	}
	return ve
}
