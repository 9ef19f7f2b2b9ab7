package catalog

import (
	"github.com/xeipuuv/gojsonschema"
)

// validateSchema validates embedded JSON content against an embedded
// JSON Schema. name identifies the document in error messages.
func validateSchema(schemaContent, jsonContent []byte, name string) error {
	schemaLoader := gojsonschema.NewBytesLoader(schemaContent)
	documentLoader := gojsonschema.NewBytesLoader(jsonContent)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return &LoadError{Message: "schema validation failed during load of " + name, Cause: err}
	}

	if result.Valid() {
		return nil
	}

	validationErr := &ValidationError{idDocument: name}
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		validationErr.Errors = append(validationErr.Errors, FieldError{
			Field:   field,
			Message: desc.Description(),
		})
	}

	return validationErr
}
