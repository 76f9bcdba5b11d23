// Package schemas provides JSON Schema validation for evaluation payloads.
// The schema is embedded at compile time; validation is opt-in (strict mode)
// because the default contract checks key presence only.
package schemas

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed evaluation_result.schema.json
var resultSchema []byte

// FieldError is a single schema violation at a specific field.
type FieldError struct {
	Field   string
	Message string
}

// SchemaViolationError reports all schema violations found in a payload.
type SchemaViolationError struct {
	Errors []FieldError
}

func (e *SchemaViolationError) Error() string {
	var sb strings.Builder
	sb.WriteString("schema validation failed:\n")
	for i, fe := range e.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, fe.Field, fe.Message))
	}
	return sb.String()
}

// ValidateResult validates an extracted evaluation payload against the
// embedded EvaluationResult schema.
func ValidateResult(payload []byte) error {
	schemaLoader := gojsonschema.NewBytesLoader(resultSchema)
	documentLoader := gojsonschema.NewBytesLoader(payload)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return fmt.Errorf("schema validation could not run: %w", err)
	}

	if result.Valid() {
		return nil
	}

	violation := &SchemaViolationError{}
	for _, resultErr := range result.Errors() {
		violation.Errors = append(violation.Errors, FieldError{
			Field:   resultErr.Field(),
			Message: resultErr.Description(),
		})
	}
	return violation
}
