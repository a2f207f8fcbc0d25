package catalog

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// ValidationError represents a schema validation failure with field paths
type ValidationError struct {
	Table  string
	Errors []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("table %s failed schema validation: %s", e.Table, strings.Join(e.Errors, "; "))
}

// validateTable validates a data table against its embedded JSON Schema.
func validateTable(name string, data []byte) error {
	schemaBytes, err := schemaFS.ReadFile("schemas/" + name + ".schema.json")
	if err != nil {
		return fmt.Errorf("failed to read schema for table %s: %w", name, err)
	}

	schemaLoader := gojsonschema.NewBytesLoader(schemaBytes)
	documentLoader := gojsonschema.NewBytesLoader(data)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return fmt.Errorf("failed to validate table %s: %w", name, err)
	}

	if !result.Valid() {
		verr := &ValidationError{Table: name}
		for _, desc := range result.Errors() {
			verr.Errors = append(verr.Errors, fmt.Sprintf("%s: %s", desc.Field(), desc.Description()))
		}
		return verr
	}

	return nil
}
