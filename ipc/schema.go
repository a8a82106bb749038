package ipc

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed schema/observation.schema.json
var observationSchemaSrc string

var (
	observationSchemaOnce sync.Once
	observationSchema     *jsonschema.Schema
	observationSchemaErr  error
)

func compiledObservationSchema() (*jsonschema.Schema, error) {
	observationSchemaOnce.Do(func() {
		observationSchema, observationSchemaErr = jsonschema.CompileString("observation.schema.json", observationSchemaSrc)
	})
	return observationSchema, observationSchemaErr
}

// ValidateObservation checks an observation payload before it is decoded,
// so malformed bridge output never reaches the adapter.
func ValidateObservation(data json.RawMessage) error {
	schema, err := compiledObservationSchema()
	if err != nil {
		return fmt.Errorf("compile observation schema: %w", err)
	}
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("decode observation: %w", err)
	}
	if err := schema.Validate(doc); err != nil {
		return fmt.Errorf("invalid observation: %w", err)
	}
	return nil
}
