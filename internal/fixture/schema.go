// Package fixture builds small ObjValue graphs from a compact JSON
// description, validating that description against a JSON Schema before
// constructing anything. Fixtures are test-only infrastructure; nothing
// outside _test.go files should import this package.
package fixture

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// schemaSource is the literal JSON Schema for a fixture document: an
// object literal is a map of field name to a member description.
const schemaSource = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "properties": {
    "super": { "type": ["object", "null"] },
    "members": {
      "type": "object",
      "additionalProperties": {
        "type": "object",
        "properties": {
          "value": {},
          "visibility": { "type": "string", "enum": ["normal", "hidden", "unhide"] },
          "additive": { "type": "boolean" }
        },
        "required": ["value"]
      }
    }
  },
  "required": ["members"]
}`

var (
	compileOnce sync.Once
	compiled    *jsonschema.Schema
	compileErr  error
)

func compiledSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource("fixture.json", bytes.NewReader([]byte(schemaSource))); err != nil {
			compileErr = err
			return
		}
		compiled, compileErr = compiler.Compile("fixture.json")
	})
	return compiled, compileErr
}

// Validate checks raw fixture JSON against the fixture schema without
// constructing anything.
func Validate(raw []byte) error {
	schema, err := compiledSchema()
	if err != nil {
		return fmt.Errorf("compile fixture schema: %w", err)
	}

	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("parse fixture json: %w", err)
	}

	if err := schema.Validate(doc); err != nil {
		return fmt.Errorf("fixture failed schema validation: %w", err)
	}
	return nil
}
