// Copyright 2026 DrugInfo Authors
// Use of this source code is governed by the project license.

/*
Package schema provides JSON Schema modeling, generation and validation
for structured output contracts.

# Main types

  - Schema: JSON Schema definition (Draft 2020-12 subset) with
    chainable builders, $defs support and deterministic serialization
  - Generator: builds a Schema from a Go type via reflection, driven by
    "json" and "jsonschema" struct tags; strict mode produces closed
    objects with every property required
  - Validator: validates decoded JSON against a Schema, collecting every
    violation as a FieldError with a dotted field path instead of
    stopping at the first
  - ResponseFormat: the json_schema response_format envelope consumed by
    completion APIs

# Typical usage

	gen := schema.NewGenerator().Strict()
	s, _ := gen.Generate(reflect.TypeOf(MyRecord{}))

	v := schema.NewValidator()
	if err := v.Validate(data, s); err != nil {
		var ve *schema.ValidationErrors
		errors.As(err, &ve) // every violation, with field paths
	}

	rf := schema.NewResponseFormat("my_record", true, s)
*/
package schema
