package druginfo

import (
	"encoding/json"
	"reflect"
	"sync"

	"github.com/hrlabs/druginfo/schema"
)

// SchemaName is the json_schema envelope name for the record contract.
const SchemaName = "drug_info"

var (
	schemaOnce   sync.Once
	cachedSchema *schema.Schema
	schemaErr    error
)

// RecordSchema returns the strict JSON Schema for the record type graph:
// $defs for every nested entity, additionalProperties false and every
// property required at every object level, enums as enum arrays, numeric
// bounds as minimum/maximum and string patterns as pattern. The returned
// schema is a copy; callers may modify it freely.
func RecordSchema() (*schema.Schema, error) {
	schemaOnce.Do(func() {
		cachedSchema, schemaErr = buildRecordSchema()
	})
	if schemaErr != nil {
		return nil, schemaErr
	}
	return cachedSchema.Clone(), nil
}

func buildRecordSchema() (*schema.Schema, error) {
	root, err := schema.NewGenerator().Strict().Generate(reflect.TypeOf(DrugInfo{}))
	if err != nil {
		return nil, err
	}

	// The legacy simple tolerance shape stays in $defs even though no
	// field references it; downstream consumers read it from the contract.
	legacy, err := schema.NewGenerator().Strict().Generate(reflect.TypeOf(Tolerance{}))
	if err != nil {
		return nil, err
	}
	root.AddDef("Tolerance", legacy)

	return root, nil
}

// StructuredOutputFormat wraps the record schema in the json_schema
// response format envelope, named "drug_info" with strict matching.
func StructuredOutputFormat() (*schema.ResponseFormat, error) {
	s, err := RecordSchema()
	if err != nil {
		return nil, err
	}
	return schema.NewResponseFormat(SchemaName, true, s), nil
}

// StructuredOutputJSON serializes the response format envelope. The
// transformation is deterministic: an unchanged type graph yields
// byte-identical documents on every call.
func StructuredOutputJSON() ([]byte, error) {
	f, err := StructuredOutputFormat()
	if err != nil {
		return nil, err
	}
	return json.Marshal(f)
}
