package schema

// ResponseFormatType is the response_format discriminator for schema
// constrained completions.
const ResponseFormatType = "json_schema"

// ResponseFormat is the response_format request parameter accepted by
// completion APIs with structured output support. It marshals to
//
//	{"type": "json_schema", "json_schema": {"name": ..., "strict": ..., "schema": {...}}}
type ResponseFormat struct {
	Type       string           `json:"type"`
	JSONSchema JSONSchemaFormat `json:"json_schema"`
}

// JSONSchemaFormat names a schema and declares whether the completion
// must match it strictly.
type JSONSchemaFormat struct {
	Name   string  `json:"name"`
	Strict bool    `json:"strict"`
	Schema *Schema `json:"schema"`
}

// NewResponseFormat wraps a schema in a json_schema response format.
func NewResponseFormat(name string, strict bool, s *Schema) *ResponseFormat {
	return &ResponseFormat{
		Type: ResponseFormatType,
		JSONSchema: JSONSchemaFormat{
			Name:   name,
			Strict: strict,
			Schema: s,
		},
	}
}
