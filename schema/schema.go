package schema

import (
	"encoding/json"
	"fmt"
)

// Type represents JSON Schema types.
type Type string

const (
	TypeString  Type = "string"
	TypeNumber  Type = "number"
	TypeInteger Type = "integer"
	TypeBoolean Type = "boolean"
	TypeNull    Type = "null"
	TypeObject  Type = "object"
	TypeArray   Type = "array"
)

// Format represents common string format constraints.
type Format string

const (
	FormatDateTime Format = "date-time"
	FormatDate     Format = "date"
	FormatTime     Format = "time"
	FormatDuration Format = "duration"
	FormatEmail    Format = "email"
	FormatURI      Format = "uri"
	FormatUUID     Format = "uuid"
)

// DefsPrefix is the reference prefix for schemas defined under $defs.
const DefsPrefix = "#/$defs/"

// Schema represents a JSON Schema definition (Draft 2020-12 subset).
// It supports nested objects, arrays, enums, $defs references and the
// validation constraints needed for closed-shape structured output.
type Schema struct {
	// Core schema metadata
	SchemaURI   string `json:"$schema,omitempty"`
	Ref         string `json:"$ref,omitempty"`
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`

	// Type definition
	Type Type `json:"type,omitempty"`

	// Object properties
	Properties           map[string]*Schema    `json:"properties,omitempty"`
	Required             []string              `json:"required,omitempty"`
	AdditionalProperties *AdditionalProperties `json:"additionalProperties,omitempty"`

	// Array items
	Items       *Schema `json:"items,omitempty"`
	MinItems    *int    `json:"minItems,omitempty"`
	MaxItems    *int    `json:"maxItems,omitempty"`
	UniqueItems *bool   `json:"uniqueItems,omitempty"`

	// Enum and const
	Enum  []any `json:"enum,omitempty"`
	Const any   `json:"const,omitempty"`

	// String constraints
	MinLength *int   `json:"minLength,omitempty"`
	MaxLength *int   `json:"maxLength,omitempty"`
	Pattern   string `json:"pattern,omitempty"`
	Format    Format `json:"format,omitempty"`

	// Numeric constraints
	Minimum *float64 `json:"minimum,omitempty"`
	Maximum *float64 `json:"maximum,omitempty"`

	// Default value
	Default any `json:"default,omitempty"`

	// Definitions for reuse
	Defs map[string]*Schema `json:"$defs,omitempty"`
}

// AdditionalProperties represents the additionalProperties field which can be
// either a boolean or a schema.
type AdditionalProperties struct {
	Allowed bool
	Schema  *Schema
}

// MarshalJSON implements json.Marshaler for AdditionalProperties.
func (ap *AdditionalProperties) MarshalJSON() ([]byte, error) {
	if ap == nil {
		return json.Marshal(nil)
	}
	if ap.Schema != nil {
		return json.Marshal(ap.Schema)
	}
	return json.Marshal(ap.Allowed)
}

// UnmarshalJSON implements json.Unmarshaler for AdditionalProperties.
func (ap *AdditionalProperties) UnmarshalJSON(data []byte) error {
	var b bool
	if err := json.Unmarshal(data, &b); err == nil {
		ap.Allowed = b
		ap.Schema = nil
		return nil
	}

	var schema Schema
	if err := json.Unmarshal(data, &schema); err == nil {
		ap.Allowed = true
		ap.Schema = &schema
		return nil
	}

	return fmt.Errorf("additionalProperties must be boolean or schema")
}

// New creates a new Schema with the specified type.
func New(t Type) *Schema {
	return &Schema{Type: t}
}

// NewObjectSchema creates a new object schema.
func NewObjectSchema() *Schema {
	return &Schema{
		Type:       TypeObject,
		Properties: make(map[string]*Schema),
	}
}

// NewArraySchema creates a new array schema with the specified items schema.
func NewArraySchema(items *Schema) *Schema {
	return &Schema{
		Type:  TypeArray,
		Items: items,
	}
}

// NewStringSchema creates a new string schema.
func NewStringSchema() *Schema {
	return &Schema{Type: TypeString}
}

// NewNumberSchema creates a new number schema.
func NewNumberSchema() *Schema {
	return &Schema{Type: TypeNumber}
}

// NewIntegerSchema creates a new integer schema.
func NewIntegerSchema() *Schema {
	return &Schema{Type: TypeInteger}
}

// NewBooleanSchema creates a new boolean schema.
func NewBooleanSchema() *Schema {
	return &Schema{Type: TypeBoolean}
}

// NewEnumSchema creates a new string schema constrained to the given values.
func NewEnumSchema(values ...any) *Schema {
	return &Schema{Type: TypeString, Enum: values}
}

// NewRefSchema creates a schema referencing a $defs entry by name.
func NewRefSchema(name string) *Schema {
	return &Schema{Ref: DefsPrefix + name}
}

// WithTitle sets the title and returns the schema for chaining.
func (s *Schema) WithTitle(title string) *Schema {
	s.Title = title
	return s
}

// WithDescription sets the description and returns the schema for chaining.
func (s *Schema) WithDescription(desc string) *Schema {
	s.Description = desc
	return s
}

// WithDefault sets the default value and returns the schema for chaining.
func (s *Schema) WithDefault(def any) *Schema {
	s.Default = def
	return s
}

// AddProperty adds a property to an object schema.
func (s *Schema) AddProperty(name string, prop *Schema) *Schema {
	if s.Properties == nil {
		s.Properties = make(map[string]*Schema)
	}
	s.Properties[name] = prop
	return s
}

// AddRequired adds required field names to an object schema.
func (s *Schema) AddRequired(names ...string) *Schema {
	s.Required = append(s.Required, names...)
	return s
}

// AddDef adds a named definition under $defs.
func (s *Schema) AddDef(name string, def *Schema) *Schema {
	if s.Defs == nil {
		s.Defs = make(map[string]*Schema)
	}
	s.Defs[name] = def
	return s
}

// WithMinLength sets the minimum length for string schema.
func (s *Schema) WithMinLength(min int) *Schema {
	s.MinLength = &min
	return s
}

// WithMaxLength sets the maximum length for string schema.
func (s *Schema) WithMaxLength(max int) *Schema {
	s.MaxLength = &max
	return s
}

// WithPattern sets the pattern for string schema.
func (s *Schema) WithPattern(pattern string) *Schema {
	s.Pattern = pattern
	return s
}

// WithFormat sets the format for string schema.
func (s *Schema) WithFormat(format Format) *Schema {
	s.Format = format
	return s
}

// WithMinimum sets the minimum value for numeric schema.
func (s *Schema) WithMinimum(min float64) *Schema {
	s.Minimum = &min
	return s
}

// WithMaximum sets the maximum value for numeric schema.
func (s *Schema) WithMaximum(max float64) *Schema {
	s.Maximum = &max
	return s
}

// WithMinItems sets the minimum items for array schema.
func (s *Schema) WithMinItems(min int) *Schema {
	s.MinItems = &min
	return s
}

// WithMaxItems sets the maximum items for array schema.
func (s *Schema) WithMaxItems(max int) *Schema {
	s.MaxItems = &max
	return s
}

// WithUniqueItems sets the uniqueItems constraint for array schema.
func (s *Schema) WithUniqueItems(unique bool) *Schema {
	s.UniqueItems = &unique
	return s
}

// WithAdditionalProperties sets the additionalProperties constraint.
func (s *Schema) WithAdditionalProperties(allowed bool) *Schema {
	s.AdditionalProperties = &AdditionalProperties{Allowed: allowed}
	return s
}

// WithEnum sets the enum values.
func (s *Schema) WithEnum(values ...any) *Schema {
	s.Enum = values
	return s
}

// WithConst sets the const value.
func (s *Schema) WithConst(value any) *Schema {
	s.Const = value
	return s
}

// Clone creates a deep copy of the schema.
func (s *Schema) Clone() *Schema {
	if s == nil {
		return nil
	}

	clone := &Schema{
		SchemaURI:   s.SchemaURI,
		Ref:         s.Ref,
		Title:       s.Title,
		Description: s.Description,
		Type:        s.Type,
		Pattern:     s.Pattern,
		Format:      s.Format,
		Default:     s.Default,
		Const:       s.Const,
	}

	if s.Properties != nil {
		clone.Properties = make(map[string]*Schema, len(s.Properties))
		for k, v := range s.Properties {
			clone.Properties[k] = v.Clone()
		}
	}

	if s.Required != nil {
		clone.Required = make([]string, len(s.Required))
		copy(clone.Required, s.Required)
	}

	clone.Items = s.Items.Clone()

	if s.Enum != nil {
		clone.Enum = make([]any, len(s.Enum))
		copy(clone.Enum, s.Enum)
	}

	if s.MinLength != nil {
		v := *s.MinLength
		clone.MinLength = &v
	}
	if s.MaxLength != nil {
		v := *s.MaxLength
		clone.MaxLength = &v
	}
	if s.Minimum != nil {
		v := *s.Minimum
		clone.Minimum = &v
	}
	if s.Maximum != nil {
		v := *s.Maximum
		clone.Maximum = &v
	}
	if s.MinItems != nil {
		v := *s.MinItems
		clone.MinItems = &v
	}
	if s.MaxItems != nil {
		v := *s.MaxItems
		clone.MaxItems = &v
	}
	if s.UniqueItems != nil {
		v := *s.UniqueItems
		clone.UniqueItems = &v
	}

	if s.AdditionalProperties != nil {
		clone.AdditionalProperties = &AdditionalProperties{
			Allowed: s.AdditionalProperties.Allowed,
			Schema:  s.AdditionalProperties.Schema.Clone(),
		}
	}

	if s.Defs != nil {
		clone.Defs = make(map[string]*Schema, len(s.Defs))
		for k, v := range s.Defs {
			clone.Defs[k] = v.Clone()
		}
	}

	return clone
}

// ToJSON serializes the schema to JSON. Object keys are emitted in a
// stable order, so the same schema always yields the same bytes.
func (s *Schema) ToJSON() ([]byte, error) {
	return json.Marshal(s)
}

// ToJSONIndent serializes the schema to indented JSON.
func (s *Schema) ToJSONIndent() ([]byte, error) {
	return json.MarshalIndent(s, "", "  ")
}

// FromJSON deserializes a schema from JSON.
func FromJSON(data []byte) (*Schema, error) {
	var schema Schema
	if err := json.Unmarshal(data, &schema); err != nil {
		return nil, fmt.Errorf("failed to unmarshal JSON schema: %w", err)
	}
	return &schema, nil
}

// IsRequired checks if a property is required.
func (s *Schema) IsRequired(name string) bool {
	for _, req := range s.Required {
		if req == name {
			return true
		}
	}
	return false
}

// GetProperty returns a property schema by name.
func (s *Schema) GetProperty(name string) *Schema {
	if s.Properties == nil {
		return nil
	}
	return s.Properties[name]
}

// HasProperty checks if a property exists.
func (s *Schema) HasProperty(name string) bool {
	if s.Properties == nil {
		return false
	}
	_, ok := s.Properties[name]
	return ok
}

// ResolveRef resolves a $defs reference against this schema's definitions.
// It returns nil for references it cannot resolve.
func (s *Schema) ResolveRef(ref string) *Schema {
	if s == nil || s.Defs == nil {
		return nil
	}
	if len(ref) <= len(DefsPrefix) || ref[:len(DefsPrefix)] != DefsPrefix {
		return nil
	}
	return s.Defs[ref[len(DefsPrefix):]]
}
