package schema

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// Enumer is implemented by named string types with a closed value set.
// The generator renders such types as string schemas with an enum
// constraint, defined once under $defs and referenced by name.
type Enumer interface {
	EnumValues() []string
}

var enumerType = reflect.TypeOf((*Enumer)(nil)).Elem()

// Generator builds a Schema from a Go type using reflection.
//
// Struct fields use the "json" tag for property names and the
// "jsonschema" tag for constraints:
//
//   - required: mark the field as required
//   - enum=a,b,c: enum values
//   - minimum=0 / maximum=100: numeric bounds
//   - minLength=1 / maxLength=100: string length bounds
//   - pattern=^[a-z]+$: regex pattern
//   - format=uri: string format (uri, email, uuid, date-time, duration, ...)
//   - minItems=1 / maxItems=10: array bounds
//   - description=...: field description
//   - default=...: default value
//
// String constraints (enum, pattern, format, length bounds) on a slice
// field apply to the array's items.
//
// Named struct types and Enumer types are emitted as $defs entries keyed
// by the Go type name and referenced with $ref.
type Generator struct {
	strict bool
	defs   map[string]*Schema
}

// NewGenerator creates a new Generator.
func NewGenerator() *Generator {
	return &Generator{}
}

// Strict enables strict structured-output generation: every property of
// every object is required and additionalProperties is false at every
// object level, so any missing or undeclared field is a violation.
func (g *Generator) Strict() *Generator {
	g.strict = true
	return g
}

// Generate builds a Schema for the given root struct type. Nested named
// types land under the root's $defs.
func (g *Generator) Generate(t reflect.Type) (*Schema, error) {
	if t == nil {
		return nil, fmt.Errorf("cannot generate schema for nil type")
	}
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("root type must be a struct, got %s", t.Kind())
	}

	g.defs = make(map[string]*Schema)
	root, err := g.structSchema(t)
	if err != nil {
		return nil, err
	}
	root.Title = t.Name()
	if len(g.defs) > 0 {
		root.Defs = g.defs
	}
	return root, nil
}

// GenerateFromValue builds a Schema from a value's type.
func (g *Generator) GenerateFromValue(v any) (*Schema, error) {
	if v == nil {
		return nil, fmt.Errorf("cannot generate schema from nil value")
	}
	return g.Generate(reflect.TypeOf(v))
}

// schemaFor builds the schema for a single type, emitting named types
// into the $defs set.
func (g *Generator) schemaFor(t reflect.Type) (*Schema, error) {
	if t.Kind() == reflect.Ptr {
		return g.schemaFor(t.Elem())
	}

	if t.Kind() == reflect.String && t.Implements(enumerType) {
		return g.enumRef(t), nil
	}

	switch t.Kind() {
	case reflect.String:
		return NewStringSchema(), nil

	case reflect.Bool:
		return NewBooleanSchema(), nil

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return NewIntegerSchema(), nil

	case reflect.Float32, reflect.Float64:
		return NewNumberSchema(), nil

	case reflect.Slice, reflect.Array:
		elemSchema, err := g.schemaFor(t.Elem())
		if err != nil {
			return nil, fmt.Errorf("failed to generate schema for array element: %w", err)
		}
		return NewArraySchema(elemSchema), nil

	case reflect.Struct:
		if t.Name() != "" {
			return g.structRef(t)
		}
		return g.structSchema(t)

	default:
		return nil, fmt.Errorf("unsupported type: %s", t.Kind())
	}
}

// enumRef defines an Enumer type under $defs and returns a reference.
func (g *Generator) enumRef(t reflect.Type) *Schema {
	name := t.Name()
	if _, ok := g.defs[name]; !ok {
		values := reflect.Zero(t).Interface().(Enumer).EnumValues()
		enum := make([]any, len(values))
		for i, v := range values {
			enum[i] = v
		}
		g.defs[name] = NewEnumSchema(enum...).WithTitle(name)
	}
	return NewRefSchema(name)
}

// structRef defines a named struct type under $defs and returns a
// reference. The placeholder breaks recursion for self-referential types.
func (g *Generator) structRef(t reflect.Type) (*Schema, error) {
	name := t.Name()
	if _, ok := g.defs[name]; !ok {
		placeholder := &Schema{}
		g.defs[name] = placeholder

		built, err := g.structSchema(t)
		if err != nil {
			delete(g.defs, name)
			return nil, err
		}
		built.Title = name
		*placeholder = *built
	}
	return NewRefSchema(name), nil
}

// structSchema builds the object schema for a struct type.
func (g *Generator) structSchema(t reflect.Type) (*Schema, error) {
	schema := NewObjectSchema()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)

		if !field.IsExported() {
			continue
		}

		fieldName := jsonFieldName(field)
		if fieldName == "-" {
			continue
		}

		fieldSchema, err := g.schemaFor(field.Type)
		if err != nil {
			return nil, fmt.Errorf("failed to generate schema for field %s: %w", field.Name, err)
		}

		if err := applyTag(fieldSchema, field); err != nil {
			return nil, fmt.Errorf("failed to apply jsonschema tag for field %s: %w", field.Name, err)
		}

		if g.strict || fieldRequired(field) {
			schema.Required = append(schema.Required, fieldName)
		}

		schema.Properties[fieldName] = fieldSchema
	}

	if g.strict {
		schema.WithAdditionalProperties(false)
	}

	return schema, nil
}

// jsonFieldName extracts the property name from the json tag or falls
// back to the struct field name.
func jsonFieldName(field reflect.StructField) string {
	jsonTag := field.Tag.Get("json")
	if jsonTag == "" {
		return field.Name
	}

	name := strings.Split(jsonTag, ",")[0]
	if name == "" {
		return field.Name
	}
	return name
}

// fieldRequired checks whether the jsonschema tag marks a field required.
func fieldRequired(field reflect.StructField) bool {
	options := parseTagOptions(field.Tag.Get("jsonschema"))
	_, required := options["required"]
	return required
}

// stringTarget returns the schema that string constraints apply to: the
// items schema for arrays, the field schema otherwise.
func stringTarget(s *Schema) *Schema {
	if s.Type == TypeArray && s.Items != nil {
		return s.Items
	}
	return s
}

// applyTag applies jsonschema tag constraints to a field schema.
func applyTag(schema *Schema, field reflect.StructField) error {
	options := parseTagOptions(field.Tag.Get("jsonschema"))
	if len(options) == 0 {
		return nil
	}

	if desc, ok := options["description"]; ok {
		schema.Description = desc
	}

	if def, ok := options["default"]; ok {
		schema.Default = parseDefaultValue(def, field.Type)
	}

	if enumStr, ok := options["enum"]; ok {
		values := strings.Split(enumStr, ",")
		target := stringTarget(schema)
		target.Enum = make([]any, len(values))
		for i, v := range values {
			target.Enum[i] = strings.TrimSpace(v)
		}
	}

	if minLen, ok := options["minLength"]; ok {
		if v, err := strconv.Atoi(minLen); err == nil {
			stringTarget(schema).MinLength = &v
		}
	}
	if maxLen, ok := options["maxLength"]; ok {
		if v, err := strconv.Atoi(maxLen); err == nil {
			stringTarget(schema).MaxLength = &v
		}
	}
	if pattern, ok := options["pattern"]; ok {
		stringTarget(schema).Pattern = pattern
	}
	if format, ok := options["format"]; ok {
		stringTarget(schema).Format = Format(format)
	}

	if min, ok := options["minimum"]; ok {
		if v, err := strconv.ParseFloat(min, 64); err == nil {
			schema.Minimum = &v
		}
	}
	if max, ok := options["maximum"]; ok {
		if v, err := strconv.ParseFloat(max, 64); err == nil {
			schema.Maximum = &v
		}
	}

	if minItems, ok := options["minItems"]; ok {
		if v, err := strconv.Atoi(minItems); err == nil {
			schema.MinItems = &v
		}
	}
	if maxItems, ok := options["maxItems"]; ok {
		if v, err := strconv.Atoi(maxItems); err == nil {
			schema.MaxItems = &v
		}
	}

	return nil
}

// boolOptions are tag options that carry no value.
var boolOptions = map[string]bool{
	"required": true,
}

// knownKeys are the recognized key=value option names. Anything after a
// comma that does not open a known option belongs to the previous value,
// which lets enum lists and descriptions contain commas.
var knownKeys = map[string]bool{
	"description": true,
	"default":     true,
	"enum":        true,
	"minimum":     true,
	"maximum":     true,
	"minLength":   true,
	"maxLength":   true,
	"pattern":     true,
	"format":      true,
	"minItems":    true,
	"maxItems":    true,
}

// parseTagOptions parses a jsonschema tag into an option map. Format:
// "required,minimum=0,description=some text, with commas".
func parseTagOptions(tag string) map[string]string {
	options := make(map[string]string)
	if tag == "" {
		return options
	}

	var key string
	var value strings.Builder

	flush := func() {
		if key != "" {
			options[key] = value.String()
			key = ""
			value.Reset()
		}
	}

	for _, seg := range strings.Split(tag, ",") {
		trimmed := strings.TrimSpace(seg)

		if boolOptions[trimmed] {
			flush()
			options[trimmed] = ""
			continue
		}

		if idx := strings.Index(seg, "="); idx > 0 && knownKeys[strings.TrimSpace(seg[:idx])] {
			flush()
			key = strings.TrimSpace(seg[:idx])
			value.WriteString(seg[idx+1:])
			continue
		}

		if key != "" {
			// Continuation of the previous value.
			value.WriteString(",")
			value.WriteString(seg)
		}
	}
	flush()

	return options
}

// parseDefaultValue converts a default value string to the field's type.
func parseDefaultValue(value string, t reflect.Type) any {
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	switch t.Kind() {
	case reflect.String:
		return value
	case reflect.Bool:
		return value == "true"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if v, err := strconv.ParseInt(value, 10, 64); err == nil {
			return v
		}
	case reflect.Float32, reflect.Float64:
		if v, err := strconv.ParseFloat(value, 64); err == nil {
			return v
		}
	}
	return value
}
