package schema

import (
	"encoding/json"
	"fmt"
	"math"
	"regexp"
	"strings"
)

// FieldError represents a single validation error with its field path.
type FieldError struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

// Error implements the error interface.
func (e *FieldError) Error() string {
	if e.Path == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Path, e.Message)
}

// ValidationErrors represents multiple validation errors. Every violation
// found in a document is collected here rather than failing on the first.
type ValidationErrors struct {
	Errors []FieldError `json:"errors"`
}

// Error implements the error interface.
func (e *ValidationErrors) Error() string {
	if len(e.Errors) == 0 {
		return "validation failed"
	}
	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}
	var msgs []string
	for _, err := range e.Errors {
		msgs = append(msgs, err.Error())
	}
	return fmt.Sprintf("validation failed with %d errors: %s", len(e.Errors), strings.Join(msgs, "; "))
}

// Validator validates decoded JSON values against a Schema. All
// violations are reported together with dotted field paths.
type Validator struct {
	formats map[Format]func(string) bool
}

// NewValidator creates a Validator with built-in format checks.
func NewValidator() *Validator {
	v := &Validator{
		formats: make(map[Format]func(string) bool),
	}
	v.registerBuiltinFormats()
	return v
}

// isoDuration accepts permissive ISO 8601 durations such as PT2H, P3D or
// P1DT12H. A bare "P" carries no component and is rejected.
var isoDuration = regexp.MustCompile(`^P(?:\d+Y)?(?:\d+M)?(?:\d+D)?(?:T(?:\d+H)?(?:\d+M)?(?:\d+S)?)?$`)

func (v *Validator) registerBuiltinFormats() {
	v.formats[FormatEmail] = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`).MatchString
	v.formats[FormatURI] = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9+.-]*://`).MatchString
	v.formats[FormatUUID] = regexp.MustCompile(`^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}$`).MatchString
	v.formats[FormatDateTime] = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}(.\d+)?(Z|[+-]\d{2}:\d{2})?$`).MatchString
	v.formats[FormatDate] = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`).MatchString
	v.formats[FormatTime] = regexp.MustCompile(`^\d{2}:\d{2}:\d{2}(.\d+)?(Z|[+-]\d{2}:\d{2})?$`).MatchString
	v.formats[FormatDuration] = func(s string) bool {
		return len(s) > 1 && isoDuration.MatchString(s)
	}
}

// RegisterFormat registers a custom format check.
func (v *Validator) RegisterFormat(format Format, check func(string) bool) {
	v.formats[format] = check
}

// Validate validates JSON data against a schema. The schema's $defs are
// used to resolve $ref occurrences anywhere in the graph.
func (v *Validator) Validate(data []byte, schema *Schema) error {
	if schema == nil {
		return nil
	}

	var value any
	if err := json.Unmarshal(data, &value); err != nil {
		return &ValidationErrors{
			Errors: []FieldError{{Path: "", Message: fmt.Sprintf("invalid JSON: %v", err)}},
		}
	}

	return v.ValidateValue(value, schema)
}

// ValidateValue validates an already-decoded JSON value against a schema.
func (v *Validator) ValidateValue(value any, schema *Schema) error {
	if schema == nil {
		return nil
	}

	var errors []FieldError
	v.validateValue(value, schema, schema, "", &errors)

	if len(errors) > 0 {
		return &ValidationErrors{Errors: errors}
	}
	return nil
}

// validateValue validates a value against a schema at the given path.
// root carries the top-level schema whose $defs resolve references.
func (v *Validator) validateValue(value any, schema, root *Schema, path string, errors *[]FieldError) {
	if schema == nil {
		return
	}

	if schema.Ref != "" {
		resolved := root.ResolveRef(schema.Ref)
		if resolved == nil {
			*errors = append(*errors, FieldError{
				Path:    path,
				Message: fmt.Sprintf("unresolvable schema reference %q", schema.Ref),
			})
			return
		}
		v.validateValue(value, resolved, root, path, errors)
		return
	}

	if schema.Const != nil {
		if !equalValues(value, schema.Const) {
			*errors = append(*errors, FieldError{
				Path:    path,
				Message: fmt.Sprintf("value must be %v", schema.Const),
			})
		}
		return
	}

	if len(schema.Enum) > 0 {
		found := false
		for _, enumVal := range schema.Enum {
			if equalValues(value, enumVal) {
				found = true
				break
			}
		}
		if !found {
			*errors = append(*errors, FieldError{
				Path:    path,
				Message: fmt.Sprintf("value must be one of: %v", schema.Enum),
			})
		}
	}

	switch schema.Type {
	case TypeString:
		v.validateString(value, schema, path, errors)
	case TypeNumber:
		v.validateNumber(value, schema, path, errors)
	case TypeInteger:
		v.validateInteger(value, schema, path, errors)
	case TypeBoolean:
		v.validateBoolean(value, path, errors)
	case TypeNull:
		v.validateNull(value, path, errors)
	case TypeObject:
		v.validateObject(value, schema, root, path, errors)
	case TypeArray:
		v.validateArray(value, schema, root, path, errors)
	}
}

func (v *Validator) validateString(value any, schema *Schema, path string, errors *[]FieldError) {
	str, ok := value.(string)
	if !ok {
		*errors = append(*errors, FieldError{
			Path:    path,
			Message: fmt.Sprintf("expected string, got %T", value),
		})
		return
	}

	if schema.MinLength != nil && len(str) < *schema.MinLength {
		*errors = append(*errors, FieldError{
			Path:    path,
			Message: fmt.Sprintf("string length %d is less than minimum %d", len(str), *schema.MinLength),
		})
	}

	if schema.MaxLength != nil && len(str) > *schema.MaxLength {
		*errors = append(*errors, FieldError{
			Path:    path,
			Message: fmt.Sprintf("string length %d exceeds maximum %d", len(str), *schema.MaxLength),
		})
	}

	if schema.Pattern != "" {
		// Patterns that RE2 cannot compile (ECMA lookaheads kept for the
		// downstream consumer) are not checkable here; the constraints they
		// express are enforced by format checks or record rules instead.
		if re, err := regexp.Compile(schema.Pattern); err == nil && !re.MatchString(str) {
			*errors = append(*errors, FieldError{
				Path:    path,
				Message: fmt.Sprintf("string does not match pattern %q", schema.Pattern),
			})
		}
	}

	if schema.Format != "" {
		if check, ok := v.formats[schema.Format]; ok && !check(str) {
			*errors = append(*errors, FieldError{
				Path:    path,
				Message: fmt.Sprintf("string does not match format %q", schema.Format),
			})
		}
	}
}

func (v *Validator) validateNumber(value any, schema *Schema, path string, errors *[]FieldError) {
	num, ok := toFloat64(value)
	if !ok {
		*errors = append(*errors, FieldError{
			Path:    path,
			Message: fmt.Sprintf("expected number, got %T", value),
		})
		return
	}

	v.validateNumericConstraints(num, schema, path, errors)
}

func (v *Validator) validateInteger(value any, schema *Schema, path string, errors *[]FieldError) {
	num, ok := toFloat64(value)
	if !ok {
		*errors = append(*errors, FieldError{
			Path:    path,
			Message: fmt.Sprintf("expected integer, got %T", value),
		})
		return
	}

	if num != math.Trunc(num) {
		*errors = append(*errors, FieldError{
			Path:    path,
			Message: fmt.Sprintf("expected integer, got %v", num),
		})
		return
	}

	v.validateNumericConstraints(num, schema, path, errors)
}

func (v *Validator) validateNumericConstraints(num float64, schema *Schema, path string, errors *[]FieldError) {
	if schema.Minimum != nil && num < *schema.Minimum {
		*errors = append(*errors, FieldError{
			Path:    path,
			Message: fmt.Sprintf("value %v is less than minimum %v", num, *schema.Minimum),
		})
	}

	if schema.Maximum != nil && num > *schema.Maximum {
		*errors = append(*errors, FieldError{
			Path:    path,
			Message: fmt.Sprintf("value %v exceeds maximum %v", num, *schema.Maximum),
		})
	}
}

func (v *Validator) validateBoolean(value any, path string, errors *[]FieldError) {
	if _, ok := value.(bool); !ok {
		*errors = append(*errors, FieldError{
			Path:    path,
			Message: fmt.Sprintf("expected boolean, got %T", value),
		})
	}
}

func (v *Validator) validateNull(value any, path string, errors *[]FieldError) {
	if value != nil {
		*errors = append(*errors, FieldError{
			Path:    path,
			Message: fmt.Sprintf("expected null, got %T", value),
		})
	}
}

func (v *Validator) validateObject(value any, schema, root *Schema, path string, errors *[]FieldError) {
	obj, ok := value.(map[string]any)
	if !ok {
		*errors = append(*errors, FieldError{
			Path:    path,
			Message: fmt.Sprintf("expected object, got %T", value),
		})
		return
	}

	for _, req := range schema.Required {
		val, exists := obj[req]
		if !exists {
			*errors = append(*errors, FieldError{
				Path:    joinPath(path, req),
				Message: "required field is missing",
			})
		} else if val == nil {
			*errors = append(*errors, FieldError{
				Path:    joinPath(path, req),
				Message: "required field must not be null",
			})
		}
	}

	for propName, propValue := range obj {
		propPath := joinPath(path, propName)

		if propSchema, ok := schema.Properties[propName]; ok {
			v.validateValue(propValue, propSchema, root, propPath, errors)
		} else if schema.AdditionalProperties != nil {
			if !schema.AdditionalProperties.Allowed && schema.AdditionalProperties.Schema == nil {
				*errors = append(*errors, FieldError{
					Path:    propPath,
					Message: "additional property not allowed",
				})
			} else if schema.AdditionalProperties.Schema != nil {
				v.validateValue(propValue, schema.AdditionalProperties.Schema, root, propPath, errors)
			}
		}
	}
}

func (v *Validator) validateArray(value any, schema, root *Schema, path string, errors *[]FieldError) {
	arr, ok := value.([]any)
	if !ok {
		*errors = append(*errors, FieldError{
			Path:    path,
			Message: fmt.Sprintf("expected array, got %T", value),
		})
		return
	}

	if schema.MinItems != nil && len(arr) < *schema.MinItems {
		*errors = append(*errors, FieldError{
			Path:    path,
			Message: fmt.Sprintf("array has %d items, minimum is %d", len(arr), *schema.MinItems),
		})
	}

	if schema.MaxItems != nil && len(arr) > *schema.MaxItems {
		*errors = append(*errors, FieldError{
			Path:    path,
			Message: fmt.Sprintf("array has %d items, maximum is %d", len(arr), *schema.MaxItems),
		})
	}

	if schema.UniqueItems != nil && *schema.UniqueItems {
		seen := make(map[string]bool)
		for i, item := range arr {
			key := valueKey(item)
			if seen[key] {
				*errors = append(*errors, FieldError{
					Path:    fmt.Sprintf("%s[%d]", path, i),
					Message: "duplicate item in array with uniqueItems constraint",
				})
			}
			seen[key] = true
		}
	}

	if schema.Items != nil {
		for i, item := range arr {
			itemPath := fmt.Sprintf("%s[%d]", path, i)
			v.validateValue(item, schema.Items, root, itemPath, errors)
		}
	}
}

// toFloat64 converts a decoded JSON value to float64.
func toFloat64(value any) (float64, bool) {
	switch n := value.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case int32:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}

// equalValues compares two values for equality.
func equalValues(a, b any) bool {
	aNum, aIsNum := toFloat64(a)
	bNum, bIsNum := toFloat64(b)
	if aIsNum && bIsNum {
		return aNum == bNum
	}

	aStr, aIsStr := a.(string)
	bStr, bIsStr := b.(string)
	if aIsStr && bIsStr {
		return aStr == bStr
	}

	aBool, aIsBool := a.(bool)
	bBool, bIsBool := b.(bool)
	if aIsBool && bIsBool {
		return aBool == bBool
	}

	if a == nil && b == nil {
		return true
	}

	aJSON, _ := json.Marshal(a)
	bJSON, _ := json.Marshal(b)
	return string(aJSON) == string(bJSON)
}

// joinPath joins path segments.
func joinPath(base, segment string) string {
	if base == "" {
		return segment
	}
	return base + "." + segment
}

// valueKey generates a comparable key for a value (for uniqueItems).
func valueKey(value any) string {
	data, _ := json.Marshal(value)
	return string(data)
}
