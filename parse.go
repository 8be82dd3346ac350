package druginfo

import (
	"encoding/json"
	"fmt"

	"github.com/hrlabs/druginfo/schema"
)

// recordValidator is safe for concurrent use: after construction it only
// reads its format registry.
var recordValidator = schema.NewValidator()

// Parse validates raw JSON against the record schema and the record
// rules, returning a fully typed record or every violation found as a
// *schema.ValidationErrors.
func Parse(data []byte) (*DrugInfo, error) {
	var value any
	if err := json.Unmarshal(data, &value); err != nil {
		return nil, &schema.ValidationErrors{
			Errors: []schema.FieldError{{Message: fmt.Sprintf("invalid JSON: %v", err)}},
		}
	}

	if err := validateValue(value); err != nil {
		return nil, err
	}

	var record DrugInfo
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, &schema.ValidationErrors{
			Errors: []schema.FieldError{{Message: fmt.Sprintf("JSON parse error: %v", err)}},
		}
	}
	return &record, nil
}

// FromMap constructs a validated record from an untyped mapping, such as
// a decoded model completion.
func FromMap(m map[string]any) (*DrugInfo, error) {
	data, err := json.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal input: %w", err)
	}
	return Parse(data)
}

// validateValue runs schema validation and the record rules on a decoded
// value, aggregating all violations into one error.
func validateValue(value any) error {
	s, err := RecordSchema()
	if err != nil {
		return fmt.Errorf("failed to build record schema: %w", err)
	}

	var errs []schema.FieldError
	if err := recordValidator.ValidateValue(value, s); err != nil {
		if ve, ok := err.(*schema.ValidationErrors); ok {
			errs = append(errs, ve.Errors...)
		} else {
			errs = append(errs, schema.FieldError{Message: err.Error()})
		}
	}
	errs = append(errs, recordRules(value)...)

	if len(errs) > 0 {
		return &schema.ValidationErrors{Errors: errs}
	}
	return nil
}

// Validate re-runs the full validation pipeline on the typed record.
func (d *DrugInfo) Validate() error {
	data, err := json.Marshal(d)
	if err != nil {
		return fmt.Errorf("failed to marshal record: %w", err)
	}
	var value any
	if err := json.Unmarshal(data, &value); err != nil {
		return fmt.Errorf("failed to decode record: %w", err)
	}
	return validateValue(value)
}

// Set applies a mutation to a copy of the record, validates the result
// and commits only on success. A failed mutation returns the aggregated
// violations and leaves the record unchanged, so a held record is never
// observed in an invalid state.
func (d *DrugInfo) Set(mutate func(*DrugInfo)) error {
	next, err := d.clone()
	if err != nil {
		return err
	}
	mutate(next)
	if err := next.Validate(); err != nil {
		return err
	}
	*d = *next
	return nil
}

// SetSearchURL replaces search_url, re-running the banned-domain rule.
func (d *DrugInfo) SetSearchURL(u string) error {
	return d.Set(func(r *DrugInfo) { r.SearchURL = u })
}

// SetNotes replaces the harm reduction notes, re-running the
// sentence-count rule.
func (d *DrugInfo) SetNotes(notes string) error {
	return d.Set(func(r *DrugInfo) { r.Notes = notes })
}

// SetCategories replaces the category tags, re-checking them against the
// category enumeration.
func (d *DrugInfo) SetCategories(categories []Category) error {
	return d.Set(func(r *DrugInfo) { r.Categories = categories })
}

// clone deep-copies the record through its JSON form.
func (d *DrugInfo) clone() (*DrugInfo, error) {
	data, err := json.Marshal(d)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal record: %w", err)
	}
	var out DrugInfo
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("failed to copy record: %w", err)
	}
	return &out, nil
}
