// Copyright 2026 DrugInfo Authors
// Use of this source code is governed by the project license.

/*
Package druginfo defines a validated record of psychoactive substance
information and exports its JSON Schema for structured model output.

The record graph is closed: every field is required, unknown fields are
rejected anywhere in the graph, enumerated fields accept a fixed token
set, and numeric fields carry range bounds. Two record-level rules go
beyond the schema: search_url must be a well-formed http(s) URL with a
host and must not point at psychonautwiki.org (the parsed host and the
raw string are both checked, case-insensitively), and the harm reduction
notes must contain at least three sentences.

# Construction and mutation

	record, err := druginfo.Parse(completion) // or FromMap
	var ve *schema.ValidationErrors
	if errors.As(err, &ve) {
		// every violation, each with a field path
	}

Records stay valid after construction: Set and the field setters
validate a mutated copy and commit only on success.

	if err := record.SetNotes("Too short."); err != nil {
		// record unchanged
	}

# Schema export

StructuredOutputFormat wraps the record schema in the response_format
envelope consumed by completion APIs:

	{"type": "json_schema", "json_schema": {"name": "drug_info", "strict": true, "schema": {...}}}

Export is deterministic; the same type graph always serializes to the
same bytes.
*/
package druginfo
