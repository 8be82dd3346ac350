package schema

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewResponseFormat(t *testing.T) {
	s := NewObjectSchema().
		AddProperty("name", NewStringSchema()).
		AddRequired("name").
		WithAdditionalProperties(false)

	rf := NewResponseFormat("drug_info", true, s)

	assert.Equal(t, ResponseFormatType, rf.Type)
	assert.Equal(t, "drug_info", rf.JSONSchema.Name)
	assert.True(t, rf.JSONSchema.Strict)
	assert.Equal(t, s, rf.JSONSchema.Schema)
}

func TestResponseFormat_MarshalShape(t *testing.T) {
	rf := NewResponseFormat("drug_info", true, NewObjectSchema().WithAdditionalProperties(false))

	data, err := json.Marshal(rf)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, "json_schema", decoded["type"])

	inner, ok := decoded["json_schema"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "drug_info", inner["name"])
	assert.Equal(t, true, inner["strict"])
	require.Contains(t, inner, "schema")
}
