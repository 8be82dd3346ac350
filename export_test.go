package druginfo

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hrlabs/druginfo/schema"
)

// Every nested entity of the record graph gets a $defs entry.
var expectedDefs = []string{
	"Dosages",
	"RouteOfAdministration",
	"DoseRanges",
	"DurationSummary",
	"DurationCurveEntry",
	"DurationCurveData",
	"DurationRange",
	"DurationPhase",
	"Interactions",
	"ToleranceData",
	"ToleranceModel",
	"ToleranceTimelinePoint",
	"ToleranceBaselines",
	"ToleranceBaselinePoint",
	"CrossToleranceEntry",
	"Tolerance",
	"Citation",
	"DurationUnits",
	"ToleranceModelType",
	"ToleranceDataQuality",
	"Category",
}

func TestRecordSchema_Defs(t *testing.T) {
	s, err := RecordSchema()
	require.NoError(t, err)

	for _, name := range expectedDefs {
		assert.Contains(t, s.Defs, name)
	}
}

func TestRecordSchema_RootShape(t *testing.T) {
	s, err := RecordSchema()
	require.NoError(t, err)

	assert.Equal(t, "DrugInfo", s.Title)
	assert.Equal(t, schema.TypeObject, s.Type)

	wantRequired := []string{
		"drug_name", "search_url", "chemical_class", "psychoactive_class",
		"dosages", "duration", "duration_curves", "addiction_potential",
		"interactions", "notes", "subjective_effects", "tolerance",
		"half_life", "citations", "categories",
	}
	assert.Equal(t, wantRequired, s.Required)
}

// additionalProperties must be false at every object level so any
// undeclared field anywhere in the graph is a violation.
func TestRecordSchema_ClosedEverywhere(t *testing.T) {
	s, err := RecordSchema()
	require.NoError(t, err)

	checkClosed := func(name string, obj *schema.Schema) {
		if obj.Type != schema.TypeObject {
			return
		}
		require.NotNil(t, obj.AdditionalProperties, "%s has no additionalProperties", name)
		assert.False(t, obj.AdditionalProperties.Allowed, "%s is not closed", name)
		assert.Len(t, obj.Required, len(obj.Properties), "%s does not require every property", name)
	}

	checkClosed("root", s)
	for name, def := range s.Defs {
		checkClosed(name, def)
	}
}

func TestRecordSchema_SearchURLConstraints(t *testing.T) {
	s, err := RecordSchema()
	require.NoError(t, err)

	prop := s.Properties["search_url"]
	require.NotNil(t, prop)
	assert.Equal(t, schema.FormatURI, prop.Format)
	assert.Equal(t, SearchURLPattern, prop.Pattern)
}

func TestRecordSchema_ISODurationConstraints(t *testing.T) {
	s, err := RecordSchema()
	require.NoError(t, err)

	iso := s.Defs["DurationRange"].Properties["iso"]
	require.Equal(t, schema.TypeArray, iso.Type)
	assert.Equal(t, ISODurationPattern, iso.Items.Pattern)
	assert.Equal(t, schema.FormatDuration, iso.Items.Format)

	phase := s.Defs["DurationPhase"]
	assert.Equal(t, ISODurationPattern, phase.Properties["iso_start"].Items.Pattern)
	assert.Equal(t, ISODurationPattern, phase.Properties["iso_end"].Items.Pattern)
}

func TestRecordSchema_NumericBounds(t *testing.T) {
	s, err := RecordSchema()
	require.NoError(t, err)

	ratio := s.Defs["CrossToleranceEntry"].Properties["ratio"]
	require.NotNil(t, ratio.Minimum)
	assert.Equal(t, float64(0), *ratio.Minimum)
	require.NotNil(t, ratio.Maximum)
	assert.Equal(t, float64(1), *ratio.Maximum)

	pct := s.Defs["ToleranceTimelinePoint"].Properties["tolerance_percentage"]
	assert.Equal(t, float64(0), *pct.Minimum)
	assert.Equal(t, float64(100), *pct.Maximum)

	rate := s.Defs["ToleranceModel"].Properties["build_rate"]
	require.NotNil(t, rate.Minimum)
	assert.Equal(t, float64(0), *rate.Minimum)
	assert.Nil(t, rate.Maximum)
}

func TestRecordSchema_CategoryEnum(t *testing.T) {
	s, err := RecordSchema()
	require.NoError(t, err)

	def := s.Defs["Category"]
	require.NotNil(t, def)
	assert.Equal(t, schema.TypeString, def.Type)
	require.Len(t, def.Enum, 32)

	// Literal spellings, including the "|" and "-" forms, in declared order.
	assert.Equal(t, "psychedelic", def.Enum[0])
	assert.Contains(t, def.Enum, "medical|off-label")
	assert.Contains(t, def.Enum, "toxic|unspecified")
	assert.Contains(t, def.Enum, "irreversible-damage")
	assert.Contains(t, def.Enum, "stimulant-sedative")
	assert.Equal(t, "antihistamine", def.Enum[len(def.Enum)-1])

	cats := s.Properties["categories"]
	require.Equal(t, schema.TypeArray, cats.Type)
	assert.Equal(t, schema.DefsPrefix+"Category", cats.Items.Ref)
}

func TestRecordSchema_RouteTokenPattern(t *testing.T) {
	s, err := RecordSchema()
	require.NoError(t, err)

	route := s.Defs["RouteOfAdministration"].Properties["route"]
	assert.Equal(t, `^[A-Za-z]+$`, route.Pattern)
}

func TestRecordSchema_LegacyToleranceDef(t *testing.T) {
	s, err := RecordSchema()
	require.NoError(t, err)

	legacy := s.Defs["Tolerance"]
	require.NotNil(t, legacy)
	assert.Equal(t, []string{
		"full_tolerance", "half_tolerance", "zero_tolerance", "cross_tolerances",
	}, legacy.Required)

	// Nothing in the record references it; it exists for contract
	// compatibility only.
	data, err := s.ToJSON()
	require.NoError(t, err)
	assert.NotContains(t, string(data), `"#/$defs/Tolerance"`)
}

func TestRecordSchema_ReturnsCopy(t *testing.T) {
	first, err := RecordSchema()
	require.NoError(t, err)
	first.Title = "mutated"
	delete(first.Defs, "Category")

	second, err := RecordSchema()
	require.NoError(t, err)
	assert.Equal(t, "DrugInfo", second.Title)
	assert.Contains(t, second.Defs, "Category")
}

func TestStructuredOutputFormat(t *testing.T) {
	rf, err := StructuredOutputFormat()
	require.NoError(t, err)

	assert.Equal(t, schema.ResponseFormatType, rf.Type)
	assert.Equal(t, SchemaName, rf.JSONSchema.Name)
	assert.True(t, rf.JSONSchema.Strict)
	require.NotNil(t, rf.JSONSchema.Schema)
}

func TestStructuredOutputJSON_Envelope(t *testing.T) {
	data, err := StructuredOutputJSON()
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, "json_schema", decoded["type"])

	inner := decoded["json_schema"].(map[string]any)
	assert.Equal(t, "drug_info", inner["name"])
	assert.Equal(t, true, inner["strict"])

	exported := inner["schema"].(map[string]any)
	assert.Equal(t, "object", exported["type"])
	require.Contains(t, exported, "$defs")
	defs := exported["$defs"].(map[string]any)
	assert.Contains(t, defs, "Tolerance")
	assert.Contains(t, defs, "Category")
}

// Exporting twice with an unchanged type graph yields byte-identical
// documents.
func TestStructuredOutputJSON_Deterministic(t *testing.T) {
	first, err := StructuredOutputJSON()
	require.NoError(t, err)

	second, err := StructuredOutputJSON()
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

// The end-to-end scenario: a minimal valid record constructs, and the
// exported contract carries the expected envelope.
func TestEndToEnd(t *testing.T) {
	record, err := FromMap(validRecordMap())
	require.NoError(t, err)
	assert.Equal(t, []Category{CategoryStimulant}, record.Categories)

	rf, err := StructuredOutputFormat()
	require.NoError(t, err)
	assert.Equal(t, "drug_info", rf.JSONSchema.Name)
	assert.True(t, rf.JSONSchema.Strict)
}
