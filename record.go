package druginfo

// ISODurationPattern is the permissive ISO 8601 duration pattern exported
// with the schema for strings like "PT2H" or "P3D". The lookahead rejects
// a bare "P"; in-process validation uses the "duration" format instead.
const ISODurationPattern = `^P(?=.*[T\d])(?:\d+Y)?(?:\d+M)?(?:\d+D)?(?:T(?:\d+H)?(?:\d+M)?(?:\d+S)?)?$`

// SearchURLPattern is the exported pattern forbidding the banned domain.
// ECMA lookahead syntax, evaluated by the downstream consumer; local
// enforcement is the banned-domain record rule.
const SearchURLPattern = `^(?!.*psychonautwiki\.org).*`

// DoseRanges describes the dose tiers for one route of administration.
type DoseRanges struct {
	Threshold string `json:"threshold" jsonschema:"description=Threshold dose."`
	Light     string `json:"light" jsonschema:"description=Light dose."`
	Common    string `json:"common" jsonschema:"description=Common dose."`
	Strong    string `json:"strong" jsonschema:"description=Strong dose."`
	Heavy     string `json:"heavy" jsonschema:"description=Heavy dose."`
}

// RouteOfAdministration carries dosage information for a single route.
type RouteOfAdministration struct {
	Route      string     `json:"route" jsonschema:"pattern=^[A-Za-z]+$,description=The route of administration. Single word or abbreviation only."`
	Units      string     `json:"units" jsonschema:"description=Units of measurement."`
	Notes      string     `json:"notes" jsonschema:"description=Commentary on provenance and context; data derived mostly from user reports must be noted as such."`
	DoseRanges DoseRanges `json:"dose_ranges"`
}

// Dosages groups dosage information across routes of administration.
type Dosages struct {
	RoutesOfAdministration []RouteOfAdministration `json:"routes_of_administration" jsonschema:"description=Dosages information for different routes of administration."`
}

// DurationSummary is the string-based duration summary.
type DurationSummary struct {
	TotalDuration string `json:"total_duration" jsonschema:"description=Total duration of effects."`
	Onset         string `json:"onset" jsonschema:"description=Onset time of effects."`
	Peak          string `json:"peak" jsonschema:"description=Peak time of effects."`
	Offset        string `json:"offset" jsonschema:"description=Offset time of effects."`
	AfterEffects  string `json:"after_effects" jsonschema:"description=Duration of after-effects."`
}

// DurationRange is a numeric duration span with ISO 8601 representations.
type DurationRange struct {
	Min  float64  `json:"min" jsonschema:"description=Minimum duration value"`
	Max  float64  `json:"max" jsonschema:"description=Maximum duration value"`
	ISO  []string `json:"iso" jsonschema:"pattern=^P(?=.*[T\\d])(?:\\d+Y)?(?:\\d+M)?(?:\\d+D)?(?:T(?:\\d+H)?(?:\\d+M)?(?:\\d+S)?)?$,format=duration,description=ISO 8601 duration format representations"`
	Note string   `json:"note" jsonschema:"description=Additional notes about the duration"`
}

// DurationPhase bounds one phase of a duration curve.
type DurationPhase struct {
	Start    float64  `json:"start" jsonschema:"description=Start time of this phase"`
	End      float64  `json:"end" jsonschema:"description=End time of this phase"`
	ISOStart []string `json:"iso_start" jsonschema:"pattern=^P(?=.*[T\\d])(?:\\d+Y)?(?:\\d+M)?(?:\\d+D)?(?:T(?:\\d+H)?(?:\\d+M)?(?:\\d+S)?)?$,format=duration,description=ISO 8601 duration format for start time"`
	ISOEnd   []string `json:"iso_end" jsonschema:"pattern=^P(?=.*[T\\d])(?:\\d+Y)?(?:\\d+M)?(?:\\d+D)?(?:T(?:\\d+H)?(?:\\d+M)?(?:\\d+S)?)?$,format=duration,description=ISO 8601 duration format for end time"`
}

// DurationCurveData is the per-route duration curve.
type DurationCurveData struct {
	Reference     string        `json:"reference" jsonschema:"description=Citation or reference for the duration data"`
	Units         DurationUnits `json:"units" jsonschema:"description=Time units used"`
	TotalDuration DurationRange `json:"total_duration"`
	Onset         DurationPhase `json:"onset"`
	Peak          DurationPhase `json:"peak"`
	Offset        DurationPhase `json:"offset"`
	AfterEffects  DurationPhase `json:"after_effects"`
}

// DurationCurveEntry binds a duration curve to a route of administration.
type DurationCurveEntry struct {
	Method        string            `json:"method" jsonschema:"description=Route of administration the curve applies to."`
	DurationCurve DurationCurveData `json:"duration_curve"`
}

// Interactions lists drug interactions by severity.
type Interactions struct {
	Dangerous []string `json:"dangerous" jsonschema:"description=Dangerous drug interactions."`
	Unsafe    []string `json:"unsafe" jsonschema:"description=Unsafe drug interactions."`
	Caution   []string `json:"caution" jsonschema:"description=Interactions that require caution."`
}

// ToleranceModel parameterizes tolerance development and decay.
type ToleranceModel struct {
	Type      ToleranceModelType `json:"type" jsonschema:"description=The mathematical model used to describe tolerance changes"`
	BuildRate float64            `json:"build_rate" jsonschema:"minimum=0,description=Rate at which tolerance develops in percentage per hour"`
	DecayRate float64            `json:"decay_rate" jsonschema:"minimum=0,description=Rate at which tolerance decays in percentage per hour"`
	HalfLife  float64            `json:"half_life" jsonschema:"minimum=0,description=Half-life of tolerance decay in hours"`
}

// ToleranceTimelinePoint is a discrete point on the tolerance curve.
type ToleranceTimelinePoint struct {
	Hours               float64 `json:"hours" jsonschema:"minimum=0,description=Time in hours since last use"`
	TolerancePercentage float64 `json:"tolerance_percentage" jsonschema:"minimum=0,maximum=100,description=Percentage of tolerance remaining"`
	Confidence          float64 `json:"confidence" jsonschema:"minimum=0,maximum=100,description=Confidence level in this data point"`
}

// ToleranceBaselinePoint is a named marker on the tolerance timeline.
type ToleranceBaselinePoint struct {
	Hours      float64 `json:"hours" jsonschema:"description=Hours for this tolerance marker"`
	Confidence float64 `json:"confidence" jsonschema:"minimum=0,maximum=100,description=Confidence in this estimate"`
}

// ToleranceBaselines holds the key tolerance timeline markers.
type ToleranceBaselines struct {
	FullTolerance     ToleranceBaselinePoint `json:"full_tolerance"`
	HalfTolerance     ToleranceBaselinePoint `json:"half_tolerance"`
	BaselineTolerance ToleranceBaselinePoint `json:"baseline_tolerance"`
}

// CrossToleranceEntry describes cross-tolerance with another substance.
type CrossToleranceEntry struct {
	Substance  string  `json:"substance" jsonschema:"description=Name of substance with cross-tolerance"`
	Ratio      float64 `json:"ratio" jsonschema:"minimum=0,maximum=1,description=Approximate ratio of cross-tolerance"`
	Confidence float64 `json:"confidence" jsonschema:"minimum=0,maximum=100,description=Confidence in this estimate"`
}

// ToleranceData is the complex tolerance object used by the root record.
type ToleranceData struct {
	Model           ToleranceModel           `json:"model" jsonschema:"description=Mathematical model for tolerance development and decay"`
	Timeline        []ToleranceTimelinePoint `json:"timeline" jsonschema:"description=Discrete points on the tolerance curve"`
	Baselines       ToleranceBaselines       `json:"baselines" jsonschema:"description=Key tolerance timeline markers"`
	CrossTolerances []CrossToleranceEntry    `json:"cross_tolerances" jsonschema:"description=Substances with cross-tolerance"`
	Notes           string                   `json:"notes" jsonschema:"description=Additional notes about tolerance patterns or data quality"`
	DataQuality     ToleranceDataQuality     `json:"data_quality" jsonschema:"description=Overall quality assessment of tolerance data"`
}

// Tolerance is the legacy string-based tolerance shape. No record field
// uses it, but it stays in the exported $defs for schema compatibility.
type Tolerance struct {
	FullTolerance   string   `json:"full_tolerance" jsonschema:"description=Time to full tolerance."`
	HalfTolerance   string   `json:"half_tolerance" jsonschema:"description=Time to half tolerance."`
	ZeroTolerance   string   `json:"zero_tolerance" jsonschema:"description=Time to zero tolerance."`
	CrossTolerances []string `json:"cross_tolerances" jsonschema:"description=Substances with cross-tolerance."`
}

// Citation names a supporting source.
type Citation struct {
	Name      string `json:"name" jsonschema:"description=The name or title of the citation."`
	Reference string `json:"reference" jsonschema:"description=The URL or other reference of the citation."`
}

// DrugInfo is the root substance information record. All objects in the
// graph are closed: construction rejects unknown fields, and every field
// is required.
type DrugInfo struct {
	DrugName           string               `json:"drug_name" jsonschema:"description=Primary name of the substance as commonly recognized across sources."`
	SearchURL          string               `json:"search_url" jsonschema:"format=uri,pattern=^(?!.*psychonautwiki\\.org).*,description=URL to a comprehensive information repository. Must NOT be a PsychonautWiki.org URL."`
	ChemicalClass      string               `json:"chemical_class" jsonschema:"description=Chemical class of the substance based on structural and functional similarity."`
	PsychoactiveClass  string               `json:"psychoactive_class" jsonschema:"description=Psychoactive class reflecting CNS effects."`
	Dosages            Dosages              `json:"dosages"`
	Duration           DurationSummary      `json:"duration"`
	DurationCurves     []DurationCurveEntry `json:"duration_curves" jsonschema:"description=ROA-specific duration curve data for plotting drug effect timelines"`
	AddictionPotential string               `json:"addiction_potential" jsonschema:"description=Description of addiction potential based on epidemiology and case reports."`
	Interactions       Interactions         `json:"interactions"`
	Notes              string               `json:"notes" jsonschema:"description=Additional notes and warnings for harm reduction. Must include at least 3 sentences."`
	SubjectiveEffects  []string             `json:"subjective_effects" jsonschema:"description=List of subjective effects aggregated from user reports and research."`
	Tolerance          ToleranceData        `json:"tolerance"`
	HalfLife           string               `json:"half_life" jsonschema:"description=Pharmacokinetic half-life as reported in studies."`
	Citations          []Citation           `json:"citations" jsonschema:"description=Citations supporting the information provided."`
	Categories         []Category           `json:"categories" jsonschema:"description=List of categories the drug belongs to."`
}
