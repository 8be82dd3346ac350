package druginfo

// DurationUnits is the time unit a duration curve is expressed in.
type DurationUnits string

const (
	UnitsHours   DurationUnits = "hours"
	UnitsMinutes DurationUnits = "minutes"
	UnitsDays    DurationUnits = "days"
)

// EnumValues implements schema.Enumer.
func (DurationUnits) EnumValues() []string {
	return []string{"hours", "minutes", "days"}
}

// ToleranceModelType is the mathematical model describing tolerance changes.
type ToleranceModelType string

const (
	ToleranceModelExponential ToleranceModelType = "exponential"
	ToleranceModelLinear      ToleranceModelType = "linear"
	ToleranceModelCustom      ToleranceModelType = "custom"
	ToleranceModelUnknown     ToleranceModelType = "unknown"
)

// EnumValues implements schema.Enumer.
func (ToleranceModelType) EnumValues() []string {
	return []string{"exponential", "linear", "custom", "unknown"}
}

// ToleranceDataQuality grades the overall quality of tolerance data.
type ToleranceDataQuality string

const (
	QualityHigh        ToleranceDataQuality = "high"
	QualityMedium      ToleranceDataQuality = "medium"
	QualityLow         ToleranceDataQuality = "low"
	QualityAnecdotal   ToleranceDataQuality = "anecdotal"
	QualityTheoretical ToleranceDataQuality = "theoretical"
)

// EnumValues implements schema.Enumer.
func (ToleranceDataQuality) EnumValues() []string {
	return []string{"high", "medium", "low", "anecdotal", "theoretical"}
}

// Category tags a substance with a pharmacological or risk class.
type Category string

const (
	CategoryPsychedelic        Category = "psychedelic"
	CategoryGabapentinoid      Category = "gabapentinoid"
	CategoryAntipsychotic      Category = "antipsychotic"
	CategoryMedicalOffLabel    Category = "medical|off-label"
	CategoryCannabinoid        Category = "cannabinoid"
	CategoryCariotoxic         Category = "cariotoxic"
	CategoryHepatotoxic        Category = "hepatotoxic"
	CategoryOtotoxic           Category = "ototoxic"
	CategoryNeurotoxic         Category = "neurotoxic"
	CategoryCarcinogenic       Category = "carcinogenic"
	CategoryToxicUnspecified   Category = "toxic|unspecified"
	CategoryIrreversibleDamage Category = "irreversible-damage"
	CategoryDissociative       Category = "dissociative"
	CategoryStimulant          Category = "stimulant"
	CategoryResearchChemical   Category = "research-chemical"
	CategoryEmpathogen         Category = "empathogen"
	CategoryHabitForming       Category = "habit-forming"
	CategoryOpioid             Category = "opioid"
	CategoryDepressant         Category = "depressant"
	CategoryHallucinogen       Category = "hallucinogen"
	CategoryEntactogen         Category = "entactogen"
	CategoryDeliriant          Category = "deliriant"
	CategoryAntidepressant     Category = "antidepressant"
	CategorySedative           Category = "sedative"
	CategoryNootropic          Category = "nootropic"
	CategoryBarbiturate        Category = "barbiturate"
	CategoryBenzodiazepine     Category = "benzodiazepine"
	CategorySupplement         Category = "supplement"
	CategoryStimulantSedative  Category = "stimulant-sedative"
	CategoryAnorectic          Category = "anorectic"
	CategoryAntiepileptic      Category = "antiepileptic"
	CategoryAntihistamine      Category = "antihistamine"
)

// categoryValues preserves declaration order. The literal spellings,
// including the "|" and "-" forms, are part of the exported contract.
var categoryValues = []string{
	"psychedelic",
	"gabapentinoid",
	"antipsychotic",
	"medical|off-label",
	"cannabinoid",
	"cariotoxic",
	"hepatotoxic",
	"ototoxic",
	"neurotoxic",
	"carcinogenic",
	"toxic|unspecified",
	"irreversible-damage",
	"dissociative",
	"stimulant",
	"research-chemical",
	"empathogen",
	"habit-forming",
	"opioid",
	"depressant",
	"hallucinogen",
	"entactogen",
	"deliriant",
	"antidepressant",
	"sedative",
	"nootropic",
	"barbiturate",
	"benzodiazepine",
	"supplement",
	"stimulant-sedative",
	"anorectic",
	"antiepileptic",
	"antihistamine",
}

// EnumValues implements schema.Enumer.
func (Category) EnumValues() []string {
	return categoryValues
}
