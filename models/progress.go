package models

// SubMacroTargets cover fats, sugars and fiber. Max* fields are upper
// bounds (limits), MinFiber is a floor; the remaining fields are goals.
type SubMacroTargets struct {
	Omega3             float64 `json:"omega3"`
	MonounsaturatedFat float64 `json:"monounsaturatedFat"`
	PolyunsaturatedFat float64 `json:"polyunsaturatedFat"`
	MinFiber           float64 `json:"minFiber"`
	MaxSaturatedFat    float64 `json:"maxSaturatedFat"`
	MaxTransFat        float64 `json:"maxTransFat"`
	MaxAddedSugars     float64 `json:"maxAddedSugars"`
	MaxNaturalSugars   float64 `json:"maxNaturalSugars"`
}

// MicronutrientTargets are daily vitamin and mineral goals. Sodium is an
// upper bound; everything else is a goal. Units match Nutrition.
type MicronutrientTargets struct {
	Iron       float64 `json:"iron"`
	Calcium    float64 `json:"calcium"`
	Zinc       float64 `json:"zinc"`
	Magnesium  float64 `json:"magnesium"`
	Sodium     float64 `json:"sodium"`
	Potassium  float64 `json:"potassium"`
	VitaminB6  float64 `json:"vitaminB6"`
	VitaminB12 float64 `json:"vitaminB12"`
	VitaminC   float64 `json:"vitaminC"`
	VitaminD   float64 `json:"vitaminD"`
}

// TargetProfile groups the user's daily targets the way the dashboard
// consumes them: primary macros, sub-macros, micronutrients.
type TargetProfile struct {
	Targets              MacroTargets         `json:"targets"`
	SubMacroTargets      SubMacroTargets      `json:"subMacroTargets"`
	MicronutrientTargets MicronutrientTargets `json:"micronutrientTargets"`
}

// DailyProgress is the computed comparison of today's consumed nutrients
// against the active target profile. It is recomputed on every read and
// never persisted.
type DailyProgress struct {
	Consumed             Nutrition            `json:"consumed"`
	Targets              MacroTargets         `json:"targets"`
	SubMacroTargets      SubMacroTargets      `json:"subMacroTargets"`
	MicronutrientTargets MicronutrientTargets `json:"micronutrientTargets"`
}

// ProgressStatus classifies how consumed relates to a target.
type ProgressStatus string

const (
	StatusUnder             ProgressStatus = "under"
	StatusOnTarget          ProgressStatus = "on_target"
	StatusSlightlyOver      ProgressStatus = "slightly_over"
	StatusSignificantlyOver ProgressStatus = "significantly_over"
)

// NutrientProgress is one nutrient's line in the progress breakdown.
// Percent is uncapped; DisplayPercent is clamped for bounded visuals.
// For Max-type nutrients (limits such as sodium or trans fat) the status
// arithmetic is identical but the over bands read as limit breaches.
type NutrientProgress struct {
	Consumed       float64        `json:"consumed"`
	Target         float64        `json:"target"`
	Percent        float64        `json:"percent"`
	DisplayPercent float64        `json:"displayPercent"`
	Status         ProgressStatus `json:"status"`
	Max            bool           `json:"max,omitempty"`
	Unit           string         `json:"unit,omitempty"`
}
