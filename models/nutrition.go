package models

// Atwater factors: kcal per gram of each macro.
const (
	CaloriesPerGramProtein = 4.0
	CaloriesPerGramCarbs   = 4.0
	CaloriesPerGramFat     = 9.0
)

// Nutrition is one nutrient-totals record. Depending on context it holds
// either per-100g facts (Food.NutritionPer100g) or absolute amounts
// (a meal's calculated macros, a day's consumed totals). Grams unless noted.
type Nutrition struct {
	Calories float64 `json:"calories"` // kcal
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`

	Omega3             float64 `json:"omega3"`
	MonounsaturatedFat float64 `json:"monounsaturatedFat"`
	PolyunsaturatedFat float64 `json:"polyunsaturatedFat"`
	SaturatedFat       float64 `json:"saturatedFat"`
	TransFat           float64 `json:"transFat"`
	AddedSugars        float64 `json:"addedSugars"`
	NaturalSugars      float64 `json:"naturalSugars"`
	Fiber              float64 `json:"fiber"`

	Iron       float64 `json:"iron"`      // mg
	Calcium    float64 `json:"calcium"`   // mg
	Zinc       float64 `json:"zinc"`      // mg
	Magnesium  float64 `json:"magnesium"` // mg
	Sodium     float64 `json:"sodium"`    // mg
	Potassium  float64 `json:"potassium"` // mg
	VitaminB6  float64 `json:"vitaminB6"` // mg
	VitaminB12 float64 `json:"vitaminB12"` // µg
	VitaminC   float64 `json:"vitaminC"`  // mg
	VitaminD   float64 `json:"vitaminD"`  // µg
}

// Add returns the field-wise sum of n and o.
func (n Nutrition) Add(o Nutrition) Nutrition {
	n.Calories += o.Calories
	n.Protein += o.Protein
	n.Carbs += o.Carbs
	n.Fat += o.Fat
	n.Omega3 += o.Omega3
	n.MonounsaturatedFat += o.MonounsaturatedFat
	n.PolyunsaturatedFat += o.PolyunsaturatedFat
	n.SaturatedFat += o.SaturatedFat
	n.TransFat += o.TransFat
	n.AddedSugars += o.AddedSugars
	n.NaturalSugars += o.NaturalSugars
	n.Fiber += o.Fiber
	n.Iron += o.Iron
	n.Calcium += o.Calcium
	n.Zinc += o.Zinc
	n.Magnesium += o.Magnesium
	n.Sodium += o.Sodium
	n.Potassium += o.Potassium
	n.VitaminB6 += o.VitaminB6
	n.VitaminB12 += o.VitaminB12
	n.VitaminC += o.VitaminC
	n.VitaminD += o.VitaminD
	return n
}

// Scale returns n with every field multiplied by factor.
func (n Nutrition) Scale(factor float64) Nutrition {
	n.Calories *= factor
	n.Protein *= factor
	n.Carbs *= factor
	n.Fat *= factor
	n.Omega3 *= factor
	n.MonounsaturatedFat *= factor
	n.PolyunsaturatedFat *= factor
	n.SaturatedFat *= factor
	n.TransFat *= factor
	n.AddedSugars *= factor
	n.NaturalSugars *= factor
	n.Fiber *= factor
	n.Iron *= factor
	n.Calcium *= factor
	n.Zinc *= factor
	n.Magnesium *= factor
	n.Sodium *= factor
	n.Potassium *= factor
	n.VitaminB6 *= factor
	n.VitaminB12 *= factor
	n.VitaminC *= factor
	n.VitaminD *= factor
	return n
}

// MacroCalories derives kcal from the macro fields using the Atwater
// factors. Meal totals always carry this value rather than a summed
// calorie field, so macros and calories cannot drift apart.
func (n Nutrition) MacroCalories() float64 {
	return n.Protein*CaloriesPerGramProtein +
		n.Carbs*CaloriesPerGramCarbs +
		n.Fat*CaloriesPerGramFat
}
