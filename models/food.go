package models

import "time"

// CategoryDishes is reserved for composite foods built from ingredients.
const CategoryDishes = "dishes"

// Ingredient references a catalog food by id with an amount in grams.
type Ingredient struct {
	FoodID string  `json:"foodId"`
	Grams  float64 `json:"grams"`
}

// Food is one catalog entry: nutrition facts per 100g plus bookkeeping.
// A composite food ("dish") additionally carries its ingredient list and
// the total grams at creation time; its NutritionPer100g is derived from
// the ingredients, never entered directly.
type Food struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Category         string    `json:"category"`
	NutritionPer100g Nutrition `json:"nutritionPer100g"`

	IsDish      bool         `json:"isDish,omitempty"`
	Ingredients []Ingredient `json:"ingredients,omitempty"`
	TotalGrams  float64      `json:"totalGrams,omitempty"`

	UserAdded bool      `json:"userAdded"`
	CreatedAt time.Time `json:"createdAt"`
	LastUsed  time.Time `json:"lastUsed"`
}

// FoodPatch is a merge patch for Food: a present (non-nil) field overwrites,
// an absent field retains the current value. Identity, dish structure and
// the bookkeeping timestamps are not patchable.
type FoodPatch struct {
	Name             *string    `json:"name,omitempty"`
	Category         *string    `json:"category,omitempty"`
	NutritionPer100g *Nutrition `json:"nutritionPer100g,omitempty"`
}

// Apply merges the patch into f. A dish's nutrition stays derived, so the
// nutrition field of the patch is ignored for dishes.
func (p FoodPatch) Apply(f *Food) {
	if p.Name != nil {
		f.Name = *p.Name
	}
	if p.Category != nil {
		f.Category = *p.Category
	}
	if p.NutritionPer100g != nil && !f.IsDish {
		f.NutritionPer100g = *p.NutritionPer100g
	}
}
