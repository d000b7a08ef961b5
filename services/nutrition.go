package services

import (
	"log"

	"github.com/berkaykan001/MacroBalance/models"
)

// The aggregation engine: pure functions from a catalog snapshot and a
// portion list to nutrition totals. No state, no side effects beyond a
// log line for dangling food references.

func findFood(foods []models.Food, id string) *models.Food {
	for i := range foods {
		if foods[i].ID == id {
			return &foods[i]
		}
	}
	return nil
}

// CalculateDishNutrition sums the nutrition of every ingredient, scaling
// each food's per-100g facts by grams/100. An ingredient whose foodId no
// longer resolves contributes zero rather than failing the whole dish;
// the deleted-food case is expected (no cascading delete on the catalog).
func CalculateDishNutrition(ingredients []models.Ingredient, foods []models.Food) models.Nutrition {
	var total models.Nutrition
	for _, ing := range ingredients {
		food := findFood(foods, ing.FoodID)
		if food == nil {
			log.Printf("nutrition: ingredient references unknown food %q, counting as zero", ing.FoodID)
			continue
		}
		total = total.Add(food.NutritionPer100g.Scale(ing.Grams / 100))
	}
	return total
}

// ConvertToNutritionPer100g renormalizes summed totals to a per-100g
// record. Zero total grams yields all-zero fields, never NaN or Inf.
func ConvertToNutritionPer100g(totals models.Nutrition, totalGrams float64) models.Nutrition {
	if totalGrams <= 0 {
		return models.Nutrition{}
	}
	return totals.Scale(100 / totalGrams)
}

// CalculateMealNutrition sums the absolute nutrition of the selected
// portions. Calories are always re-derived from the macros via the
// Atwater factors; the summed calorie field is discarded so the calorie
// number can never drift from the macros it represents.
func CalculateMealNutrition(selected []models.SelectedFood, foods []models.Food) models.Nutrition {
	var total models.Nutrition
	for _, sel := range selected {
		food := findFood(foods, sel.FoodID)
		if food == nil {
			log.Printf("nutrition: meal selection references unknown food %q, counting as zero", sel.FoodID)
			continue
		}
		total = total.Add(food.NutritionPer100g.Scale(sel.PortionGrams / 100))
	}
	total.Calories = total.MacroCalories()
	return total
}
