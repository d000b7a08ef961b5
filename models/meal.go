package models

import "time"

// MacroTargets are the per-meal primary macro goals in grams.
type MacroTargets struct {
	Protein float64 `json:"protein"`
	Carbs   float64 `json:"carbs"`
	Fat     float64 `json:"fat"`
}

// Calories derives the caloric equivalent of the targets via the Atwater
// factors, matching how the dashboard computes a meal's calorie goal.
func (t MacroTargets) Calories() float64 {
	return t.Protein*CaloriesPerGramProtein +
		t.Carbs*CaloriesPerGramCarbs +
		t.Fat*CaloriesPerGramFat
}

// Meal is a named meal slot (Breakfast, Lunch, ...) with its own macro
// targets. Completed is a computed view flag: whether a plan was logged
// against this slot today. It is never persisted.
type Meal struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	MacroTargets MacroTargets `json:"macroTargets"`
	Completed    bool         `json:"completed,omitempty"`
}

// SelectedFood is one portion of a catalog food inside a logged meal.
type SelectedFood struct {
	FoodID       string  `json:"foodId"`
	PortionGrams float64 `json:"portionGrams"`
}

// MealPlan is one logged instance of eating a meal. CalculatedMacros is
// the absolute nutrition of the selected portions, computed at log time
// and cached on the record so later catalog edits do not rewrite history.
type MealPlan struct {
	ID               string         `json:"id"`
	MealID           string         `json:"mealId"`
	SelectedFoods    []SelectedFood `json:"selectedFoods"`
	CalculatedMacros Nutrition      `json:"calculatedMacros"`
	CreatedAt        time.Time      `json:"createdAt"`
}
