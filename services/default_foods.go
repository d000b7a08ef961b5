package services

import "github.com/berkaykan001/MacroBalance/models"

// DefaultFoods returns the built-in starter catalog used when no persisted
// catalog exists (or it cannot be read). Values are per 100g.
func DefaultFoods() []models.Food {
	return []models.Food{
		{
			ID: "default-chicken-breast", Name: "Chicken Breast", Category: "protein",
			NutritionPer100g: models.Nutrition{
				Calories: 165, Protein: 31, Carbs: 0, Fat: 3.6,
				SaturatedFat: 1.0, MonounsaturatedFat: 1.2, PolyunsaturatedFat: 0.8,
				Iron: 1.0, Calcium: 15, Zinc: 1.0, Magnesium: 29, Sodium: 74,
				Potassium: 256, VitaminB6: 0.6, VitaminB12: 0.3,
			},
		},
		{
			ID: "default-salmon", Name: "Salmon", Category: "protein",
			NutritionPer100g: models.Nutrition{
				Calories: 208, Protein: 20, Carbs: 0, Fat: 13,
				Omega3: 2.3, SaturatedFat: 3.1, MonounsaturatedFat: 3.8, PolyunsaturatedFat: 3.9,
				Iron: 0.8, Calcium: 12, Zinc: 0.6, Magnesium: 29, Sodium: 59,
				Potassium: 363, VitaminB6: 0.6, VitaminB12: 3.2, VitaminD: 11,
			},
		},
		{
			ID: "default-eggs", Name: "Eggs", Category: "protein",
			NutritionPer100g: models.Nutrition{
				Calories: 155, Protein: 13, Carbs: 1.1, Fat: 11,
				SaturatedFat: 3.3, MonounsaturatedFat: 4.1, PolyunsaturatedFat: 1.4,
				Iron: 1.8, Calcium: 56, Zinc: 1.3, Magnesium: 12, Sodium: 124,
				Potassium: 126, VitaminB6: 0.1, VitaminB12: 0.9, VitaminD: 2.0,
			},
		},
		{
			ID: "default-white-rice", Name: "White Rice", Category: "carbs",
			NutritionPer100g: models.Nutrition{
				Calories: 130, Protein: 2.7, Carbs: 28, Fat: 0.3,
				NaturalSugars: 0.1, Fiber: 0.4,
				Iron: 0.2, Calcium: 10, Zinc: 0.5, Magnesium: 12, Sodium: 1, Potassium: 35,
			},
		},
		{
			ID: "default-oats", Name: "Oats", Category: "carbs",
			NutritionPer100g: models.Nutrition{
				Calories: 389, Protein: 17, Carbs: 66, Fat: 6.9,
				SaturatedFat: 1.2, PolyunsaturatedFat: 2.5, NaturalSugars: 1.0, Fiber: 10.6,
				Iron: 4.7, Calcium: 54, Zinc: 4.0, Magnesium: 177, Sodium: 2,
				Potassium: 429, VitaminB6: 0.1,
			},
		},
		{
			ID: "default-banana", Name: "Banana", Category: "fruits",
			NutritionPer100g: models.Nutrition{
				Calories: 89, Protein: 1.1, Carbs: 23, Fat: 0.3,
				NaturalSugars: 12, Fiber: 2.6,
				Iron: 0.3, Calcium: 5, Zinc: 0.2, Magnesium: 27, Sodium: 1,
				Potassium: 358, VitaminB6: 0.4, VitaminC: 8.7,
			},
		},
		{
			ID: "default-lettuce", Name: "Lettuce", Category: "vegetables",
			NutritionPer100g: models.Nutrition{
				Calories: 15, Protein: 1.4, Carbs: 2.9, Fat: 0.2,
				NaturalSugars: 0.8, Fiber: 1.3,
				Iron: 0.9, Calcium: 36, Zinc: 0.2, Magnesium: 13, Sodium: 28,
				Potassium: 194, VitaminC: 9.2,
			},
		},
		{
			ID: "default-broccoli", Name: "Broccoli", Category: "vegetables",
			NutritionPer100g: models.Nutrition{
				Calories: 34, Protein: 2.8, Carbs: 7, Fat: 0.4,
				NaturalSugars: 1.7, Fiber: 2.6,
				Iron: 0.7, Calcium: 47, Zinc: 0.4, Magnesium: 21, Sodium: 33,
				Potassium: 316, VitaminB6: 0.2, VitaminC: 89,
			},
		},
		{
			ID: "default-olive-oil", Name: "Olive Oil", Category: "fats",
			NutritionPer100g: models.Nutrition{
				Calories: 884, Protein: 0, Carbs: 0, Fat: 100,
				SaturatedFat: 14, MonounsaturatedFat: 73, PolyunsaturatedFat: 11, Omega3: 0.8,
				Sodium: 2, Potassium: 1,
			},
		},
		{
			ID: "default-almonds", Name: "Almonds", Category: "fats",
			NutritionPer100g: models.Nutrition{
				Calories: 579, Protein: 21, Carbs: 22, Fat: 50,
				SaturatedFat: 3.8, MonounsaturatedFat: 31, PolyunsaturatedFat: 12,
				NaturalSugars: 4.4, Fiber: 12.5,
				Iron: 3.7, Calcium: 269, Zinc: 3.1, Magnesium: 270, Sodium: 1,
				Potassium: 733, VitaminB6: 0.1,
			},
		},
		{
			ID: "default-greek-yogurt", Name: "Greek Yogurt", Category: "dairy",
			NutritionPer100g: models.Nutrition{
				Calories: 59, Protein: 10, Carbs: 3.6, Fat: 0.4,
				SaturatedFat: 0.1, NaturalSugars: 3.2,
				Iron: 0.1, Calcium: 110, Zinc: 0.5, Magnesium: 11, Sodium: 36,
				Potassium: 141, VitaminB12: 0.8,
			},
		},
		{
			ID: "default-whey-protein", Name: "Whey Protein", Category: "protein",
			NutritionPer100g: models.Nutrition{
				Calories: 400, Protein: 80, Carbs: 8, Fat: 7,
				SaturatedFat: 4.5, AddedSugars: 4.0,
				Calcium: 500, Sodium: 180, Potassium: 500, VitaminB12: 1.2,
			},
		},
	}
}

// DefaultMeals returns the built-in meal slots with their macro targets.
func DefaultMeals() []models.Meal {
	return []models.Meal{
		{ID: "meal-breakfast", Name: "Breakfast", MacroTargets: models.MacroTargets{Protein: 35, Carbs: 60, Fat: 20}},
		{ID: "meal-lunch", Name: "Lunch", MacroTargets: models.MacroTargets{Protein: 45, Carbs: 70, Fat: 25}},
		{ID: "meal-dinner", Name: "Dinner", MacroTargets: models.MacroTargets{Protein: 45, Carbs: 60, Fat: 20}},
		{ID: "meal-snack", Name: "Snack", MacroTargets: models.MacroTargets{Protein: 15, Carbs: 25, Fat: 10}},
	}
}

// DefaultTargetProfile returns the starter daily targets. Max* fields and
// sodium are upper bounds; everything else is a goal.
func DefaultTargetProfile() models.TargetProfile {
	return models.TargetProfile{
		Targets: models.MacroTargets{Protein: 140, Carbs: 215, Fat: 75},
		SubMacroTargets: models.SubMacroTargets{
			Omega3:             1.6,
			MonounsaturatedFat: 25,
			PolyunsaturatedFat: 17,
			MinFiber:           30,
			MaxSaturatedFat:    20,
			MaxTransFat:        2,
			MaxAddedSugars:     36,
			MaxNaturalSugars:   50,
		},
		MicronutrientTargets: models.MicronutrientTargets{
			Iron:       18,
			Calcium:    1000,
			Zinc:       11,
			Magnesium:  400,
			Sodium:     2300,
			Potassium:  3500,
			VitaminB6:  1.7,
			VitaminB12: 2.4,
			VitaminC:   90,
			VitaminD:   20,
		},
	}
}
