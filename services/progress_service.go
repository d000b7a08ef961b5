package services

import (
	"github.com/berkaykan001/MacroBalance/models"
)

// Classification bands for how consumed relates to a target, in percent.
const (
	onTargetLow       = 95
	onTargetHigh      = 105
	slightlyOverHigh  = 120
	displayPercentCap = 150
)

// Percentage returns consumed as a percent of target, uncapped. A zero or
// negative target yields 0, never NaN or Inf.
func Percentage(current, target float64) float64 {
	if target <= 0 {
		return 0
	}
	return current / target * 100
}

// DisplayPercentage clamps an actual percentage for bounded visuals
// (progress rings and bars). Reported percentages stay uncapped.
func DisplayPercentage(pct float64) float64 {
	if pct > displayPercentCap {
		return displayPercentCap
	}
	return pct
}

// Classify buckets a consumed/target pair. The arithmetic is the same for
// goal and limit nutrients; only the reading of the over bands differs.
func Classify(current, target float64) models.ProgressStatus {
	pct := Percentage(current, target)
	switch {
	case pct < onTargetLow:
		return models.StatusUnder
	case pct <= onTargetHigh:
		return models.StatusOnTarget
	case pct <= slightlyOverHigh:
		return models.StatusSlightlyOver
	default:
		return models.StatusSignificantlyOver
	}
}

// ProgressService combines today's logged meals with the active target
// profile into the daily progress view. Everything here is recomputed on
// read; nothing is cached or persisted.
type ProgressService struct {
	plans   *MealPlanService
	targets *TargetService
}

func NewProgressService(plans *MealPlanService, targets *TargetService) *ProgressService {
	return &ProgressService{plans: plans, targets: targets}
}

// Daily sums the calculated macros of every plan logged today and pairs
// them with the target groupings, copied from the profile unchanged.
func (s *ProgressService) Daily() models.DailyProgress {
	return DailyProgressFor(s.plans.TodaysPlans(), s.targets.Profile())
}

// DailyProgressFor is the pure form of Daily: same inputs, same output.
func DailyProgressFor(plans []models.MealPlan, profile models.TargetProfile) models.DailyProgress {
	var consumed models.Nutrition
	for _, p := range plans {
		consumed = consumed.Add(p.CalculatedMacros)
	}
	return models.DailyProgress{
		Consumed:             consumed,
		Targets:              profile.Targets,
		SubMacroTargets:      profile.SubMacroTargets,
		MicronutrientTargets: profile.MicronutrientTargets,
	}
}

// Breakdown renders Daily as per-nutrient progress lines keyed the way
// the dashboard names them. The calorie line derives both sides from the
// Atwater factors over the macros.
func (s *ProgressService) Breakdown() map[string]models.NutrientProgress {
	return BreakdownFor(s.Daily())
}

// BreakdownFor is the pure form of Breakdown.
func BreakdownFor(dp models.DailyProgress) map[string]models.NutrientProgress {
	c := dp.Consumed
	sub := dp.SubMacroTargets
	micro := dp.MicronutrientTargets

	out := map[string]models.NutrientProgress{
		"calories": line(c.MacroCalories(), dp.Targets.Calories(), false, "kcal"),
		"protein":  line(c.Protein, dp.Targets.Protein, false, "g"),
		"carbs":    line(c.Carbs, dp.Targets.Carbs, false, "g"),
		"fat":      line(c.Fat, dp.Targets.Fat, false, "g"),

		"omega3":             line(c.Omega3, sub.Omega3, false, "g"),
		"monounsaturatedFat": line(c.MonounsaturatedFat, sub.MonounsaturatedFat, false, "g"),
		"polyunsaturatedFat": line(c.PolyunsaturatedFat, sub.PolyunsaturatedFat, false, "g"),
		"fiber":              line(c.Fiber, sub.MinFiber, false, "g"),
		"saturatedFat":       line(c.SaturatedFat, sub.MaxSaturatedFat, true, "g"),
		"transFat":           line(c.TransFat, sub.MaxTransFat, true, "g"),
		"addedSugars":        line(c.AddedSugars, sub.MaxAddedSugars, true, "g"),
		"naturalSugars":      line(c.NaturalSugars, sub.MaxNaturalSugars, true, "g"),

		"iron":       line(c.Iron, micro.Iron, false, "mg"),
		"calcium":    line(c.Calcium, micro.Calcium, false, "mg"),
		"zinc":       line(c.Zinc, micro.Zinc, false, "mg"),
		"magnesium":  line(c.Magnesium, micro.Magnesium, false, "mg"),
		"sodium":     line(c.Sodium, micro.Sodium, true, "mg"),
		"potassium":  line(c.Potassium, micro.Potassium, false, "mg"),
		"vitaminB6":  line(c.VitaminB6, micro.VitaminB6, false, "mg"),
		"vitaminB12": line(c.VitaminB12, micro.VitaminB12, false, "µg"),
		"vitaminC":   line(c.VitaminC, micro.VitaminC, false, "mg"),
		"vitaminD":   line(c.VitaminD, micro.VitaminD, false, "µg"),
	}
	return out
}

func line(current, target float64, max bool, unit string) models.NutrientProgress {
	pct := Percentage(current, target)
	return models.NutrientProgress{
		Consumed:       current,
		Target:         target,
		Percent:        pct,
		DisplayPercent: DisplayPercentage(pct),
		Status:         Classify(current, target),
		Max:            max,
		Unit:           unit,
	}
}
