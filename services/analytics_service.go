package services

import (
	"time"

	"github.com/berkaykan001/MacroBalance/models"
	"github.com/berkaykan001/MacroBalance/utils"
)

// AnalyticsService builds the history series behind the trend charts:
// per-day consumed totals and range averages against the active targets.
type AnalyticsService struct {
	plans   *MealPlanService
	targets *TargetService
}

func NewAnalyticsService(plans *MealPlanService, targets *TargetService) *AnalyticsService {
	return &AnalyticsService{plans: plans, targets: targets}
}

// DayTotals is one day's consumed nutrition.
type DayTotals struct {
	Date        string           `json:"date"` // yyyy-mm-dd
	Consumed    models.Nutrition `json:"consumed"`
	MealsLogged int              `json:"meals_logged"`
}

// NutrAvg is the averaged consumed/goal pair for one nutrient.
type NutrAvg struct {
	AvgConsumed float64 `json:"avg_consumed"`
	AvgGoal     float64 `json:"avg_goal,omitempty"`
	AvgPercent  float64 `json:"avg_percent,omitempty"`
	Unit        string  `json:"unit,omitempty"`
}

// Summary aggregates a date range for the weekly comparison view.
type Summary struct {
	Range struct {
		From string `json:"from"`
		To   string `json:"to"`
	} `json:"range"`

	Macros map[string]NutrAvg `json:"macros"` // calories, protein, carbs, fat
	Micros map[string]NutrAvg `json:"micros"` // fiber, sodium, sugars

	Metadata struct {
		DaysCounted        int  `json:"days_counted"`
		IncludeMissingDays bool `json:"include_missing_days"`
	} `json:"metadata"`
}

// DailyTotals returns one entry per calendar day in [from, to], counting
// days with no logged meals as all-zero entries so the heatmap can render
// gaps.
func (s *AnalyticsService) DailyTotals(from, to time.Time) []DayTotals {
	plans := s.plans.PlansInRange(utils.DayStart(from), utils.DayEnd(to))

	byDay := make(map[string]*DayTotals)
	for _, p := range plans {
		key := p.CreatedAt.Format("2006-01-02")
		dt := byDay[key]
		if dt == nil {
			dt = &DayTotals{Date: key}
			byDay[key] = dt
		}
		dt.Consumed = dt.Consumed.Add(p.CalculatedMacros)
		dt.MealsLogged++
	}

	var out []DayTotals
	for d := utils.DayStart(from); d.Before(utils.DayEnd(to)); d = d.AddDate(0, 0, 1) {
		key := d.Format("2006-01-02")
		if dt := byDay[key]; dt != nil {
			out = append(out, *dt)
		} else {
			out = append(out, DayTotals{Date: key})
		}
	}
	return out
}

// SummaryFor averages the range. With includeMissing, days without logged
// meals pull the averages down; otherwise they are skipped.
func (s *AnalyticsService) SummaryFor(from, to time.Time, includeMissing bool) Summary {
	days := s.DailyTotals(from, to)
	profile := s.targets.Profile()

	var sum Summary
	sum.Range.From = utils.DayStart(from).Format("2006-01-02")
	sum.Range.To = utils.DayStart(to).Format("2006-01-02")
	sum.Metadata.IncludeMissingDays = includeMissing

	type acc struct{ consumed float64 }
	accs := map[string]*acc{
		"calories": {}, "protein": {}, "carbs": {}, "fat": {},
		"fiber": {}, "sodium": {}, "addedSugars": {}, "naturalSugars": {},
	}

	counted := 0
	for _, d := range days {
		if !includeMissing && d.MealsLogged == 0 {
			continue
		}
		counted++
		accs["calories"].consumed += d.Consumed.MacroCalories()
		accs["protein"].consumed += d.Consumed.Protein
		accs["carbs"].consumed += d.Consumed.Carbs
		accs["fat"].consumed += d.Consumed.Fat
		accs["fiber"].consumed += d.Consumed.Fiber
		accs["sodium"].consumed += d.Consumed.Sodium
		accs["addedSugars"].consumed += d.Consumed.AddedSugars
		accs["naturalSugars"].consumed += d.Consumed.NaturalSugars
	}
	sum.Metadata.DaysCounted = counted

	avg := func(name string, goal float64, unit string) NutrAvg {
		a := NutrAvg{Unit: unit, AvgGoal: goal}
		if counted > 0 {
			a.AvgConsumed = accs[name].consumed / float64(counted)
		}
		a.AvgPercent = Percentage(a.AvgConsumed, goal)
		return a
	}

	sum.Macros = map[string]NutrAvg{
		"calories": avg("calories", profile.Targets.Calories(), "kcal"),
		"protein":  avg("protein", profile.Targets.Protein, "g"),
		"carbs":    avg("carbs", profile.Targets.Carbs, "g"),
		"fat":      avg("fat", profile.Targets.Fat, "g"),
	}
	sum.Micros = map[string]NutrAvg{
		"fiber":         avg("fiber", profile.SubMacroTargets.MinFiber, "g"),
		"sodium":        avg("sodium", profile.MicronutrientTargets.Sodium, "mg"),
		"addedSugars":   avg("addedSugars", profile.SubMacroTargets.MaxAddedSugars, "g"),
		"naturalSugars": avg("naturalSugars", profile.SubMacroTargets.MaxNaturalSugars, "g"),
	}
	return sum
}
