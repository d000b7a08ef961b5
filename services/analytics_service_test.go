package services

import (
	"testing"
	"time"

	"github.com/berkaykan001/MacroBalance/models"
)

func newTestAnalytics(t *testing.T) (*AnalyticsService, *MealPlanService) {
	t.Helper()
	plans, _, kv := newTestPlans(t)
	targets := NewTargetService(kv)
	targets.Load()
	return NewAnalyticsService(plans, targets), plans
}

func TestDailyTotals(t *testing.T) {
	svc, plans := newTestAnalytics(t)

	logAt := func(day int, mealID string, sel []models.SelectedFood) {
		plans.now = func() time.Time { return time.Date(2026, 3, day, 9, 0, 0, 0, time.Local) }
		if _, err := plans.LogMeal(mealID, sel); err != nil {
			t.Fatalf("LogMeal failed: %v", err)
		}
	}
	logAt(2, "meal-breakfast", []models.SelectedFood{{FoodID: "default-eggs", PortionGrams: 100}})
	logAt(2, "meal-lunch", []models.SelectedFood{{FoodID: "default-white-rice", PortionGrams: 200}})
	logAt(4, "meal-dinner", []models.SelectedFood{{FoodID: "default-salmon", PortionGrams: 100}})

	from := time.Date(2026, 3, 1, 0, 0, 0, 0, time.Local)
	to := time.Date(2026, 3, 4, 0, 0, 0, 0, time.Local)
	got := svc.DailyTotals(from, to)

	if len(got) != 4 {
		t.Fatalf("expected 4 day entries, got %d", len(got))
	}
	if got[0].MealsLogged != 0 || got[2].MealsLogged != 0 {
		t.Errorf("days without meals must appear as zero entries")
	}
	if got[1].Date != "2026-03-02" || got[1].MealsLogged != 2 {
		t.Errorf("day 2 = %+v", got[1])
	}
	wantProtein := 13.0 + 2.7*2
	if !almostEqual(got[1].Consumed.Protein, wantProtein) {
		t.Errorf("day 2 protein = %v, want %v", got[1].Consumed.Protein, wantProtein)
	}
	if got[3].MealsLogged != 1 {
		t.Errorf("day 4 = %+v", got[3])
	}
}

func TestSummaryFor(t *testing.T) {
	svc, plans := newTestAnalytics(t)

	plans.now = func() time.Time { return time.Date(2026, 3, 2, 9, 0, 0, 0, time.Local) }
	if _, err := plans.LogMeal("meal-lunch", []models.SelectedFood{
		{FoodID: "default-chicken-breast", PortionGrams: 200},
	}); err != nil {
		t.Fatalf("LogMeal failed: %v", err)
	}

	from := time.Date(2026, 3, 1, 0, 0, 0, 0, time.Local)
	to := time.Date(2026, 3, 2, 0, 0, 0, 0, time.Local)

	t.Run("SkipMissingDays", func(t *testing.T) {
		sum := svc.SummaryFor(from, to, false)
		if sum.Metadata.DaysCounted != 1 {
			t.Fatalf("days counted = %d, want 1", sum.Metadata.DaysCounted)
		}
		if !almostEqual(sum.Macros["protein"].AvgConsumed, 62) {
			t.Errorf("avg protein = %v, want 62", sum.Macros["protein"].AvgConsumed)
		}
	})

	t.Run("IncludeMissingDays", func(t *testing.T) {
		sum := svc.SummaryFor(from, to, true)
		if sum.Metadata.DaysCounted != 2 {
			t.Fatalf("days counted = %d, want 2", sum.Metadata.DaysCounted)
		}
		if !almostEqual(sum.Macros["protein"].AvgConsumed, 31) {
			t.Errorf("avg protein = %v, want 31 (zero day included)", sum.Macros["protein"].AvgConsumed)
		}
		goal := DefaultTargetProfile().Targets.Protein
		if !almostEqual(sum.Macros["protein"].AvgGoal, goal) {
			t.Errorf("avg goal = %v, want %v", sum.Macros["protein"].AvgGoal, goal)
		}
	})
}
