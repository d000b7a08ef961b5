package services

import (
	"errors"
	"log"
	"sync"
	"time"

	"github.com/berkaykan001/MacroBalance/models"
	"github.com/berkaykan001/MacroBalance/utils"
)

const (
	mealsKey     = "meals"
	mealPlansKey = "mealPlans"
)

var (
	ErrUnknownMeal      = errors.New("unknown meal")
	ErrMealPlanNotFound = errors.New("meal plan not found")
)

// MealPlanService owns the meal slot definitions and the logged meal
// instances. Logging a meal is the one place meal nutrition is computed:
// the result is cached on the plan so later catalog edits do not rewrite
// what was already eaten.
type MealPlanService struct {
	mu      sync.RWMutex
	kv      KV
	catalog *CatalogService
	meals   []models.Meal
	plans   []models.MealPlan

	now   func() time.Time
	newID func() string

	saveMu    sync.Mutex
	saveTimer *time.Timer
}

func NewMealPlanService(kv KV, catalog *CatalogService) *MealPlanService {
	return &MealPlanService{
		kv:      kv,
		catalog: catalog,
		now:     time.Now,
		newID:   utils.NewID,
	}
}

// Load restores meal definitions and the plan log. Missing definitions
// seed the defaults; read or decode failures fall back without
// propagating, same as the catalog.
func (s *MealPlanService) Load() {
	var meals []models.Meal
	ok, err := s.kv.Get(mealsKey, &meals)
	if err != nil {
		log.Printf("mealplan: loading meals failed, using defaults: %v", err)
		meals = DefaultMeals()
	} else if !ok {
		meals = DefaultMeals()
		if err := s.kv.Put(mealsKey, meals); err != nil {
			log.Printf("mealplan: seeding default meals failed: %v", err)
		}
	}

	var plans []models.MealPlan
	if _, err := s.kv.Get(mealPlansKey, &plans); err != nil {
		log.Printf("mealplan: loading meal plans failed, starting empty: %v", err)
		plans = nil
	}

	s.mu.Lock()
	s.meals = meals
	s.plans = plans
	s.mu.Unlock()
}

// LogMeal records one eaten instance of the given meal slot. The plan's
// macros are computed from the current catalog and every referenced food
// gets its lastUsed touched.
func (s *MealPlanService) LogMeal(mealID string, selected []models.SelectedFood) (models.MealPlan, error) {
	if _, ok := s.GetMealByID(mealID); !ok {
		return models.MealPlan{}, ErrUnknownMeal
	}

	foods := s.catalog.All()
	plan := models.MealPlan{
		ID:               s.newID(),
		MealID:           mealID,
		SelectedFoods:    append([]models.SelectedFood(nil), selected...),
		CalculatedMacros: CalculateMealNutrition(selected, foods),
		CreatedAt:        s.now(),
	}

	s.mu.Lock()
	s.plans = append(s.plans, plan)
	s.mu.Unlock()

	for _, sel := range selected {
		s.catalog.TouchLastUsed(sel.FoodID)
	}

	s.scheduleSave()
	return plan, nil
}

// UpdateMealPlan replaces a logged plan's selected foods and recomputes
// its macros against the current catalog.
func (s *MealPlanService) UpdateMealPlan(planID string, selected []models.SelectedFood) (models.MealPlan, error) {
	macros := CalculateMealNutrition(selected, s.catalog.All())

	s.mu.Lock()
	var updated *models.MealPlan
	for i := range s.plans {
		if s.plans[i].ID == planID {
			s.plans[i].SelectedFoods = append([]models.SelectedFood(nil), selected...)
			s.plans[i].CalculatedMacros = macros
			updated = &s.plans[i]
			break
		}
	}
	if updated == nil {
		s.mu.Unlock()
		return models.MealPlan{}, ErrMealPlanNotFound
	}
	plan := *updated
	s.mu.Unlock()

	s.scheduleSave()
	return plan, nil
}

// DeleteMealPlan removes a logged plan; no-op if absent.
func (s *MealPlanService) DeleteMealPlan(planID string) {
	s.mu.Lock()
	kept := s.plans[:0]
	for _, p := range s.plans {
		if p.ID != planID {
			kept = append(kept, p)
		}
	}
	s.plans = kept
	s.mu.Unlock()

	s.scheduleSave()
}

// TodaysPlans returns the plans logged on the local calendar date, in
// log order.
func (s *MealPlanService) TodaysPlans() []models.MealPlan {
	today := s.now()

	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.MealPlan
	for _, p := range s.plans {
		if utils.SameDay(p.CreatedAt, today) {
			out = append(out, p)
		}
	}
	return out
}

// PlansInRange returns plans with createdAt in [from, to), oldest first.
func (s *MealPlanService) PlansInRange(from, to time.Time) []models.MealPlan {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.MealPlan
	for _, p := range s.plans {
		if !p.CreatedAt.Before(from) && p.CreatedAt.Before(to) {
			out = append(out, p)
		}
	}
	return out
}

// Meals returns the meal slots with Completed reflecting today's log.
func (s *MealPlanService) Meals() []models.Meal {
	logged := make(map[string]bool)
	for _, p := range s.TodaysPlans() {
		logged[p.MealID] = true
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Meal, len(s.meals))
	for i, m := range s.meals {
		m.Completed = logged[m.ID]
		out[i] = m
	}
	return out
}

// MealsCompletedToday returns only the slots with a plan logged today.
func (s *MealPlanService) MealsCompletedToday() []models.Meal {
	var out []models.Meal
	for _, m := range s.Meals() {
		if m.Completed {
			out = append(out, m)
		}
	}
	return out
}

// GetMealByID looks up a meal slot.
func (s *MealPlanService) GetMealByID(id string) (models.Meal, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, m := range s.meals {
		if m.ID == id {
			return m, true
		}
	}
	return models.Meal{}, false
}

func (s *MealPlanService) scheduleSave() {
	s.saveMu.Lock()
	defer s.saveMu.Unlock()
	if s.saveTimer != nil {
		s.saveTimer.Stop()
	}
	s.saveTimer = time.AfterFunc(saveDebounce, s.persist)
}

func (s *MealPlanService) persist() {
	s.mu.RLock()
	meals := append([]models.Meal(nil), s.meals...)
	plans := append([]models.MealPlan(nil), s.plans...)
	s.mu.RUnlock()

	// Completed is a computed view flag, keep it out of the snapshot.
	for i := range meals {
		meals[i].Completed = false
	}
	if err := s.kv.Put(mealsKey, meals); err != nil {
		log.Printf("mealplan: saving meals failed: %v", err)
	}
	if err := s.kv.Put(mealPlansKey, plans); err != nil {
		log.Printf("mealplan: saving meal plans failed: %v", err)
	}
}

// Flush cancels any pending debounce and writes the state now.
func (s *MealPlanService) Flush() {
	s.saveMu.Lock()
	if s.saveTimer != nil {
		s.saveTimer.Stop()
		s.saveTimer = nil
	}
	s.saveMu.Unlock()
	s.persist()
}
