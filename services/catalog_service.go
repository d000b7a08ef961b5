package services

import (
	"errors"
	"fmt"
	"log"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/berkaykan001/MacroBalance/models"
	"github.com/berkaykan001/MacroBalance/utils"
)

// KV is the persistence collaborator the stores write their snapshots
// through. storage.Store is the real implementation.
type KV interface {
	Get(key string, out any) (bool, error)
	Put(key string, v any) error
}

const foodsKey = "foods"

// saveDebounce batches the full-catalog rewrite triggered by a burst of
// mutations into one write.
const saveDebounce = 200 * time.Millisecond

var (
	ErrEmptyDish         = errors.New("dish needs at least one ingredient")
	ErrNegativeGrams     = errors.New("ingredient grams must be non-negative")
	ErrUnknownIngredient = errors.New("ingredient references unknown food")
)

// CatalogService owns the food catalog. In-memory state is the source of
// truth; every mutation schedules a debounced snapshot write through the
// KV collaborator. The core contract is single-writer, but the HTTP layer
// serves concurrently, hence the RWMutex.
type CatalogService struct {
	mu         sync.RWMutex
	kv         KV
	foods      []models.Food
	searchTerm string

	now   func() time.Time
	newID func() string

	saveMu    sync.Mutex
	saveTimer *time.Timer
}

func NewCatalogService(kv KV) *CatalogService {
	return &CatalogService{
		kv:    kv,
		now:   time.Now,
		newID: utils.NewID,
	}
}

// Load restores the catalog from storage. A missing snapshot seeds the
// default catalog and persists the seed; a failed read or decode falls
// back to the default catalog without propagating the error.
func (s *CatalogService) Load() {
	var foods []models.Food
	ok, err := s.kv.Get(foodsKey, &foods)
	if err != nil {
		log.Printf("catalog: loading foods failed, using default catalog: %v", err)
		foods = DefaultFoods()
	} else if !ok {
		foods = DefaultFoods()
		if err := s.kv.Put(foodsKey, foods); err != nil {
			log.Printf("catalog: seeding default catalog failed: %v", err)
		}
	}

	s.mu.Lock()
	s.foods = foods
	s.searchTerm = ""
	s.mu.Unlock()
}

// Reload re-reads the persisted snapshot, discarding unsaved mutations.
func (s *CatalogService) Reload() {
	s.Load()
}

// Add appends a user food. Identity and bookkeeping are assigned here;
// whatever the caller set for them is overwritten.
func (s *CatalogService) Add(food models.Food) models.Food {
	now := s.now()
	food.ID = s.newID()
	food.UserAdded = true
	food.CreatedAt = now
	food.LastUsed = now
	food.IsDish = false
	food.Ingredients = nil
	food.TotalGrams = 0

	s.mu.Lock()
	s.foods = append(s.foods, food)
	s.mu.Unlock()

	s.scheduleSave()
	return food
}

// Update merges the patch into the food with the given id. Updating an
// absent id is a silent no-op.
func (s *CatalogService) Update(foodID string, patch models.FoodPatch) {
	s.mu.Lock()
	for i := range s.foods {
		if s.foods[i].ID == foodID {
			patch.Apply(&s.foods[i])
			break
		}
	}
	s.mu.Unlock()

	s.scheduleSave()
}

// Remove deletes the food with the given id; no-op if absent. Dishes or
// meal plans referencing the removed food keep their reference and the
// engine counts it as zero from then on.
func (s *CatalogService) Remove(foodID string) {
	s.mu.Lock()
	kept := s.foods[:0]
	for _, f := range s.foods {
		if f.ID != foodID {
			kept = append(kept, f)
		}
	}
	s.foods = kept
	s.mu.Unlock()

	s.scheduleSave()
}

// Search remembers term as the active filter and returns the matching
// foods: case-insensitive substring match on name or category. An empty
// term matches the whole catalog.
func (s *CatalogService) Search(term string) []models.Food {
	s.mu.Lock()
	s.searchTerm = term
	s.mu.Unlock()
	return s.Filtered()
}

// Filtered returns the foods matching the remembered search term.
func (s *CatalogService) Filtered() []models.Food {
	s.mu.RLock()
	defer s.mu.RUnlock()

	term := strings.ToLower(s.searchTerm)
	if term == "" {
		return append([]models.Food(nil), s.foods...)
	}
	var out []models.Food
	for _, f := range s.foods {
		if strings.Contains(strings.ToLower(f.Name), term) ||
			strings.Contains(strings.ToLower(f.Category), term) {
			out = append(out, f)
		}
	}
	return out
}

// SearchTerm returns the remembered filter term.
func (s *CatalogService) SearchTerm() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.searchTerm
}

// All returns a snapshot copy of the full catalog.
func (s *CatalogService) All() []models.Food {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Food(nil), s.foods...)
}

// TouchLastUsed stamps the food's lastUsed to now. Called whenever a food
// is actually consumed in a logged meal.
func (s *CatalogService) TouchLastUsed(foodID string) {
	s.mu.Lock()
	for i := range s.foods {
		if s.foods[i].ID == foodID {
			s.foods[i].LastUsed = s.now()
			break
		}
	}
	s.mu.Unlock()

	s.scheduleSave()
}

// CreateDish builds a composite food from the ingredient list. Every
// ingredient must resolve and carry non-negative grams at creation time;
// the dish's per-100g nutrition is derived from the ingredients.
func (s *CatalogService) CreateDish(name string, ingredients []models.Ingredient) (models.Food, error) {
	if len(ingredients) == 0 {
		return models.Food{}, ErrEmptyDish
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var totalGrams float64
	for _, ing := range ingredients {
		if ing.Grams < 0 {
			return models.Food{}, fmt.Errorf("%w: %s", ErrNegativeGrams, ing.FoodID)
		}
		if findFood(s.foods, ing.FoodID) == nil {
			return models.Food{}, fmt.Errorf("%w: %s", ErrUnknownIngredient, ing.FoodID)
		}
		totalGrams += ing.Grams
	}

	totals := CalculateDishNutrition(ingredients, s.foods)
	now := s.now()
	dish := models.Food{
		ID:               s.newID(),
		Name:             name,
		Category:         models.CategoryDishes,
		NutritionPer100g: ConvertToNutritionPer100g(totals, totalGrams),
		IsDish:           true,
		Ingredients:      append([]models.Ingredient(nil), ingredients...),
		TotalGrams:       totalGrams,
		UserAdded:        true,
		CreatedAt:        now,
		LastUsed:         now,
	}
	s.foods = append(s.foods, dish)

	s.scheduleSave()
	return dish, nil
}

// GetByID looks up a food by id.
func (s *CatalogService) GetByID(id string) (models.Food, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if f := findFood(s.foods, id); f != nil {
		return *f, true
	}
	return models.Food{}, false
}

// GetByCategory returns all foods in the given category.
func (s *CatalogService) GetByCategory(category string) []models.Food {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.Food
	for _, f := range s.foods {
		if f.Category == category {
			out = append(out, f)
		}
	}
	return out
}

// Categories returns the distinct categories in catalog order.
func (s *CatalogService) Categories() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	seen := make(map[string]struct{})
	var out []string
	for _, f := range s.foods {
		if _, dup := seen[f.Category]; !dup {
			seen[f.Category] = struct{}{}
			out = append(out, f.Category)
		}
	}
	return out
}

// RecentlyUsed returns the limit most recently used foods, most recent
// first. Equal timestamps keep catalog order (stable sort).
func (s *CatalogService) RecentlyUsed(limit int) []models.Food {
	if limit <= 0 {
		limit = 5
	}

	s.mu.RLock()
	out := append([]models.Food(nil), s.foods...)
	s.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].LastUsed.After(out[j].LastUsed)
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

// scheduleSave arms (or re-arms) the debounced snapshot write.
func (s *CatalogService) scheduleSave() {
	s.saveMu.Lock()
	defer s.saveMu.Unlock()
	if s.saveTimer != nil {
		s.saveTimer.Stop()
	}
	s.saveTimer = time.AfterFunc(saveDebounce, s.persist)
}

// persist writes the current catalog. A failed write keeps the in-memory
// state authoritative; the next mutation retries a fresh write.
func (s *CatalogService) persist() {
	foods := s.All()
	if err := s.kv.Put(foodsKey, foods); err != nil {
		log.Printf("catalog: saving foods failed: %v", err)
	}
}

// Flush cancels any pending debounce and writes the catalog now. Called
// on shutdown.
func (s *CatalogService) Flush() {
	s.saveMu.Lock()
	if s.saveTimer != nil {
		s.saveTimer.Stop()
		s.saveTimer = nil
	}
	s.saveMu.Unlock()
	s.persist()
}
