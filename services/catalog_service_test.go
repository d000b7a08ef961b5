package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/berkaykan001/MacroBalance/models"
)

// memKV is an in-memory KV for tests, with switchable failure modes.
// Mutex because the debounced store saves run on timer goroutines.
type memKV struct {
	mu      sync.Mutex
	data    map[string][]byte
	puts    map[string]int
	failGet bool
	failPut bool
}

func newMemKV() *memKV {
	return &memKV{data: make(map[string][]byte), puts: make(map[string]int)}
}

func (m *memKV) Get(key string, out any) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failGet {
		return false, errors.New("kv: forced read failure")
	}
	raw, ok := m.data[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, out)
}

func (m *memKV) Put(key string, v any) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failPut {
		return errors.New("kv: forced write failure")
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	m.data[key] = raw
	m.puts[key]++
	return nil
}

func (m *memKV) writes(key string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.puts[key]
}

func (m *memKV) setFailPut(fail bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failPut = fail
}

// newTestCatalog returns a loaded catalog with deterministic time and ids.
func newTestCatalog(t *testing.T) (*CatalogService, *memKV) {
	t.Helper()
	kv := newMemKV()
	s := NewCatalogService(kv)
	n := 0
	s.newID = func() string { n++; return fmt.Sprintf("id-%d", n) }
	s.now = func() time.Time { return time.Date(2026, 3, 10, 12, 0, 0, 0, time.Local) }
	s.Load()
	return s, kv
}

func TestCatalogLoad(t *testing.T) {
	t.Run("SeedsDefaultsWhenEmpty", func(t *testing.T) {
		s, kv := newTestCatalog(t)
		if len(s.All()) != len(DefaultFoods()) {
			t.Fatalf("expected default catalog, got %d foods", len(s.All()))
		}
		if kv.writes(foodsKey) != 1 {
			t.Errorf("seed should be persisted once, got %d writes", kv.writes(foodsKey))
		}
	})

	t.Run("RestoresPersistedCatalog", func(t *testing.T) {
		kv := newMemKV()
		stored := []models.Food{{ID: "x", Name: "Stored", Category: "misc"}}
		if err := kv.Put(foodsKey, stored); err != nil {
			t.Fatal(err)
		}
		s := NewCatalogService(kv)
		s.Load()
		all := s.All()
		if len(all) != 1 || all[0].Name != "Stored" {
			t.Errorf("expected the stored catalog, got %+v", all)
		}
	})

	t.Run("FallsBackOnReadFailure", func(t *testing.T) {
		kv := newMemKV()
		kv.failGet = true
		s := NewCatalogService(kv)
		s.Load()
		if len(s.All()) != len(DefaultFoods()) {
			t.Errorf("read failure must fall back to the default catalog")
		}
		if kv.writes(foodsKey) != 0 {
			t.Errorf("fallback catalog must not be persisted over a failing store")
		}
	})
}

func TestCatalogAdd(t *testing.T) {
	s, kv := newTestCatalog(t)
	before := len(s.All())

	food := s.Add(models.Food{
		Name:     "Tofu",
		Category: "protein",
		NutritionPer100g: models.Nutrition{
			Calories: 76, Protein: 8, Carbs: 1.9, Fat: 4.8,
		},
		// Caller-set values that Add must overwrite.
		ID:        "spoofed",
		UserAdded: false,
	})

	if food.ID == "spoofed" || food.ID == "" {
		t.Errorf("Add must assign a fresh id, got %q", food.ID)
	}
	if !food.UserAdded {
		t.Errorf("Add must mark the food userAdded")
	}
	if food.CreatedAt.IsZero() || !food.CreatedAt.Equal(food.LastUsed) {
		t.Errorf("Add must stamp createdAt and lastUsed to now")
	}
	if len(s.All()) != before+1 {
		t.Errorf("catalog did not grow")
	}

	s.Flush()
	if kv.writes(foodsKey) < 2 {
		t.Errorf("mutation must trigger a persisted-state write")
	}
}

func TestCatalogUpdate(t *testing.T) {
	s, _ := newTestCatalog(t)

	t.Run("MergePatch", func(t *testing.T) {
		name := "Chicken (skinless)"
		s.Update("default-chicken-breast", models.FoodPatch{Name: &name})

		f, ok := s.GetByID("default-chicken-breast")
		if !ok {
			t.Fatal("food vanished after patch")
		}
		if f.Name != name {
			t.Errorf("name = %q, want %q", f.Name, name)
		}
		if f.Category != "protein" {
			t.Errorf("absent patch field must retain value, category = %q", f.Category)
		}
	})

	t.Run("EmptyPatchIsIdempotent", func(t *testing.T) {
		before, _ := s.GetByID("default-salmon")
		s.Update("default-salmon", models.FoodPatch{})
		after, ok := s.GetByID("default-salmon")
		if !ok {
			t.Fatal("food not findable after empty patch")
		}
		if before.Name != after.Name || before.NutritionPer100g != after.NutritionPer100g {
			t.Errorf("empty patch changed the record: %+v vs %+v", before, after)
		}
	})

	t.Run("AbsentIDIsSilentNoop", func(t *testing.T) {
		count := len(s.All())
		name := "ghost"
		s.Update("no-such-id", models.FoodPatch{Name: &name})
		if len(s.All()) != count {
			t.Errorf("patching an absent id must not change the catalog")
		}
	})
}

func TestCatalogRemove(t *testing.T) {
	s, _ := newTestCatalog(t)
	before := len(s.All())

	s.Remove("default-banana")
	if _, ok := s.GetByID("default-banana"); ok {
		t.Errorf("food still present after Remove")
	}
	if len(s.All()) != before-1 {
		t.Errorf("catalog size = %d, want %d", len(s.All()), before-1)
	}

	s.Remove("default-banana") // idempotent
	if len(s.All()) != before-1 {
		t.Errorf("removing an absent id must be a no-op")
	}
}

func TestCatalogSearch(t *testing.T) {
	s, _ := newTestCatalog(t)

	t.Run("CaseInsensitiveNameMatch", func(t *testing.T) {
		got := s.Search("CHICKEN")
		if len(got) != 1 || got[0].ID != "default-chicken-breast" {
			t.Errorf("Search(CHICKEN) = %+v", got)
		}
	})

	t.Run("CategoryMatch", func(t *testing.T) {
		got := s.Search("veget")
		if len(got) != 2 {
			t.Errorf("expected the 2 vegetables, got %d", len(got))
		}
	})

	t.Run("TermIsRemembered", func(t *testing.T) {
		s.Search("oats")
		if s.SearchTerm() != "oats" {
			t.Errorf("search term not remembered, got %q", s.SearchTerm())
		}
		if got := s.Filtered(); len(got) != 1 || got[0].Name != "Oats" {
			t.Errorf("Filtered() did not reuse the remembered term: %+v", got)
		}
	})

	t.Run("EmptyTermReturnsAll", func(t *testing.T) {
		got := s.Search("")
		if len(got) != len(s.All()) {
			t.Errorf("empty term should match the full catalog")
		}
	})
}

func TestCatalogRecentlyUsed(t *testing.T) {
	s, _ := newTestCatalog(t)

	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.Local)
	stamp := func(id string, offset int) {
		s.now = func() time.Time { return base.Add(time.Duration(offset) * time.Hour) }
		s.TouchLastUsed(id)
	}
	stamp("default-oats", 1)
	stamp("default-banana", 2)
	stamp("default-salmon", 3)
	stamp("default-eggs", 4)

	t.Run("MostRecentFirst", func(t *testing.T) {
		got := s.RecentlyUsed(3)
		want := []string{"default-eggs", "default-salmon", "default-banana"}
		if len(got) != 3 {
			t.Fatalf("got %d foods, want 3", len(got))
		}
		for i, id := range want {
			if got[i].ID != id {
				t.Errorf("position %d = %s, want %s", i, got[i].ID, id)
			}
		}
	})

	t.Run("TiesKeepCatalogOrder", func(t *testing.T) {
		got := s.RecentlyUsed(len(s.All()))
		// Untouched foods all share the zero timestamp; they must appear
		// in catalog order after the touched ones.
		var untouched []string
		for _, f := range got[4:] {
			untouched = append(untouched, f.ID)
		}
		defaults := DefaultFoods()
		var want []string
		touched := map[string]bool{
			"default-oats": true, "default-banana": true,
			"default-salmon": true, "default-eggs": true,
		}
		for _, f := range defaults {
			if !touched[f.ID] {
				want = append(want, f.ID)
			}
		}
		for i := range want {
			if untouched[i] != want[i] {
				t.Errorf("tie order broken at %d: got %s, want %s", i, untouched[i], want[i])
			}
		}
	})

	t.Run("DefaultLimit", func(t *testing.T) {
		if got := s.RecentlyUsed(0); len(got) != 5 {
			t.Errorf("limit 0 should fall back to 5, got %d", len(got))
		}
	})
}

func TestCatalogCreateDish(t *testing.T) {
	s, _ := newTestCatalog(t)

	t.Run("DerivesNutritionAndTotals", func(t *testing.T) {
		dish, err := s.CreateDish("Salad", []models.Ingredient{
			{FoodID: "default-lettuce", Grams: 100},
			{FoodID: "default-olive-oil", Grams: 10},
		})
		if err != nil {
			t.Fatalf("CreateDish failed: %v", err)
		}
		if dish.TotalGrams != 110 {
			t.Errorf("totalGrams = %v, want 110", dish.TotalGrams)
		}
		if !dish.IsDish || dish.Category != models.CategoryDishes {
			t.Errorf("dish flags wrong: %+v", dish)
		}
		want := (15.0 + 88.4) / 110 * 100
		if diff := dish.NutritionPer100g.Calories - want; diff > 0.01 || diff < -0.01 {
			t.Errorf("dish calories per 100g = %v, want about %v", dish.NutritionPer100g.Calories, want)
		}
		if _, ok := s.GetByID(dish.ID); !ok {
			t.Errorf("dish not appended to catalog")
		}
	})

	t.Run("RejectsUnknownIngredient", func(t *testing.T) {
		_, err := s.CreateDish("Mystery", []models.Ingredient{{FoodID: "nope", Grams: 50}})
		if !errors.Is(err, ErrUnknownIngredient) {
			t.Errorf("err = %v, want ErrUnknownIngredient", err)
		}
	})

	t.Run("RejectsNegativeGrams", func(t *testing.T) {
		_, err := s.CreateDish("Anti-salad", []models.Ingredient{{FoodID: "default-lettuce", Grams: -5}})
		if !errors.Is(err, ErrNegativeGrams) {
			t.Errorf("err = %v, want ErrNegativeGrams", err)
		}
	})

	t.Run("RejectsEmptyIngredients", func(t *testing.T) {
		if _, err := s.CreateDish("Air", nil); !errors.Is(err, ErrEmptyDish) {
			t.Errorf("err = %v, want ErrEmptyDish", err)
		}
	})
}

func TestCatalogPersistFailureKeepsMemoryAuthoritative(t *testing.T) {
	s, kv := newTestCatalog(t)
	kv.setFailPut(true)

	s.Add(models.Food{Name: "Tempeh", Category: "protein"})
	s.Flush() // write fails, logged

	if got := s.Search("tempeh"); len(got) != 1 {
		t.Fatalf("in-memory state must stay authoritative after a failed save")
	}

	kv.setFailPut(false)
	s.Remove("default-banana")
	s.Flush() // fresh write retries and now includes the earlier mutation

	s2 := NewCatalogService(kv)
	s2.Load()
	if got := s2.Search("tempeh"); len(got) != 1 {
		t.Errorf("retried write lost the earlier mutation")
	}
	if _, ok := s2.GetByID("default-banana"); ok {
		t.Errorf("retried write kept the removed food")
	}
}
