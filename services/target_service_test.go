package services

import (
	"testing"

	"github.com/berkaykan001/MacroBalance/models"
)

func TestTargetService(t *testing.T) {
	t.Run("SeedsDefaults", func(t *testing.T) {
		kv := newMemKV()
		s := NewTargetService(kv)
		s.Load()
		if s.Profile() != DefaultTargetProfile() {
			t.Errorf("expected the default profile")
		}
		if kv.writes(targetsKey) != 1 {
			t.Errorf("seed should be persisted once, got %d writes", kv.writes(targetsKey))
		}
	})

	t.Run("FallsBackOnReadFailure", func(t *testing.T) {
		kv := newMemKV()
		kv.failGet = true
		s := NewTargetService(kv)
		s.Load()
		if s.Profile() != DefaultTargetProfile() {
			t.Errorf("read failure must fall back to defaults")
		}
	})

	t.Run("UpdatePersistsAndRestores", func(t *testing.T) {
		kv := newMemKV()
		s := NewTargetService(kv)
		s.Load()

		profile := s.Profile()
		profile.Targets = models.MacroTargets{Protein: 180, Carbs: 250, Fat: 80}
		s.Update(profile)

		s2 := NewTargetService(kv)
		s2.Load()
		if s2.Profile().Targets.Protein != 180 {
			t.Errorf("updated profile not restored: %+v", s2.Profile().Targets)
		}
	})
}
