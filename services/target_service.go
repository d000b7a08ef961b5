package services

import (
	"log"
	"sync"

	"github.com/berkaykan001/MacroBalance/models"
)

const targetsKey = "targets"

// TargetService owns the active target profile: the three groupings the
// progress calculator compares consumed totals against.
type TargetService struct {
	mu      sync.RWMutex
	kv      KV
	profile models.TargetProfile
}

func NewTargetService(kv KV) *TargetService {
	return &TargetService{kv: kv}
}

// Load restores the profile, seeding the defaults when none is stored and
// falling back to them on a failed read.
func (s *TargetService) Load() {
	var profile models.TargetProfile
	ok, err := s.kv.Get(targetsKey, &profile)
	if err != nil {
		log.Printf("targets: loading profile failed, using defaults: %v", err)
		profile = DefaultTargetProfile()
	} else if !ok {
		profile = DefaultTargetProfile()
		if err := s.kv.Put(targetsKey, profile); err != nil {
			log.Printf("targets: seeding default profile failed: %v", err)
		}
	}

	s.mu.Lock()
	s.profile = profile
	s.mu.Unlock()
}

// Profile returns the active target profile.
func (s *TargetService) Profile() models.TargetProfile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.profile
}

// Update replaces the profile and persists it. Target writes are rare
// (a settings screen), so no debounce here.
func (s *TargetService) Update(profile models.TargetProfile) {
	s.mu.Lock()
	s.profile = profile
	s.mu.Unlock()

	if err := s.kv.Put(targetsKey, profile); err != nil {
		log.Printf("targets: saving profile failed: %v", err)
	}
}
