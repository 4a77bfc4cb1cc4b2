package gallery

import (
	"sync"

	"github.com/vmedia/showreel/internal/domain"
)

// ProfileStore holds the single contact/SEO record. The record is replaced
// wholesale on every save; callers carry forward fields they do not intend
// to change.
type ProfileStore struct {
	mu      sync.RWMutex
	profile domain.Profile
}

// NewProfileStore creates a profile store seeded with p.
func NewProfileStore(p domain.Profile) *ProfileStore {
	return &ProfileStore{profile: p}
}

// Get returns the current record.
func (s *ProfileStore) Get() domain.Profile {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.profile
}

// Replace swaps the record. No merging happens here; loaders that may see
// partial records go through domain.MergeProfileDefaults first.
func (s *ProfileStore) Replace(p domain.Profile) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.profile = p
}
