package gallery

import (
	"sync"
	"time"

	"github.com/vmedia/showreel/internal/domain"
)

// ItemStore owns the ordered entry collection and the active selection.
// It is the in-memory source of truth for the playback surface; persistence
// happens around it, never inside it.
//
// Invariant: whenever the collection is non-empty, the active id resolves to
// a member of the current collection. Any mutation that orphans the previous
// selection resets it to the first entry; an empty collection has no
// selection.
type ItemStore struct {
	mu          sync.RWMutex
	entries     []domain.Entry
	activeID    string
	lastReplace time.Time
}

// NewItemStore creates an empty item store.
func NewItemStore() *ItemStore {
	return &ItemStore{}
}

// ReplaceAll atomically swaps the entire collection and re-resolves the
// active selection.
func (s *ItemStore) ReplaceAll(entries []domain.Entry) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = make([]domain.Entry, len(entries))
	copy(s.entries, entries)
	s.lastReplace = time.Now()
	s.ensureActiveLocked()
}

// Upsert inserts a new entry at the front of the collection, or replaces the
// existing entry with a matching id in place (order preserved).
func (s *ItemStore) Upsert(entry domain.Entry) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.entries {
		if s.entries[i].ID == entry.ID {
			s.entries[i] = entry
			return
		}
	}
	s.entries = append([]domain.Entry{entry}, s.entries...)
	s.ensureActiveLocked()
}

// Remove deletes the entry with the given id and reports whether it existed.
// Removing the active entry re-resolves the selection to the first remaining
// entry, or to none when the collection becomes empty.
func (s *ItemStore) Remove(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.entries {
		if s.entries[i].ID == id {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			s.ensureActiveLocked()
			return true
		}
	}
	return false
}

// SetActive updates the active selection. Unknown ids are a no-op; the
// previous selection stays in place.
func (s *ItemStore) SetActive(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.indexOfLocked(id) < 0 {
		return false
	}
	s.activeID = id
	return true
}

// Next advances the active selection cyclically through collection order.
// No-op on an empty collection.
func (s *ItemStore) Next() {
	s.step(+1)
}

// Prev retreats the active selection cyclically through collection order.
// No-op on an empty collection.
func (s *ItemStore) Prev() {
	s.step(-1)
}

func (s *ItemStore) step(delta int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := len(s.entries)
	if n == 0 {
		return
	}
	cur := s.indexOfLocked(s.activeID)
	if cur < 0 {
		cur = 0
	}
	s.activeID = s.entries[(cur+delta+n)%n].ID
}

// Active returns the active entry, or false when the collection is empty.
func (s *ItemStore) Active() (domain.Entry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.indexOfLocked(s.activeID)
	if i < 0 {
		return domain.Entry{}, false
	}
	return s.entries[i], true
}

// Get retrieves an entry by id.
func (s *ItemStore) Get(id string) (domain.Entry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if i := s.indexOfLocked(id); i >= 0 {
		return s.entries[i], true
	}
	return domain.Entry{}, false
}

// All returns a copy of the collection in display order.
func (s *ItemStore) All() []domain.Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Len returns the number of entries.
func (s *ItemStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.entries)
}

// LastReplace returns the timestamp of the last full collection swap.
func (s *ItemStore) LastReplace() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.lastReplace
}

// ensureActiveLocked re-resolves the selection after a mutation. Callers must
// hold the write lock.
func (s *ItemStore) ensureActiveLocked() {
	if len(s.entries) == 0 {
		s.activeID = ""
		return
	}
	if s.indexOfLocked(s.activeID) < 0 {
		s.activeID = s.entries[0].ID
	}
}

func (s *ItemStore) indexOfLocked(id string) int {
	if id == "" {
		return -1
	}
	for i := range s.entries {
		if s.entries[i].ID == id {
			return i
		}
	}
	return -1
}
