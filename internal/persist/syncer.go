package persist

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/vmedia/showreel/internal/domain"
	"github.com/vmedia/showreel/internal/gallery"
	"github.com/vmedia/showreel/internal/logger"
)

// Syncer wires the in-memory stores to a persistence backend.
//
// Startup: each key is loaded and applied; an absent key seeds the backend
// with the bundled dataset, a corrupt key falls back to the bundled dataset
// without touching the stored blob. After loading, the syncer subscribes to
// inbound change events; every inbound snapshot overwrites local state
// (last-writer-wins).
//
// Writes: handlers mutate the stores first (optimistic apply), then call
// PushEntries/PushProfile. A failed push keeps the optimistic local state;
// the error is returned for the operator to see.
type Syncer struct {
	adapter Adapter
	items   *gallery.ItemStore
	profile *gallery.ProfileStore
	seed    domain.Dataset
	logger  logger.Logger
	stops   []func()
}

// NewSyncer creates a syncer over the given backend and stores.
func NewSyncer(
	adapter Adapter,
	items *gallery.ItemStore,
	profile *gallery.ProfileStore,
	seed domain.Dataset,
	log logger.Logger,
) *Syncer {
	return &Syncer{
		adapter: adapter,
		items:   items,
		profile: profile,
		seed:    seed,
		logger:  log,
	}
}

// Start loads (or seeds) both keys and opens the change subscriptions.
func (s *Syncer) Start(ctx context.Context) error {
	s.loadEntries(ctx)
	s.loadProfile(ctx)

	stopEntries, err := s.adapter.Subscribe(ctx, KeyEntries, s.applyEntriesSnapshot)
	if err != nil {
		return fmt.Errorf("subscribe %s: %w", KeyEntries, err)
	}
	s.stops = append(s.stops, stopEntries)

	stopProfile, err := s.adapter.Subscribe(ctx, KeyProfile, s.applyProfileSnapshot)
	if err != nil {
		return fmt.Errorf("subscribe %s: %w", KeyProfile, err)
	}
	s.stops = append(s.stops, stopProfile)

	return nil
}

// Stop closes the change subscriptions.
func (s *Syncer) Stop() {
	for _, stop := range s.stops {
		stop()
	}
	s.stops = nil
}

// PushEntries persists the current collection.
func (s *Syncer) PushEntries(ctx context.Context) error {
	data, err := json.Marshal(s.items.All())
	if err != nil {
		return fmt.Errorf("marshal entries: %w", err)
	}
	return s.adapter.Write(ctx, KeyEntries, data)
}

// PushProfile persists the current record.
func (s *Syncer) PushProfile(ctx context.Context) error {
	data, err := json.Marshal(s.profile.Get())
	if err != nil {
		return fmt.Errorf("marshal profile: %w", err)
	}
	return s.adapter.Write(ctx, KeyProfile, data)
}

func (s *Syncer) loadEntries(ctx context.Context) {
	data, ok, err := s.adapter.Load(ctx, KeyEntries)
	switch {
	case err != nil:
		s.logger.Warn("failed to load entries, falling back to bundled defaults",
			logger.Error(err))
		s.items.ReplaceAll(s.seed.Entries)
	case !ok:
		s.logger.Info("no persisted entries, seeding backend with bundled defaults")
		s.items.ReplaceAll(s.seed.Entries)
		if err := s.PushEntries(ctx); err != nil {
			s.logger.Warn("failed to seed entries", logger.Error(err))
		}
	default:
		var entries []domain.Entry
		if err := json.Unmarshal(data, &entries); err != nil {
			s.logger.Warn("corrupt entries blob, falling back to bundled defaults",
				logger.Error(err))
			s.items.ReplaceAll(s.seed.Entries)
			return
		}
		s.items.ReplaceAll(entries)
		s.logger.Info("loaded entries", logger.Int("count", len(entries)))
	}
}

func (s *Syncer) loadProfile(ctx context.Context) {
	data, ok, err := s.adapter.Load(ctx, KeyProfile)
	switch {
	case err != nil:
		s.logger.Warn("failed to load profile, falling back to bundled defaults",
			logger.Error(err))
		s.profile.Replace(s.seed.Profile)
	case !ok:
		s.logger.Info("no persisted profile, seeding backend with bundled defaults")
		s.profile.Replace(s.seed.Profile)
		if err := s.PushProfile(ctx); err != nil {
			s.logger.Warn("failed to seed profile", logger.Error(err))
		}
	default:
		var p domain.Profile
		if err := json.Unmarshal(data, &p); err != nil {
			s.logger.Warn("corrupt profile blob, falling back to bundled defaults",
				logger.Error(err))
			s.profile.Replace(s.seed.Profile)
			return
		}
		// Older blobs may predate newly introduced fields.
		s.profile.Replace(domain.MergeProfileDefaults(p, s.seed.Profile))
		s.logger.Info("loaded profile")
	}
}

// applyEntriesSnapshot handles an inbound change event. Inbound snapshots
// always win over local state; malformed payloads are dropped.
func (s *Syncer) applyEntriesSnapshot(data []byte) {
	var entries []domain.Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		s.logger.Warn("dropping malformed inbound entries snapshot", logger.Error(err))
		return
	}
	s.items.ReplaceAll(entries)
	s.logger.Debug("applied inbound entries snapshot", logger.Int("count", len(entries)))
}

func (s *Syncer) applyProfileSnapshot(data []byte) {
	var p domain.Profile
	if err := json.Unmarshal(data, &p); err != nil {
		s.logger.Warn("dropping malformed inbound profile snapshot", logger.Error(err))
		return
	}
	s.profile.Replace(domain.MergeProfileDefaults(p, s.seed.Profile))
	s.logger.Debug("applied inbound profile snapshot")
}

// Export marshals the full in-memory state as a single indented document,
// byte-stable for manual backup.
func (s *Syncer) Export() ([]byte, error) {
	ds := domain.Dataset{Entries: s.items.All(), Profile: s.profile.Get()}
	data, err := json.MarshalIndent(ds, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal dataset: %w", err)
	}
	return data, nil
}

// Import replaces the full in-memory state from an export document and
// pushes both keys. Entries failing validation reject the whole document.
func (s *Syncer) Import(ctx context.Context, data []byte) error {
	var ds domain.Dataset
	if err := json.Unmarshal(data, &ds); err != nil {
		return fmt.Errorf("parse dataset: %w", err)
	}
	for i := range ds.Entries {
		if err := ds.Entries[i].Validate(); err != nil {
			return fmt.Errorf("entry %d: %w", i, err)
		}
	}

	s.items.ReplaceAll(ds.Entries)
	s.profile.Replace(domain.MergeProfileDefaults(ds.Profile, s.seed.Profile))

	if err := s.PushEntries(ctx); err != nil {
		return err
	}
	return s.PushProfile(ctx)
}
