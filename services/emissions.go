package services

import (
	"context"
	"errors"
	"sync"
	"time"

	"carbontrack-api/models"
	"carbontrack-api/utils"
)

var ErrInvalidAmount = errors.New("emission amount must not be negative")

const remoteWriteTimeout = 10 * time.Second

// EmissionsService is the aggregator: it owns the per-user monthly snapshot
// cache and keeps it ahead of the remote store. Cache mutations are
// synchronous and immediately visible; remote writes are fire-and-forget,
// with outcomes published on Events and pushed to the user's sockets.
type EmissionsService struct {
	store     EmissionStore
	broadcast Broadcaster

	mu     sync.RWMutex
	cache  map[string]models.Snapshot
	loaded map[string]bool

	events chan WriteEvent
}

// NewEmissionsService wires the aggregator to its remote store. broadcast
// may be nil.
func NewEmissionsService(store EmissionStore, broadcast Broadcaster) *EmissionsService {
	return &EmissionsService{
		store:     store,
		broadcast: broadcast,
		cache:     make(map[string]models.Snapshot),
		loaded:    make(map[string]bool),
		events:    make(chan WriteEvent, 64),
	}
}

// Events exposes remote write outcomes. Events are dropped, not queued,
// when the channel is full.
func (s *EmissionsService) Events() <-chan WriteEvent {
	return s.events
}

// Update replaces the snapshot field for category with amount (the
// calculators re-derive the whole category figure each run, so this is a
// set, not an add), then upserts today's row in the background. An empty
// userID updates the cache only.
func (s *EmissionsService) Update(userID string, category models.Category, amount float64) error {
	if !category.Valid() {
		return errors.New("unknown emission category")
	}
	if amount < 0 {
		return ErrInvalidAmount
	}

	s.mu.Lock()
	snap := s.cache[userID]
	switch category {
	case models.CategoryTransportation:
		snap.Transport = amount
	case models.CategoryWaste:
		snap.Waste = amount
	case models.CategoryEnergy:
		snap.Energy = amount
	}
	s.cache[userID] = snap
	s.mu.Unlock()

	if userID == "" {
		return nil
	}

	go s.persistEntry(userID, category, amount)
	return nil
}

func (s *EmissionsService) persistEntry(userID string, category models.Category, amount float64) {
	ctx, cancel := context.WithTimeout(context.Background(), remoteWriteTimeout)
	defer cancel()

	err := s.store.UpsertEntry(ctx, userID, category, amount, todayUTC())
	if err != nil {
		// The optimistic cache stays ahead of the store until the next
		// successful Load.
		utils.LogError("emissions upsert failed for user %s (%s): %v", userID, category, err)
	}
	publish(s.events, WriteEvent{UserID: userID, Kind: "emission_upsert", Category: category, Err: err})
	s.notify(userID, err, "emissions_updated")
}

// Load rebuilds the user's snapshot from the current month's persisted
// entries, replacing the cache wholesale. On failure the prior snapshot
// stays in place.
func (s *EmissionsService) Load(ctx context.Context, userID string) error {
	if userID == "" {
		return nil
	}

	sums, err := s.store.SumByCategory(ctx, userID, currentMonthStart())
	if err != nil {
		utils.LogError("emissions load failed for user %s: %v", userID, err)
		return err
	}

	s.mu.Lock()
	s.cache[userID] = models.Snapshot{
		Transport: sums[models.CategoryTransportation],
		Waste:     sums[models.CategoryWaste],
		Energy:    sums[models.CategoryEnergy],
	}
	s.loaded[userID] = true
	s.mu.Unlock()
	return nil
}

// EnsureLoaded runs Load once per session. Loadedness is tracked separately
// from cache presence: an Update after a failed Load seeds the cache but
// must not stop the next request from retrying the load.
func (s *EmissionsService) EnsureLoaded(ctx context.Context, userID string) error {
	if userID == "" {
		return nil
	}
	s.mu.RLock()
	ok := s.loaded[userID]
	s.mu.RUnlock()
	if ok {
		return nil
	}
	return s.Load(ctx, userID)
}

// Clear zeroes the snapshot immediately and deletes the month's rows in the
// background. An empty userID resets the cache with no remote effect.
func (s *EmissionsService) Clear(userID string) {
	s.mu.Lock()
	s.cache[userID] = models.Snapshot{}
	// The zeroed snapshot is authoritative from here on; a reload racing the
	// background delete must not resurrect the month's rows.
	s.loaded[userID] = true
	s.mu.Unlock()

	if userID == "" {
		return
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), remoteWriteTimeout)
		defer cancel()

		err := s.store.DeleteFrom(ctx, userID, currentMonthStart())
		if err != nil {
			utils.LogError("emissions clear failed for user %s: %v", userID, err)
		}
		publish(s.events, WriteEvent{UserID: userID, Kind: "emission_clear", Err: err})
		s.notify(userID, err, "emissions_cleared")
	}()
}

// History reads the month's daily rows straight from the store; the trend
// view wants per-day figures the snapshot cache does not keep.
func (s *EmissionsService) History(ctx context.Context, userID string) ([]models.EmissionEntry, error) {
	if userID == "" {
		return nil, nil
	}
	return s.store.ListEntries(ctx, userID, currentMonthStart())
}

// Forget drops the user's cached snapshot (logout, account deletion). A
// write still in flight lands on the correct remote row regardless: rows are
// keyed by user/category/day, not by session.
func (s *EmissionsService) Forget(userID string) {
	s.mu.Lock()
	delete(s.cache, userID)
	delete(s.loaded, userID)
	s.mu.Unlock()
}

// Snapshot returns the user's cached per-category sums; all zero when
// nothing is cached.
func (s *EmissionsService) Snapshot(userID string) models.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cache[userID]
}

// Total is always derived from the snapshot parts.
func (s *EmissionsService) Total(userID string) float64 {
	return s.Snapshot(userID).Total()
}

func (s *EmissionsService) notify(userID string, writeErr error, event string) {
	if s.broadcast == nil {
		return
	}
	if writeErr != nil {
		event = "sync_failed"
	}
	s.broadcast.BroadcastToUser(userID, event)
}
