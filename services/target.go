package services

import (
	"context"
	"errors"
	"math"
	"sync"

	"carbontrack-api/models"
	"carbontrack-api/utils"
)

var ErrInvalidTarget = errors.New("target must be a positive number")

// TargetService tracks each user's monthly CO₂ budget and derives progress
// from the aggregator's total. Users without a stored row sit on the 300 kg
// default.
type TargetService struct {
	store     TargetStore
	broadcast Broadcaster

	mu      sync.RWMutex
	targets map[string]float64

	events chan WriteEvent
}

func NewTargetService(store TargetStore, broadcast Broadcaster) *TargetService {
	return &TargetService{
		store:     store,
		broadcast: broadcast,
		targets:   make(map[string]float64),
		events:    make(chan WriteEvent, 16),
	}
}

func (s *TargetService) Events() <-chan WriteEvent {
	return s.events
}

// SetTarget rejects non-positive values before any mutation, then updates
// the in-memory target and upserts the month's row in the background.
func (s *TargetService) SetTarget(userID string, value float64) error {
	if value <= 0 || math.IsNaN(value) || math.IsInf(value, 0) {
		return ErrInvalidTarget
	}

	s.mu.Lock()
	s.targets[userID] = value
	s.mu.Unlock()

	if userID == "" {
		return nil
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), remoteWriteTimeout)
		defer cancel()

		err := s.store.UpsertTarget(ctx, userID, currentMonthStart(), value)
		if err != nil {
			utils.LogError("target upsert failed for user %s: %v", userID, err)
		}
		publish(s.events, WriteEvent{UserID: userID, Kind: "target_upsert", Err: err})
		if s.broadcast != nil {
			if err != nil {
				s.broadcast.BroadcastToUser(userID, "sync_failed")
			} else {
				s.broadcast.BroadcastToUser(userID, "target_updated")
			}
		}
	}()
	return nil
}

// Load fetches the current month's stored target; when no row exists the
// default stays in effect.
func (s *TargetService) Load(ctx context.Context, userID string) error {
	if userID == "" {
		return nil
	}

	amount, found, err := s.store.GetTarget(ctx, userID, currentMonthStart())
	if err != nil {
		utils.LogError("target load failed for user %s: %v", userID, err)
		return err
	}
	if !found {
		// No row for this month: pin the default so the session stops
		// re-querying.
		amount = models.DefaultMonthlyTarget
	}

	s.mu.Lock()
	s.targets[userID] = amount
	s.mu.Unlock()
	return nil
}

// EnsureLoaded runs Load once per session, when no target is cached yet.
func (s *TargetService) EnsureLoaded(ctx context.Context, userID string) error {
	if userID == "" {
		return nil
	}
	s.mu.RLock()
	_, ok := s.targets[userID]
	s.mu.RUnlock()
	if ok {
		return nil
	}
	return s.Load(ctx, userID)
}

// Target returns the user's effective monthly target.
func (s *TargetService) Target(userID string) float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if t, ok := s.targets[userID]; ok {
		return t
	}
	return models.DefaultMonthlyTarget
}

// Forget drops the cached target so the next session starts from Load.
func (s *TargetService) Forget(userID string) {
	s.mu.Lock()
	delete(s.targets, userID)
	s.mu.Unlock()
}

// Progress derives every dashboard value from (total, target). The bar
// percent is clamped to [0,100]; the raw ratio and the over-target flag use
// the unclamped comparison.
func (s *TargetService) Progress(userID string, total float64) models.Progress {
	target := s.Target(userID)

	raw := total / target * 100
	return models.Progress{
		Target:          target,
		ProgressPercent: Round2(math.Min(raw, 100)),
		RawPercent:      Round2(raw),
		Remaining:       Round2(math.Max(target-total, 0)),
		IsOverTarget:    total > target,
		OverageAmount:   Round2(math.Max(total-target, 0)),
	}
}
