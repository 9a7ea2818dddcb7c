package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"carbontrack-api/models"
)

// fakeStore is an in-memory EmissionStore + TargetStore keyed exactly like
// the real tables, so upsert idempotence is observable as row counts.
type fakeStore struct {
	mu sync.Mutex

	entries map[entryKey]float64
	targets map[targetKey]float64

	failWrites bool
	failReads  bool

	upsertCalls int
	deleteCalls int
}

type entryKey struct {
	userID   string
	category models.Category
	date     time.Time
}

type targetKey struct {
	userID string
	month  time.Time
}

var errStoreDown = errors.New("store unavailable")

func newFakeStore() *fakeStore {
	return &fakeStore{
		entries: make(map[entryKey]float64),
		targets: make(map[targetKey]float64),
	}
}

func (f *fakeStore) UpsertEntry(ctx context.Context, userID string, category models.Category, amount float64, day time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.upsertCalls++
	if f.failWrites {
		return errStoreDown
	}
	f.entries[entryKey{userID, category, day}] = amount
	return nil
}

func (f *fakeStore) SumByCategory(ctx context.Context, userID string, from time.Time) (map[models.Category]float64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failReads {
		return nil, errStoreDown
	}
	sums := make(map[models.Category]float64)
	for k, amount := range f.entries {
		if k.userID == userID && !k.date.Before(from) {
			sums[k.category] += amount
		}
	}
	return sums, nil
}

func (f *fakeStore) DeleteFrom(ctx context.Context, userID string, from time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleteCalls++
	if f.failWrites {
		return errStoreDown
	}
	for k := range f.entries {
		if k.userID == userID && !k.date.Before(from) {
			delete(f.entries, k)
		}
	}
	return nil
}

func (f *fakeStore) ListEntries(ctx context.Context, userID string, from time.Time) ([]models.EmissionEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failReads {
		return nil, errStoreDown
	}
	var entries []models.EmissionEntry
	for k, amount := range f.entries {
		if k.userID == userID && !k.date.Before(from) {
			entries = append(entries, models.EmissionEntry{
				UserID:   k.userID,
				Category: k.category,
				Amount:   amount,
				Date:     k.date,
			})
		}
	}
	return entries, nil
}

func (f *fakeStore) UpsertTarget(ctx context.Context, userID string, month time.Time, amount float64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWrites {
		return errStoreDown
	}
	f.targets[targetKey{userID, month}] = amount
	return nil
}

func (f *fakeStore) GetTarget(ctx context.Context, userID string, month time.Time) (float64, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failReads {
		return 0, false, errStoreDown
	}
	amount, ok := f.targets[targetKey{userID, month}]
	return amount, ok, nil
}

func (f *fakeStore) setFailWrites(v bool) {
	f.mu.Lock()
	f.failWrites = v
	f.mu.Unlock()
}

func (f *fakeStore) entryCount(userID string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for k := range f.entries {
		if k.userID == userID {
			n++
		}
	}
	return n
}

// waitEvent drains one write outcome or fails the test.
func waitEvent(t *testing.T, ch <-chan WriteEvent) WriteEvent {
	t.Helper()
	select {
	case ev := <-ch:
		return ev
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for write event")
		return WriteEvent{}
	}
}
