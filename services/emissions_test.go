package services

import (
	"context"
	"testing"

	"carbontrack-api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testUser = "2f9f8a1c-0000-0000-0000-000000000001"

func TestUpdateReplacesCategoryValue(t *testing.T) {
	svc := NewEmissionsService(newFakeStore(), nil)

	require.NoError(t, svc.Update(testUser, models.CategoryTransportation, 115.5))
	waitEvent(t, svc.Events())
	require.NoError(t, svc.Update(testUser, models.CategoryTransportation, 80.0))
	waitEvent(t, svc.Events())

	// Replace, not accumulate
	assert.Equal(t, 80.0, svc.Snapshot(testUser).Transport)
	assert.Equal(t, 80.0, svc.Total(testUser))
}

func TestTotalIsAlwaysSumOfParts(t *testing.T) {
	svc := NewEmissionsService(newFakeStore(), nil)

	updates := []struct {
		category models.Category
		amount   float64
	}{
		{models.CategoryTransportation, 115.5},
		{models.CategoryEnergy, 115.52},
		{models.CategoryWaste, 15.3},
		{models.CategoryTransportation, 50},
		{models.CategoryEnergy, 0},
	}

	for _, u := range updates {
		require.NoError(t, svc.Update(testUser, u.category, u.amount))
		waitEvent(t, svc.Events())
		snap := svc.Snapshot(testUser)
		assert.Equal(t, snap.Transport+snap.Waste+snap.Energy, svc.Total(testUser))
	}

	snap := svc.Snapshot(testUser)
	assert.Equal(t, models.Snapshot{Transport: 50, Waste: 15.3, Energy: 0}, snap)
}

func TestUpdateRejectsBadInput(t *testing.T) {
	svc := NewEmissionsService(newFakeStore(), nil)

	assert.Error(t, svc.Update(testUser, models.CategoryTransportation, -1))
	assert.Error(t, svc.Update(testUser, models.Category("plastics"), 10))
	assert.Equal(t, 0.0, svc.Total(testUser))
}

func TestSameDayUpdateUpsertsOneRow(t *testing.T) {
	store := newFakeStore()
	svc := NewEmissionsService(store, nil)

	require.NoError(t, svc.Update(testUser, models.CategoryEnergy, 100))
	ev := waitEvent(t, svc.Events())
	require.NoError(t, ev.Err)

	require.NoError(t, svc.Update(testUser, models.CategoryEnergy, 100))
	ev = waitEvent(t, svc.Events())
	require.NoError(t, ev.Err)

	assert.Equal(t, 1, store.entryCount(testUser))
	assert.Equal(t, 2, store.upsertCalls)
}

func TestUpdateCacheSurvivesWriteFailure(t *testing.T) {
	store := newFakeStore()
	store.setFailWrites(true)
	svc := NewEmissionsService(store, nil)

	require.NoError(t, svc.Update(testUser, models.CategoryWaste, 15.3))

	ev := waitEvent(t, svc.Events())
	assert.Equal(t, "emission_upsert", ev.Kind)
	assert.Equal(t, models.CategoryWaste, ev.Category)
	assert.ErrorIs(t, ev.Err, errStoreDown)

	// Optimistic cache stays ahead of the failed remote write
	assert.Equal(t, 15.3, svc.Total(testUser))
	assert.Equal(t, 0, store.entryCount(testUser))
}

func TestAnonymousUpdateIsCacheOnly(t *testing.T) {
	store := newFakeStore()
	svc := NewEmissionsService(store, nil)

	require.NoError(t, svc.Update("", models.CategoryEnergy, 42))

	assert.Equal(t, 42.0, svc.Total(""))
	assert.Equal(t, 0, store.upsertCalls)
}

func TestLoadRebuildsMonthlySnapshot(t *testing.T) {
	store := newFakeStore()
	month := currentMonthStart()

	// Entries across several days of the month all contribute; Update
	// writes daily rows but the snapshot is the monthly sum.
	store.entries[entryKey{testUser, models.CategoryTransportation, month}] = 40
	store.entries[entryKey{testUser, models.CategoryTransportation, month.AddDate(0, 0, 3)}] = 60
	store.entries[entryKey{testUser, models.CategoryEnergy, month.AddDate(0, 0, 5)}] = 30
	// Last month's rows must not count
	store.entries[entryKey{testUser, models.CategoryWaste, month.AddDate(0, -1, 10)}] = 99

	svc := NewEmissionsService(store, nil)
	require.NoError(t, svc.Load(context.Background(), testUser))

	assert.Equal(t, models.Snapshot{Transport: 100, Waste: 0, Energy: 30}, svc.Snapshot(testUser))
	assert.Equal(t, 130.0, svc.Total(testUser))
}

func TestLoadReplacesCacheWholesale(t *testing.T) {
	store := newFakeStore()
	svc := NewEmissionsService(store, nil)

	require.NoError(t, svc.Update(testUser, models.CategoryWaste, 77))
	waitEvent(t, svc.Events())

	store.mu.Lock()
	store.entries = map[entryKey]float64{
		{testUser, models.CategoryEnergy, currentMonthStart()}: 10,
	}
	store.mu.Unlock()

	require.NoError(t, svc.Load(context.Background(), testUser))
	assert.Equal(t, models.Snapshot{Energy: 10}, svc.Snapshot(testUser))
}

func TestLoadFailureKeepsPriorCache(t *testing.T) {
	store := newFakeStore()
	svc := NewEmissionsService(store, nil)

	require.NoError(t, svc.Update(testUser, models.CategoryEnergy, 55))
	waitEvent(t, svc.Events())

	store.mu.Lock()
	store.failReads = true
	store.mu.Unlock()

	assert.Error(t, svc.Load(context.Background(), testUser))
	assert.Equal(t, 55.0, svc.Total(testUser))
}

func TestClearZeroesCacheAndDeletesMonth(t *testing.T) {
	store := newFakeStore()
	svc := NewEmissionsService(store, nil)

	require.NoError(t, svc.Update(testUser, models.CategoryTransportation, 100))
	waitEvent(t, svc.Events())
	require.NoError(t, svc.Update(testUser, models.CategoryEnergy, 50))
	waitEvent(t, svc.Events())

	svc.Clear(testUser)

	// Cache is zeroed synchronously
	assert.Equal(t, 0.0, svc.Total(testUser))

	ev := waitEvent(t, svc.Events())
	assert.Equal(t, "emission_clear", ev.Kind)
	require.NoError(t, ev.Err)
	assert.Equal(t, 0, store.entryCount(testUser))
}

func TestAnonymousClearHasNoRemoteEffect(t *testing.T) {
	store := newFakeStore()
	svc := NewEmissionsService(store, nil)

	require.NoError(t, svc.Update("", models.CategoryEnergy, 5))
	svc.Clear("")

	assert.Equal(t, 0.0, svc.Total(""))
	assert.Equal(t, 0, store.deleteCalls)
}

func TestHistoryListsMonthEntries(t *testing.T) {
	store := newFakeStore()
	month := currentMonthStart()
	store.entries[entryKey{testUser, models.CategoryEnergy, month}] = 30
	store.entries[entryKey{testUser, models.CategoryEnergy, month.AddDate(0, 0, 1)}] = 40
	store.entries[entryKey{testUser, models.CategoryEnergy, month.AddDate(0, -1, 1)}] = 99

	svc := NewEmissionsService(store, nil)
	entries, err := svc.History(context.Background(), testUser)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestEnsureLoadedRunsOncePerSession(t *testing.T) {
	store := newFakeStore()
	store.entries[entryKey{testUser, models.CategoryWaste, currentMonthStart()}] = 20
	svc := NewEmissionsService(store, nil)

	require.NoError(t, svc.EnsureLoaded(context.Background(), testUser))
	assert.Equal(t, 20.0, svc.Total(testUser))

	// Remote changes are not re-read until the session snapshot is dropped
	store.mu.Lock()
	store.entries[entryKey{testUser, models.CategoryWaste, currentMonthStart()}] = 999
	store.mu.Unlock()

	require.NoError(t, svc.EnsureLoaded(context.Background(), testUser))
	assert.Equal(t, 20.0, svc.Total(testUser))

	svc.Forget(testUser)
	require.NoError(t, svc.EnsureLoaded(context.Background(), testUser))
	assert.Equal(t, 999.0, svc.Total(testUser))
}

func TestEnsureLoadedRetriesAfterInterleavedUpdate(t *testing.T) {
	store := newFakeStore()
	store.entries[entryKey{testUser, models.CategoryTransportation, currentMonthStart()}] = 40
	svc := NewEmissionsService(store, nil)

	store.mu.Lock()
	store.failReads = true
	store.mu.Unlock()
	require.Error(t, svc.EnsureLoaded(context.Background(), testUser))

	// An update while the store is unreachable seeds the cache, but must not
	// count as a completed session load.
	require.NoError(t, svc.Update(testUser, models.CategoryEnergy, 10.0))
	waitEvent(t, svc.Events())

	store.mu.Lock()
	store.failReads = false
	store.mu.Unlock()

	require.NoError(t, svc.EnsureLoaded(context.Background(), testUser))
	snap := svc.Snapshot(testUser)
	assert.Equal(t, 40.0, snap.Transport)
	assert.Equal(t, 10.0, snap.Energy)
}
