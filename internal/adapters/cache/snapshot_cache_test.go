package cache

import (
	"testing"
	"time"

	"tokenswap/internal/domain"

	"github.com/stretchr/testify/require"
)

func testSnapshot() domain.RateSnapshot {
	return domain.RateSnapshot{
		TakenAt: time.Date(2025, 3, 4, 10, 0, 0, 0, time.UTC),
		Rates: map[string]domain.Rate{
			"ETHEUR": {Price: "3100.5", Buy: "0.0005", Sell: "0.00048", Currency: "Euros"},
		},
	}
}

func TestSnapshotCache_SetAndGet(t *testing.T) {
	c, err := NewSnapshotCache(16, time.Minute)
	require.NoError(t, err)
	defer c.Close()

	snapshot := testSnapshot()
	c.Set(snapshot)
	c.cache.Wait()

	got, ok := c.Get()
	require.True(t, ok)
	require.Equal(t, snapshot, got)
}

func TestSnapshotCache_GetMissWhenEmpty(t *testing.T) {
	c, err := NewSnapshotCache(16, time.Minute)
	require.NoError(t, err)
	defer c.Close()

	got, ok := c.Get()
	require.False(t, ok)
	require.Empty(t, got.Rates)
}

func TestSnapshotCache_SetReplacesPrevious(t *testing.T) {
	c, err := NewSnapshotCache(16, 0)
	require.NoError(t, err)
	defer c.Close()

	c.Set(testSnapshot())
	c.cache.Wait()

	newer := testSnapshot()
	newer.TakenAt = newer.TakenAt.Add(time.Minute)
	c.Set(newer)
	c.cache.Wait()

	got, ok := c.Get()
	require.True(t, ok)
	require.True(t, got.TakenAt.Equal(newer.TakenAt))
}

func TestSnapshotCache_IgnoresOlderSnapshot(t *testing.T) {
	c, err := NewSnapshotCache(16, time.Minute)
	require.NoError(t, err)
	defer c.Close()

	stale := testSnapshot()
	fresh := testSnapshot()
	fresh.TakenAt = stale.TakenAt.Add(time.Minute)
	fresh.Rates = map[string]domain.Rate{"ETHEUR": {Price: "3200", Buy: "0.00049", Sell: "0.00047", Currency: "Euros"}}

	// refresh publishes the fresh snapshot, then a slow reader caches what it read before the save
	c.Set(fresh)
	c.Set(stale)

	got, ok := c.Get()
	require.True(t, ok)
	require.True(t, got.TakenAt.Equal(fresh.TakenAt))
	require.Equal(t, fresh.Rates, got.Rates)
}

func TestSnapshotCache_SameTimestampReplaces(t *testing.T) {
	c, err := NewSnapshotCache(16, time.Minute)
	require.NoError(t, err)
	defer c.Close()

	first := testSnapshot()
	second := testSnapshot()
	second.Rates = map[string]domain.Rate{"BTCEUR": {Price: "61000", Buy: "0.0000162", Sell: "0.0000161", Currency: "Euros"}}

	c.Set(first)
	c.Set(second)

	got, ok := c.Get()
	require.True(t, ok)
	require.Equal(t, second.Rates, got.Rates)
}

func TestSnapshotCache_ExpiresAfterTTL(t *testing.T) {
	c, err := NewSnapshotCache(16, 50*time.Millisecond)
	require.NoError(t, err)
	defer c.Close()

	c.Set(testSnapshot())
	c.cache.Wait()

	require.Eventually(t, func() bool {
		_, ok := c.Get()
		return !ok
	}, time.Second, 20*time.Millisecond)
}
