package cache

import (
	"fmt"
	"sync"
	"time"

	"tokenswap/internal/domain"

	"github.com/dgraph-io/ristretto"
)

const latestKey = "snapshot:latest"

type RistrettoSnapshotCache struct {
	cache *ristretto.Cache
	ttl   time.Duration

	mu     sync.Mutex
	newest time.Time
}

// NewSnapshotCache keeps the most recent snapshot for ttl; zero ttl means no expiry.
func NewSnapshotCache(maxItems int64, ttl time.Duration) (*RistrettoSnapshotCache, error) {
	if maxItems <= 0 {
		maxItems = 1
	}
	c, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: 10 * maxItems,
		MaxCost:     maxItems,
		BufferItems: 64,
	})
	if err != nil {
		return nil, fmt.Errorf("create snapshot cache failed: %w", err)
	}
	return &RistrettoSnapshotCache{cache: c, ttl: ttl}, nil
}

func (c *RistrettoSnapshotCache) Get() (domain.RateSnapshot, bool) {
	if v, ok := c.cache.Get(latestKey); ok {
		snapshot, ok := v.(domain.RateSnapshot)
		return snapshot, ok
	}
	return domain.RateSnapshot{}, false
}

// Set stores snapshot unless a newer one has already been stored. A reader that loaded
// the previous snapshot from the database cannot overwrite the one a refresh just published.
func (c *RistrettoSnapshotCache) Set(snapshot domain.RateSnapshot) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if snapshot.TakenAt.Before(c.newest) {
		return
	}
	c.newest = snapshot.TakenAt
	c.cache.SetWithTTL(latestKey, snapshot, 1, c.ttl)
	c.cache.Wait()
}

func (c *RistrettoSnapshotCache) Close() { c.cache.Close() }
