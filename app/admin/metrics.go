package admin

import (
	"context"
	"sync"
	"time"

	"github.com/shopspring/decimal"
)

// DefaultCacheTTL is how long a fetched metrics snapshot stays fresh.
const DefaultCacheTTL = 5 * time.Minute

// Metrics is one dashboard snapshot.
type Metrics struct {
	TotalRevenue         decimal.Decimal
	OrdersCount          int
	TopProducts          []ProductMetrics
	AvgOrderValue        decimal.Decimal
	InventoryStatus      int
	CategoryDistribution []CategoryMetrics
	OrderTrends          []OrderMetrics
	LastUpdated          time.Time
}

// ProductMetrics describes sales of one product.
type ProductMetrics struct {
	ID        string
	Name      string
	UnitsSold int
	Revenue   decimal.Decimal
	Category  string
}

// CategoryMetrics describes the sales share of one category.
type CategoryMetrics struct {
	Name       string
	Value      int
	Percentage int
}

// OrderMetrics describes order volume for one day.
type OrderMetrics struct {
	Date    string
	Count   int
	Revenue decimal.Decimal
}

// Source produces metrics snapshots. Implementations may block, so
// every fetch takes a context.
type Source interface {
	Fetch(ctx context.Context) (*Metrics, error)
}

// CachedSource caches snapshots from an underlying source for a fixed
// TTL. The cache entry is explicit: the data plus the time it was
// stored; an entry older than the TTL is refetched.
type CachedSource struct {
	src Source
	ttl time.Duration

	mu    sync.Mutex
	entry *cacheEntry
}

type cacheEntry struct {
	data     *Metrics
	storedAt time.Time
}

func NewCachedSource(src Source, ttl time.Duration) *CachedSource {
	return &CachedSource{
		src: src,
		ttl: ttl,
	}
}

// Fetch returns the cached snapshot while it is fresh, otherwise asks
// the underlying source and stores the result. A failed fetch is not
// cached.
func (c *CachedSource) Fetch(ctx context.Context) (*Metrics, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.entry != nil && time.Since(c.entry.storedAt) < c.ttl {
		return c.entry.data, nil
	}

	data, err := c.src.Fetch(ctx)
	if err != nil {
		return nil, err
	}
	c.entry = &cacheEntry{
		data:     data,
		storedAt: time.Now(),
	}
	return data, nil
}

// Refetch bypasses the cache and stores a fresh snapshot.
func (c *CachedSource) Refetch(ctx context.Context) (*Metrics, error) {
	c.Invalidate()
	return c.Fetch(ctx)
}

// Invalidate drops the cached entry.
func (c *CachedSource) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entry = nil
}

// Cached reports whether a snapshot is currently cached, fresh or not.
func (c *CachedSource) Cached() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.entry != nil
}
