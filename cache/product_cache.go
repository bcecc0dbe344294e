package product_cache

import (
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Modeva-Ecommerce/modeva-analytics-backend/models"
)

const TTL = 5 * time.Minute

// ── Product lookup cache ─────────────────────────────────────────────────────
// Top-seller joins hit the same handful of products on every dashboard load.
// Entries expire individually; the catalogue count has its own slot.

type productEntry struct {
	product   models.Product
	fetchedAt time.Time
}

type countEntry struct {
	count     int64
	fetchedAt time.Time
}

type ProductCache struct {
	ttl time.Duration
	now func() time.Time

	mu       sync.RWMutex
	products map[primitive.ObjectID]productEntry
	count    *countEntry
}

func New(ttl time.Duration) *ProductCache {
	return &ProductCache{
		ttl:      ttl,
		now:      time.Now,
		products: make(map[primitive.ObjectID]productEntry),
	}
}

// GetMany returns the fresh cached products among ids and the ids that still need fetching.
func (c *ProductCache) GetMany(ids []primitive.ObjectID) (hits []models.Product, misses []primitive.ObjectID) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	now := c.now()
	for _, id := range ids {
		entry, ok := c.products[id]
		if ok && now.Sub(entry.fetchedAt) < c.ttl {
			hits = append(hits, entry.product)
			continue
		}
		misses = append(misses, id)
	}
	return hits, misses
}

func (c *ProductCache) SetMany(products []models.Product) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	for _, p := range products {
		c.products[p.ID] = productEntry{product: p, fetchedAt: now}
	}
}

// ── Catalogue count ──────────────────────────────────────────────────────────

func (c *ProductCache) GetCount() (int64, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.count != nil && c.now().Sub(c.count.fetchedAt) < c.ttl {
		return c.count.count, true
	}
	return 0, false
}

func (c *ProductCache) SetCount(n int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.count = &countEntry{count: n, fetchedAt: c.now()}
}
