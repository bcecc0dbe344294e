package product_cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Modeva-Ecommerce/modeva-analytics-backend/models"
)

func newTestCache(now *time.Time) *ProductCache {
	c := New(TTL)
	c.now = func() time.Time { return *now }
	return c
}

func TestGetMany_HitsAndMisses(t *testing.T) {
	now := time.Date(2025, 1, 8, 0, 0, 0, 0, time.UTC)
	c := newTestCache(&now)
	a, b := primitive.NewObjectID(), primitive.NewObjectID()

	c.SetMany([]models.Product{{ID: a, Name: "Linen Shirt"}})
	hits, misses := c.GetMany([]primitive.ObjectID{a, b})

	assert.Equal(t, []models.Product{{ID: a, Name: "Linen Shirt"}}, hits)
	assert.Equal(t, []primitive.ObjectID{b}, misses)
}

func TestGetMany_Expiry(t *testing.T) {
	now := time.Date(2025, 1, 8, 0, 0, 0, 0, time.UTC)
	c := newTestCache(&now)
	a := primitive.NewObjectID()
	c.SetMany([]models.Product{{ID: a}})

	now = now.Add(TTL - time.Second)
	hits, _ := c.GetMany([]primitive.ObjectID{a})
	assert.Len(t, hits, 1)

	now = now.Add(time.Second)
	hits, misses := c.GetMany([]primitive.ObjectID{a})
	assert.Empty(t, hits)
	assert.Equal(t, []primitive.ObjectID{a}, misses)
}

func TestCount(t *testing.T) {
	now := time.Date(2025, 1, 8, 0, 0, 0, 0, time.UTC)
	c := newTestCache(&now)

	_, ok := c.GetCount()
	assert.False(t, ok)

	c.SetCount(42)
	n, ok := c.GetCount()
	assert.True(t, ok)
	assert.Equal(t, int64(42), n)

	now = now.Add(TTL)
	_, ok = c.GetCount()
	assert.False(t, ok)
}
