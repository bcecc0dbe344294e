package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	product_cache "github.com/Modeva-Ecommerce/modeva-analytics-backend/cache"
	"github.com/Modeva-Ecommerce/modeva-analytics-backend/models"
)

// MongoStore serves the analytics reads from the storefront database. Product
// lookups and the catalogue count go through the cache when one is set.
type MongoStore struct {
	Orders   *OrderRepository
	Users    *UserRepository
	Products *ProductRepository
	cache    *product_cache.ProductCache
}

func NewMongoStore(db *mongo.Database, cache *product_cache.ProductCache) *MongoStore {
	return &MongoStore{
		Orders:   NewOrderRepository(db),
		Users:    NewUserRepository(db),
		Products: NewProductRepository(db),
		cache:    cache,
	}
}

func (s *MongoStore) FindOrdersBetween(ctx context.Context, statuses []models.OrderStatus, from, to time.Time) ([]models.Order, error) {
	return s.Orders.FindBetween(ctx, statuses, from, to)
}

func (s *MongoStore) FindRecentOrders(ctx context.Context, limit int64) ([]models.Order, error) {
	return s.Orders.FindRecent(ctx, limit)
}

func (s *MongoStore) FindUsersCreatedBetween(ctx context.Context, from, to time.Time) ([]models.User, error) {
	return s.Users.FindCreatedBetween(ctx, from, to)
}

func (s *MongoStore) FindProductsByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Product, error) {
	if s.cache == nil {
		return s.Products.FindByIDs(ctx, ids)
	}

	hits, misses := s.cache.GetMany(ids)
	if len(misses) == 0 {
		return hits, nil
	}

	fetched, err := s.Products.FindByIDs(ctx, misses)
	if err != nil {
		return nil, err
	}
	s.cache.SetMany(fetched)
	return append(hits, fetched...), nil
}

func (s *MongoStore) CountProducts(ctx context.Context) (int64, error) {
	if s.cache != nil {
		if n, ok := s.cache.GetCount(); ok {
			return n, nil
		}
	}

	n, err := s.Products.Count(ctx)
	if err != nil {
		return 0, err
	}
	if s.cache != nil {
		s.cache.SetCount(n)
	}
	return n, nil
}
