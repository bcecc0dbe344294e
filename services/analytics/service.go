// Package analytics computes the admin sales dashboard: windowed revenue and order
// metrics, period-over-period trends, top sellers and a dense daily series.
package analytics

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/sync/errgroup"

	"github.com/Modeva-Ecommerce/modeva-analytics-backend/models"
)

// RecentOrdersLimit is how many of the latest orders (any status) the dashboard lists.
const RecentOrdersLimit = 10

// Store is the read-only view of the storefront data the aggregator needs.
// Time bounds are half-open: [from, to).
type Store interface {
	FindOrdersBetween(ctx context.Context, statuses []models.OrderStatus, from, to time.Time) ([]models.Order, error)
	FindUsersCreatedBetween(ctx context.Context, from, to time.Time) ([]models.User, error)
	FindRecentOrders(ctx context.Context, limit int64) ([]models.Order, error)
	FindProductsByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Product, error)
	CountProducts(ctx context.Context) (int64, error)
}

// Thumbnailer turns a product image reference into a display URL.
type Thumbnailer interface {
	ThumbnailURL(image string) string
}

// Report is a computed dashboard together with the window it covers.
type Report struct {
	Window Window
	Result *models.AnalyticsResult
}

type Service struct {
	store      Store
	now        func() time.Time
	timeout    time.Duration
	thumbnails Thumbnailer
}

type Option func(*Service)

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithTimeout bounds a whole computation. Zero disables the bound.
func WithTimeout(d time.Duration) Option {
	return func(s *Service) { s.timeout = d }
}

// WithThumbnails decorates top sellers with thumbnail URLs.
func WithThumbnails(t Thumbnailer) Option {
	return func(s *Service) { s.thumbnails = t }
}

func NewService(store Store, opts ...Option) *Service {
	s := &Service{
		store:   store,
		now:     time.Now,
		timeout: 10 * time.Second,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// GetAnalytics computes the dashboard for a range token. Any read failure or timeout
// fails the whole computation; no partial result is returned.
func (s *Service) GetAnalytics(ctx context.Context, rangeToken string) (*Report, error) {
	w := ResolveWindow(rangeToken, s.now())

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	var (
		currentOrders, previousOrders, recentOrders []models.Order
		currentUsers, previousUsers                 []models.User
		totalProducts                               int64
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		currentOrders, err = s.store.FindOrdersBetween(gctx, models.RevenueStatuses, w.Start, w.Now)
		return wrap(err, "fetch current orders")
	})
	g.Go(func() (err error) {
		previousOrders, err = s.store.FindOrdersBetween(gctx, models.RevenueStatuses, w.PreviousStart, w.Start)
		return wrap(err, "fetch previous orders")
	})
	g.Go(func() (err error) {
		currentUsers, err = s.store.FindUsersCreatedBetween(gctx, w.Start, w.Now)
		return wrap(err, "fetch current users")
	})
	g.Go(func() (err error) {
		previousUsers, err = s.store.FindUsersCreatedBetween(gctx, w.PreviousStart, w.Start)
		return wrap(err, "fetch previous users")
	})
	g.Go(func() (err error) {
		recentOrders, err = s.store.FindRecentOrders(gctx, RecentOrdersLimit)
		return wrap(err, "fetch recent orders")
	})
	g.Go(func() (err error) {
		totalProducts, err = s.store.CountProducts(gctx)
		return wrap(err, "count products")
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	currentOrders = revenueBearing(currentOrders)
	previousOrders = revenueBearing(previousOrders)

	topSellers, err := s.topSellers(ctx, currentOrders)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("analytics deadline: %w", err)
	}

	current := Summarize(currentOrders, currentUsers)
	previous := Summarize(previousOrders, previousUsers)
	trends := CompareMetrics(current, previous)

	if recentOrders == nil {
		recentOrders = []models.Order{}
	}

	return &Report{
		Window: w,
		Result: &models.AnalyticsResult{
			TotalRevenue:       current.Revenue.InexactFloat64(),
			RevenueTrend:       trends.Revenue,
			TotalOrders:        current.Orders,
			OrdersTrend:        trends.Orders,
			TotalUsers:         current.Users,
			UsersTrend:         trends.Users,
			TotalProducts:      totalProducts,
			ConversionRate:     current.ConversionRate,
			ConversionTrend:    trends.Conversion,
			AverageOrderValue:  current.AverageOrderValue,
			AOVTrend:           trends.AOV,
			TopSellingProducts: topSellers,
			RecentOrders:       recentOrders,
			SalesData:          BuildSalesSeries(w.Start, w.Now, currentOrders, currentUsers),
		},
	}, nil
}

func (s *Service) topSellers(ctx context.Context, orders []models.Order) ([]models.TopSellingProduct, error) {
	ranked := RankProductSales(orders, TopSellerLimit)
	if len(ranked) == 0 {
		return []models.TopSellingProduct{}, nil
	}

	products, err := s.store.FindProductsByIDs(ctx, ProductIDs(ranked))
	if err != nil {
		return nil, fmt.Errorf("fetch top products: %w", err)
	}

	joined := JoinTopSellers(ranked, products)
	if s.thumbnails != nil {
		for i := range joined {
			joined[i].ThumbnailURL = s.thumbnails.ThumbnailURL(joined[i].Product.Image)
		}
	}
	return joined, nil
}

func revenueBearing(orders []models.Order) []models.Order {
	kept := orders[:0:0]
	for _, o := range orders {
		if o.Status.IsRevenueBearing() {
			kept = append(kept, o)
		}
	}
	return kept
}

func wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", msg, err)
}
