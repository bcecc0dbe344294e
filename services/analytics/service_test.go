package analytics

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Modeva-Ecommerce/modeva-analytics-backend/models"
)

// Mocks

type MockStore struct {
	mock.Mock
}

func (m *MockStore) FindOrdersBetween(ctx context.Context, statuses []models.OrderStatus, from, to time.Time) ([]models.Order, error) {
	args := m.Called(ctx, statuses, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Order), args.Error(1)
}

func (m *MockStore) FindUsersCreatedBetween(ctx context.Context, from, to time.Time) ([]models.User, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockStore) FindRecentOrders(ctx context.Context, limit int64) ([]models.Order, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Order), args.Error(1)
}

func (m *MockStore) FindProductsByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Product, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *MockStore) CountProducts(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type prefixThumbnailer struct{}

func (prefixThumbnailer) ThumbnailURL(image string) string {
	return "https://cdn.test/" + image
}

var fixedNow = time.Date(2025, 1, 8, 0, 0, 0, 0, time.UTC)

func clock() time.Time { return fixedNow }

func TestGetAnalytics_SevenDayExample(t *testing.T) {
	store := new(MockStore)
	w := ResolveWindow("7d", fixedNow)
	shirt, jacket := oid(1), oid(2)

	current := []models.Order{
		{TotalAmount: 6000, Status: models.OrderStatusDelivered, CreatedAt: w.Start.Add(time.Hour),
			Items: []models.OrderItem{line(shirt, 2), line(jacket, 1)}},
		{TotalAmount: 4000, Status: models.OrderStatusShipped, CreatedAt: w.Start.Add(3*day + time.Hour),
			Items: []models.OrderItem{line(jacket, 4)}},
	}
	previous := []models.Order{
		{TotalAmount: 5000, Status: models.OrderStatusConfirmed, CreatedAt: w.PreviousStart.Add(time.Hour)},
	}
	currentUsers := []models.User{{CreatedAt: w.Start.Add(day)}, {CreatedAt: w.Start.Add(2 * day)}}
	previousUsers := []models.User{{CreatedAt: w.PreviousStart}, {CreatedAt: w.PreviousStart.Add(day)}}
	recent := []models.Order{{OrderNumber: "ORD-9", Status: models.OrderStatusPending}}

	store.On("FindOrdersBetween", mock.Anything, models.RevenueStatuses, w.Start, w.Now).Return(current, nil)
	store.On("FindOrdersBetween", mock.Anything, models.RevenueStatuses, w.PreviousStart, w.Start).Return(previous, nil)
	store.On("FindUsersCreatedBetween", mock.Anything, w.Start, w.Now).Return(currentUsers, nil)
	store.On("FindUsersCreatedBetween", mock.Anything, w.PreviousStart, w.Start).Return(previousUsers, nil)
	store.On("FindRecentOrders", mock.Anything, int64(RecentOrdersLimit)).Return(recent, nil)
	store.On("CountProducts", mock.Anything).Return(int64(42), nil)
	store.On("FindProductsByIDs", mock.Anything, []primitive.ObjectID{jacket, shirt}).Return([]models.Product{
		{ID: shirt, Name: "Linen Shirt", Image: "products/shirt"},
		{ID: jacket, Name: "Denim Jacket", Image: "products/jacket"},
	}, nil)

	svc := NewService(store, WithClock(clock), WithThumbnails(prefixThumbnailer{}))
	report, err := svc.GetAnalytics(context.Background(), "7d")

	require.NoError(t, err)
	store.AssertExpectations(t)

	res := report.Result
	assert.Equal(t, w, report.Window)
	assert.InDelta(t, 10000.0, res.TotalRevenue, 1e-9)
	assert.InDelta(t, 100.0, res.RevenueTrend, 1e-9)
	assert.Equal(t, 2, res.TotalOrders)
	assert.InDelta(t, 100.0, res.OrdersTrend, 1e-9)
	assert.Equal(t, 2, res.TotalUsers)
	assert.InDelta(t, 0.0, res.UsersTrend, 1e-9)
	assert.Equal(t, int64(42), res.TotalProducts)
	assert.InDelta(t, 100.0, res.ConversionRate, 1e-9)
	assert.InDelta(t, 100.0, res.ConversionTrend, 1e-9)
	assert.InDelta(t, 5000.0, res.AverageOrderValue, 1e-9)
	assert.InDelta(t, 0.0, res.AOVTrend, 1e-9)
	assert.Equal(t, recent, res.RecentOrders)

	require.Len(t, res.TopSellingProducts, 2)
	assert.Equal(t, "Denim Jacket", res.TopSellingProducts[0].Product.Name)
	assert.Equal(t, 5, res.TopSellingProducts[0].SalesCount)
	assert.Equal(t, "https://cdn.test/products/jacket", res.TopSellingProducts[0].ThumbnailURL)
	assert.Equal(t, 2, res.TopSellingProducts[1].SalesCount)

	require.Len(t, res.SalesData, 7)
	assert.Equal(t, "2025-01-01", res.SalesData[0].Date)
	assert.Equal(t, "2025-01-07", res.SalesData[6].Date)
	assert.InDelta(t, 6000.0, res.SalesData[0].Revenue, 1e-9)
	assert.InDelta(t, 4000.0, res.SalesData[3].Revenue, 1e-9)
	assert.Equal(t, 1, res.SalesData[1].Users)
}

func TestGetAnalytics_EmptyStore(t *testing.T) {
	store := new(MockStore)
	store.On("FindOrdersBetween", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil, nil)
	store.On("FindUsersCreatedBetween", mock.Anything, mock.Anything, mock.Anything).Return(nil, nil)
	store.On("FindRecentOrders", mock.Anything, mock.Anything).Return(nil, nil)
	store.On("CountProducts", mock.Anything).Return(int64(0), nil)

	svc := NewService(store, WithClock(clock))
	report, err := svc.GetAnalytics(context.Background(), "")

	require.NoError(t, err)
	store.AssertNotCalled(t, "FindProductsByIDs", mock.Anything, mock.Anything)

	res := report.Result
	assert.Equal(t, Range30Days, report.Window.Range)
	assert.Zero(t, res.TotalRevenue)
	assert.Zero(t, res.RevenueTrend)
	assert.Zero(t, res.AverageOrderValue)
	assert.Zero(t, res.ConversionRate)
	assert.NotNil(t, res.TopSellingProducts)
	assert.Empty(t, res.TopSellingProducts)
	assert.NotNil(t, res.RecentOrders)
	assert.Empty(t, res.RecentOrders)
	assert.Len(t, res.SalesData, 30)
}

func TestGetAnalytics_DropsNonRevenueOrders(t *testing.T) {
	store := new(MockStore)
	current := []models.Order{
		{TotalAmount: 100, Status: models.OrderStatusDelivered, CreatedAt: fixedNow.Add(-time.Hour)},
		{TotalAmount: 900, Status: models.OrderStatusRefunded, CreatedAt: fixedNow.Add(-time.Hour)},
	}
	w := ResolveWindow("7d", fixedNow)
	store.On("FindOrdersBetween", mock.Anything, mock.Anything, w.Start, w.Now).Return(current, nil)
	store.On("FindOrdersBetween", mock.Anything, mock.Anything, w.PreviousStart, w.Start).Return(nil, nil)
	store.On("FindUsersCreatedBetween", mock.Anything, mock.Anything, mock.Anything).Return(nil, nil)
	store.On("FindRecentOrders", mock.Anything, mock.Anything).Return(nil, nil)
	store.On("CountProducts", mock.Anything).Return(int64(3), nil)

	report, err := NewService(store, WithClock(clock)).GetAnalytics(context.Background(), "7d")

	require.NoError(t, err)
	assert.InDelta(t, 100.0, report.Result.TotalRevenue, 1e-9)
	assert.Equal(t, 1, report.Result.TotalOrders)
}

func TestGetAnalytics_StoreFailure(t *testing.T) {
	store := new(MockStore)
	boom := errors.New("connection refused")
	store.On("FindOrdersBetween", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil, nil)
	store.On("FindUsersCreatedBetween", mock.Anything, mock.Anything, mock.Anything).Return(nil, boom)
	store.On("FindRecentOrders", mock.Anything, mock.Anything).Return(nil, nil)
	store.On("CountProducts", mock.Anything).Return(int64(0), nil)

	report, err := NewService(store, WithClock(clock)).GetAnalytics(context.Background(), "30d")

	assert.Nil(t, report)
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.True(t, strings.Contains(err.Error(), "users"))
}

func TestGetAnalytics_ProductLookupFailure(t *testing.T) {
	store := new(MockStore)
	boom := errors.New("cursor killed")
	current := []models.Order{
		{TotalAmount: 10, Status: models.OrderStatusConfirmed, CreatedAt: fixedNow.Add(-time.Hour),
			Items: []models.OrderItem{line(oid(5), 1)}},
	}
	w := ResolveWindow("7d", fixedNow)
	store.On("FindOrdersBetween", mock.Anything, mock.Anything, w.Start, w.Now).Return(current, nil)
	store.On("FindOrdersBetween", mock.Anything, mock.Anything, w.PreviousStart, w.Start).Return(nil, nil)
	store.On("FindUsersCreatedBetween", mock.Anything, mock.Anything, mock.Anything).Return(nil, nil)
	store.On("FindRecentOrders", mock.Anything, mock.Anything).Return(nil, nil)
	store.On("CountProducts", mock.Anything).Return(int64(1), nil)
	store.On("FindProductsByIDs", mock.Anything, mock.Anything).Return(nil, boom)

	report, err := NewService(store, WithClock(clock)).GetAnalytics(context.Background(), "7d")

	assert.Nil(t, report)
	assert.ErrorIs(t, err, boom)
}

func TestGetAnalytics_CancelledContext(t *testing.T) {
	store := new(MockStore)
	store.On("FindOrdersBetween", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil, nil)
	store.On("FindUsersCreatedBetween", mock.Anything, mock.Anything, mock.Anything).Return(nil, nil)
	store.On("FindRecentOrders", mock.Anything, mock.Anything).Return(nil, nil)
	store.On("CountProducts", mock.Anything).Return(int64(0), nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	report, err := NewService(store, WithClock(clock)).GetAnalytics(ctx, "7d")

	assert.Nil(t, report)
	assert.ErrorIs(t, err, context.Canceled)
}

// blockingStore answers only when its context ends
type blockingStore struct{}

func (blockingStore) FindOrdersBetween(ctx context.Context, _ []models.OrderStatus, _, _ time.Time) ([]models.Order, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func (blockingStore) FindUsersCreatedBetween(ctx context.Context, _, _ time.Time) ([]models.User, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func (blockingStore) FindRecentOrders(ctx context.Context, _ int64) ([]models.Order, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func (blockingStore) FindProductsByIDs(ctx context.Context, _ []primitive.ObjectID) ([]models.Product, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func (blockingStore) CountProducts(ctx context.Context) (int64, error) {
	<-ctx.Done()
	return 0, ctx.Err()
}

func TestGetAnalytics_Timeout(t *testing.T) {
	svc := NewService(blockingStore{}, WithClock(clock), WithTimeout(10*time.Millisecond))

	started := time.Now()
	report, err := svc.GetAnalytics(context.Background(), "30d")

	assert.Nil(t, report)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(started), 2*time.Second)
}
