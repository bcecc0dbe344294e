package analytics_controller

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Modeva-Ecommerce/modeva-analytics-backend/models"
	"github.com/Modeva-Ecommerce/modeva-analytics-backend/services/analytics"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type staticAuth struct {
	principal *models.Principal
}

func (a staticAuth) CurrentPrincipal(*gin.Context) (*models.Principal, bool) {
	return a.principal, a.principal != nil
}

type MockProvider struct {
	mock.Mock
}

func (m *MockProvider) GetAnalytics(ctx context.Context, rangeToken string) (*analytics.Report, error) {
	args := m.Called(ctx, rangeToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*analytics.Report), args.Error(1)
}

var admin = &models.Principal{ID: "admin-1", Email: "ada@modeva.com", IsAdmin: true}

func sampleReport(token string) *analytics.Report {
	w := analytics.ResolveWindow(token, time.Date(2025, 1, 8, 0, 0, 0, 0, time.UTC))
	return &analytics.Report{
		Window: w,
		Result: &models.AnalyticsResult{
			TotalRevenue:       10000,
			RevenueTrend:       100,
			TotalOrders:        2,
			TopSellingProducts: []models.TopSellingProduct{},
			RecentOrders:       []models.Order{},
			SalesData:          analytics.BuildSalesSeries(w.Start, w.Now, nil, nil),
		},
	}
}

func newRouter(auth AuthContext, provider AnalyticsProvider) *gin.Engine {
	ac := NewAnalyticsController(auth, provider)
	r := gin.New()
	r.GET("/api/admin/analytics", ac.GetDashboardAnalytics)
	r.GET("/api/admin/analytics/report.pdf", ac.DownloadAnalyticsReport)
	return r
}

func get(r *gin.Engine, url string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, url, nil))
	return w
}

func TestGetDashboardAnalytics_Success(t *testing.T) {
	provider := new(MockProvider)
	provider.On("GetAnalytics", mock.Anything, "7d").Return(sampleReport("7d"), nil)

	w := get(newRouter(staticAuth{admin}, provider), "/api/admin/analytics?timeRange=7d")

	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Success bool                   `json:"success"`
		Data    models.AnalyticsResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, 10000.0, body.Data.TotalRevenue)
	assert.Equal(t, 100.0, body.Data.RevenueTrend)
	assert.Len(t, body.Data.SalesData, 7)
	provider.AssertExpectations(t)
}

func TestGetDashboardAnalytics_WireFormat(t *testing.T) {
	provider := new(MockProvider)
	provider.On("GetAnalytics", mock.Anything, "").Return(sampleReport(""), nil)

	w := get(newRouter(staticAuth{admin}, provider), "/api/admin/analytics")

	var raw struct {
		Data map[string]any `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &raw))
	for _, field := range []string{
		"totalRevenue", "revenueTrend", "totalOrders", "ordersTrend", "totalUsers", "usersTrend",
		"totalProducts", "conversionRate", "conversionTrend", "averageOrderValue", "aovTrend",
		"topSellingProducts", "recentOrders", "salesData",
	} {
		assert.Contains(t, raw.Data, field)
	}
	assert.Equal(t, []any{}, raw.Data["topSellingProducts"])
	assert.Equal(t, []any{}, raw.Data["recentOrders"])
}

func TestGetDashboardAnalytics_Unauthorized(t *testing.T) {
	tests := []struct {
		name string
		auth staticAuth
	}{
		{"anonymous", staticAuth{}},
		{"customer", staticAuth{&models.Principal{Email: "shopper@example.com", IsAdmin: false}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider := new(MockProvider)

			w := get(newRouter(tt.auth, provider), "/api/admin/analytics?timeRange=7d")

			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.JSONEq(t, `{"success":false,"error":"Unauthorized"}`, w.Body.String())
			provider.AssertNotCalled(t, "GetAnalytics", mock.Anything, mock.Anything)
		})
	}
}

func TestGetDashboardAnalytics_InternalError(t *testing.T) {
	provider := new(MockProvider)
	provider.On("GetAnalytics", mock.Anything, "30d").
		Return(nil, errors.New("fetch current orders: server selection timeout"))

	w := get(newRouter(staticAuth{admin}, provider), "/api/admin/analytics?timeRange=30d")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"success":false,"error":"Failed to fetch analytics"}`, w.Body.String())
	assert.NotContains(t, w.Body.String(), "server selection")
}

func TestDownloadAnalyticsReport(t *testing.T) {
	provider := new(MockProvider)
	provider.On("GetAnalytics", mock.Anything, "90d").Return(sampleReport("90d"), nil)

	w := get(newRouter(staticAuth{admin}, provider), "/api/admin/analytics/report.pdf?timeRange=90d")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="analytics-90d-2025-01-08.pdf"`, w.Header().Get("Content-Disposition"))
	assert.True(t, bytes.HasPrefix(w.Body.Bytes(), []byte("%PDF")))
}

func TestDownloadAnalyticsReport_Unauthorized(t *testing.T) {
	provider := new(MockProvider)

	w := get(newRouter(staticAuth{}, provider), "/api/admin/analytics/report.pdf")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	provider.AssertNotCalled(t, "GetAnalytics", mock.Anything, mock.Anything)
}
