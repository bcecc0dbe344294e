package models

// AnalyticsResult is the admin dashboard payload for one time range.
// Every trend compares against the equal-length period immediately before the range.
type AnalyticsResult struct {
	TotalRevenue       float64             `json:"totalRevenue"`
	RevenueTrend       float64             `json:"revenueTrend"`
	TotalOrders        int                 `json:"totalOrders"`
	OrdersTrend        float64             `json:"ordersTrend"`
	TotalUsers         int                 `json:"totalUsers"`
	UsersTrend         float64             `json:"usersTrend"`
	TotalProducts      int64               `json:"totalProducts"`
	ConversionRate     float64             `json:"conversionRate"`
	ConversionTrend    float64             `json:"conversionTrend"`
	AverageOrderValue  float64             `json:"averageOrderValue"`
	AOVTrend           float64             `json:"aovTrend"`
	TopSellingProducts []TopSellingProduct `json:"topSellingProducts"`
	RecentOrders       []Order             `json:"recentOrders"`
	SalesData          []SalesDataPoint    `json:"salesData"`
}

// TopSellingProduct joins a catalogue product with the units sold in the range.
// Stock on the embedded product is on-hand inventory, never the sales figure.
type TopSellingProduct struct {
	Product      Product `json:"product"`
	SalesCount   int     `json:"salesCount"`
	ThumbnailURL string  `json:"thumbnailUrl,omitempty"`
}

// SalesDataPoint is one 24h bucket of the dense sales series. Buckets are rolling:
// bucket i covers [start+i*24h, start+(i+1)*24h) where start is the window start,
// so a bucket usually spans two calendar days. Date is the UTC date on which the
// bucket begins, not a calendar-day total.
type SalesDataPoint struct {
	Date    string  `json:"date"` // YYYY-MM-DD (UTC) of the bucket start
	Revenue float64 `json:"revenue"`
	Orders  int     `json:"orders"`
	Users   int     `json:"users"`
}
