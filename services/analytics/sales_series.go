package analytics

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/Modeva-Ecommerce/modeva-analytics-backend/models"
)

const day = 24 * time.Hour

// SeriesLength is the number of daily buckets covering [start, now): ceil((now-start)/day).
func SeriesLength(start, now time.Time) int {
	span := now.Sub(start)
	if span <= 0 {
		return 0
	}
	n := int(span / day)
	if span%day != 0 {
		n++
	}
	return n
}

// BuildSalesSeries buckets orders and signups into consecutive 24h UTC buckets anchored
// at start. Every bucket is emitted, empty ones with zero values, so charts get a
// contiguous axis. Records outside [start, now) are ignored.
func BuildSalesSeries(start, now time.Time, orders []models.Order, users []models.User) []models.SalesDataPoint {
	start, now = start.UTC(), now.UTC()
	n := SeriesLength(start, now)
	points := make([]models.SalesDataPoint, n)
	revenue := make([]decimal.Decimal, n)

	for i := range points {
		points[i].Date = start.Add(time.Duration(i) * day).Format(time.DateOnly)
		revenue[i] = decimal.Zero
	}

	for _, o := range orders {
		if i, ok := bucketIndex(start, now, o.CreatedAt); ok {
			revenue[i] = revenue[i].Add(decimal.NewFromFloat(o.TotalAmount))
			points[i].Orders++
		}
	}
	for _, u := range users {
		if i, ok := bucketIndex(start, now, u.CreatedAt); ok {
			points[i].Users++
		}
	}

	for i := range points {
		points[i].Revenue = revenue[i].InexactFloat64()
	}
	return points
}

func bucketIndex(start, now, at time.Time) (int, bool) {
	if at.Before(start) || !at.Before(now) {
		return 0, false
	}
	return int(at.Sub(start) / day), true
}
